package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/hearttrack/internal/server/models"
	"github.com/dmitrijs2005/hearttrack/internal/server/repositories/repomanager"
	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSeeder struct {
	calls int
	err   error
}

func (f *fakeSeeder) Seed(ctx context.Context, repos repomanager.RepositoryManager) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	_, err := repos.Users().Create(ctx, &models.User{Email: "admin@hearttrack.com", Password: "admin123", Role: models.RoleAdmin})
	return err
}

var defaults = models.Thresholds{High: 120, Low: 40}

func TestRegistry_CreateSeedsIsolatedStores(t *testing.T) {
	ctx := context.Background()
	seeder := &fakeSeeder{}
	r := NewRegistry(time.Hour, seeder, defaults)

	a, err := r.Create(ctx)
	require.NoError(t, err)
	b, err := r.Create(ctx)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, seeder.calls)
	assert.Equal(t, defaults, a.Thresholds)
	assert.False(t, a.IsAuthenticated())

	_, err = a.Repos.Users().Create(ctx, &models.User{Email: "p@x.com", Password: "pw"})
	require.NoError(t, err)

	usersA, _ := a.Repos.Users().List(ctx)
	usersB, _ := b.Repos.Users().List(ctx)
	assert.Len(t, usersA, 2)
	assert.Len(t, usersB, 1)
}

func TestRegistry_SeedErrorFailsCreate(t *testing.T) {
	r := NewRegistry(time.Hour, &fakeSeeder{err: errors.New("boom")}, defaults)

	_, err := r.Create(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_IdleExpiry(t *testing.T) {
	clk := testclock.NewClock(time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC))
	r := NewRegistry(30*time.Minute, nil, defaults, WithClock(clk))

	s, err := r.Create(context.Background())
	require.NoError(t, err)

	clk.Advance(20 * time.Minute)
	_, ok := r.Get(s.ID)
	require.True(t, ok, "touched before ttl")

	clk.Advance(20 * time.Minute)
	_, ok = r.Get(s.ID)
	require.True(t, ok, "ttl counts from last access")

	clk.Advance(31 * time.Minute)
	_, ok = r.Get(s.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_End(t *testing.T) {
	r := NewRegistry(time.Hour, nil, defaults)
	s, err := r.Create(context.Background())
	require.NoError(t, err)

	r.End(s.ID)
	r.End(s.ID)

	_, ok := r.Get(s.ID)
	assert.False(t, ok)
}

func TestSession_IdentityIsACopy(t *testing.T) {
	s := &Session{}
	assert.Nil(t, s.Identity())

	s.SetIdentity(models.Identity{UserID: 2, Email: "p@x.com", Role: models.RolePatient})
	got := s.Identity()
	got.Role = models.RoleAdmin

	assert.Equal(t, models.RolePatient, s.Identity().Role)
	assert.True(t, s.IsAuthenticated())

	s.ClearIdentity()
	assert.False(t, s.IsAuthenticated())
	s.ClearIdentity()
	assert.Nil(t, s.Identity())
}
