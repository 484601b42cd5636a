package users

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/hearttrack/internal/common"
	"github.com/dmitrijs2005/hearttrack/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRepository_CreateAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryRepository()

	a, err := r.Create(ctx, &models.User{Email: "a@x.com", Password: "pw", Role: models.RoleAdmin})
	require.NoError(t, err)
	b, err := r.Create(ctx, &models.User{Email: "b@x.com", Password: "pw", Role: models.RolePatient})
	require.NoError(t, err)

	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)
}

func TestInMemoryRepository_DuplicateEmailAnyCase(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryRepository()

	_, err := r.Create(ctx, &models.User{Email: "user@x.com", Password: "pw1"})
	require.NoError(t, err)

	_, err = r.Create(ctx, &models.User{Email: "USER@X.COM", Password: "pw2"})
	require.ErrorIs(t, err, common.ErrorAlreadyExists)

	// the failed attempt must not burn an id
	c, err := r.Create(ctx, &models.User{Email: "other@x.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), c.ID)
}

func TestInMemoryRepository_Lookups(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryRepository()
	_, err := r.Create(ctx, &models.User{Email: "Ann@X.com", Password: "pw"})
	require.NoError(t, err)

	u, err := r.GetUserByEmail(ctx, "ann@x.COM")
	require.NoError(t, err)
	assert.Equal(t, "Ann@X.com", u.Email)

	u, err = r.GetUserByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)

	_, err = r.GetUserByEmail(ctx, "ghost@x.com")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	_, err = r.GetUserByID(ctx, 42)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestInMemoryRepository_ListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryRepository()
	_, err := r.Create(ctx, &models.User{Email: "a@x.com", Password: "pw"})
	require.NoError(t, err)

	list, err := r.List(ctx)
	require.NoError(t, err)
	list[0].Email = "mutated"

	again, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", again[0].Email)
}
