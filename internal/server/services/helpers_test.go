package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/hearttrack/internal/server/auth"
	"github.com/dmitrijs2005/hearttrack/internal/server/config"
	"github.com/dmitrijs2005/hearttrack/internal/server/models"
	"github.com/dmitrijs2005/hearttrack/internal/server/session"
	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/require"
)

var testStart = time.Date(2025, 5, 4, 10, 0, 0, 0, time.UTC)

type fixture struct {
	cfg    *config.Config
	clock  *testclock.Clock
	users  *UserService
	vitals *VitalsService
	reg    *session.Registry
}

func newFixture(t *testing.T, passwordMode string) *fixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.PasswordMode = passwordMode

	hasher, err := auth.NewPasswordHasher(passwordMode)
	require.NoError(t, err)

	clk := testclock.NewClock(testStart)
	us := NewUserService(hasher, cfg, nil)
	vs := NewVitalsService(clk, nil)
	reg := session.NewRegistry(time.Hour, us, models.Thresholds{High: 120, Low: 40}, session.WithClock(clk))

	return &fixture{cfg: cfg, clock: clk, users: us, vitals: vs, reg: reg}
}

func (f *fixture) newSession(t *testing.T) *session.Session {
	t.Helper()
	s, err := f.reg.Create(context.Background())
	require.NoError(t, err)
	return s
}

// registerAndLogin creates a patient and logs the session in as them.
func (f *fixture) registerAndLogin(t *testing.T, sess *session.Session, email string) *models.Identity {
	t.Helper()
	ctx := context.Background()
	_, err := f.users.Register(ctx, sess, email, "pw", "patient")
	require.NoError(t, err)
	id, err := f.users.Login(ctx, sess, email, "pw")
	require.NoError(t, err)
	return id
}

// logAt stores a reading with the clock set to at.
func (f *fixture) logAt(t *testing.T, sess *session.Session, at time.Time, hr int) *LogResult {
	t.Helper()
	if d := at.Sub(f.clock.Now()); d > 0 {
		f.clock.Advance(d)
	}
	res, err := f.vitals.Log(context.Background(), sess, LogInput{HeartRate: hr, BloodPressure: "120/80"})
	require.NoError(t, err)
	return res
}
