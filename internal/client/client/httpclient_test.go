package client

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/hearttrack/internal/client/models"
	"github.com/dmitrijs2005/hearttrack/internal/logging"
	"github.com/dmitrijs2005/hearttrack/internal/server/auth"
	"github.com/dmitrijs2005/hearttrack/internal/server/config"
	"github.com/dmitrijs2005/hearttrack/internal/server/httpserver"
	sm "github.com/dmitrijs2005/hearttrack/internal/server/models"
	"github.com/dmitrijs2005/hearttrack/internal/server/services"
	"github.com/dmitrijs2005/hearttrack/internal/server/session"
	"github.com/gin-gonic/gin"
	"github.com/juju/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startServer runs the real HTTP handler behind httptest.
func startServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.LoadDefaults()

	hasher, err := auth.NewPasswordHasher(cfg.PasswordMode)
	require.NoError(t, err)

	us := services.NewUserService(hasher, cfg, nil)
	vs := services.NewVitalsService(clock.WallClock, nil)
	srv, err := httpserver.NewHTTPServer(":0", logging.Discard(), httpserver.Deps{
		Users:    us,
		Vitals:   vs,
		Archive:  services.NewArchiveService(cfg, vs, clock.WallClock),
		Sessions: session.NewRegistry(cfg.SessionTTL, us, sm.Thresholds{High: 120, Low: 40}),
	}, cfg.SecretKey)
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func newClient(t *testing.T, url string) *HTTPClient {
	t.Helper()
	c, err := NewHTTPClient(url+"/", 5*time.Second)
	require.NoError(t, err)
	return c
}

func TestHTTPClient_EndToEnd(t *testing.T) {
	ctx := context.Background()
	ts := startServer(t)
	c := newClient(t, ts.URL)

	require.NoError(t, c.Ping(ctx))

	u, err := c.Register(ctx, "p@x.com", "pw", "")
	require.NoError(t, err)
	assert.Equal(t, models.User{ID: 2, Email: "p@x.com", Role: "patient"}, *u)

	_, err = c.Register(ctx, "P@X.COM", "pw", "")
	assert.ErrorIs(t, err, ErrConflict)
	assert.EqualError(t, err, "user already exists")

	_, err = c.Dashboard(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)

	id, err := c.Login(ctx, "p@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, int64(2), id.UserID)

	res, err := c.LogVitals(ctx, models.VitalsInput{HeartRate: 125, BloodPressure: "130/85"})
	require.NoError(t, err)
	assert.Equal(t, "high", res.Record.Alert)

	_, err = c.LogVitals(ctx, models.VitalsInput{HeartRate: 5})
	assert.ErrorIs(t, err, ErrBadRequest)

	d, err := c.Dashboard(ctx)
	require.NoError(t, err)
	require.NotNil(t, d.Stats)
	assert.Equal(t, 125, d.Stats.LatestBPM)
	assert.Equal(t, "130/85", d.Stats.LatestBloodPressure)

	var buf bytes.Buffer
	require.NoError(t, c.ExportMine(ctx, &buf))
	assert.True(t, strings.HasPrefix(buf.String(), "id,user_id,heart_rate,blood_pressure,notes,timestamp\n1,2,125,130/85,,"))

	_, err = c.Admin(ctx)
	assert.ErrorIs(t, err, ErrForbidden)

	th, err := c.SetThresholds(ctx, models.Thresholds{High: 130, Low: 45})
	require.NoError(t, err)
	assert.Equal(t, models.Thresholds{High: 130, Low: 45}, *th)
	th, err = c.Thresholds(ctx)
	require.NoError(t, err)
	assert.Equal(t, 130, th.High)

	_, err = c.Login(ctx, "admin@hearttrack.com", "admin123")
	require.NoError(t, err)
	a, err := c.Admin(ctx)
	require.NoError(t, err)
	assert.Len(t, a.Users, 2)
	assert.Empty(t, a.Alerts, "125 is below the raised threshold")

	_, err = c.Archive(ctx)
	assert.ErrorIs(t, err, ErrUnavailable)

	require.NoError(t, c.Logout(ctx))
	_, err = c.Admin(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestHTTPClient_SeparateClientsHaveSeparateSessions(t *testing.T) {
	ctx := context.Background()
	ts := startServer(t)

	a := newClient(t, ts.URL)
	_, err := a.Register(ctx, "only-a@x.com", "pw", "")
	require.NoError(t, err)

	b := newClient(t, ts.URL)
	_, err = b.Login(ctx, "only-a@x.com", "pw")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestHTTPClient_Unavailable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	ts.Close()

	c := newClient(t, ts.URL)
	err := c.Ping(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClient_NonJSONError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer ts.Close()

	c := newClient(t, ts.URL)
	_, err := c.Dashboard(context.Background())

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "upstream exploded", apiErr.Message)
	assert.Nil(t, errors.Unwrap(apiErr))
}
