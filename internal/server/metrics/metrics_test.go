package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.Registration("ok")
	m.Registration("duplicate")
	m.Login("ok")
	m.Logged("")
	m.Logged("high")
	m.Logged("high")
	m.Logged("low")
	m.SessionOpened()
	m.SessionOpened()
	m.SessionClosed()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Registrations.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Registrations.WithLabelValues("duplicate")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Logins.WithLabelValues("ok")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.VitalsLogged))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Alerts.WithLabelValues("high")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Alerts.WithLabelValues("low")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SessionsActive))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.Registration("ok")
		m.Login("failed")
		m.Logged("high")
		m.SessionOpened()
		m.SessionClosed()
	})
}
