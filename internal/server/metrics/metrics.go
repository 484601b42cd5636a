// Package metrics exposes HeartTrack counters to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is the set of collectors the server updates. A nil *Metrics is
// valid and records nothing, which keeps services usable without a registry.
type Metrics struct {
	Registrations  *prometheus.CounterVec
	Logins         *prometheus.CounterVec
	VitalsLogged   prometheus.Counter
	Alerts         *prometheus.CounterVec
	SessionsActive prometheus.Gauge
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hearttrack",
			Name:      "registrations_total",
			Help:      "Registration attempts by result.",
		}, []string{"result"}),
		Logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hearttrack",
			Name:      "logins_total",
			Help:      "Login attempts by result.",
		}, []string{"result"}),
		VitalsLogged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hearttrack",
			Name:      "vitals_logged_total",
			Help:      "Vitals records stored.",
		}),
		Alerts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hearttrack",
			Name:      "alerts_total",
			Help:      "Alerts raised when a reading is logged, by level.",
		}, []string{"level"}),
		SessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "hearttrack",
			Name:      "sessions_active",
			Help:      "Sessions currently held in memory.",
		}),
	}

	reg.MustRegister(m.Registrations, m.Logins, m.VitalsLogged, m.Alerts, m.SessionsActive)
	return m
}

func (m *Metrics) Registration(result string) {
	if m == nil {
		return
	}
	m.Registrations.WithLabelValues(result).Inc()
}

func (m *Metrics) Login(result string) {
	if m == nil {
		return
	}
	m.Logins.WithLabelValues(result).Inc()
}

func (m *Metrics) Logged(alertLevel string) {
	if m == nil {
		return
	}
	m.VitalsLogged.Inc()
	if alertLevel != "" {
		m.Alerts.WithLabelValues(alertLevel).Inc()
	}
}

func (m *Metrics) SessionOpened() {
	if m == nil {
		return
	}
	m.SessionsActive.Inc()
}

func (m *Metrics) SessionClosed() {
	if m == nil {
		return
	}
	m.SessionsActive.Dec()
}
