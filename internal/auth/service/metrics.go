package service

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts session outcomes. A nil *Metrics is valid and records nothing.
type Metrics struct {
	logins         *prometheus.CounterVec
	refreshes      *prometheus.CounterVec
	logouts        *prometheus.CounterVec
	passwordVerify prometheus.Histogram
}

// NewMetrics registers the session collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		logins: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "notedesk",
			Subsystem: "session",
			Name:      "logins_total",
			Help:      "Login attempts by outcome.",
		}, []string{"outcome"}),
		refreshes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "notedesk",
			Subsystem: "session",
			Name:      "refreshes_total",
			Help:      "Refresh attempts by outcome.",
		}, []string{"outcome"}),
		logouts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "notedesk",
			Subsystem: "session",
			Name:      "logouts_total",
			Help:      "Logout requests by outcome.",
		}, []string{"outcome"}),
		passwordVerify: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "notedesk",
			Subsystem: "session",
			Name:      "password_verify_seconds",
			Help:      "Time spent verifying passwords, including dummy verifications.",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1},
		}),
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrBadRequest):
		return "bad_request"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	default:
		return "error"
	}
}

func (m *Metrics) observeLogin(err error) {
	if m == nil {
		return
	}
	m.logins.WithLabelValues(outcome(err)).Inc()
}

func (m *Metrics) observeRefresh(err error) {
	if m == nil {
		return
	}
	m.refreshes.WithLabelValues(outcome(err)).Inc()
}

func (m *Metrics) observeLogout(cleared bool) {
	if m == nil {
		return
	}
	if cleared {
		m.logouts.WithLabelValues("cleared").Inc()
		return
	}
	m.logouts.WithLabelValues("no_cookie").Inc()
}

// timePasswordVerify returns a func that records the elapsed time when called.
func (m *Metrics) timePasswordVerify() func() {
	if m == nil {
		return func() {}
	}
	start := time.Now()
	return func() { m.passwordVerify.Observe(time.Since(start).Seconds()) }
}
