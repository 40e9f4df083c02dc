package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/cory-johannsen/charhp/internal/game/health"
)

// Metrics holds the Prometheus collectors exported by the server.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	RecordsMaterialized prometheus.Counter
	DamageApplied       prometheus.Counter
	HitPointsLost       prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
//
// Precondition: reg must be non-nil and must not already hold these collectors.
// Postcondition: Returns Metrics whose collectors are all registered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "http",
				Subsystem: "server",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests.",
			},
			[]string{"path", "method", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "http",
				Subsystem: "server",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"path", "method"},
		),
		RecordsMaterialized: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "charhp",
			Subsystem: "health",
			Name:      "records_materialized_total",
			Help:      "Health records created from character sheets.",
		}),
		DamageApplied: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "charhp",
			Subsystem: "health",
			Name:      "damage_events_total",
			Help:      "Damage requests that changed a health record.",
		}),
		HitPointsLost: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "charhp",
			Subsystem: "health",
			Name:      "hit_points_lost_total",
			Help:      "Current hit points removed by damage, excluding temporary hit points.",
		}),
	}
	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.RecordsMaterialized,
		m.DamageApplied,
		m.HitPointsLost,
	)
	return m
}

// Instrument attaches the health counters to e's callbacks.
//
// Precondition: e must be non-nil and not yet serving requests.
func (m *Metrics) Instrument(e *health.Engine) {
	e.OnCreated = func(health.Record) {
		m.RecordsMaterialized.Inc()
	}
	e.OnDamage = func(_ string, hpLost int) {
		m.DamageApplied.Inc()
		m.HitPointsLost.Add(float64(hpLost))
	}
}
