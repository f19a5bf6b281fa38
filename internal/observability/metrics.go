package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and gauges for the event pipeline.
type Metrics struct {
	EventsEmitted     prometheus.Counter
	RealEventsEmitted prometheus.Counter
	ClientsConnected  prometheus.Gauge
	SessionsDropped   prometheus.Counter

	APIFetches       *prometheus.CounterVec   // labels: api={usgs,openmeteo}, outcome={success,error}
	APIFetchDuration *prometheus.HistogramVec // labels: api
	CacheLookups     *prometheus.CounterVec   // labels: api, result={hit,miss,stale}

	EventsExported prometheus.Counter
}

// NewMetrics creates and registers all metrics with the default registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.EventsEmitted,
		m.RealEventsEmitted,
		m.ClientsConnected,
		m.SessionsDropped,
		m.APIFetches,
		m.APIFetchDuration,
		m.CacheLookups,
		m.EventsExported,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		EventsEmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "worldstate",
			Name:      "events_emitted_total",
			Help:      "Total events broadcast to clients.",
		}),
		RealEventsEmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "worldstate",
			Name:      "real_events_emitted_total",
			Help:      "Broadcast events sourced from live external APIs.",
		}),
		ClientsConnected: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "worldstate",
			Name:      "clients_connected",
			Help:      "Currently open WebSocket sessions (anonymous count only).",
		}),
		SessionsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "worldstate",
			Name:      "sessions_dropped_total",
			Help:      "Sessions removed after a failed write.",
		}),
		APIFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "worldstate",
			Name:      "api_fetches_total",
			Help:      "External API requests by source and outcome.",
		}, []string{"api", "outcome"}),
		APIFetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "worldstate",
			Name:      "api_fetch_duration_seconds",
			Help:      "External API request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"api"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "worldstate",
			Name:      "cache_lookups_total",
			Help:      "Adapter cache lookups by source and result.",
		}, []string{"api", "result"}),
		EventsExported: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "worldstate",
			Name:      "events_exported_total",
			Help:      "Events published to the optional Kafka export topic.",
		}),
	}
}
