package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the Prometheus instruments for the update pipeline.
type metrics struct {
	sessionsActive prometheus.Gauge
	framesTotal    prometheus.Counter
	renderErrors   prometheus.Counter
	renderDuration prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)

	return &metrics{
		sessionsActive: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "sigil",
			Name:      "sessions_active",
			Help:      "Number of connected websocket sessions",
		}),
		framesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "sigil",
			Name:      "frames_sent_total",
			Help:      "Total HTML frames pushed to clients",
		}),
		renderErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "sigil",
			Name:      "render_errors_total",
			Help:      "Total render or serialization failures",
		}),
		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sigil",
			Name:      "render_duration_seconds",
			Help:      "Flush-and-serialize duration per frame",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}
