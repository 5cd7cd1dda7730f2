package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	// RequestsTotal counts relay requests by route and outcome.
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "generation",
		Subsystem: "relay",
		Name:      "requests_total",
		Help:      "Total number of generation requests handled, labeled by route and result.",
	}, []string{"route", "result"})

	// RemoteCallDurationSeconds is the time spent in a single remote call.
	RemoteCallDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "generation",
		Subsystem: "relay",
		Name:      "remote_call_duration_seconds",
		Help:      "Time spent in a single call to the generative API, labeled by operation.",
		// Keep buckets fairly coarse to avoid high-cardinality time series.
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 20, 60, 120},
	}, []string{"operation"})

	// UploadBytes observes the size of media accepted on the media routes.
	UploadBytes = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "generation",
		Subsystem: "relay",
		Name:      "upload_bytes",
		Help:      "Size in bytes of uploaded media files.",
		Buckets:   prometheus.ExponentialBuckets(1024, 4, 10),
	})
)

// Register registers relay metrics with the default Prometheus registry.
// Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			RequestsTotal,
			RemoteCallDurationSeconds,
			UploadBytes,
		)
	})
}
