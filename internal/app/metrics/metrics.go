package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	// HTTPRequestsTotal counts served requests by chi route pattern.
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "healthportal",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests served, labeled by method, route pattern and status code.",
	}, []string{"method", "route", "status"})

	// AIRequestsTotal counts outbound generative AI calls.
	AIRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "healthportal",
		Name:      "ai_requests_total",
		Help:      "Total number of generative AI calls, labeled by feature, provider and outcome.",
	}, []string{"feature", "provider", "outcome"})

	AIRequestDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "healthportal",
		Name:      "ai_request_duration_seconds",
		Help:      "Latency of generative AI calls.",
		Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
	}, []string{"feature", "provider"})

	// AIParseFallbackTotal counts model replies that did not contain usable JSON.
	AIParseFallbackTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "healthportal",
		Name:      "ai_parse_fallback_total",
		Help:      "Total number of AI responses that fell back to defaults because no JSON could be parsed.",
	}, []string{"feature"})

	TranslationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "healthportal",
		Name:      "translations_total",
		Help:      "Total number of translation requests, labeled by resulting status.",
	}, []string{"status"})
)

// Register registers service metrics with the default Prometheus registry.
// Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			HTTPRequestsTotal,
			AIRequestsTotal,
			AIRequestDurationSeconds,
			AIParseFallbackTotal,
			TranslationsTotal,
		)
	})
}
