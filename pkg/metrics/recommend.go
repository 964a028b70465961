package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the recommendations HTTP handler
	RecommendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "recommend_latency_seconds",
		Help:    "Latency of recommendation requests",
		Buckets: prometheus.DefBuckets,
	})

	// Recommendations served, labeled per strategy
	RecommendRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "recommend_requests_total",
		Help: "Total number of recommendation requests",
	}, []string{"strategy"})

	// Generative calls that fell back to the hybrid ranking
	GenerativeFallbacks = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommend_generative_fallbacks_total",
		Help: "Total number of generative requests served by the hybrid fallback",
	})

	// Chat resolver requests
	ChatRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "chat_requests_total",
		Help: "Total number of chat resolver requests",
	})
)

func Init() {
	prometheus.MustRegister(
		RecommendLatency,
		RecommendRequests,
		GenerativeFallbacks,
		ChatRequests,
	)
}
