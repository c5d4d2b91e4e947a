package prometheus

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	routeLabels = []string{"method", "route"}

	// Latency buckets in milliseconds
	latencyBuckets = []float64{
		1, 5, 10, 25,
		50, 100, 250,
		500, 1000, 2500,
		5000, 10000,
	}

	RequestTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "taskapi_requests_total",
			Help: "Total number of requests processed",
		},
		append(routeLabels, "status"),
	)

	RequestLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "taskapi_latency_ms",
			Help:    "Request latency in milliseconds",
			Buckets: latencyBuckets,
		},
		routeLabels,
	)

	// outcome: allowed, denied, skipped, degraded
	RateLimitDecisions = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "taskapi_rate_limit_decisions_total",
			Help: "Rate limiter evaluations by outcome",
		},
		[]string{"outcome"},
	)

	// operation: hit, miss, set, invalidate, error
	CacheOperations = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "taskapi_cache_operations_total",
			Help: "Listing cache operations by kind",
		},
		[]string{"operation"},
	)
)

type MetricsConfig struct {
	EnableLatency bool
}

var (
	Config   MetricsConfig
	initOnce sync.Once
)

func Initialize(cfg MetricsConfig) {
	Config = cfg
	initOnce.Do(func() {
		registry.MustRegister(
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewGoCollector(),
		)
	})
}

// Handler exposes the private registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
