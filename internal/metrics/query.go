package metrics

import "github.com/prometheus/client_golang/prometheus"

// Query engine Prometheus metrics.
var (
	QueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "askdex",
			Name:      "queries_total",
			Help:      "Total number of processed queries",
		},
		[]string{"domain", "status"},
	)

	QueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "askdex",
			Name:      "query_duration_seconds",
			Help:      "End-to-end query processing duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"domain"},
	)

	ConverterFallbacksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "askdex",
			Name:      "converter_fallbacks_total",
			Help:      "Times the deterministic expression rewrite replaced a failed converter call",
		},
	)
)

var queryMetricsRegistered bool

// RegisterQueryMetrics registers query metrics. Must be called once from main.
func RegisterQueryMetrics() {
	if queryMetricsRegistered {
		return
	}
	prometheus.MustRegister(QueriesTotal)
	prometheus.MustRegister(QueryDuration)
	prometheus.MustRegister(ConverterFallbacksTotal)
	queryMetricsRegistered = true
}
