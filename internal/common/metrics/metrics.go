package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "creon",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "creon",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)

	tipsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "creon",
			Name:      "tips_created_total",
			Help:      "Tips recorded, by currency.",
		},
		[]string{"currency"},
	)

	walletConnections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "creon",
			Name:      "wallet_connections_total",
			Help:      "Wallet connect calls, by whether an account was provisioned.",
		},
		[]string{"result"},
	)

	statsInvariantViolations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "creon",
			Name:      "stats_invariant_violations_total",
			Help:      "Tips whose recipient had no stats row.",
		},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		httpRequests,
		httpDuration,
		tipsCreated,
		walletConnections,
		statsInvariantViolations,
	)
}

// Handler exposes the registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// ObserveHTTPRequest records one finished request. path must be the route
// template, not the raw URL, to keep label cardinality bounded.
func ObserveHTTPRequest(method, path string, status int, elapsed time.Duration) {
	if path == "" {
		path = "unmatched"
	}
	httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

func RecordTip(currency string) {
	tipsCreated.WithLabelValues(currency).Inc()
}

func RecordWalletConnection(created bool) {
	result := "existing"
	if created {
		result = "created"
	}
	walletConnections.WithLabelValues(result).Inc()
}

func RecordStatsInvariantViolation() {
	statsInvariantViolations.Inc()
}
