package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "craftledger",
			Name:      "http_requests",
			Help:      "Time taken to process HTTP requests",
			Buckets:   []float64{.005, .01, .025, .05, .075, .1, .15, .2, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "route", "status"},
	)

	LedgerOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "craftledger",
			Name:      "ledger_operations_total",
			Help:      "Ledger operations by kind and outcome",
		},
		[]string{"operation", "error"},
	)

	TokensMoved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "craftledger",
			Name:      "tokens_moved_total",
			Help:      "Tokens purchased or tipped",
		},
		[]string{"operation"},
	)

	EventPublishFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "craftledger",
			Name:      "event_publish_failures_total",
			Help:      "Ledger events that could not be published",
		},
	)
)

func CollectRequestMetric(method, route string, status int, start time.Time) {
	RequestsHistogram.
		WithLabelValues(method, route, statusClass(status)).
		Observe(time.Since(start).Seconds())
}

func CollectLedgerOperation(operation string, err error) {
	LedgerOperations.
		WithLabelValues(operation, errLabelValue(err)).
		Inc()
}

func CollectTokensMoved(operation string, amount int) {
	TokensMoved.
		WithLabelValues(operation).
		Add(float64(amount))
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}

func errLabelValue(err error) string {
	if err != nil {
		return "true"
	}
	return "false"
}
