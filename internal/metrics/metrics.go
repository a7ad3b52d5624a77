package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	once sync.Once

	// HTTP request metrics
	HttpRequestsTotal   *prometheus.CounterVec
	HttpRequestDuration *prometheus.HistogramVec

	// Domain metrics
	OperationsTotal *prometheus.CounterVec
	OrderValueTotal *prometheus.CounterVec
)

// Init registers the collectors with the default registry. Only the first
// call has an effect.
func Init(prefix string) {
	once.Do(func() {
		HttpRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		)

		HttpRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		)

		OperationsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_operations_total",
				Help: "Total number of product and order operations by outcome",
			},
			[]string{"entity", "operation", "outcome"},
		)

		OrderValueTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_order_value_total",
				Help: "Sum of sale value of created orders, by status",
			},
			[]string{"status"},
		)
	})
}

// RecordOperation counts a product/order operation; outcome is "ok" or "error".
func RecordOperation(entity, operation string, err error) {
	if OperationsTotal == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	OperationsTotal.WithLabelValues(entity, operation, outcome).Inc()
}

// RecordOrderValue adds the sale value of a newly created order.
func RecordOrderValue(status string, value float64) {
	if OrderValueTotal == nil {
		return
	}
	OrderValueTotal.WithLabelValues(status).Add(value)
}
