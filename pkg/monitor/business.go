package monitor

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BusinessMetrics holds the drafting engine counters and histograms.
type BusinessMetrics struct {
	ServiceRequestsTotal  *prometheus.CounterVec
	FeeEstimationDuration *prometheus.HistogramVec
	SignedTransactions    *prometheus.CounterVec
	FieldErrorsTotal      *prometheus.CounterVec
}

// Business is always usable. Until InitBusinessMetrics runs it records into
// a private registry that nothing scrapes.
var Business = NewBusinessMetrics(prometheus.NewRegistry())

var initOnce sync.Once

// InitBusinessMetrics registers the metrics on the default prometheus registry.
func InitBusinessMetrics() {
	initOnce.Do(func() {
		Business = NewBusinessMetrics(prometheus.DefaultRegisterer)
	})
}

func NewBusinessMetrics(reg prometheus.Registerer) *BusinessMetrics {
	factory := promauto.With(reg)
	return &BusinessMetrics{
		ServiceRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "multichain_send_service_requests_total",
			Help: "Requests sent to the signing service by method and outcome",
		}, []string{"method", "status"}),
		FeeEstimationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "multichain_send_fee_estimation_duration_seconds",
			Help:    "Duration of fee estimation round trips",
			Buckets: prometheus.DefBuckets,
		}, []string{"network"}),
		SignedTransactions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "multichain_send_signed_transactions_total",
			Help: "Transactions accepted by the signing service",
		}, []string{"network"}),
		FieldErrorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "multichain_send_field_errors_total",
			Help: "Field-level validation errors recorded on drafts",
		}, []string{"field"}),
	}
}
