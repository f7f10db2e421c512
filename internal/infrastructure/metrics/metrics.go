package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "payment_gateway"

type Metrics struct {
	payments     *prometheus.CounterVec
	bankRequests *prometheus.CounterVec
	bankDuration *prometheus.HistogramVec
}

// New registers the gateway collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		payments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payments_processed_total",
			Help:      "Payment submissions by outcome (payment status or error kind).",
		}, []string{"outcome"}),
		bankRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bank_requests_total",
			Help:      "Authorization calls to the bank by outcome.",
		}, []string{"outcome"}),
		bankDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "bank_request_duration_seconds",
			Help:      "Latency of authorization calls to the bank.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
	}
	reg.MustRegister(m.payments, m.bankRequests, m.bankDuration)
	return m
}

func (m *Metrics) PaymentProcessed(outcome string) {
	m.payments.WithLabelValues(outcome).Inc()
}

func (m *Metrics) BankCallCompleted(outcome string, elapsed time.Duration) {
	m.bankRequests.WithLabelValues(outcome).Inc()
	m.bankDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}
