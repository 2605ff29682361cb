// Package metrics exposes Prometheus collectors for pooling, banking and HTTP traffic.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pool creation outcomes.
const (
	OutcomeCreated        = "created"
	OutcomeMissing        = "missing_compliance"
	OutcomeInfeasible     = "infeasible"
	OutcomeInvalid        = "invalid"
	OutcomeInvariantError = "invariant_error"
	OutcomeError          = "error"
)

// Metrics provides observability for the compliance service.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	// Pool creation outcomes by result
	PoolOutcome *prometheus.CounterVec

	// Number of ships per created pool
	PoolSize prometheus.Histogram

	// Latency of the compliance fetch fan-out
	FetchLatency prometheus.Histogram

	// Surplus banked and applied, in gCO2e
	BankedAmount  prometheus.Counter
	AppliedAmount prometheus.Counter

	// HTTP request latency by route pattern, method and status
	HTTPLatency *prometheus.HistogramVec
}

// New creates a Metrics instance with all collectors registered on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		PoolOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fueleu_pool_outcomes_total",
			Help: "Total pool creation attempts by outcome",
		}, []string{"outcome"}),

		PoolSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "fueleu_pool_members",
			Help:    "Number of ships in each created pool",
			Buckets: []float64{1, 2, 3, 5, 8, 13, 21, 34},
		}),

		FetchLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "fueleu_pool_fetch_duration_seconds",
			Help:    "Duration of fetching compliance balances for a pool",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),

		BankedAmount: factory.NewCounter(prometheus.CounterOpts{
			Name: "fueleu_banked_gco2e_total",
			Help: "Total surplus banked",
		}),

		AppliedAmount: factory.NewCounter(prometheus.CounterOpts{
			Name: "fueleu_bank_applied_gco2e_total",
			Help: "Total banked surplus applied against deficits",
		}),

		HTTPLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fueleu_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
	}
}

// IncrementPoolOutcome records the result of a pool creation attempt.
func (m *Metrics) IncrementPoolOutcome(outcome string) {
	if m != nil {
		m.PoolOutcome.WithLabelValues(outcome).Inc()
	}
}

// ObservePoolSize records the member count of a created pool.
func (m *Metrics) ObservePoolSize(n int) {
	if m != nil {
		m.PoolSize.Observe(float64(n))
	}
}

// ObserveFetchLatency records how long the compliance fetch took.
func (m *Metrics) ObserveFetchLatency(d time.Duration) {
	if m != nil {
		m.FetchLatency.Observe(d.Seconds())
	}
}

// AddBanked records surplus moved into the bank.
func (m *Metrics) AddBanked(amount float64) {
	if m != nil && amount > 0 {
		m.BankedAmount.Add(amount)
	}
}

// AddApplied records banked surplus spent against a deficit.
func (m *Metrics) AddApplied(amount float64) {
	if m != nil && amount > 0 {
		m.AppliedAmount.Add(amount)
	}
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(route, method, status string, d time.Duration) {
	if m != nil {
		m.HTTPLatency.WithLabelValues(route, method, status).Observe(d.Seconds())
	}
}
