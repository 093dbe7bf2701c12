package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"mercator-hq/ganymede/pkg/config"
	"mercator-hq/ganymede/pkg/policy"
)

// ContractMetrics tracks contract checking.
//
// Metrics:
//   - ganymede_contract_checks_total: Checks by callable, parameter, and result
//   - ganymede_contract_check_duration_seconds: Check duration by callable
//   - ganymede_contract_violations_total: Violations by callable and parameter
type ContractMetrics struct {
	// Total checks performed
	checksTotal *prometheus.CounterVec

	// Check duration histogram
	checkDuration *prometheus.HistogramVec

	// Total violations reported
	violationsTotal *prometheus.CounterVec
}

// Compile-time interface check: violations flow in as a policy observer.
var _ policy.Observer = (*ContractMetrics)(nil)

// NewContractMetrics creates and registers contract metrics with the
// provided registry.
func NewContractMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *ContractMetrics {
	cm := &ContractMetrics{
		checksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "checks_total",
				Help:      "Total number of contract checks performed",
			},
			[]string{"callable", "param", "result"},
		),

		checkDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "check_duration_seconds",
				Help:      "Duration of a single contract check in seconds",
				Buckets:   cfg.CheckDurationBuckets,
			},
			[]string{"callable"},
		),

		violationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "violations_total",
				Help:      "Total number of contract violations reported",
			},
			[]string{"callable", "param"},
		),
	}

	registry.MustRegister(
		cm.checksTotal,
		cm.checkDuration,
		cm.violationsTotal,
	)

	return cm
}

// RecordCheck records one contract check. It implements the call
// wrapper's Instrument interface.
func (cm *ContractMetrics) RecordCheck(callable, param string, matched bool, d time.Duration) {
	result := "match"
	if !matched {
		result = "mismatch"
	}
	cm.checksTotal.WithLabelValues(callable, param, result).Inc()
	cm.checkDuration.WithLabelValues(callable).Observe(d.Seconds())
}

// ObserveViolation implements policy.Observer.
func (cm *ContractMetrics) ObserveViolation(v *policy.Violation) {
	cm.violationsTotal.WithLabelValues(v.Callable, v.Param).Inc()
}
