// Package metrics exposes Prometheus metrics for contract checking:
// check counts and durations, violation counts by callable and
// parameter, and audit-buffer drops.
//
// A Collector owns the registry; per-concern metric structs register on
// it and attach to the call path through the interfaces they implement
// (contract.Instrument for timing, policy.Observer for violations):
//
//	collector := metrics.NewCollector(&cfg.Metrics)
//	cm := metrics.NewContractMetrics(&cfg.Metrics, collector.Registry())
//	policy.RegisterObserver(cm)
//	c.SetInstrument(cm)
//	http.Handle("/metrics", collector.Handler())
package metrics
