package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mercator-hq/ganymede/pkg/config"
)

// Collector owns the Prometheus registry for the library's metrics.
type Collector struct {
	registry *prometheus.Registry
	contract *ContractMetrics
	cfg      *config.MetricsConfig
}

// NewCollector creates a registry with the standard process and Go
// runtime collectors plus the contract metrics.
func NewCollector(cfg *config.MetricsConfig) *Collector {
	registry := prometheus.NewRegistry()

	registry.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	return &Collector{
		registry: registry,
		contract: NewContractMetrics(cfg, registry),
		cfg:      cfg,
	}
}

// RegisterAuditDropped exposes the audit recorder's dropped-record count
// as a gauge sourced on scrape. dropped is typically the recorder's
// Dropped method.
func (c *Collector) RegisterAuditDropped(dropped func() uint64) {
	c.registry.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: c.cfg.Namespace,
			Subsystem: "audit",
			Name:      "dropped_records",
			Help:      "Violation records dropped because the audit buffer was full",
		},
		func() float64 { return float64(dropped()) },
	))
}

// Registry returns the underlying registry, for callers that register
// their own metrics alongside.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Contract returns the contract metrics.
func (c *Collector) Contract() *ContractMetrics {
	return c.contract
}

// Handler returns an HTTP handler exposing all registered metrics in
// the standard Prometheus exposition format, typically mounted at
// "/metrics" by the host application.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(
		c.registry,
		promhttp.HandlerOpts{
			EnableOpenMetrics: true,
			ErrorHandling:     promhttp.ContinueOnError,
		},
	)
}
