// Package metrics exposes Prometheus counters for page renders.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so tests can create as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	renders     *prometheus.CounterVec
	suppressed  prometheus.Counter
	fieldErrors *prometheus.CounterVec
	adminWrites *prometheus.CounterVec
}

// New registers the render counters plus Go runtime collectors.
func New() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.renders = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "clinic_facts_renders_total",
		Help: "Product page renders by output kind.",
	}, []string{"kind"})
	m.suppressed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "clinic_facts_event_records_suppressed_total",
		Help: "Renders where no start date resolved and the SportsEvent record was omitted.",
	})
	m.fieldErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "clinic_facts_field_errors_total",
		Help: "Content store failures degraded to empty field values.",
	}, []string{"field"})
	m.adminWrites = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "clinic_facts_admin_writes_total",
		Help: "Admin metadata writes by section.",
	}, []string{"section"})

	m.registry.MustRegister(
		m.renders,
		m.suppressed,
		m.fieldErrors,
		m.adminWrites,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Render counts one render of the given kind (facts, jsonld, head, ...).
func (m *Metrics) Render(kind string) { m.renders.WithLabelValues(kind).Inc() }

// Suppressed counts a render whose structured record was omitted.
func (m *Metrics) Suppressed() { m.suppressed.Inc() }

// FieldError counts a store failure for field.
func (m *Metrics) FieldError(field string) { m.fieldErrors.WithLabelValues(field).Inc() }

// AdminWrite counts a metadata write for section.
func (m *Metrics) AdminWrite(section string) { m.adminWrites.WithLabelValues(section).Inc() }

// Registry exposes the underlying registry for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
