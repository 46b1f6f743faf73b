package web

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "countrylist"

// Metrics are the Prometheus collectors exposed on /metrics.
type Metrics struct {
	registry     *prometheus.Registry
	loads        *prometheus.CounterVec
	loadDuration prometheus.Histogram
	pageRenders  *prometheus.CounterVec
}

// NewMetrics registers the collectors on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "loads_total",
			Help:      "Country loads by result (loaded, failed, discarded).",
		}, []string{"result"}),
		loadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "load_duration_seconds",
			Help:      "Duration of country loads.",
			Buckets:   prometheus.DefBuckets,
		}),
		pageRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "page_renders_total",
			Help:      "Rendered pages by load status.",
		}, []string{"status"}),
	}

	m.registry.MustRegister(
		m.loads,
		m.loadDuration,
		m.pageRenders,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) observeLoad(result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.loads.WithLabelValues(result).Inc()
	m.loadDuration.Observe(elapsed.Seconds())
}

func (m *Metrics) observeRender(status string) {
	if m == nil {
		return
	}
	m.pageRenders.WithLabelValues(status).Inc()
}
