// Package metrics exposes order submission and catalog refresh metrics in
// Prometheus format.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "burger"

// Metrics implements session.Observer and records catalog refreshes.
type Metrics struct {
	Submissions    *prometheus.CounterVec
	Ignored        *prometheus.CounterVec
	PlacementTime  *prometheus.HistogramVec
	CatalogRefresh *prometheus.CounterVec
	CatalogParts   prometheus.Gauge
	SessionEvicted prometheus.Counter

	registry *prometheus.Registry
}

// New registers every collector with reg.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		Submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "submissions_total",
			Help:      "Order submissions by outcome.",
		}, []string{"outcome"}),
		Ignored: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "submissions_ignored_total",
			Help:      "Submit calls that did not start a request, by reason.",
		}, []string{"reason"}),
		PlacementTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "placement_duration_seconds",
			Help:      "Time from submit to the order placement response.",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 15},
		}, []string{"outcome"}),
		CatalogRefresh: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "refresh_total",
			Help:      "Catalog refresh attempts by result.",
		}, []string{"result"}),
		CatalogParts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "parts",
			Help:      "Number of parts stored by the last successful refresh.",
		}),
		SessionEvicted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sessions",
			Name:      "evicted_total",
			Help:      "Constructor sessions closed for being idle.",
		}),
		registry: reg,
	}

	reg.MustRegister(m.Submissions, m.Ignored, m.PlacementTime, m.CatalogRefresh, m.CatalogParts, m.SessionEvicted)
	return m
}

// SubmissionStarted counts a submission that sent a request.
func (m *Metrics) SubmissionStarted() {
	m.Submissions.WithLabelValues("started").Inc()
}

// SubmissionSucceeded counts a placed order and observes its latency.
func (m *Metrics) SubmissionSucceeded(elapsed time.Duration) {
	m.Submissions.WithLabelValues("succeeded").Inc()
	m.PlacementTime.WithLabelValues("succeeded").Observe(elapsed.Seconds())
}

// SubmissionFailed counts a rejected or failed placement and observes its latency.
func (m *Metrics) SubmissionFailed(elapsed time.Duration) {
	m.Submissions.WithLabelValues("failed").Inc()
	m.PlacementTime.WithLabelValues("failed").Observe(elapsed.Seconds())
}

// SubmissionIgnored counts a submit call that did not start a request.
func (m *Metrics) SubmissionIgnored(reason string) {
	m.Ignored.WithLabelValues(reason).Inc()
}

// CatalogRefreshed records a successful refresh that stored count parts.
func (m *Metrics) CatalogRefreshed(count int) {
	m.CatalogRefresh.WithLabelValues("success").Inc()
	m.CatalogParts.Set(float64(count))
}

// CatalogRefreshFailed records a failed refresh. The parts gauge keeps its value.
func (m *Metrics) CatalogRefreshFailed() {
	m.CatalogRefresh.WithLabelValues("error").Inc()
}

// SessionsEvicted counts sessions closed by the idle sweep.
func (m *Metrics) SessionsEvicted(count int) {
	m.SessionEvicted.Add(float64(count))
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
