// Package metrics exposes Prometheus instrumentation for the analysis
// engine, project persistence, and the diagnostics supervisor.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// Analysis Metrics
	AnalysisRunsTotal    *prometheus.CounterVec
	AnalysisDuration     *prometheus.HistogramVec
	CutSetsPerRun        prometheus.Histogram
	CutSetSizePerRun     prometheus.Histogram
	CommonCausesPerRun   prometheus.Histogram
	ConstraintViolations *prometheus.CounterVec
	ModelNodesTotal      prometheus.Gauge

	// Project Metrics
	ProjectLoadsTotal   *prometheus.CounterVec
	ProjectSavesTotal   *prometheus.CounterVec
	ProjectSizeBytes    prometheus.Histogram
	ProjectCorruptTotal prometheus.Counter

	// Diagnostics Metrics
	DiagnosticsStatus       *prometheus.GaugeVec
	SupervisorRestartsTotal prometheus.Counter
	DiagnosticsChecksTotal  *prometheus.CounterVec

	registry *prometheus.Registry
	mu       sync.RWMutex
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initAnalysisMetrics()
	r.initProjectMetrics()
	r.initDiagnosticsMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
