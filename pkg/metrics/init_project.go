package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initProjectMetrics() {
	r.ProjectLoadsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "veritree_project_loads_total",
			Help: "Total number of project load attempts",
		},
		[]string{"status"},
	)

	r.ProjectSavesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "veritree_project_saves_total",
			Help: "Total number of project save attempts",
		},
		[]string{"status"},
	)

	r.ProjectSizeBytes = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "veritree_project_size_bytes",
			Help:    "Compressed size of saved project archives",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
		},
	)

	r.ProjectCorruptTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "veritree_project_corrupt_total",
			Help: "Total number of project archives rejected as corrupt",
		},
	)
}

func (r *Registry) initDiagnosticsMetrics() {
	r.DiagnosticsStatus = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "veritree_diagnostics_status",
			Help: "Status per diagnostics check (0=healthy, 1=degraded, 2=unhealthy)",
		},
		[]string{"check"},
	)

	r.SupervisorRestartsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "veritree_supervisor_restarts_total",
			Help: "Total number of worker restarts by the supervisor",
		},
	)

	r.DiagnosticsChecksTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "veritree_diagnostics_checks_total",
			Help: "Total number of diagnostics check executions",
		},
		[]string{"check", "status"},
	)
}
