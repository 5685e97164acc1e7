package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initAnalysisMetrics() {
	r.AnalysisRunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "veritree_analysis_runs_total",
			Help: "Total number of analysis runs",
		},
		[]string{"analysis_type", "status"},
	)

	r.AnalysisDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "veritree_analysis_duration_seconds",
			Help:    "Analysis run duration in seconds",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
		[]string{"analysis_type"},
	)

	r.CutSetsPerRun = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "veritree_cut_sets_per_run",
			Help:    "Number of cut sets enumerated per run",
			Buckets: []float64{1, 5, 10, 50, 100, 500, 1000},
		},
	)

	r.CutSetSizePerRun = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "veritree_cut_set_size",
			Help:    "Size of the largest cut set per run",
			Buckets: []float64{1, 2, 3, 5, 8, 13, 21},
		},
	)

	r.CommonCausesPerRun = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "veritree_common_causes_per_run",
			Help:    "Number of common causes detected per run",
			Buckets: []float64{0, 1, 2, 5, 10, 25},
		},
	)

	r.ConstraintViolations = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "veritree_constraint_violations_total",
			Help: "Total number of model constraint violations detected",
		},
		[]string{"constraint", "severity"},
	)

	r.ModelNodesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "veritree_model_nodes",
			Help: "Number of nodes in the loaded fault-tree model",
		},
	)
}
