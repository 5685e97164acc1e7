package metrics

import (
	"time"
)

// RecordAnalysis records one analysis run with its duration
func (r *Registry) RecordAnalysis(analysisType, status string, duration time.Duration) {
	r.AnalysisRunsTotal.WithLabelValues(analysisType, status).Inc()
	r.AnalysisDuration.WithLabelValues(analysisType).Observe(duration.Seconds())
}

// RecordCutSetRun records the shape of one cut-set enumeration
func (r *Registry) RecordCutSetRun(duration time.Duration, cutSets, largestSet int) {
	r.RecordAnalysis("cut_sets", "ok", duration)
	r.CutSetsPerRun.Observe(float64(cutSets))
	r.CutSetSizePerRun.Observe(float64(largestSet))
}

// RecordCommonCauseRun records one common-cause detection run
func (r *Registry) RecordCommonCauseRun(duration time.Duration, causes int) {
	r.RecordAnalysis("common_causes", "ok", duration)
	r.CommonCausesPerRun.Observe(float64(causes))
}

// RecordViolation records a detected model constraint violation
func (r *Registry) RecordViolation(constraint, severity string) {
	r.ConstraintViolations.WithLabelValues(constraint, severity).Inc()
}

// RecordProjectLoad records a project load attempt
func (r *Registry) RecordProjectLoad(status string, sizeBytes int) {
	r.ProjectLoadsTotal.WithLabelValues(status).Inc()
	if sizeBytes > 0 {
		r.ProjectSizeBytes.Observe(float64(sizeBytes))
	}
}

// RecordProjectSave records a project save attempt
func (r *Registry) RecordProjectSave(status string, sizeBytes int) {
	r.ProjectSavesTotal.WithLabelValues(status).Inc()
	if sizeBytes > 0 {
		r.ProjectSizeBytes.Observe(float64(sizeBytes))
	}
}

// SetDiagnosticsStatus publishes the status of one diagnostics check
func (r *Registry) SetDiagnosticsStatus(check string, status float64) {
	r.DiagnosticsStatus.WithLabelValues(check).Set(status)
}
