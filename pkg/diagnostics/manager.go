// Package diagnostics runs integrity checks over loaded models and
// supervises the background workers that execute them.
package diagnostics

import (
	"sync"
	"time"

	"github.com/capek-safety/veritree/pkg/metrics"
)

// Status represents the result status of a diagnostics check.
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusDegraded  Status = "degraded"
	StatusUnhealthy Status = "unhealthy"
)

// gaugeValue maps a status onto the diagnostics status gauge.
func (s Status) gaugeValue() float64 {
	switch s {
	case StatusHealthy:
		return 0
	case StatusDegraded:
		return 1
	default:
		return 2
	}
}

// Result is the outcome of one check execution.
type Result struct {
	Name        string         `json:"name"`
	Status      Status         `json:"status"`
	Message     string         `json:"message,omitempty"`
	Details     map[string]any `json:"details,omitempty"`
	LastChecked time.Time      `json:"last_checked"`
	Duration    time.Duration  `json:"duration_ms"`
}

// CheckFunc performs one diagnostics check.
type CheckFunc func() Result

// Report is the aggregate outcome of a full diagnostics pass.
type Report struct {
	Status    Status            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Results   map[string]Result `json:"results"`
}

// Manager registers diagnostics checks and runs them on demand.
type Manager struct {
	checks  map[string]CheckFunc
	mu      sync.RWMutex
	metrics *metrics.Registry
}

// NewManager creates an empty diagnostics manager. The metrics registry
// may be nil when instrumentation is disabled.
func NewManager(reg *metrics.Registry) *Manager {
	return &Manager{
		checks:  make(map[string]CheckFunc),
		metrics: reg,
	}
}

// RegisterCheck registers a named diagnostics check.
func (m *Manager) RegisterCheck(name string, check CheckFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checks[name] = check
}

// Run executes all registered checks. The report status is the worst
// status among individual results.
func (m *Manager) Run() Report {
	m.mu.RLock()
	defer m.mu.RUnlock()

	report := Report{
		Status:    StatusHealthy,
		Timestamp: time.Now(),
		Results:   make(map[string]Result),
	}

	for name, check := range m.checks {
		start := time.Now()
		result := check()
		result.Duration = time.Since(start)
		result.LastChecked = start
		report.Results[name] = result

		if m.metrics != nil {
			m.metrics.SetDiagnosticsStatus(name, result.Status.gaugeValue())
			m.metrics.DiagnosticsChecksTotal.WithLabelValues(name, string(result.Status)).Inc()
		}

		// Worst status wins.
		if result.Status == StatusUnhealthy {
			report.Status = StatusUnhealthy
		} else if result.Status == StatusDegraded && report.Status != StatusUnhealthy {
			report.Status = StatusDegraded
		}
	}

	return report
}
