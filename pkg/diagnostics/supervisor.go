package diagnostics

import (
	"context"
	"sync"
	"time"

	"github.com/capek-safety/veritree/pkg/logging"
	"github.com/capek-safety/veritree/pkg/metrics"
)

// Worker is a long-running background task managed by the Supervisor.
// Run should return when its context is cancelled; returning earlier
// counts as a death and triggers a respawn.
type Worker struct {
	Name string
	Run  func(ctx context.Context)
}

// Supervisor polls worker liveness on a fixed interval and respawns
// workers that have died. Respawns are fire-and-forget; no ordering is
// guaranteed between workers.
type Supervisor struct {
	interval time.Duration
	logger   logging.Logger
	metrics  *metrics.Registry

	mu      sync.Mutex
	workers []Worker
	alive   []chan struct{}
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewSupervisor creates a supervisor polling at the given interval.
func NewSupervisor(interval time.Duration, logger logging.Logger, reg *metrics.Registry) *Supervisor {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Supervisor{interval: interval, logger: logger, metrics: reg}
}

// Add registers a worker. Must be called before Start.
func (s *Supervisor) Add(w Worker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workers = append(s.workers, w)
	s.alive = append(s.alive, nil)
}

// Start launches every worker and the liveness poll loop.
func (s *Supervisor) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	s.cancel = cancel
	for i := range s.workers {
		s.alive[i] = s.spawn(ctx, s.workers[i])
	}
	s.mu.Unlock()

	s.wg.Add(1)
	go s.poll(ctx)
}

// Stop cancels all workers and waits for the poll loop to exit.
func (s *Supervisor) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

// spawn starts one worker and returns a channel closed on its death.
func (s *Supervisor) spawn(ctx context.Context, w Worker) chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Run(ctx)
	}()
	return done
}

func (s *Supervisor) poll(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.respawnDead(ctx)
		}
	}
}

func (s *Supervisor) respawnDead(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.workers {
		select {
		case <-s.alive[i]:
			if ctx.Err() != nil {
				return
			}
			s.logger.Warn("worker died, respawning",
				logging.String("worker", s.workers[i].Name))
			if s.metrics != nil {
				s.metrics.SupervisorRestartsTotal.Inc()
			}
			s.alive[i] = s.spawn(ctx, s.workers[i])
		default:
		}
	}
}

// RunPeriodic adapts a diagnostics manager into a worker that runs the
// full check set on every poll tick.
func RunPeriodic(m *Manager, interval time.Duration, logger logging.Logger) Worker {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return Worker{
		Name: "diagnostics",
		Run: func(ctx context.Context) {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					report := m.Run()
					if report.Status != StatusHealthy {
						logger.Warn("diagnostics degraded",
							logging.String("status", string(report.Status)),
							logging.Count(len(report.Results)))
					}
				}
			}
		},
	}
}
