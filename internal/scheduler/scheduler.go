// Package scheduler re-evaluates reminder states on a fixed cadence and
// hands reminders that have just become due to a Notifier. Delivery itself
// (push, email, sound) is outside this package; the default notifier only
// logs.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/jmhodges/clock"
	"github.com/remindkit/remindkit/internal/engine"
	"github.com/remindkit/remindkit/pkg/config"
	"github.com/remindkit/remindkit/pkg/models"
	"go.uber.org/zap"
)

// Store is the slice of the repository the scheduler needs.
type Store interface {
	List() ([]models.Reminder, error)
}

// Notifier receives reminders whose state changed to due-soon or overdue
// since the previous tick.
type Notifier interface {
	Notify(view engine.View)
}

// Scheduler polls the reminder set and reports state transitions. The poll
// model means a missed tick is harmless; the next tick recomputes from
// scratch.
type Scheduler struct {
	store    Store
	engine   *engine.Engine
	notifier Notifier
	logger   *zap.SugaredLogger
	clk      clock.Clock
	interval time.Duration

	// states from the previous tick, keyed by reminder ID
	previous map[uint]engine.State
}

// New creates a scheduler with the logging notifier.
func New(store Store, eng *engine.Engine, cfg config.SchedulerConfig, logger *zap.SugaredLogger) *Scheduler {
	return &Scheduler{
		store:    store,
		engine:   eng,
		notifier: logNotifier{logger: logger},
		logger:   logger,
		clk:      clock.New(),
		interval: time.Duration(cfg.IntervalSeconds) * time.Second,
		previous: make(map[uint]engine.State),
	}
}

// WithNotifier replaces the notifier. Must be called before Run.
func (s *Scheduler) WithNotifier(n Notifier) *Scheduler {
	s.notifier = n
	return s
}

// WithClock replaces the wall clock, typically with a fake in tests.
func (s *Scheduler) WithClock(clk clock.Clock) *Scheduler {
	s.clk = clk
	return s
}

// Run blocks and runs tick() on interval + immediately on start. It exits
// when ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	if s.interval <= 0 {
		return fmt.Errorf("scheduler interval must be positive, got %v", s.interval)
	}

	s.logger.Infow("scheduler started", "interval", s.interval)

	s.tick()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler shutting down")
			return nil
		case <-ticker.C:
			s.tick()
		}
	}
}

// tick recomputes every reminder's state and notifies on transitions into
// due-soon or overdue. States are never persisted; the previous map exists
// only to detect edges between ticks.
func (s *Scheduler) tick() {
	now := s.clk.Now()

	reminders, err := s.store.List()
	if err != nil {
		s.logger.Errorw("failed to list reminders", "err", err)
		return
	}

	current := make(map[uint]engine.State, len(reminders))
	for _, r := range reminders {
		view, err := s.engine.Evaluate(r, now)
		if err != nil {
			s.logger.Errorw("failed to evaluate reminder", "id", r.ID, "err", err)
			continue
		}
		current[r.ID] = view.State

		if !alerting(view.State) {
			continue
		}
		if prev, seen := s.previous[r.ID]; seen && prev == view.State {
			continue
		}
		s.notifier.Notify(view)
	}

	s.previous = current
}

func alerting(st engine.State) bool {
	return st == engine.StateDueSoon || st == engine.StateOverdue
}

// logNotifier is the default delivery: a structured log line carrying the
// alert type for whatever external notifier tails the logs.
type logNotifier struct {
	logger *zap.SugaredLogger
}

func (n logNotifier) Notify(v engine.View) {
	n.logger.Infow("reminder due",
		"id", v.Reminder.ID,
		"title", v.Reminder.Title,
		"state", v.State,
		"due_in_minutes", v.DueInMinutes,
		"alert_type", v.Reminder.AlertType,
	)
}
