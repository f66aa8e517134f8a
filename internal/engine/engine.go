// Package engine implements the reminder temporal-state core: occurrence
// resolution for recurring schedules, lifecycle classification, time-window
// matching, composite filtering and display ordering. Every function is a
// pure computation over an in-memory snapshot with the current time threaded
// in explicitly, so the same engine drives the API, the CLI and the
// scheduler without their views ever disagreeing.
package engine

import (
	"time"

	"github.com/jmhodges/clock"
	"github.com/remindkit/remindkit/pkg/models"
)

// View is a reminder together with its derived temporal state. It is what
// list-type callers render; the underlying record is carried unmodified.
type View struct {
	Reminder   models.Reminder `json:"reminder"`
	Occurrence time.Time       `json:"occurrence"`
	Classification
}

// Engine bundles the core functions with the configuration they need
// (week start, custom-rule strategy) and an injectable clock. It holds no
// mutable state, so a single Engine is safe for concurrent use.
type Engine struct {
	clk       clock.Clock
	weekStart time.Weekday
	rules     CustomRuleParser
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces the wall clock, typically with a fake in tests.
func WithClock(clk clock.Clock) Option {
	return func(e *Engine) { e.clk = clk }
}

// WithWeekStart sets the first day of this-week windows.
func WithWeekStart(day time.Weekday) Option {
	return func(e *Engine) { e.weekStart = day }
}

// WithCustomRuleParser plugs in a strategy for opaque custom recurrence
// rules. Without one, custom reminders behave as one-time.
func WithCustomRuleParser(p CustomRuleParser) Option {
	return func(e *Engine) { e.rules = p }
}

// New creates an engine. Defaults: real clock, Monday week start, no custom
// rule parser.
func New(opts ...Option) *Engine {
	e := &Engine{
		clk:       clock.New(),
		weekStart: time.Monday,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Now returns the engine clock's current time, for callers that do not have
// a now of their own to thread through.
func (e *Engine) Now() time.Time {
	return e.clk.Now()
}

// WeekStart returns the configured first day of the week.
func (e *Engine) WeekStart() time.Weekday {
	return e.weekStart
}

// Evaluate resolves a reminder's effective occurrence time and classifies
// its lifecycle state at now.
func (e *Engine) Evaluate(r models.Reminder, now time.Time) (View, error) {
	occurrence, err := ResolveNextOccurrence(r.BaseDateTime, r.Recurrence, r.RecurrenceRule, e.rules, now)
	if err != nil {
		return View{}, err
	}
	return View{
		Reminder:       r,
		Occurrence:     occurrence,
		Classification: Classify(r, occurrence, now),
	}, nil
}

// Classify is Evaluate without the wrapper: it returns only the
// classification of r at now.
func (e *Engine) Classify(r models.Reminder, now time.Time) (Classification, error) {
	v, err := e.Evaluate(r, now)
	if err != nil {
		return Classification{}, err
	}
	return v.Classification, nil
}

// FilterAndSort evaluates every reminder, applies the composite filter and
// orders the result for display. The input slice is treated as an immutable
// snapshot; calling twice with the same arguments yields identical output.
func (e *Engine) FilterAndSort(reminders []models.Reminder, f Filter, now time.Time) ([]View, error) {
	views := make([]View, 0, len(reminders))
	for _, r := range reminders {
		v, err := e.Evaluate(r, now)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return sortViews(applyFilter(views, f, now, e.weekStart)), nil
}

// ComputeSnoozeUntil validates minutes and returns now+minutes. Exposed on
// the engine so callers have one façade for all core operations.
func (e *Engine) ComputeSnoozeUntil(now time.Time, minutes int) (time.Time, error) {
	return ComputeSnoozeUntil(now, minutes)
}

// StrictResolve resolves a custom rule and surfaces ErrMalformedCustomRule
// instead of falling back, for callers validating a rule on write.
func (e *Engine) StrictResolve(r models.Reminder, now time.Time) (time.Time, error) {
	if r.Recurrence == models.RecurrenceCustom && e.rules != nil {
		next, err := e.rules.NextOccurrence(r.RecurrenceRule, r.BaseDateTime, now)
		if err != nil {
			return time.Time{}, ErrMalformedCustomRule
		}
		return next, nil
	}
	return ResolveNextOccurrence(r.BaseDateTime, r.Recurrence, r.RecurrenceRule, e.rules, now)
}
