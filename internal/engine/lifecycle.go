package engine

import (
	"time"

	"github.com/remindkit/remindkit/pkg/models"
)

// State represents the lifecycle state of a reminder at a point in time.
// It is always recomputed from data, never stored.
type State string

const (
	StateCompleted State = "completed"
	StateSnoozed   State = "snoozed"
	StateOverdue   State = "overdue"
	StateDueSoon   State = "due-soon"
	StateUpcoming  State = "upcoming"
)

// Classification is the result of classifying a reminder against now.
// DueInMinutes is negative once the occurrence has passed.
type Classification struct {
	State        State `json:"state"`
	DueInMinutes int   `json:"due_in_minutes"`
}

// Classify computes the lifecycle state of a reminder with a resolved
// occurrence time. Rules apply in priority order, first match wins:
//
//  1. completed  — the persisted flag suppresses everything else
//  2. snoozed    — snooze-until is set and still in the future
//  3. overdue    — occurrence is strictly before now
//  4. due-soon   — occurrence is within the remind-before window
//  5. upcoming   — everything else
//
// Total over well-formed input; a zero occurrence time classifies as
// upcoming rather than failing.
func Classify(r models.Reminder, occurrence, now time.Time) Classification {
	c := Classification{
		DueInMinutes: int(occurrence.Sub(now) / time.Minute),
	}

	switch {
	case r.Completed:
		c.State = StateCompleted
	case r.SnoozeUntil != nil && r.SnoozeUntil.After(now):
		c.State = StateSnoozed
	case occurrence.IsZero():
		c.State = StateUpcoming
	case occurrence.Before(now):
		c.State = StateOverdue
	case occurrence.Sub(now) <= time.Duration(r.RemindBefore)*time.Minute:
		c.State = StateDueSoon
	default:
		c.State = StateUpcoming
	}
	return c
}
