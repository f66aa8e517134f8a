package engine

import (
	"time"

	"github.com/remindkit/remindkit/pkg/models"
)

// CustomRuleParser interprets opaque custom recurrence rules. The rule
// grammar is not defined here; hosts plug in whatever their rules column
// contains (cron, RRULE, free text).
type CustomRuleParser interface {
	// NextOccurrence returns the first occurrence of rule at or after now,
	// anchored at base.
	NextOccurrence(rule string, base, now time.Time) (time.Time, error)
}

// ResolveNextOccurrence computes the effective occurrence time of a schedule
// relative to now. Pure function of its arguments. An anchor in the future is
// returned unchanged for every recurrence; repeating schedules never produce
// an occurrence before their anchor.
//
// Custom rules are delegated to parser; a nil parser or a parse failure falls
// back to one-time semantics so classification paths stay total.
func ResolveNextOccurrence(base time.Time, rec models.Recurrence, rule string, parser CustomRuleParser, now time.Time) (time.Time, error) {
	switch rec {
	case models.RecurrenceOneTime:
		return base, nil
	case models.RecurrenceDaily:
		return nextByDays(base, now, 1), nil
	case models.RecurrenceWeekly:
		return nextByDays(base, now, 7), nil
	case models.RecurrenceMonthly:
		return nextByMonths(base, now), nil
	case models.RecurrenceCustom:
		if parser == nil {
			return base, nil
		}
		next, err := parser.NextOccurrence(rule, base, now)
		if err != nil {
			return base, nil
		}
		return next, nil
	default:
		return time.Time{}, ErrInvalidRecurrence
	}
}

// nextByDays returns the smallest base+n*step days timestamp that is not
// before now. AddDate keeps the anchor's time-of-day across DST changes.
func nextByDays(base, now time.Time, step int) time.Time {
	if !base.Before(now) {
		return base
	}
	// Jump close to now in one step, then walk the remainder. The walk is
	// needed because day lengths vary around DST transitions.
	days := int(now.Sub(base).Hours()/24) / step * step
	next := base.AddDate(0, 0, days)
	for next.Before(now) {
		next = next.AddDate(0, 0, step)
	}
	return next
}

// nextByMonths returns the smallest base+n months timestamp that is not
// before now, preserving day-of-month and time-of-day. When the target month
// is shorter than the anchor's day-of-month, the day clamps to the last
// valid day of that month.
func nextByMonths(base, now time.Time) time.Time {
	if !base.Before(now) {
		return base
	}
	months := (now.Year()-base.Year())*12 + int(now.Month()) - int(base.Month())
	if months < 0 {
		months = 0
	}
	next := addMonthsClamped(base, months)
	for next.Before(now) {
		months++
		next = addMonthsClamped(base, months)
	}
	return next
}

// addMonthsClamped adds months to t without the normalization AddDate does
// (Jan 31 + 1 month must be Feb 28/29, not Mar 3).
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()

	// First-of-month arithmetic is safe from normalization.
	first := time.Date(year, month, 1, hour, min, sec, t.Nanosecond(), t.Location()).AddDate(0, months, 0)
	if last := daysInMonth(first.Year(), first.Month()); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, hour, min, sec, t.Nanosecond(), t.Location())
}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
