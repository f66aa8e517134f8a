package engine

import "time"

// ComputeSnoozeUntil returns the snooze override timestamp now+minutes.
// It only computes the timestamp; persisting it and any completion state
// are the caller's responsibility.
func ComputeSnoozeUntil(now time.Time, minutes int) (time.Time, error) {
	if minutes <= 0 {
		return time.Time{}, ErrInvalidSnoozeDuration
	}
	return now.Add(time.Duration(minutes) * time.Minute), nil
}
