package engine

import "errors"

var (
	// ErrInvalidRecurrence is returned when a recurrence value is outside
	// the enumerated set.
	ErrInvalidRecurrence = errors.New("invalid recurrence")

	// ErrInvalidSnoozeDuration is returned for non-positive snooze minutes.
	ErrInvalidSnoozeDuration = errors.New("snooze duration must be a positive number of minutes")

	// ErrMalformedCustomRule is returned by strict resolution when a custom
	// recurrence rule cannot be parsed. Non-strict paths fall back to
	// one-time semantics instead.
	ErrMalformedCustomRule = errors.New("malformed custom recurrence rule")
)
