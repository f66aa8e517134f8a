package models

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Recurrence represents how often a reminder repeats
type Recurrence string

const (
	RecurrenceOneTime Recurrence = "one-time"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
	RecurrenceCustom  Recurrence = "custom"
)

// AlertType represents how the user wants to be alerted
type AlertType string

const (
	AlertNotification AlertType = "notification"
	AlertSound        AlertType = "sound"
	AlertVibration    AlertType = "vibration"
	AlertEmail        AlertType = "email"
	AlertAll          AlertType = "all"
)

// Priority levels, stored as integers
const (
	PriorityLow    = 1
	PriorityMedium = 2
	PriorityHigh   = 3
)

// Reminder represents a reminder in the system
type Reminder struct {
	ID             uint                        `json:"id" gorm:"primaryKey"`
	Title          string                      `json:"title" gorm:"not null"`
	Description    string                      `json:"description,omitempty"`
	Notes          string                      `json:"notes,omitempty"`
	BaseDateTime   time.Time                   `json:"base_date_time" gorm:"not null;index"`
	Category       string                      `json:"category" gorm:"not null;type:varchar(100);default:'personal';index"`
	Recurrence     Recurrence                  `json:"recurrence" gorm:"not null;type:varchar(20);default:'one-time'"`
	RecurrenceRule string                      `json:"recurrence_rule,omitempty"`
	AlertType      AlertType                   `json:"alert_type" gorm:"not null;type:varchar(20)"`
	Completed      bool                        `json:"completed" gorm:"not null;default:false;index"`
	Priority       int                         `json:"priority" gorm:"not null;default:1;check:priority >= 1 AND priority <= 3"`
	Tags           datatypes.JSONSlice[string] `json:"tags,omitempty"`
	SnoozeUntil    *time.Time                  `json:"snooze_until,omitempty"`
	RemindBefore   int                         `json:"remind_before" gorm:"not null;default:30"`
	CreatedAt      time.Time                   `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt      time.Time                   `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	DeletedAt      gorm.DeletedAt              `json:"-" gorm:"index"`
}

// ValidRecurrence reports whether r is one of the enumerated recurrence values.
func ValidRecurrence(r Recurrence) bool {
	switch r {
	case RecurrenceOneTime, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly, RecurrenceCustom:
		return true
	}
	return false
}

// ValidAlertType reports whether a is one of the enumerated alert types.
func ValidAlertType(a AlertType) bool {
	switch a {
	case AlertNotification, AlertSound, AlertVibration, AlertEmail, AlertAll:
		return true
	}
	return false
}

// Validate checks the structural invariants of a reminder before it is persisted.
func (r *Reminder) Validate() error {
	if r.Title == "" {
		return fmt.Errorf("title is required")
	}
	if r.BaseDateTime.IsZero() {
		return fmt.Errorf("base_date_time is required")
	}
	if !ValidRecurrence(r.Recurrence) {
		return fmt.Errorf("invalid recurrence %q", r.Recurrence)
	}
	if r.Recurrence == RecurrenceCustom && r.RecurrenceRule == "" {
		return fmt.Errorf("recurrence_rule is required for custom recurrence")
	}
	if !ValidAlertType(r.AlertType) {
		return fmt.Errorf("invalid alert_type %q", r.AlertType)
	}
	if r.Priority < PriorityLow || r.Priority > PriorityHigh {
		return fmt.Errorf("priority must be between %d and %d, got %d", PriorityLow, PriorityHigh, r.Priority)
	}
	if r.RemindBefore < 0 {
		return fmt.Errorf("remind_before must not be negative, got %d", r.RemindBefore)
	}
	return nil
}
