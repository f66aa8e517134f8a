package engine

import (
	"strings"
	"time"

	"github.com/remindkit/remindkit/pkg/models"
)

// CompletionFilter narrows reminders by their completed flag.
type CompletionFilter string

const (
	CompletionAll        CompletionFilter = "all"
	CompletionCompleted  CompletionFilter = "completed"
	CompletionIncomplete CompletionFilter = "incomplete"
)

// Filter is a composite, UI-session-scoped filter. The zero value matches
// everything.
type Filter struct {
	Search      string           `json:"search"`
	Window      Window           `json:"window"`
	CustomRange *DateRange       `json:"custom_range,omitempty"`
	Categories  []string         `json:"categories"`
	Completion  CompletionFilter `json:"completion"`
	Priorities  []int            `json:"priorities"`
}

// normalize coerces unset fields to their match-all forms so the matching
// code never sees an empty priority set or a blank completion filter.
func (f Filter) normalize() Filter {
	if f.Window == "" {
		f.Window = WindowAll
	}
	if f.Completion == "" {
		f.Completion = CompletionAll
	}
	if len(f.Priorities) == 0 {
		f.Priorities = []int{models.PriorityLow, models.PriorityMedium, models.PriorityHigh}
	}
	return f
}

// applyFilter returns the order-preserving subset of views matching f.
// Every criterion must hold (logical AND). Pure projection; the input slice
// and its records are never mutated.
func applyFilter(views []View, f Filter, now time.Time, weekStart time.Weekday) []View {
	f = f.normalize()

	matched := make([]View, 0, len(views))
	for _, v := range views {
		if !matchesSearch(v.Reminder, f.Search) {
			continue
		}
		if !matchesCategory(v.Reminder, f.Categories) {
			continue
		}
		if !matchesCompletion(v.Reminder, f.Completion) {
			continue
		}
		if !matchesWindow(v, f, now, weekStart) {
			continue
		}
		if !containsInt(f.Priorities, v.Reminder.Priority) {
			continue
		}
		matched = append(matched, v)
	}
	return matched
}

// matchesSearch does a case-insensitive substring match against title,
// description, notes and every tag.
func matchesSearch(r models.Reminder, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	for _, hay := range []string{r.Title, r.Description, r.Notes} {
		if strings.Contains(strings.ToLower(hay), needle) {
			return true
		}
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func matchesCategory(r models.Reminder, categories []string) bool {
	if len(categories) == 0 {
		return true
	}
	for _, c := range categories {
		if r.Category == c {
			return true
		}
	}
	return false
}

func matchesCompletion(r models.Reminder, cf CompletionFilter) bool {
	switch cf {
	case CompletionCompleted:
		return r.Completed
	case CompletionIncomplete:
		return !r.Completed
	default:
		return true
	}
}

// matchesWindow matches the resolved occurrence time against the filter
// window. A completed reminder is never overdue, no matter how far its
// occurrence time has slipped.
func matchesWindow(v View, f Filter, now time.Time, weekStart time.Weekday) bool {
	if f.Window == WindowOverdue && v.Reminder.Completed {
		return false
	}
	return InWindow(v.Occurrence, f.Window, now, weekStart, f.CustomRange)
}

func containsInt(s []int, n int) bool {
	for _, v := range s {
		if v == n {
			return true
		}
	}
	return false
}
