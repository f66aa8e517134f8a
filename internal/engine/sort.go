package engine

import "sort"

// sortViews orders views for display: incomplete before completed, then
// ascending by resolved occurrence time. The sort is stable, so reminders
// with identical completion state and occurrence time keep their original
// relative order. Returns a new slice; the input is left untouched.
func sortViews(views []View) []View {
	out := make([]View, len(views))
	copy(out, views)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Reminder.Completed != b.Reminder.Completed {
			return !a.Reminder.Completed
		}
		return a.Occurrence.Before(b.Occurrence)
	})
	return out
}
