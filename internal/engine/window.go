package engine

import "time"

// Window is a named predicate over dates used for filtering.
type Window string

const (
	WindowAll       Window = "all"
	WindowToday     Window = "today"
	WindowTomorrow  Window = "tomorrow"
	WindowThisWeek  Window = "this-week"
	WindowThisMonth Window = "this-month"
	WindowOverdue   Window = "overdue"
	WindowCustom    Window = "custom"
)

// DateRange is an inclusive date range for custom windows.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// InWindow reports whether date falls inside the named window relative to
// now. Boundaries are evaluated in now's location. weekStart configures the
// first day of this-week windows; custom is only consulted for WindowCustom,
// where the range is normalized to whole calendar days (start 00:00:00.000,
// end 23:59:59.999).
//
// The overdue window uses the same strict less-than comparison as the
// lifecycle classifier.
func InWindow(date time.Time, w Window, now time.Time, weekStart time.Weekday, custom *DateRange) bool {
	switch w {
	case WindowAll, "":
		return true
	case WindowToday:
		return sameDay(date, now)
	case WindowTomorrow:
		return sameDay(date, now.AddDate(0, 0, 1))
	case WindowThisWeek:
		start := startOfWeek(now, weekStart)
		end := start.AddDate(0, 0, 7)
		return !date.Before(start) && date.Before(end)
	case WindowThisMonth:
		y1, m1, _ := date.In(now.Location()).Date()
		y2, m2, _ := now.Date()
		return y1 == y2 && m1 == m2
	case WindowOverdue:
		return date.Before(now)
	case WindowCustom:
		if custom == nil {
			return false
		}
		start := startOfDay(custom.Start.In(now.Location()))
		end := startOfDay(custom.End.In(now.Location())).AddDate(0, 0, 1)
		return !date.Before(start) && date.Before(end)
	default:
		return false
	}
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.In(b.Location()).Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// startOfWeek returns 00:00 of the most recent weekStart day at or before t.
func startOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	day := startOfDay(t)
	offset := (int(day.Weekday()) - int(weekStart) + 7) % 7
	return day.AddDate(0, 0, -offset)
}
