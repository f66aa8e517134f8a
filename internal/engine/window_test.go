package engine

import (
	"testing"
	"time"
)

func TestInWindow(t *testing.T) {
	// now is a Wednesday.
	now := time.Date(2024, 5, 22, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		date      time.Time
		window    Window
		weekStart time.Weekday
		custom    *DateRange
		want      bool
	}{
		{
			name:   "today matches same calendar day",
			date:   time.Date(2024, 5, 22, 23, 59, 0, 0, time.UTC),
			window: WindowToday,
			want:   true,
		},
		{
			name:   "today rejects tomorrow morning",
			date:   time.Date(2024, 5, 23, 0, 1, 0, 0, time.UTC),
			window: WindowToday,
			want:   false,
		},
		{
			name:   "tomorrow matches next calendar day",
			date:   time.Date(2024, 5, 23, 6, 0, 0, 0, time.UTC),
			window: WindowTomorrow,
			want:   true,
		},
		{
			name:   "tomorrow rejects today",
			date:   now,
			window: WindowTomorrow,
			want:   false,
		},
		{
			name:      "this-week with Monday start includes Monday",
			date:      time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
			window:    WindowThisWeek,
			weekStart: time.Monday,
			want:      true,
		},
		{
			name:      "this-week with Monday start includes Sunday end",
			date:      time.Date(2024, 5, 26, 23, 0, 0, 0, time.UTC),
			window:    WindowThisWeek,
			weekStart: time.Monday,
			want:      true,
		},
		{
			name:      "this-week with Monday start excludes previous Sunday",
			date:      time.Date(2024, 5, 19, 12, 0, 0, 0, time.UTC),
			window:    WindowThisWeek,
			weekStart: time.Monday,
			want:      false,
		},
		{
			name:      "this-week with Sunday start includes previous Sunday",
			date:      time.Date(2024, 5, 19, 12, 0, 0, 0, time.UTC),
			window:    WindowThisWeek,
			weekStart: time.Sunday,
			want:      true,
		},
		{
			name:      "this-week with Sunday start excludes next Sunday",
			date:      time.Date(2024, 5, 26, 12, 0, 0, 0, time.UTC),
			window:    WindowThisWeek,
			weekStart: time.Sunday,
			want:      false,
		},
		{
			name:   "this-month matches any day in the month",
			date:   time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			window: WindowThisMonth,
			want:   true,
		},
		{
			name:   "this-month rejects next month",
			date:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			window: WindowThisMonth,
			want:   false,
		},
		{
			name:   "overdue is strictly before now",
			date:   now.Add(-time.Second),
			window: WindowOverdue,
			want:   true,
		},
		{
			name:   "overdue rejects exactly now",
			date:   now,
			window: WindowOverdue,
			want:   false,
		},
		{
			name:   "custom range normalizes end to end of day",
			date:   time.Date(2024, 5, 24, 23, 30, 0, 0, time.UTC),
			window: WindowCustom,
			custom: &DateRange{
				Start: time.Date(2024, 5, 23, 15, 0, 0, 0, time.UTC),
				End:   time.Date(2024, 5, 24, 8, 0, 0, 0, time.UTC),
			},
			want: true,
		},
		{
			name:   "custom range normalizes start to start of day",
			date:   time.Date(2024, 5, 23, 1, 0, 0, 0, time.UTC),
			window: WindowCustom,
			custom: &DateRange{
				Start: time.Date(2024, 5, 23, 15, 0, 0, 0, time.UTC),
				End:   time.Date(2024, 5, 24, 8, 0, 0, 0, time.UTC),
			},
			want: true,
		},
		{
			name:   "custom range excludes the day after end",
			date:   time.Date(2024, 5, 25, 0, 0, 0, 0, time.UTC),
			window: WindowCustom,
			custom: &DateRange{
				Start: time.Date(2024, 5, 23, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2024, 5, 24, 0, 0, 0, 0, time.UTC),
			},
			want: false,
		},
		{
			name:   "custom window without a range matches nothing",
			date:   now,
			window: WindowCustom,
			want:   false,
		},
		{
			name:   "all matches everything",
			date:   time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC),
			window: WindowAll,
			want:   true,
		},
		{
			name:   "empty window behaves like all",
			date:   now,
			window: "",
			want:   true,
		},
		{
			name:   "unknown window matches nothing",
			date:   now,
			window: "next-quarter",
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weekStart := tt.weekStart
			if tt.window != WindowThisWeek {
				weekStart = time.Monday
			}
			got := InWindow(tt.date, tt.window, now, weekStart, tt.custom)
			if got != tt.want {
				t.Errorf("InWindow(%v, %q) = %v, want %v", tt.date, tt.window, got, tt.want)
			}
		})
	}
}

func TestStartOfWeek(t *testing.T) {
	// 2024-05-22 is a Wednesday.
	wed := time.Date(2024, 5, 22, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		t         time.Time
		weekStart time.Weekday
		want      time.Time
	}{
		{
			name:      "Monday start from midweek",
			t:         wed,
			weekStart: time.Monday,
			want:      time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "Sunday start from midweek",
			t:         wed,
			weekStart: time.Sunday,
			want:      time.Date(2024, 5, 19, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "week start day maps to itself",
			t:         time.Date(2024, 5, 20, 8, 0, 0, 0, time.UTC),
			weekStart: time.Monday,
			want:      time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := startOfWeek(tt.t, tt.weekStart); !got.Equal(tt.want) {
				t.Errorf("startOfWeek() = %v, want %v", got, tt.want)
			}
		})
	}
}
