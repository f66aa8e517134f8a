package engine

import (
	"testing"
	"time"

	"github.com/remindkit/remindkit/pkg/models"
)

func TestSortViews(t *testing.T) {
	now := time.Date(2024, 5, 22, 12, 0, 0, 0, time.UTC)

	v := func(id uint, completed bool, occ time.Time) View {
		r := models.Reminder{ID: id, Completed: completed, Priority: 1}
		return viewAt(r, occ, now)
	}

	early := now.Add(time.Hour)
	late := now.Add(3 * time.Hour)

	tests := []struct {
		name    string
		input   []View
		wantIDs []uint
	}{
		{
			name:    "ascending occurrence within incomplete",
			input:   []View{v(1, false, late), v(2, false, early)},
			wantIDs: []uint{2, 1},
		},
		{
			name:    "completed always after incomplete",
			input:   []View{v(1, true, early), v(2, false, late)},
			wantIDs: []uint{2, 1},
		},
		{
			name:    "completed group sorted by occurrence too",
			input:   []View{v(1, true, late), v(2, true, early), v(3, false, late)},
			wantIDs: []uint{3, 2, 1},
		},
		{
			name:    "equal occurrence keeps input order",
			input:   []View{v(7, false, early), v(3, false, early), v(5, false, early)},
			wantIDs: []uint{7, 3, 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sortViews(tt.input)
			assertViewIDs(t, got, tt.wantIDs)
		})
	}
}

func TestSortViewsStability(t *testing.T) {
	// Swapping two equal-key neighbours in the input must swap them in the
	// output: relative order is determined by input order alone.
	now := time.Date(2024, 5, 22, 12, 0, 0, 0, time.UTC)
	occ := now.Add(time.Hour)

	a := viewAt(models.Reminder{ID: 1, Priority: 1}, occ, now)
	b := viewAt(models.Reminder{ID: 2, Priority: 1}, occ, now)

	got := sortViews([]View{a, b})
	assertViewIDs(t, got, []uint{1, 2})

	got = sortViews([]View{b, a})
	assertViewIDs(t, got, []uint{2, 1})
}

func TestSortViewsDoesNotMutateInput(t *testing.T) {
	now := time.Date(2024, 5, 22, 12, 0, 0, 0, time.UTC)
	input := []View{
		viewAt(models.Reminder{ID: 1, Priority: 1}, now.Add(2*time.Hour), now),
		viewAt(models.Reminder{ID: 2, Priority: 1}, now.Add(time.Hour), now),
	}

	_ = sortViews(input)

	if input[0].Reminder.ID != 1 || input[1].Reminder.ID != 2 {
		t.Error("sortViews mutated its input slice")
	}
}
