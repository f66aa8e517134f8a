package engine

import (
	"testing"
	"time"

	"github.com/remindkit/remindkit/pkg/models"
	"gorm.io/datatypes"
)

func viewAt(r models.Reminder, occurrence, now time.Time) View {
	return View{Reminder: r, Occurrence: occurrence, Classification: Classify(r, occurrence, now)}
}

func TestApplyFilterSearch(t *testing.T) {
	now := time.Date(2024, 5, 22, 12, 0, 0, 0, time.UTC)
	occ := now.Add(time.Hour)

	views := []View{
		viewAt(models.Reminder{ID: 1, Title: "Dentist Appointment", Priority: 1}, occ, now),
		viewAt(models.Reminder{ID: 2, Title: "Groceries", Description: "buy APPLES", Priority: 1}, occ, now),
		viewAt(models.Reminder{ID: 3, Title: "Gym", Notes: "leg day", Priority: 1}, occ, now),
		viewAt(models.Reminder{ID: 4, Title: "Call mom", Tags: datatypes.JSONSlice[string]{"family", "weekly-call"}, Priority: 1}, occ, now),
	}

	tests := []struct {
		name    string
		search  string
		wantIDs []uint
	}{
		{"empty search matches all", "", []uint{1, 2, 3, 4}},
		{"title match is case-insensitive", "dentist", []uint{1}},
		{"description match is case-insensitive", "apples", []uint{2}},
		{"notes match", "leg", []uint{3}},
		{"tag match", "family", []uint{4}},
		{"substring of a tag", "weekly", []uint{4}},
		{"no matches yields empty, not error", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := applyFilter(views, Filter{Search: tt.search}, now, time.Monday)
			assertViewIDs(t, got, tt.wantIDs)
		})
	}
}

func TestApplyFilterCategoryCompletionPriority(t *testing.T) {
	now := time.Date(2024, 5, 22, 12, 0, 0, 0, time.UTC)
	occ := now.Add(time.Hour)

	views := []View{
		viewAt(models.Reminder{ID: 1, Category: "work", Priority: 3}, occ, now),
		viewAt(models.Reminder{ID: 2, Category: "health", Priority: 2, Completed: true}, occ, now),
		viewAt(models.Reminder{ID: 3, Category: "errands", Priority: 1}, occ, now),
	}

	tests := []struct {
		name    string
		filter  Filter
		wantIDs []uint
	}{
		{"no categories matches all", Filter{}, []uint{1, 2, 3}},
		{"single category", Filter{Categories: []string{"work"}}, []uint{1}},
		{"custom category is just a member test", Filter{Categories: []string{"errands"}}, []uint{3}},
		{"multiple categories", Filter{Categories: []string{"work", "health"}}, []uint{1, 2}},
		{"completed only", Filter{Completion: CompletionCompleted}, []uint{2}},
		{"incomplete only", Filter{Completion: CompletionIncomplete}, []uint{1, 3}},
		{"priority subset", Filter{Priorities: []int{2, 3}}, []uint{1, 2}},
		{"empty priorities coerced to full set", Filter{Priorities: nil}, []uint{1, 2, 3}},
		{"combined criteria AND together", Filter{Categories: []string{"work", "health"}, Completion: CompletionIncomplete, Priorities: []int{3}}, []uint{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := applyFilter(views, tt.filter, now, time.Monday)
			assertViewIDs(t, got, tt.wantIDs)
		})
	}
}

func TestApplyFilterOverdueWindow(t *testing.T) {
	now := time.Date(2024, 5, 22, 12, 0, 0, 0, time.UTC)
	past := now.Add(-2 * time.Hour)

	views := []View{
		viewAt(models.Reminder{ID: 1, Priority: 1}, past, now),
		// Completed with a past occurrence: never overdue.
		viewAt(models.Reminder{ID: 2, Priority: 1, Completed: true}, past, now),
		viewAt(models.Reminder{ID: 3, Priority: 1}, now.Add(time.Hour), now),
	}

	got := applyFilter(views, Filter{Window: WindowOverdue}, now, time.Monday)
	assertViewIDs(t, got, []uint{1})
}

func TestApplyFilterTimeWindows(t *testing.T) {
	now := time.Date(2024, 5, 22, 12, 0, 0, 0, time.UTC)

	views := []View{
		viewAt(models.Reminder{ID: 1, Priority: 1}, now.Add(2*time.Hour), now),                          // today
		viewAt(models.Reminder{ID: 2, Priority: 1}, time.Date(2024, 5, 23, 9, 0, 0, 0, time.UTC), now),  // tomorrow
		viewAt(models.Reminder{ID: 3, Priority: 1}, time.Date(2024, 5, 31, 9, 0, 0, 0, time.UTC), now),  // this month
		viewAt(models.Reminder{ID: 4, Priority: 1}, time.Date(2024, 7, 10, 9, 0, 0, 0, time.UTC), now),  // far future
	}

	tests := []struct {
		name    string
		filter  Filter
		wantIDs []uint
	}{
		{"today", Filter{Window: WindowToday}, []uint{1}},
		{"tomorrow", Filter{Window: WindowTomorrow}, []uint{2}},
		{"this month", Filter{Window: WindowThisMonth}, []uint{1, 2, 3}},
		{"all", Filter{Window: WindowAll}, []uint{1, 2, 3, 4}},
		{
			"custom range",
			Filter{Window: WindowCustom, CustomRange: &DateRange{
				Start: time.Date(2024, 5, 23, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC),
			}},
			[]uint{2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := applyFilter(views, tt.filter, now, time.Monday)
			assertViewIDs(t, got, tt.wantIDs)
		})
	}
}

func TestApplyFilterDoesNotMutateInput(t *testing.T) {
	now := time.Date(2024, 5, 22, 12, 0, 0, 0, time.UTC)
	views := []View{
		viewAt(models.Reminder{ID: 2, Title: "b", Priority: 1}, now.Add(time.Hour), now),
		viewAt(models.Reminder{ID: 1, Title: "a", Priority: 2}, now.Add(2*time.Hour), now),
	}

	_ = applyFilter(views, Filter{Priorities: []int{1}}, now, time.Monday)

	if views[0].Reminder.ID != 2 || views[1].Reminder.ID != 1 {
		t.Error("applyFilter reordered its input")
	}
	if views[0].Reminder.Title != "b" || views[1].Reminder.Title != "a" {
		t.Error("applyFilter mutated its input records")
	}
}

func assertViewIDs(t *testing.T, got []View, want []uint) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d views, want %d", len(got), len(want))
	}
	for i, v := range got {
		if v.Reminder.ID != want[i] {
			t.Errorf("view[%d].ID = %d, want %d", i, v.Reminder.ID, want[i])
		}
	}
}
