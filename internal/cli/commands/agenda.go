package commands

import (
	"fmt"
	"log"
	"strings"

	"github.com/remindkit/remindkit/internal/api"
	"github.com/remindkit/remindkit/internal/engine"
	"github.com/spf13/cobra"
)

// NewAgendaCmd creates the agenda command, a board view of incomplete
// reminders grouped by lifecycle state.
func NewAgendaCmd() *cobra.Command {
	var categories []string

	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Display reminders in an agenda board view",
		Long:  "Show a visual overview of incomplete reminders organized by state (OVERDUE, DUE SOON, TODAY, UPCOMING).",
		Run: func(cmd *cobra.Command, args []string) {
			client := api.NewClient()

			views, err := client.ListReminders(api.ListQuery{
				Completion: "incomplete",
				Categories: categories,
			})
			if err != nil {
				log.Fatalf("Failed to fetch reminders: %v", err)
			}

			today, err := client.ListReminders(api.ListQuery{
				Completion: "incomplete",
				Window:     "today",
				Categories: categories,
			})
			if err != nil {
				log.Fatalf("Failed to fetch today's reminders: %v", err)
			}

			displayAgendaBoard(views, today)
		},
	}

	cmd.Flags().StringSliceVarP(&categories, "category", "c", nil, "Filter by categories")

	return cmd
}

func displayAgendaBoard(views, today []engine.View) {
	var overdue, dueSoon, upcoming []engine.View
	todayIDs := make(map[uint]bool, len(today))
	for _, v := range today {
		todayIDs[v.Reminder.ID] = true
	}

	for _, v := range views {
		switch v.State {
		case engine.StateOverdue:
			overdue = append(overdue, v)
		case engine.StateDueSoon:
			dueSoon = append(dueSoon, v)
		case engine.StateUpcoming, engine.StateSnoozed:
			if !todayIDs[v.Reminder.ID] {
				upcoming = append(upcoming, v)
			}
		}
	}

	// Today column: everything due today that is not already alerting.
	var todayCol []engine.View
	for _, v := range today {
		if v.State == engine.StateOverdue || v.State == engine.StateDueSoon {
			continue
		}
		todayCol = append(todayCol, v)
	}

	fmt.Println("🗓️  Reminder Agenda")
	fmt.Println("=" + strings.Repeat("=", 110))
	fmt.Println()

	colWidth := 26

	fmt.Printf("%-*s | %-*s | %-*s | %-*s\n",
		colWidth, "⏰ OVERDUE",
		colWidth, "🔔 DUE SOON",
		colWidth, "📅 TODAY",
		colWidth, "📌 UPCOMING")
	fmt.Printf("%s-+-%s-+-%s-+-%s\n",
		strings.Repeat("-", colWidth),
		strings.Repeat("-", colWidth),
		strings.Repeat("-", colWidth),
		strings.Repeat("-", colWidth))

	maxRows := max(len(overdue), len(dueSoon), len(todayCol), len(upcoming))

	for i := 0; i < maxRows; i++ {
		fmt.Printf("%-*s | %-*s | %-*s | %-*s\n",
			colWidth, agendaCell(overdue, i, colWidth),
			colWidth, agendaCell(dueSoon, i, colWidth),
			colWidth, agendaCell(todayCol, i, colWidth),
			colWidth, agendaCell(upcoming, i, colWidth))
	}

	fmt.Println()
	fmt.Printf("Summary: %d overdue, %d due soon, %d today, %d upcoming\n",
		len(overdue), len(dueSoon), len(todayCol), len(upcoming))

	fmt.Println()
	fmt.Println("Priority: 🔴 High | 🟡 Medium | 🟢 Low")
}

func agendaCell(views []engine.View, i, colWidth int) string {
	if i >= len(views) {
		return ""
	}
	v := views[i]
	return fmt.Sprintf("%s #%d %s",
		getPriorityIcon(v.Reminder.Priority),
		v.Reminder.ID,
		truncateString(v.Reminder.Title, colWidth-10))
}
