package commands

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/remindkit/remindkit/internal/engine"
	"github.com/remindkit/remindkit/pkg/models"
	"golang.org/x/term"
)

// Helper functions shared across commands

func parseID(raw string) uint {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		log.Fatalf("Invalid reminder ID %q", raw)
	}
	return uint(id)
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// terminalWidth returns the current terminal width, falling back to 80
// when stdout is not a terminal (pipes, CI).
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

func getPriorityIcon(priority int) string {
	switch priority {
	case models.PriorityHigh:
		return "🔴"
	case models.PriorityMedium:
		return "🟡"
	case models.PriorityLow:
		return "🟢"
	default:
		return "⚪"
	}
}

func priorityLabel(priority int) string {
	switch priority {
	case models.PriorityHigh:
		return "high"
	case models.PriorityMedium:
		return "medium"
	case models.PriorityLow:
		return "low"
	default:
		return fmt.Sprintf("unknown (%d)", priority)
	}
}

func stateIcon(st engine.State) string {
	switch st {
	case engine.StateOverdue:
		return "⏰"
	case engine.StateDueSoon:
		return "🔔"
	case engine.StateSnoozed:
		return "😴"
	case engine.StateCompleted:
		return "✅"
	default:
		return "📌"
	}
}

// dueInLabel renders the signed minutes-to-occurrence as a human phrase.
func dueInLabel(minutes int) string {
	switch {
	case minutes == 0:
		return "due now"
	case minutes > 0:
		return fmt.Sprintf("due in %s", minutesPhrase(minutes))
	default:
		return fmt.Sprintf("%s overdue", minutesPhrase(-minutes))
	}
}

func minutesPhrase(m int) string {
	if m < 60 {
		return fmt.Sprintf("%dm", m)
	}
	if m < 24*60 {
		return fmt.Sprintf("%dh %dm", m/60, m%60)
	}
	return fmt.Sprintf("%dd %dh", m/(24*60), (m%(24*60))/60)
}

// displayReminderList prints a one-line-per-reminder table sized to the
// terminal.
func displayReminderList(views []engine.View) {
	width := terminalWidth()
	titleWidth := width - 50
	if titleWidth < 20 {
		titleWidth = 20
	}

	fmt.Printf("%-4s %-3s %-*s %-10s %-18s %s\n", "ID", "", titleWidth, "TITLE", "STATE", "WHEN", "CATEGORY")
	fmt.Println(strings.Repeat("-", width))

	for _, v := range views {
		r := v.Reminder
		fmt.Printf("%-4d %s%s %-*s %-10s %-18s %s\n",
			r.ID,
			stateIcon(v.State),
			getPriorityIcon(r.Priority),
			titleWidth, truncateString(r.Title, titleWidth),
			v.State,
			v.Occurrence.Local().Format("Jan 2 15:04"),
			r.Category,
		)
	}

	fmt.Printf("\n%d reminder(s)\n", len(views))
}
