package commands

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/remindkit/remindkit/internal/api"
	"github.com/spf13/cobra"
)

// NewReminderCmd creates the reminder command with all subcommands
func NewReminderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reminder",
		Short: "Reminder management commands",
		Long:  "Create, list, snooze, and manage reminders",
	}

	cmd.AddCommand(newReminderCreateCmd())
	cmd.AddCommand(newReminderListCmd())
	cmd.AddCommand(newReminderShowCmd())
	cmd.AddCommand(newReminderDoneCmd())
	cmd.AddCommand(newReminderSnoozeCmd())
	cmd.AddCommand(newReminderDeleteCmd())

	return cmd
}

// reminder create
func newReminderCreateCmd() *cobra.Command {
	var (
		at           string
		description  string
		notes        string
		category     string
		recurrence   string
		rule         string
		alertType    string
		priority     int
		tags         []string
		remindBefore int
	)

	cmd := &cobra.Command{
		Use:     "create [title]",
		Short:   "Create a new reminder via API",
		Aliases: []string{"add"},
		Args:    cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			title := strings.Join(args, " ")

			when, err := parseDateTime(at)
			if err != nil {
				log.Fatalf("Invalid --at value: %v", err)
			}

			payload := map[string]interface{}{
				"title":          title,
				"description":    description,
				"notes":          notes,
				"base_date_time": when.Format(time.RFC3339),
				"category":       category,
				"recurrence":     recurrence,
				"alert_type":     alertType,
				"priority":       priority,
				"tags":           tags,
			}
			if rule != "" {
				payload["recurrence_rule"] = rule
			}
			if cmd.Flags().Changed("remind-before") {
				payload["remind_before"] = remindBefore
			}

			created, err := api.NewClient().CreateReminder(payload)
			if err != nil {
				log.Fatalf("Failed to create reminder: %v", err)
			}

			fmt.Printf("✅ Created reminder #%d: %s\n", created.ID, created.Title)
			fmt.Printf("   Due: %s (%s)\n", created.BaseDateTime.Local().Format("Mon Jan 2 15:04"), created.Recurrence)
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "When the reminder is due (YYYY-MM-DD HH:MM or RFC 3339, required)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Description")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category (work, health, study, personal or a custom one)")
	cmd.Flags().StringVarP(&recurrence, "recurrence", "r", "one-time", "Recurrence (one-time, daily, weekly, monthly, custom)")
	cmd.Flags().StringVar(&rule, "rule", "", "Custom recurrence rule (required with --recurrence custom)")
	cmd.Flags().StringVarP(&alertType, "alert", "a", "notification", "Alert type (notification, sound, vibration, email, all)")
	cmd.Flags().IntVarP(&priority, "priority", "p", 1, "Priority (1=low, 2=medium, 3=high)")
	cmd.Flags().StringSliceVarP(&tags, "tags", "t", nil, "Tags (comma-separated)")
	cmd.Flags().IntVar(&remindBefore, "remind-before", 30, "Advance warning in minutes")
	cmd.MarkFlagRequired("at")

	return cmd
}

// reminder list
func newReminderListCmd() *cobra.Command {
	var (
		search     string
		window     string
		from       string
		to         string
		categories []string
		completion string
		priorities []int
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List reminders from the API",
		Aliases: []string{"ls"},
		Run: func(cmd *cobra.Command, args []string) {
			views, err := api.NewClient().ListReminders(api.ListQuery{
				Search:     search,
				Window:     window,
				From:       from,
				To:         to,
				Categories: categories,
				Completion: completion,
				Priorities: priorities,
			})
			if err != nil {
				log.Fatalf("Failed to fetch reminders: %v", err)
			}

			if len(views) == 0 {
				fmt.Println("📋 No reminders found.")
				fmt.Println("💡 Create one with 'remindkit reminder create \"My reminder\" --at \"2024-06-01 09:00\"'")
				return
			}

			displayReminderList(views)
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Search title, description, notes and tags")
	cmd.Flags().StringVarP(&window, "window", "w", "all", "Time window (all, today, tomorrow, this-week, this-month, overdue, custom)")
	cmd.Flags().StringVar(&from, "from", "", "Custom window start (YYYY-MM-DD, with --window custom)")
	cmd.Flags().StringVar(&to, "to", "", "Custom window end (YYYY-MM-DD, with --window custom)")
	cmd.Flags().StringSliceVarP(&categories, "category", "c", nil, "Filter by categories")
	cmd.Flags().StringVar(&completion, "completion", "all", "Completion filter (all, completed, incomplete)")
	cmd.Flags().IntSliceVarP(&priorities, "priority", "p", nil, "Filter by priorities (1..3)")

	return cmd
}

// reminder show
func newReminderShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show reminder details",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			id := parseID(args[0])

			view, err := api.NewClient().GetReminder(id)
			if err != nil {
				log.Fatalf("Failed to fetch reminder: %v", err)
			}

			r := view.Reminder
			fmt.Printf("%s #%d %s\n", stateIcon(view.State), r.ID, r.Title)
			fmt.Printf("   State: %s (%s)\n", view.State, dueInLabel(view.DueInMinutes))
			fmt.Printf("   Occurrence: %s\n", view.Occurrence.Local().Format("Mon Jan 2 2006 15:04"))
			fmt.Printf("   Category: %s | Priority: %s | Alert: %s\n", r.Category, priorityLabel(r.Priority), r.AlertType)
			fmt.Printf("   Recurrence: %s", r.Recurrence)
			if r.RecurrenceRule != "" {
				fmt.Printf(" (%s)", r.RecurrenceRule)
			}
			fmt.Println()
			if r.Description != "" {
				fmt.Printf("   Description: %s\n", r.Description)
			}
			if r.Notes != "" {
				fmt.Printf("   Notes: %s\n", r.Notes)
			}
			if len(r.Tags) > 0 {
				fmt.Printf("   Tags: %s\n", strings.Join(r.Tags, ", "))
			}
			if r.SnoozeUntil != nil {
				fmt.Printf("   Snoozed until: %s\n", r.SnoozeUntil.Local().Format("Mon Jan 2 15:04"))
			}
		},
	}

	return cmd
}

// reminder done
func newReminderDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "done [id]",
		Short:   "Toggle a reminder's completion",
		Aliases: []string{"complete"},
		Args:    cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			id := parseID(args[0])

			rem, err := api.NewClient().ToggleComplete(id)
			if err != nil {
				log.Fatalf("Failed to update reminder: %v", err)
			}

			if rem.Completed {
				fmt.Printf("✅ Completed reminder #%d: %s\n", rem.ID, rem.Title)
			} else {
				fmt.Printf("🔄 Reopened reminder #%d: %s\n", rem.ID, rem.Title)
			}
		},
	}

	return cmd
}

// reminder snooze
func newReminderSnoozeCmd() *cobra.Command {
	var minutes int

	cmd := &cobra.Command{
		Use:   "snooze [id]",
		Short: "Snooze a reminder for a number of minutes",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			id := parseID(args[0])

			until, err := api.NewClient().SnoozeReminder(id, minutes)
			if err != nil {
				log.Fatalf("Failed to snooze reminder: %v", err)
			}

			fmt.Printf("😴 Snoozed reminder #%d until %s\n", id, until.Local().Format("Mon Jan 2 15:04"))
		},
	}

	cmd.Flags().IntVarP(&minutes, "minutes", "m", 10, "How long to snooze")

	return cmd
}

// reminder delete
func newReminderDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete [id]",
		Short:   "Delete a reminder",
		Aliases: []string{"rm"},
		Args:    cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			id := parseID(args[0])

			if err := api.NewClient().DeleteReminder(id); err != nil {
				log.Fatalf("Failed to delete reminder: %v", err)
			}

			fmt.Printf("🗑️  Deleted reminder #%d\n", id)
		},
	}

	return cmd
}

// parseDateTime accepts the short local form and RFC 3339.
func parseDateTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("missing date")
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04", raw, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", raw, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
