package mcp

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/remindkit/remindkit/internal/api"
)

func boolPtr(b bool) *bool { return &b }

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_reminders",
		Description: "List reminders with their live state. Optional filters: search (matches title, description, notes, tags), window (all, today, tomorrow, this-week, this-month, overdue), categories (comma-separated), completion (all, completed, incomplete), priorities (comma-separated 1..3). Results are sorted incomplete-first, soonest-first.",
		Annotations: &mcp.ToolAnnotations{
			Title:         "List Reminders",
			ReadOnlyHint:  true,
			OpenWorldHint: boolPtr(false),
		},
	}, handleListReminders)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_reminder",
		Description: "Create a reminder. Required: title, base_date_time (RFC 3339). Optional: description, notes, category (default personal), recurrence (one-time, daily, weekly, monthly; default one-time), alert_type (notification, sound, vibration, email, all), priority (1=low, 2=medium, 3=high), tags, remind_before (minutes of advance warning, default 30).",
		Annotations: &mcp.ToolAnnotations{
			Title:           "Create Reminder",
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(false),
		},
	}, handleCreateReminder)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "complete_reminder",
		Description: "Toggle a reminder's completion flag. Completing also clears any snooze. Calling it on a completed reminder reopens it.",
		Annotations: &mcp.ToolAnnotations{
			Title:           "Complete Reminder",
			DestructiveHint: boolPtr(false),
			IdempotentHint:  false,
			OpenWorldHint:   boolPtr(false),
		},
	}, handleCompleteReminder)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "snooze_reminder",
		Description: "Snooze a reminder for a number of minutes (must be positive). While snoozed the reminder will not alert; when the snooze expires its state is recomputed from the schedule.",
		Annotations: &mcp.ToolAnnotations{
			Title:           "Snooze Reminder",
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(false),
		},
	}, handleSnoozeReminder)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_reminder",
		Description: "Delete a reminder by ID.",
		Annotations: &mcp.ToolAnnotations{
			Title:           "Delete Reminder",
			DestructiveHint: boolPtr(true),
			OpenWorldHint:   boolPtr(false),
		},
	}, handleDeleteReminder)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_categories",
		Description: "List the category catalog: the built-in categories (work, health, study, personal) plus any custom ones.",
		Annotations: &mcp.ToolAnnotations{
			Title:         "List Categories",
			ReadOnlyHint:  true,
			OpenWorldHint: boolPtr(false),
		},
	}, handleListCategories)
}

type EmptyInput struct{}

type ListRemindersInput struct {
	Search     string `json:"search,omitempty"`
	Window     string `json:"window,omitempty"`
	From       string `json:"from,omitempty"`
	To         string `json:"to,omitempty"`
	Categories string `json:"categories,omitempty"`
	Completion string `json:"completion,omitempty"`
	Priorities []int  `json:"priorities,omitempty"`
}

func handleListReminders(ctx context.Context, req *mcp.CallToolRequest, input ListRemindersInput) (*mcp.CallToolResult, map[string]interface{}, error) {
	var categories []string
	if input.Categories != "" {
		for _, c := range strings.Split(input.Categories, ",") {
			if c = strings.TrimSpace(c); c != "" {
				categories = append(categories, c)
			}
		}
	}

	views, err := apiClient.ListReminders(api.ListQuery{
		Search:     input.Search,
		Window:     input.Window,
		From:       input.From,
		To:         input.To,
		Categories: categories,
		Completion: input.Completion,
		Priorities: input.Priorities,
	})
	if err != nil {
		return nil, nil, err
	}
	return nil, wrapList(views, len(views)), nil
}

type CreateReminderInput struct {
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Notes        string   `json:"notes,omitempty"`
	BaseDateTime string   `json:"base_date_time"`
	Category     string   `json:"category,omitempty"`
	Recurrence   string   `json:"recurrence,omitempty"`
	AlertType    string   `json:"alert_type,omitempty"`
	Priority     int      `json:"priority,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	RemindBefore int      `json:"remind_before,omitempty"`
}

func handleCreateReminder(ctx context.Context, req *mcp.CallToolRequest, input CreateReminderInput) (*mcp.CallToolResult, map[string]interface{}, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, nil, errors.New("title is required")
	}
	if _, err := time.Parse(time.RFC3339, input.BaseDateTime); err != nil {
		return nil, nil, errors.New("base_date_time must be RFC 3339, e.g. 2024-06-01T09:00:00Z")
	}

	payload := map[string]interface{}{
		"title":          input.Title,
		"base_date_time": input.BaseDateTime,
	}
	if input.Description != "" {
		payload["description"] = input.Description
	}
	if input.Notes != "" {
		payload["notes"] = input.Notes
	}
	if input.Category != "" {
		payload["category"] = input.Category
	}
	if input.Recurrence != "" {
		payload["recurrence"] = input.Recurrence
	}
	if input.AlertType != "" {
		payload["alert_type"] = input.AlertType
	}
	if input.Priority != 0 {
		payload["priority"] = input.Priority
	}
	if len(input.Tags) > 0 {
		payload["tags"] = input.Tags
	}
	if input.RemindBefore != 0 {
		payload["remind_before"] = input.RemindBefore
	}

	rem, err := apiClient.CreateReminder(payload)
	if err != nil {
		return nil, nil, err
	}
	return nil, map[string]interface{}{
		"reminder": rem,
		"message":  "Reminder created",
	}, nil
}

type ReminderIDInput struct {
	ID uint `json:"id"`
}

func handleCompleteReminder(ctx context.Context, req *mcp.CallToolRequest, input ReminderIDInput) (*mcp.CallToolResult, map[string]interface{}, error) {
	rem, err := apiClient.ToggleComplete(input.ID)
	if err != nil {
		return nil, nil, err
	}
	msg := "Reminder reopened"
	if rem.Completed {
		msg = "Reminder completed"
	}
	return nil, map[string]interface{}{
		"reminder": rem,
		"message":  msg,
	}, nil
}

type SnoozeReminderInput struct {
	ID      uint `json:"id"`
	Minutes int  `json:"minutes"`
}

func handleSnoozeReminder(ctx context.Context, req *mcp.CallToolRequest, input SnoozeReminderInput) (*mcp.CallToolResult, map[string]interface{}, error) {
	until, err := apiClient.SnoozeReminder(input.ID, input.Minutes)
	if err != nil {
		return nil, nil, err
	}
	return nil, map[string]interface{}{
		"id":           input.ID,
		"snooze_until": until.Format(time.RFC3339),
		"message":      "Reminder snoozed",
	}, nil
}

func handleDeleteReminder(ctx context.Context, req *mcp.CallToolRequest, input ReminderIDInput) (*mcp.CallToolResult, map[string]interface{}, error) {
	if err := apiClient.DeleteReminder(input.ID); err != nil {
		return nil, nil, err
	}
	return nil, map[string]interface{}{
		"id":      input.ID,
		"message": "Reminder deleted",
	}, nil
}

func handleListCategories(ctx context.Context, req *mcp.CallToolRequest, input EmptyInput) (*mcp.CallToolResult, map[string]interface{}, error) {
	names, err := apiClient.ListCategories()
	if err != nil {
		return nil, nil, err
	}
	return nil, wrapList(names, len(names)), nil
}
