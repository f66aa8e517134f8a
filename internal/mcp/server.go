package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/remindkit/remindkit/internal/api"
)

// apiClient holds the API client for tool handlers
var apiClient *api.Client

// ServeStdio starts the MCP server using the official go-sdk over stdio
func ServeStdio(client *api.Client) error {
	if client == nil {
		return errors.New("api client is required")
	}
	apiClient = client

	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "remindkit",
			Version: "1.0.0",
		},
		&mcp.ServerOptions{
			Instructions: `⏰ REMINDKIT - Personal Reminder Tools

You are connected to RemindKit, a personal reminder service. Reminder
states (upcoming, due-soon, overdue, snoozed, completed) are always
computed live from the schedule; nothing here goes stale.

## Quick Reference
- LIST:     list_reminders(window: "today") - windows: all, today, tomorrow, this-week, this-month, overdue
- CREATE:   create_reminder(title: "...", base_date_time: "2024-06-01T09:00:00Z")
- DONE:     complete_reminder(id: 3) - toggles, calling it again reopens
- SNOOZE:   snooze_reminder(id: 3, minutes: 15)
- DELETE:   delete_reminder(id: 3)

## Tips
- Recurring reminders take recurrence: daily, weekly, monthly (default one-time)
- Lists come back pre-sorted: incomplete first, soonest first
- Use the search parameter to match title, description, notes and tags`,
		},
	)

	registerTools(server)

	return server.Run(context.Background(), &mcp.StdioTransport{})
}

// wrapList ensures list results are objects, not bare arrays, which some
// clients reject.
func wrapList(items interface{}, count int) map[string]interface{} {
	return map[string]interface{}{
		"items": items,
		"count": count,
	}
}
