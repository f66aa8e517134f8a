package handlers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/remindkit/remindkit/internal/engine"
)

// ParseFilter builds an engine filter from list query parameters:
//
//	search      free text, matched against title/description/notes/tags
//	window      all|today|tomorrow|this-week|this-month|overdue|custom
//	from, to    custom range bounds (YYYY-MM-DD or RFC 3339), require window=custom
//	categories  comma-separated category names
//	completion  all|completed|incomplete
//	priorities  comma-separated integers 1..3; empty means all
func ParseFilter(c *gin.Context) (engine.Filter, error) {
	f := engine.Filter{
		Search:     c.Query("search"),
		Window:     engine.Window(c.DefaultQuery("window", string(engine.WindowAll))),
		Completion: engine.CompletionFilter(c.DefaultQuery("completion", string(engine.CompletionAll))),
	}

	if raw := c.Query("categories"); raw != "" {
		f.Categories = splitList(raw)
	}

	priorities, err := parsePriorities(c.Query("priorities"))
	if err != nil {
		return engine.Filter{}, err
	}
	f.Priorities = priorities

	if f.Window == engine.WindowCustom {
		start, err := parseDate(c.Query("from"))
		if err != nil {
			return engine.Filter{}, fmt.Errorf("invalid from date: %w", err)
		}
		end, err := parseDate(c.Query("to"))
		if err != nil {
			return engine.Filter{}, fmt.Errorf("invalid to date: %w", err)
		}
		f.CustomRange = &engine.DateRange{Start: start, End: end}
	}

	return f, nil
}

// parsePriorities parses a comma-separated priority list. An empty string
// yields nil, which the engine coerces to the full set.
func parsePriorities(raw string) ([]int, error) {
	if raw == "" {
		return nil, nil
	}
	var out []int
	for _, s := range splitList(raw) {
		p, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid priority %q", s)
		}
		out = append(out, p)
	}
	return out, nil
}

func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("missing date")
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
