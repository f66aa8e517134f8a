package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/remindkit/remindkit/internal/config"
	"github.com/remindkit/remindkit/internal/engine"
	"github.com/remindkit/remindkit/pkg/models"
)

// Client talks to the remindkit API server.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new API client. The base URL comes from
// REMINDKIT_API_URL, then the CLI config file, then the localhost default.
func NewClient() *Client {
	baseURL := os.Getenv("REMINDKIT_API_URL")
	if baseURL == "" {
		if cfg, err := config.LoadConfig(); err == nil && cfg.APIBaseURL != "" {
			baseURL = cfg.APIBaseURL
		}
	}
	if baseURL == "" {
		baseURL = "http://localhost:8080/v1"
	}

	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) makeRequest(method, endpoint string, body interface{}) ([]byte, error) {
	url := c.BaseURL + endpoint

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		var apiError struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &apiError) == nil && apiError.Error != "" {
			return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, apiError.Error)
		}
		return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}

// ListQuery carries the list endpoint's filter parameters.
type ListQuery struct {
	Search     string
	Window     string
	From       string
	To         string
	Categories []string
	Completion string
	Priorities []int
}

// ListReminders fetches classified, filtered, sorted reminder views.
func (c *Client) ListReminders(q ListQuery) ([]engine.View, error) {
	params := url.Values{}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.Window != "" {
		params.Set("window", q.Window)
	}
	if q.From != "" {
		params.Set("from", q.From)
	}
	if q.To != "" {
		params.Set("to", q.To)
	}
	if len(q.Categories) > 0 {
		params.Set("categories", strings.Join(q.Categories, ","))
	}
	if q.Completion != "" {
		params.Set("completion", q.Completion)
	}
	if len(q.Priorities) > 0 {
		strs := make([]string, len(q.Priorities))
		for i, p := range q.Priorities {
			strs[i] = strconv.Itoa(p)
		}
		params.Set("priorities", strings.Join(strs, ","))
	}

	endpoint := "/reminders"
	if enc := params.Encode(); enc != "" {
		endpoint += "?" + enc
	}

	body, err := c.makeRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var views []engine.View
	if err := json.Unmarshal(body, &views); err != nil {
		return nil, fmt.Errorf("failed to decode reminder list: %w", err)
	}
	return views, nil
}

// CreateReminder creates a reminder and returns the stored record.
func (c *Client) CreateReminder(payload map[string]interface{}) (*models.Reminder, error) {
	body, err := c.makeRequest(http.MethodPost, "/reminders", payload)
	if err != nil {
		return nil, err
	}

	var rem models.Reminder
	if err := json.Unmarshal(body, &rem); err != nil {
		return nil, fmt.Errorf("failed to decode reminder: %w", err)
	}
	return &rem, nil
}

// GetReminder fetches a reminder with its current lifecycle state.
func (c *Client) GetReminder(id uint) (*engine.View, error) {
	body, err := c.makeRequest(http.MethodGet, fmt.Sprintf("/reminders/%d", id), nil)
	if err != nil {
		return nil, err
	}

	var view engine.View
	if err := json.Unmarshal(body, &view); err != nil {
		return nil, fmt.Errorf("failed to decode reminder: %w", err)
	}
	return &view, nil
}

// UpdateReminder applies a partial update.
func (c *Client) UpdateReminder(id uint, payload map[string]interface{}) (*models.Reminder, error) {
	body, err := c.makeRequest(http.MethodPut, fmt.Sprintf("/reminders/%d", id), payload)
	if err != nil {
		return nil, err
	}

	var rem models.Reminder
	if err := json.Unmarshal(body, &rem); err != nil {
		return nil, fmt.Errorf("failed to decode reminder: %w", err)
	}
	return &rem, nil
}

// DeleteReminder removes a reminder.
func (c *Client) DeleteReminder(id uint) error {
	_, err := c.makeRequest(http.MethodDelete, fmt.Sprintf("/reminders/%d", id), nil)
	return err
}

// ToggleComplete flips a reminder's completed flag.
func (c *Client) ToggleComplete(id uint) (*models.Reminder, error) {
	body, err := c.makeRequest(http.MethodPut, fmt.Sprintf("/reminders/%d/complete", id), nil)
	if err != nil {
		return nil, err
	}

	var rem models.Reminder
	if err := json.Unmarshal(body, &rem); err != nil {
		return nil, fmt.Errorf("failed to decode reminder: %w", err)
	}
	return &rem, nil
}

// SnoozeReminder snoozes a reminder for the given minutes and returns the
// new override timestamp.
func (c *Client) SnoozeReminder(id uint, minutes int) (time.Time, error) {
	body, err := c.makeRequest(http.MethodPut, fmt.Sprintf("/reminders/%d/snooze", id), map[string]int{"minutes": minutes})
	if err != nil {
		return time.Time{}, err
	}

	var resp struct {
		SnoozeUntil time.Time `json:"snooze_until"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return time.Time{}, fmt.Errorf("failed to decode snooze response: %w", err)
	}
	return resp.SnoozeUntil, nil
}

// ListCategories returns the merged category catalog.
func (c *Client) ListCategories() ([]string, error) {
	body, err := c.makeRequest(http.MethodGet, "/categories", nil)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Categories []string `json:"categories"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return resp.Categories, nil
}

// CreateCategory stores a new custom category.
func (c *Client) CreateCategory(name string) error {
	_, err := c.makeRequest(http.MethodPost, "/categories", map[string]string{"name": name})
	return err
}
