package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/remindkit/remindkit/api/database"
	"github.com/remindkit/remindkit/internal/engine"
	"github.com/remindkit/remindkit/pkg/models"
	"github.com/remindkit/remindkit/pkg/repository"
	"gorm.io/datatypes"
)

// Engine is the temporal-state engine shared by all handlers. Set once at
// startup; the engine itself is stateless and safe for concurrent requests.
var Engine = engine.New()

// CreateReminderInput DTO for creating a new reminder
type CreateReminderInput struct {
	Title          string     `json:"title" binding:"required"`
	Description    string     `json:"description"`
	Notes          string     `json:"notes"`
	BaseDateTime   time.Time  `json:"base_date_time" binding:"required"`
	Category       string     `json:"category"`
	Recurrence     string     `json:"recurrence"`
	RecurrenceRule string     `json:"recurrence_rule"`
	AlertType      string     `json:"alert_type"`
	Priority       *int       `json:"priority"`
	Tags           []string   `json:"tags"`
	RemindBefore   *int       `json:"remind_before"`
}

// Defaults applied to reminders created without explicit values. Overridden
// from config at startup.
var (
	DefaultCategory     = "personal"
	DefaultRemindBefore = 30
)

// CreateReminder creates a new reminder in the database.
func CreateReminder(c *gin.Context) {
	var input CreateReminderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rem := models.Reminder{
		Title:          input.Title,
		Description:    input.Description,
		Notes:          input.Notes,
		BaseDateTime:   input.BaseDateTime,
		Category:       input.Category,
		Recurrence:     models.Recurrence(input.Recurrence),
		RecurrenceRule: input.RecurrenceRule,
		AlertType:      models.AlertType(input.AlertType),
		Completed:      false,
		Priority:       models.PriorityLow,
		Tags:           datatypes.JSONSlice[string](input.Tags),
		RemindBefore:   DefaultRemindBefore,
	}
	if rem.Category == "" {
		rem.Category = DefaultCategory
	}
	if rem.Recurrence == "" {
		rem.Recurrence = models.RecurrenceOneTime
	}
	if rem.AlertType == "" {
		rem.AlertType = models.AlertNotification
	}
	if input.Priority != nil {
		rem.Priority = *input.Priority
	}
	if input.RemindBefore != nil {
		rem.RemindBefore = *input.RemindBefore
	}

	if err := repository.NewReminders(database.DB).Create(&rem); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, rem)
}

// ListReminders returns classified, filtered and sorted reminder views.
// Filter criteria come from query parameters; see ParseFilter.
func ListReminders(c *gin.Context) {
	filter, err := ParseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reminders, err := repository.NewReminders(database.DB).List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reminders"})
		return
	}

	views, err := Engine.FilterAndSort(reminders, filter, Engine.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, views)
}

// GetReminder retrieves a single reminder by ID together with its current
// lifecycle state.
func GetReminder(c *gin.Context) {
	rem, ok := findReminder(c)
	if !ok {
		return
	}

	view, err := Engine.Evaluate(*rem, Engine.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, view)
}

// UpdateReminderInput DTO for partially updating a reminder
type UpdateReminderInput struct {
	Title          *string    `json:"title"`
	Description    *string    `json:"description"`
	Notes          *string    `json:"notes"`
	BaseDateTime   *time.Time `json:"base_date_time"`
	Category       *string    `json:"category"`
	Recurrence     *string    `json:"recurrence"`
	RecurrenceRule *string    `json:"recurrence_rule"`
	AlertType      *string    `json:"alert_type"`
	Priority       *int       `json:"priority"`
	Tags           *[]string  `json:"tags"`
	RemindBefore   *int       `json:"remind_before"`
}

// UpdateReminder applies a partial update to an existing reminder.
func UpdateReminder(c *gin.Context) {
	rem, ok := findReminder(c)
	if !ok {
		return
	}

	var input UpdateReminderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Title != nil {
		rem.Title = *input.Title
	}
	if input.Description != nil {
		rem.Description = *input.Description
	}
	if input.Notes != nil {
		rem.Notes = *input.Notes
	}
	if input.BaseDateTime != nil {
		rem.BaseDateTime = *input.BaseDateTime
	}
	if input.Category != nil {
		rem.Category = *input.Category
	}
	if input.Recurrence != nil {
		rem.Recurrence = models.Recurrence(*input.Recurrence)
	}
	if input.RecurrenceRule != nil {
		rem.RecurrenceRule = *input.RecurrenceRule
	}
	if input.AlertType != nil {
		rem.AlertType = models.AlertType(*input.AlertType)
	}
	if input.Priority != nil {
		rem.Priority = *input.Priority
	}
	if input.Tags != nil {
		rem.Tags = datatypes.JSONSlice[string](*input.Tags)
	}
	if input.RemindBefore != nil {
		rem.RemindBefore = *input.RemindBefore
	}

	if err := repository.NewReminders(database.DB).Save(rem); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rem)
}

// DeleteReminder deletes a reminder from the database.
func DeleteReminder(c *gin.Context) {
	rem, ok := findReminder(c)
	if !ok {
		return
	}

	if err := repository.NewReminders(database.DB).Delete(rem.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete reminder"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reminder deleted successfully"})
}

// ToggleCompleteReminder flips the completed flag.
func ToggleCompleteReminder(c *gin.Context) {
	rem, ok := findReminder(c)
	if !ok {
		return
	}

	repo := repository.NewReminders(database.DB)
	if err := repo.SetCompleted(rem.ID, !rem.Completed); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update reminder"})
		return
	}

	updated, err := repo.Get(rem.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload reminder"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// SnoozeReminderInput DTO for snoozing a reminder
type SnoozeReminderInput struct {
	Minutes int `json:"minutes" binding:"required"`
}

// SnoozeReminder computes and persists a snooze override timestamp.
func SnoozeReminder(c *gin.Context) {
	rem, ok := findReminder(c)
	if !ok {
		return
	}

	var input SnoozeReminderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	until, err := Engine.ComputeSnoozeUntil(Engine.Now(), input.Minutes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := repository.NewReminders(database.DB).SetSnoozeUntil(rem.ID, until); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to snooze reminder"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"snooze_until": until})
}

// findReminder loads the reminder addressed by the :id path parameter,
// writing the error response itself when the lookup fails.
func findReminder(c *gin.Context) (*models.Reminder, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reminder id"})
		return nil, false
	}

	rem, err := repository.NewReminders(database.DB).Get(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reminder not found"})
		return nil, false
	}
	return rem, true
}
