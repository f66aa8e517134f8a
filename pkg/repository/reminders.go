package repository

import (
	"fmt"
	"sort"
	"time"

	"github.com/remindkit/remindkit/pkg/models"
	"gorm.io/gorm"
)

// Reminders wraps the reminder table with the operations the core's callers
// need: plain CRUD reads plus the snooze/completion write-backs.
type Reminders struct {
	db *gorm.DB
}

// NewReminders creates a reminder repository on top of db.
func NewReminders(db *gorm.DB) *Reminders {
	return &Reminders{db: db}
}

// Create inserts a new reminder after validating it.
func (r *Reminders) Create(rem *models.Reminder) error {
	if err := rem.Validate(); err != nil {
		return err
	}
	if err := r.db.Create(rem).Error; err != nil {
		return fmt.Errorf("failed to create reminder: %w", err)
	}
	return nil
}

// Get fetches a single reminder by id.
func (r *Reminders) Get(id uint) (*models.Reminder, error) {
	var rem models.Reminder
	if err := r.db.First(&rem, id).Error; err != nil {
		return nil, fmt.Errorf("failed to load reminder %d: %w", id, err)
	}
	return &rem, nil
}

// List returns all reminders. Filtering and ordering are the engine's job;
// the repository only supplies the raw snapshot.
func (r *Reminders) List() ([]models.Reminder, error) {
	var rems []models.Reminder
	if err := r.db.Find(&rems).Error; err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	return rems, nil
}

// Save persists all fields of an existing reminder.
func (r *Reminders) Save(rem *models.Reminder) error {
	if err := rem.Validate(); err != nil {
		return err
	}
	if err := r.db.Save(rem).Error; err != nil {
		return fmt.Errorf("failed to update reminder %d: %w", rem.ID, err)
	}
	return nil
}

// Delete removes a reminder.
func (r *Reminders) Delete(id uint) error {
	res := r.db.Delete(&models.Reminder{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete reminder %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetCompleted writes the completed flag. Completing a reminder also clears
// any pending snooze; the override has nothing left to suppress.
func (r *Reminders) SetCompleted(id uint, completed bool) error {
	updates := map[string]interface{}{"completed": completed}
	if completed {
		updates["snooze_until"] = nil
	}
	res := r.db.Model(&models.Reminder{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("failed to set completed on reminder %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetSnoozeUntil writes the snooze override timestamp.
func (r *Reminders) SetSnoozeUntil(id uint, until time.Time) error {
	res := r.db.Model(&models.Reminder{}).Where("id = ?", id).Update("snooze_until", until)
	if res.Error != nil {
		return fmt.Errorf("failed to snooze reminder %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Categories wraps custom category storage.
type Categories struct {
	db *gorm.DB
}

// NewCategories creates a category repository on top of db.
func NewCategories(db *gorm.DB) *Categories {
	return &Categories{db: db}
}

// Create stores a custom category. Builtin names are rejected so the merged
// catalog never carries duplicates.
func (c *Categories) Create(cat *models.Category) error {
	if cat.Name == "" {
		return fmt.Errorf("category name is required")
	}
	if models.IsBuiltinCategory(cat.Name) {
		return fmt.Errorf("category %q is builtin", cat.Name)
	}
	if err := c.db.Create(cat).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// Catalog merges the builtin category set with stored custom categories into
// a single lookup table, keyed by name. Both sources go through one code
// path from here on.
func (c *Categories) Catalog() (map[string]models.Category, error) {
	catalog := make(map[string]models.Category, len(models.BuiltinCategories))
	for _, name := range models.BuiltinCategories {
		catalog[name] = models.Category{Name: name, Builtin: true}
	}

	var custom []models.Category
	if err := c.db.Find(&custom).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	for _, cat := range custom {
		if _, exists := catalog[cat.Name]; !exists {
			catalog[cat.Name] = cat
		}
	}
	return catalog, nil
}

// CatalogNames returns the merged catalog's names, builtins first, custom
// names in lexical order after them.
func (c *Categories) CatalogNames() ([]string, error) {
	catalog, err := c.Catalog()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(catalog))
	for name, cat := range catalog {
		if !cat.Builtin {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return append(append([]string{}, models.BuiltinCategories...), names...), nil
}
