package models

import "time"

// Category represents a user-defined reminder category. The four builtin
// categories are not stored; they are merged with stored rows into a single
// catalog at read time (see repository.Categories.Catalog).
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null;uniqueIndex;type:varchar(100)"`
	Builtin   bool      `json:"builtin" gorm:"-"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// BuiltinCategories is the fixed compiled-in category set.
var BuiltinCategories = []string{"work", "health", "study", "personal"}

// IsBuiltinCategory reports whether name is one of the compiled-in categories.
func IsBuiltinCategory(name string) bool {
	for _, c := range BuiltinCategories {
		if c == name {
			return true
		}
	}
	return false
}
