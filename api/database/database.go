package database

import (
	"log"

	"github.com/remindkit/remindkit/pkg/config"
	"github.com/remindkit/remindkit/pkg/repository"
	"gorm.io/gorm"
)

// DB is the shared database handle used by the API handlers.
var DB *gorm.DB

// Connect loads configuration and opens the database connection.
func Connect(cfg *config.Config) {
	db, err := repository.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	DB = db
}
