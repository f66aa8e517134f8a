package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Database  DatabaseConfig  `mapstructure:"database"`
	Server    ServerConfig    `mapstructure:"server"`
	Settings  SettingsConfig  `mapstructure:"settings"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

// DatabaseConfig represents database configuration
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// SettingsConfig carries user-facing defaults that are passed by value into
// the engine; the engine itself holds no global configuration state.
type SettingsConfig struct {
	// WeekStart is "monday" or "sunday" and is the single source of truth
	// for this-week window boundaries across every view.
	WeekStart string `mapstructure:"week_start"`
	// RemindBefore is the default advance-warning threshold in minutes
	// applied to reminders created without one.
	RemindBefore int `mapstructure:"remind_before"`
	// DefaultCategory is assigned to reminders created without a category.
	DefaultCategory string `mapstructure:"default_category"`
}

// SchedulerConfig controls the poll-based due-reminder scanner.
type SchedulerConfig struct {
	IntervalSeconds int `mapstructure:"interval_seconds"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Best effort; absence of a .env file is fine
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.password", "")
	viper.SetDefault("database.name", "remindkit_dev")
	viper.SetDefault("database.ssl_mode", "disable")
	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("settings.week_start", "monday")
	viper.SetDefault("settings.remind_before", 30)
	viper.SetDefault("settings.default_category", "personal")
	viper.SetDefault("scheduler.interval_seconds", 30)

	viper.SetEnvPrefix("REMINDKIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Config file is optional; defaults and env vars cover everything
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &cfg, nil
}

// WeekStartDay maps the configured week start name to a time.Weekday.
// Unrecognized values fall back to Monday.
func (s SettingsConfig) WeekStartDay() time.Weekday {
	if strings.EqualFold(s.WeekStart, "sunday") {
		return time.Sunday
	}
	return time.Monday
}
