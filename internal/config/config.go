package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	Reminder ReminderConfig
	Notify   NotifyConfig
	Sheets   SheetsConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// MongoDBConfig holds settings for MongoDB.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// ReminderConfig holds scheduler-related settings for treatment reminders and
// the daily report export.
type ReminderConfig struct {
	CronSchedule string
	Timezone     string
}

// NotifyConfig contains the optional outbound webhook used for treatment
// reminders. Notifications are disabled when WebhookURL is empty.
type NotifyConfig struct {
	WebhookURL string
	Token      string
}

// SheetsConfig contains configuration for the optional Google Sheets report
// export. The export is disabled when either field is empty.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		MongoDB: MongoDBConfig{
			URI:    getenvWithDefault("MONGODB_URI", "mongodb://localhost:27017"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "herdbook"),
		},
		Reminder: ReminderConfig{
			CronSchedule: getenvWithDefault("REMINDER_CRON_SCHEDULE", "0 7 * * *"),
			Timezone:     getenvWithDefault("TIMEZONE", "Africa/Conakry"),
		},
		Notify: NotifyConfig{
			WebhookURL: os.Getenv("NOTIFY_WEBHOOK_URL"),
			Token:      os.Getenv("NOTIFY_TOKEN"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_REPORT_ID"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	switch {
	case c.MongoDB.URI == "":
		return errors.New("MONGODB_URI must be provided")
	case c.MongoDB.DBName == "":
		return errors.New("MONGODB_DB_NAME must be provided")
	}

	if c.Reminder.CronSchedule == "" {
		return errors.New("REMINDER_CRON_SCHEDULE must be provided")
	}

	if c.Reminder.Timezone == "" {
		return errors.New("TIMEZONE must be provided")
	}

	// Sheets export is optional, but a partial configuration is a mistake.
	if (c.Sheets.CredentialsPath == "") != (c.Sheets.SpreadsheetID == "") {
		return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH and GOOGLE_SHEET_REPORT_ID must be provided together")
	}

	return nil
}

// SheetsEnabled reports whether the report export is configured.
func (c *Config) SheetsEnabled() bool {
	return c.Sheets.CredentialsPath != "" && c.Sheets.SpreadsheetID != ""
}

// NotifyEnabled reports whether the reminder webhook is configured.
func (c *Config) NotifyEnabled() bool {
	return c.Notify.WebhookURL != ""
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
