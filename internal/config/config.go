package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

type Config struct {
	Port             string
	DBPath           string
	Location         *time.Location
	LogLevel         string
	Environment      string
	ReminderSchedule string
	ReminderLeadDays int
	TelegramToken    string
	TelegramChatID   string
}

// Load reads the environment, after merging a .env file when one exists.
// Variables already set in the environment win over .env values.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		DBPath:           getEnv("DB_PATH", filepath.Join("data", "luna.db")),
		LogLevel:         strings.ToLower(getEnv("LOG_LEVEL", "info")),
		Environment:      strings.ToLower(getEnv("ENVIRONMENT", "development")),
		ReminderSchedule: getEnv("REMINDER_SCHEDULE", "0 9 * * *"),
		TelegramToken:    strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN")),
		TelegramChatID:   strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID")),
	}

	location, err := time.LoadLocation(getEnv("TZ", "UTC"))
	if err != nil {
		return nil, fmt.Errorf("invalid TZ: %w", err)
	}
	cfg.Location = location

	if _, err := cron.ParseStandard(cfg.ReminderSchedule); err != nil {
		return nil, fmt.Errorf("invalid REMINDER_SCHEDULE: %w", err)
	}

	cfg.ReminderLeadDays, err = strconv.Atoi(getEnv("REMINDER_LEAD_DAYS", "2"))
	if err != nil {
		return nil, fmt.Errorf("invalid REMINDER_LEAD_DAYS: %w", err)
	}
	if cfg.ReminderLeadDays < 0 {
		return nil, fmt.Errorf("invalid REMINDER_LEAD_DAYS: must not be negative")
	}

	return cfg, nil
}

func (cfg *Config) TelegramEnabled() bool {
	return cfg.TelegramToken != "" && cfg.TelegramChatID != ""
}

func getEnv(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
