package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	for _, key := range []string{"PORT", "DB_PATH", "TZ", "LOG_LEVEL", "ENVIRONMENT", "REMINDER_SCHEDULE", "REMINDER_LEAD_DAYS", "TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected port 8080, got %q", cfg.Port)
	}
	if cfg.DBPath != filepath.Join("data", "luna.db") {
		t.Fatalf("unexpected db path %q", cfg.DBPath)
	}
	if cfg.Location.String() != "UTC" {
		t.Fatalf("expected UTC, got %s", cfg.Location)
	}
	if cfg.ReminderLeadDays != 2 || cfg.ReminderSchedule != "0 9 * * *" {
		t.Fatalf("unexpected reminder config %+v", cfg)
	}
	if cfg.TelegramEnabled() {
		t.Fatal("expected telegram to be disabled without token")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	chdir(t, t.TempDir())

	cases := map[string]string{
		"TZ":                 "Mars/Olympus",
		"REMINDER_SCHEDULE":  "every day",
		"REMINDER_LEAD_DAYS": "-1",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv("TZ", "UTC")
			t.Setenv("REMINDER_SCHEDULE", "0 9 * * *")
			t.Setenv("REMINDER_LEAD_DAYS", "2")
			t.Setenv(key, value)

			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", key, value)
			}
		})
	}
}

func TestLoadReadsTelegramSettings(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")
	t.Setenv("TELEGRAM_CHAT_ID", "42")
	t.Setenv("TZ", "Europe/Berlin")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.TelegramEnabled() {
		t.Fatal("expected telegram to be enabled")
	}
	if cfg.Location.String() != "Europe/Berlin" {
		t.Fatalf("expected Europe/Berlin, got %s", cfg.Location)
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})
}
