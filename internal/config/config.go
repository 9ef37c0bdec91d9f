package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"threadex/internal/thread"
)

// Config holds the user-facing preferences and fetch settings. The core
// transformation code reads these but never mutates them.
type Config struct {
	UserAgent     string
	Timeout       time.Duration
	DateFormat    thread.DateFormat
	Compact       bool
	StripNewlines bool
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		UserAgent:     "threadex/1.0",
		Timeout:       10 * time.Second,
		DateFormat:    thread.DateISO8601,
		Compact:       false,
		StripNewlines: false,
	}
}

// Load applies .env and environment overrides on top of the defaults. A
// missing .env file is fine.
func Load() Config {
	_ = godotenv.Load()

	cfg := Default()
	if v := os.Getenv("THREADEX_USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}
	if v := os.Getenv("THREADEX_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.Timeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("THREADEX_DATE_FORMAT"); thread.ValidDateFormat(v) {
		cfg.DateFormat = thread.DateFormat(v)
	}
	if v := os.Getenv("THREADEX_COMPACT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Compact = b
		}
	}
	if v := os.Getenv("THREADEX_STRIP_NEWLINES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.StripNewlines = b
		}
	}
	return cfg
}
