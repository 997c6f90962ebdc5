// Package config loads WorkWatch settings from the environment. Missing
// values degrade to defaults with a warning; nothing here is fatal.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultUsername is used when WORKWATCH_USERNAME is unset.
	DefaultUsername = "Anonymous"
	// BotName is the display name the webhook posts under.
	BotName = "WorkWatch"
)

type Config struct {
	// Username is the display name used in the TUI greeting and webhook titles.
	Username string
	// WebhookURL is the Discord-style webhook destination. Empty disables dispatch.
	WebhookURL string
	// Dir is where the session history database lives.
	Dir string
}

// FromEnv reads WORKWATCH_USERNAME, WORKWATCH_WEBHOOK and WORKWATCH_DIR.
// Warnings for missing values go to warn (normally stderr).
func FromEnv(warn io.Writer) Config {
	cfg := Config{}

	cfg.Username = strings.TrimSpace(os.Getenv("WORKWATCH_USERNAME"))
	if cfg.Username == "" {
		fmt.Fprintln(warn, "WorkWatch Warning: WORKWATCH_USERNAME not found! Will default to Anonymous.")
		cfg.Username = DefaultUsername
	}

	cfg.WebhookURL = strings.TrimSpace(os.Getenv("WORKWATCH_WEBHOOK"))
	if cfg.WebhookURL == "" {
		fmt.Fprintln(warn, "WorkWatch Warning: WORKWATCH_WEBHOOK not found! Will not be able to post messages to discord!")
	}

	cfg.Dir = strings.TrimSpace(os.Getenv("WORKWATCH_DIR"))
	if cfg.Dir == "" {
		cfg.Dir = defaultDir()
	}
	return cfg
}

func defaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fall back to the working directory; the store creates what it needs.
		return ".workwatch"
	}
	return filepath.Join(home, ".workwatch")
}
