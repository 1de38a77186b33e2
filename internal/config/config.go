package config

import (
	"os"

	"campsync/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Sheets SheetsConfig
}

// SheetsConfig holds Google Sheets access settings.
// Exactly one of CredentialsJSON / CredentialsFile must be set for a run
// that touches the remote spreadsheet.
type SheetsConfig struct {
	SpreadsheetID   string
	CredentialsJSON string
	CredentialsFile string
	SettingsSheet   string
}

// Load reads configuration from environment variables. Values required only
// for remote runs are checked separately by ValidateForRun, so offline
// commands (preview) work without any sheet credentials.
func Load() *Config {
	return &Config{
		Sheets: SheetsConfig{
			SpreadsheetID:   os.Getenv("CAMPSYNC_SPREADSHEET_ID"),
			CredentialsJSON: os.Getenv("GOOGLE_CREDENTIALS_JSON"),
			CredentialsFile: os.Getenv("GOOGLE_CREDENTIALS_FILE"),
			SettingsSheet:   getEnvOrDefault("CAMPSYNC_SETTINGS_SHEET", "Settings"),
		},
	}
}

// ValidateForRun ensures everything a spreadsheet-touching run needs is
// present, before any sheet access is attempted.
func (c *Config) ValidateForRun() error {
	if c.Sheets.SpreadsheetID == "" {
		return errors.ConfigInvalid("CAMPSYNC_SPREADSHEET_ID is required")
	}
	if c.Sheets.CredentialsJSON == "" && c.Sheets.CredentialsFile == "" {
		return errors.ConfigInvalid("GOOGLE_CREDENTIALS_JSON or GOOGLE_CREDENTIALS_FILE is required")
	}
	if c.Sheets.SettingsSheet == "" {
		return errors.ConfigInvalid("settings sheet name must not be empty")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
