package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

// Config keys; a default config file is written on first run so users can
// discover them.
const (
	KeyDBPath          = "db_path"
	KeyCurrencySymbol  = "currency_symbol"
	KeyGoogleCredsFile = "google_credentials_file"
	KeyGoogleCalendar  = "google_calendar_id"
	KeyExportDir       = "export_dir"
)

// Setup loads ~/.config/fingrow/fingrow.yml, creating it with defaults the
// first time around.
func Setup() error {
	viper.SetConfigName("fingrow")
	viper.SetConfigType("yaml")

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("error getting user home directory: %w", err)
		}
		if runtime.GOOS == "windows" {
			configHome = filepath.Join(homeDir, "AppData", "Roaming")
		} else {
			configHome = filepath.Join(homeDir, ".config")
		}
	}

	configFilePath := filepath.Join(configHome, "fingrow", "fingrow.yml")
	viper.SetConfigFile(configFilePath)

	if err := os.MkdirAll(filepath.Dir(configFilePath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	viper.SetDefault(KeyDBPath, "")
	viper.SetDefault(KeyCurrencySymbol, "€")
	viper.SetDefault(KeyGoogleCredsFile, "")
	viper.SetDefault(KeyGoogleCalendar, "")
	viper.SetDefault(KeyExportDir, ".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok || os.IsNotExist(err) {
			if err := viper.WriteConfigAs(configFilePath); err != nil {
				return fmt.Errorf("error creating config file: %w", err)
			}
		} else {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	return nil
}

// DBPath returns the configured database path ("" = default location).
func DBPath() string { return viper.GetString(KeyDBPath) }

// CurrencySymbol returns the display currency symbol.
func CurrencySymbol() string { return viper.GetString(KeyCurrencySymbol) }

// GoogleCredentialsFile returns the Google service credentials path.
func GoogleCredentialsFile() string { return viper.GetString(KeyGoogleCredsFile) }

// GoogleCalendarID returns the external calendar id.
func GoogleCalendarID() string { return viper.GetString(KeyGoogleCalendar) }

// ExportDir returns the directory for CSV/PDF exports.
func ExportDir() string { return viper.GetString(KeyExportDir) }
