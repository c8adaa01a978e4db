// Package config reads the calculator's runtime settings from the process
// environment. A .env file may seed the environment first (see cmd entrypoints);
// real environment variables always win.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Environment variable names.
const (
	EnvHistoryFile = "CALC_HISTORY_FILE"
	EnvLogDir      = "CALC_LOG_DIR"
	EnvMaxHistory  = "CALC_MAX_HISTORY"
	EnvAutoSave    = "CALC_AUTOSAVE"
)

// Config holds the calculator's runtime settings.
type Config struct {
	HistoryFile string // CSV file the history is saved to
	LogDir      string // directory for the calculation log
	MaxHistory  int    // history capacity; oldest records are evicted beyond it
	AutoSave    bool   // rewrite the history CSV after every calculation
}

// LogFile is the calculation log path inside LogDir.
func (c Config) LogFile() string {
	return filepath.Join(c.LogDir, "calculator.log")
}

// Load reads the configuration from the environment, applying defaults for
// unset variables.
func Load() (Config, error) {
	cfg := Config{
		HistoryFile: getenv(EnvHistoryFile, filepath.Join("history", "history.csv")),
		LogDir:      getenv(EnvLogDir, "logs"),
		MaxHistory:  100,
		AutoSave:    true,
	}

	if v := os.Getenv(EnvMaxHistory); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("%s: expected a positive integer, got %q", EnvMaxHistory, v)
		}
		cfg.MaxHistory = n
	}

	if v := os.Getenv(EnvAutoSave); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: expected a boolean, got %q", EnvAutoSave, v)
		}
		cfg.AutoSave = b
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
