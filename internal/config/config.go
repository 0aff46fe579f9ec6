package config

import (
	"os"
	"strconv"
	"strings"

	"unit-converter/internal/logger"
)

const (
	AppName = "Unit Converter"
	AppID   = "com.unitconverter.desktop"

	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600
	MinWindowWidth      = 400
	MinWindowHeight     = 300

	DefaultHistorySize = 20
)

// Config holds the runtime settings read from the environment.
// Nothing here is written back; the program keeps no state between runs.
type Config struct {
	LogLevel    logger.LogLevel
	LogJSON     bool
	DarkTheme   bool
	HistorySize int
}

// Load reads configuration from the process environment
func Load() Config {
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an arbitrary lookup function so tests
// can supply their own environment.
func FromLookup(lookup func(string) (string, bool)) Config {
	cfg := Config{
		LogLevel:    logger.InfoLevel,
		HistorySize: DefaultHistorySize,
	}

	if v, ok := lookup("LOG_LEVEL"); ok {
		cfg.LogLevel = logger.ParseLevel(v)
	} else if v, ok := lookup("DEBUG"); ok && v == "1" {
		cfg.LogLevel = logger.DebugLevel
	}

	if v, ok := lookup("UNIT_CONVERTER_LOG_FORMAT"); ok {
		cfg.LogJSON = strings.EqualFold(strings.TrimSpace(v), "json")
	}

	if v, ok := lookup("UNIT_CONVERTER_THEME"); ok {
		cfg.DarkTheme = strings.EqualFold(strings.TrimSpace(v), "dark")
	}

	if v, ok := lookup("UNIT_CONVERTER_HISTORY"); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
			cfg.HistorySize = n
		}
	}

	return cfg
}
