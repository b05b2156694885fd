// SPDX-License-Identifier: MIT

// Package config reads monkeypath settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config aggregates the CLI settings.
type Config struct {
	Levels  LevelsConfig
	Store   StoreConfig
	Logging LoggingConfig
}

// LevelsConfig selects the level dataset.
type LevelsConfig struct {
	// Path is a YAML level file. Empty means the built-in levels.
	Path string
}

// StoreConfig selects where progress is kept.
type StoreConfig struct {
	// DSN is a SQLite path or ":memory:". Empty keeps progress in memory only.
	DSN string
}

// LoggingConfig controls structured logging.
type LoggingConfig struct {
	Level         string
	Format        string // text|json
	IncludeCaller bool
}

const (
	defaultLoggingLevel  = "info"
	defaultLoggingFormat = "text"
)

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		Levels: LevelsConfig{
			Path: os.Getenv("MONKEYPATH_LEVELS"),
		},
		Store: StoreConfig{
			DSN: os.Getenv("MONKEYPATH_DB"),
		},
		Logging: LoggingConfig{
			Level:         valueOrDefault("LOG_LEVEL", defaultLoggingLevel),
			Format:        valueOrDefault("LOG_FORMAT", defaultLoggingFormat),
			IncludeCaller: parseBoolWithDefault("LOG_INCLUDE_CALLER", false),
		},
	}

	switch strings.ToLower(cfg.Logging.Format) {
	case "text", "json":
	default:
		return Config{}, fmt.Errorf("invalid LOG_FORMAT %q: want text or json", cfg.Logging.Format)
	}

	return cfg, nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return val
	}
	return fallback
}
