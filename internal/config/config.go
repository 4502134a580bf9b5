// Package config reads babylog settings from the environment.
package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
	// Embedded so BABYLOG_TZ and --tz work on hosts without zoneinfo.
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings. Flags override these values.
type Config struct {
	CSVPath     string
	Location    *time.Location
	OutDir      string
	ChartWidth  int
	ChartHeight int
	ImageWidth  int
	ImageHeight int
	LogLevel    slog.Level
	NoColor     bool
}

// DefaultConfig returns a Config with the default figure sizes and UTC as
// the timezone for zoneless timestamps.
func DefaultConfig() Config {
	return Config{
		Location:    time.UTC,
		ChartWidth:  88,
		ChartHeight: 16,
		ImageWidth:  1100,
		ImageHeight: 400,
		LogLevel:    slog.LevelInfo,
	}
}

// LoadDotEnv loads variables from the given .env files into the process
// environment without overriding variables that are already set. Missing
// files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// LoadConfig reads configuration from environment variables,
// falling back to defaults for any unset or invalid values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	cfg.CSVPath = os.Getenv("BABYLOG_CSV")
	cfg.OutDir = os.Getenv("BABYLOG_OUT_DIR")

	if v := os.Getenv("BABYLOG_TZ"); v != "" {
		if loc, err := time.LoadLocation(v); err == nil {
			cfg.Location = loc
		}
	}
	applyPositiveInt(&cfg.ChartWidth, "BABYLOG_CHART_WIDTH")
	applyPositiveInt(&cfg.ChartHeight, "BABYLOG_CHART_HEIGHT")
	applyPositiveInt(&cfg.ImageWidth, "BABYLOG_IMAGE_WIDTH")
	applyPositiveInt(&cfg.ImageHeight, "BABYLOG_IMAGE_HEIGHT")

	if v := os.Getenv("BABYLOG_LOG_LEVEL"); v != "" {
		if lvl, ok := ParseLevel(v); ok {
			cfg.LogLevel = lvl
		}
	}
	if v := os.Getenv("BABYLOG_NO_COLOR"); v != "" {
		cfg.NoColor, _ = strconv.ParseBool(v)
	}
	// https://no-color.org
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		cfg.NoColor = true
	}

	return cfg
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

func applyPositiveInt(dst *int, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	*dst = n
}
