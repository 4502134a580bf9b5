package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_FigureSize(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 88, cfg.ChartWidth)
	assert.Equal(t, 16, cfg.ChartHeight)
	assert.Equal(t, 1100, cfg.ImageWidth)
	assert.Equal(t, 400, cfg.ImageHeight)
	assert.Equal(t, time.UTC, cfg.Location)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("BABYLOG_CSV", "/tmp/log.csv")
	t.Setenv("BABYLOG_OUT_DIR", "/tmp/charts")
	t.Setenv("BABYLOG_CHART_WIDTH", "120")
	t.Setenv("BABYLOG_IMAGE_HEIGHT", "600")
	t.Setenv("BABYLOG_LOG_LEVEL", "debug")
	t.Setenv("BABYLOG_TZ", "Europe/Amsterdam")
	t.Setenv("BABYLOG_NO_COLOR", "true")

	cfg := LoadConfig()

	assert.Equal(t, "/tmp/log.csv", cfg.CSVPath)
	assert.Equal(t, "/tmp/charts", cfg.OutDir)
	assert.Equal(t, 120, cfg.ChartWidth)
	assert.Equal(t, 16, cfg.ChartHeight)
	assert.Equal(t, 600, cfg.ImageHeight)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "Europe/Amsterdam", cfg.Location.String())
	assert.True(t, cfg.NoColor)
}

func TestLoadConfig_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("BABYLOG_CHART_WIDTH", "wide")
	t.Setenv("BABYLOG_CHART_HEIGHT", "-3")
	t.Setenv("BABYLOG_LOG_LEVEL", "loud")
	t.Setenv("BABYLOG_TZ", "Mars/Olympus_Mons")

	cfg := LoadConfig()

	assert.Equal(t, 88, cfg.ChartWidth)
	assert.Equal(t, 16, cfg.ChartHeight)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, time.UTC, cfg.Location)
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
		ok   bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{" warn ", slog.LevelWarn, true},
		{"warning", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"trace", slog.LevelInfo, false},
	}
	for _, tc := range cases {
		got, ok := ParseLevel(tc.in)
		assert.Equal(t, tc.ok, ok, "input=%q", tc.in)
		assert.Equal(t, tc.want, got, "input=%q", tc.in)
	}
}

func TestLoadDotEnv_MissingFileIgnored(t *testing.T) {
	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
}

func TestLoadDotEnv_DoesNotOverrideEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("BABYLOG_CHART_WIDTH=99\nBABYLOG_CHART_HEIGHT=30\n"), 0o644))

	t.Setenv("BABYLOG_CHART_WIDTH", "100")
	// Registered so the variable is restored after the test.
	t.Setenv("BABYLOG_CHART_HEIGHT", "")
	require.NoError(t, os.Unsetenv("BABYLOG_CHART_HEIGHT"))

	require.NoError(t, LoadDotEnv(path))

	cfg := LoadConfig()
	assert.Equal(t, 100, cfg.ChartWidth)
	assert.Equal(t, 30, cfg.ChartHeight)
}
