package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, cfg.Cleaning.Interval.Duration())
	assert.Equal(t, "data/raw", cfg.Paths.RawDir)
	assert.Equal(t, "data/cleaned", cfg.Paths.CleanedDir)
	assert.Equal(t, "config/location.json", cfg.Paths.LocationFile)
	assert.Equal(t, "logs/cleaning_logs.log", cfg.Paths.LogsFile)
	assert.Equal(t, -30.0, cfg.Cleaning.MinTemperatureC)
	assert.Equal(t, 60.0, cfg.Cleaning.MaxTemperatureC)
	assert.Equal(t, "Europe/Berlin", cfg.OutputTimezone)
	assert.Zero(t, cfg.CleanEvery)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", loc.String())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("INTERVAL", "15min")
	t.Setenv("RAW_DATA_DIR", "/srv/raw")
	t.Setenv("CLEAN_EVERY", "1h")
	t.Setenv("OUTPUT_TIMEZONE", "UTC")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, cfg.Cleaning.Interval.Duration())
	assert.Equal(t, "/srv/raw", cfg.Paths.RawDir)
	assert.Equal(t, time.Hour, cfg.CleanEvery)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"interval":     {"INTERVAL": "soon"},
		"zeroInterval": {"INTERVAL": "0min"},
		"range":        {"MIN_TEMPERATURE_C": "70"},
		"timezone":     {"OUTPUT_TIMEZONE": "Mars/Olympus"},
		"logLevel":     {"LOG_LEVEL": "loud"},
		"cleanEvery":   {"CLEAN_EVERY": "-1m"},
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestParseInterval(t *testing.T) {
	tests := map[string]time.Duration{
		"30min": 30 * time.Minute,
		"30m":   30 * time.Minute,
		"15T":   15 * time.Minute,
		"1h":    time.Hour,
		"H":     time.Hour,
		"2H":    2 * time.Hour,
		"90S":   90 * time.Second,
		" 45m ": 45 * time.Minute,
	}

	for in, want := range tests {
		got, err := ParseInterval(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "-5min", "abc", "0", "0min"} {
		_, err := ParseInterval(in)
		assert.Error(t, err, in)
	}
}
