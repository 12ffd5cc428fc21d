package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

// Interval is a resampling tick width. Besides Go duration syntax it accepts
// the pandas-style aliases "30min", "15T", "1H" and "90S".
type Interval time.Duration

// Decode implements envconfig.Decoder.
func (i *Interval) Decode(value string) error {
	d, err := ParseInterval(value)
	if err != nil {
		return err
	}
	*i = Interval(d)
	return nil
}

// Duration returns the interval as a time.Duration.
func (i Interval) Duration() time.Duration {
	return time.Duration(i)
}

var intervalAliases = []struct {
	suffix string
	unit   string
}{
	{"min", "m"},
	{"T", "m"},
	{"H", "h"},
	{"S", "s"},
}

// ParseInterval parses a positive tick width.
func ParseInterval(value string) (time.Duration, error) {
	s := strings.TrimSpace(value)
	d, err := time.ParseDuration(s)
	if err != nil {
		for _, a := range intervalAliases {
			if !strings.HasSuffix(s, a.suffix) {
				continue
			}
			n := strings.TrimSuffix(s, a.suffix)
			if n == "" {
				n = "1"
			}
			d, err = time.ParseDuration(n + a.unit)
			break
		}
	}
	if err != nil {
		return 0, fmt.Errorf("invalid interval %q: %w", value, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid interval %q: must be positive", value)
	}
	return d, nil
}

type Paths struct {
	RawDir       string `envconfig:"RAW_DATA_DIR" default:"data/raw"`
	CleanedDir   string `envconfig:"CLEANED_DATA_DIR" default:"data/cleaned"`
	LocationFile string `envconfig:"LOCATION_CONFIG" default:"config/location.json"`
	LogsFile     string `envconfig:"LOGS_PATH" default:"logs/cleaning_logs.log"`
}

type Cleaning struct {
	Interval        Interval `envconfig:"INTERVAL" default:"30min"`
	MinTemperatureC float64  `envconfig:"MIN_TEMPERATURE_C" default:"-30"`
	MaxTemperatureC float64  `envconfig:"MAX_TEMPERATURE_C" default:"60"`
}

// AppConfig is the full runtime configuration read from the environment.
type AppConfig struct {
	Paths    Paths
	Cleaning Cleaning

	// OutputTimezone stamps the output file names.
	OutputTimezone string `envconfig:"OUTPUT_TIMEZONE" default:"Europe/Berlin"`

	// CleanEvery re-runs the pipeline periodically; 0 runs it once.
	CleanEvery time.Duration `envconfig:"CLEAN_EVERY" default:"0"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Location resolves OutputTimezone.
func (c *AppConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.OutputTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid OUTPUT_TIMEZONE: %w", err)
	}
	return loc, nil
}

func (c *AppConfig) validate() error {
	if c.Cleaning.MinTemperatureC >= c.Cleaning.MaxTemperatureC {
		return fmt.Errorf("MIN_TEMPERATURE_C (%g) must be below MAX_TEMPERATURE_C (%g)",
			c.Cleaning.MinTemperatureC, c.Cleaning.MaxTemperatureC)
	}
	if c.CleanEvery < 0 {
		return fmt.Errorf("CLEAN_EVERY must not be negative")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}
