package weather

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Default plausibility range for air temperature in °C.
const (
	DefaultMinTemperatureC = -30.0
	DefaultMaxTemperatureC = 60.0
)

var timeLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// NormalizerConfig tunes the cleaning transform.
type NormalizerConfig struct {
	Interval        time.Duration
	MinTemperatureC float64
	MaxTemperatureC float64
}

// Normalizer turns a raw hourly forecast into a regular, gap-filled series.
type Normalizer struct {
	cfg NormalizerConfig
	l   zerolog.Logger
}

// NewNormalizer creates a Normalizer. Zero config values fall back to defaults.
func NewNormalizer(cfg NormalizerConfig, l zerolog.Logger) *Normalizer {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.MinTemperatureC == 0 && cfg.MaxTemperatureC == 0 {
		cfg.MinTemperatureC = DefaultMinTemperatureC
		cfg.MaxTemperatureC = DefaultMaxTemperatureC
	}
	return &Normalizer{cfg: cfg, l: l}
}

// Normalize cleans raw for loc. On failure it returns a nil table and an
// error wrapping ErrShape; an empty table with a nil error is a valid result.
func (n *Normalizer) Normalize(raw *RawForecast, loc Location) (Table, error) {
	table, err := n.normalize(raw, loc)
	if err != nil {
		n.l.Error().Err(err).Str("kind", KindOf(err)).Msg("data cleaning failed")
		return nil, err
	}
	n.l.Info().
		Int("rows", len(table)).
		Dur("interval", n.cfg.Interval).
		Msg("forecast data cleaned and interpolated successfully")
	return table, nil
}

func (n *Normalizer) normalize(raw *RawForecast, loc Location) (Table, error) {
	hours, err := flatten(raw)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(hours))
	for i, h := range hours {
		row, err := project(h, loc)
		if err != nil {
			return nil, fmt.Errorf("hourly record %d: %w", i, err)
		}
		rows = append(rows, row)
	}

	kept := rows[:0]
	for _, r := range rows {
		if r.TemperatureC == nil {
			continue
		}
		if *r.TemperatureC < n.cfg.MinTemperatureC || *r.TemperatureC > n.cfg.MaxTemperatureC {
			n.l.Debug().
				Time("time", r.DateTime).
				Float64("temp_c", *r.TemperatureC).
				Msg("dropping implausible temperature")
			continue
		}
		kept = append(kept, r)
	}

	table, err := resample(kept, n.cfg.Interval)
	if err != nil {
		return nil, err
	}
	if err := interpolateNumeric(table); err != nil {
		return nil, err
	}
	forwardFill(table)
	return table, nil
}

// flatten concatenates every hourly record of every forecast day in source order.
func flatten(raw *RawForecast) ([]RawHour, error) {
	if raw == nil {
		return nil, fmt.Errorf("%w: no raw data", ErrShape)
	}
	if raw.Forecast == nil {
		return nil, fmt.Errorf("%w: missing forecast", ErrShape)
	}
	if raw.Forecast.ForecastDay == nil {
		return nil, fmt.Errorf("%w: missing forecast.forecastday", ErrShape)
	}

	var hours []RawHour
	for i, day := range raw.Forecast.ForecastDay {
		if day.Hour == nil {
			return nil, fmt.Errorf("%w: forecastday %d has no hour list", ErrShape, i)
		}
		hours = append(hours, day.Hour...)
	}
	if len(hours) == 0 {
		return nil, fmt.Errorf("%w: no hourly records", ErrShape)
	}
	return hours, nil
}

// project selects and renames the six source fields and tags the location.
// An empty city or postal code leaves the cell unset.
func project(h RawHour, loc Location) (Row, error) {
	missing := make([]string, 0)
	if !h.Time.Present {
		missing = append(missing, "time")
	}
	if !h.TempC.Present {
		missing = append(missing, "temp_c")
	}
	if !h.Condition.Present || (h.Condition.Valid && !h.Condition.Value.Text.Present) {
		missing = append(missing, "condition.text")
	}
	if !h.Humidity.Present {
		missing = append(missing, "humidity")
	}
	if !h.WindKph.Present {
		missing = append(missing, "wind_kph")
	}
	if !h.FeelsLikeC.Present {
		missing = append(missing, "feelslike_c")
	}
	if len(missing) > 0 {
		return Row{}, fmt.Errorf("%w: missing %s", ErrShape, strings.Join(missing, ", "))
	}

	if !h.Time.Valid {
		return Row{}, fmt.Errorf("%w: null time", ErrShape)
	}
	ts, err := parseTime(h.Time.Value)
	if err != nil {
		return Row{}, err
	}

	var condition *string
	if h.Condition.Valid && h.Condition.Value.Text.Valid {
		c := titleCase(h.Condition.Value.Text.Value)
		condition = &c
	}

	return Row{
		DateTime:     ts,
		TemperatureC: h.TempC.Ptr(),
		Condition:    condition,
		HumidityPerc: h.Humidity.Ptr(),
		WindSpeedKph: h.WindKph.Ptr(),
		FeelsLikeC:   h.FeelsLikeC.Ptr(),
		City:         optional(loc.City),
		PostalCode:   optional(loc.PostalCode),
	}, nil
}

// optional returns nil for an empty string so unknown location fields stay unset.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// parseTime reads a provider timestamp as a naive wall-clock time.
func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			if layout == time.RFC3339 {
				ts = time.Date(ts.Year(), ts.Month(), ts.Day(), ts.Hour(), ts.Minute(), ts.Second(), ts.Nanosecond(), time.UTC)
			}
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unparsable time %q", ErrShape, s)
}

// titleCase trims s and upper-cases the first letter of every word.
func titleCase(s string) string {
	return cases.Title(language.English).String(strings.TrimSpace(s))
}
