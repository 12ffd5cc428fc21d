package sources

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/i474232898/weather-data-cleaning/internal/weather"
)

// LoadRaw reads and decodes the raw forecast document at path. The file must
// hold exactly one JSON value.
func LoadRaw(path string, l zerolog.Logger) (*weather.RawForecast, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		l.Error().Err(err).Str("file", path).Msg("error loading raw data")
		return nil, fmt.Errorf("%w: %v", weather.ErrParse, err)
	}

	var raw weather.RawForecast
	if err := json.Unmarshal(data, &raw); err != nil {
		l.Error().Err(err).Str("file", path).Msg("error loading raw data")
		return nil, fmt.Errorf("%w: %s: %v", weather.ErrParse, path, err)
	}

	l.Info().Str("file", path).Msg("raw data loaded")
	return &raw, nil
}
