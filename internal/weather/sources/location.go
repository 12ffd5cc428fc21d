package sources

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/i474232898/weather-data-cleaning/internal/weather"
)

// LoadLocation reads {"city": ..., "postal": ...} from path.
// Both keys are required and must be non-empty.
func LoadLocation(path string, l zerolog.Logger) (weather.Location, error) {
	loc, err := readLocation(path)
	if err != nil {
		l.Error().Err(err).Str("file", path).Msg("error reading location info")
		return weather.Location{}, err
	}

	l.Info().Str("city", loc.City).Str("postal", loc.PostalCode).Msg("location info retrieved")
	return loc, nil
}

func readLocation(path string) (weather.Location, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return weather.Location{}, fmt.Errorf("%w: %v", weather.ErrConfig, err)
	}

	var loc weather.Location
	if err := json.Unmarshal(data, &loc); err != nil {
		return weather.Location{}, fmt.Errorf("%w: %v", weather.ErrConfig, err)
	}
	if err := validate.Struct(loc); err != nil {
		return weather.Location{}, fmt.Errorf("%w: %v", weather.ErrConfig, err)
	}
	return loc, nil
}
