package sources

import (
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/i474232898/weather-data-cleaning/internal/weather"
)

// RawFilePattern matches the raw forecast documents dropped by the collector.
const RawFilePattern = "raw_weather_*.json"

var validate = validator.New()

// FileSource implements weather.Source on top of a raw-data directory and a
// location config file.
type FileSource struct {
	rawDir       string
	locationPath string
	l            zerolog.Logger
}

var _ weather.Source = (*FileSource)(nil)

// NewFileSource creates a FileSource.
func NewFileSource(rawDir, locationPath string, l zerolog.Logger) *FileSource {
	return &FileSource{
		rawDir:       rawDir,
		locationPath: locationPath,
		l:            l,
	}
}

// FindLatest returns the newest raw forecast file in the raw-data directory.
func (s *FileSource) FindLatest() (string, error) {
	return FindLatest(s.rawDir, s.l)
}

// LoadRaw decodes the raw forecast document at path.
func (s *FileSource) LoadRaw(path string) (*weather.RawForecast, error) {
	return LoadRaw(path, s.l)
}

// LoadLocation reads the configured location file.
func (s *FileSource) LoadLocation() (weather.Location, error) {
	return LoadLocation(s.locationPath, s.l)
}
