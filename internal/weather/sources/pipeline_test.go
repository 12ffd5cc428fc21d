package sources

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-data-cleaning/internal/store"
	"github.com/i474232898/weather-data-cleaning/internal/weather"
)

func newPipeline(root string, l zerolog.Logger) *weather.Service {
	clock := func() time.Time { return time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC) }

	return weather.NewService(
		NewFileSource(filepath.Join(root, "data", "raw"), filepath.Join(root, "config", "location.json"), l),
		weather.NewNormalizer(weather.NormalizerConfig{Interval: 30 * time.Minute}, l),
		store.NewFileStore(filepath.Join(root, "data", "cleaned"), time.UTC, clock, l),
		l,
	)
}

func TestPipeline_EndToEnd(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "data", "raw", "raw_weather_1.json"), sampleRaw)
	writeFile(t, filepath.Join(root, "config", "location.json"), `{"city": "Berlin", "postal": "10115"}`)

	paths, err := newPipeline(root, zerolog.Nop()).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "data", "cleaned", "cleaned_weather_01062025_080000.csv"), paths.CSV)
	data, err := os.ReadFile(paths.CSV)
	require.NoError(t, err)
	assert.Equal(t,
		"DateTime,Temperature_C,Condition,Humidity_perc,WindSpeed_kph,FeelsLike_C,City,PostalCode\n"+
			"2025-06-01 10:00:00,15.0,Light Rain,80.0,12.2,14.1,Berlin,10115\n"+
			"2025-06-01 10:30:00,16.0,Light Rain,,11.1,15.3,Berlin,10115\n"+
			"2025-06-01 11:00:00,17.0,Sunny,,10.0,16.5,Berlin,10115\n",
		string(data))
	assert.FileExists(t, paths.Parquet)
}

func TestPipeline_NoRawFilesWritesNothing(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "config", "location.json"), `{"city": "Berlin", "postal": "10115"}`)

	var buf bytes.Buffer
	_, err := newPipeline(root, zerolog.New(&buf)).Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, weather.ErrNotFound)
	assert.Contains(t, buf.String(), "no raw json files found")

	_, statErr := os.Stat(filepath.Join(root, "data", "cleaned"))
	assert.True(t, os.IsNotExist(statErr), "no output directory or files are created")
}

func TestPipeline_MissingLocationStillWritesOutput(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "data", "raw", "raw_weather_1.json"), sampleRaw)

	var buf bytes.Buffer
	paths, err := newPipeline(root, zerolog.New(&buf)).Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "continuing without location info")

	data, err := os.ReadFile(paths.CSV)
	require.NoError(t, err)
	assert.Equal(t,
		"DateTime,Temperature_C,Condition,Humidity_perc,WindSpeed_kph,FeelsLike_C,City,PostalCode\n"+
			"2025-06-01 10:00:00,15.0,Light Rain,80.0,12.2,14.1,,\n"+
			"2025-06-01 10:30:00,16.0,Light Rain,,11.1,15.3,,\n"+
			"2025-06-01 11:00:00,17.0,Sunny,,10.0,16.5,,\n",
		string(data))
	assert.FileExists(t, paths.Parquet)
}
