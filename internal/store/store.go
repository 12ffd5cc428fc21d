package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
	_ "time/tzdata"

	"github.com/rs/zerolog"

	"github.com/i474232898/weather-data-cleaning/internal/weather"
)

const (
	// TimestampLayout is the ddMMyyyy_HHmmss stamp shared by both output files.
	TimestampLayout = "02012006_150405"
	filePrefix      = "cleaned_weather_"
	dirMode         = 0o755
)

// Clock returns the current wall-clock time.
type Clock func() time.Time

// FileStore writes cleaned tables as sibling CSV and Parquet files.
type FileStore struct {
	dir   string
	loc   *time.Location
	clock Clock
	l     zerolog.Logger
}

var _ weather.Store = (*FileStore)(nil)

// NewFileStore creates a FileStore writing into dir. Output names are
// stamped with clock() in loc; a nil clock means time.Now.
func NewFileStore(dir string, loc *time.Location, clock Clock, l zerolog.Logger) *FileStore {
	if loc == nil {
		loc = time.UTC
	}
	if clock == nil {
		clock = time.Now
	}
	return &FileStore{
		dir:   dir,
		loc:   loc,
		clock: clock,
		l:     l,
	}
}

// BaseName returns the extension-less output name for the current time.
func (s *FileStore) BaseName() string {
	return filePrefix + s.clock().In(s.loc).Format(TimestampLayout)
}

// Save writes table to both formats. A failure in one format does not stop
// the other; the returned Paths only name files that were written.
func (s *FileStore) Save(table weather.Table) (weather.Paths, error) {
	if err := os.MkdirAll(s.dir, dirMode); err != nil {
		s.l.Error().Err(err).Str("dir", s.dir).Msg("failed to create cleaned data directory")
		return weather.Paths{}, fmt.Errorf("%w: %v", weather.ErrWrite, err)
	}

	base := filepath.Join(s.dir, s.BaseName())
	csvPath := base + ".csv"
	parquetPath := base + ".parquet"

	var (
		paths weather.Paths
		errs  []error
	)

	if err := writeCSV(csvPath, table); err != nil {
		s.l.Error().Err(err).Str("file", csvPath).Msg("failed to save cleaned data to CSV")
		errs = append(errs, fmt.Errorf("%w: csv: %v", weather.ErrWrite, err))
	} else {
		paths.CSV = csvPath
		s.l.Info().Str("file", csvPath).Int("rows", len(table)).Msg("cleaned data saved to CSV")
	}

	if err := writeParquet(parquetPath, table); err != nil {
		s.l.Error().Err(err).Str("file", parquetPath).Msg("failed to save cleaned data to Parquet")
		errs = append(errs, fmt.Errorf("%w: parquet: %v", weather.ErrWrite, err))
	} else {
		paths.Parquet = parquetPath
		s.l.Info().Str("file", parquetPath).Int("rows", len(table)).Msg("cleaned data saved to Parquet")
	}

	return paths, errors.Join(errs...)
}
