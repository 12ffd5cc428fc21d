package sources

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/djherbis/times"
	"github.com/rs/zerolog"

	"github.com/i474232898/weather-data-cleaning/internal/weather"
)

// FindLatest returns the raw forecast file in dir with the newest creation
// time. A missing directory counts as no match.
func FindLatest(dir string, l zerolog.Logger) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, RawFilePattern))
	if err != nil {
		l.Error().Err(err).Str("dir", dir).Msg("error finding the latest file")
		return "", fmt.Errorf("%w: %v", weather.ErrIO, err)
	}
	if len(matches) == 0 {
		l.Error().Str("dir", dir).Msg("no raw json files found")
		return "", fmt.Errorf("%w in %s", weather.ErrNotFound, dir)
	}

	var (
		latest   string
		latestAt time.Time
	)
	for _, m := range matches {
		at, err := createdAt(m)
		if err != nil {
			l.Error().Err(err).Str("file", m).Msg("error finding the latest file")
			return "", fmt.Errorf("%w: %v", weather.ErrIO, err)
		}
		if latest == "" || at.After(latestAt) {
			latest, latestAt = m, at
		}
	}

	l.Info().Str("file", latest).Time("created", latestAt).Msg("last file found")
	return latest, nil
}

// createdAt prefers the birth time, then the inode change time, then mtime.
func createdAt(path string) (time.Time, error) {
	ts, err := times.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	switch {
	case ts.HasBirthTime():
		return ts.BirthTime(), nil
	case ts.HasChangeTime():
		return ts.ChangeTime(), nil
	default:
		return ts.ModTime(), nil
	}
}
