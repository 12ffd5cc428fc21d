package weather

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Service runs one cleaning pass: locate, load, normalize and store.
type Service struct {
	source     Source
	normalizer *Normalizer
	store      Store
	l          zerolog.Logger
}

// NewService creates a new Service.
func NewService(source Source, normalizer *Normalizer, store Store, l zerolog.Logger) *Service {
	return &Service{
		source:     source,
		normalizer: normalizer,
		store:      store,
		l:          l,
	}
}

// Run executes the pipeline once. Every stage logs its own outcome; the first
// failing stage stops the run, so nothing is written after an upstream error.
// An unusable location config is the exception: the run goes on and the
// City and PostalCode columns stay empty.
func (s *Service) Run(ctx context.Context) (Paths, error) {
	s.l.Debug().Msg("cleaning run started")

	path, err := s.source.FindLatest()
	if err != nil {
		return Paths{}, s.fail("locate", err)
	}
	if err := ctx.Err(); err != nil {
		return Paths{}, err
	}

	raw, err := s.source.LoadRaw(path)
	if err != nil {
		return Paths{}, s.fail("load raw", err)
	}

	loc, err := s.source.LoadLocation()
	switch {
	case errors.Is(err, ErrConfig):
		s.l.Warn().Err(err).Str("kind", KindOf(err)).Msg("continuing without location info")
		loc = Location{}
	case err != nil:
		return Paths{}, s.fail("load location", err)
	}
	if err := ctx.Err(); err != nil {
		return Paths{}, err
	}

	table, err := s.normalizer.Normalize(raw, loc)
	if err != nil {
		return Paths{}, s.fail("normalize", err)
	}
	if err := ctx.Err(); err != nil {
		return Paths{}, err
	}

	paths, err := s.store.Save(table)
	if err != nil {
		return paths, s.fail("save", err)
	}

	s.l.Info().
		Str("location", loc.Key()).
		Int("rows", len(table)).
		Str("csv", paths.CSV).
		Str("parquet", paths.Parquet).
		Msg("cleaning run completed")
	return paths, nil
}

func (s *Service) fail(stage string, err error) error {
	s.l.Warn().Str("stage", stage).Str("kind", KindOf(err)).Msg("cleaning run stopped")
	return fmt.Errorf("%s: %w", stage, err)
}
