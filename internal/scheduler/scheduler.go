package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/rs/zerolog"

	"github.com/i474232898/weather-data-cleaning/internal/weather"
)

// Runner is the part of weather.Service the scheduler drives.
type Runner interface {
	Run(ctx context.Context) (weather.Paths, error)
}

// Scheduler periodically re-runs the cleaning pipeline.
type Scheduler struct {
	scheduler *gocron.Scheduler
	runner    Runner
	interval  time.Duration
	timeout   time.Duration
	l         zerolog.Logger
}

// New creates a new Scheduler. Each run is bounded by the interval itself.
func New(interval time.Duration, runner Runner, l zerolog.Logger) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()
	return &Scheduler{
		scheduler: s,
		runner:    runner,
		interval:  interval,
		timeout:   interval,
		l:         l,
	}
}

// Start schedules the periodic job and starts the underlying scheduler.
// A non-positive interval disables scheduling.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		s.l.Info().Msg("scheduler: periodic cleaning disabled")
		return nil
	}

	_, err := s.scheduler.Every(s.interval).Do(s.runOnce)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	s.l.Info().Dur("every", s.interval).Msg("scheduler: periodic cleaning started")
	return nil
}

func (s *Scheduler) runOnce() {
	s.l.Debug().Msg("scheduler: running cleaning job")

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if _, err := s.runner.Run(ctx); err != nil {
		s.l.Error().Err(err).Str("kind", weather.KindOf(err)).Msg("scheduler: cleaning job failed")
		return
	}
	s.l.Debug().Msg("scheduler: completed cleaning job")
}

// Jobs reports how many jobs are registered.
func (s *Scheduler) Jobs() int {
	return len(s.scheduler.Jobs())
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
