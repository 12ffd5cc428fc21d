package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/i474232898/weather-data-cleaning/internal/config"
	"github.com/i474232898/weather-data-cleaning/internal/logger"
	"github.com/i474232898/weather-data-cleaning/internal/scheduler"
	"github.com/i474232898/weather-data-cleaning/internal/store"
	"github.com/i474232898/weather-data-cleaning/internal/weather"
	"github.com/i474232898/weather-data-cleaning/internal/weather/sources"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	l, closer, err := logger.New(cfg.Paths.LogsFile, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() {
		if err := closer.Close(); err != nil {
			log.Printf("failed to close log file: %v", err)
		}
	}()

	tz, err := cfg.Location()
	if err != nil {
		l.Fatal().Err(err).Msg("failed to resolve output timezone")
	}

	source := sources.NewFileSource(cfg.Paths.RawDir, cfg.Paths.LocationFile, l)
	normalizer := weather.NewNormalizer(weather.NormalizerConfig{
		Interval:        cfg.Cleaning.Interval.Duration(),
		MinTemperatureC: cfg.Cleaning.MinTemperatureC,
		MaxTemperatureC: cfg.Cleaning.MaxTemperatureC,
	}, l)
	fileStore := store.NewFileStore(cfg.Paths.CleanedDir, tz, nil, l)

	service := weather.NewService(source, normalizer, fileStore, l)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.CleanEvery == 0 {
		if _, err := service.Run(ctx); err != nil {
			l.Error().Err(err).Str("kind", weather.KindOf(err)).Msg("cleaning failed")
			stop()
			_ = closer.Close()
			os.Exit(1)
		}
		return
	}

	// Scheduler that periodically re-runs the pipeline.
	sched := scheduler.New(cfg.CleanEvery, service, l)
	if err := sched.Start(); err != nil {
		l.Fatal().Err(err).Msg("failed to start scheduler")
	}
	defer sched.Stop()

	<-ctx.Done()
	l.Info().Msg("shutdown signal received, stopping scheduler")
}
