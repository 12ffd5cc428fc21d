package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-data-cleaning/internal/weather"
)

type countingRunner struct {
	runs chan struct{}
}

func (r *countingRunner) Run(context.Context) (weather.Paths, error) {
	r.runs <- struct{}{}
	return weather.Paths{}, nil
}

func TestScheduler_DisabledWithZeroInterval(t *testing.T) {
	s := New(0, &countingRunner{runs: make(chan struct{}, 1)}, zerolog.Nop())
	require.NoError(t, s.Start())
	defer s.Stop()

	assert.Equal(t, 0, s.Jobs())
}

func TestScheduler_RunsJob(t *testing.T) {
	runner := &countingRunner{runs: make(chan struct{}, 4)}
	s := New(time.Hour, runner, zerolog.Nop())
	require.NoError(t, s.Start())
	defer s.Stop()

	assert.Equal(t, 1, s.Jobs())

	select {
	case <-runner.runs:
	case <-time.After(5 * time.Second):
		t.Fatal("scheduled job did not run")
	}
}
