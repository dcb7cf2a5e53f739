package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wavelog/waveport/internal/clock"
	"github.com/wavelog/waveport/internal/ingest"
	"go.uber.org/zap"
)

type runnerStub struct {
	mu     sync.Mutex
	runs   int
	err    error
	last   ingest.RunStatus
	hasRun bool
}

func (r *runnerStub) Run(context.Context) (ingest.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs++
	r.hasRun = true
	return ingest.Report{}, r.err
}

func (r *runnerStub) LastRun() (ingest.RunStatus, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last, r.hasRun
}

func (r *runnerStub) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runs
}

func TestNextRun(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			"mid-month",
			time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
			time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"year rollover",
			time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC),
			time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"exactly on the due instant schedules the following month",
			time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextRun(tt.now))
		})
	}
}

func TestNew_RequiresDependencies(t *testing.T) {
	_, err := New(Params{Log: zap.NewNop()})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRunOnce(t *testing.T) {
	stub := &runnerStub{}
	sched, err := New(Params{
		Log:    zap.NewNop(),
		Runner: stub,
		Clock:  clock.NewFakeClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
	})
	assert.NoError(t, err)

	assert.NoError(t, sched.RunOnce(context.Background()))
	assert.Equal(t, 1, stub.count())

	stub.err = errors.New("boom")
	assert.Error(t, sched.RunOnce(context.Background()))
}

func TestRunForever_TriggersWhenDue(t *testing.T) {
	stub := &runnerStub{}
	fake := clock.NewFakeClock(time.Date(2024, 1, 31, 23, 0, 0, 0, time.UTC))
	sched, err := New(Params{
		Log:    zap.NewNop(),
		Runner: stub,
		Clock:  fake,
		Config: Config{PollInterval: 5 * time.Millisecond},
	})
	assert.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sched.RunForever(ctx)

	// Still an hour before the first of the month: no refresh yet.
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, 0, stub.count())

	fake.Advance(2 * time.Hour)
	assert.Eventually(t, func() bool {
		return stub.count() == 1
	}, time.Second, 5*time.Millisecond)

	// The due time advanced a month; further polls stay quiet.
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, 1, stub.count())
}
