// Package scheduler triggers the monthly dataset refresh. The dataset is
// republished monthly, so the refresh is due on the first day of each month;
// a poll loop checks the due time at a coarse interval.
package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/wavelog/waveport/internal/clock"
	"github.com/wavelog/waveport/internal/ingest"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var ErrInvalidConfig = errors.New("scheduler: missing dependency")

type Params struct {
	fx.In

	Log    *zap.Logger
	Runner ingest.Runner
	Clock  clock.Clock
	Config Config `optional:"true"`
}

type Scheduler struct {
	log    *zap.Logger
	runner ingest.Runner
	clock  clock.Clock
	cfg    Config
}

func New(p Params) (*Scheduler, error) {
	if p.Log == nil || p.Runner == nil || p.Clock == nil {
		return nil, ErrInvalidConfig
	}
	return &Scheduler{
		log:    p.Log.Named("scheduler").With(zap.String("component", "scheduler")),
		runner: p.Runner,
		clock:  p.Clock,
		cfg:    p.Config.withDefaults(),
	}, nil
}

// NextRun returns the first refresh due time strictly after t: midnight UTC
// on the first day of the following month.
func NextRun(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
}

// RunOnce executes one full refresh immediately.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	_, err := s.runner.Run(ctx)
	return err
}

// RunForever polls until the context is cancelled, refreshing whenever the
// monthly due time has passed. A failed refresh is retried on the next poll
// tick rather than waiting a full month.
func (s *Scheduler) RunForever(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.PollInterval)
	defer ticker.Stop()

	next := NextRun(s.clock.Now())
	s.log.Info("monthly refresh scheduled", zap.Time("next_run", next))

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		now := s.clock.Now()
		if now.Before(next) {
			continue
		}

		if err := s.RunOnce(ctx); err != nil {
			s.log.Warn("scheduled refresh failed", zap.Error(err))
			continue
		}
		next = NextRun(now)
		s.log.Info("monthly refresh complete", zap.Time("next_run", next))
	}
}
