package ingest

import (
	"context"
	"sync"
	"time"

	"github.com/wavelog/waveport/internal/clock"
	"github.com/wavelog/waveport/internal/dataset"
	"github.com/wavelog/waveport/internal/observability/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// RunStatus describes the most recent pipeline run.
type RunStatus struct {
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Report     Report    `json:"report"`
	Error      string    `json:"error,omitempty"`
}

// Runner acquires the dataset and drives the pipeline, remembering the
// outcome for status reporting.
type Runner interface {
	Run(ctx context.Context) (Report, error)
	LastRun() (RunStatus, bool)
}

type RunnerParams struct {
	fx.In

	Log      *zap.Logger
	Dataset  *dataset.Service
	Pipeline *Pipeline
	Clock    clock.Clock
	Metrics  *metrics.Pipeline
}

type runner struct {
	log      *zap.Logger
	dataset  *dataset.Service
	pipeline *Pipeline
	clock    clock.Clock
	metrics  *metrics.Pipeline

	mu   sync.Mutex
	last *RunStatus
}

func NewRunner(p RunnerParams) Runner {
	return &runner{
		log:      p.Log.Named("ingest.runner"),
		dataset:  p.Dataset,
		pipeline: p.Pipeline,
		clock:    p.Clock,
		metrics:  p.Metrics,
	}
}

func (r *runner) Run(ctx context.Context) (Report, error) {
	started := r.clock.Now()
	r.log.Info("pipeline run starting")

	report, err := r.run(ctx)
	status := RunStatus{
		StartedAt:  started,
		FinishedAt: r.clock.Now(),
		Report:     report,
	}
	if err != nil {
		status.Error = err.Error()
		r.metrics.IncRun("error")
		r.log.Error("pipeline run failed", zap.Error(err))
	} else {
		r.metrics.IncRun("success")
		r.log.Info("pipeline run complete",
			zap.Int("rows", report.RowsLoaded),
			zap.Int("ports_created", report.PortsCreated),
			zap.Int("dates_created", report.DatesCreated),
			zap.Int("calls_inserted", report.CallsInserted),
			zap.Int("totals_updated", report.TotalsUpdated),
			zap.Duration("took", status.FinishedAt.Sub(started)),
		)
	}

	r.mu.Lock()
	r.last = &status
	r.mu.Unlock()

	return report, err
}

func (r *runner) run(ctx context.Context) (Report, error) {
	records, err := r.dataset.Acquire(ctx)
	if err != nil {
		return Report{}, err
	}
	return r.pipeline.Run(ctx, records)
}

func (r *runner) LastRun() (RunStatus, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.last == nil {
		return RunStatus{}, false
	}
	return *r.last, true
}
