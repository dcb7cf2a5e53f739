// Package metrics exposes prometheus collectors for the ingestion pipeline.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Pipeline struct {
	runsTotal     *prometheus.CounterVec
	stageRows     *prometheus.CounterVec
	stageDuration *prometheus.HistogramVec
}

var (
	pipelineOnce sync.Once
	pipelineInst *Pipeline
)

// PipelineMetrics returns the process-wide pipeline collectors.
func PipelineMetrics() *Pipeline {
	pipelineOnce.Do(func() {
		pipelineInst = &Pipeline{
			runsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "waveport",
				Subsystem: "pipeline",
				Name:      "runs_total",
				Help:      "Completed pipeline runs by result.",
			}, []string{"result"}),
			stageRows: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "waveport",
				Subsystem: "pipeline",
				Name:      "stage_rows_total",
				Help:      "Rows written or skipped per stage.",
			}, []string{"stage", "outcome"}),
			stageDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
				Namespace: "waveport",
				Subsystem: "pipeline",
				Name:      "stage_duration_seconds",
				Help:      "Stage wall time.",
				Buckets:   prometheus.DefBuckets,
			}, []string{"stage"}),
		}
	})
	return pipelineInst
}

func (p *Pipeline) IncRun(result string) {
	p.runsTotal.WithLabelValues(result).Inc()
}

func (p *Pipeline) AddStageRows(stage, outcome string, n int) {
	if n <= 0 {
		return
	}
	p.stageRows.WithLabelValues(stage, outcome).Add(float64(n))
}

func (p *Pipeline) ObserveStageDuration(stage string, d time.Duration) {
	p.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}
