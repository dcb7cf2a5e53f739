package ingest

import (
	"github.com/wavelog/waveport/internal/observability/metrics"
	"go.uber.org/fx"
)

var Module = fx.Module("ingest",
	fx.Provide(metrics.PipelineMetrics),
	fx.Provide(NewPipeline),
	fx.Provide(NewRunner),
)
