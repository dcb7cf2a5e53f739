// Package ingest runs the daily port-activity reconciliation: normalize the
// raw dataset, then populate ports, calendar days, per-port activity and the
// per-day aggregate totals, in that order.
package ingest

import (
	"context"
	"sort"
	"time"

	calendardomain "github.com/wavelog/waveport/internal/calendarday/domain"
	"github.com/wavelog/waveport/internal/dataset"
	"github.com/wavelog/waveport/internal/observability/metrics"
	portdomain "github.com/wavelog/waveport/internal/port/domain"
	portcalldomain "github.com/wavelog/waveport/internal/portcall/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Stage labels used in logs and metrics.
const (
	StagePorts      = "ports"
	StageCalendar   = "calendar"
	StageActivity   = "activity"
	StageAggregates = "aggregates"
)

// Report accounts for one full pipeline pass.
type Report struct {
	RowsLoaded  int `json:"rows_loaded"`
	RowsDropped int `json:"rows_dropped"`

	PortsCreated int `json:"ports_created"`
	DatesCreated int `json:"dates_created"`

	CallsInserted          int `json:"calls_inserted"`
	CallsSkippedExisting   int `json:"calls_skipped_existing"`
	CallsSkippedUnresolved int `json:"calls_skipped_unresolved"`

	TotalsUpdated int `json:"totals_updated"`
}

type PipelineParams struct {
	fx.In

	Log       *zap.Logger
	DB        *gorm.DB
	Ports     portdomain.Service
	Calendar  calendardomain.Service
	PortCalls portcalldomain.Service
	Metrics   *metrics.Pipeline
}

type Pipeline struct {
	log       *zap.Logger
	db        *gorm.DB
	ports     portdomain.Service
	calendar  calendardomain.Service
	portCalls portcalldomain.Service
	metrics   *metrics.Pipeline
}

func NewPipeline(p PipelineParams) *Pipeline {
	return &Pipeline{
		log:       p.Log.Named("ingest.pipeline"),
		db:        p.DB,
		ports:     p.Ports,
		calendar:  p.Calendar,
		portCalls: p.PortCalls,
		metrics:   p.Metrics,
	}
}

// Run normalizes the records and executes the four stages sequentially, each
// inside its own transaction. A storage error aborts the run; stages already
// committed stay committed and a re-run repeats them as no-ops.
func (p *Pipeline) Run(ctx context.Context, records []dataset.Record) (Report, error) {
	rows, dropped := Normalize(records)
	report := Report{
		RowsLoaded:  len(rows),
		RowsDropped: dropped,
	}
	p.log.Info("dataset normalized",
		zap.Int("rows", report.RowsLoaded),
		zap.Int("dropped", report.RowsDropped),
	)

	if err := p.runStage(ctx, StagePorts, func(tx *gorm.DB) error {
		created, err := p.ports.EnsureAll(ctx, tx, distinctPorts(rows))
		report.PortsCreated = created
		return err
	}); err != nil {
		return report, err
	}
	p.metrics.AddStageRows(StagePorts, "inserted", report.PortsCreated)

	if err := p.runStage(ctx, StageCalendar, func(tx *gorm.DB) error {
		created, err := p.calendar.EnsureAll(ctx, tx, distinctDates(rows))
		report.DatesCreated = created
		return err
	}); err != nil {
		return report, err
	}
	p.metrics.AddStageRows(StageCalendar, "inserted", report.DatesCreated)

	if err := p.runStage(ctx, StageActivity, func(tx *gorm.DB) error {
		result, err := p.portCalls.EnsureAll(ctx, tx, activityCandidates(rows))
		report.CallsInserted = result.Inserted
		report.CallsSkippedExisting = result.SkippedExisting
		report.CallsSkippedUnresolved = result.SkippedUnresolved
		return err
	}); err != nil {
		return report, err
	}
	p.metrics.AddStageRows(StageActivity, "inserted", report.CallsInserted)
	p.metrics.AddStageRows(StageActivity, "skipped_existing", report.CallsSkippedExisting)
	p.metrics.AddStageRows(StageActivity, "skipped_unresolved", report.CallsSkippedUnresolved)

	if err := p.runStage(ctx, StageAggregates, func(tx *gorm.DB) error {
		updated, err := p.calendar.UpdateDailyTotals(ctx, tx, dailyTotals(rows))
		report.TotalsUpdated = updated
		return err
	}); err != nil {
		return report, err
	}
	p.metrics.AddStageRows(StageAggregates, "updated", report.TotalsUpdated)

	return report, nil
}

func (p *Pipeline) runStage(ctx context.Context, stage string, fn func(tx *gorm.DB) error) error {
	p.log.Info("stage starting", zap.String("stage", stage))
	start := time.Now()

	err := p.db.WithContext(ctx).Transaction(fn)
	p.metrics.ObserveStageDuration(stage, time.Since(start))
	if err != nil {
		p.log.Error("stage failed", zap.String("stage", stage), zap.Error(err))
		return err
	}

	p.log.Info("stage complete",
		zap.String("stage", stage),
		zap.Duration("took", time.Since(start)),
	)
	return nil
}

// distinctPorts collapses rows to the first-seen (name, country) triple.
func distinctPorts(rows []Row) []portdomain.Port {
	var ports []portdomain.Port
	seen := make(map[string]struct{})
	for _, row := range rows {
		candidate := portdomain.Port{
			Name:    row.PortName,
			Country: row.Country,
			ISO3:    row.ISO3,
		}
		if _, ok := seen[candidate.Key()]; ok {
			continue
		}
		seen[candidate.Key()] = struct{}{}
		ports = append(ports, candidate)
	}
	return ports
}

func distinctDates(rows []Row) []time.Time {
	var dates []time.Time
	seen := make(map[time.Time]struct{})
	for _, row := range rows {
		if _, ok := seen[row.Date]; ok {
			continue
		}
		seen[row.Date] = struct{}{}
		dates = append(dates, row.Date)
	}
	return dates
}

func activityCandidates(rows []Row) []portcalldomain.Candidate {
	candidates := make([]portcalldomain.Candidate, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, portcalldomain.Candidate{
			PortName: row.PortName,
			Country:  row.Country,
			Date:     row.Date,
			Metrics:  row.Metrics,
		})
	}
	return candidates
}

// dailyTotals sums the import and export totals per date across the
// normalized rows. Duplicate (port, date) rows collapse to the first
// occurrence, mirroring the first-write-wins activity stage, so the stored
// totals agree with the activity records written this run.
func dailyTotals(rows []Row) []calendardomain.DailyTotal {
	byDate := make(map[time.Time]*calendardomain.DailyTotal)
	seen := make(map[string]struct{})
	for _, row := range rows {
		key := row.PortName + "\x1f" + row.Country + "\x1f" + row.Date.Format("2006-01-02")
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		total, ok := byDate[row.Date]
		if !ok {
			total = &calendardomain.DailyTotal{Date: row.Date}
			byDate[row.Date] = total
		}
		total.ImportTotal += row.Metrics[portcalldomain.MetricImportTotal]
		total.ExportTotal += row.Metrics[portcalldomain.MetricExportTotal]
	}

	totals := make([]calendardomain.DailyTotal, 0, len(byDate))
	for _, total := range byDate {
		totals = append(totals, *total)
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Date.Before(totals[j].Date)
	})
	return totals
}
