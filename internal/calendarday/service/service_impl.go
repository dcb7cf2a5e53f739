package service

import (
	"context"
	"time"

	calendardomain "github.com/wavelog/waveport/internal/calendarday/domain"
	pkgdb "github.com/wavelog/waveport/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	Log  *zap.Logger
	Repo calendardomain.Repository
}

type Service struct {
	log  *zap.Logger
	repo calendardomain.Repository
}

func New(p Params) calendardomain.Service {
	return &Service{
		log:  p.Log.Named("calendarday.service"),
		repo: p.Repo,
	}
}

func (s *Service) EnsureAll(ctx context.Context, db *gorm.DB, dates []time.Time) (int, error) {
	seen := make(map[time.Time]struct{}, len(dates))
	inserted := 0

	for _, raw := range dates {
		if raw.IsZero() {
			continue
		}
		date := calendardomain.Truncate(raw)
		if _, dup := seen[date]; dup {
			continue
		}
		seen[date] = struct{}{}

		existing, err := s.repo.FindByDate(ctx, db, date)
		if err != nil {
			return inserted, err
		}
		if existing != nil {
			continue
		}

		day := &calendardomain.CalendarDay{
			Date:      date,
			Year:      date.Year(),
			Month:     int(date.Month()),
			Day:       date.Day(),
			UpdatedAt: time.Now().UTC(),
		}
		if err := s.repo.Insert(ctx, db, day); err != nil {
			if pkgdb.IsDuplicateKeyErr(err) {
				continue
			}
			return inserted, err
		}
		inserted++
	}

	return inserted, nil
}

func (s *Service) UpdateDailyTotals(ctx context.Context, db *gorm.DB, totals []calendardomain.DailyTotal) (int, error) {
	now := time.Now().UTC()
	updated := 0

	for _, total := range totals {
		if total.Date.IsZero() {
			continue
		}
		ok, err := s.repo.UpdateTotals(ctx, db, total, now)
		if err != nil {
			return updated, err
		}
		if !ok {
			s.log.Warn("daily total update missed calendar row",
				zap.Time("date", calendardomain.Truncate(total.Date)),
			)
			continue
		}
		updated++
	}

	return updated, nil
}
