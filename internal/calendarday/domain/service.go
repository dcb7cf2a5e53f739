package domain

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Service interface {
	// EnsureAll persists every date not yet stored, decomposed into
	// year/month/day with zeroed totals. Returns the number inserted.
	EnsureAll(ctx context.Context, db *gorm.DB, dates []time.Time) (int, error)

	// UpdateDailyTotals overwrites the derived totals for each date. The rows
	// must already exist; a missing row counts as an update miss, not an error.
	UpdateDailyTotals(ctx context.Context, db *gorm.DB, totals []DailyTotal) (int, error)
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, day *CalendarDay) error
	FindByDate(ctx context.Context, db *gorm.DB, date time.Time) (*CalendarDay, error)
	UpdateTotals(ctx context.Context, db *gorm.DB, total DailyTotal, at time.Time) (bool, error)
}

var ErrInvalidDate = errors.New("invalid_date")
