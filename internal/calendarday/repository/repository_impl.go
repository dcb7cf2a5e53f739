package repository

import (
	"context"
	"time"

	calendardomain "github.com/wavelog/waveport/internal/calendarday/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct{}

func Provide() calendardomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, day *calendardomain.CalendarDay) error {
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}},
			DoNothing: true,
		}).
		Create(day).Error
}

func (r *repo) FindByDate(ctx context.Context, db *gorm.DB, date time.Time) (*calendardomain.CalendarDay, error) {
	var day calendardomain.CalendarDay
	err := db.WithContext(ctx).Raw(
		`SELECT date, year, month, day, import_total, export_total, updated_at
		 FROM calendar_days WHERE date = ?`,
		calendardomain.Truncate(date),
	).Scan(&day).Error
	if err != nil {
		return nil, err
	}
	if day.Year == 0 {
		return nil, nil
	}
	return &day, nil
}

func (r *repo) UpdateTotals(ctx context.Context, db *gorm.DB, total calendardomain.DailyTotal, at time.Time) (bool, error) {
	result := db.WithContext(ctx).Exec(
		`UPDATE calendar_days
		 SET import_total = ?, export_total = ?, updated_at = ?
		 WHERE date = ?`,
		total.ImportTotal,
		total.ExportTotal,
		at,
		calendardomain.Truncate(total.Date),
	)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
