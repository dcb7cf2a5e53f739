// Package domain contains persistence models for the ingestion calendar.
package domain

import "time"

// CalendarDay stores one calendar date at day granularity. ImportTotal and
// ExportTotal are derived fields: the summed metric volumes across all ports
// for that date, rewritten on every aggregate pass. They are the only fields
// mutated after insert.
type CalendarDay struct {
	Date        time.Time `json:"date" gorm:"primaryKey"`
	Year        int       `json:"year" gorm:"not null"`
	Month       int       `json:"month" gorm:"not null"`
	Day         int       `json:"day" gorm:"not null"`
	ImportTotal float64   `json:"import_total" gorm:"not null;default:0"`
	ExportTotal float64   `json:"export_total" gorm:"not null;default:0"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (CalendarDay) TableName() string { return "calendar_days" }

// Truncate normalizes a timestamp to its UTC calendar date. Every date that
// reaches storage or a lookup goes through this, so comparisons are exact.
func Truncate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DailyTotal carries the summed import/export volumes for one date.
type DailyTotal struct {
	Date        time.Time
	ImportTotal float64
	ExportTotal float64
}
