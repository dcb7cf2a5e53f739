package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	calendardomain "github.com/wavelog/waveport/internal/calendarday/domain"
	portcalldomain "github.com/wavelog/waveport/internal/portcall/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct{}

func Provide() portcalldomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, call *portcalldomain.PortCall) error {
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "port_id"}, {Name: "date"}},
			DoNothing: true,
		}).
		Create(call).Error
}

func (r *repo) Exists(ctx context.Context, db *gorm.DB, portID snowflake.ID, date time.Time) (bool, error) {
	var found struct{ ID snowflake.ID }
	err := db.WithContext(ctx).Raw(
		`SELECT id FROM port_calls WHERE port_id = ? AND date = ?`,
		portID,
		calendardomain.Truncate(date),
	).Scan(&found).Error
	if err != nil {
		return false, err
	}
	return found.ID != 0, nil
}
