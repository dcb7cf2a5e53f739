package repository

import (
	"context"

	portdomain "github.com/wavelog/waveport/internal/port/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct{}

func Provide() portdomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, p *portdomain.Port) error {
	// Conflict-ignored insert: the unique index on (name, country) is the
	// real arbiter under concurrent runs.
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}, {Name: "country"}},
			DoNothing: true,
		}).
		Create(p).Error
}

func (r *repo) FindByNameCountry(ctx context.Context, db *gorm.DB, name, country string) (*portdomain.Port, error) {
	var port portdomain.Port
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, country, iso3, created_at
		 FROM ports WHERE name = ? AND country = ?`,
		name,
		country,
	).Scan(&port).Error
	if err != nil {
		return nil, err
	}
	if port.ID == 0 {
		return nil, nil
	}
	return &port, nil
}
