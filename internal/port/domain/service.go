package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Service interface {
	// EnsureAll persists every candidate whose (name, country) pair is not yet
	// stored. Candidates sharing a pair collapse to the first-seen entry.
	// Returns the number of newly inserted ports.
	EnsureAll(ctx context.Context, db *gorm.DB, candidates []Port) (int, error)

	// ResolveID looks up a port by (name, country). Returns 0 when absent.
	ResolveID(ctx context.Context, db *gorm.DB, name, country string) (snowflake.ID, error)
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, port *Port) error
	FindByNameCountry(ctx context.Context, db *gorm.DB, name, country string) (*Port, error)
}

var (
	ErrInvalidName    = errors.New("invalid_port_name")
	ErrInvalidCountry = errors.New("invalid_country")
)
