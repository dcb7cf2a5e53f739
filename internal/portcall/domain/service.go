package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// Candidate is one normalized input row ready for activity reconciliation.
// Port identity is still symbolic; the service resolves it against the
// registry before writing.
type Candidate struct {
	PortName string
	Country  string
	Date     time.Time
	Metrics  map[string]float64
}

// Result accounts for one EnsureAll pass.
type Result struct {
	Inserted          int
	SkippedExisting   int
	SkippedUnresolved int
}

type Service interface {
	// EnsureAll inserts one PortCall per (port, date) pair not yet stored.
	// Candidates whose port cannot be resolved are skipped silently; pairs
	// already stored are skipped even when metric values differ (first write
	// wins).
	EnsureAll(ctx context.Context, db *gorm.DB, candidates []Candidate) (Result, error)
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, call *PortCall) error
	Exists(ctx context.Context, db *gorm.DB, portID snowflake.ID, date time.Time) (bool, error)
}
