// Package domain contains persistence models for the port registry.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Port identifies a harbour by (name, country). The ISO country code is
// informational only and is not part of the identity key.
type Port struct {
	ID        snowflake.ID `json:"id" gorm:"primaryKey"`
	Name      string       `json:"name" gorm:"type:text;not null;uniqueIndex:ux_ports_name_country,priority:1"`
	Country   string       `json:"country" gorm:"type:text;not null;uniqueIndex:ux_ports_name_country,priority:2"`
	ISO3      string       `json:"iso3" gorm:"column:iso3;type:text;not null"`
	CreatedAt time.Time    `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Port) TableName() string { return "ports" }

// Key returns the identity key used for deduplication.
func (p Port) Key() string { return p.Name + "\x1f" + p.Country }
