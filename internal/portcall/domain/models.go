// Package domain contains persistence models for per-port daily traffic.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// PortCall stores the traffic counters reported for one port on one date.
// Identity is (port_id, date); a record is written once and never updated.
type PortCall struct {
	ID     snowflake.ID `json:"id" gorm:"primaryKey"`
	PortID snowflake.ID `json:"port_id" gorm:"not null;uniqueIndex:ux_port_calls_port_date,priority:1"`
	Date   time.Time    `json:"date" gorm:"not null;uniqueIndex:ux_port_calls_port_date,priority:2"`

	CallsContainer    float64 `json:"calls_container" gorm:"not null;default:0"`
	CallsDryBulk      float64 `json:"calls_dry_bulk" gorm:"not null;default:0"`
	CallsGeneralCargo float64 `json:"calls_general_cargo" gorm:"not null;default:0"`
	CallsRoRo         float64 `json:"calls_roro" gorm:"column:calls_roro;not null;default:0"`
	CallsTanker       float64 `json:"calls_tanker" gorm:"not null;default:0"`
	CallsCargo        float64 `json:"calls_cargo" gorm:"not null;default:0"`
	CallsTotal        float64 `json:"calls_total" gorm:"not null;default:0"`

	ImportContainer    float64 `json:"import_container" gorm:"not null;default:0"`
	ImportDryBulk      float64 `json:"import_dry_bulk" gorm:"not null;default:0"`
	ImportGeneralCargo float64 `json:"import_general_cargo" gorm:"not null;default:0"`
	ImportRoRo         float64 `json:"import_roro" gorm:"column:import_roro;not null;default:0"`
	ImportTanker       float64 `json:"import_tanker" gorm:"not null;default:0"`
	ImportCargo        float64 `json:"import_cargo" gorm:"not null;default:0"`
	ImportTotal        float64 `json:"import_total" gorm:"not null;default:0"`

	ExportContainer    float64 `json:"export_container" gorm:"not null;default:0"`
	ExportDryBulk      float64 `json:"export_dry_bulk" gorm:"not null;default:0"`
	ExportGeneralCargo float64 `json:"export_general_cargo" gorm:"not null;default:0"`
	ExportRoRo         float64 `json:"export_roro" gorm:"column:export_roro;not null;default:0"`
	ExportTanker       float64 `json:"export_tanker" gorm:"not null;default:0"`
	ExportCargo        float64 `json:"export_cargo" gorm:"not null;default:0"`
	ExportTotal        float64 `json:"export_total" gorm:"not null;default:0"`

	CreatedAt time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (PortCall) TableName() string { return "port_calls" }

// Metric column names in the domain vocabulary, in storage order.
const (
	MetricCallsContainer    = "calls_container"
	MetricCallsDryBulk      = "calls_dry_bulk"
	MetricCallsGeneralCargo = "calls_general_cargo"
	MetricCallsRoRo         = "calls_roro"
	MetricCallsTanker       = "calls_tanker"
	MetricCallsCargo        = "calls_cargo"
	MetricCallsTotal        = "calls_total"

	MetricImportContainer    = "import_container"
	MetricImportDryBulk      = "import_dry_bulk"
	MetricImportGeneralCargo = "import_general_cargo"
	MetricImportRoRo         = "import_roro"
	MetricImportTanker       = "import_tanker"
	MetricImportCargo        = "import_cargo"
	MetricImportTotal        = "import_total"

	MetricExportContainer    = "export_container"
	MetricExportDryBulk      = "export_dry_bulk"
	MetricExportGeneralCargo = "export_general_cargo"
	MetricExportRoRo         = "export_roro"
	MetricExportTanker       = "export_tanker"
	MetricExportCargo        = "export_cargo"
	MetricExportTotal        = "export_total"
)

// MetricColumns lists every traffic counter carried by a PortCall.
var MetricColumns = []string{
	MetricCallsContainer, MetricCallsDryBulk, MetricCallsGeneralCargo,
	MetricCallsRoRo, MetricCallsTanker, MetricCallsCargo, MetricCallsTotal,
	MetricImportContainer, MetricImportDryBulk, MetricImportGeneralCargo,
	MetricImportRoRo, MetricImportTanker, MetricImportCargo, MetricImportTotal,
	MetricExportContainer, MetricExportDryBulk, MetricExportGeneralCargo,
	MetricExportRoRo, MetricExportTanker, MetricExportCargo, MetricExportTotal,
}

func (c *PortCall) metricFields() map[string]*float64 {
	return map[string]*float64{
		MetricCallsContainer:     &c.CallsContainer,
		MetricCallsDryBulk:       &c.CallsDryBulk,
		MetricCallsGeneralCargo:  &c.CallsGeneralCargo,
		MetricCallsRoRo:          &c.CallsRoRo,
		MetricCallsTanker:        &c.CallsTanker,
		MetricCallsCargo:         &c.CallsCargo,
		MetricCallsTotal:         &c.CallsTotal,
		MetricImportContainer:    &c.ImportContainer,
		MetricImportDryBulk:      &c.ImportDryBulk,
		MetricImportGeneralCargo: &c.ImportGeneralCargo,
		MetricImportRoRo:         &c.ImportRoRo,
		MetricImportTanker:       &c.ImportTanker,
		MetricImportCargo:        &c.ImportCargo,
		MetricImportTotal:        &c.ImportTotal,
		MetricExportContainer:    &c.ExportContainer,
		MetricExportDryBulk:      &c.ExportDryBulk,
		MetricExportGeneralCargo: &c.ExportGeneralCargo,
		MetricExportRoRo:         &c.ExportRoRo,
		MetricExportTanker:       &c.ExportTanker,
		MetricExportCargo:        &c.ExportCargo,
		MetricExportTotal:        &c.ExportTotal,
	}
}

// ApplyMetrics copies values from a metric map onto the record. Unknown keys
// are ignored; absent keys leave the field at zero.
func (c *PortCall) ApplyMetrics(metrics map[string]float64) {
	fields := c.metricFields()
	for name, value := range metrics {
		if field, ok := fields[name]; ok {
			*field = value
		}
	}
}

// Metric returns the named counter value, or zero for unknown names.
func (c *PortCall) Metric(name string) float64 {
	if field, ok := c.metricFields()[name]; ok {
		return *field
	}
	return 0
}
