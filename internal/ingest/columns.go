package ingest

import (
	portcalldomain "github.com/wavelog/waveport/internal/portcall/domain"
)

// Raw dataset column names carrying row identity.
const (
	rawColPortName = "portname"
	rawColCountry  = "country"
	rawColISO3     = "ISO3"
	rawColDate     = "date"
)

// columnRenames maps the dataset-native metric columns onto the domain
// vocabulary. Pure configuration data: the normalizer walks this table and
// never hardcodes a column name in control flow.
var columnRenames = map[string]string{
	"portcalls_container":     portcalldomain.MetricCallsContainer,
	"portcalls_dry_bulk":      portcalldomain.MetricCallsDryBulk,
	"portcalls_general_cargo": portcalldomain.MetricCallsGeneralCargo,
	"portcalls_roro":          portcalldomain.MetricCallsRoRo,
	"portcalls_tanker":        portcalldomain.MetricCallsTanker,
	"portcalls_cargo":         portcalldomain.MetricCallsCargo,
	"portcalls":               portcalldomain.MetricCallsTotal,

	"import_container":     portcalldomain.MetricImportContainer,
	"import_dry_bulk":      portcalldomain.MetricImportDryBulk,
	"import_general_cargo": portcalldomain.MetricImportGeneralCargo,
	"import_roro":          portcalldomain.MetricImportRoRo,
	"import_tanker":        portcalldomain.MetricImportTanker,
	"import_cargo":         portcalldomain.MetricImportCargo,
	"import":               portcalldomain.MetricImportTotal,

	"export_container":     portcalldomain.MetricExportContainer,
	"export_dry_bulk":      portcalldomain.MetricExportDryBulk,
	"export_general_cargo": portcalldomain.MetricExportGeneralCargo,
	"export_roro":          portcalldomain.MetricExportRoRo,
	"export_tanker":        portcalldomain.MetricExportTanker,
	"export_cargo":         portcalldomain.MetricExportCargo,
	"export":               portcalldomain.MetricExportTotal,
}
