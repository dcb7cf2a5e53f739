package ingest

import (
	"strconv"
	"strings"
	"time"

	calendardomain "github.com/wavelog/waveport/internal/calendarday/domain"
	"github.com/wavelog/waveport/internal/dataset"
)

// Row is one normalized dataset record: identity fields parsed and trimmed,
// metrics renamed into the domain vocabulary. Rows never reach storage
// directly; the pipeline stages derive their inputs from them.
type Row struct {
	PortName string
	Country  string
	ISO3     string
	Date     time.Time
	Metrics  map[string]float64
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006",
}

func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return calendardomain.Truncate(t), true
		}
	}
	return time.Time{}, false
}

// Normalize filters and reshapes raw records. A record missing any of the
// four identity fields, or carrying an unparsable date, contributes nothing
// downstream. Metric cells that fail numeric parsing are coerced to zero.
func Normalize(records []dataset.Record) (rows []Row, dropped int) {
	for _, record := range records {
		date, ok := parseDate(record[rawColDate])
		if !ok {
			dropped++
			continue
		}

		row := Row{
			PortName: strings.TrimSpace(record[rawColPortName]),
			Country:  strings.TrimSpace(record[rawColCountry]),
			ISO3:     strings.TrimSpace(record[rawColISO3]),
			Date:     date,
			Metrics:  make(map[string]float64, len(columnRenames)),
		}
		if row.PortName == "" || row.Country == "" || row.ISO3 == "" {
			dropped++
			continue
		}

		for raw, name := range columnRenames {
			value, err := strconv.ParseFloat(strings.TrimSpace(record[raw]), 64)
			if err != nil {
				value = 0
			}
			row.Metrics[name] = value
		}
		rows = append(rows, row)
	}
	return rows, dropped
}
