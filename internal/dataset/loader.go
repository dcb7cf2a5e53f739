// Package dataset acquires and loads the raw daily port-activity dataset.
// The reconciliation pipeline receives its output and owns everything after.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Record is one raw dataset row keyed by the dataset-native column names.
type Record map[string]string

// LoadCSV reads the dataset file into header-keyed records. Short rows are
// tolerated; missing cells simply stay absent from the record.
func LoadCSV(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	var records []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		record := make(Record, len(header))
		for i, name := range header {
			if i >= len(row) {
				break
			}
			record[name] = row[i]
		}
		records = append(records, record)
	}

	return records, nil
}
