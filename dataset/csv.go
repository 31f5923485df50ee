package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// FromCSV reads a CSV stream with a header row into a Dataset. Every cell is
// kept as a string; numeric and date coercion happens lazily where a column
// is actually used.
func FromCSV(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err == io.EOF {
		return New(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	var rows []Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", len(rows)+2, err)
		}
		row := make(Row, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return &Dataset{rows: rows}, nil
}

// FromCSVFile reads a CSV file into a Dataset.
func FromCSVFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	return FromCSV(f)
}
