package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/omarkamelalwahsh/courseseek/core"
)

// ReadCSV parses tabular rows from CSV input. The first record is the
// header; every following record becomes a Row keyed by header name.
func ReadCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // repaired later, not rejected here
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyDataset
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchema, err)
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSchema, err)
		}
		row := make(Row, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// LoadCSV reads and normalizes a course catalog from a CSV file.
func LoadCSV(path string) ([]core.Course, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchema, err)
	}
	defer f.Close()

	rows, err := ReadCSV(f)
	if err != nil {
		return nil, err
	}
	return Normalize(rows)
}
