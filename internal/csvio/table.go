// Package csvio reads and writes the delimited tables exchanged with the
// upstream classifier and downstream consumers.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Table is an in-memory delimited table: a header row plus data rows.
// Columns this system does not know about pass through untouched.
type Table struct {
	Header []string
	Rows   [][]string
}

// Column returns the index of the named column.
func (t *Table) Column(name string) (int, bool) {
	for i, h := range t.Header {
		if h == name {
			return i, true
		}
	}
	return 0, false
}

// Read parses a CSV stream into a table. Rows are allowed to vary in length;
// downstream validation decides whether ragged rows are acceptable.
func Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV input is empty")
	}

	return &Table{Header: records[0], Rows: records[1:]}, nil
}

// ReadFile parses a CSV file into a table.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Write serializes the table as CSV.
func Write(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// WriteFile serializes the table to a CSV file.
func WriteFile(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := Write(f, t); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
