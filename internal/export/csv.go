// Package export writes flattened query results as CSV or TSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Table is a header plus rows of string cells, ready for delimited output.
type Table struct {
	Header []string
	Rows   [][]string
}

// WriteCSV writes the table as comma-separated values.
func WriteCSV(w io.Writer, t Table) error {
	return write(w, t, ',')
}

// WriteTSV writes the table as tab-separated values.
func WriteTSV(w io.Writer, t Table) error {
	return write(w, t, '\t')
}

func write(w io.Writer, t Table, delimiter rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = delimiter

	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Header) {
			return fmt.Errorf("row %d has %d cells, header has %d", i, len(row), len(t.Header))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
