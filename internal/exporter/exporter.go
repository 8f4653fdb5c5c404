package exporter

import (
	"encoding/csv"
	"fmt"

	"github.com/seqtools/add-column/internal/table"
)

// Result contains the result of an export operation.
type Result struct {
	RowCount int
}

// Write serializes t to filePath with a header row.
// Nothing is left at filePath unless every row was written.
func Write(t *table.Table, filePath string, delimiter rune) (*Result, error) {
	out, err := Create(filePath)
	if err != nil {
		return nil, &table.WriteError{Path: filePath, Err: err}
	}
	defer out.Abort()

	writer := csv.NewWriter(out)
	writer.Comma = delimiter
	writer.UseCRLF = t.CRLF

	if err := writer.Write(t.Header); err != nil {
		return nil, &table.WriteError{Path: filePath, Err: fmt.Errorf("failed to write header: %w", err)}
	}

	for _, record := range t.Records {
		if err := writer.Write(record); err != nil {
			return nil, &table.WriteError{Path: filePath, Err: fmt.Errorf("failed to write row: %w", err)}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, &table.WriteError{Path: filePath, Err: fmt.Errorf("failed to flush rows: %w", err)}
	}

	if err := out.Commit(); err != nil {
		return nil, &table.WriteError{Path: filePath, Err: err}
	}

	return &Result{RowCount: t.Len()}, nil
}
