// Package augment adds the derived sample identifier column to a table.
package augment

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/seqtools/add-column/internal/marker"
	"github.com/seqtools/add-column/internal/table"
)

// Default column names of an IRIDA sample sheet.
const (
	DefaultIDColumn   = "IRIDA_ID"
	DefaultPathColumn = "Raw_forward"
	DefaultColumn     = "safe_id"
)

// Options controls which columns are read and written.
type Options struct {
	IDColumn   string
	PathColumn string
	Column     string
	// Strict fails on a read path without a sample marker instead of
	// embedding marker.NoMarker.
	Strict bool
}

// DefaultOptions returns the options matching an IRIDA sample sheet.
func DefaultOptions() Options {
	return Options{
		IDColumn:   DefaultIDColumn,
		PathColumn: DefaultPathColumn,
		Column:     DefaultColumn,
	}
}

// Result summarizes an augmentation pass.
type Result struct {
	RowCount  int
	NoMarker  int
	Appended  bool
	FirstMiss int // 1-based record number of the first row without a marker, 0 if none
}

// Apply computes the derived column for every record of t, in order.
// The column is appended, or overwritten in place when t already has it.
// t is left untouched on error.
func Apply(t *table.Table, opts Options, log zerolog.Logger) (*Result, error) {
	idx, err := t.RequireColumns(opts.IDColumn, opts.PathColumn)
	if err != nil {
		return nil, err
	}
	idCol, pathCol := idx[0], idx[1]

	result := &Result{RowCount: t.Len()}
	values := make([]string, t.Len())
	for i, record := range t.Records {
		id, rawForward := record[idCol], record[pathCol]

		if opts.Strict {
			v, err := marker.BuildSafeIDStrict(id, rawForward)
			if err != nil {
				return nil, fmt.Errorf("record %d: %w", i+1, err)
			}
			values[i] = v
			continue
		}

		v, ok := marker.SafeID(id, rawForward)
		if !ok {
			result.NoMarker++
			if result.FirstMiss == 0 {
				result.FirstMiss = i + 1
			}
			log.Debug().Int("record", i+1).Str("path", rawForward).Msg("no sample marker")
		}
		values[i] = v
	}

	appended, err := t.SetColumn(opts.Column, values)
	if err != nil {
		return nil, err
	}
	result.Appended = appended

	log.Debug().
		Int("rows", result.RowCount).
		Int("no_marker", result.NoMarker).
		Bool("appended", appended).
		Str("column", opts.Column).
		Msg("augmented table")

	return result, nil
}
