// Package table provides the in-memory representation of a delimited sample sheet.
package table

import "fmt"

// Table holds a fully materialized delimited file.
// Every record has exactly len(Header) cells.
type Table struct {
	Header  []string
	Records [][]string
	// CRLF is set when the source used \r\n line endings.
	CRLF bool
}

// New creates a table with the given header and no records.
func New(header []string) *Table {
	return &Table{Header: header}
}

// ValidateHeader checks that column names are unique.
func ValidateHeader(header []string) error {
	seen := make(map[string]struct{}, len(header))
	for _, h := range header {
		if _, ok := seen[h]; ok {
			return &DuplicateColumnError{Column: h}
		}
		seen[h] = struct{}{}
	}
	return nil
}

// ColumnIndex returns the position of name in the header, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// RequireColumns resolves the positions of the named columns.
// All missing names are reported together in a single MissingColumnError.
func (t *Table) RequireColumns(names ...string) ([]int, error) {
	idx := make([]int, len(names))
	var missing []string
	for i, name := range names {
		idx[i] = t.ColumnIndex(name)
		if idx[i] < 0 {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnError{Columns: missing}
	}
	return idx, nil
}

// Append adds a record, checking its width against the header.
// line is the 1-based source line used in the error, 0 if unknown.
func (t *Table) Append(record []string, line int) error {
	if len(record) != len(t.Header) {
		return &MalformedRowError{Line: line, Got: len(record), Want: len(t.Header)}
	}
	t.Records = append(t.Records, record)
	return nil
}

// SetColumn writes values into the column called name.
// An existing column is overwritten in place, otherwise the column is appended.
// It reports whether the column was appended.
func (t *Table) SetColumn(name string, values []string) (bool, error) {
	if len(values) != len(t.Records) {
		return false, fmt.Errorf("column %q: got %d values for %d records", name, len(values), len(t.Records))
	}

	if i := t.ColumnIndex(name); i >= 0 {
		for r, v := range values {
			t.Records[r][i] = v
		}
		return false, nil
	}

	t.Header = append(t.Header, name)
	for r, v := range values {
		t.Records[r] = append(t.Records[r], v)
	}
	return true, nil
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.Records)
}
