package table

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoHeader is returned when the input contains no header line.
var ErrNoHeader = errors.New("no header row")

// InputError reports an input file that is missing, unreadable or empty.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("cannot read input %s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// MissingColumnError reports required columns absent from the header.
type MissingColumnError struct {
	Columns []string
}

func (e *MissingColumnError) Error() string {
	if len(e.Columns) == 1 {
		return fmt.Sprintf("missing required column %q", e.Columns[0])
	}
	quoted := make([]string, len(e.Columns))
	for i, c := range e.Columns {
		quoted[i] = fmt.Sprintf("%q", c)
	}
	return "missing required columns " + strings.Join(quoted, ", ")
}

// DuplicateColumnError reports a header naming the same column twice.
type DuplicateColumnError struct {
	Column string
}

func (e *DuplicateColumnError) Error() string {
	return fmt.Sprintf("duplicate column %q in header", e.Column)
}

// MalformedRowError reports a record whose width differs from the header.
type MalformedRowError struct {
	Line int
	Got  int
	Want int
}

func (e *MalformedRowError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: expected %d fields, got %d", e.Line, e.Want, e.Got)
	}
	return fmt.Sprintf("expected %d fields, got %d", e.Want, e.Got)
}

// WriteError reports an output file that could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("cannot write output %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
