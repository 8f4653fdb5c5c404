package importer

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/seqtools/add-column/internal/table"
)

const (
	// peekSize bounds how far ahead line ending detection looks.
	peekSize = 64 * 1024
	utf8BOM  = "\ufeff"
)

// Read parses a delimited file with a header row into a Table.
// Cells are kept verbatim; a row whose width differs from the header fails the whole read.
func Read(filePath string, delimiter rune) (*table.Table, error) {
	file, err := OpenFile(filePath)
	if err != nil {
		return nil, &table.InputError{Path: filePath, Err: err}
	}
	defer file.Close()

	t, err := Parse(file, delimiter)
	if err != nil {
		var inputErr *table.InputError
		if errors.As(err, &inputErr) && inputErr.Path == "" {
			inputErr.Path = filePath
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return t, nil
}

// Parse reads delimited text with a header row from r.
func Parse(r io.Reader, delimiter rune) (*table.Table, error) {
	br := bufio.NewReaderSize(r, peekSize)
	// The csv reader rewrites \r\n in the buffered bytes, so sniff first.
	head, _ := br.Peek(peekSize)
	crlf := usesCRLF(head)

	reader := csv.NewReader(br)
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &table.InputError{Err: table.ErrNoHeader}
	}
	if err != nil {
		return nil, &table.InputError{Err: fmt.Errorf("failed to read header: %w", err)}
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}
	if err := table.ValidateHeader(header); err != nil {
		return nil, err
	}

	t := table.New(header)
	t.CRLF = crlf

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &table.InputError{Err: fmt.Errorf("failed to read row: %w", err)}
		}

		line, _ := reader.FieldPos(0)
		if err := t.Append(record, line); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// usesCRLF reports whether the first line in buf ends with \r\n.
func usesCRLF(buf []byte) bool {
	i := bytes.IndexByte(buf, '\n')
	return i > 0 && buf[i-1] == '\r'
}
