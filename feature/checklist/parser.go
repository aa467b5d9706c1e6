package checklist

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// ErrParse indicates the input file could not be decoded as tabular or
// plain-text rows. The operation aborts with no state change.
var ErrParse = errors.New("unreadable input file")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseRows reads a CSV or newline-delimited document and returns the first
// column of every row, raw. Newline-delimited text is a degenerate CSV with a
// single column, so one reader covers both input formats. A header row is
// returned like any other row; canonicalization drops it only if empty.
func ParseRows(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) || bytes.ContainsRune(data, 0) {
		return nil, fmt.Errorf("%w: not a text or CSV document", ErrParse)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // rows may have ragged widths
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var rows []string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		if len(record) == 0 {
			continue
		}
		rows = append(rows, record[0])
	}
	return rows, nil
}
