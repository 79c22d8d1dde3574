package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// ParseError is returned when a file is not valid delimited text.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse %s: line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// CSVOptions controls delimited-text reading. Typing of the parsed cells
// is controlled by the embedded Options.
type CSVOptions struct {
	Options

	// Delimiter is the field separator. Zero means comma.
	Delimiter rune
	// Comment, when non-zero, makes lines starting with it skipped.
	Comment rune
}

// DefaultCSVOptions returns CSV reading defaults: comma-separated,
// no comment lines, default typing options.
func DefaultCSVOptions() CSVOptions {
	return CSVOptions{Options: DefaultOptions(), Delimiter: ','}
}

// LoadCSV reads a delimited text file with a header row into a Table.
//
// File-access failures wrap the underlying *os.PathError, so callers can
// test errors.Is(err, os.ErrNotExist) or os.ErrPermission. Malformed
// content yields a *ParseError.
func LoadCSV(path string, opts CSVOptions) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	t, err := ReadCSV(f, opts)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = path
		}
		return nil, err
	}
	return t, nil
}

// ReadCSV reads delimited text with a header row from r into a Table.
func ReadCSV(r io.Reader, opts CSVOptions) (*Table, error) {
	cr := csv.NewReader(r)
	if opts.Delimiter != 0 {
		cr.Comma = opts.Delimiter
	}
	cr.Comment = opts.Comment
	cr.ReuseRecord = false

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &ParseError{Err: errors.New("empty input, expected a header row")}
	}
	if err != nil {
		return nil, wrapCSVError(err)
	}

	var records [][]string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, wrapCSVError(err)
		}
		records = append(records, record)
	}

	return FromRecords(header, records, opts.Options)
}

// FromRecords builds a typed Table from a header and raw string records.
// Every record must have exactly len(header) fields.
func FromRecords(header []string, records [][]string, opts Options) (*Table, error) {
	for i, record := range records {
		if len(record) != len(header) {
			return nil, &ParseError{
				Line: i + 2, // header is line 1
				Err:  fmt.Errorf("record has %d fields, header has %d", len(record), len(header)),
			}
		}
	}

	columns := make([]*Column, len(header))
	for j, name := range header {
		cells := make([]string, len(records))
		for i, record := range records {
			cells[i] = record[j]
		}
		columns[j] = buildColumn(name, cells, &opts)
	}

	return &Table{columns: columns, numRows: len(records)}, nil
}

// wrapCSVError converts an encoding/csv error into a *ParseError,
// preserving the line number when available.
func wrapCSVError(err error) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &ParseError{Line: csvErr.Line, Err: csvErr.Err}
	}
	return &ParseError{Err: err}
}
