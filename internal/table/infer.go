package table

import (
	"strconv"
	"strings"
	"time"
)

// Options controls how raw records are turned into typed columns.
type Options struct {
	// NullValues are cell texts treated as null after trimming.
	// The empty string is always null.
	NullValues []string
	// DateFormats are layouts tried in order for temporal inference.
	DateFormats []string
	// TrimSpace strips surrounding whitespace from each cell before
	// inference.
	TrimSpace bool
}

// DefaultOptions returns the options used when no configuration is given.
func DefaultOptions() Options {
	return Options{
		NullValues:  []string{"NA", "N/A", "NaN", "null", "NULL"},
		DateFormats: []string{"2006-01-02", "2006-01-02 15:04:05", time.RFC3339},
		TrimSpace:   true,
	}
}

// isNull reports whether a cell text denotes a missing value.
func (o *Options) isNull(cell string) bool {
	if cell == "" {
		return true
	}
	for _, nv := range o.NullValues {
		if cell == nv {
			return true
		}
	}
	return false
}

// inferKind returns the narrowest Kind accepting every non-null cell.
// Precedence: int, float, bool, time, string. A column with no non-null
// cells is a string column.
func inferKind(cells []string, nulls []bool, opts *Options) Kind {
	isInt, isFloat, isBool, isTime := true, true, true, true
	seen := false

	for i, cell := range cells {
		if nulls[i] {
			continue
		}
		seen = true
		if isInt {
			if _, err := strconv.ParseInt(cell, 10, 64); err != nil {
				isInt = false
			}
		}
		if isFloat {
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				isFloat = false
			}
		}
		if isBool {
			if _, ok := parseBool(cell); !ok {
				isBool = false
			}
		}
		if isTime {
			if _, ok := parseTime(cell, opts.DateFormats); !ok {
				isTime = false
			}
		}
		if !isInt && !isFloat && !isBool && !isTime {
			return KindString
		}
	}

	if !seen {
		return KindString
	}
	switch {
	case isInt:
		return KindInt
	case isFloat:
		return KindFloat
	case isBool:
		return KindBool
	case isTime:
		return KindTime
	default:
		return KindString
	}
}

// parseBool accepts true/false in any case. Single-letter and numeric
// forms are rejected so that flag-like text columns stay textual.
func parseBool(cell string) (bool, bool) {
	switch strings.ToLower(cell) {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}

func parseTime(cell string, layouts []string) (time.Time, bool) {
	for _, layout := range layouts {
		if ts, err := time.Parse(layout, cell); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// buildColumn types a column of raw cells according to its inferred kind.
func buildColumn(name string, cells []string, opts *Options) *Column {
	nulls := make([]bool, len(cells))
	for i, cell := range cells {
		if opts.TrimSpace {
			cells[i] = strings.TrimSpace(cell)
		}
		nulls[i] = opts.isNull(cells[i])
	}

	col := &Column{
		Name:  name,
		Kind:  inferKind(cells, nulls, opts),
		raw:   cells,
		nulls: nulls,
	}

	switch col.Kind {
	case KindInt, KindFloat:
		col.floats = make([]float64, len(cells))
		for i, cell := range cells {
			if !nulls[i] {
				col.floats[i], _ = strconv.ParseFloat(cell, 64)
			}
		}
	case KindBool:
		col.bools = make([]bool, len(cells))
		for i, cell := range cells {
			if !nulls[i] {
				col.bools[i], _ = parseBool(cell)
			}
		}
	case KindTime:
		col.times = make([]time.Time, len(cells))
		for i, cell := range cells {
			if !nulls[i] {
				col.times[i], _ = parseTime(cell, opts.DateFormats)
			}
		}
	}

	return col
}
