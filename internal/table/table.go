// Package table provides the in-memory column-oriented table model for tabstat.
package table

import (
	"fmt"
	"math"
	"time"
)

// Kind is the inferred type of a column.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindTime
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindTime:
		return "time"
	default:
		return "string"
	}
}

// Numeric reports whether columns of this kind participate in
// descriptive statistics.
func (k Kind) Numeric() bool {
	return k == KindInt || k == KindFloat
}

// Column holds a single column of cells. Cells are stored as the original
// text plus a parsed representation matching the inferred Kind. Null cells
// carry no parsed value.
type Column struct {
	Name string
	Kind Kind

	raw    []string
	nulls  []bool
	floats []float64 // KindInt and KindFloat
	bools  []bool    // KindBool
	times  []time.Time
}

// Len returns the number of cells in the column.
func (c *Column) Len() int {
	return len(c.raw)
}

// IsNull reports whether the cell at index i is null.
func (c *Column) IsNull(i int) bool {
	return c.nulls[i]
}

// NullCount returns the number of null cells.
func (c *Column) NullCount() int {
	n := 0
	for _, isNull := range c.nulls {
		if isNull {
			n++
		}
	}
	return n
}

// String returns the original cell text at index i, or "" for nulls.
func (c *Column) String(i int) string {
	if c.nulls[i] {
		return ""
	}
	return c.raw[i]
}

// Float returns the numeric value at index i. It returns NaN for null
// cells and for non-numeric columns.
func (c *Column) Float(i int) float64 {
	if !c.Kind.Numeric() || c.nulls[i] {
		return math.NaN()
	}
	return c.floats[i]
}

// Floats returns all non-null numeric values in row order. The slice is
// freshly allocated; callers may sort or mutate it.
func (c *Column) Floats() []float64 {
	if !c.Kind.Numeric() {
		return nil
	}
	values := make([]float64, 0, len(c.floats))
	for i, v := range c.floats {
		if !c.nulls[i] {
			values = append(values, v)
		}
	}
	return values
}

// Bool returns the boolean value at index i for KindBool columns.
func (c *Column) Bool(i int) (value, ok bool) {
	if c.Kind != KindBool || c.nulls[i] {
		return false, false
	}
	return c.bools[i], true
}

// Time returns the temporal value at index i for KindTime columns.
func (c *Column) Time(i int) (time.Time, bool) {
	if c.Kind != KindTime || c.nulls[i] {
		return time.Time{}, false
	}
	return c.times[i], true
}

// Table is an ordered collection of columns of equal length.
type Table struct {
	columns []*Column
	numRows int
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	return t.numRows
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int {
	return len(t.columns)
}

// Columns returns the columns in source order.
func (t *Table) Columns() []*Column {
	return t.columns
}

// Column returns the column with the given name.
func (t *Table) Column(name string) (*Column, bool) {
	for _, c := range t.columns {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// NumericColumns returns the numeric columns in source order.
func (t *Table) NumericColumns() []*Column {
	var numeric []*Column
	for _, c := range t.columns {
		if c.Kind.Numeric() {
			numeric = append(numeric, c)
		}
	}
	return numeric
}

// Select returns a new Table containing only the named columns, in the
// requested order. Column data is shared, not copied.
func (t *Table) Select(names []string) (*Table, error) {
	selected := make([]*Column, 0, len(names))
	for _, name := range names {
		c, ok := t.Column(name)
		if !ok {
			return nil, fmt.Errorf("column %q not found", name)
		}
		selected = append(selected, c)
	}
	return &Table{columns: selected, numRows: t.numRows}, nil
}

// Header returns the column names in source order.
func (t *Table) Header() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name
	}
	return names
}

// Row returns the cell texts of row i in column order. Null cells are
// returned as "".
func (t *Table) Row(i int) []string {
	cells := make([]string, len(t.columns))
	for j, c := range t.columns {
		cells[j] = c.String(i)
	}
	return cells
}
