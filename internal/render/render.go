// Package render formats tables and summaries for terminal, CSV, and
// JSON output.
package render

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"github.com/tabstat/tabstat/internal/stats"
	"github.com/tabstat/tabstat/internal/table"
)

// Options controls output formatting.
type Options struct {
	// Precision is the number of decimal digits for statistic values.
	Precision int
	// Color enables ANSI coloring of headers and labels.
	Color bool
	// MaxCellWidth truncates wider cells. Zero disables truncation.
	MaxCellWidth int
}

// DefaultOptions returns the formatting defaults: 6 decimal digits,
// no color, no truncation.
func DefaultOptions() Options {
	return Options{Precision: 6}
}

// FormatFloat renders a statistic value with the configured precision.
// NaN renders as "NaN".
func (o Options) FormatFloat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', o.Precision, 64)
}

// Summary writes the descriptive-statistics table: one row per statistic,
// one column per summarized source column. An empty summary writes a
// single notice line.
func Summary(w io.Writer, s *stats.Summary, opts Options) error {
	cols := s.Columns()
	if len(cols) == 0 {
		_, err := fmt.Fprintln(w, "no numeric columns")
		return err
	}

	headers := make([]string, 0, len(cols)+1)
	headers = append(headers, "")
	for _, cs := range cols {
		headers = append(headers, cs.Name)
	}

	labels := s.Labels()
	rows := make([][]string, len(labels))
	for i, label := range labels {
		row := make([]string, 0, len(cols)+1)
		row = append(row, label)
		for _, cs := range cols {
			v := s.Values(cs)[i]
			if label == "count" {
				row = append(row, strconv.FormatInt(int64(v), 10))
			} else {
				row = append(row, opts.FormatFloat(v))
			}
		}
		rows[i] = row
	}

	return grid(w, headers, rows, true, opts)
}

// TextSummary writes the non-numeric column statistics table.
func TextSummary(w io.Writer, summaries []stats.TextColumnSummary, opts Options) error {
	if len(summaries) == 0 {
		_, err := fmt.Fprintln(w, "no text columns")
		return err
	}

	headers := []string{"", "count", "unique", "top", "freq"}
	rows := make([][]string, len(summaries))
	for i, cs := range summaries {
		rows[i] = []string{
			cs.Name,
			strconv.FormatInt(cs.Count, 10),
			strconv.FormatInt(cs.Unique, 10),
			cs.Top,
			strconv.FormatInt(cs.Freq, 10),
		}
	}

	return grid(w, headers, rows, false, opts)
}

// Schema writes one row per column: name, inferred type, non-null and
// null counts.
func Schema(w io.Writer, t *table.Table, opts Options) error {
	headers := []string{"column", "type", "non-null", "nulls"}
	rows := make([][]string, t.NumCols())
	for i, col := range t.Columns() {
		nulls := col.NullCount()
		rows[i] = []string{
			col.Name,
			col.Kind.String(),
			strconv.Itoa(col.Len() - nulls),
			strconv.Itoa(nulls),
		}
	}

	if err := grid(w, headers, rows, false, opts); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%d rows x %d columns\n", t.NumRows(), t.NumCols())
	return err
}

// Head writes the first n data rows of t as a table.
func Head(w io.Writer, t *table.Table, n int, opts Options) error {
	if n > t.NumRows() {
		n = t.NumRows()
	}

	rows := make([][]string, n)
	for i := 0; i < n; i++ {
		rows[i] = t.Row(i)
	}

	return grid(w, t.Header(), rows, false, opts)
}

// grid writes a padded text table. The header row and the first column
// are colored when enabled. rightAlign right-aligns every column but the
// first, which suits numeric grids.
func grid(w io.Writer, headers []string, rows [][]string, rightAlign bool, opts Options) error {
	widths := make([]int, len(headers))
	for j, h := range headers {
		widths[j] = cellWidth(h, opts)
	}
	for _, row := range rows {
		for j, cell := range row {
			if cw := cellWidth(cell, opts); cw > widths[j] {
				widths[j] = cw
			}
		}
	}

	var sb strings.Builder
	for j, h := range headers {
		if j > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(colorize(pad(h, widths[j], rightAlign && j > 0, opts), opts, color.Bold))
	}
	if _, err := fmt.Fprintln(w, strings.TrimRight(sb.String(), " ")); err != nil {
		return err
	}

	for _, row := range rows {
		sb.Reset()
		for j, cell := range row {
			if j > 0 {
				sb.WriteString("  ")
			}
			padded := pad(cell, widths[j], rightAlign && j > 0, opts)
			if j == 0 {
				padded = colorize(padded, opts, color.FgCyan)
			}
			sb.WriteString(padded)
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(sb.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}

func cellWidth(cell string, opts Options) int {
	w := runewidth.StringWidth(cell)
	if opts.MaxCellWidth > 0 && w > opts.MaxCellWidth {
		return opts.MaxCellWidth
	}
	return w
}

func pad(cell string, width int, right bool, opts Options) string {
	if opts.MaxCellWidth > 0 && runewidth.StringWidth(cell) > opts.MaxCellWidth {
		cell = runewidth.Truncate(cell, opts.MaxCellWidth, "...")
	}
	if right {
		return runewidth.FillLeft(cell, width)
	}
	return runewidth.FillRight(cell, width)
}

func colorize(s string, opts Options, c color.Color) string {
	if !opts.Color {
		return s
	}
	return c.Render(s)
}
