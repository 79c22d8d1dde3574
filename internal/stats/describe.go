package stats

import (
	"fmt"
	"math"
	"sort"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/tabstat/tabstat/internal/table"
)

// DefaultPercentiles are the quantile rows reported when no others are
// configured.
var DefaultPercentiles = []float64{0.25, 0.5, 0.75}

// Options controls which statistics Describe reports.
type Options struct {
	// Percentiles are reported between min and max, each in (0, 1).
	// Nil means DefaultPercentiles.
	Percentiles []float64
}

// ColumnSummary holds the descriptive statistics of one numeric column.
// Percentiles are parallel to the Summary's percentile set.
type ColumnSummary struct {
	Name        string
	Count       int64
	Mean        float64
	Std         float64
	Min         float64
	Max         float64
	Percentiles []float64
}

// Summary is the derived statistics table: one row per statistic, one
// column per numeric source column, in source order.
type Summary struct {
	percentiles []float64
	columns     *orderedmap.OrderedMap[string, ColumnSummary]
}

// Labels returns the statistic row labels in report order:
// count, mean, std, min, the percentile rows, max.
func (s *Summary) Labels() []string {
	labels := []string{"count", "mean", "std", "min"}
	for _, p := range s.percentiles {
		labels = append(labels, PercentileLabel(p))
	}
	return append(labels, "max")
}

// Columns returns the per-column summaries in source order.
func (s *Summary) Columns() []ColumnSummary {
	cols := make([]ColumnSummary, 0, s.columns.Len())
	for el := s.columns.Front(); el != nil; el = el.Next() {
		cols = append(cols, el.Value)
	}
	return cols
}

// Column returns the summary for the named column.
func (s *Summary) Column(name string) (ColumnSummary, bool) {
	return s.columns.Get(name)
}

// Len returns the number of summarized columns.
func (s *Summary) Len() int {
	return s.columns.Len()
}

// Values returns the statistic values of cs in Labels order.
func (s *Summary) Values(cs ColumnSummary) []float64 {
	values := []float64{float64(cs.Count), cs.Mean, cs.Std, cs.Min}
	values = append(values, cs.Percentiles...)
	return append(values, cs.Max)
}

// PercentileLabel formats a quantile as a row label, e.g. 0.25 -> "25%".
func PercentileLabel(p float64) string {
	pct := p * 100
	if pct == math.Trunc(pct) {
		return fmt.Sprintf("%d%%", int(pct))
	}
	return fmt.Sprintf("%g%%", pct)
}

// Describe computes descriptive statistics over the numeric columns of t.
// A table with no numeric columns yields an empty Summary, not an error.
func Describe(t *table.Table, opts Options) *Summary {
	percentiles := opts.Percentiles
	if percentiles == nil {
		percentiles = DefaultPercentiles
	}

	s := &Summary{
		percentiles: percentiles,
		columns:     orderedmap.NewOrderedMap[string, ColumnSummary](),
	}

	for _, col := range t.NumericColumns() {
		s.columns.Set(col.Name, summarizeColumn(col, percentiles))
	}
	return s
}

func summarizeColumn(col *table.Column, percentiles []float64) ColumnSummary {
	values := col.Floats()

	var acc Welford
	for _, v := range values {
		acc.Add(v)
	}

	cs := ColumnSummary{
		Name:        col.Name,
		Count:       acc.Count(),
		Mean:        acc.Mean(),
		Std:         acc.SampleStdDev(),
		Percentiles: make([]float64, len(percentiles)),
	}

	if len(values) == 0 {
		cs.Min = math.NaN()
		cs.Max = math.NaN()
		for i := range cs.Percentiles {
			cs.Percentiles[i] = math.NaN()
		}
		return cs
	}

	sort.Float64s(values)
	cs.Min = values[0]
	cs.Max = values[len(values)-1]
	for i, p := range percentiles {
		cs.Percentiles[i] = Quantile(values, p)
	}
	return cs
}

// TextColumnSummary holds the statistics reported for non-numeric
// columns: non-null count, distinct count, and the most frequent value
// with its frequency.
type TextColumnSummary struct {
	Name   string
	Count  int64
	Unique int64
	Top    string
	Freq   int64
}

// DescribeText summarizes the non-numeric columns of t in source order.
// Ties for the most frequent value resolve to the first seen in row order.
func DescribeText(t *table.Table) []TextColumnSummary {
	var summaries []TextColumnSummary

	for _, col := range t.Columns() {
		if col.Kind.Numeric() {
			continue
		}

		counts := make(map[string]int64)
		var order []string
		for i := 0; i < col.Len(); i++ {
			if col.IsNull(i) {
				continue
			}
			cell := col.String(i)
			if _, seen := counts[cell]; !seen {
				order = append(order, cell)
			}
			counts[cell]++
		}

		cs := TextColumnSummary{Name: col.Name, Unique: int64(len(counts))}
		for _, cell := range order {
			cs.Count += counts[cell]
			if counts[cell] > cs.Freq {
				cs.Top = cell
				cs.Freq = counts[cell]
			}
		}
		summaries = append(summaries, cs)
	}
	return summaries
}
