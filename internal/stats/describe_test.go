package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabstat/tabstat/internal/table"
)

func buildTable(t *testing.T, header []string, records [][]string) *table.Table {
	t.Helper()
	tbl, err := table.FromRecords(header, records, table.DefaultOptions())
	require.NoError(t, err)
	return tbl
}

func TestDescribe_RowAndColumnShape(t *testing.T) {
	tbl := buildTable(t,
		[]string{"a", "name", "b"},
		[][]string{
			{"1", "x", "10.5"},
			{"2", "y", "20.5"},
			{"3", "z", "30.5"},
		},
	)

	s := Describe(tbl, Options{})

	assert.Equal(t, []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"}, s.Labels())
	assert.Equal(t, 2, s.Len(), "only numeric columns are summarized")

	cols := s.Columns()
	assert.Equal(t, "a", cols[0].Name)
	assert.Equal(t, "b", cols[1].Name)

	for _, cs := range cols {
		assert.Len(t, s.Values(cs), 8, "8 statistic rows per column")
	}
}

func TestDescribe_KnownValues(t *testing.T) {
	tbl := buildTable(t,
		[]string{"v"},
		[][]string{{"1"}, {"2"}, {"3"}, {"4"}, {"5"}},
	)

	s := Describe(tbl, Options{})
	cs, ok := s.Column("v")
	require.True(t, ok)

	assert.Equal(t, int64(5), cs.Count)
	assert.Equal(t, 3.0, cs.Mean)
	assert.InDelta(t, 1.5811388300841898, cs.Std, 1e-12)
	assert.Equal(t, 1.0, cs.Min)
	assert.Equal(t, 5.0, cs.Max)
	require.Len(t, cs.Percentiles, 3)
	assert.Equal(t, 2.0, cs.Percentiles[0])
	assert.Equal(t, 3.0, cs.Percentiles[1])
	assert.Equal(t, 4.0, cs.Percentiles[2])
}

func TestDescribe_NullsExcludedFromCount(t *testing.T) {
	tbl := buildTable(t,
		[]string{"v"},
		[][]string{{"1"}, {"NA"}, {"3"}, {""}},
	)

	s := Describe(tbl, Options{})
	cs, ok := s.Column("v")
	require.True(t, ok)

	assert.Equal(t, int64(2), cs.Count)
	assert.Equal(t, 2.0, cs.Mean)
}

func TestDescribe_NoNumericColumns(t *testing.T) {
	tbl := buildTable(t,
		[]string{"name", "city"},
		[][]string{{"alice", "ankara"}, {"bob", "izmir"}},
	)

	s := Describe(tbl, Options{})
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Columns())
}

func TestDescribe_SingleValueStdIsNaN(t *testing.T) {
	tbl := buildTable(t, []string{"v"}, [][]string{{"7"}})

	s := Describe(tbl, Options{})
	cs, ok := s.Column("v")
	require.True(t, ok)

	assert.Equal(t, int64(1), cs.Count)
	assert.True(t, math.IsNaN(cs.Std))
	assert.Equal(t, 7.0, cs.Min)
	assert.Equal(t, 7.0, cs.Max)
}

func TestDescribe_CustomPercentiles(t *testing.T) {
	tbl := buildTable(t,
		[]string{"v"},
		[][]string{{"1"}, {"2"}, {"3"}, {"4"}, {"5"}},
	)

	s := Describe(tbl, Options{Percentiles: []float64{0.1, 0.9}})
	assert.Equal(t, []string{"count", "mean", "std", "min", "10%", "90%", "max"}, s.Labels())

	cs, ok := s.Column("v")
	require.True(t, ok)
	require.Len(t, cs.Percentiles, 2)
	assert.InDelta(t, 1.4, cs.Percentiles[0], 1e-12)
	assert.InDelta(t, 4.6, cs.Percentiles[1], 1e-12)
}

func TestDescribe_Idempotent(t *testing.T) {
	tbl := buildTable(t,
		[]string{"a", "b"},
		[][]string{{"1", "4.5"}, {"2", "5.5"}, {"3", "6.5"}},
	)

	first := Describe(tbl, Options{})
	second := Describe(tbl, Options{})

	assert.Equal(t, first.Labels(), second.Labels())
	assert.Equal(t, first.Columns(), second.Columns())
}

func TestPercentileLabel(t *testing.T) {
	tests := []struct {
		p    float64
		want string
	}{
		{0.25, "25%"},
		{0.5, "50%"},
		{0.75, "75%"},
		{0.125, "12.5%"},
		{0.99, "99%"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PercentileLabel(tt.p))
	}
}

func TestDescribeText(t *testing.T) {
	tbl := buildTable(t,
		[]string{"id", "city"},
		[][]string{
			{"1", "ankara"},
			{"2", "izmir"},
			{"3", "ankara"},
			{"4", ""},
		},
	)

	summaries := DescribeText(tbl)
	require.Len(t, summaries, 1, "numeric columns are skipped")

	cs := summaries[0]
	assert.Equal(t, "city", cs.Name)
	assert.Equal(t, int64(3), cs.Count)
	assert.Equal(t, int64(2), cs.Unique)
	assert.Equal(t, "ankara", cs.Top)
	assert.Equal(t, int64(2), cs.Freq)
}

func TestDescribeText_TieResolvesToFirstSeen(t *testing.T) {
	tbl := buildTable(t,
		[]string{"c"},
		[][]string{{"b"}, {"a"}, {"a"}, {"b"}},
	)

	summaries := DescribeText(tbl)
	require.Len(t, summaries, 1)
	assert.Equal(t, "b", summaries[0].Top)
}
