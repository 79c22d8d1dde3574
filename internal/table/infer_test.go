package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferKind(t *testing.T) {
	opts := DefaultOptions()

	tests := []struct {
		name  string
		cells []string
		want  Kind
	}{
		{
			name:  "integers",
			cells: []string{"1", "2", "-3"},
			want:  KindInt,
		},
		{
			name:  "floats",
			cells: []string{"1.5", "2", "3.25"},
			want:  KindFloat,
		},
		{
			name:  "scientific notation is float",
			cells: []string{"1e3", "2.5e-2"},
			want:  KindFloat,
		},
		{
			name:  "booleans any case",
			cells: []string{"true", "False", "TRUE"},
			want:  KindBool,
		},
		{
			name:  "dates",
			cells: []string{"2024-01-01", "2024-06-30"},
			want:  KindTime,
		},
		{
			name:  "mixed numeric and text",
			cells: []string{"1", "two", "3"},
			want:  KindString,
		},
		{
			name:  "text",
			cells: []string{"alice", "bob"},
			want:  KindString,
		},
		{
			name:  "all null cells",
			cells: []string{"", "NA"},
			want:  KindString,
		},
		{
			name:  "integers with nulls stay int",
			cells: []string{"1", "", "3"},
			want:  KindInt,
		},
		{
			name:  "single letters are not booleans",
			cells: []string{"t", "f"},
			want:  KindString,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nulls := make([]bool, len(tt.cells))
			for i, cell := range tt.cells {
				nulls[i] = opts.isNull(cell)
			}
			got := inferKind(tt.cells, nulls, &opts)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildColumn_NumericParsing(t *testing.T) {
	opts := DefaultOptions()
	col := buildColumn("score", []string{"1.5", "NA", "3"}, &opts)

	assert.Equal(t, KindFloat, col.Kind)
	assert.Equal(t, 3, col.Len())
	assert.Equal(t, 1, col.NullCount())
	assert.Equal(t, 1.5, col.Float(0))
	assert.True(t, col.IsNull(1))
	assert.Equal(t, []float64{1.5, 3}, col.Floats())
}

func TestBuildColumn_TrimSpace(t *testing.T) {
	opts := DefaultOptions()
	col := buildColumn("n", []string{" 1 ", "2", "  "}, &opts)

	assert.Equal(t, KindInt, col.Kind)
	assert.Equal(t, float64(1), col.Float(0))
	assert.True(t, col.IsNull(2), "whitespace-only cell should be null after trimming")
}

func TestBuildColumn_Booleans(t *testing.T) {
	opts := DefaultOptions()
	col := buildColumn("active", []string{"true", "FALSE", ""}, &opts)

	assert.Equal(t, KindBool, col.Kind)
	v, ok := col.Bool(0)
	assert.True(t, ok)
	assert.True(t, v)
	v, ok = col.Bool(1)
	assert.True(t, ok)
	assert.False(t, v)
	_, ok = col.Bool(2)
	assert.False(t, ok, "null cell has no boolean value")
}

func TestBuildColumn_Times(t *testing.T) {
	opts := DefaultOptions()
	col := buildColumn("day", []string{"2024-01-02", "2024-03-04"}, &opts)

	assert.Equal(t, KindTime, col.Kind)
	ts, ok := col.Time(0)
	assert.True(t, ok)
	assert.Equal(t, 2024, ts.Year())
	assert.Equal(t, 2, ts.Day())
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindInt, "int"},
		{KindFloat, "float"},
		{KindBool, "bool"},
		{KindTime, "time"},
		{KindString, "string"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

func TestKindNumeric(t *testing.T) {
	assert.True(t, KindInt.Numeric())
	assert.True(t, KindFloat.Numeric())
	assert.False(t, KindBool.Numeric())
	assert.False(t, KindTime.Numeric())
	assert.False(t, KindString.Numeric())
}
