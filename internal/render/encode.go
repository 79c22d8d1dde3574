package render

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"math"
	"strconv"

	"github.com/tabstat/tabstat/internal/stats"
)

// SummaryCSV writes the summary as delimited text: a header row naming
// the summarized columns, then one row per statistic.
func SummaryCSV(w io.Writer, s *stats.Summary, opts Options) error {
	cw := csv.NewWriter(w)

	cols := s.Columns()
	header := make([]string, 0, len(cols)+1)
	header = append(header, "statistic")
	for _, cs := range cols {
		header = append(header, cs.Name)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, label := range s.Labels() {
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
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// TextSummaryCSV writes the non-numeric column statistics as delimited
// text, one row per column.
func TextSummaryCSV(w io.Writer, summaries []stats.TextColumnSummary, opts Options) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"column", "count", "unique", "top", "freq"}); err != nil {
		return err
	}
	for _, cs := range summaries {
		row := []string{
			cs.Name,
			strconv.FormatInt(cs.Count, 10),
			strconv.FormatInt(cs.Unique, 10),
			cs.Top,
			strconv.FormatInt(cs.Freq, 10),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// summaryJSONColumn is the JSON shape of one summarized column.
// NaN statistics encode as null.
type summaryJSONColumn struct {
	Column      string              `json:"column"`
	Count       int64               `json:"count"`
	Mean        *float64            `json:"mean"`
	Std         *float64            `json:"std"`
	Min         *float64            `json:"min"`
	Percentiles map[string]*float64 `json:"percentiles"`
	Max         *float64            `json:"max"`
}

// textJSONColumn is the JSON shape of one text-column summary.
type textJSONColumn struct {
	Column string `json:"column"`
	Count  int64  `json:"count"`
	Unique int64  `json:"unique"`
	Top    string `json:"top"`
	Freq   int64  `json:"freq"`
}

// SummaryJSON writes the summary as a JSON array of column objects in
// source column order.
func SummaryJSON(w io.Writer, s *stats.Summary, opts Options) error {
	return encodeJSON(w, summaryJSONColumns(s))
}

// SummaryJSONWithText writes numeric and text summaries as one JSON
// document with "numeric" and "text" sections.
func SummaryJSONWithText(w io.Writer, s *stats.Summary, text []stats.TextColumnSummary, opts Options) error {
	doc := struct {
		Numeric []summaryJSONColumn `json:"numeric"`
		Text    []textJSONColumn    `json:"text"`
	}{
		Numeric: summaryJSONColumns(s),
		Text:    make([]textJSONColumn, 0, len(text)),
	}
	for _, cs := range text {
		doc.Text = append(doc.Text, textJSONColumn{
			Column: cs.Name,
			Count:  cs.Count,
			Unique: cs.Unique,
			Top:    cs.Top,
			Freq:   cs.Freq,
		})
	}
	return encodeJSON(w, doc)
}

func summaryJSONColumns(s *stats.Summary) []summaryJSONColumn {
	labels := s.Labels()
	pctLabels := labels[4 : len(labels)-1]

	cols := make([]summaryJSONColumn, 0, s.Len())
	for _, cs := range s.Columns() {
		jc := summaryJSONColumn{
			Column:      cs.Name,
			Count:       cs.Count,
			Mean:        jsonFloat(cs.Mean),
			Std:         jsonFloat(cs.Std),
			Min:         jsonFloat(cs.Min),
			Percentiles: make(map[string]*float64, len(pctLabels)),
			Max:         jsonFloat(cs.Max),
		}
		for i, label := range pctLabels {
			jc.Percentiles[label] = jsonFloat(cs.Percentiles[i])
		}
		cols = append(cols, jc)
	}
	return cols
}

// jsonFloat maps NaN to nil since JSON has no NaN literal.
func jsonFloat(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
