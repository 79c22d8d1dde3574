package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tabstat/tabstat/internal/table"
)

// FetchTable runs query against db and materializes the result set as a
// typed Table. Every value is scanned as text and re-typed through the
// same inference used for delimited files, so a database result and a
// CSV of the same data summarize identically. SQL NULLs become null
// cells.
func FetchTable(ctx context.Context, db *sql.DB, query string, opts table.Options) (*table.Table, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to run query: %w", err)
	}
	defer rows.Close()

	header, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read result columns: %w", err)
	}

	var records [][]string
	cells := make([]sql.NullString, len(header))
	dest := make([]interface{}, len(header))
	for i := range cells {
		dest[i] = &cells[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		record := make([]string, len(header))
		for i, cell := range cells {
			if cell.Valid {
				record[i] = cell.String
			}
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read result rows: %w", err)
	}

	return table.FromRecords(header, records, opts)
}
