package services

import "context"

// NameHeader is the label written to A1 by stores that seed their own header row.
const NameHeader = "name"

// Store is the tabular datastore behind the attendance sheet. Coordinates are
// 1-based: row 1 holds the date headers and column 1 (A) holds the names.
type Store interface {
	// Headers returns row 1 across every populated column.
	Headers(ctx context.Context) ([]string, error)
	// NameColumn returns column A from row 1 downwards.
	NameColumn(ctx context.Context) ([]string, error)
	// AppendName adds name to the first free row of column A.
	AppendName(ctx context.Context, name string) error
	// EnsureDateColumn returns the column holding date, inserting it after
	// the last header column when missing.
	EnsureDateColumn(ctx context.Context, date string) (int, error)
	ReadCell(ctx context.Context, row, col int) (string, error)
	WriteCell(ctx context.Context, row, col int, value string) error
}

// indexOf returns the 1-based position of value in values, or 0.
func indexOf(values []string, value string) int {
	for i, v := range values {
		if v == value {
			return i + 1
		}
	}
	return 0
}

// nameRow returns the sheet row holding name, skipping the header row.
func nameRow(names []string, name string) int {
	if len(names) < 2 {
		return 0
	}
	if idx := indexOf(names[1:], name); idx > 0 {
		return idx + 1
	}
	return 0
}
