package repositories

import "context"

// SheetSource reads raw cell values from a spreadsheet.
type SheetSource interface {
	// ReadRange returns the rows of an A1-notation range, e.g. "Lancamentos!A2:P".
	// Trailing empty cells may be omitted from a row.
	ReadRange(ctx context.Context, a1Range string) ([][]string, error)
}
