package jsontable

import (
	"context"
	"fmt"
)

// Cell is passed to a CellRenderer with the effective value
// of a record field after blank handling and default fallback.
type Cell struct {
	// Record is the document record of the row.
	Record any
	// Row is the index of the record in the document.
	Row int
	// Col is the index of the column in the Columns.
	Col int
	// Column is the column that is rendered.
	Column *Column
	// Value is the effective value of the cell:
	// the DefaultContent of the column if the resolved value is blank
	// and a default is configured, else the resolved value which
	// is nil if the field was not found.
	Value any
	// Blank tells if the resolved value was blank
	// before any DefaultContent was applied.
	Blank bool
}

// CellRenderer is an interface for rendering cell values as display text.
type CellRenderer interface {
	// RenderCell renders a cell as display string
	// or returns a wrapped errors.ErrUnsupported error if
	// it doesn't support rendering the value of the cell,
	// in which case DisplayText of the value is used.
	// The raw result indicates if the returned string
	// is markup that can be used as is by an output format
	// or if it has to be escaped.
	RenderCell(ctx context.Context, cell *Cell) (str string, raw bool, err error)
}

// CellRendererFunc implements CellRenderer for a function.
type CellRendererFunc func(ctx context.Context, cell *Cell) (str string, raw bool, err error)

func (f CellRendererFunc) RenderCell(ctx context.Context, cell *Cell) (str string, raw bool, err error) {
	return f(ctx, cell)
}

// PrintfCellRenderer implements CellRenderer by calling
// fmt.Sprintf with this type's string value as format.
// Blank values are rendered as Placeholder.
type PrintfCellRenderer string

func (format PrintfCellRenderer) RenderCell(ctx context.Context, cell *Cell) (str string, raw bool, err error) {
	if IsBlankValue(cell.Value) {
		return Placeholder, false, nil
	}
	return fmt.Sprintf(string(format), DisplayText(cell.Value)), false, nil
}

// TextCellRenderer renders the DisplayText of the cell value.
type TextCellRenderer struct{}

func (TextCellRenderer) RenderCell(ctx context.Context, cell *Cell) (str string, raw bool, err error) {
	return DisplayText(cell.Value), false, nil
}
