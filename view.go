package jsontable

import (
	"context"
	"strings"
)

// View is a read only table of display values
// that output writers consume.
type View interface {
	// Title of the table, may be empty.
	Title() string
	// Columns returns the column titles.
	Columns() []string
	// NumRows returns the number of rows without a header row.
	NumRows() int
	// Cell returns the display value at row and col
	// or the zero DisplayValue for out of bounds indices.
	Cell(row, col int) DisplayValue
}

var (
	_ View = new(RowsView)
	_ View = new(HeaderView)
)

// RowsView is a View of projected rows.
//
// A row within Rows can have fewer values than Cols,
// in which case an empty DisplayValue is returned for missing cells.
type RowsView struct {
	Tit  string
	Cols []string
	Rows []Row
}

// NewRowsView returns a RowsView of rows using the titles of columns.
func NewRowsView(title string, columns Columns, rows []Row) *RowsView {
	return &RowsView{Tit: title, Cols: columns.Titles(), Rows: rows}
}

// ProjectView calls Project and returns the rows as RowsView.
func ProjectView(ctx context.Context, title string, document any, shape Shape, columns Columns) (*RowsView, error) {
	rows, err := Project(ctx, document, shape, columns)
	if err != nil {
		return nil, err
	}
	return NewRowsView(title, columns, rows), nil
}

func (view *RowsView) Title() string     { return view.Tit }
func (view *RowsView) Columns() []string { return view.Cols }
func (view *RowsView) NumRows() int      { return len(view.Rows) }

func (view *RowsView) Cell(row, col int) DisplayValue {
	if row < 0 || col < 0 || row >= len(view.Rows) || col >= len(view.Cols) {
		return DisplayValue{}
	}
	if col >= len(view.Rows[row]) {
		return DisplayValue{}
	}
	return view.Rows[row][col]
}

// NewHeaderViewFrom returns a HeaderView
// with the title and columns of source.
func NewHeaderViewFrom(source View) *HeaderView {
	return &HeaderView{Tit: source.Title(), Cols: source.Columns()}
}

// HeaderView is a View with a single row
// holding the trimmed column titles as values.
type HeaderView struct {
	Tit  string
	Cols []string
}

func (view *HeaderView) Title() string     { return view.Tit }
func (view *HeaderView) Columns() []string { return view.Cols }
func (view *HeaderView) NumRows() int      { return 1 }

func (view *HeaderView) Cell(row, col int) DisplayValue {
	if row != 0 || col < 0 || col >= len(view.Cols) {
		return DisplayValue{}
	}
	return DisplayValue{Text: strings.TrimSpace(view.Cols[col])}
}

// ViewStrings returns the display texts of all view rows,
// optionally preceded by the column titles.
func ViewStrings(view View, addHeaderRow bool) [][]string {
	numCols := len(view.Columns())
	rows := make([][]string, 0, view.NumRows()+1)
	if addHeaderRow {
		rows = append(rows, viewRowStrings(NewHeaderViewFrom(view), 0, numCols))
	}
	for row := 0; row < view.NumRows(); row++ {
		rows = append(rows, viewRowStrings(view, row, numCols))
	}
	return rows
}

func viewRowStrings(view View, row, numCols int) []string {
	strs := make([]string, numCols)
	for col := range strs {
		strs[col] = view.Cell(row, col).Text
	}
	return strs
}
