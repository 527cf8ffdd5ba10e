package jsontable

import (
	"fmt"
	"strings"
)

var _ View = new(FilteredView)

// FilteredView is a window of rows and a selection
// of columns of a Source view.
type FilteredView struct {
	Source View
	// Offset index of the first row from Source, negative values are treated as zero.
	RowOffset int
	// Limits the number of rows, only used if > 0.
	RowLimit int
	// If not nil then the view has as many
	// columns as ColumnMapping has elements and
	// every element is a column index into the Source view.
	// If nil then the view has as many columns as the Source view.
	ColumnMapping []int
}

// SelectColumns returns a FilteredView of source with the columns
// matching titles in the order of titles.
// Titles are compared trimmed and case insensitive.
func SelectColumns(source View, titles ...string) (*FilteredView, error) {
	sourceCols := source.Columns()
	mapping := make([]int, len(titles))
	for i, title := range titles {
		mapping[i] = -1
		for iSource, sourceCol := range sourceCols {
			if strings.EqualFold(strings.TrimSpace(sourceCol), strings.TrimSpace(title)) {
				mapping[i] = iSource
				break
			}
		}
		if mapping[i] == -1 {
			return nil, fmt.Errorf("%w: no column titled %q", ErrInvalidColumn, title)
		}
	}
	return &FilteredView{Source: source, ColumnMapping: mapping}, nil
}

func (view *FilteredView) Title() string {
	return view.Source.Title()
}

func (view *FilteredView) Columns() []string {
	sourceCols := view.Source.Columns()
	if view.ColumnMapping == nil {
		return sourceCols
	}
	mappedCols := make([]string, len(view.ColumnMapping))
	for i, iSource := range view.ColumnMapping {
		mappedCols[i] = sourceCols[iSource]
	}
	return mappedCols
}

func (view *FilteredView) numCols() int {
	if view.ColumnMapping != nil {
		return len(view.ColumnMapping)
	}
	return len(view.Source.Columns())
}

func (view *FilteredView) NumRows() int {
	n := view.Source.NumRows() - max(view.RowOffset, 0)
	if n < 0 {
		return 0
	}
	if view.RowLimit > 0 && n > view.RowLimit {
		return view.RowLimit
	}
	return n
}

func (view *FilteredView) Cell(row, col int) DisplayValue {
	if row < 0 || col < 0 || row >= view.NumRows() || col >= view.numCols() {
		return DisplayValue{}
	}
	row += max(view.RowOffset, 0)
	if view.ColumnMapping != nil {
		col = view.ColumnMapping[col]
	}
	return view.Source.Cell(row, col)
}
