package jsontable

import (
	"context"
	"errors"
)

// DisplayValue is the final display text of a cell.
type DisplayValue struct {
	// Text is the display text or markup of the cell.
	Text string
	// Raw indicates that Text is markup in the raw format
	// of an output like HTML that must not be escaped.
	Raw bool
}

func (v DisplayValue) String() string { return v.Text }

// Row is a projected row with one DisplayValue per column.
type Row []DisplayValue

// Strings returns the display texts of the row.
func (r Row) Strings() []string {
	strs := make([]string, len(r))
	for i, v := range r {
		strs[i] = v.Text
	}
	return strs
}

// Project returns one Row per record of the document
// with one DisplayValue per column in the order of the columns.
//
// The records are found in the decoded document according to shape,
// a document not matching the shape returns an error
// wrapping ErrMalformedDocument and no rows.
//
// For every cell the field path of the column is resolved
// against the record. If the resolved value IsBlank and the column
// has a DefaultContent, then the default is the effective value,
// else the resolved value is used unchanged.
// The effective value is passed to the Render renderer of the column
// or displayed as DisplayText without renderer.
//
// Rows are returned in the order of the records.
// Project is a pure function of its arguments and does not
// modify the document.
func Project(ctx context.Context, document any, shape Shape, columns Columns) ([]Row, error) {
	records, err := shape.Records(document)
	if err != nil {
		return nil, err
	}
	rows := make([]Row, len(records))
	for i, record := range records {
		rows[i], err = ProjectRecord(ctx, record, i, columns)
		if err != nil {
			return nil, err
		}
	}
	return rows, nil
}

// ProjectRecord projects a single record
// with the index row in its document.
func ProjectRecord(ctx context.Context, record any, row int, columns Columns) (Row, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	r := make(Row, len(columns))
	// cell will be reused for every column of the row
	cell := Cell{
		Record: record,
		Row:    row,
	}
	for col := range columns {
		column := &columns[col]
		value, found := Resolve(record, column.Field)

		cell.Col = col
		cell.Column = column
		cell.Value = value
		cell.Blank = IsBlank(value, found)
		if cell.Blank && column.DefaultContent != nil {
			cell.Value = *column.DefaultContent
		}

		v, err := renderCell(ctx, &cell)
		if err != nil {
			return nil, err
		}
		r[col] = v
	}
	return r, nil
}

func renderCell(ctx context.Context, cell *Cell) (DisplayValue, error) {
	if cell.Column.Render != nil {
		str, raw, err := cell.Column.Render.RenderCell(ctx, cell)
		if err == nil {
			return DisplayValue{Text: str, Raw: raw}, nil
		}
		if !errors.Is(err, errors.ErrUnsupported) {
			return DisplayValue{}, err
		}
		// In case of errors.ErrUnsupported
		// use the fallback text of the value
	}
	return DisplayValue{Text: DisplayText(cell.Value)}, nil
}
