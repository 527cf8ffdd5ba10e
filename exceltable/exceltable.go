// Package exceltable writes projected table views as Excel files (.xlsx)
// and reads them back as views.
//
// The package uses the excelize library (github.com/xuri/excelize/v2) under the hood.
//
// Example usage:
//
//	err := exceltable.WriteLocalFile(ctx, "dashboard.xlsx", view, true)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	view, err := exceltable.ReadFirstSheet(file)
package exceltable

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/domonda/go-jsontable"
)

// MaxSheetNameLength is the maximum number of characters
// Excel allows for sheet names.
const MaxSheetNameLength = 31

// ErrEmptySheet indicates that an Excel sheet contains no rows.
var ErrEmptySheet = errors.New("empty sheet")

// ErrSheetNotExist is re-exported from excelize and indicates that a requested
// sheet name does not exist in the Excel file.
type ErrSheetNotExist = excelize.ErrSheetNotExist

// Write writes the view as the only sheet of an Excel workbook to dest.
// The sheet is named after the view title or "Sheet1" for an empty title.
// If headerRow is true, the column titles are written as bold first row.
// Raw cells are written as their plain text.
func Write(ctx context.Context, dest io.Writer, view jsontable.View, headerRow bool) (err error) {
	f, err := newWorkbook(ctx, view, headerRow)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return f.Write(dest)
}

// WriteLocalFile writes the view as Excel workbook to filename.
func WriteLocalFile(ctx context.Context, filename string, view jsontable.View, headerRow bool) (err error) {
	f, err := newWorkbook(ctx, view, headerRow)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return f.SaveAs(filename)
}

func newWorkbook(ctx context.Context, view jsontable.View, headerRow bool) (_ *excelize.File, err error) {
	f := excelize.NewFile()
	defer func() {
		if err != nil {
			err = errors.Join(err, f.Close())
		}
	}()

	sheet := f.GetSheetName(0)
	if name := SheetName(view.Title()); name != "" && name != sheet {
		if err := f.SetSheetName(sheet, name); err != nil {
			return nil, err
		}
		sheet = name
	}

	excelRow := 1
	if headerRow {
		if err := setRow(f, sheet, excelRow, view.Columns()); err != nil {
			return nil, err
		}
		style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return nil, err
		}
		if err := f.SetRowStyle(sheet, excelRow, excelRow, style); err != nil {
			return nil, err
		}
		excelRow++
	}

	numCols := len(view.Columns())
	for row := 0; row < view.NumRows(); row++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		values := make([]string, numCols)
		for col := range values {
			values[col] = view.Cell(row, col).PlainText()
		}
		if err := setRow(f, sheet, excelRow, values); err != nil {
			return nil, err
		}
		excelRow++
	}
	return f, nil
}

func setRow(f *excelize.File, sheet string, excelRow int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, excelRow)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

// SheetName returns title as valid Excel sheet name
// by replacing invalid characters with '_'
// and cutting it to MaxSheetNameLength characters.
func SheetName(title string) string {
	title = strings.Map(
		func(r rune) rune {
			if strings.ContainsRune(`:\/?*[]`, r) {
				return '_'
			}
			return r
		},
		strings.Trim(strings.TrimSpace(title), "'"),
	)
	if runes := []rune(title); len(runes) > MaxSheetNameLength {
		title = string(runes[:MaxSheetNameLength])
	}
	return title
}

// ReadFirstSheet reads the first sheet from an Excel file provided via io.Reader
// and returns it as a jsontable.RowsView.
//
// The first row of the sheet is used as column titles, and subsequent rows
// contain the data. Returns ErrEmptySheet if the sheet has no rows.
func ReadFirstSheet(reader io.Reader) (sheetView *jsontable.RowsView, err error) {
	f, e := excelize.OpenReader(reader)
	if e != nil {
		return nil, e
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrSheetNotExist{SheetName: "<FirstSheet>"}
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}
	view := &jsontable.RowsView{
		Tit:  sheet,
		Cols: rows[0],
		Rows: make([]jsontable.Row, len(rows)-1),
	}
	for i, rowStrs := range rows[1:] {
		view.Rows[i] = make(jsontable.Row, len(rowStrs))
		for col, str := range rowStrs {
			view.Rows[i][col] = jsontable.DisplayValue{Text: str}
		}
	}
	return view, nil
}
