// Package datatables writes projected table views as the JSON document
// that client side table widgets load via ajax.
//
// The written document is an object holding the rows
// as arrays of display strings in a data field:
//
//	{"data": [["Foo", "<a href=\"https://x.com/foo\" target=\"_blank\">@foo</a>"]]}
//
// A widget configured with the same data field as data source
// shows the rows as pre-rendered cells.
package datatables

import (
	"bytes"
	"context"
	"encoding/json"
	"io"

	"github.com/domonda/go-jsontable"
)

// DefaultDataField is the field holding the rows.
const DefaultDataField = "data"

// Document is the JSON document written by Write.
//
// It marshals as object with the rows in DataField,
// DefaultDataField if empty, and the column titles
// as {"title": ...} objects in "columns".
type Document struct {
	DataField string
	Columns   []string
	Rows      [][]string
}

// NewDocument returns the Document of a view.
// Raw cells keep their markup because widgets
// insert cell data as HTML.
func NewDocument(ctx context.Context, view jsontable.View, dataField string) (*Document, error) {
	if dataField == "" {
		dataField = DefaultDataField
	}
	doc := &Document{
		DataField: dataField,
		Columns:   view.Columns(),
		Rows:      make([][]string, view.NumRows()),
	}
	numCols := len(doc.Columns)
	for row := range doc.Rows {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		doc.Rows[row] = make([]string, numCols)
		for col := range doc.Rows[row] {
			doc.Rows[row][col] = view.Cell(row, col).Text
		}
	}
	return doc, nil
}

// MarshalJSON implements json.Marshaler
func (doc *Document) MarshalJSON() ([]byte, error) {
	dataField := doc.DataField
	if dataField == "" {
		dataField = DefaultDataField
	}
	rows := doc.Rows
	if rows == nil {
		rows = [][]string{}
	}
	out := map[string]any{
		dataField: rows,
	}
	if _, exists := out["columns"]; !exists {
		columns := make([]column, len(doc.Columns))
		for i, title := range doc.Columns {
			columns[i] = column{Title: title}
		}
		out["columns"] = columns
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

// Write writes the Document of the view as indented JSON to dest
// with the rows in dataField, DefaultDataField if empty.
// HTML in cells is not escaped.
func Write(ctx context.Context, dest io.Writer, view jsontable.View, dataField string) error {
	doc, err := NewDocument(ctx, view, dataField)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(dest)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

type column struct {
	Title string `json:"title"`
}
