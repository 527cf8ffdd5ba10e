// Package csvtable writes projected table views as CSV.
package csvtable

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/domonda/go-jsontable"
)

// Encoder is an interface to encode byte strings.
type Encoder interface {
	Bytes([]byte) ([]byte, error)
}

// EncoderFunc implements the Encoder interface for a function.
type EncoderFunc func([]byte) ([]byte, error)

func (f EncoderFunc) Bytes(data []byte) ([]byte, error) {
	return f(data)
}

// PassthroughEncoder returns an Encoder that returns the passed data unchanged.
func PassthroughEncoder() Encoder {
	return EncoderFunc(func(data []byte) ([]byte, error) {
		return data, nil
	})
}

type Padding int

const (
	NoPadding Padding = iota
	AlignLeft
	AlignRight
	AlignCenter
)

// Writer writes views as CSV.
// All With* methods return a modified copy of the writer.
//
// Raw cells like rendered links are written as their plain text
// unless WithKeepMarkup(true) is used.
type Writer struct {
	padding          Padding
	headerRow        bool
	keepMarkup       bool
	quoteAllFields   bool
	quoteEmptyFields bool
	escapeQuotes     string
	emptyValue       string
	delimiter        rune
	newLine          string
	encoder          Encoder
}

func NewWriter() *Writer {
	return &Writer{
		padding:          NoPadding,
		headerRow:        false,
		keepMarkup:       false,
		quoteAllFields:   false,
		quoteEmptyFields: false,
		escapeQuotes:     `""`,
		emptyValue:       "",
		delimiter:        ';',
		newLine:          "\r\n",
		encoder:          nil,
	}
}

func (w *Writer) clone() *Writer {
	c := new(Writer)
	*c = *w
	return c
}

// WriteView writes the view to dest formatted as CSV.
func (w *Writer) WriteView(ctx context.Context, dest io.Writer, view jsontable.View) error {
	if w.padding != NoPadding {
		return w.writeViewPadded(ctx, dest, view)
	}

	if w.headerRow {
		err := w.writeView(ctx, dest, jsontable.NewHeaderViewFrom(view))
		if err != nil {
			return err
		}
	}
	return w.writeView(ctx, dest, view)
}

func (w *Writer) writeView(ctx context.Context, dest io.Writer, view jsontable.View) error {
	rowBuf := bytes.NewBuffer(make([]byte, 0, 1024))
	for row, numRows := 0, view.NumRows(); row < numRows; row++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		for col := range view.Columns() {
			if col > 0 {
				rowBuf.WriteRune(w.delimiter)
			}
			rowBuf.WriteString(w.escapeString(w.cellString(view.Cell(row, col))))
		}
		rowBuf.WriteString(w.newLine)

		err := w.flushRow(dest, rowBuf)
		if err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeViewPadded(ctx context.Context, dest io.Writer, view jsontable.View) error {
	rows, err := w.ViewStrings(ctx, view)
	if err != nil {
		return err
	}

	// Collect column widths
	colWidths := jsontable.StringColumnWidths(rows, len(view.Columns()))

	rowBuf := bytes.NewBuffer(make([]byte, 0, 1024))
	for row := range rows {
		for col, str := range rows[row] {
			if col > 0 {
				rowBuf.WriteRune(w.delimiter)
			}
			var (
				padTotal = colWidths[col] - runewidth.StringWidth(str)
				padLeft  = 0
				padRight = 0
			)
			switch w.padding {
			case AlignLeft:
				padRight = padTotal
			case AlignRight:
				padLeft = padTotal
			case AlignCenter:
				padLeft = padTotal / 2
				padRight = (padTotal + 1) / 2
			}
			rowBuf.WriteString(strings.Repeat(" ", padLeft))
			rowBuf.WriteString(str)
			rowBuf.WriteString(strings.Repeat(" ", padRight))
		}
		rowBuf.WriteString(w.newLine)

		err := w.flushRow(dest, rowBuf)
		if err != nil {
			return err
		}
	}

	return nil
}

// flushRow encodes the buffered row if the writer
// has an encoder, writes it to dest and resets the buffer.
func (w *Writer) flushRow(dest io.Writer, rowBuf *bytes.Buffer) error {
	data := rowBuf.Bytes()
	if w.encoder != nil {
		var err error
		data, err = w.encoder.Bytes(data)
		if err != nil {
			return err
		}
	}
	_, err := dest.Write(data)
	rowBuf.Reset()
	return err
}

// ViewStrings returns the view formatted as a slice of escaped string slices.
func (w *Writer) ViewStrings(ctx context.Context, view jsontable.View) ([][]string, error) {
	var (
		numCols = len(view.Columns())
		numRows = view.NumRows()
		rows    = make([][]string, 0, numRows+1)
	)
	if w.headerRow {
		rows = append(rows, w.rowStrings(jsontable.NewHeaderViewFrom(view), 0, numCols))
	}
	for row := 0; row < numRows; row++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		rows = append(rows, w.rowStrings(view, row, numCols))
	}
	return rows, nil
}

func (w *Writer) rowStrings(view jsontable.View, row, numCols int) []string {
	rowStrs := make([]string, numCols)
	for col := range rowStrs {
		rowStrs[col] = w.escapeString(w.cellString(view.Cell(row, col)))
	}
	return rowStrs
}

func (w *Writer) cellString(v jsontable.DisplayValue) string {
	str := v.Text
	if !w.keepMarkup {
		str = v.PlainText()
	}
	if str == "" {
		return w.emptyValue
	}
	return str
}

func (w *Writer) escapeString(str string) string {
	needsQuotes := w.quoteAllFields ||
		strings.ContainsAny(str, "\"\r\n") ||
		strings.ContainsRune(str, w.delimiter)
	// Just in case remove all \r,
	// \n alone is valid within quotes
	str = strings.ReplaceAll(str, "\r", "")
	switch {
	case needsQuotes:
		return `"` + strings.ReplaceAll(str, `"`, w.escapeQuotes) + `"`
	case w.quoteEmptyFields && str == "":
		return `""`
	}
	return str
}

func (w *Writer) WithHeaderRow(headerRow bool) *Writer {
	mod := w.clone()
	mod.headerRow = headerRow
	return mod
}

// WithKeepMarkup returns a writer that writes the markup
// of raw cells like links instead of their plain text.
func (w *Writer) WithKeepMarkup(keepMarkup bool) *Writer {
	mod := w.clone()
	mod.keepMarkup = keepMarkup
	return mod
}

func (w *Writer) WithPadding(padding Padding) *Writer {
	mod := w.clone()
	mod.padding = padding
	return mod
}

func (w *Writer) WithQuoteAllFields(quoteAllFields bool) *Writer {
	mod := w.clone()
	mod.quoteAllFields = quoteAllFields
	return mod
}

func (w *Writer) WithQuoteEmptyFields(quoteEmptyFields bool) *Writer {
	mod := w.clone()
	mod.quoteEmptyFields = quoteEmptyFields
	return mod
}

func (w *Writer) WithEmptyValue(emptyValue string) *Writer {
	mod := w.clone()
	mod.emptyValue = emptyValue
	return mod
}

func (w *Writer) WithEscapeQuotes(escapeQuotes string) *Writer {
	mod := w.clone()
	mod.escapeQuotes = escapeQuotes
	return mod
}

func (w *Writer) WithDelimiter(delimiter rune) *Writer {
	mod := w.clone()
	mod.delimiter = delimiter
	return mod
}

func (w *Writer) WithNewLine(newLine string) *Writer {
	mod := w.clone()
	mod.newLine = newLine
	return mod
}

func (w *Writer) WithEncoder(encoder Encoder) *Writer {
	mod := w.clone()
	mod.encoder = encoder
	return mod
}

func (w *Writer) Delimiter() rune {
	return w.delimiter
}

func (w *Writer) NewLine() string {
	return w.newLine
}
