// Package texttable writes projected table views
// as box drawn tables for terminals.
package texttable

import (
	"context"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"

	"github.com/domonda/go-jsontable"
)

// Ellipsis is appended to truncated cell texts.
const Ellipsis = "…"

// Writer renders views with lipgloss tables.
// Raw cells are written as their plain text,
// so a rendered link shows its label.
type Writer struct {
	maxWidth    int
	headerRow   bool
	border      lipgloss.Border
	headerStyle lipgloss.Style
	cellStyle   lipgloss.Style
}

func NewWriter() *Writer {
	return &Writer{
		maxWidth:    0,
		headerRow:   true,
		border:      lipgloss.NormalBorder(),
		headerStyle: lipgloss.NewStyle().Bold(true).Padding(0, 1),
		cellStyle:   lipgloss.NewStyle().Padding(0, 1),
	}
}

func (w *Writer) clone() *Writer {
	c := new(Writer)
	*c = *w
	return c
}

// WithMaxWidth returns a writer that truncates cell texts
// wider than maxWidth terminal cells. Zero disables truncation.
func (w *Writer) WithMaxWidth(maxWidth int) *Writer {
	mod := w.clone()
	mod.maxWidth = maxWidth
	return mod
}

func (w *Writer) WithHeaderRow(headerRow bool) *Writer {
	mod := w.clone()
	mod.headerRow = headerRow
	return mod
}

func (w *Writer) WithBorder(border lipgloss.Border) *Writer {
	mod := w.clone()
	mod.border = border
	return mod
}

// Render returns the view rendered as text table
// with the title of the view on its own line above the table.
func (w *Writer) Render(ctx context.Context, view jsontable.View) (string, error) {
	rows := make([][]string, view.NumRows())
	numCols := len(view.Columns())
	for row := range rows {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		rows[row] = make([]string, numCols)
		for col := range rows[row] {
			rows[row][col] = w.truncate(view.Cell(row, col).PlainText())
		}
	}

	t := table.New().
		Border(w.border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return w.headerStyle
			}
			return w.cellStyle
		}).
		Rows(rows...)
	if w.headerRow {
		headers := make([]string, numCols)
		for col, title := range view.Columns() {
			headers[col] = w.truncate(title)
		}
		t = t.Headers(headers...)
	}

	out := t.String()
	if title := view.Title(); title != "" {
		out = lipgloss.NewStyle().Bold(true).Render(title) + "\n" + out
	}
	return out, nil
}

// WriteView writes the rendered view followed by a newline to dest.
func (w *Writer) WriteView(ctx context.Context, dest io.Writer, view jsontable.View) error {
	out, err := w.Render(ctx, view)
	if err != nil {
		return err
	}
	_, err = io.WriteString(dest, out+"\n")
	return err
}

func (w *Writer) truncate(s string) string {
	if w.maxWidth <= 0 {
		return s
	}
	return runewidth.Truncate(s, w.maxWidth, Ellipsis)
}
