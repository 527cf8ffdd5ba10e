// Package htmltable provides functionality for writing projected tables as HTML.
// It supports HTML templating, automatic HTML escaping of text cells
// and sanitizing of raw HTML cells like the links of link renderers.
//
// Example usage:
//
//	view, err := jsontable.ProjectView(ctx, "Projek", document, jsontable.Wrapped("data"), columns)
//	if err != nil {
//	    return err
//	}
//	err = htmltable.NewWriter().
//	    WithHeaderRow(true).
//	    WithTableID("dashboard").
//	    WriteView(ctx, os.Stdout, view)
package htmltable

import (
	"context"
	"html/template"
	"io"

	"github.com/domonda/go-jsontable"
)

// Sanitizer cleans untrusted HTML.
// It is implemented by *bluemonday.Policy.
type Sanitizer interface {
	Sanitize(html string) string
}

// Writer writes table views as HTML table elements.
//
// Writer is immutable after creation - all With* methods return
// a new Writer instance with the modified configuration.
//
// HTML Escaping:
// All cell values that are not raw are HTML-escaped.
// Raw cell values are passed through the Sanitizer of the writer,
// which is LinkPolicy by default.
type Writer struct {
	tableID        string
	tableClass     string
	rawColumns     map[int]bool
	sanitizer      Sanitizer
	emptyValue     template.HTML
	headerRow      bool
	headerTemplate *template.Template
	rowTemplate    *template.Template
	footerTemplate *template.Template
}

// NewWriter creates a new HTML table writer.
//
// Default configuration:
//   - No table id or class
//   - LinkPolicy as sanitizer for raw cells
//   - Empty string for empty values
//   - No header row
//   - Standard HTML table templates
func NewWriter() *Writer {
	return &Writer{
		rawColumns:     make(map[int]bool),
		sanitizer:      LinkPolicy(),
		emptyValue:     "",
		headerRow:      false,
		headerTemplate: HeaderTemplate,
		rowTemplate:    RowTemplate,
		footerTemplate: FooterTemplate,
	}
}

// WriteView writes a table view as HTML to the destination writer.
// The title of the view is used as caption.
// The context is checked for cancellation before every row.
func (w *Writer) WriteView(ctx context.Context, dest io.Writer, view jsontable.View) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	var (
		columns   = view.Columns()
		numCols   = len(columns)
		templData = &RowTemplateContext{
			TemplateContext: TemplateContext{
				TableID:    w.tableID,
				TableClass: w.tableClass,
				Caption:    view.Title(),
			},
			RawCells: make([]template.HTML, numCols),
		}
	)

	err := w.headerTemplate.Execute(dest, templData.TemplateContext)
	if err != nil {
		return err
	}

	if w.headerRow {
		templData.IsHeaderRow = true
		for i := range columns {
			templData.RawCells[i] = template.HTML(template.HTMLEscapeString(columns[i])) //#nosec G203
		}
		err = w.rowTemplate.Execute(dest, templData)
		if err != nil {
			return err
		}
		templData.IsHeaderRow = false
		templData.RowIndex++
	}

	for row, numRows := 0, view.NumRows(); row < numRows; row++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		for col := 0; col < numCols; col++ {
			templData.RawCells[col] = w.cellHTML(view.Cell(row, col), col)
		}

		err = w.rowTemplate.Execute(dest, templData)
		if err != nil {
			return err
		}

		templData.RowIndex++
	}

	return w.footerTemplate.Execute(dest, templData.TemplateContext)
}

func (w *Writer) cellHTML(v jsontable.DisplayValue, col int) template.HTML {
	if v.Text == "" {
		return w.emptyValue
	}
	if !v.Raw && !w.rawColumns[col] {
		return template.HTML(template.HTMLEscapeString(v.Text)) //#nosec G203
	}
	if w.sanitizer == nil {
		return template.HTML(v.Text) //#nosec G203
	}
	return template.HTML(w.sanitizer.Sanitize(v.Text)) //#nosec G203
}

func (w *Writer) clone() *Writer {
	c := new(Writer)
	*c = *w
	return c
}

// WithHeaderRow returns a new writer with header row configuration.
// When enabled, the column titles are rendered as first row using <th> elements.
func (w *Writer) WithHeaderRow(headerRow bool) *Writer {
	mod := w.clone()
	mod.headerRow = headerRow
	return mod
}

// WithTableID returns a new writer with the specified id of the table element.
// The id is what page scripts use to attach a table widget.
func (w *Writer) WithTableID(tableID string) *Writer {
	mod := w.clone()
	mod.tableID = tableID
	return mod
}

// WithTableClass returns a new writer with the specified CSS class for the table element.
// The class will be rendered as: <table class='tableClass'>
//
// Example:
//
//	writer := htmltable.NewWriter().WithTableClass("table table-striped")
func (w *Writer) WithTableClass(tableClass string) *Writer {
	mod := w.clone()
	mod.tableClass = tableClass
	return mod
}

// WithRawColumn returns a new writer that interprets the specified column as raw HTML strings.
// Values of the column are passed through the sanitizer instead of being escaped.
func (w *Writer) WithRawColumn(columnIndex int) *Writer {
	mod := w.clone()
	mod.rawColumns = make(map[int]bool, len(w.rawColumns)+1)
	for key, val := range w.rawColumns {
		mod.rawColumns[key] = val
	}
	mod.rawColumns[columnIndex] = true
	return mod
}

// WithSanitizer returns a new writer using the passed sanitizer for raw cells.
// Passing nil writes raw cells unchanged.
//
// Warning: Only disable sanitizing for trusted content to avoid XSS vulnerabilities.
func (w *Writer) WithSanitizer(sanitizer Sanitizer) *Writer {
	mod := w.clone()
	mod.sanitizer = sanitizer
	return mod
}

// WithEmptyValue returns a new writer that writes
// the passed raw HTML for cells with empty text.
func (w *Writer) WithEmptyValue(emptyValue template.HTML) *Writer {
	mod := w.clone()
	mod.emptyValue = emptyValue
	return mod
}

// WithTemplate returns a new writer with custom templates.
// Passing nil for any template will keep the current template for that section.
func (w *Writer) WithTemplate(headerTemplate, rowTemplate, footerTemplate *template.Template) *Writer {
	mod := w.clone()
	if headerTemplate != nil {
		mod.headerTemplate = headerTemplate
	}
	if rowTemplate != nil {
		mod.rowTemplate = rowTemplate
	}
	if footerTemplate != nil {
		mod.footerTemplate = footerTemplate
	}
	return mod
}

// TableID returns the configured id of the table element.
func (w *Writer) TableID() string {
	return w.tableID
}

// TableClass returns the configured CSS class for the table element.
func (w *Writer) TableClass() string {
	return w.tableClass
}

// HeaderRow returns whether the writer is configured to render a header row.
func (w *Writer) HeaderRow() bool {
	return w.headerRow
}
