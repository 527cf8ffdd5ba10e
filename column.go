package jsontable

import "fmt"

// Column describes how one display column
// is projected from the records of a document.
type Column struct {
	// Title of the column used for header rows.
	Title string

	// Field is the dotted path of the record value.
	Field Path

	// DefaultContent is displayed instead of a blank value if not nil.
	DefaultContent *string

	// Render renders the effective value if not nil.
	Render CellRenderer
}

// NewColumn returns a Column for a dotted field path
// using the path as title. It panics on an invalid path.
func NewColumn(field string) Column {
	return Column{Title: field, Field: MustParsePath(field)}
}

// WithTitle returns a copy of the column with the passed title.
func (c Column) WithTitle(title string) Column {
	c.Title = title
	return c
}

// WithDefault returns a copy of the column
// with the passed DefaultContent.
func (c Column) WithDefault(defaultContent string) Column {
	c.DefaultContent = &defaultContent
	return c
}

// WithRender returns a copy of the column with the passed renderer.
func (c Column) WithRender(render CellRenderer) Column {
	c.Render = render
	return c
}

// Columns is the ordered column specification of a table.
// The order defines the order of the display columns.
type Columns []Column

// Titles returns the titles of all columns in order.
func (cols Columns) Titles() []string {
	titles := make([]string, len(cols))
	for i := range cols {
		titles[i] = cols[i].Title
	}
	return titles
}

// Validate checks that there is at least one column
// and that all field paths are valid.
func (cols Columns) Validate() error {
	if len(cols) == 0 {
		return fmt.Errorf("%w: no columns", ErrInvalidColumn)
	}
	for i := range cols {
		if err := cols[i].Field.Validate(); err != nil {
			return fmt.Errorf("%w %d %q: %w", ErrInvalidColumn, i, cols[i].Title, err)
		}
	}
	return nil
}
