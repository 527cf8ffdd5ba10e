package jsontable

import "errors"

var (
	// ErrMalformedDocument is returned by Project when the document
	// does not have the configured Shape.
	// It is fatal for the whole projection, no rows are returned.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrInvalidPath is returned for empty field paths
	// or paths with empty segments like "a..b".
	ErrInvalidPath = errors.New("invalid field path")

	// ErrInvalidColumn is returned by Columns.Validate
	// for a column that can't be projected.
	ErrInvalidColumn = errors.New("invalid column")
)
