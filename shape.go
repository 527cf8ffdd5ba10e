package jsontable

import (
	"fmt"
	"strings"
)

// Shape tells how the records are found in a document.
// The zero value is the Direct shape.
type Shape struct {
	// Field is the name of the object field holding the records.
	// If empty, the document itself is the array of records.
	Field string
}

// Direct is the Shape of a document
// that is an array of records.
var Direct = Shape{}

// Wrapped returns the Shape of a document that is an object
// holding the array of records in the passed field.
func Wrapped(field string) Shape {
	return Shape{Field: field}
}

// IsWrapped reports if the records are wrapped in an object field.
func (s Shape) IsWrapped() bool {
	return s.Field != ""
}

func (s Shape) String() string {
	if !s.IsWrapped() {
		return "Direct"
	}
	return fmt.Sprintf("Wrapped(%q)", s.Field)
}

// ParseShape parses "direct" or "wrapped:<field>",
// a bare "wrapped" uses the field name "data".
func ParseShape(s string) (Shape, error) {
	kind, field, hasField := strings.Cut(strings.TrimSpace(s), ":")
	switch strings.ToLower(kind) {
	case "", "direct":
		if hasField {
			return Shape{}, fmt.Errorf("direct shape can't have a field: %q", s)
		}
		return Direct, nil
	case "wrapped":
		if !hasField {
			field = "data"
		}
		if field == "" {
			return Shape{}, fmt.Errorf("wrapped shape without field: %q", s)
		}
		return Wrapped(field), nil
	default:
		return Shape{}, fmt.Errorf("unknown document shape: %q", s)
	}
}

// Records returns the records of a decoded document.
//
// For the Direct shape the document must be an array,
// for a wrapped shape the document must be an object
// where the configured field holds an array.
// Any other document returns an error wrapping ErrMalformedDocument.
func (s Shape) Records(document any) ([]any, error) {
	if !s.IsWrapped() {
		records, ok := document.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: expected array of records, got %s", ErrMalformedDocument, jsonKind(document))
		}
		return records, nil
	}
	obj, ok := document.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected object with field %q, got %s", ErrMalformedDocument, s.Field, jsonKind(document))
	}
	wrapped, ok := obj[s.Field]
	if !ok {
		return nil, fmt.Errorf("%w: missing field %q", ErrMalformedDocument, s.Field)
	}
	records, ok := wrapped.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: field %q is %s, expected array", ErrMalformedDocument, s.Field, jsonKind(wrapped))
	}
	return records, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	default:
		return "number"
	}
}
