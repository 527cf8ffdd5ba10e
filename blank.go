package jsontable

import "strings"

// Placeholder is the literal value that producers of documents
// use for unavailable fields and that renderers return for blank values.
const Placeholder = "-"

// IsBlank reports if a resolved value has no usable content.
//
// A value is blank if it was not found, if it is nil,
// if it is a string that is empty after trimming whitespace,
// or if it is the Placeholder string "-".
// Non string values like numbers and booleans are never blank.
func IsBlank(value any, found bool) bool {
	if !found || value == nil {
		return true
	}
	s, ok := value.(string)
	if !ok {
		return false
	}
	s = strings.TrimSpace(s)
	return s == "" || s == Placeholder
}

// IsBlankValue is IsBlank for a value that was found,
// used by renderers that only get the effective value of a cell.
func IsBlankValue(value any) bool {
	return IsBlank(value, true)
}
