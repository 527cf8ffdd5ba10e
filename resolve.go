package jsontable

// Resolve returns the value at path within record.
//
// Every segment of path is looked up as key of a nested
// map[string]any as produced by decoding a JSON object.
// If the current value is not such a map, the key is not present,
// or the value of the key is null, then found is false.
// A missing value is a regular result and not an error.
//
// The value after the last segment is returned as is,
// an empty string is found and not treated as missing.
//
// Resolve does not validate path, an empty path returns the record itself
// if it is not nil. Use ParsePath or Path.Validate to check paths
// when they are configured.
func Resolve(record any, path Path) (value any, found bool) {
	value = record
	for _, key := range path {
		obj, ok := asObject(value)
		if !ok {
			return nil, false
		}
		value, ok = obj[key]
		if !ok || value == nil {
			return nil, false
		}
	}
	if value == nil {
		return nil, false
	}
	return value, true
}

func asObject(v any) (Record, bool) {
	obj, ok := v.(map[string]any)
	return obj, ok
}

// Record is a single decoded JSON object of a document.
type Record = map[string]any
