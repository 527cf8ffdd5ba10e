package jsontable

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// DisplayText coerces a decoded JSON value to display text.
//
// nil becomes the empty string, strings are returned unchanged,
// numbers are formatted without exponent where possible,
// and nested objects and arrays are encoded as compact JSON.
func DisplayText(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case fmt.Stringer:
		return v.String()
	case map[string]any, []any:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	default:
		return fmt.Sprint(v)
	}
}
