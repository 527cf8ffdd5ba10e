package jsontable

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/domonda/go-types/charset"
)

// DecodeDocument decodes JSON text into a generic document
// of map[string]any, []any and scalar values.
// A leading UTF-8 byte order mark is ignored and
// numbers are decoded as json.Number to keep their original text.
func DecodeDocument(data []byte) (any, error) {
	data = charset.TrimBOM(data, charset.BOMUTF8)

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var document any
	err := dec.Decode(&document)
	if err != nil {
		return nil, fmt.Errorf("can't decode JSON document: %w", err)
	}
	// Only a single JSON value is allowed
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("can't decode JSON document: unexpected data after top-level value")
	}
	return document, nil
}
