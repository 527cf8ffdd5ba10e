package jsontable

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	stripPolicyOnce sync.Once
	stripPolicy     *bluemonday.Policy
)

// PlainText returns the text of the value without markup.
// Raw values have all HTML elements removed so that a link
// becomes its label, other values are returned unchanged.
func (v DisplayValue) PlainText() string {
	if !v.Raw {
		return v.Text
	}
	stripPolicyOnce.Do(func() {
		stripPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(html.UnescapeString(stripPolicy.Sanitize(v.Text)))
}
