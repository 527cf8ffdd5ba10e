package htmltable

import (
	"regexp"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	linkPolicyOnce sync.Once
	linkPolicy     *bluemonday.Policy
)

// LinkPolicy returns the default policy for raw cells.
// It allows links with a target and rel attribute
// and a few inline formatting elements.
// The returned policy is shared and must not be modified.
func LinkPolicy() *bluemonday.Policy {
	linkPolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowStandardURLs()
		policy.AllowAttrs("href").OnElements("a")
		policy.AllowAttrs("target").Matching(regexp.MustCompile(`^_(blank|self|parent|top)$`)).OnElements("a")
		policy.AllowAttrs("rel").OnElements("a")
		policy.AllowAttrs("class").OnElements("a", "span", "code")
		policy.AllowElements("span", "code", "pre", "b", "i", "em", "strong", "br")
		linkPolicy = policy
	})
	return linkPolicy
}
