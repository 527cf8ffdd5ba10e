package jsontable

import (
	"context"
	"html/template"
	"strings"
)

const (
	// DefaultProfileURLPrefix is prepended to social media handles
	// by a HandleLinkRenderer without ProfileURLPrefix.
	DefaultProfileURLPrefix = "https://x.com/"

	// DefaultLinkGlyph is the label of links
	// rendered by an ExternalLinkRenderer without Glyph.
	DefaultLinkGlyph = "🔗"
)

var (
	_ CellRenderer = HandleLinkRenderer{}
	_ CellRenderer = ExternalLinkRenderer{}
)

// HandleLinkRenderer renders a social media handle like "@cryptoFund"
// as link to the profile page of the handle.
//
// A blank handle is rendered as Placeholder.
// Otherwise surrounding whitespace is trimmed from the handle
// and a single leading '@' is stripped for the URL
// while the label of the link keeps the '@'.
// The link opens in a new browsing context.
type HandleLinkRenderer struct {
	// ProfileURLPrefix is prepended to the stripped handle.
	// DefaultProfileURLPrefix is used if empty.
	ProfileURLPrefix string
}

func (r HandleLinkRenderer) RenderCell(ctx context.Context, cell *Cell) (str string, raw bool, err error) {
	if IsBlankValue(cell.Value) {
		return Placeholder, false, nil
	}
	handle := strings.TrimSpace(DisplayText(cell.Value))
	prefix := r.ProfileURLPrefix
	if prefix == "" {
		prefix = DefaultProfileURLPrefix
	}
	href := prefix + strings.TrimPrefix(handle, "@")
	return anchor(href, template.HTMLEscapeString(handle)), true, nil
}

// ExternalLinkRenderer renders a URL as link
// with a fixed glyph as label.
//
// A blank URL, including a missing value, is rendered as Placeholder.
// The link opens in a new browsing context.
type ExternalLinkRenderer struct {
	// Glyph is the label of the link.
	// DefaultLinkGlyph is used if empty.
	Glyph string
}

func (r ExternalLinkRenderer) RenderCell(ctx context.Context, cell *Cell) (str string, raw bool, err error) {
	if IsBlankValue(cell.Value) {
		return Placeholder, false, nil
	}
	glyph := r.Glyph
	if glyph == "" {
		glyph = DefaultLinkGlyph
	}
	return anchor(DisplayText(cell.Value), template.HTMLEscapeString(glyph)), true, nil
}

func anchor(href, label string) string {
	return `<a href="` + template.HTMLEscapeString(href) + `" target="_blank">` + label + `</a>`
}
