package jsontable

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func renderValue(t *testing.T, r CellRenderer, value any) (string, bool) {
	t.Helper()
	str, raw, err := r.RenderCell(context.Background(), &Cell{Value: value})
	require.NoError(t, err)
	return str, raw
}

func TestHandleLinkRenderer(t *testing.T) {
	tests := []struct {
		name    string
		r       HandleLinkRenderer
		value   any
		wantStr string
		wantRaw bool
	}{
		{name: "handle", value: "@cryptoFund", wantStr: `<a href="https://x.com/cryptoFund" target="_blank">@cryptoFund</a>`, wantRaw: true},
		{name: "without at", value: "cryptoFund", wantStr: `<a href="https://x.com/cryptoFund" target="_blank">cryptoFund</a>`, wantRaw: true},
		{name: "only leading at stripped", value: "@@a@b", wantStr: `<a href="https://x.com/@a@b" target="_blank">@@a@b</a>`, wantRaw: true},
		{name: "escaped", value: `@a"<b>`, wantStr: `<a href="https://x.com/a&#34;&lt;b&gt;" target="_blank">@a&#34;&lt;b&gt;</a>`, wantRaw: true},
		{name: "surrounding whitespace", value: "  @foo ", wantStr: `<a href="https://x.com/foo" target="_blank">@foo</a>`, wantRaw: true},
		{name: "custom prefix", r: HandleLinkRenderer{ProfileURLPrefix: "https://twitter.com/"}, value: "@foo", wantStr: `<a href="https://twitter.com/foo" target="_blank">@foo</a>`, wantRaw: true},
		{name: "empty", value: "", wantStr: "-"},
		{name: "placeholder", value: "-", wantStr: "-"},
		{name: "whitespace", value: "   ", wantStr: "-"},
		{name: "nil", value: nil, wantStr: "-"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			str, raw := renderValue(t, tt.r, tt.value)
			require.Equal(t, tt.wantStr, str)
			require.Equal(t, tt.wantRaw, raw)
		})
	}
}

func TestExternalLinkRenderer(t *testing.T) {
	tests := []struct {
		name    string
		r       ExternalLinkRenderer
		value   any
		wantStr string
		wantRaw bool
	}{
		{name: "url", value: "https://x.com/status/123", wantStr: `<a href="https://x.com/status/123" target="_blank">🔗</a>`, wantRaw: true},
		{name: "query", value: "https://x.com/s?a=1&b=2", wantStr: `<a href="https://x.com/s?a=1&amp;b=2" target="_blank">🔗</a>`, wantRaw: true},
		{name: "custom glyph", r: ExternalLinkRenderer{Glyph: "link"}, value: "https://x.com/status/123", wantStr: `<a href="https://x.com/status/123" target="_blank">link</a>`, wantRaw: true},
		{name: "nil", value: nil, wantStr: "-"},
		{name: "empty", value: "", wantStr: "-"},
		{name: "placeholder", value: "-", wantStr: "-"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			str, raw := renderValue(t, tt.r, tt.value)
			require.Equal(t, tt.wantStr, str)
			require.Equal(t, tt.wantRaw, raw)
		})
	}
}

func TestPrintfCellRenderer(t *testing.T) {
	str, raw := renderValue(t, PrintfCellRenderer("%s USD"), "5M")
	require.Equal(t, "5M USD", str)
	require.False(t, raw)

	str, _ = renderValue(t, PrintfCellRenderer("%s USD"), " ")
	require.Equal(t, Placeholder, str)

	str, _ = renderValue(t, TextCellRenderer{}, nil)
	require.Equal(t, "", str)
}

func TestDisplayValue_PlainText(t *testing.T) {
	require.Equal(t, "a <b>", DisplayValue{Text: "a <b>"}.PlainText())
	require.Equal(t, "@foo", DisplayValue{Text: `<a href="https://x.com/foo" target="_blank">@foo</a>`, Raw: true}.PlainText())
	require.Equal(t, "A & B", DisplayValue{Text: `<b>A &amp; B</b>`, Raw: true}.PlainText())
}

func TestDisplayText(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "nil", value: nil, want: ""},
		{name: "string", value: "Foo", want: "Foo"},
		{name: "float", value: float64(1000000), want: "1000000"},
		{name: "fraction", value: 0.5, want: "0.5"},
		{name: "int", value: 42, want: "42"},
		{name: "bool", value: false, want: "false"},
		{name: "object", value: map[string]any{"a": "b"}, want: `{"a":"b"}`},
		{name: "array", value: []any{"a", float64(1)}, want: `["a",1]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, DisplayText(tt.value))
		})
	}
}
