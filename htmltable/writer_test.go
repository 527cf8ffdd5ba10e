package htmltable

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/domonda/go-jsontable"
)

func ExampleWriter() {
	view := &jsontable.RowsView{
		Tit:  "Projek",
		Cols: []string{"Nama", "Twitter"},
		Rows: []jsontable.Row{
			{{Text: "Foo"}, {Text: `<a href="https://x.com/foo" target="_blank">@foo</a>`, Raw: true}},
			{{Text: "A & B"}, {Text: "-"}},
		},
	}

	NewWriter().
		WithHeaderRow(true).
		WithSanitizer(nil).
		WriteView(context.Background(), os.Stdout, view)

	// Output:
	// <table>
	//   <caption>Projek</caption>
	//   <tr><th>Nama</th><th>Twitter</th></tr>
	//   <tr><td>Foo</td><td><a href="https://x.com/foo" target="_blank">@foo</a></td></tr>
	//   <tr><td>A &amp; B</td><td>-</td></tr>
	// </table>
}

func TestWriter_WriteView(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name     string
		writer   *Writer
		view     jsontable.View
		wantDest string
	}{
		{
			name:     "empty view",
			writer:   NewWriter(),
			view:     &jsontable.RowsView{},
			wantDest: "<table>\n</table>",
		},
		{
			name:   "id and class",
			writer: NewWriter().WithTableID("dashboard").WithTableClass("display"),
			view: &jsontable.RowsView{
				Cols: []string{"A"},
				Rows: []jsontable.Row{{{Text: "1"}}},
			},
			wantDest: "<table id='dashboard' class='display'>\n  <tr><td>1</td></tr>\n</table>",
		},
		{
			name:   "empty value and sparse row",
			writer: NewWriter().WithEmptyValue("&nbsp;"),
			view: &jsontable.RowsView{
				Cols: []string{"A", "B"},
				Rows: []jsontable.Row{{{Text: "1"}}},
			},
			wantDest: "<table>\n  <tr><td>1</td><td>&nbsp;</td></tr>\n</table>",
		},
		{
			name:   "raw column",
			writer: NewWriter().WithRawColumn(1).WithSanitizer(nil),
			view: &jsontable.RowsView{
				Cols: []string{"A", "B"},
				Rows: []jsontable.Row{{{Text: "<b>x</b>"}, {Text: "<b>y</b>"}}},
			},
			wantDest: "<table>\n  <tr><td>&lt;b&gt;x&lt;/b&gt;</td><td><b>y</b></td></tr>\n</table>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dest bytes.Buffer
			err := tt.writer.WriteView(ctx, &dest, tt.view)
			require.NoError(t, err)
			require.Equal(t, tt.wantDest, dest.String())
		})
	}
}

func TestWriter_SanitizesRawCells(t *testing.T) {
	ctx := context.Background()
	columns := jsontable.Columns{
		jsontable.NewColumn("twitter").WithRender(jsontable.HandleLinkRenderer{}),
		jsontable.NewColumn("evil"),
	}
	document := []any{
		map[string]any{"twitter": "@cryptoFund", "evil": "<script>alert(1)</script>"},
	}
	view, err := jsontable.ProjectView(ctx, "", document, jsontable.Direct, columns)
	require.NoError(t, err)

	var dest bytes.Buffer
	err = NewWriter().WriteView(ctx, &dest, view)
	require.NoError(t, err)
	html := dest.String()
	require.Contains(t, html, `href="https://x.com/cryptoFund"`)
	require.Contains(t, html, `target="_blank"`)
	require.Contains(t, html, `>@cryptoFund</a>`)
	require.Contains(t, html, `&lt;script&gt;`)

	// Raw markup from renderers is sanitized
	view.Rows[0][1] = jsontable.DisplayValue{Text: `<a href="javascript:alert(1)">x</a><script>alert(1)</script>`, Raw: true}
	dest.Reset()
	err = NewWriter().WriteView(ctx, &dest, view)
	require.NoError(t, err)
	require.NotContains(t, dest.String(), "javascript:")
	require.NotContains(t, dest.String(), "<script>")
}

func TestWriter_WriteView_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewWriter().WriteView(ctx, &bytes.Buffer{}, &jsontable.RowsView{})
	require.ErrorIs(t, err, context.Canceled)
}
