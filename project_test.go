package jsontable

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func strs(rows []Row) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = row.Strings()
	}
	return out
}

func TestProject(t *testing.T) {
	ctx := context.Background()

	columns := Columns{
		NewColumn("nama").WithTitle("Nama"),
		NewColumn("dana").WithTitle("Dana").WithDefault("-"),
		NewColumn("fasa").WithTitle("Fasa").WithDefault("TBA"),
		NewColumn("pelabur").WithTitle("Pelabur"),
		NewColumn("twitter").WithTitle("Twitter").WithRender(HandleLinkRenderer{}),
		NewColumn("tweet_url").WithTitle("Tweet").WithRender(ExternalLinkRenderer{}),
	}
	document := []any{
		map[string]any{
			"nama":      "Foo",
			"dana":      "$5M",
			"fasa":      "Seed",
			"pelabur":   "Alice, Bob",
			"twitter":   "@foo",
			"tweet_url": "https://x.com/foo/status/1",
		},
		map[string]any{
			"nama":    "",
			"dana":    "-",
			"fasa":    "   ",
			"pelabur": "-",
			"twitter": "-",
		},
		map[string]any{},
	}

	rows, err := Project(ctx, document, Direct, columns)
	require.NoError(t, err)

	want := [][]string{
		{
			"Foo",
			"$5M",
			"Seed",
			"Alice, Bob",
			`<a href="https://x.com/foo" target="_blank">@foo</a>`,
			`<a href="https://x.com/foo/status/1" target="_blank">🔗</a>`,
		},
		// Blank values without default are passed through unchanged
		{"", "-", "TBA", "-", "-", "-"},
		// Missing values without default display as empty text
		{"", "-", "TBA", "", "-", "-"},
	}
	if diff := cmp.Diff(want, strs(rows)); diff != "" {
		t.Errorf("Project() mismatch (-want +got):\n%s", diff)
	}
	require.True(t, rows[0][4].Raw, "link is raw")
	require.False(t, rows[1][4].Raw, "placeholder is not raw")

	// Idempotent
	again, err := Project(ctx, document, Direct, columns)
	require.NoError(t, err)
	require.Equal(t, rows, again)
}

func TestProject_Wrapped(t *testing.T) {
	ctx := context.Background()
	columns := Columns{
		NewColumn("dashboard.nama").WithDefault("-"),
		NewColumn("dashboard.twitter").WithRender(HandleLinkRenderer{}),
		NewColumn("tweet_url").WithRender(ExternalLinkRenderer{}),
	}

	document := map[string]any{
		"last_updated": "2025-06-01 10:00:00",
		"data": []any{
			map[string]any{
				"tweet_url": "https://x.com/status/123",
				"dashboard": map[string]any{"nama": "Foo", "twitter": "@cryptoFund"},
			},
			map[string]any{
				"dashboard": map[string]any{"nama": "-"},
			},
		},
	}
	rows, err := Project(ctx, document, Wrapped("data"), columns)
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"Foo", `<a href="https://x.com/cryptoFund" target="_blank">@cryptoFund</a>`, `<a href="https://x.com/status/123" target="_blank">🔗</a>`},
		{"-", "-", "-"},
	}, strs(rows))

	_, err = Project(ctx, map[string]any{"other": []any{}}, Wrapped("data"), columns)
	require.ErrorIs(t, err, ErrMalformedDocument)
}

func TestProject_OrderPreserved(t *testing.T) {
	var document []any
	for _, name := range []string{"c", "a", "b", "a"} {
		document = append(document, map[string]any{"nama": name})
	}
	rows, err := Project(context.Background(), document, Direct, Columns{NewColumn("nama")})
	require.NoError(t, err)
	require.Equal(t, [][]string{{"c"}, {"a"}, {"b"}, {"a"}}, strs(rows))
}

func TestProject_Numbers(t *testing.T) {
	document, err := DecodeDocument([]byte(`[{"dana": 1000000, "ratio": 0.25, "ok": true, "tags": ["a","b"]}]`))
	require.NoError(t, err)
	rows, err := Project(context.Background(), document, Direct, Columns{
		NewColumn("dana"),
		NewColumn("ratio").WithRender(PrintfCellRenderer("%s%%")),
		NewColumn("ok"),
		NewColumn("tags"),
	})
	require.NoError(t, err)
	require.Equal(t, [][]string{{"1000000", "0.25%", "true", `["a","b"]`}}, strs(rows))
}

func TestProject_RenderErrors(t *testing.T) {
	ctx := context.Background()
	document := []any{map[string]any{"a": "x"}}

	unsupported := CellRendererFunc(func(ctx context.Context, cell *Cell) (string, bool, error) {
		return "", false, errors.ErrUnsupported
	})
	rows, err := Project(ctx, document, Direct, Columns{NewColumn("a").WithRender(unsupported)})
	require.NoError(t, err)
	require.Equal(t, [][]string{{"x"}}, strs(rows), "falls back to display text")

	failing := CellRendererFunc(func(ctx context.Context, cell *Cell) (string, bool, error) {
		return "", false, errors.New("boom")
	})
	_, err = Project(ctx, document, Direct, Columns{NewColumn("a").WithRender(failing)})
	require.EqualError(t, err, "boom")
}

func TestProject_CellContext(t *testing.T) {
	var cells []Cell
	record := func(cell *Cell) {
		cells = append(cells, *cell)
	}
	spy := CellRendererFunc(func(ctx context.Context, cell *Cell) (string, bool, error) {
		record(cell)
		return DisplayText(cell.Value), false, nil
	})
	document := []any{map[string]any{"a": " ", "b": "B"}}
	columns := Columns{
		NewColumn("a").WithDefault("default").WithRender(spy),
		NewColumn("b").WithRender(spy),
	}
	_, err := Project(context.Background(), document, Direct, columns)
	require.NoError(t, err)
	require.Len(t, cells, 2)

	require.Equal(t, 0, cells[0].Row)
	require.Equal(t, 0, cells[0].Col)
	require.Equal(t, "default", cells[0].Value)
	require.True(t, cells[0].Blank)
	require.Equal(t, document[0], cells[0].Record)

	require.Equal(t, 1, cells[1].Col)
	require.Equal(t, "B", cells[1].Value)
	require.False(t, cells[1].Blank)
}

func TestProject_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Project(ctx, []any{map[string]any{}}, Direct, Columns{NewColumn("a")})
	require.ErrorIs(t, err, context.Canceled)
}

func TestShape_Records(t *testing.T) {
	records := []any{map[string]any{"a": "b"}}
	tests := []struct {
		name     string
		shape    Shape
		document any
		want     []any
		wantErr  bool
	}{
		{name: "direct", shape: Direct, document: records, want: records},
		{name: "direct empty", shape: Direct, document: []any{}, want: []any{}},
		{name: "direct object", shape: Direct, document: map[string]any{"data": records}, wantErr: true},
		{name: "direct null", shape: Direct, document: nil, wantErr: true},
		{name: "wrapped", shape: Wrapped("data"), document: map[string]any{"data": records}, want: records},
		{name: "wrapped other name", shape: Wrapped("data"), document: map[string]any{"other": records}, wantErr: true},
		{name: "wrapped not array", shape: Wrapped("data"), document: map[string]any{"data": "x"}, wantErr: true},
		{name: "wrapped null", shape: Wrapped("data"), document: map[string]any{"data": nil}, wantErr: true},
		{name: "wrapped array document", shape: Wrapped("data"), document: records, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.shape.Records(tt.document)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrMalformedDocument)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseShape(t *testing.T) {
	tests := []struct {
		s       string
		want    Shape
		wantErr bool
	}{
		{s: "", want: Direct},
		{s: "direct", want: Direct},
		{s: "Direct", want: Direct},
		{s: "wrapped", want: Wrapped("data")},
		{s: "wrapped:items", want: Wrapped("items")},
		{s: "wrapped:", wantErr: true},
		{s: "direct:data", wantErr: true},
		{s: "nested", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			got, err := ParseShape(tt.s)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
	require.Equal(t, "Direct", Direct.String())
	require.Equal(t, `Wrapped("data")`, Wrapped("data").String())
}

func TestDecodeDocument(t *testing.T) {
	document, err := DecodeDocument([]byte("\xEF\xBB\xBF" + `{"data": [{"dana": 5}]}` + "\n"))
	require.NoError(t, err)
	require.Equal(t, map[string]any{"data": []any{map[string]any{"dana": json.Number("5")}}}, document)

	_, err = DecodeDocument([]byte(`[] []`))
	require.Error(t, err)

	_, err = DecodeDocument([]byte(``))
	require.Error(t, err)
}

func TestColumns_Validate(t *testing.T) {
	require.NoError(t, Columns{NewColumn("a")}.Validate())
	require.ErrorIs(t, Columns{}.Validate(), ErrInvalidColumn)

	err := Columns{{Title: "broken", Field: Path{"a", ""}}}.Validate()
	require.ErrorIs(t, err, ErrInvalidColumn)
	require.ErrorIs(t, err, ErrInvalidPath)
}
