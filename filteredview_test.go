package jsontable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilteredView(t *testing.T) {
	source := &RowsView{
		Tit:  "Projek",
		Cols: []string{"Nama", "Dana", "Twitter"},
		Rows: []Row{
			{{Text: "A"}, {Text: "1"}, {Text: "@a"}},
			{{Text: "B"}, {Text: "2"}, {Text: "@b"}},
			{{Text: "C"}, {Text: "3"}, {Text: "@c"}},
		},
	}

	tests := []struct {
		name string
		view *FilteredView
		want [][]string
	}{
		{
			name: "all",
			view: &FilteredView{Source: source},
			want: [][]string{{"A", "1", "@a"}, {"B", "2", "@b"}, {"C", "3", "@c"}},
		},
		{
			name: "offset",
			view: &FilteredView{Source: source, RowOffset: 1},
			want: [][]string{{"B", "2", "@b"}, {"C", "3", "@c"}},
		},
		{
			name: "offset and limit",
			view: &FilteredView{Source: source, RowOffset: 1, RowLimit: 1},
			want: [][]string{{"B", "2", "@b"}},
		},
		{
			name: "offset past end",
			view: &FilteredView{Source: source, RowOffset: 5},
			want: [][]string{},
		},
		{
			name: "negative offset",
			view: &FilteredView{Source: source, RowOffset: -1, RowLimit: 2},
			want: [][]string{{"A", "1", "@a"}, {"B", "2", "@b"}},
		},
		{
			name: "column mapping",
			view: &FilteredView{Source: source, ColumnMapping: []int{2, 0}},
			want: [][]string{{"@a", "A"}, {"@b", "B"}, {"@c", "C"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, "Projek", tt.view.Title())
			require.Equal(t, tt.want, ViewStrings(tt.view, false))
			require.Equal(t, DisplayValue{}, tt.view.Cell(tt.view.NumRows(), 0))
		})
	}
}

func TestSelectColumns(t *testing.T) {
	source := &RowsView{
		Cols: []string{"Nama", "Dana", "Twitter"},
		Rows: []Row{{{Text: "A"}, {Text: "1"}, {Text: "@a"}}},
	}

	view, err := SelectColumns(source, "twitter", " Nama ")
	require.NoError(t, err)
	require.Equal(t, []string{"Twitter", "Nama"}, view.Columns())
	require.Equal(t, [][]string{{"@a", "A"}}, ViewStrings(view, false))

	_, err = SelectColumns(source, "Fasa")
	require.ErrorIs(t, err, ErrInvalidColumn)
}
