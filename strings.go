package jsontable

import "github.com/mattn/go-runewidth"

// StringColumnWidths returns the column widths of the passed
// table as terminal display width of the cell strings.
// Wide runes like emoji count as two cells.
// If numCols is negative, the maximum row length is used.
func StringColumnWidths(rows [][]string, numCols int) []int {
	if numCols < 0 {
		for _, row := range rows {
			if rowCols := len(row); rowCols > numCols {
				numCols = rowCols
			}
		}
		if numCols <= 0 {
			return nil
		}
	}
	colWidths := make([]int, numCols)
	for row := range rows {
		for col := 0; col < numCols && col < len(rows[row]); col++ {
			width := runewidth.StringWidth(rows[row][col])
			if width > colWidths[col] {
				colWidths[col] = width
			}
		}
	}
	return colWidths
}
