package infer

import (
	"strings"

	"github.com/osada9000/tablehead-go/pkg/tablehead/models"
)

// FillLeft propagates the nearest non-empty value leftward across
// empty cells within one row, reconstructing a horizontally merged
// cell that visually spans several columns but is stored only in its
// leftmost cell. Sentinel values behave like empties.
func FillLeft(row []models.Cell) []string {
	out := make([]string, len(row))
	last := ""
	for i, c := range row {
		s := fragment(c)
		if s != "" {
			last = s
		}
		out[i] = last
	}
	return out
}

// StitchPair merges the located header row with the row below it into
// one label path per column. The second row takes part only when it
// has more than one non-empty cell, signaling a genuine child-header
// row rather than data; in that case the data body starts two rows
// past the header start instead of one. Both rows are left-filled
// before stitching and fragments are filtered before any label
// selection.
func StitchPair(g models.Grid, span models.HeaderSpan, p Params) ([][]string, int) {
	p = p.withDefaults()
	cols := g.ColumnCount()
	parent := FillLeft(g.Row(span.Start))
	dataStart := span.Start + 1

	var child []string
	next := span.Start + 1
	if next < g.RowCount() && nonEmptyCount(g.Rows[next]) > 1 {
		child = FillLeft(g.Row(next))
		dataStart = span.Start + 2
	}

	paths := make([][]string, cols)
	for i := 0; i < cols; i++ {
		path := appendFragment(nil, parent[i])
		if child != nil {
			path = appendFragment(path, child[i])
		}
		paths[i] = path
	}
	return paths, dataStart
}

// StitchSpan left-fills every row of the header span and collects each
// column's distinct fragments top-to-bottom, producing multi-level
// label paths. The span is clamped to the grid and to MaxHeaderRows.
// The data body starts at the row after the span.
func StitchSpan(g models.Grid, span models.HeaderSpan, p Params) ([][]string, int) {
	p = p.withDefaults()
	cols := g.ColumnCount()

	count := span.Rows
	if count < 1 {
		count = 1
	}
	if count > p.MaxHeaderRows {
		count = p.MaxHeaderRows
	}
	end := span.Start + count
	if end > g.RowCount() && g.RowCount() > 0 {
		end = g.RowCount()
	}

	filled := make([][]string, 0, count)
	for r := span.Start; r < end && r < g.RowCount(); r++ {
		filled = append(filled, FillLeft(g.Row(r)))
	}

	paths := make([][]string, cols)
	for i := 0; i < cols; i++ {
		var path []string
		for _, row := range filled {
			path = appendFragment(path, row[i])
		}
		paths[i] = path
	}
	return paths, end
}

// appendFragment adds a fragment to a column path unless it is empty
// or already present in the path.
func appendFragment(path []string, frag string) []string {
	if frag == "" {
		return path
	}
	for _, existing := range path {
		if existing == frag {
			return path
		}
	}
	return append(path, frag)
}

// fragment renders a cell as a header fragment: trimmed, with
// placeholder sentinels ("nan" markers from missing data and
// "Unnamed" artifacts) reduced to the empty string.
func fragment(c models.Cell) string {
	s := strings.TrimSpace(models.CellString(c))
	if strings.EqualFold(s, "nan") || strings.HasPrefix(s, "Unnamed") {
		return ""
	}
	return s
}
