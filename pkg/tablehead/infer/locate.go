package infer

import (
	"strconv"
	"strings"

	"github.com/osada9000/tablehead-go/pkg/tablehead/models"
)

// Strategy locates a header span in a grid. The bool result reports
// whether the strategy produced a positive result; a negative result
// falls through to the next strategy in priority order.
type Strategy interface {
	Name() string
	Locate(g models.Grid, hints []bool, p Params) (models.HeaderSpan, bool)
}

// Locate determines the header span for a grid. Strategies are tried
// in priority order: the color anchor first, then one heuristic
// selected by the stitch mode (density with keyword backtrack in pair
// mode, type transition in span mode). Locate never fails; an empty
// grid yields the degenerate span {0, 1}.
func Locate(g models.Grid, hints []bool, p Params) models.HeaderSpan {
	p = p.withDefaults()
	if g.RowCount() == 0 {
		return models.HeaderSpan{Start: 0, Rows: 1}
	}

	strategies := []Strategy{colorAnchor{}}
	if p.Mode == ModePair {
		strategies = append(strategies, densityScan{})
	} else {
		strategies = append(strategies, typeTransition{})
	}

	for _, s := range strategies {
		if span, ok := s.Locate(g, hints, p); ok {
			return span
		}
	}
	return models.HeaderSpan{Start: 0, Rows: 1}
}

// colorAnchor treats rows whose first cell carries a user-applied
// background marker as header rows. Explicit user marking is the most
// reliable signal and overrides the heuristic strategies.
type colorAnchor struct{}

func (colorAnchor) Name() string { return "color" }

func (colorAnchor) Locate(g models.Grid, hints []bool, p Params) (models.HeaderSpan, bool) {
	limit := min(p.ScanRowLimit, g.RowCount(), len(hints))
	last := -1
	for r := 0; r < limit; r++ {
		if hints[r] {
			last = r
		}
	}
	if last < 0 {
		return models.HeaderSpan{}, false
	}
	return models.HeaderSpan{Start: 0, Rows: last + 1}, true
}

// densityScan picks the row with the most non-empty cells among the
// first ScanRowLimit rows as the header candidate, then backtracks one
// row when the preceding row contains a header keyword: a high-density
// row is often a child sub-header beneath a sparser parent title row.
type densityScan struct{}

func (densityScan) Name() string { return "density" }

func (densityScan) Locate(g models.Grid, _ []bool, p Params) (models.HeaderSpan, bool) {
	limit := min(p.ScanRowLimit, g.RowCount())
	best, bestCount := 0, 0
	for r := 0; r < limit; r++ {
		if c := nonEmptyCount(g.Row(r)); c > bestCount {
			best, bestCount = r, c
		}
	}
	if bestCount == 0 {
		// Nothing but blanks in the scanned window: no signal.
		return models.HeaderSpan{}, false
	}
	if best > 0 && containsKeyword(g.Row(best-1), p.Keywords) {
		best--
	}
	return models.HeaderSpan{Start: best, Rows: 1}, true
}

// typeTransition walks consecutive row pairs and places the header
// boundary at the last row that classifies as header-like while its
// successor does not. With no transition the first row is forced to be
// the header.
type typeTransition struct{}

func (typeTransition) Name() string { return "type-transition" }

func (typeTransition) Locate(g models.Grid, _ []bool, p Params) (models.HeaderSpan, bool) {
	limit := min(p.ScanRowLimit, g.RowCount())
	headerish := make([]bool, limit)
	for r := 0; r < limit; r++ {
		headerish[r] = headerLike(g.Row(r), p)
	}
	last := 0
	for i := 0; i+1 < limit; i++ {
		if headerish[i] && !headerish[i+1] {
			last = i
		}
	}
	return models.HeaderSpan{Start: 0, Rows: last + 1}, true
}

// headerLike reports whether a row has header characteristics: the
// fraction of its non-empty cells that are non-numeric text exceeds
// the configured ratio. A row with no non-empty cells is trivially
// header-like. Unparsable numeric-looking cells classify as text.
func headerLike(row []models.Cell, p Params) bool {
	textCount, numCount := 0, 0
	limit := min(len(row), p.ScanColLimit)
	for c := 0; c < limit; c++ {
		s := strings.TrimSpace(models.CellString(row[c]))
		if s == "" || strings.EqualFold(s, "nan") {
			continue
		}
		if _, err := strconv.ParseFloat(s, 64); err == nil {
			numCount++
		} else {
			textCount++
		}
	}
	total := textCount + numCount
	if total == 0 {
		return true
	}
	return float64(textCount)/float64(total) > p.TextRatio
}

func nonEmptyCount(row []models.Cell) int {
	count := 0
	for _, c := range row {
		if !models.IsEmpty(c) {
			count++
		}
	}
	return count
}

// containsKeyword reports whether any cell of the row contains one of
// the keywords, matched case-insensitively as a substring.
func containsKeyword(row []models.Cell, keywords []string) bool {
	for _, c := range row {
		s := strings.ToLower(models.CellString(c))
		if s == "" {
			continue
		}
		for _, k := range keywords {
			if k != "" && strings.Contains(s, strings.ToLower(k)) {
				return true
			}
		}
	}
	return false
}
