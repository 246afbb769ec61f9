package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osada9000/tablehead-go/pkg/tablehead/models"
)

func grid(rows ...[]models.Cell) models.Grid {
	return models.Grid{Rows: rows}
}

func TestLocateEmptyGrid(t *testing.T) {
	span := Locate(models.Grid{}, nil, Params{})
	assert.Equal(t, models.HeaderSpan{Start: 0, Rows: 1}, span)
}

func TestLocateColorPrecedence(t *testing.T) {
	// Both heuristics would put the header elsewhere; the explicit
	// user marking wins regardless.
	g := grid(
		[]models.Cell{"Quarterly Audit", nil, nil},
		[]models.Cell{"A", "B", "C"},
		[]models.Cell{int64(1), int64(2), int64(3)},
	)
	// Density would pick row 1 and the type transition a two-row span;
	// marking only the first row pins the header there.
	hints := []bool{true, false, false}

	for _, mode := range []StitchMode{ModePair, ModeSpan} {
		p := DefaultParams()
		p.Mode = mode
		span := Locate(g, hints, p)
		assert.Equal(t, models.HeaderSpan{Start: 0, Rows: 1}, span, "mode %s", mode)
	}
}

func TestLocateColorHintsAbsent(t *testing.T) {
	g := grid(
		[]models.Cell{"A", "B", "C"},
		[]models.Cell{int64(1), int64(2), int64(3)},
	)

	// nil hints and all-false hints both fall through to the
	// heuristic strategies.
	p := DefaultParams()
	p.Mode = ModeSpan
	assert.Equal(t, models.HeaderSpan{Start: 0, Rows: 1}, Locate(g, nil, p))
	assert.Equal(t, models.HeaderSpan{Start: 0, Rows: 1}, Locate(g, []bool{false, false}, p))
}

func TestLocateDensityPicksDensestRow(t *testing.T) {
	g := grid(
		[]models.Cell{"Overview", nil, nil},
		[]models.Cell{"A", "B", "C"},
		[]models.Cell{int64(1), int64(2), int64(3)},
	)

	p := DefaultParams()
	p.Mode = ModePair
	// Rows 1 and 2 tie on density; the first occurrence wins.
	span := Locate(g, nil, p)
	assert.Equal(t, models.HeaderSpan{Start: 1, Rows: 1}, span)
}

func TestLocateDensityBacktrack(t *testing.T) {
	g := grid(
		[]models.Cell{"Audit Report", nil, nil},
		[]models.Cell{"Name", "Dept", nil},
		[]models.Cell{"Food", "Safety", "Hygiene"},
		[]models.Cell{"Alice", "QA", "Pass"},
	)

	p := DefaultParams()
	p.Mode = ModePair
	// Row 2 is densest, but row 1 carries the keyword "Name": the
	// sparser parent row is the true header start.
	span := Locate(g, nil, p)
	assert.Equal(t, models.HeaderSpan{Start: 1, Rows: 1}, span)
}

func TestLocateDensityCustomKeywords(t *testing.T) {
	g := grid(
		[]models.Cell{"Produkt", "Region", nil},
		[]models.Cell{"Nord", "Süd", "West"},
	)

	p := DefaultParams()
	p.Mode = ModePair
	p.Keywords = []string{"Produkt"}
	span := Locate(g, nil, p)
	assert.Equal(t, models.HeaderSpan{Start: 0, Rows: 1}, span)
}

func TestLocateDensityAllBlank(t *testing.T) {
	g := grid(
		[]models.Cell{nil, nil},
		[]models.Cell{"", ""},
	)

	p := DefaultParams()
	p.Mode = ModePair
	// No density signal at all: forced single header row.
	span := Locate(g, nil, p)
	assert.Equal(t, models.HeaderSpan{Start: 0, Rows: 1}, span)
}

func TestLocateTypeTransition(t *testing.T) {
	g := grid(
		[]models.Cell{"ID", "Name", "Checks", nil, nil},
		[]models.Cell{nil, nil, "Food", "Safety", "Hygiene"},
		[]models.Cell{int64(1), "Alice", "Pass", "Pass", "Fail"},
	)

	p := DefaultParams()
	p.Mode = ModeSpan
	span := Locate(g, nil, p)
	assert.Equal(t, models.HeaderSpan{Start: 0, Rows: 2}, span)
}

func TestLocateTypeTransitionAllNumeric(t *testing.T) {
	g := grid(
		[]models.Cell{int64(1), int64(2)},
		[]models.Cell{int64(3), int64(4)},
	)

	p := DefaultParams()
	p.Mode = ModeSpan
	// No header detected: row 0 is forced to be the header.
	span := Locate(g, nil, p)
	assert.Equal(t, models.HeaderSpan{Start: 0, Rows: 1}, span)
}

func TestHeaderLike(t *testing.T) {
	p := DefaultParams()

	assert.True(t, headerLike([]models.Cell{"A", "B", "C"}, p))
	assert.True(t, headerLike([]models.Cell{nil, nil}, p), "blank row is trivially header-like")
	assert.True(t, headerLike([]models.Cell{"nan", "Title"}, p), "sentinels are ignored")
	assert.False(t, headerLike([]models.Cell{int64(1), "Alice", int64(3), int64(4), int64(5)}, p))
	// Unparsable numeric-looking cells classify as text.
	assert.True(t, headerLike([]models.Cell{"12a", "3.4.5"}, p))
}
