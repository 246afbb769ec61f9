package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osada9000/tablehead-go/pkg/tablehead/models"
)

func TestFillLeft(t *testing.T) {
	row := []models.Cell{"Checks", nil, "", "Safety", nil}
	assert.Equal(t, []string{"Checks", "Checks", "Checks", "Safety", "Safety"}, FillLeft(row))
}

func TestFillLeftSentinels(t *testing.T) {
	// "nan" and "Unnamed" artifacts count as empty and inherit the
	// value to their left.
	row := []models.Cell{"ID", "nan", "Unnamed: 2", "Name"}
	assert.Equal(t, []string{"ID", "ID", "ID", "Name"}, FillLeft(row))

	// A leading empty run stays empty.
	row = []models.Cell{nil, "A"}
	assert.Equal(t, []string{"", "A"}, FillLeft(row))
}

func TestStitchPairSingleRow(t *testing.T) {
	g := grid(
		[]models.Cell{"ID", "Name", "Score"},
		[]models.Cell{int64(5), nil, nil},
	)
	span := models.HeaderSpan{Start: 0, Rows: 1}

	// The next row has only one non-empty cell, so it is data, not a
	// child header row.
	paths, dataStart := StitchPair(g, span, DefaultParams())
	require.Equal(t, 1, dataStart)
	assert.Equal(t, [][]string{{"ID"}, {"Name"}, {"Score"}}, paths)
}

func TestStitchPairChildRow(t *testing.T) {
	g := grid(
		[]models.Cell{"ID", "Checks", nil, nil},
		[]models.Cell{nil, "Food", "Safety", "Hygiene"},
		[]models.Cell{int64(1), "Pass", "Pass", "Fail"},
	)
	span := models.HeaderSpan{Start: 0, Rows: 1}

	paths, dataStart := StitchPair(g, span, DefaultParams())
	require.Equal(t, 2, dataStart)
	assert.Equal(t, [][]string{
		{"ID"},
		{"Checks", "Food"},
		{"Checks", "Safety"},
		{"Checks", "Hygiene"},
	}, paths)
}

func TestStitchPairParentFallback(t *testing.T) {
	g := grid(
		[]models.Cell{"Checks", nil, nil},
		[]models.Cell{nil, "Safety", "Hygiene"},
	)
	span := models.HeaderSpan{Start: 0, Rows: 1}

	paths, _ := StitchPair(g, span, DefaultParams())
	// Column 0 has no child fragment of its own; the left-filled
	// parent "Checks" already covers it and is not repeated.
	assert.Equal(t, [][]string{
		{"Checks"},
		{"Checks", "Safety"},
		{"Checks", "Hygiene"},
	}, paths)
}

func TestStitchSpan(t *testing.T) {
	g := grid(
		[]models.Cell{"ID", "Checks", nil},
		[]models.Cell{nil, "Food", "Safety"},
		[]models.Cell{int64(1), "Pass", "Fail"},
	)
	span := models.HeaderSpan{Start: 0, Rows: 2}

	paths, dataStart := StitchSpan(g, span, DefaultParams())
	require.Equal(t, 2, dataStart)
	assert.Equal(t, [][]string{
		{"ID"},
		{"Checks", "Food"},
		{"Checks", "Safety"},
	}, paths)
}

func TestStitchSpanDeduplicatesRepeats(t *testing.T) {
	// A vertically merged cell repeats its value on every filled row;
	// the path keeps it once.
	g := grid(
		[]models.Cell{"ID", "Checks"},
		[]models.Cell{"ID", "Food"},
	)
	span := models.HeaderSpan{Start: 0, Rows: 2}

	paths, _ := StitchSpan(g, span, DefaultParams())
	assert.Equal(t, [][]string{{"ID"}, {"Checks", "Food"}}, paths)
}

func TestStitchSpanClampsToMaxHeaderRows(t *testing.T) {
	g := grid(
		[]models.Cell{"A"},
		[]models.Cell{"B"},
		[]models.Cell{"C"},
	)
	span := models.HeaderSpan{Start: 0, Rows: 3}

	p := DefaultParams()
	p.MaxHeaderRows = 1
	paths, dataStart := StitchSpan(g, span, p)
	assert.Equal(t, 1, dataStart)
	assert.Equal(t, [][]string{{"A"}}, paths)
}

func TestStitchSpanClampsToGrid(t *testing.T) {
	g := grid(
		[]models.Cell{"A", "B"},
	)
	span := models.HeaderSpan{Start: 0, Rows: 4}

	paths, dataStart := StitchSpan(g, span, DefaultParams())
	assert.Equal(t, 1, dataStart)
	assert.Equal(t, [][]string{{"A"}, {"B"}}, paths)
}
