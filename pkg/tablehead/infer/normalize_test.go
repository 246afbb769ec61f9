package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSpanJoin(t *testing.T) {
	paths := [][]string{
		{"ID"},
		{"Checks", "Food"},
		{"Checks", "Safety"},
	}
	names := Normalize(paths, DefaultParams())
	assert.Equal(t, []string{"ID", "Checks - Food", "Checks - Safety"}, names)
}

func TestNormalizePairDeepestWins(t *testing.T) {
	p := DefaultParams()
	p.Mode = ModePair
	paths := [][]string{
		{"ID"},
		{"Checks", "Food"},
		{"Checks"},
	}
	names := Normalize(paths, p)
	assert.Equal(t, []string{"ID", "Food", "Checks"}, names)
}

func TestNormalizeStripsWhitespace(t *testing.T) {
	names := Normalize([][]string{{" Total\nAmount "}}, DefaultParams())
	assert.Equal(t, []string{"TotalAmount"}, names)
}

func TestNormalizeUnnamedPlaceholders(t *testing.T) {
	paths := [][]string{
		{"ID"},
		nil,
		{},
		{"Name"},
	}
	names := Normalize(paths, DefaultParams())
	assert.Equal(t, []string{"ID", "Unnamed_1", "Unnamed_2", "Name"}, names)
}

func TestNormalizeCustomJoiner(t *testing.T) {
	p := DefaultParams()
	p.Joiner = "/"
	names := Normalize([][]string{{"Checks", "Food"}}, p)
	assert.Equal(t, []string{"Checks/Food"}, names)
}

func TestNormalizeKeepsDuplicates(t *testing.T) {
	names := Normalize([][]string{{"Total"}, {"Total"}}, DefaultParams())
	assert.Equal(t, []string{"Total", "Total"}, names)
}
