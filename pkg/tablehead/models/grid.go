// Package models defines data structures for header inference.
package models

import (
	"strconv"
	"strings"
)

// Cell is a single grid value: nil when empty, otherwise a string,
// int64 or float64 scalar.
type Cell = any

// Grid is the raw two-dimensional matrix of spreadsheet cell values
// before header interpretation. Rows may be ragged; missing trailing
// cells are treated as empty.
type Grid struct {
	Rows [][]Cell `json:"rows"`
}

// NewGrid builds a Grid from raw string rows as returned by a
// spreadsheet reader. Empty strings become empty cells and
// numeric-looking strings are parsed to their scalar type.
func NewGrid(rows [][]string) Grid {
	out := make([][]Cell, len(rows))
	for i, row := range rows {
		cells := make([]Cell, len(row))
		for j, s := range row {
			cells[j] = ParseCell(s)
		}
		out[i] = cells
	}
	return Grid{Rows: out}
}

// RowCount returns the number of rows in the grid.
func (g Grid) RowCount() int {
	return len(g.Rows)
}

// ColumnCount returns the grid's column count, the length of its
// longest row.
func (g Grid) ColumnCount() int {
	max := 0
	for _, row := range g.Rows {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}

// Cell returns the cell at (row, col), or nil when the position is
// outside the stored data.
func (g Grid) Cell(row, col int) Cell {
	if row < 0 || row >= len(g.Rows) {
		return nil
	}
	r := g.Rows[row]
	if col < 0 || col >= len(r) {
		return nil
	}
	return r[col]
}

// Row returns a copy of the given row padded to the grid's column
// count. An out-of-range index yields a row of empty cells.
func (g Grid) Row(row int) []Cell {
	out := make([]Cell, g.ColumnCount())
	if row < 0 || row >= len(g.Rows) {
		return out
	}
	copy(out, g.Rows[row])
	return out
}

// ParseCell converts a raw string cell to its scalar value.
// Returns int64 for integers, float64 for decimals, nil for empty
// strings, or the original string.
func ParseCell(s string) Cell {
	if s == "" {
		return nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// CellString renders a cell as text. Empty cells render as "".
func CellString(c Cell) string {
	switch v := c.(type) {
	case nil:
		return ""
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// IsEmpty reports whether a cell carries no value. Whitespace-only
// strings count as empty.
func IsEmpty(c Cell) bool {
	if c == nil {
		return true
	}
	if s, ok := c.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}
