// Package transform executes caller-supplied Starlark scripts against
// an inferred table inside a restricted interpreter. The script sees
// an explicit global surface only: "columns" (list of column names)
// and "rows" (list of dicts keyed by column name). Binding "out"
// replaces the data body; binding "result" returns a computed value.
// There are no filesystem, network or process builtins.
package transform

import (
	"errors"
	"fmt"

	"go.starlark.net/starlark"

	"github.com/osada9000/tablehead-go/pkg/tablehead/models"
)

// DefaultMaxSteps is the default execution step budget per script.
const DefaultMaxSteps = 500_000

// ErrNoScript indicates an empty transform script.
var ErrNoScript = errors.New("empty transform script")

// Engine runs table transforms.
type Engine struct {
	// MaxSteps bounds interpreter work per script.
	// Zero means DefaultMaxSteps.
	MaxSteps uint64
}

// New returns an engine with the default step budget.
func New() *Engine {
	return &Engine{MaxSteps: DefaultMaxSteps}
}

// Result is the outcome of applying a script to a table.
type Result struct {
	// Rows is the data body after the transform. When the script did
	// not bind "out" this is the input body unchanged.
	Rows [][]models.Cell
	// Value is the Go value bound to "result" by the script, or nil.
	Value any
}

// Apply executes a script against the table and returns the
// transformed body. The input table is not mutated.
func (e *Engine) Apply(t *models.Table, script string) (*Result, error) {
	if script == "" {
		return nil, ErrNoScript
	}

	steps := e.MaxSteps
	if steps == 0 {
		steps = DefaultMaxSteps
	}

	thread := &starlark.Thread{
		Name:  "transform",
		Print: func(_ *starlark.Thread, _ string) {},
	}
	thread.SetMaxExecutionSteps(steps)

	predeclared := starlark.StringDict{
		"columns": columnsValue(t.Columns),
		"rows":    rowsValue(t),
	}

	globals, err := starlark.ExecFile(thread, "transform.star", script, predeclared)
	if err != nil {
		return nil, fmt.Errorf("transform: %w", err)
	}

	res := &Result{Rows: t.Rows}
	if v, ok := globals["out"]; ok {
		rows, err := rowsFromStarlark(v, t.Columns)
		if err != nil {
			return nil, fmt.Errorf("transform: %w", err)
		}
		res.Rows = rows
	}
	if v, ok := globals["result"]; ok {
		value, err := toGo(v)
		if err != nil {
			return nil, fmt.Errorf("transform: %w", err)
		}
		res.Value = value
	}
	return res, nil
}

// columnsValue exposes the column names as a Starlark list.
func columnsValue(columns []string) *starlark.List {
	elems := make([]starlark.Value, len(columns))
	for i, c := range columns {
		elems[i] = starlark.String(c)
	}
	return starlark.NewList(elems)
}

// rowsValue exposes the data body as a list of dicts keyed by column
// name. Cells beyond a ragged row's length appear as None.
func rowsValue(t *models.Table) *starlark.List {
	elems := make([]starlark.Value, len(t.Rows))
	for i, row := range t.Rows {
		d := starlark.NewDict(len(t.Columns))
		for j, col := range t.Columns {
			var cell models.Cell
			if j < len(row) {
				cell = row[j]
			}
			_ = d.SetKey(starlark.String(col), cellValue(cell))
		}
		elems[i] = d
	}
	return starlark.NewList(elems)
}

// rowsFromStarlark converts the script's "out" binding back to a data
// body, ordering each row's cells by the table's column sequence.
func rowsFromStarlark(v starlark.Value, columns []string) ([][]models.Cell, error) {
	list, ok := v.(*starlark.List)
	if !ok {
		return nil, fmt.Errorf("out must be a list, got %s", v.Type())
	}

	out := make([][]models.Cell, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		d, ok := list.Index(i).(*starlark.Dict)
		if !ok {
			return nil, fmt.Errorf("out[%d] must be a dict, got %s", i, list.Index(i).Type())
		}
		row := make([]models.Cell, len(columns))
		for j, col := range columns {
			sv, found, err := d.Get(starlark.String(col))
			if err != nil || !found {
				continue
			}
			gv, err := toGo(sv)
			if err != nil {
				return nil, fmt.Errorf("out[%d][%q]: %w", i, col, err)
			}
			row[j] = gv
		}
		out = append(out, row)
	}
	return out, nil
}
