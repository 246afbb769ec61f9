package tablehead

import (
	"github.com/osada9000/tablehead-go/pkg/tablehead/infer"
	"github.com/osada9000/tablehead-go/pkg/tablehead/models"
)

// Infer runs the full inference pipeline over an in-memory grid:
// locate the header span, stitch the header rows into per-column
// label paths, and normalize the labels into the final column names.
//
// hints is an optional per-row flag array, aligned by row index,
// marking rows whose first cell carries a user-applied background
// color; pass nil when no color information is available.
//
// Infer is pure and deterministic: it performs no I/O, never fails,
// and is safe to call concurrently over independent grids. An empty
// grid yields the degenerate result of no column names and a data
// start of 1.
func Infer(g models.Grid, hints []bool, p infer.Params) models.InferenceResult {
	span := infer.Locate(g, hints, p)

	var paths [][]string
	var dataStart int
	if p.Mode == infer.ModePair {
		paths, dataStart = infer.StitchPair(g, span, p)
	} else {
		paths, dataStart = infer.StitchSpan(g, span, p)
	}

	return models.InferenceResult{
		ColumnNames: infer.Normalize(paths, p),
		DataStart:   dataStart,
	}
}
