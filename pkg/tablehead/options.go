// Package tablehead infers the header structure of raw spreadsheet
// grids: which rows constitute the logical header, where the data body
// begins, and one flat ordered sequence of clean column names that
// represents possibly-multi-level headers.
package tablehead

import (
	"io"
	"log/slog"

	"github.com/osada9000/tablehead-go/pkg/tablehead/infer"
)

// Options configures inference and workbook loading.
type Options struct {
	// Infer holds the heuristic tuning parameters; zero values fall
	// back to infer.DefaultParams.
	Infer infer.Params
	// Sheet selects the worksheet to load. Empty means the active
	// sheet.
	Sheet string
	// Logger receives loader diagnostics. Nil means discard.
	Logger *slog.Logger
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		Infer: infer.DefaultParams(),
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
