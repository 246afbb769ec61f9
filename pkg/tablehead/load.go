package tablehead

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/osada9000/tablehead-go/pkg/tablehead/infer"
	"github.com/osada9000/tablehead-go/pkg/tablehead/models"
)

// Workbook wraps an open spreadsheet file and exposes the loading,
// reporting and write-back collaborators around the inference core.
type Workbook struct {
	f      *excelize.File
	path   string
	opts   Options
	logger *slog.Logger
}

// Open opens a workbook for inference.
func Open(path string, opts Options) (*Workbook, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewLoadError(filepath.Base(path), "open", err)
	}

	return &Workbook{
		f:      f,
		path:   path,
		opts:   opts,
		logger: opts.logger(),
	}, nil
}

// Load opens a workbook, infers its table and closes the file again.
func Load(path string, opts Options) (*models.Table, error) {
	w, err := Open(path, opts)
	if err != nil {
		return nil, err
	}
	defer w.Close()
	return w.Table()
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.f.Close()
}

// Path returns the path the workbook was opened from.
func (w *Workbook) Path() string {
	return w.path
}

// SheetName resolves the worksheet to read: the configured sheet if
// set, otherwise the workbook's active sheet.
func (w *Workbook) SheetName() (string, error) {
	if w.opts.Sheet != "" {
		return w.opts.Sheet, nil
	}
	name := w.f.GetSheetName(w.f.GetActiveSheetIndex())
	if name == "" {
		list := w.f.GetSheetList()
		if len(list) == 0 {
			return "", ErrNoSheet
		}
		name = list[0]
	}
	return name, nil
}

// Grid reads the worksheet's used range into an immutable grid
// snapshot, trimming trailing rows and columns that hold no values.
func (w *Workbook) Grid() (models.Grid, error) {
	sheet, err := w.SheetName()
	if err != nil {
		return models.Grid{}, err
	}

	rows, err := w.f.GetRows(sheet)
	if err != nil {
		return models.Grid{}, NewLoadError(filepath.Base(w.path), "grid", err)
	}

	g := trimGrid(models.NewGrid(rows))
	w.logger.Debug("grid loaded", "sheet", sheet, "rows", g.RowCount(), "columns", g.ColumnCount())
	return g, nil
}

// ColorHints scans the first column of the leading rows for a
// non-default background fill, the explicit user marker for header
// rows. Style lookups that fail simply yield no hint, so inference
// silently falls back to the heuristic strategies.
func (w *Workbook) ColorHints() []bool {
	sheet, err := w.SheetName()
	if err != nil {
		return nil
	}

	limit := w.opts.Infer.ScanRowLimit
	if limit <= 0 {
		limit = infer.DefaultParams().ScanRowLimit
	}

	hints := make([]bool, limit)
	for r := 1; r <= limit; r++ {
		cell, err := excelize.CoordinatesToCellName(1, r)
		if err != nil {
			continue
		}
		styleID, err := w.f.GetCellStyle(sheet, cell)
		if err != nil {
			w.logger.Debug("cell style unavailable", "cell", cell, "err", err)
			continue
		}
		style, err := w.f.GetStyle(styleID)
		if err != nil || style == nil {
			continue
		}
		hints[r-1] = markedFill(style.Fill)
	}
	return hints
}

// Table infers the header structure of the worksheet and slices the
// grid into a header-less data body with assigned column names.
func (w *Workbook) Table() (*models.Table, error) {
	sheet, err := w.SheetName()
	if err != nil {
		return nil, err
	}
	g, err := w.Grid()
	if err != nil {
		return nil, err
	}

	res := Infer(g, w.ColorHints(), w.opts.Infer)
	w.logger.Info("header inferred", "sheet", sheet, "columns", len(res.ColumnNames), "data_start", res.DataStart)

	var body [][]models.Cell
	for r := res.DataStart; r < g.RowCount(); r++ {
		body = append(body, g.Row(r))
	}

	return &models.Table{
		Sheet:     sheet,
		Columns:   res.ColumnNames,
		Rows:      body,
		DataStart: res.DataStart,
	}, nil
}

// trimGrid drops trailing all-empty rows and columns so the grid
// matches the sheet's effective used range.
func trimGrid(g models.Grid) models.Grid {
	maxRow, maxCol := -1, -1
	for r, row := range g.Rows {
		for c, cell := range row {
			if !models.IsEmpty(cell) {
				if r > maxRow {
					maxRow = r
				}
				if c > maxCol {
					maxCol = c
				}
			}
		}
	}
	if maxRow < 0 {
		return models.Grid{}
	}

	rows := make([][]models.Cell, maxRow+1)
	for r := 0; r <= maxRow; r++ {
		row := g.Rows[r]
		if len(row) > maxCol+1 {
			row = row[:maxCol+1]
		}
		rows[r] = row
	}
	return models.Grid{Rows: rows}
}

// markedFill reports whether a fill style is a non-default background:
// any patterned fill in a color other than white.
func markedFill(fill excelize.Fill) bool {
	if fill.Pattern == 0 {
		return false
	}
	for _, c := range fill.Color {
		switch strings.ToUpper(strings.TrimPrefix(c, "#")) {
		case "", "FFFFFF", "FFFFFFFF":
		default:
			return true
		}
	}
	return false
}
