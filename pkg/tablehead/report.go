package tablehead

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/xuri/excelize/v2"

	"github.com/osada9000/tablehead-go/pkg/tablehead/models"
)

// ColumnStats summarizes one numeric column of a table.
type ColumnStats struct {
	Column string  `json:"column"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Summarize computes summary statistics for every column of the table
// that holds at least one numeric value. Non-numeric cells are
// skipped, not coerced.
func Summarize(t *models.Table) []ColumnStats {
	var out []ColumnStats
	for i, name := range t.Columns {
		var vals stats.Float64Data
		for _, row := range t.Rows {
			if i >= len(row) {
				continue
			}
			if v, ok := numericCell(row[i]); ok {
				vals = append(vals, v)
			}
		}
		if len(vals) == 0 {
			continue
		}

		mean, _ := vals.Mean()
		median, _ := vals.Median()
		lo, _ := vals.Min()
		hi, _ := vals.Max()
		out = append(out, ColumnStats{
			Column: name,
			Count:  len(vals),
			Mean:   mean,
			Median: median,
			Min:    lo,
			Max:    hi,
		})
	}
	return out
}

// WriteReport appends a timestamped statistics sheet to the workbook
// without touching the original data, and returns the sheet name.
func (w *Workbook) WriteReport(title string, rows [][]models.Cell) (string, error) {
	name := fmt.Sprintf("Stat_%d", time.Now().Unix())
	if _, err := w.f.NewSheet(name); err != nil {
		return "", NewLoadError(filepath.Base(w.path), "report", err)
	}

	content := [][]models.Cell{
		{title},
		{"Generated: " + time.Now().Format(time.RFC1123)},
		{},
	}
	content = append(content, rows...)

	for i := range content {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return "", NewLoadError(filepath.Base(w.path), "report", err)
		}
		if err := w.f.SetSheetRow(name, cell, &content[i]); err != nil {
			return "", NewLoadError(filepath.Base(w.path), "report", err)
		}
	}

	w.logger.Info("report sheet written", "sheet", name)
	return name, nil
}

// WriteSummary writes a statistics report sheet for the table's
// numeric columns.
func (w *Workbook) WriteSummary(t *models.Table) (string, error) {
	rows := [][]models.Cell{
		{"Column", "Count", "Mean", "Median", "Min", "Max"},
	}
	for _, s := range Summarize(t) {
		rows = append(rows, []models.Cell{s.Column, int64(s.Count), s.Mean, s.Median, s.Min, s.Max})
	}
	return w.WriteReport("Summary for "+t.Sheet, rows)
}

// LogError appends a timestamped error sheet with the given trace
// message in red. Failures are swallowed: error reporting must never
// mask the error being reported. Returns the sheet name, or "" if the
// sheet could not be created.
func (w *Workbook) LogError(msg string) string {
	name := fmt.Sprintf("Error_%d", time.Now().Unix())
	if _, err := w.f.NewSheet(name); err != nil {
		w.logger.Warn("error sheet not created", "err", err)
		return ""
	}
	if err := w.f.SetCellValue(name, "A1", "Trace: "+msg); err != nil {
		return name
	}
	if styleID, err := w.f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "FF0000"},
	}); err == nil {
		_ = w.f.SetCellStyle(name, "A1", "A1", styleID)
	}
	return name
}

// numericCell extracts a float64 from a cell when it holds a number
// or a numeric-looking string.
func numericCell(c models.Cell) (float64, bool) {
	switch v := c.(type) {
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	case float64:
		return v, true
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}
