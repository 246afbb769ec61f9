package models

// InferenceResult is the outcome of header inference over a grid.
type InferenceResult struct {
	// ColumnNames is the flat ordered sequence of cleaned column
	// labels, one per grid column.
	ColumnNames []string `json:"column_names"`
	// DataStart is the 0-based index of the first data body row,
	// one past the last header row consumed.
	DataStart int `json:"data_start"`
}

// Table is a header-less data body with its inferred column names,
// as produced by the workbook loader.
type Table struct {
	// Sheet is the worksheet the table was read from.
	Sheet string `json:"sheet"`
	// Columns holds the inferred column names.
	Columns []string `json:"columns"`
	// Rows holds the data body, one slice of cells per row.
	Rows [][]Cell `json:"rows"`
	// DataStart is the 0-based grid row the body starts at.
	DataStart int `json:"data_start"`
}
