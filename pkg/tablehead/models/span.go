package models

// HeaderSpan is the contiguous set of rows, starting at a given index,
// that together constitute the column headers.
type HeaderSpan struct {
	// Start is the 0-based index of the first header row.
	Start int `json:"start"`
	// Rows is the number of header rows (at least 1).
	Rows int `json:"rows"`
}

// End returns the 0-based index of the first row after the span.
func (s HeaderSpan) End() int {
	return s.Start + s.Rows
}
