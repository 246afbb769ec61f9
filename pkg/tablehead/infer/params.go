// Package infer implements the header inference heuristics: locating
// the header span, stitching multi-row headers into per-column label
// paths, and normalizing the final column names.
package infer

// StitchMode selects how multi-row headers collapse into labels.
type StitchMode string

const (
	// ModePair keeps the deepest fragment of each column path: the
	// child label wins, with the parent label as fallback.
	ModePair StitchMode = "pair"
	// ModeSpan joins all distinct fragments of a column path
	// top-to-bottom, producing multi-level labels such as
	// "Knowledge Check - Food Safety".
	ModeSpan StitchMode = "span"
)

// Params holds tuning parameters for the inference heuristics.
// Zero values fall back to the defaults.
type Params struct {
	// ScanRowLimit bounds how many leading rows the locator
	// strategies examine.
	ScanRowLimit int
	// ScanColLimit bounds how many leading columns the
	// type-transition strategy examines per row.
	ScanColLimit int
	// TextRatio is the fraction of non-empty cells that must be
	// non-numeric text for a row to classify as header-like.
	TextRatio float64
	// Keywords are header-indicating labels used by the backtrack
	// rule. Header vocabulary is domain-specific, so callers should
	// override this for their locale. A non-nil empty slice disables
	// backtracking.
	Keywords []string
	// Joiner separates fragments of multi-level labels in span mode.
	Joiner string
	// MaxHeaderRows caps the header span consumed in span mode.
	MaxHeaderRows int
	// Mode selects the stitch rule; span mode also selects the
	// type-transition locator over the density locator.
	Mode StitchMode
}

// DefaultParams returns the default inference parameters.
func DefaultParams() Params {
	return Params{
		ScanRowLimit:  15,
		ScanColLimit:  20,
		TextRatio:     0.8,
		Keywords:      DefaultKeywords(),
		Joiner:        " - ",
		MaxHeaderRows: 5,
		Mode:          ModeSpan,
	}
}

// DefaultKeywords returns the default backtrack keyword set.
func DefaultKeywords() []string {
	return []string{"Name", "ID", "No.", "Dept", "Department", "Category", "姓名", "部门", "序号", "名称"}
}

// withDefaults fills zero-valued fields with the defaults so that a
// literal Params{} behaves sensibly.
func (p Params) withDefaults() Params {
	d := DefaultParams()
	if p.ScanRowLimit <= 0 {
		p.ScanRowLimit = d.ScanRowLimit
	}
	if p.ScanColLimit <= 0 {
		p.ScanColLimit = d.ScanColLimit
	}
	if p.TextRatio <= 0 {
		p.TextRatio = d.TextRatio
	}
	if p.Keywords == nil {
		p.Keywords = d.Keywords
	}
	if p.Joiner == "" {
		p.Joiner = d.Joiner
	}
	if p.MaxHeaderRows <= 0 {
		p.MaxHeaderRows = d.MaxHeaderRows
	}
	if p.Mode == "" {
		p.Mode = d.Mode
	}
	return p
}
