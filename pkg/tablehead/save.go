package tablehead

import (
	"os"
	"path/filepath"
)

// Save writes the workbook back to the path it was opened from.
func (w *Workbook) Save() error {
	if err := w.f.Save(); err != nil {
		return NewLoadError(filepath.Base(w.path), "save", err)
	}
	w.logger.Info("workbook saved", "path", w.path)
	return nil
}

// StagedSave is a workbook write staged to a temporary sibling file,
// to be either confirmed (replacing the target) or discarded.
type StagedSave struct {
	// Path is the location of the staged copy.
	Path   string
	target string
}

// Stage writes the current workbook state to a temporary file next to
// the original. The original is untouched until Confirm.
func (w *Workbook) Stage() (*StagedSave, error) {
	tmp, err := os.CreateTemp(filepath.Dir(w.path), ".tablehead-*.xlsx")
	if err != nil {
		return nil, NewLoadError(filepath.Base(w.path), "stage", err)
	}
	tmpPath := tmp.Name()
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return nil, NewLoadError(filepath.Base(w.path), "stage", err)
	}

	if err := w.f.SaveAs(tmpPath); err != nil {
		os.Remove(tmpPath)
		return nil, NewLoadError(filepath.Base(w.path), "stage", err)
	}

	w.logger.Info("workbook staged", "path", tmpPath)
	return &StagedSave{Path: tmpPath, target: w.path}, nil
}

// Confirm replaces the original file with the staged copy.
func (s *StagedSave) Confirm() error {
	return os.Rename(s.Path, s.target)
}

// Discard removes the staged copy, leaving the original untouched.
// Discarding twice is harmless.
func (s *StagedSave) Discard() error {
	err := os.Remove(s.Path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
