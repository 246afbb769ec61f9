package tablehead

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrNoSheet indicates the workbook has no usable worksheet.
var ErrNoSheet = errors.New("no worksheet found")

// LoadError represents an error while loading or writing a workbook.
// The inference core itself never produces errors: it is total over
// its input domain and degrades to default results instead.
type LoadError struct {
	Book  string
	Stage string // "open", "grid", "report", "stage", "save"
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("workbook %q (%s): %v", e.Book, e.Stage, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(book, stage string, err error) *LoadError {
	return &LoadError{
		Book:  book,
		Stage: stage,
		Err:   err,
	}
}
