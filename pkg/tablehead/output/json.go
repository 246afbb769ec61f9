// Package output serializes inference results for the CLI.
package output

import (
	"encoding/json"

	"github.com/osada9000/tablehead-go/pkg/tablehead/models"
)

// ToJSON serializes a value to JSON, optionally pretty-printed.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// TableToJSON serializes a loaded table.
func TableToJSON(t *models.Table, pretty bool) ([]byte, error) {
	return ToJSON(t, pretty)
}

// ResultToJSON serializes a bare inference result.
func ResultToJSON(r *models.InferenceResult, pretty bool) ([]byte, error) {
	return ToJSON(r, pretty)
}
