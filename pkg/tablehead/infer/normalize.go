package infer

import (
	"fmt"
	"strings"
)

// Normalize flattens column label paths into the final ordered column
// names. In span mode fragments are joined with the configured joiner;
// in pair mode the deepest fragment wins (the stitcher has already
// applied the parent fallback). Labels are stripped of embedded
// newlines and surrounding whitespace, and empty results get a
// positional "Unnamed_<index>" placeholder.
//
// Uniqueness is not actively enforced: two columns that legitimately
// stitch to the same non-empty label are both kept as-is.
func Normalize(paths [][]string, p Params) []string {
	p = p.withDefaults()
	names := make([]string, len(paths))
	for i, path := range paths {
		var label string
		if p.Mode == ModePair {
			if len(path) > 0 {
				label = path[len(path)-1]
			}
		} else {
			label = strings.Join(path, p.Joiner)
		}
		label = strings.ReplaceAll(label, "\n", "")
		label = strings.TrimSpace(label)
		if label == "" {
			label = fmt.Sprintf("Unnamed_%d", i)
		}
		names[i] = label
	}
	return names
}
