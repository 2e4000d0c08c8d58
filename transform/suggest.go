package transform

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Nearest returns the candidate closest to name by edit distance, for
// use in unknown-transform diagnostics. Candidates further than half
// of name's length are not close enough; Nearest returns "" when none
// qualify.
func Nearest(name string, candidates []string) string {
	if name == "" {
		return ""
	}
	dmp := diffpatch.New()
	best := ""
	bestDist := len(name)/2 + 1
	for _, c := range candidates {
		diffs := dmp.DiffMain(name, c, false)
		dist := dmp.DiffLevenshtein(diffs)
		if dist < bestDist {
			best, bestDist = c, dist
		}
	}
	return best
}
