package ingest

import "strings"

// Titles containing any of these are not billable meetings. The two
// spellings of cancelled both appear in real exports.
var excludedTitleParts = []string{"lunch", "annual leave", "cancelled", "canceled"}

// ValidTitle reports whether a meeting title represents a billable, real
// meeting: non-empty after trimming, and free of the exclusion substrings
// (case-insensitive). Empty titles are rejected here too, which keeps them
// out of every downstream table.
func ValidTitle(title string) bool {
	t := strings.ToLower(strings.TrimSpace(title))
	if t == "" {
		return false
	}
	for _, part := range excludedTitleParts {
		if strings.Contains(t, part) {
			return false
		}
	}
	return true
}
