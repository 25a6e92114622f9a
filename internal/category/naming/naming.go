// Package naming converts category names between the canonical storage form
// ("female_clothing") and the form shown to clients ("female clothing").
package naming

import "strings"

// ToStorage lower-cases name and joins whitespace separated words with "_".
// It reports false for an empty or blank name.
func ToStorage(name string) (string, bool) {
	words := strings.Fields(strings.ToLower(name))
	if len(words) == 0 {
		return "", false
	}
	return strings.Join(words, "_"), true
}

// ToDisplay is the inverse of ToStorage for canonical names. Names mixing
// spaces and underscores do not round-trip.
func ToDisplay(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	lower := strings.ToLower(name)
	if parts := strings.Split(lower, "_"); len(parts) > 1 {
		return strings.Join(parts, " "), true
	}
	return lower, true
}

// MustDisplay is ToDisplay for values read back from storage, where the name
// column is NOT NULL.
func MustDisplay(name string) string {
	display, _ := ToDisplay(name)
	return display
}
