package main

import (
	"sort"
	"unicode/utf8"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// closestName returns the candidate nearest to name, or "" when every
// candidate would have to be rewritten entirely.
func closestName(name string, candidates []string) string {
	sorted := append([]string(nil), candidates...)
	sort.Strings(sorted)

	nameRunes := []rune(name)
	closest := ""
	closestDistance := len(nameRunes)
	for _, candidate := range sorted {
		distance := levenshtein.DistanceForStrings(
			nameRunes,
			[]rune(candidate),
			levenshtein.DefaultOptions,
		)

		// Skip candidates no closer than one already found, and candidates
		// whose whole text would be replaced.
		if distance < closestDistance && distance < utf8.RuneCountInString(candidate) {
			closest = candidate
			closestDistance = distance
		}
	}
	return closest
}
