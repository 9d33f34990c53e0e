package normalize

import (
	"strings"
	"unicode/utf8"

	"foodrisk/internal/domain"
)

// DefaultSuggestThreshold is the minimum similarity for a suggestion to be offered.
const DefaultSuggestThreshold = 0.8

// Candidates lists the canonical values a raw value of kind may be mapped to.
func Candidates(kind domain.MappingKind) []string {
	switch kind {
	case domain.KindHazard:
		return hazardRules.Names()
	case domain.KindCountry:
		names := countryRules.Names()
		for c := range knownCountries {
			names = append(names, titleCase(c))
		}
		return dedupe(names)
	case domain.KindCategory:
		return categoryRules.Names()
	}
	return nil
}

// Suggest returns the candidate most similar to raw when the similarity reaches threshold.
func Suggest(raw string, candidates []string, threshold float64) (string, float64, bool) {
	input := strings.ToLower(strings.TrimSpace(raw))
	best, bestScore := "", 0.0
	for _, c := range candidates {
		score := similarity(input, strings.ToLower(c))
		if score > bestScore && score >= threshold {
			best, bestScore = c, score
		}
	}
	return best, bestScore, best != ""
}

// similarity is 1 minus the Levenshtein distance normalized by the longer length.
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	return 1 - float64(prev[len(rb)])/float64(longest)
}
