// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildmatch

package wildmatch

import "strings"

// substringScore is the fixed score of a fuzzy match found as a literal substring.
const substringScore = 0.9

// Distance returns the Levenshtein distance between a and b counted in runes.
func Distance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}

	if len(rb) == 0 {
		return len(ra)
	}

	table := make([][]int, len(ra)+1)
	for i := range table {
		table[i] = make([]int, len(rb)+1)
		table[i][0] = i
	}

	for j := 0; j <= len(rb); j++ {
		table[0][j] = j
	}

	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			table[i][j] = min(
				table[i-1][j]+1,
				table[i][j-1]+1,
				table[i-1][j-1]+cost,
			)
		}
	}

	return table[len(ra)][len(rb)]
}

// Similarity returns 1 - Distance(a, b) / max(len(a), len(b)) in runes.
func Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}

	la := len([]rune(a))
	lb := len([]rune(b))
	if la == 0 || lb == 0 {
		return 0.0
	}

	return 1.0 - float64(Distance(a, b))/float64(max(la, lb))
}

// FuzzyMatch scores input against a wildcard pattern by edit distance.
//
// Wildcard and negation glyphs are removed from pattern first. An empty cleaned
// pattern matches with score 1. Input containing the cleaned pattern matches with
// a fixed score of 0.9 regardless of threshold. Otherwise the similarity score
// is compared against threshold.
func FuzzyMatch(input, pattern string, threshold float64) (bool, float64) {
	cleaned := stripWildcards(pattern, true)
	if cleaned == "" {
		return true, 1.0
	}

	if strings.Contains(input, cleaned) {
		return true, substringScore
	}

	score := Similarity(input, cleaned)
	return score >= threshold, score
}

// stripWildcards removes "*" and "?" glyphs, and "!" too when withNegation is set.
func stripWildcards(pattern string, withNegation bool) string {
	cutset := "*?"
	if withNegation {
		cutset = "*?!"
	}

	if !strings.ContainsAny(pattern, cutset) {
		return pattern
	}

	var b strings.Builder
	b.Grow(len(pattern))
	for _, r := range pattern {
		if strings.ContainsRune(cutset, r) {
			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}
