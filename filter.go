// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildmatch

package wildmatch

import (
	"fmt"
	"time"
)

// Filter returns inputs matching the pattern set, preserving input order and duplicates.
func Filter(inputs, patterns []string, opts Options) ([]string, error) {
	out := make([]string, 0, len(inputs))
	if len(inputs) == 0 || len(patterns) == 0 {
		return out, nil
	}

	e := NewEngine(opts)
	for _, input := range inputs {
		res, err := e.MatchMultiple(input, patterns)
		if err != nil {
			return nil, err
		}

		if res.Matched {
			out = append(out, input)
		}
	}

	return out, nil
}

// Any reports whether at least one input matches the pattern set.
func Any(inputs, patterns []string, opts Options) (bool, error) {
	if len(inputs) == 0 || len(patterns) == 0 {
		return false, nil
	}

	e := NewEngine(opts)
	for _, input := range inputs {
		res, err := e.MatchMultiple(input, patterns)
		if err != nil {
			return false, err
		}

		if res.Matched {
			return true, nil
		}
	}

	return false, nil
}

// MatchDetailed returns one result per matching input with timing metadata.
func MatchDetailed(inputs, patterns []string, opts Options) ([]MatchResult, error) {
	out := make([]MatchResult, 0, len(inputs))
	if len(inputs) == 0 || len(patterns) == 0 {
		return out, nil
	}

	e := NewEngine(opts)
	for _, input := range inputs {
		start := time.Now()
		res, err := e.MatchMultiple(input, patterns)
		if err != nil {
			return nil, err
		}

		if !res.Matched {
			continue
		}

		res.Metadata = &Metadata{
			Options:  e.Options(),
			Duration: time.Since(start),
		}
		out = append(out, res)
	}

	return out, nil
}

// FuzzyFilter is MatchDetailed with fuzzy matching at threshold.
//
// A threshold outside [0,1] selects DefaultFuzzyThreshold.
func FuzzyFilter(inputs, patterns []string, threshold float64, opts Options) ([]MatchResult, error) {
	opts.FuzzyMatch = true
	opts.FuzzyThreshold = Threshold(threshold)
	return MatchDetailed(inputs, patterns, opts)
}

// CaseInsensitiveFilter is Filter with case folding forced on.
func CaseInsensitiveFilter(inputs, patterns []string, opts Options) ([]string, error) {
	opts.CaseSensitive = false
	return Filter(inputs, patterns, opts)
}

// SubstringFilter is Filter with partial matching forced on.
func SubstringFilter(inputs, patterns []string, opts Options) ([]string, error) {
	opts.PartialMatch = true
	return Filter(inputs, patterns, opts)
}

// SegmentFilter is Filter with segment matching on separator.
func SegmentFilter(inputs, patterns []string, separator string, opts Options) ([]string, error) {
	opts.Separator = separator
	return Filter(inputs, patterns, opts)
}

// ClearCache empties the package default pattern cache.
func ClearCache() {
	defaultCache.Clear()
}

// Stats reports the package default pattern cache state.
func Stats() CacheStats {
	return defaultCache.Stats()
}

// Validate checks a pattern value of any type.
func Validate(pattern any) ValidationResult {
	s, ok := pattern.(string)
	if !ok {
		return ValidationResult{Err: fmt.Errorf("%w: %T", ErrInvalidPatternType, pattern)}
	}

	if err := ValidatePattern(s); err != nil {
		return ValidationResult{Err: err}
	}

	return ValidationResult{Valid: true}
}
