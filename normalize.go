// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildmatch

package wildmatch

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize folds s according to options.
//
// Invalid UTF-8 runs become U+FFFD. Case is folded unless CaseSensitive is set.
// With AccentInsensitive the string is NFD-decomposed and combining diacritical
// marks (U+0300..U+036F) are removed.
func Normalize(s string, opts Options) string {
	s = toValidUTF8(s)

	if !opts.CaseSensitive {
		s = strings.ToLower(s)
	}

	if opts.AccentInsensitive {
		s = stripAccents(s)
	}

	return s
}

// toValidUTF8 replaces each run of invalid UTF-8 bytes with U+FFFD.
func toValidUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}

	return strings.ToValidUTF8(s, string(utf8.RuneError))
}

// stripAccents removes combining diacritical marks after canonical decomposition.
func stripAccents(s string) string {
	// ASCII input has nothing to decompose.
	if isASCII(s) {
		return s
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.Predicate(isCombiningDiacritic)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}

	return out
}

// isCombiningDiacritic reports whether r is in the Combining Diacritical Marks block.
func isCombiningDiacritic(r rune) bool {
	return r >= 0x0300 && r <= 0x036f
}

// isASCII reports whether s contains only single-byte runes.
func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}

	return true
}

// ToStrings converts a string or a list of strings into an ordered slice.
//
// Accepted shapes are nil, string, []string and []any holding only strings.
// Any other value returns ErrInvalidPatternType. Matching functions take
// []string; ToStrings is for callers holding loosely typed values such as
// decoded JSON or YAML documents.
func ToStrings(v any) ([]string, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case string:
		return []string{val}, nil
	case []string:
		out := make([]string, len(val))
		copy(out, val)
		return out, nil
	case []any:
		out := make([]string, 0, len(val))
		for i, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: element %d is %T", ErrInvalidPatternType, i, item)
			}

			out = append(out, s)
		}

		return out, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidPatternType, v)
	}
}
