// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildmatch

package wildmatch

import "strings"

// ParseExtensions converts an extension list to "*.ext" patterns.
//
// Accepted extension forms:
//   - "txt"
//   - ".txt"
//   - "*.txt"
//   - "!txt" (negated, becomes "!*.txt")
//
// Empty values are skipped. Returned patterns are lower-case and preserve input order.
func ParseExtensions(exts []string) []string {
	patterns := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		ext, negated := strings.CutPrefix(ext, negationPrefix)
		ext = strings.TrimPrefix(ext, "*.")
		ext = strings.TrimLeft(ext, ".")
		ext = strings.ToLower(ext)
		if ext == "" {
			continue
		}

		pattern := "*." + ext
		if negated {
			pattern = negationPrefix + pattern
		}

		patterns = append(patterns, pattern)
	}

	return patterns
}
