// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildmatch

package wildmatch

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	// negationPrefix marks a negated pattern.
	negationPrefix = "!"
	// lazyGap replaces separators in legacy separator-aware expressions.
	lazyGap = `.*?`
)

// ValidatePattern reports whether pattern contains only supported syntax.
//
// Regexp metacharacters other than "." are rejected unless preceded by a
// backslash. A backslash is itself such a metacharacter.
func ValidatePattern(pattern string) error {
	for i := 0; i < len(pattern); i++ {
		if !isUnsupportedMeta(pattern[i]) {
			continue
		}

		if i > 0 && pattern[i-1] == '\\' {
			continue
		}

		return fmt.Errorf("%w: unescaped %q at offset %d in %q", ErrUnsupportedPatternSyntax, pattern[i], i, pattern)
	}

	return nil
}

// isUnsupportedMeta reports whether c is a regexp metacharacter rejected by validation.
func isUnsupportedMeta(c byte) bool {
	switch c {
	case '+', '^', '$', '{', '}', '(', ')', '|', '[', ']', '\\':
		return true
	default:
		return false
	}
}

// splitNegation strips one leading "!" and reports whether it was present.
func splitNegation(pattern string) (string, bool) {
	if base, ok := strings.CutPrefix(pattern, negationPrefix); ok {
		return base, true
	}

	return pattern, false
}

// compilePattern translates a wildcard pattern into an anchored regexp.
func compilePattern(pattern string, opts Options) (*CompiledPattern, error) {
	base, negated := splitNegation(pattern)
	expr := wildcardToRegex(toValidUTF8(base), opts)

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: compile %q: %v", ErrUnsupportedPatternSyntax, pattern, err)
	}

	return &CompiledPattern{
		Regexp:     re,
		CompiledAt: time.Now(),
		Expr:       expr,
		Pattern:    pattern,
		Negated:    negated,
	}, nil
}

// wildcardToRegex converts a non-negated wildcard pattern to full regexp source.
func wildcardToRegex(pat string, opts Options) string {
	body := wildcardToRegexBody(pat)

	// Legacy broadening: a literal separator also accepts any run of characters.
	// It is applied before the word-boundary wrap and anchors are added, so a
	// separator such as "b" never rewrites `\b`.
	if opts.Separator != "" {
		body = strings.ReplaceAll(body, regexp.QuoteMeta(opts.Separator), lazyGap)
	}

	if opts.WordBoundary {
		body = `\b` + body + `\b`
	}

	flags := ""
	if !opts.CaseSensitive {
		flags = `(?i)`
	}

	return flags + `^(?:` + body + `)$`
}

// wildcardToRegexBody escapes literal text and expands "?" and "*".
func wildcardToRegexBody(pat string) string {
	var b strings.Builder
	b.Grow(len(pat) + 8)

	for i := 0; i < len(pat); i++ {
		c := pat[i]
		switch c {
		case '?':
			b.WriteByte('.')
		case '*':
			b.WriteString(`.*`)
		default:
			if isRegexMeta(c) {
				b.WriteByte('\\')
			}

			b.WriteByte(c)
		}
	}

	return b.String()
}

// isRegexMeta reports whether c must be escaped in regexp source.
func isRegexMeta(c byte) bool {
	return c == '.' || isUnsupportedMeta(c)
}

// splitSegments splits s on sep and drops empty segments.
func splitSegments(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := parts[:0]
	for _, part := range parts {
		if part == "" {
			continue
		}

		out = append(out, part)
	}

	return out
}
