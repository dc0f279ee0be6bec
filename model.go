// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildmatch

package wildmatch

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
)

const (
	// DefaultFuzzyThreshold is the minimum similarity used when none is configured.
	DefaultFuzzyThreshold = 0.2
	// DefaultMaxDepth is the match depth ceiling used when none is configured.
	DefaultMaxDepth = 10
	// DefaultCacheSize is the compiled pattern cache capacity used when none is configured.
	DefaultCacheSize = 1000
)

// Options controls matching behavior.
//
// The zero value is usable: Resolve fills FuzzyThreshold and MaxDepth.
// Use Threshold to set FuzzyThreshold, including an explicit zero.
type Options struct {
	// CaseSensitive disables case folding of inputs and patterns.
	CaseSensitive bool `json:"case_sensitive,omitempty" yaml:"case_sensitive,omitempty" toml:"case_sensitive,omitempty"`
	// AllPatterns requires every positive pattern to match instead of any.
	AllPatterns bool `json:"all_patterns,omitempty" yaml:"all_patterns,omitempty" toml:"all_patterns,omitempty"`
	// FuzzyMatch switches to similarity-based matching.
	FuzzyMatch bool `json:"fuzzy_match,omitempty" yaml:"fuzzy_match,omitempty" toml:"fuzzy_match,omitempty"`
	// FuzzyThreshold is the minimum similarity in [0,1] counted as a match.
	// Nil or out-of-range values resolve to DefaultFuzzyThreshold.
	FuzzyThreshold *float64 `json:"fuzzy_threshold,omitempty" yaml:"fuzzy_threshold,omitempty" toml:"fuzzy_threshold,omitempty"`
	// PartialMatch also accepts inputs containing the literal pattern text.
	PartialMatch bool `json:"partial_match,omitempty" yaml:"partial_match,omitempty" toml:"partial_match,omitempty"`
	// Separator switches to segment matching when non-empty.
	Separator string `json:"separator,omitempty" yaml:"separator,omitempty" toml:"separator,omitempty"`
	// WordBoundary anchors compiled patterns at word boundaries.
	WordBoundary bool `json:"word_boundary,omitempty" yaml:"word_boundary,omitempty" toml:"word_boundary,omitempty"`
	// AccentInsensitive strips combining diacritical marks before comparing.
	AccentInsensitive bool `json:"accent_insensitive,omitempty" yaml:"accent_insensitive,omitempty" toml:"accent_insensitive,omitempty"`
	// MaxDepth is the highest depth accepted by Engine.MatchSingleAt.
	// Zero or negative values resolve to DefaultMaxDepth.
	MaxDepth int `json:"max_depth,omitempty" yaml:"max_depth,omitempty" toml:"max_depth,omitempty"`
}

// Threshold returns a FuzzyThreshold value for v.
func Threshold(v float64) *float64 {
	return &v
}

// Resolve returns a copy of options with every defaulted field populated.
func (opts Options) Resolve() Options {
	opts.applyDefaults()
	return opts
}

// applyDefaults fills zero-valued or invalid options with defaults.
func (opts *Options) applyDefaults() {
	// Resolved options always hold their own threshold value.
	threshold := DefaultFuzzyThreshold
	if t := opts.FuzzyThreshold; t != nil && *t >= 0 && *t <= 1 {
		threshold = *t
	}
	opts.FuzzyThreshold = &threshold

	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
}

// EffectiveThreshold returns the fuzzy threshold after defaults are applied.
func (opts Options) EffectiveThreshold() float64 {
	return *opts.Resolve().FuzzyThreshold
}

// Fingerprint returns a stable digest of resolved options.
//
// Two option values with equal fingerprints compile every pattern identically.
func (opts Options) Fingerprint() string {
	r := opts.Resolve()
	canonical := fmt.Sprintf("cs=%t;all=%t;fz=%t;th=%s;pm=%t;sep=%q;wb=%t;ai=%t;md=%d",
		r.CaseSensitive,
		r.AllPatterns,
		r.FuzzyMatch,
		strconv.FormatFloat(*r.FuzzyThreshold, 'g', -1, 64),
		r.PartialMatch,
		r.Separator,
		r.WordBoundary,
		r.AccentInsensitive,
		r.MaxDepth,
	)

	return strconv.FormatUint(xxhash.Sum64String(canonical), 16)
}

// CompiledPattern is an immutable compiled wildcard pattern.
type CompiledPattern struct {
	// Regexp is the anchored expression equivalent to the wildcard pattern.
	Regexp *regexp.Regexp
	// CompiledAt is the moment the pattern was compiled.
	CompiledAt time.Time
	// Expr is the regexp source of Regexp.
	Expr string
	// Pattern is the pattern text as passed to the compiler.
	Pattern string
	// Negated reports whether the pattern started with "!".
	Negated bool
}

// MatchString reports whether input satisfies the compiled expression, ignoring negation.
func (p *CompiledPattern) MatchString(input string) bool {
	return p.Regexp.MatchString(input)
}

// MatchResult is the outcome of matching one input against a pattern or pattern set.
type MatchResult struct {
	// Metadata is attached by detailed convenience calls only.
	Metadata *Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	// Input is the input text as supplied by the caller.
	Input string `json:"input" yaml:"input"`
	// Pattern is the deciding pattern, empty when no positive pattern matched.
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	// Segments lists matched input segments in segment mode.
	Segments []string `json:"segments,omitempty" yaml:"segments,omitempty"`
	// Score is the match quality in [0,1].
	Score float64 `json:"score" yaml:"score"`
	// Matched reports the final decision.
	Matched bool `json:"matched" yaml:"matched"`
}

// Metadata describes how a detailed result was produced.
type Metadata struct {
	// Options are the resolved options used for matching.
	Options Options `json:"options" yaml:"options"`
	// Duration is the time spent matching the input.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// CacheStats reports pattern cache state.
type CacheStats struct {
	Size      int    `json:"size" yaml:"size"`
	MaxSize   int    `json:"max_size" yaml:"max_size"`
	Hits      uint64 `json:"hits" yaml:"hits"`
	Misses    uint64 `json:"misses" yaml:"misses"`
	Evictions uint64 `json:"evictions" yaml:"evictions"`
}

// ValidationResult is the outcome of Validate.
type ValidationResult struct {
	// Err describes why the pattern is invalid, nil when valid.
	Err error `json:"-" yaml:"-"`
	// Valid reports whether the pattern is accepted by the compiler.
	Valid bool `json:"valid" yaml:"valid"`
}
