// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildmatch

package wildmatch

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Engine evaluates inputs against wildcard patterns with a resolved options snapshot.
//
// An Engine is cheap to build and is meant to live for one top-level call.
// Compiled patterns are shared through its PatternCache.
type Engine struct {
	// cache memoizes compiled patterns, shared across engines.
	cache *PatternCache
	// logger receives debug records about rejected patterns.
	logger *zap.Logger
	// fingerprint is opts.Fingerprint, computed once per snapshot.
	fingerprint string
	// opts is the resolved options snapshot.
	opts Options
}

// EngineOption customizes an Engine.
type EngineOption func(*Engine)

// WithCache makes the engine compile patterns through cache.
func WithCache(cache *PatternCache) EngineOption {
	return func(e *Engine) {
		if cache != nil {
			e.cache = cache
		}
	}
}

// WithLogger sets the engine logger.
func WithLogger(logger *zap.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an engine with resolved opts.
// Without WithCache the package default cache is used.
func NewEngine(opts Options, engineOpts ...EngineOption) *Engine {
	resolved := opts.Resolve()
	e := &Engine{
		cache:       defaultCache,
		logger:      zap.NewNop(),
		fingerprint: resolved.Fingerprint(),
		opts:        resolved,
	}

	for _, apply := range engineOpts {
		apply(e)
	}

	return e
}

// Options returns a copy of the resolved options snapshot.
func (e *Engine) Options() Options {
	return e.opts.Resolve()
}

// Update applies fn to a copy of the options and stores the resolved result.
// Only subsequent calls observe the change.
func (e *Engine) Update(fn func(opts *Options)) {
	next := e.opts.Resolve()
	fn(&next)
	e.opts = next.Resolve()
	e.fingerprint = e.opts.Fingerprint()
}

// MatchSingle matches input against one pattern at depth zero.
func (e *Engine) MatchSingle(input, pattern string) (MatchResult, error) {
	return e.MatchSingleAt(input, pattern, 0)
}

// MatchSingleAt matches input against one pattern.
//
// Callers composing nested matches pass their nesting depth; depth above
// Options.MaxDepth returns ErrRecursionLimitExceeded. Exactly one mode runs:
// fuzzy when FuzzyMatch is set, else segment when Separator is set, else regexp.
func (e *Engine) MatchSingleAt(input, pattern string, depth int) (MatchResult, error) {
	if depth > e.opts.MaxDepth {
		return MatchResult{}, fmt.Errorf("%w: depth %d > max %d", ErrRecursionLimitExceeded, depth, e.opts.MaxDepth)
	}

	if err := ValidatePattern(pattern); err != nil {
		e.logger.Debug("pattern rejected", zap.String("pattern", pattern), zap.Error(err))
		return MatchResult{}, err
	}

	res := MatchResult{
		Input:   input,
		Pattern: pattern,
	}

	candidate := Normalize(input, e.opts)
	normalized := Normalize(pattern, e.opts)

	// Empty and bare "!" patterns only match empty input.
	if normalized == "" || normalized == negationPrefix {
		res.Matched = candidate == ""
		if res.Matched {
			res.Score = 1
		}

		return res, nil
	}

	switch {
	case e.opts.FuzzyMatch:
		e.matchFuzzy(&res, candidate, normalized)
		return res, nil
	case e.opts.Separator != "":
		if err := e.matchSegments(&res, candidate, normalized); err != nil {
			return MatchResult{}, err
		}

		return res, nil
	default:
		if err := e.matchRegex(&res, candidate, normalized); err != nil {
			return MatchResult{}, err
		}

		return res, nil
	}
}

// matchFuzzy scores candidate by edit distance; negation flips the decision only.
func (e *Engine) matchFuzzy(res *MatchResult, candidate, pattern string) {
	base, negated := splitNegation(pattern)
	matched, score := FuzzyMatch(candidate, base, *e.opts.FuzzyThreshold)

	res.Matched = matched != negated
	res.Score = score
}

// matchSegments compares separator-delimited segments positionally.
//
// Every pattern segment needs an input segment at the same index that satisfies
// it; extra input segments are ignored.
func (e *Engine) matchSegments(res *MatchResult, candidate, pattern string) error {
	base, negated := splitNegation(pattern)
	inputSegments := splitSegments(candidate, e.opts.Separator)
	patternSegments := splitSegments(base, e.opts.Separator)

	matched := true
	segments := make([]string, 0, len(patternSegments))
	for i, seg := range patternSegments {
		if i >= len(inputSegments) {
			matched = false
			break
		}

		compiled, err := e.cache.compile(seg, e.opts, e.fingerprint)
		if err != nil {
			return err
		}

		if !compiled.MatchString(inputSegments[i]) {
			matched = false
			break
		}

		segments = append(segments, inputSegments[i])
	}

	res.Matched = matched != negated
	res.Segments = segments
	if res.Matched {
		res.Score = 1
	}

	return nil
}

// matchRegex matches candidate against the compiled anchored expression.
func (e *Engine) matchRegex(res *MatchResult, candidate, pattern string) error {
	compiled, err := e.cache.compile(pattern, e.opts, e.fingerprint)
	if err != nil {
		return err
	}

	matched := compiled.MatchString(candidate)
	if !matched && e.opts.PartialMatch && !compiled.Negated {
		matched = strings.Contains(candidate, stripWildcards(pattern, false))
	}

	res.Matched = matched != compiled.Negated
	if res.Matched {
		res.Score = 1
	}

	return nil
}

// MatchMultiple matches input against a pattern set.
//
// Patterns starting with "!" form the negative group, the rest the positive
// group. Default policy: at least one positive result matched (vacuously true
// for an empty group) and no negative result failed. With AllPatterns every
// positive and every negative result must be matched. The first error aborts
// evaluation.
func (e *Engine) MatchMultiple(input string, patterns []string) (MatchResult, error) {
	res := MatchResult{Input: input}
	if len(patterns) == 0 {
		return res, nil
	}

	positive := make([]MatchResult, 0, len(patterns))
	negative := make([]MatchResult, 0, len(patterns))
	for _, pattern := range patterns {
		single, err := e.MatchSingleAt(input, pattern, 0)
		if err != nil {
			return MatchResult{Input: input}, err
		}

		if strings.HasPrefix(pattern, negationPrefix) {
			negative = append(negative, single)
			continue
		}

		positive = append(positive, single)
	}

	var representative *MatchResult
	if e.opts.AllPatterns {
		res.Matched, representative = combineAll(positive, negative)
	} else {
		res.Matched, representative = combineAny(positive, negative)
	}

	if res.Matched && representative != nil {
		res.Pattern = representative.Pattern
		res.Score = representative.Score
		res.Segments = representative.Segments
	}

	return res, nil
}

// combineAll requires every result matched and picks the highest positive score.
func combineAll(positive, negative []MatchResult) (bool, *MatchResult) {
	for i := range positive {
		if !positive[i].Matched {
			return false, nil
		}
	}

	for i := range negative {
		if !negative[i].Matched {
			return false, nil
		}
	}

	var best *MatchResult
	for i := range positive {
		if best == nil || positive[i].Score > best.Score {
			best = &positive[i]
		}
	}

	return true, best
}

// combineAny requires one matched positive result and no triggered exclusion.
func combineAny(positive, negative []MatchResult) (bool, *MatchResult) {
	for i := range negative {
		if !negative[i].Matched {
			return false, nil
		}
	}

	if len(positive) == 0 {
		return true, nil
	}

	for i := range positive {
		if positive[i].Matched {
			return true, &positive[i]
		}
	}

	return false, nil
}
