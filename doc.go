// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildmatch

/*
Package wildmatch matches text inputs against glob-like wildcard patterns.

Pattern syntax:
  - "*" matches zero or more characters, "?" exactly one
  - a leading "!" negates the pattern
  - "." is literal; other regexp metacharacters are rejected (`ValidatePattern`)

Matching modes, selected by options in priority order:
  - fuzzy (`Options.FuzzyMatch`): Levenshtein similarity against `Options.FuzzyThreshold`
  - segment (`Options.Separator`): positional per-segment wildcard matching
  - regexp (default): anchored full-string match, optionally `Options.PartialMatch`

Basic flow:
  - build an engine (`NewEngine`) or call a package function (`Filter`, `Any`, `MatchDetailed`)
  - evaluate one pattern (`Engine.MatchSingle`) or a pattern set (`Engine.MatchMultiple`)

Pattern set policy: inputs must match at least one positive pattern (all of them
with `Options.AllPatterns`) and no negated pattern may exclude the input.

Compiled patterns are memoized in a bounded FIFO `PatternCache`. Package functions
share `DefaultCache`; see `ClearCache` and `Stats`.

Loosely typed pattern values (a string or a list, as decoded from JSON or YAML)
are converted with `ToStrings` before matching.

For file-backed pattern sets, use `Source`:
  - load patterns (`LoadPatternsFile`) and options (`LoadOptionsFile`, YAML/TOML/JSON)
  - hot reload on change (`Source.Watch`)
*/
package wildmatch
