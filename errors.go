// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildmatch

package wildmatch

import "errors"

// Sentinel errors for wildmatch operations.
var (
	// ErrInvalidPatternType indicates a pattern value that is not a string.
	ErrInvalidPatternType = errors.New("invalid pattern type")
	// ErrUnsupportedPatternSyntax indicates an unescaped regexp metacharacter in a pattern.
	ErrUnsupportedPatternSyntax = errors.New("unsupported pattern syntax")
	// ErrRecursionLimitExceeded indicates match depth above Options.MaxDepth.
	ErrRecursionLimitExceeded = errors.New("recursion limit exceeded")
	// ErrUnsupportedOptionsFormat indicates an options file with unknown extension.
	ErrUnsupportedOptionsFormat = errors.New("unsupported options file format")
)
