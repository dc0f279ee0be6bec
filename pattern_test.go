// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildmatch

package wildmatch

import (
	"errors"
	"testing"
)

func TestValidatePattern(t *testing.T) {
	t.Parallel()

	valid := []string{"", "foo", "*.txt", "file?.log", "!tmp*", "a.b.c", "with space", "naïve"}
	for _, p := range valid {
		if err := ValidatePattern(p); err != nil {
			t.Fatalf("ValidatePattern(%q)=%v, want nil", p, err)
		}
	}

	invalid := []string{"a+b", "^start", "end$", "x{2}", "(group)", "a|b", "[abc]", `back\slash`, `a\+b`}
	for _, p := range invalid {
		if err := ValidatePattern(p); !errors.Is(err, ErrUnsupportedPatternSyntax) {
			t.Fatalf("ValidatePattern(%q)=%v, want ErrUnsupportedPatternSyntax", p, err)
		}
	}
}

func TestCompilePatternExpr(t *testing.T) {
	t.Parallel()

	cases := []struct {
		pattern string
		want    string
		opts    Options
		negated bool
	}{
		{pattern: "*.txt", want: `(?i)^(?:.*\.txt)$`},
		{pattern: "f?o", want: `(?i)^(?:f.o)$`},
		{pattern: "!foo", want: `(?i)^(?:foo)$`, negated: true},
		{pattern: "Foo", want: `^(?:Foo)$`, opts: Options{CaseSensitive: true}},
		{pattern: "foo", want: `(?i)^(?:\bfoo\b)$`, opts: Options{WordBoundary: true}},
		{pattern: "a/b", want: `(?i)^(?:a.*?b)$`, opts: Options{Separator: "/"}},
		{pattern: "a.b", want: `(?i)^(?:a.*?b)$`, opts: Options{Separator: "."}},
		{pattern: "ab", want: `^(?:\ba.*?\b)$`, opts: Options{Separator: "b", WordBoundary: true, CaseSensitive: true}},
		{pattern: "a\xffb", want: "^(?:a\uFFFDb)$", opts: Options{CaseSensitive: true}},
	}

	for _, tc := range cases {
		cp, err := compilePattern(tc.pattern, tc.opts)
		if err != nil {
			t.Fatalf("compilePattern(%q): %v", tc.pattern, err)
		}

		if cp.Expr != tc.want {
			t.Fatalf("compilePattern(%q).Expr=%q, want %q", tc.pattern, cp.Expr, tc.want)
		}

		if cp.Negated != tc.negated {
			t.Fatalf("compilePattern(%q).Negated=%v, want %v", tc.pattern, cp.Negated, tc.negated)
		}

		if cp.Pattern != tc.pattern {
			t.Fatalf("compilePattern(%q).Pattern=%q", tc.pattern, cp.Pattern)
		}

		if cp.CompiledAt.IsZero() {
			t.Fatalf("compilePattern(%q) has zero CompiledAt", tc.pattern)
		}
	}
}

func TestCompiledPatternMatch(t *testing.T) {
	t.Parallel()

	cases := []struct {
		pattern string
		input   string
		opts    Options
		want    bool
	}{
		{pattern: "f?o", input: "foo", want: true},
		{pattern: "f?o", input: "fo", want: false},
		{pattern: "f?o", input: "fooo", want: false},
		{pattern: "caf?", input: "café", want: true},
		{pattern: "*.txt", input: "notes.txt", want: true},
		{pattern: "*.txt", input: "notes_txt", want: false},
		{pattern: "*", input: "", want: true},
		{pattern: "FOO", input: "foo", want: true},
		{pattern: "FOO", input: "foo", opts: Options{CaseSensitive: true}, want: false},
		{pattern: "foo?", input: "foo!", want: true},
		{pattern: "foo?", input: "foo!", opts: Options{WordBoundary: true}, want: false},
		{pattern: "a/b", input: "a/x/b", opts: Options{Separator: "/"}, want: true},
		{pattern: "a/b", input: "axb", opts: Options{Separator: "/"}, want: true},
	}

	for _, tc := range cases {
		cp, err := compilePattern(tc.pattern, tc.opts)
		if err != nil {
			t.Fatalf("compilePattern(%q): %v", tc.pattern, err)
		}

		if got := cp.MatchString(tc.input); got != tc.want {
			t.Fatalf("%q (%s) match %q = %v, want %v", tc.pattern, cp.Expr, tc.input, got, tc.want)
		}
	}
}

func TestSplitSegments(t *testing.T) {
	t.Parallel()

	got := splitSegments("/api//v1/", "/")
	if len(got) != 2 || got[0] != "api" || got[1] != "v1" {
		t.Fatalf("splitSegments=%q, want [api v1]", got)
	}

	if got := splitSegments("", "/"); len(got) != 0 {
		t.Fatalf("splitSegments(empty)=%q, want none", got)
	}

	got = splitSegments("a::b", "::")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("splitSegments multi-byte separator=%q", got)
	}
}
