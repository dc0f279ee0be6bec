// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildmatch

package wildmatch

import "testing"

func TestDistance(t *testing.T) {
	t.Parallel()

	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"hello", "helo", 1},
		{"café", "cafe", 1},
		{"same", "same", 0},
	}

	for _, tc := range cases {
		if got := Distance(tc.a, tc.b); got != tc.want {
			t.Fatalf("Distance(%q,%q)=%d, want %d", tc.a, tc.b, got, tc.want)
		}

		if got := Distance(tc.b, tc.a); got != tc.want {
			t.Fatalf("Distance(%q,%q)=%d, want %d (symmetry)", tc.b, tc.a, got, tc.want)
		}
	}
}

func TestSimilarity(t *testing.T) {
	t.Parallel()

	if got := Similarity("", ""); got != 1 {
		t.Fatalf("Similarity(\"\",\"\")=%v, want 1", got)
	}

	if got := Similarity("abc", ""); got != 0 {
		t.Fatalf("Similarity(abc,\"\")=%v, want 0", got)
	}

	if got := Similarity("", "abc"); got != 0 {
		t.Fatalf("Similarity(\"\",abc)=%v, want 0", got)
	}

	if got := Similarity("hello", "hello"); got != 1 {
		t.Fatalf("Similarity(hello,hello)=%v, want 1", got)
	}

	if got := Similarity("hello", "helo"); got != 0.8 {
		t.Fatalf("Similarity(hello,helo)=%v, want 0.8", got)
	}

	pairs := [][2]string{{"abc", "xyz"}, {"a", "abcdef"}, {"unicorn", "dragon"}, {"ñ", "n"}}
	for _, p := range pairs {
		got := Similarity(p[0], p[1])
		if got < 0 || got > 1 {
			t.Fatalf("Similarity(%q,%q)=%v out of [0,1]", p[0], p[1], got)
		}
	}
}

func TestFuzzyMatch(t *testing.T) {
	t.Parallel()

	matched, score := FuzzyMatch("anything", "*?!", 0.99)
	if !matched || score != 1 {
		t.Fatalf("empty cleaned pattern: matched=%v score=%v", matched, score)
	}

	// Substring wins over threshold.
	matched, score = FuzzyMatch("hello world", "*world*", 0.99)
	if !matched || score != 0.9 {
		t.Fatalf("substring: matched=%v score=%v", matched, score)
	}

	matched, score = FuzzyMatch("hello", "helo", 0.8)
	if !matched || score != 0.8 {
		t.Fatalf("similar: matched=%v score=%v", matched, score)
	}

	matched, _ = FuzzyMatch("world", "helo", 0.8)
	if matched {
		t.Fatalf("world must not fuzzy-match helo at 0.8")
	}

	matched, score = FuzzyMatch("abc", "!a?c*", 0.5)
	if !matched || score < 0.66 || score > 0.67 {
		t.Fatalf("stripped glyphs: matched=%v score=%v", matched, score)
	}
}
