// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildmatch

package wildmatch

import (
	"fmt"
	"strings"
	"testing"
)

const (
	benchPatternCount = 96
	benchInputCount   = 512
)

var (
	benchResultSink MatchResult
	benchCountSink  int
	benchScoreSink  float64
)

func BenchmarkParsePatterns(b *testing.B) {
	src := buildBenchmarkPatternsSource(benchPatternCount)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		patterns, err := ParsePatternsString(src)
		if err != nil {
			b.Fatal(err)
		}

		if len(patterns) == 0 {
			b.Fatal("empty patterns")
		}
	}
}

func BenchmarkCompileCold(b *testing.B) {
	patterns := benchmarkPatterns(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := compilePattern(patterns[i%len(patterns)], Options{}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompileCached(b *testing.B) {
	patterns := benchmarkPatterns(b)
	cache := NewPatternCache(len(patterns))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cache.Compile(patterns[i%len(patterns)], Options{}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMatchMultiple(b *testing.B) {
	patterns := benchmarkPatterns(b)
	inputs := benchmarkInputs(benchInputCount)
	e := NewEngine(Options{}, WithCache(NewPatternCache(len(patterns))))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res, err := e.MatchMultiple(inputs[i%len(inputs)], patterns)
		if err != nil {
			b.Fatal(err)
		}

		benchResultSink = res
	}
}

func BenchmarkMatchMultipleSegments(b *testing.B) {
	patterns := []string{"assets/*/tex_*", "scripts/module_0??/*", "!docs/*"}
	inputs := benchmarkInputs(benchInputCount)
	e := NewEngine(Options{Separator: "/"}, WithCache(NewPatternCache(64)))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res, err := e.MatchMultiple(inputs[i%len(inputs)], patterns)
		if err != nil {
			b.Fatal(err)
		}

		benchResultSink = res
	}
}

func BenchmarkFilter(b *testing.B) {
	patterns := benchmarkPatterns(b)
	inputs := benchmarkInputs(benchInputCount)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		matched, err := Filter(inputs, patterns, Options{})
		if err != nil {
			b.Fatal(err)
		}

		benchCountSink = len(matched)
	}
}

func BenchmarkSimilarity(b *testing.B) {
	inputs := benchmarkInputs(64)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchScoreSink = Similarity(inputs[i%len(inputs)], "assets/group_007/tex_00000.paa")
	}
}

func benchmarkPatterns(b *testing.B) []string {
	b.Helper()

	patterns, err := ParsePatternsString(buildBenchmarkPatternsSource(benchPatternCount))
	if err != nil {
		b.Fatal(err)
	}

	return patterns
}

func buildBenchmarkPatternsSource(patternCount int) string {
	var sb strings.Builder
	sb.Grow(patternCount * 18)

	sb.WriteString("# bench patterns\n")
	sb.WriteString("*.tmp\n")
	sb.WriteString("!keep.tmp\n")

	for i := 0; i < patternCount; i++ {
		switch i % 5 {
		case 0:
			_, _ = fmt.Fprintf(&sb, "assets/group_%03d/*\n", i%37)
		case 1:
			_, _ = fmt.Fprintf(&sb, "!assets/group_%03d/keep_*.paa\n", i%37)
		case 2:
			_, _ = fmt.Fprintf(&sb, "scripts/module_%03d/*.c\n", i%71)
		case 3:
			_, _ = fmt.Fprintf(&sb, "data/file_%03d_?.bin\n", i%53)
		default:
			_, _ = fmt.Fprintf(&sb, "!docs/section_%03d/*.md\n", i%41)
		}
	}

	return sb.String()
}

func benchmarkInputs(inputCount int) []string {
	inputs := make([]string, 0, inputCount)
	for i := 0; i < inputCount; i++ {
		switch i % 6 {
		case 0:
			inputs = append(inputs, fmt.Sprintf("assets/group_%03d/tex_%05d.paa", i%37, i))
		case 1:
			inputs = append(inputs, fmt.Sprintf("assets/group_%03d/keep_%05d.paa", i%37, i))
		case 2:
			inputs = append(inputs, fmt.Sprintf("scripts/module_%03d/main_%02d.c", i%71, i%19))
		case 3:
			inputs = append(inputs, fmt.Sprintf("data/file_%03d_%d.bin", i%53, i%10))
		case 4:
			inputs = append(inputs, fmt.Sprintf("docs/section_%03d/readme.md", i%41))
		default:
			inputs = append(inputs, fmt.Sprintf("misc/file_%05d.txt", i))
		}
	}

	return inputs
}
