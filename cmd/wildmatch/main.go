// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildmatch

// Command wildmatch prints input lines matching wildcard patterns.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/woozymasta/wildmatch"
)

// Exit codes.
const (
	exitMatch   = 0
	exitNoMatch = 1
	exitError   = 2
)

// maxLineSize bounds one input line.
const maxLineSize = 1 << 20

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// config is the parsed command line.
type config struct {
	overrides    func(*wildmatch.Options)
	inputPath    string
	optionsPath  string
	patterns     stringList
	patternFiles stringList
	extensions   stringList
	anyOnly      bool
	detailed     bool
	jsonOut      bool
	watch        bool
	verbose      bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitMatch
		}

		return exitError
	}

	logger, err := newLogger(cfg.verbose)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "wildmatch: logger: %v\n", err)
		return exitError
	}
	defer func() { _ = logger.Sync() }()
	sugar := logger.Sugar()

	srcCfg := wildmatch.SourceConfig{
		Patterns:     wildmatch.MergePatterns(cfg.patterns, wildmatch.ParseExtensions(cfg.extensions)),
		PatternFiles: cfg.patternFiles,
		OptionsFile:  cfg.optionsPath,
	}
	if cfg.watch && cfg.inputPath != "-" {
		srcCfg.WatchFiles = []string{cfg.inputPath}
	}

	src, err := wildmatch.NewSource(srcCfg, logger)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "wildmatch: %v\n", err)
		return exitError
	}

	if patterns, _ := src.Snapshot(); len(patterns) == 0 {
		_, _ = fmt.Fprintln(stderr, "wildmatch: no patterns given")
		return exitError
	}

	if cfg.watch {
		if cfg.inputPath == "-" {
			_, _ = fmt.Fprintln(stderr, "wildmatch: -watch requires -input file")
			return exitError
		}

		return watch(ctx, cfg, src, stdout, stderr, sugar)
	}

	code, err := evaluate(cfg, src, stdin, stdout)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "wildmatch: %v\n", err)
		return exitError
	}

	return code
}

// parseFlags parses args into a config.
func parseFlags(args []string, stderr io.Writer) (*config, error) {
	fs := flag.NewFlagSet("wildmatch", flag.ContinueOnError)
	fs.SetOutput(stderr)

	cfg := &config{}
	fs.Var(&cfg.patterns, "p", "wildcard pattern, repeatable; leading ! negates")
	fs.Var(&cfg.patternFiles, "patterns-file", "file with one pattern per line, repeatable")
	fs.Var(&cfg.extensions, "ext", "file extension turned into a *.ext pattern, repeatable")
	fs.StringVar(&cfg.optionsPath, "options", "", "options file (.yaml, .yml, .toml, .json)")
	fs.StringVar(&cfg.inputPath, "input", "-", "input file, one candidate per line (- for stdin)")
	fs.BoolVar(&cfg.anyOnly, "any", false, "print nothing, only report match via exit status")
	fs.BoolVar(&cfg.detailed, "detailed", false, "print scores and deciding patterns")
	fs.BoolVar(&cfg.jsonOut, "json", false, "print matched results as JSON")
	fs.BoolVar(&cfg.watch, "watch", false, "re-evaluate when input, pattern or options files change")
	fs.BoolVar(&cfg.verbose, "v", false, "verbose logging")

	caseSensitive := fs.Bool("case", false, "case-sensitive matching")
	allPatterns := fs.Bool("all", false, "require all positive patterns to match")
	fuzzy := fs.Bool("fuzzy", false, "fuzzy matching by edit distance")
	threshold := fs.Float64("threshold", wildmatch.DefaultFuzzyThreshold, "fuzzy similarity threshold in [0,1]")
	partial := fs.Bool("partial", false, "also accept substring matches")
	separator := fs.String("sep", "", "segment separator, enables segment matching")
	word := fs.Bool("word", false, "anchor patterns at word boundaries")
	accent := fs.Bool("accent", false, "ignore diacritical marks")
	maxDepth := fs.Int("max-depth", wildmatch.DefaultMaxDepth, "match depth ceiling")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.patterns = append(cfg.patterns, fs.Args()...)

	// Only flags given explicitly override the options file.
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg.overrides = func(o *wildmatch.Options) {
		if set["case"] {
			o.CaseSensitive = *caseSensitive
		}
		if set["all"] {
			o.AllPatterns = *allPatterns
		}
		if set["fuzzy"] {
			o.FuzzyMatch = *fuzzy
		}
		if set["threshold"] {
			o.FuzzyThreshold = wildmatch.Threshold(*threshold)
		}
		if set["partial"] {
			o.PartialMatch = *partial
		}
		if set["sep"] {
			o.Separator = *separator
		}
		if set["word"] {
			o.WordBoundary = *word
		}
		if set["accent"] {
			o.AccentInsensitive = *accent
		}
		if set["max-depth"] {
			o.MaxDepth = *maxDepth
		}
	}

	return cfg, nil
}

// newLogger builds the process logger.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

// evaluate matches every input line once and writes the selected output.
func evaluate(cfg *config, src *wildmatch.Source, stdin io.Reader, stdout io.Writer) (int, error) {
	inputs, err := readInputs(cfg.inputPath, stdin)
	if err != nil {
		return exitError, err
	}

	engine, patterns := src.Engine()
	engine.Update(cfg.overrides)

	results := make([]wildmatch.MatchResult, 0, len(inputs))
	for _, input := range inputs {
		res, err := engine.MatchMultiple(input, patterns)
		if err != nil {
			return exitError, err
		}

		if !res.Matched {
			continue
		}

		if cfg.anyOnly {
			return exitMatch, nil
		}

		results = append(results, res)
	}

	if !cfg.anyOnly {
		if err := writeResults(stdout, results, cfg); err != nil {
			return exitError, err
		}
	}

	if len(results) == 0 {
		return exitNoMatch, nil
	}

	return exitMatch, nil
}

// readInputs reads newline-separated inputs from path or stdin when path is "-".
func readInputs(path string, stdin io.Reader) ([]string, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	inputs := make([]string, 0, 64)
	for s.Scan() {
		inputs = append(inputs, strings.TrimRight(s.Text(), "\r"))
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	return inputs, nil
}
