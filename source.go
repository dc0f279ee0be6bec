// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildmatch

package wildmatch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// defaultReloadDelay coalesces bursts of file events into one reload.
const defaultReloadDelay = 200 * time.Millisecond

// SourceConfig describes where a Source reads patterns and options from.
type SourceConfig struct {
	// OptionsFile is an optional YAML, TOML or JSON options file.
	// When set it replaces Options on every load.
	OptionsFile string `json:"options_file,omitempty" yaml:"options_file,omitempty"`
	// Patterns are in-memory patterns evaluated before file-loaded patterns.
	Patterns []string `json:"patterns,omitempty" yaml:"patterns,omitempty"`
	// PatternFiles are pattern files loaded in order.
	PatternFiles []string `json:"pattern_files,omitempty" yaml:"pattern_files,omitempty"`
	// Options are used when OptionsFile is empty.
	Options Options `json:"options" yaml:"options"`
	// WatchFiles are extra files whose changes trigger Watch callbacks without being parsed.
	WatchFiles []string `json:"watch_files,omitempty" yaml:"watch_files,omitempty"`
	// ReloadDelay is the debounce interval for Watch, zero selects 200ms.
	ReloadDelay time.Duration `json:"reload_delay,omitempty" yaml:"reload_delay,omitempty"`
}

// Source holds a reloadable pattern set and options snapshot.
type Source struct {
	// logger receives reload failures.
	logger *zap.Logger
	// cache compiles patterns for engines built from this source.
	cache *PatternCache
	// tracked are absolute paths of every file backing the source.
	tracked map[string]struct{}
	// cfg is the source configuration with absolute file paths.
	cfg SourceConfig

	// mu guards the snapshot fields below.
	mu       sync.RWMutex
	patterns []string
	opts     Options
	loads    uint64
}

// NewSource creates a source and performs the initial load.
func NewSource(cfg SourceConfig, logger *zap.Logger) (*Source, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if cfg.ReloadDelay <= 0 {
		cfg.ReloadDelay = defaultReloadDelay
	}

	s := &Source{
		logger:  logger,
		cache:   NewPatternCache(DefaultCacheSize),
		tracked: make(map[string]struct{}),
	}

	files := make([]string, 0, len(cfg.PatternFiles))
	for _, path := range cfg.PatternFiles {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("abs pattern file: %w", err)
		}

		files = append(files, abs)
		s.tracked[abs] = struct{}{}
	}
	cfg.PatternFiles = files

	if cfg.OptionsFile != "" {
		abs, err := filepath.Abs(cfg.OptionsFile)
		if err != nil {
			return nil, fmt.Errorf("abs options file: %w", err)
		}

		cfg.OptionsFile = abs
		s.tracked[abs] = struct{}{}
	}

	for _, path := range cfg.WatchFiles {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("abs watch file: %w", err)
		}

		s.tracked[abs] = struct{}{}
	}

	s.cfg = cfg
	s.cache.SetLogger(logger)

	if err := s.Reload(); err != nil {
		return nil, err
	}

	return s, nil
}

// Snapshot returns the current patterns and resolved options.
func (s *Source) Snapshot() ([]string, Options) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	patterns := make([]string, len(s.patterns))
	copy(patterns, s.patterns)
	return patterns, s.opts.Resolve()
}

// Loads reports how many successful loads happened, including the initial one.
func (s *Source) Loads() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loads
}

// Reload re-reads every backing file and swaps the snapshot.
//
// On failure the previous snapshot is kept and the error is returned.
func (s *Source) Reload() error {
	filePatterns, err := LoadPatternsFiles(s.cfg.PatternFiles...)
	if err != nil {
		return err
	}

	patterns := MergePatterns(s.cfg.Patterns, filePatterns)
	for i, pattern := range patterns {
		if err := ValidatePattern(pattern); err != nil {
			return fmt.Errorf("pattern %d: %w", i, err)
		}
	}

	opts := s.cfg.Options
	if s.cfg.OptionsFile != "" {
		opts, err = LoadOptionsFile(s.cfg.OptionsFile)
		if err != nil {
			return err
		}
	}

	opts = opts.Resolve()

	s.mu.Lock()
	changed := opts.Fingerprint() != s.opts.Fingerprint()
	s.patterns = patterns
	s.opts = opts
	s.loads++
	s.mu.Unlock()

	// Compiled entries keyed by stale options would only waste capacity.
	if changed {
		s.cache.Clear()
	}

	return nil
}

// Engine builds an engine bound to the current options and the source cache.
func (s *Source) Engine() (*Engine, []string) {
	patterns, opts := s.Snapshot()
	return NewEngine(opts, WithCache(s.cache), WithLogger(s.logger)), patterns
}

// Filter returns inputs matching the current snapshot.
func (s *Source) Filter(inputs []string) ([]string, error) {
	e, patterns := s.Engine()

	out := make([]string, 0, len(inputs))
	if len(patterns) == 0 {
		return out, nil
	}

	for _, input := range inputs {
		res, err := e.MatchMultiple(input, patterns)
		if err != nil {
			return nil, err
		}

		if res.Matched {
			out = append(out, input)
		}
	}

	return out, nil
}

// Watch reloads the source when a backing file changes until ctx is done.
//
// onChange, when not nil, runs after every successful reload. Failed reloads are
// logged and the previous snapshot stays active.
func (s *Source) Watch(ctx context.Context, onChange func()) error {
	if len(s.tracked) == 0 {
		return nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	// Directories are watched so editors replacing files via rename are seen.
	dirs := make(map[string]struct{}, len(s.tracked))
	for path := range s.tracked {
		dirs[filepath.Dir(path)] = struct{}{}
	}

	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	go s.watchLoop(ctx, w, onChange)
	return nil
}

// watchLoop consumes watcher events until ctx is done or the watcher closes.
func (s *Source) watchLoop(ctx context.Context, w *fsnotify.Watcher, onChange func()) {
	defer func() { _ = w.Close() }()

	var fire <-chan time.Time
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return
			}

			if !s.tracks(ev.Name) || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}

			fire = time.After(s.cfg.ReloadDelay)
		case <-fire:
			fire = nil
			if err := s.Reload(); err != nil {
				s.logger.Warn("reload failed", zap.Error(err))
				continue
			}

			s.logger.Debug("source reloaded", zap.Uint64("loads", s.Loads()))
			if onChange != nil {
				onChange()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}

			s.logger.Warn("watch error", zap.Error(err))
		case <-ctx.Done():
			return
		}
	}
}

// tracks reports whether name is one of the backing files.
func (s *Source) tracks(name string) bool {
	_, ok := s.tracked[filepath.Clean(name)]
	return ok
}
