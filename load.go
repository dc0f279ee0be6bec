// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildmatch

package wildmatch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// LoadPatternsFile reads and parses patterns from a file.
func LoadPatternsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open patterns file: %w", err)
	}
	defer func() { _ = f.Close() }()

	patterns, err := ParsePatterns(f)
	if err != nil {
		return nil, fmt.Errorf("parse patterns file: %w", err)
	}

	return patterns, nil
}

// LoadPatternsFiles reads and merges patterns from files in the given order.
func LoadPatternsFiles(paths ...string) ([]string, error) {
	out := make([]string, 0, len(paths)*8)
	for _, path := range paths {
		patterns, err := LoadPatternsFile(path)
		if err != nil {
			return nil, err
		}

		out = append(out, patterns...)
	}

	return out, nil
}

// LoadOptionsFile reads options from a YAML, TOML or JSON file chosen by extension.
//
// Fields missing from the file keep zero values; call Options.Resolve for defaults.
func LoadOptionsFile(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read options file: %w", err)
	}

	opts, err := DecodeOptions(data, filepath.Ext(path))
	if err != nil {
		return Options{}, fmt.Errorf("decode options file %s: %w", path, err)
	}

	return opts, nil
}

// DecodeOptions decodes options from data in format ("yaml", "yml", "toml" or "json",
// with or without a leading dot).
func DecodeOptions(data []byte, format string) (Options, error) {
	var opts Options

	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &opts); err != nil {
			return Options{}, err
		}
	case "toml":
		if err := toml.Unmarshal(data, &opts); err != nil {
			return Options{}, err
		}
	case "json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&opts); err != nil {
			return Options{}, err
		}
	default:
		return Options{}, fmt.Errorf("%w: %q", ErrUnsupportedOptionsFormat, format)
	}

	return opts, nil
}
