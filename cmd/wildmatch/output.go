// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildmatch

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/woozymasta/wildmatch"
)

// Styles for detailed output.
var (
	scoreStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	weakStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	patternStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	segmentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
)

// writeResults prints matched results in the mode selected by cfg.
func writeResults(w io.Writer, results []wildmatch.MatchResult, cfg *config) error {
	switch {
	case cfg.jsonOut:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case cfg.detailed:
		for _, res := range results {
			if _, err := fmt.Fprintln(w, formatDetailed(res)); err != nil {
				return err
			}
		}
	default:
		for _, res := range results {
			if _, err := fmt.Fprintln(w, res.Input); err != nil {
				return err
			}
		}
	}

	return nil
}

// formatDetailed renders one result as "score  input  pattern [segments]".
func formatDetailed(res wildmatch.MatchResult) string {
	style := scoreStyle
	if res.Score < 1 {
		style = weakStyle
	}

	var b strings.Builder
	b.WriteString(style.Render(fmt.Sprintf("%.2f", res.Score)))
	b.WriteString("  ")
	b.WriteString(res.Input)

	if res.Pattern != "" {
		b.WriteString("  ")
		b.WriteString(patternStyle.Render(res.Pattern))
	}

	if len(res.Segments) > 0 {
		b.WriteString("  ")
		b.WriteString(segmentStyle.Render("[" + strings.Join(res.Segments, " ") + "]"))
	}

	return b.String()
}

// writeHeader prints a watch-mode separator line.
func writeHeader(w io.Writer, text string) {
	_, _ = fmt.Fprintln(w, headerStyle.Render("== "+text))
}
