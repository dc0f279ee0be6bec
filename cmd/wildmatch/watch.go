// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildmatch

package main

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/woozymasta/wildmatch"
)

// watch evaluates once, then again after every change until ctx is done.
// It returns the exit code of the last evaluation.
func watch(ctx context.Context, cfg *config, src *wildmatch.Source, stdout, stderr io.Writer, sugar *zap.SugaredLogger) int {
	var last atomic.Int32

	pass := func() {
		code, err := evaluate(cfg, src, nil, stdout)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "wildmatch: %v\n", err)
			code = exitError
		}

		last.Store(int32(code))
		sugar.Debugw("evaluated", "loads", src.Loads(), "exit", code)
	}

	writeHeader(stdout, cfg.inputPath)
	pass()

	if err := src.Watch(ctx, func() {
		writeHeader(stdout, cfg.inputPath)
		pass()
	}); err != nil {
		_, _ = fmt.Fprintf(stderr, "wildmatch: %v\n", err)
		return exitError
	}

	sugar.Infow("watching for changes", "input", cfg.inputPath)
	<-ctx.Done()

	return int(last.Load())
}
