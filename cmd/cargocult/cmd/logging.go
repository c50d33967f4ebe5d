// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package cmd

import (
	"log/slog"
	"os"
)

// newLogger builds the slog.Logger every command hands down to the engine,
// honoring the --verbose/--quiet global flags: quiet drops to warn-level,
// verbose drops to debug-level, and the default is info.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	switch {
	case quiet:
		level = slog.LevelWarn
	case verbose:
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
