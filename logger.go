// Copyright 2026 The gomapgl Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"log/slog"

	"github.com/gomapgl/render/gfx"
)

// SetLogger configures the logger for render and all its sub-packages
// (gfx, the device backends). By default no log output is produced.
// Pass nil to restore the silent default.
//
// Log levels used:
//   - [slog.LevelDebug]: per-frame diagnostics (program builds,
//     binding cache rebuilds, program cache activity)
//   - [slog.LevelWarn]: non-fatal conditions (context loss)
//
// Example:
//
//	// Enable debug-level logging to stderr:
//	render.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	gfx.SetLogger(l)
}

// Logger returns the current logger shared by render and its
// sub-packages.
func Logger() *slog.Logger {
	return gfx.Logger()
}
