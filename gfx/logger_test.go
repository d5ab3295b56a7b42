// Copyright 2026 The gomapgl Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
)

func TestLogger_DefaultIsSilent(t *testing.T) {
	SetLogger(nil)
	l := Logger()
	if l == nil {
		t.Fatalf("Logger() = nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Errorf("default logger is enabled at error level")
	}
	// Must not panic.
	l.Debug("quiet", "k", "v")
}

func TestSetLogger_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	SetLogger(custom)
	defer SetLogger(nil)

	if got := Logger(); got != custom {
		t.Fatalf("Logger() did not return the configured logger")
	}
	Logger().Debug("hello")
	if buf.Len() == 0 {
		t.Errorf("configured logger produced no output")
	}
}

func TestSetLogger_NilRestoresSilentDefault(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	SetLogger(nil)

	Logger().Warn("dropped")
	if buf.Len() != 0 {
		t.Errorf("output reached the replaced logger: %q", buf.String())
	}
}
