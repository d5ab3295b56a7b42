// Copyright 2026 The gomapgl Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gfx defines the graphics device contract consumed by the
// render core.
//
// The central type is [Context], a thin wrapper around a GL-style
// graphics API: shader and program objects with compile/link status
// and diagnostic logs, attribute location binding, uniform location
// lookup and value pushes, vertex-array and buffer objects, texture
// binding, and the depth/stencil/color/cull state machine.
//
// The render core owns no GL calls of its own; everything it does to
// the device goes through this interface. Real backends live under
// backend/ (backend/gl33 targets desktop OpenGL 3.3 core), and
// gfx/gfxtest provides a recording in-memory implementation for tests.
//
// # Threading
//
// A Context wraps a graphics context that is owned by exactly one
// render loop on one thread. Nothing in this package is safe for
// concurrent use, and nothing needs to be: there is one logical
// writer per frame.
//
// # Handles
//
// Shader, Program, Buffer, Texture and VertexArray are opaque handle
// values. They are comparable; the zero value is never a live object.
// Buffer identity comparison is how the render core detects that an
// upstream producer replaced a buffer and a cached vertex-array
// binding must be rebuilt.
package gfx
