// Copyright 2026 The gomapgl Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gl33 implements the gfx.Context device contract on desktop
// OpenGL 3.3 core.
//
// The backend shadows the pieces of GL state the render core toggles
// most often (current program, bound vertex array, active texture
// unit, depth/stencil/color/cull modes) and elides calls that would
// not change device state, keeping per-frame GL traffic minimal.
//
// The caller owns context creation: a GL context must be current on
// the calling thread and gl.Init must have succeeded before New is
// used. All methods must then be called from that same thread.
//
// Desktop core profiles have no context-loss notification, so
// ContextLost always reports false here; the render core's soft-fail
// path is exercised by embedders whose window systems surface loss
// through a different channel.
package gl33
