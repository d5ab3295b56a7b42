// Copyright 2026 The gomapgl Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render turns prepared map-layer geometry batches and style
// parameters into GPU programs and draw calls.
//
// # Overview
//
// render sits between a declarative styling model and a strict,
// stateful graphics API. Upstream code decides what to draw and in
// what order, evaluates paint properties and produces vertex/index
// buffers; this package compiles the matching GPU program, binds
// attribute and uniform locations, caches per-segment vertex-array
// state and issues the indexed draw calls.
//
// # Quick Start
//
//	ctx := gl33.New() // a gfx.Context backend
//
//	layer := shader.Fill()
//	opts := shader.Options{Projection: shader.Mercator(), GLSL300: true}
//	program, err := render.NewProgram(ctx, render.ProgramConfig{
//	    Name:       "fill",
//	    Layer:      layer,
//	    Shaders:    shader.Assemble(layer, opts),
//	    Projection: opts.Projection,
//	})
//	if err != nil {
//	    log.Fatal(err) // invalid shader authoring; never retried
//	}
//
//	program.Draw(ctx, &render.DrawOptions{
//	    Mode:     gfx.Triangles,
//	    Depth:    gfx.DepthDisabled(),
//	    Stencil:  gfx.StencilDisabled(),
//	    Color:    gfx.ColorAlphaBlended(),
//	    Cull:     gfx.CullDisabled(),
//	    Uniforms: map[string]render.Value{"u_color": render.Vec4{1, 0, 0, 1}, "u_opacity": render.Float(1)},
//	    LayerID:  "water",
//	    Layout:   layoutBuffer,
//	    Index:    indexBuffer,
//	    Segments: segments,
//	})
//
// # Architecture
//
// The module splits into four cooperating parts:
//
//   - shader/: assembles defines, preludes and layer source into
//     final GLSL text, transpiling to the legacy dialect when needed
//   - render (this package): program compilation and introspection,
//     uniform binding groups, the per-segment vertex-array binding
//     cache and the draw dispatcher
//   - gfx/: the graphics device contract plus shared state-mode types
//   - backend/gl33: the OpenGL 3.3 core device backend
//
// A program is built once per unique layer+projection+define
// combination (see [ProgramCache]) and drawn many times per frame.
//
// # Error Handling
//
// Shader compile and link failures are programmer errors: they carry
// the driver's diagnostic log and must not be retried. Context loss
// during a build is not an error: the resulting program reports
// Failed() and draws nothing; after context restoration the caller
// rebuilds. Per-frame dispatch never returns or raises errors.
//
// # Threading
//
// Everything here runs synchronously on the thread owning the
// graphics context. There is exactly one logical writer per frame; no
// locking is used or required on the render path.
package render
