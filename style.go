// Copyright 2026 The gomapgl Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gomapgl/render/gfx"

// StyleConfig is the read contract of a styling configuration: the
// per-layer object that turns data-driven ("property-driven") paint
// properties into extra shader inputs. The render core never mutates
// a configuration and never interprets feature state; it only calls
// these accessors at build time and PushUniforms once per draw.
//
// All methods must be cheap; they are called on the render thread.
type StyleConfig interface {
	// Attributes returns extra vertex attribute names appended after
	// the layer's static attributes when the attribute table is
	// built.
	Attributes() []string

	// Uniforms returns extra uniform names appended at the end of the
	// uniform candidate list. These feed the data-driven binding
	// group.
	Uniforms() []string

	// Defines returns extra preprocessor defines for shader assembly,
	// typically #define HAS_... toggles for properties that became
	// per-feature.
	Defines() []string

	// PushUniforms evaluates the data-driven properties for the
	// current feature-state snapshot and zoom, and pushes the results
	// through the program's data-driven binding group. The push
	// contract is owned by the configuration; the core only invokes
	// it.
	PushUniforms(ctx gfx.Context, b Bindings, featureState any, zoom float64)

	// PaintVertexBuffers returns the per-feature vertex buffers to
	// attach when a vertex-array binding is built. The returned slice
	// is read, never retained.
	PaintVertexBuffers() []*VertexBuffer
}
