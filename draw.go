// Copyright 2026 The gomapgl Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gomapgl/render/gfx"

// MaxDynamicBuffers is how many optional dynamic layout buffers a
// draw may attach beyond the primary layout buffer.
const MaxDynamicBuffers = 3

// indexBytes is the size of one element index. All index buffers use
// 16-bit indices; segment byte offsets are derived from that.
const indexBytes = 2

// indexMultiplier is the primitive-to-index-count law: indices per
// primitive for each supported topology.
func indexMultiplier(mode gfx.PrimitiveMode) int {
	switch mode {
	case gfx.Lines:
		return 2
	case gfx.Triangles:
		return 3
	default: // gfx.LineStrip
		return 1
	}
}

// DrawOptions carries the per-call inputs of one dispatch. Optional
// inputs (Terrain, Projection, Uniforms, Style) are pointer or nil
// valued so that absent and zero-valued are unambiguous; each absent
// input independently skips its step with no error.
type DrawOptions struct {
	// Mode is the primitive topology.
	Mode gfx.PrimitiveMode

	// Frame-level device state, applied before any uniform pushes.
	Depth   gfx.DepthMode
	Stencil gfx.StencilMode
	Color   gfx.ColorMode
	Cull    gfx.CullFaceMode

	// Uniforms are per-call values for the fixed binding group, keyed
	// by uniform name.
	Uniforms map[string]Value
	// Terrain, when present, binds the terrain textures and pushes
	// the terrain uniform payload.
	Terrain *TerrainData
	// Projection, when present, pushes per-frame projection values
	// under their statically mapped names.
	Projection *ProjectionData

	// LayerID scopes vertex-array binding caching within each
	// segment.
	LayerID string

	// Layout is the primary layout vertex buffer.
	Layout *VertexBuffer
	// Dynamic are up to MaxDynamicBuffers additional layout buffers;
	// entries beyond the limit are ignored.
	Dynamic []*VertexBuffer
	// Index is the shared element index buffer.
	Index *IndexBuffer

	// Style, when present, contributes per-feature buffers and pushes
	// data-driven uniforms for FeatureState and Zoom.
	Style        StyleConfig
	FeatureState any
	Zoom         float64

	// Segments are drawn in the given order, one indexed draw each.
	// No reordering or merging happens at this layer.
	Segments []*Segment
}

// Draw applies frame state, pushes terrain, projection, fixed and
// data-driven uniform values, then issues one indexed draw per
// segment in submission order.
//
// Draw never raises: its only exceptional path is the pre-checked
// failed flag, under which it performs zero device calls.
func (p *Program) Draw(ctx gfx.Context, opts *DrawOptions) {
	if p.failed {
		return
	}

	ctx.UseProgram(p.handle)
	ctx.SetDepthMode(opts.Depth)
	ctx.SetStencilMode(opts.Stencil)
	ctx.SetColorMode(opts.Color)
	ctx.SetCullMode(opts.Cull)

	if t := opts.Terrain; t != nil {
		ctx.ActiveTexture(TerrainDepthTextureUnit)
		ctx.BindTexture2D(t.DepthTexture)
		ctx.ActiveTexture(TerrainCoordsTextureUnit)
		ctx.BindTexture2D(t.CoordsTexture)
		for name, v := range t.Uniforms {
			p.terrain.Push(ctx, name, v)
		}
	}

	if pd := opts.Projection; pd != nil {
		pd.push(ctx, p.projection)
	}

	if opts.Uniforms != nil {
		for name, b := range p.fixed {
			if v, ok := opts.Uniforms[name]; ok {
				b.Set(ctx, v)
			}
		}
	}

	if opts.Style != nil {
		opts.Style.PushUniforms(ctx, p.dataDriven, opts.FeatureState, opts.Zoom)
	}

	var paint []*VertexBuffer
	if opts.Style != nil {
		paint = opts.Style.PaintVertexBuffers()
	}
	mult := indexMultiplier(opts.Mode)
	for _, seg := range opts.Segments {
		p.bindSegment(ctx, seg, opts, paint)
		ctx.DrawElements(opts.Mode, seg.Length*mult, seg.Offset*mult*indexBytes)
	}
}
