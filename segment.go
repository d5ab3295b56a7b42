// Copyright 2026 The gomapgl Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gomapgl/render/gfx"

// Segment is a contiguous element range within shared vertex/index
// storage representing one drawable batch. Segments are produced
// upstream and live as long as the owning geometry batch; each one
// carries its per-layer vertex-array binding cache, which is
// invalidated implicitly by buffer-identity change rather than by any
// explicit expiry.
type Segment struct {
	// Offset is the element offset of the segment's first primitive
	// within the shared index buffer, counted in primitives.
	Offset int
	// Length is the segment's primitive count.
	Length int

	bindings map[string]*VertexArrayBinding
}

// NewSegment returns a segment covering Length primitives starting at
// Offset.
func NewSegment(offset, length int) *Segment {
	return &Segment{Offset: offset, Length: length}
}

// VertexArrayBinding is the bound combination of layout, dynamic and
// per-feature buffers plus the index buffer, specialized to one
// (segment, layer) pair. Rebuilding produces attribute pointers
// identical to a single build from scratch; a binding whose recorded
// buffer identities no longer match the buffers being drawn is stale
// and is replaced, never reused.
type VertexArrayBinding struct {
	vao gfx.VertexArray

	layout  gfx.Buffer
	dynamic [MaxDynamicBuffers]gfx.Buffer
	paint   []gfx.Buffer
	index   gfx.Buffer
}

// stale reports whether any referenced buffer changed identity since
// the binding was built.
func (b *VertexArrayBinding) stale(layout *VertexBuffer, dynamic, paint []*VertexBuffer, index *IndexBuffer) bool {
	if b.layout != vertexBufferHandle(layout) {
		return true
	}
	for i := 0; i < MaxDynamicBuffers; i++ {
		var h gfx.Buffer
		if i < len(dynamic) {
			h = vertexBufferHandle(dynamic[i])
		}
		if b.dynamic[i] != h {
			return true
		}
	}
	if len(b.paint) != len(paint) {
		return true
	}
	for i, vb := range paint {
		if b.paint[i] != vb.handle {
			return true
		}
	}
	var ih gfx.Buffer
	if index != nil {
		ih = index.handle
	}
	return b.index != ih
}

func vertexBufferHandle(vb *VertexBuffer) gfx.Buffer {
	if vb == nil {
		return gfx.Buffer{}
	}
	return vb.handle
}

// bindSegment makes the (segment, layer) vertex-array binding
// current, building it first if it is absent or stale. A cache hit
// costs a single BindVertexArray; attribute pointers are only ever
// specified during a build.
func (p *Program) bindSegment(ctx gfx.Context, seg *Segment, opts *DrawOptions, paint []*VertexBuffer) {
	b := seg.bindings[opts.LayerID]
	if b != nil && !b.stale(opts.Layout, opts.Dynamic, paint, opts.Index) {
		ctx.BindVertexArray(b.vao)
		return
	}
	if b != nil {
		// Stale bindings may reference freed buffers; replace
		// proactively.
		ctx.DeleteVertexArray(b.vao)
		gfx.Logger().Debug("render: rebuilding vertex-array binding",
			"program", p.name, "layer", opts.LayerID)
	}

	nb := &VertexArrayBinding{vao: ctx.CreateVertexArray()}
	ctx.BindVertexArray(nb.vao)
	nb.layout = p.bindVertexBuffer(ctx, opts.Layout)
	for i := 0; i < MaxDynamicBuffers && i < len(opts.Dynamic); i++ {
		nb.dynamic[i] = p.bindVertexBuffer(ctx, opts.Dynamic[i])
	}
	for _, vb := range paint {
		nb.paint = append(nb.paint, p.bindVertexBuffer(ctx, vb))
	}
	if opts.Index != nil {
		ctx.BindBuffer(gfx.ElementArrayBuffer, opts.Index.handle)
		nb.index = opts.Index.handle
	}

	if seg.bindings == nil {
		seg.bindings = make(map[string]*VertexArrayBinding)
	}
	seg.bindings[opts.LayerID] = nb
}

// bindVertexBuffer attaches one vertex buffer to the vertex array
// being built, wiring each layout attribute that exists in the
// program's attribute table.
func (p *Program) bindVertexBuffer(ctx gfx.Context, vb *VertexBuffer) gfx.Buffer {
	if vb == nil {
		return gfx.Buffer{}
	}
	ctx.BindBuffer(gfx.ArrayBuffer, vb.handle)
	for _, a := range vb.Attributes {
		idx, ok := p.attributes[a.Name]
		if !ok {
			continue
		}
		ctx.EnableVertexAttrib(idx)
		ctx.VertexAttribPointer(idx, a.Components, a.Type, a.Normalized, vb.Stride, a.Offset)
	}
	return vb.handle
}
