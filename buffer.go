// Copyright 2026 The gomapgl Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"encoding/binary"

	"golang.org/x/mobile/exp/f32"

	"github.com/gomapgl/render/gfx"
)

// VertexAttribute describes one attribute within an interleaved
// vertex buffer: which shader input it feeds and how to read it.
type VertexAttribute struct {
	// Name is the shader input name, looked up in the program's
	// attribute table at binding time.
	Name string
	// Components is the number of components per vertex (1-4).
	Components int
	// Type is the component type in the buffer.
	Type gfx.AttribType
	// Normalized maps integer components onto [0,1] or [-1,1].
	Normalized bool
	// Offset is the byte offset of the first component.
	Offset int
}

// VertexBuffer pairs a device buffer with its interleaved layout.
// The handle doubles as the identity token vertex-array bindings use
// to detect that an upstream producer replaced the buffer.
type VertexBuffer struct {
	handle gfx.Buffer

	// Stride is the byte distance between consecutive vertices.
	Stride int
	// Attributes is the interleaved layout.
	Attributes []VertexAttribute
}

// NewVertexBuffer creates a device buffer from float32 vertex data.
// Use gfx.DynamicDraw for buffers that will be rewritten via Update.
func NewVertexBuffer(ctx gfx.Context, data []float32, stride int, usage gfx.BufferUsage, attrs ...VertexAttribute) *VertexBuffer {
	b := ctx.CreateBuffer()
	ctx.BindBuffer(gfx.ArrayBuffer, b)
	ctx.BufferData(gfx.ArrayBuffer, f32.Bytes(binary.LittleEndian, data...), usage)
	return &VertexBuffer{handle: b, Stride: stride, Attributes: attrs}
}

// NewVertexBufferBytes creates a device buffer from pre-packed vertex
// data, for layouts with integer components.
func NewVertexBufferBytes(ctx gfx.Context, data []byte, stride int, usage gfx.BufferUsage, attrs ...VertexAttribute) *VertexBuffer {
	b := ctx.CreateBuffer()
	ctx.BindBuffer(gfx.ArrayBuffer, b)
	ctx.BufferData(gfx.ArrayBuffer, data, usage)
	return &VertexBuffer{handle: b, Stride: stride, Attributes: attrs}
}

// Update rewrites the buffer contents in place. The layout is
// unchanged, so cached vertex-array bindings remain valid: identity,
// not contents, is what invalidates them.
func (vb *VertexBuffer) Update(ctx gfx.Context, data []float32) {
	ctx.BindBuffer(gfx.ArrayBuffer, vb.handle)
	ctx.BufferSubData(gfx.ArrayBuffer, 0, f32.Bytes(binary.LittleEndian, data...))
}

// Handle returns the identity token of the underlying device buffer.
func (vb *VertexBuffer) Handle() gfx.Buffer {
	return vb.handle
}

// Delete releases the device buffer. Any vertex-array binding still
// referencing it must be considered stale and will be rebuilt on the
// next draw that would use it.
func (vb *VertexBuffer) Delete(ctx gfx.Context) {
	ctx.DeleteBuffer(vb.handle)
	vb.handle = gfx.Buffer{}
}

// IndexBuffer owns the element indices a segment sequence draws from.
// Indices are 16-bit; element byte offsets in draw calls assume that.
type IndexBuffer struct {
	handle gfx.Buffer
}

// NewIndexBuffer creates a device buffer from 16-bit indices.
func NewIndexBuffer(ctx gfx.Context, indices []uint16) *IndexBuffer {
	data := make([]byte, 2*len(indices))
	for i, v := range indices {
		binary.LittleEndian.PutUint16(data[2*i:], v)
	}
	b := ctx.CreateBuffer()
	ctx.BindBuffer(gfx.ElementArrayBuffer, b)
	ctx.BufferData(gfx.ElementArrayBuffer, data, gfx.StaticDraw)
	return &IndexBuffer{handle: b}
}

// Handle returns the identity token of the underlying device buffer.
func (ib *IndexBuffer) Handle() gfx.Buffer {
	return ib.handle
}

// Delete releases the device buffer.
func (ib *IndexBuffer) Delete(ctx gfx.Context) {
	ctx.DeleteBuffer(ib.handle)
	ib.handle = gfx.Buffer{}
}
