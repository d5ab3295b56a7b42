// Copyright 2026 The gomapgl Authors
// SPDX-License-Identifier: BSD-3-Clause

package gl33

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/gomapgl/render/gfx"
)

// Pure enum translations from the gfx vocabulary to GL constants.

func shaderType(t gfx.ShaderType) uint32 {
	if t == gfx.VertexShader {
		return gl.VERTEX_SHADER
	}
	return gl.FRAGMENT_SHADER
}

func bufferTarget(t gfx.BufferTarget) uint32 {
	if t == gfx.ElementArrayBuffer {
		return gl.ELEMENT_ARRAY_BUFFER
	}
	return gl.ARRAY_BUFFER
}

func bufferUsage(u gfx.BufferUsage) uint32 {
	if u == gfx.DynamicDraw {
		return gl.DYNAMIC_DRAW
	}
	return gl.STATIC_DRAW
}

func attribType(t gfx.AttribType) uint32 {
	switch t {
	case gfx.Short:
		return gl.SHORT
	case gfx.UnsignedShort:
		return gl.UNSIGNED_SHORT
	case gfx.UnsignedByte:
		return gl.UNSIGNED_BYTE
	default:
		return gl.FLOAT
	}
}

func primitiveMode(m gfx.PrimitiveMode) uint32 {
	switch m {
	case gfx.Lines:
		return gl.LINES
	case gfx.LineStrip:
		return gl.LINE_STRIP
	default:
		return gl.TRIANGLES
	}
}

func compareFunc(f gfx.CompareFunc) uint32 {
	switch f {
	case gfx.Never:
		return gl.NEVER
	case gfx.Less:
		return gl.LESS
	case gfx.Equal:
		return gl.EQUAL
	case gfx.LessEqual:
		return gl.LEQUAL
	case gfx.Greater:
		return gl.GREATER
	case gfx.NotEqual:
		return gl.NOTEQUAL
	case gfx.GreaterEqual:
		return gl.GEQUAL
	default:
		return gl.ALWAYS
	}
}

func stencilOp(o gfx.StencilOp) uint32 {
	switch o {
	case gfx.ZeroOut:
		return gl.ZERO
	case gfx.Replace:
		return gl.REPLACE
	case gfx.Increment:
		return gl.INCR
	case gfx.IncrementWrap:
		return gl.INCR_WRAP
	case gfx.Decrement:
		return gl.DECR
	case gfx.DecrementWrap:
		return gl.DECR_WRAP
	case gfx.Invert:
		return gl.INVERT
	default:
		return gl.KEEP
	}
}

func blendFactor(f gfx.BlendFactor) uint32 {
	switch f {
	case gfx.BlendZero:
		return gl.ZERO
	case gfx.BlendSrcAlpha:
		return gl.SRC_ALPHA
	case gfx.BlendOneMinusSrcAlpha:
		return gl.ONE_MINUS_SRC_ALPHA
	case gfx.BlendDstColor:
		return gl.DST_COLOR
	case gfx.BlendOneMinusDstColor:
		return gl.ONE_MINUS_DST_COLOR
	default:
		return gl.ONE
	}
}

func cullFace(f gfx.CullFace) uint32 {
	if f == gfx.Front {
		return gl.FRONT
	}
	return gl.BACK
}

func frontFace(f gfx.FrontFace) uint32 {
	if f == gfx.Clockwise {
		return gl.CW
	}
	return gl.CCW
}
