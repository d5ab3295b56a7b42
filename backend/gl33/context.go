// Copyright 2026 The gomapgl Authors
// SPDX-License-Identifier: BSD-3-Clause

package gl33

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/gomapgl/render/gfx"
)

// Context implements gfx.Context on OpenGL 3.3 core. Not safe for
// concurrent use; see the package comment for threading rules.
type Context struct {
	// Shadowed GL state. The valid flags distinguish "never set" from
	// "set to the zero value".
	program      gfx.Program
	programValid bool
	vao          gfx.VertexArray
	vaoValid     bool
	activeUnit   int
	unitValid    bool

	depth        gfx.DepthMode
	depthValid   bool
	stencil      gfx.StencilMode
	stencilValid bool
	color        gfx.ColorMode
	colorValid   bool
	cull         gfx.CullFaceMode
	cullValid    bool
}

// New returns a Context ready to issue calls on the GL context
// current on this thread.
func New() *Context {
	return &Context{}
}

// ResetState forgets all shadowed state, forcing the next setters to
// reach the device. Call after foreign code has touched the GL
// context.
func (c *Context) ResetState() {
	*c = Context{}
}

// glStr null-terminates a name for the GL string APIs.
func glStr(s string) *uint8 {
	return gl.Str(s + "\x00")
}

// ContextLost reports false: desktop core contexts have no loss
// notification.
func (c *Context) ContextLost() bool {
	return false
}

func (c *Context) CreateShader(t gfx.ShaderType) gfx.Shader {
	return gfx.Shader{Value: gl.CreateShader(shaderType(t))}
}

func (c *Context) ShaderSource(s gfx.Shader, src string) {
	csources, free := gl.Strs(src + "\x00")
	defer free()
	gl.ShaderSource(s.Value, 1, csources, nil)
}

func (c *Context) CompileShader(s gfx.Shader) {
	gl.CompileShader(s.Value)
}

func (c *Context) ShaderCompiled(s gfx.Shader) bool {
	var status int32
	gl.GetShaderiv(s.Value, gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

func (c *Context) ShaderInfoLog(s gfx.Shader) string {
	var size int32
	gl.GetShaderiv(s.Value, gl.INFO_LOG_LENGTH, &size)
	if size == 0 {
		return ""
	}
	log := make([]byte, size+1)
	var n int32
	gl.GetShaderInfoLog(s.Value, size, &n, &log[0])
	return string(log[:n])
}

func (c *Context) DeleteShader(s gfx.Shader) {
	gl.DeleteShader(s.Value)
}

func (c *Context) CreateProgram() gfx.Program {
	return gfx.Program{Value: gl.CreateProgram()}
}

func (c *Context) AttachShader(p gfx.Program, s gfx.Shader) {
	gl.AttachShader(p.Value, s.Value)
}

func (c *Context) BindAttribLocation(p gfx.Program, index uint32, name string) {
	gl.BindAttribLocation(p.Value, index, glStr(name))
}

func (c *Context) LinkProgram(p gfx.Program) {
	gl.LinkProgram(p.Value)
}

func (c *Context) ProgramLinked(p gfx.Program) bool {
	var status int32
	gl.GetProgramiv(p.Value, gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

func (c *Context) ProgramInfoLog(p gfx.Program) string {
	var size int32
	gl.GetProgramiv(p.Value, gl.INFO_LOG_LENGTH, &size)
	if size == 0 {
		return ""
	}
	log := make([]byte, size+1)
	var n int32
	gl.GetProgramInfoLog(p.Value, size, &n, &log[0])
	return string(log[:n])
}

func (c *Context) DeleteProgram(p gfx.Program) {
	if c.programValid && c.program == p {
		c.programValid = false
	}
	gl.DeleteProgram(p.Value)
}

func (c *Context) UseProgram(p gfx.Program) {
	if c.programValid && c.program == p {
		return
	}
	gl.UseProgram(p.Value)
	c.program = p
	c.programValid = true
}

func (c *Context) UniformLocation(p gfx.Program, name string) (gfx.Uniform, bool) {
	loc := gl.GetUniformLocation(p.Value, glStr(name))
	if loc < 0 {
		return gfx.Uniform{}, false
	}
	return gfx.Uniform{Value: loc}, true
}

func (c *Context) Uniform1i(u gfx.Uniform, v int32) {
	gl.Uniform1i(u.Value, v)
}

func (c *Context) Uniform1f(u gfx.Uniform, v float32) {
	gl.Uniform1f(u.Value, v)
}

func (c *Context) Uniform2f(u gfx.Uniform, v0, v1 float32) {
	gl.Uniform2f(u.Value, v0, v1)
}

func (c *Context) Uniform3f(u gfx.Uniform, v0, v1, v2 float32) {
	gl.Uniform3f(u.Value, v0, v1, v2)
}

func (c *Context) Uniform4f(u gfx.Uniform, v0, v1, v2, v3 float32) {
	gl.Uniform4f(u.Value, v0, v1, v2, v3)
}

func (c *Context) UniformMatrix4(u gfx.Uniform, v [16]float32) {
	gl.UniformMatrix4fv(u.Value, 1, false, &v[0])
}

func (c *Context) CreateBuffer() gfx.Buffer {
	var b uint32
	gl.GenBuffers(1, &b)
	return gfx.Buffer{Value: b}
}

func (c *Context) BindBuffer(target gfx.BufferTarget, b gfx.Buffer) {
	gl.BindBuffer(bufferTarget(target), b.Value)
}

func (c *Context) BufferData(target gfx.BufferTarget, data []byte, usage gfx.BufferUsage) {
	gl.BufferData(bufferTarget(target), len(data), gl.Ptr(data), bufferUsage(usage))
}

func (c *Context) BufferSubData(target gfx.BufferTarget, offset int, data []byte) {
	gl.BufferSubData(bufferTarget(target), offset, len(data), gl.Ptr(data))
}

func (c *Context) DeleteBuffer(b gfx.Buffer) {
	gl.DeleteBuffers(1, &b.Value)
}

func (c *Context) CreateVertexArray() gfx.VertexArray {
	var v uint32
	gl.GenVertexArrays(1, &v)
	return gfx.VertexArray{Value: v}
}

func (c *Context) BindVertexArray(v gfx.VertexArray) {
	if c.vaoValid && c.vao == v {
		return
	}
	gl.BindVertexArray(v.Value)
	c.vao = v
	c.vaoValid = true
}

func (c *Context) DeleteVertexArray(v gfx.VertexArray) {
	if c.vaoValid && c.vao == v {
		c.vaoValid = false
	}
	gl.DeleteVertexArrays(1, &v.Value)
}

func (c *Context) EnableVertexAttrib(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (c *Context) VertexAttribPointer(index uint32, components int, t gfx.AttribType, normalized bool, stride, offset int) {
	gl.VertexAttribPointer(index, int32(components), attribType(t), normalized, int32(stride), gl.PtrOffset(offset))
}

func (c *Context) CreateTexture() gfx.Texture {
	var t uint32
	gl.GenTextures(1, &t)
	return gfx.Texture{Value: t}
}

func (c *Context) ActiveTexture(unit int) {
	if c.unitValid && c.activeUnit == unit {
		return
	}
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	c.activeUnit = unit
	c.unitValid = true
}

func (c *Context) BindTexture2D(t gfx.Texture) {
	gl.BindTexture(gl.TEXTURE_2D, t.Value)
}

func (c *Context) TexImage2D(width, height int, rgba []byte) {
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba))
}

func (c *Context) DeleteTexture(t gfx.Texture) {
	gl.DeleteTextures(1, &t.Value)
}

func (c *Context) SetDepthMode(m gfx.DepthMode) {
	if c.depthValid && c.depth == m {
		return
	}
	if m.Func == gfx.Always && !m.Mask {
		gl.Disable(gl.DEPTH_TEST)
	} else {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthFunc(compareFunc(m.Func))
		gl.DepthMask(m.Mask)
		gl.DepthRange(float64(m.Range[0]), float64(m.Range[1]))
	}
	c.depth = m
	c.depthValid = true
}

func (c *Context) SetStencilMode(m gfx.StencilMode) {
	if c.stencilValid && c.stencil == m {
		return
	}
	if m.Test == gfx.Always && m.Fail == gfx.Keep && m.DepthFail == gfx.Keep && m.Pass == gfx.Keep {
		gl.Disable(gl.STENCIL_TEST)
	} else {
		gl.Enable(gl.STENCIL_TEST)
		gl.StencilFunc(compareFunc(m.Test), int32(m.Ref), m.ReadMask)
		gl.StencilOp(stencilOp(m.Fail), stencilOp(m.DepthFail), stencilOp(m.Pass))
		gl.StencilMask(m.WriteMask)
	}
	c.stencil = m
	c.stencilValid = true
}

func (c *Context) SetColorMode(m gfx.ColorMode) {
	if c.colorValid && c.color == m {
		return
	}
	if m.SrcFactor == gfx.BlendOne && m.DstFactor == gfx.BlendZero {
		gl.Disable(gl.BLEND)
	} else {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(blendFactor(m.SrcFactor), blendFactor(m.DstFactor))
	}
	gl.ColorMask(m.Mask[0], m.Mask[1], m.Mask[2], m.Mask[3])
	c.color = m
	c.colorValid = true
}

func (c *Context) SetCullMode(m gfx.CullFaceMode) {
	if c.cullValid && c.cull == m {
		return
	}
	if m.Enabled {
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(cullFace(m.Face))
		gl.FrontFace(frontFace(m.Front))
	} else {
		gl.Disable(gl.CULL_FACE)
	}
	c.cull = m
	c.cullValid = true
}

func (c *Context) DrawElements(mode gfx.PrimitiveMode, count, byteOffset int) {
	gl.DrawElements(primitiveMode(mode), int32(count), gl.UNSIGNED_SHORT, gl.PtrOffset(byteOffset))
}

var _ gfx.Context = (*Context)(nil)
