// Copyright 2026 The gomapgl Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

// ShaderType selects a pipeline stage when creating a shader object.
type ShaderType int

const (
	// VertexShader is the vertex stage.
	VertexShader ShaderType = iota
	// FragmentShader is the fragment stage.
	FragmentShader
)

// String returns the stage name as it appears in diagnostics.
func (t ShaderType) String() string {
	switch t {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	default:
		return "unknown"
	}
}

// BufferTarget selects the binding point for buffer operations.
type BufferTarget int

const (
	// ArrayBuffer is the vertex attribute data binding point.
	ArrayBuffer BufferTarget = iota
	// ElementArrayBuffer is the index data binding point.
	ElementArrayBuffer
)

// BufferUsage hints how often buffer contents will be rewritten.
type BufferUsage int

const (
	// StaticDraw marks data written once and drawn many times.
	StaticDraw BufferUsage = iota
	// DynamicDraw marks data rewritten repeatedly between draws.
	DynamicDraw
)

// AttribType is the component type of a vertex attribute.
type AttribType int

const (
	// Float is a 32-bit float component.
	Float AttribType = iota
	// Short is a signed 16-bit integer component.
	Short
	// UnsignedShort is an unsigned 16-bit integer component.
	UnsignedShort
	// UnsignedByte is an unsigned 8-bit integer component.
	UnsignedByte
)

// PrimitiveMode is the primitive topology of an indexed draw.
type PrimitiveMode int

const (
	// Triangles draws independent triangles, three indices each.
	Triangles PrimitiveMode = iota
	// Lines draws independent line segments, two indices each.
	Lines
	// LineStrip draws a connected strip, one index per vertex.
	LineStrip
)

// Shader is an opaque handle to a compiled-or-compiling shader object.
// The zero value is not a live object.
type Shader struct {
	Value uint32
}

// Program is an opaque handle to a linked-or-linking program object.
// The zero value is not a live object.
type Program struct {
	Value uint32
}

// Buffer is an opaque handle to a device buffer object. Handles are
// comparable; two equal handles refer to the same device buffer, so
// handle inequality is the buffer-identity-change signal used for
// vertex-array binding invalidation.
type Buffer struct {
	Value uint32
}

// Texture is an opaque handle to a 2D texture object.
type Texture struct {
	Value uint32
}

// VertexArray is an opaque handle to a vertex-array object.
type VertexArray struct {
	Value uint32
}

// Uniform is a resolved uniform location within one program.
// Locations are only ever obtained from Context.UniformLocation, which
// reports absence explicitly; a Uniform value in hand is always valid
// for the program it was resolved against.
type Uniform struct {
	Value int32
}

// Context is the graphics device wrapper the render core draws
// through. Implementations translate these calls onto a concrete
// graphics API and may elide calls that would not change device state.
//
// All methods must be called from the thread that owns the underlying
// graphics context.
type Context interface {
	// ContextLost reports whether the underlying graphics context has
	// been lost. The render core checks this only at shader-stage
	// creation time; a lost context there degrades the program into a
	// permanent no-op instead of an error.
	ContextLost() bool

	// CreateShader creates an empty shader object for the given stage.
	CreateShader(t ShaderType) Shader
	// ShaderSource replaces the source text of a shader object.
	ShaderSource(s Shader, src string)
	// CompileShader compiles the current source of a shader object.
	CompileShader(s Shader)
	// ShaderCompiled reports whether the last compile succeeded.
	ShaderCompiled(s Shader) bool
	// ShaderInfoLog returns the diagnostic log of the last compile.
	ShaderInfoLog(s Shader) string
	// DeleteShader releases a shader object.
	DeleteShader(s Shader)

	// CreateProgram creates an empty program object.
	CreateProgram() Program
	// AttachShader attaches a shader object to a program.
	AttachShader(p Program, s Shader)
	// BindAttribLocation assigns an attribute index to a named vertex
	// input. Must be called before LinkProgram to take effect.
	BindAttribLocation(p Program, index uint32, name string)
	// LinkProgram links the attached stages of a program.
	LinkProgram(p Program)
	// ProgramLinked reports whether the last link succeeded.
	ProgramLinked(p Program) bool
	// ProgramInfoLog returns the diagnostic log of the last link.
	ProgramInfoLog(p Program) string
	// DeleteProgram releases a program object.
	DeleteProgram(p Program)
	// UseProgram makes a program current for subsequent uniform pushes
	// and draws.
	UseProgram(p Program)

	// UniformLocation resolves a uniform name within a linked program.
	// The second result is false when the name has no location, which
	// is a legitimate outcome for uniforms eliminated as dead code.
	UniformLocation(p Program, name string) (Uniform, bool)

	// Uniform1i pushes a scalar int uniform.
	Uniform1i(u Uniform, v int32)
	// Uniform1f pushes a scalar float uniform.
	Uniform1f(u Uniform, v float32)
	// Uniform2f pushes a vec2 uniform.
	Uniform2f(u Uniform, v0, v1 float32)
	// Uniform3f pushes a vec3 uniform.
	Uniform3f(u Uniform, v0, v1, v2 float32)
	// Uniform4f pushes a vec4 uniform.
	Uniform4f(u Uniform, v0, v1, v2, v3 float32)
	// UniformMatrix4 pushes a mat4 uniform in column-major order.
	UniformMatrix4(u Uniform, v [16]float32)

	// CreateBuffer creates an empty buffer object.
	CreateBuffer() Buffer
	// BindBuffer makes a buffer current at a binding point.
	BindBuffer(target BufferTarget, b Buffer)
	// BufferData allocates and fills the currently bound buffer.
	BufferData(target BufferTarget, data []byte, usage BufferUsage)
	// BufferSubData overwrites a range of the currently bound buffer.
	BufferSubData(target BufferTarget, offset int, data []byte)
	// DeleteBuffer releases a buffer object.
	DeleteBuffer(b Buffer)

	// CreateVertexArray creates an empty vertex-array object.
	CreateVertexArray() VertexArray
	// BindVertexArray makes a vertex-array object current.
	BindVertexArray(v VertexArray)
	// DeleteVertexArray releases a vertex-array object.
	DeleteVertexArray(v VertexArray)
	// EnableVertexAttrib enables a vertex attribute index in the
	// currently bound vertex array.
	EnableVertexAttrib(index uint32)
	// VertexAttribPointer specifies the layout of one attribute within
	// the currently bound array buffer.
	VertexAttribPointer(index uint32, components int, t AttribType, normalized bool, stride, offset int)

	// CreateTexture creates an empty 2D texture object.
	CreateTexture() Texture
	// ActiveTexture selects the texture unit subsequent binds apply to.
	ActiveTexture(unit int)
	// BindTexture2D binds a texture to the active unit's 2D target.
	BindTexture2D(t Texture)
	// TexImage2D uploads tightly packed RGBA pixels to the texture
	// bound on the active unit.
	TexImage2D(width, height int, rgba []byte)
	// DeleteTexture releases a texture object.
	DeleteTexture(t Texture)

	// SetDepthMode applies a depth test configuration.
	SetDepthMode(m DepthMode)
	// SetStencilMode applies a stencil test configuration.
	SetStencilMode(m StencilMode)
	// SetColorMode applies a blend and color-mask configuration.
	SetColorMode(m ColorMode)
	// SetCullMode applies a face-culling configuration.
	SetCullMode(m CullFaceMode)

	// DrawElements issues one indexed draw from the currently bound
	// vertex array, reading count 16-bit indices starting at the given
	// byte offset into the bound element array buffer.
	DrawElements(mode PrimitiveMode, count, byteOffset int)
}
