// Copyright 2026 The gomapgl Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gfxtest provides a recording, in-memory implementation of
// gfx.Context for tests.
//
// The fake hands out deterministic handles, records every device call
// in order, and can be scripted to fail compilation or linking, to
// report the context lost, and to leave chosen uniform names
// unresolved the way a driver's dead-code elimination would.
package gfxtest

import (
	"fmt"

	"github.com/gomapgl/render/gfx"
)

// DrawCall records one DrawElements invocation.
type DrawCall struct {
	Mode       gfx.PrimitiveMode
	Count      int
	ByteOffset int
}

// UniformPush records one uniform value reaching the device, keyed by
// the name the location was resolved under.
type UniformPush struct {
	Name  string
	Value any
}

// Context is a scriptable fake device. The zero value is not usable;
// call New. Configure the exported script fields before exercising
// code under test, then inspect the exported recordings.
type Context struct {
	// Lost makes ContextLost report true.
	Lost bool
	// CompileFailLog, when it contains a stage, fails that stage's
	// compile with the given diagnostic log.
	CompileFailLog map[gfx.ShaderType]string
	// LinkFailLog, when non-empty, fails linking with this log.
	LinkFailLog string
	// Unresolvable names report no uniform location, as if eliminated
	// by the driver.
	Unresolvable map[string]bool

	// Calls is the ordered coarse trace of every device call.
	Calls []string
	// Draws records DrawElements calls.
	Draws []DrawCall
	// Pushes records uniform values by resolved name.
	Pushes []UniformPush
	// LocationLookups counts UniformLocation calls per name.
	LocationLookups map[string]int
	// AttribBindings records BindAttribLocation name to index.
	AttribBindings map[string]uint32
	// TextureBinds records the active unit at each BindTexture2D.
	TextureBinds []int
	// VertexArraysCreated and VertexArraysDeleted count VAO churn.
	VertexArraysCreated int
	VertexArraysDeleted int
	// AttribPointerCalls counts VertexAttribPointer calls.
	AttribPointerCalls int
	// CurrentProgram is the last UseProgram argument.
	CurrentProgram gfx.Program
	// LastBufferData is a copy of the bytes from the most recent
	// BufferData or BufferSubData call.
	LastBufferData []byte

	nextHandle  uint32
	nextUniform int32
	activeUnit  int
	shaderTypes map[gfx.Shader]gfx.ShaderType
	sources     map[gfx.ShaderType]string
	locations   map[string]gfx.Uniform
	names       map[gfx.Uniform]string
}

// New returns an empty scriptable context.
func New() *Context {
	return &Context{
		CompileFailLog:  make(map[gfx.ShaderType]string),
		Unresolvable:    make(map[string]bool),
		LocationLookups: make(map[string]int),
		AttribBindings:  make(map[string]uint32),
		shaderTypes:     make(map[gfx.Shader]gfx.ShaderType),
		sources:         make(map[gfx.ShaderType]string),
		locations:       make(map[string]gfx.Uniform),
		names:           make(map[gfx.Uniform]string),
	}
}

// CallCount returns how many device calls have been recorded.
func (c *Context) CallCount() int {
	return len(c.Calls)
}

// Source returns the last source text set for a stage.
func (c *Context) Source(t gfx.ShaderType) string {
	return c.sources[t]
}

// PushedValues returns every recorded value for one uniform name, in
// push order.
func (c *Context) PushedValues(name string) []any {
	var vs []any
	for _, p := range c.Pushes {
		if p.Name == name {
			vs = append(vs, p.Value)
		}
	}
	return vs
}

func (c *Context) record(format string, args ...any) {
	c.Calls = append(c.Calls, fmt.Sprintf(format, args...))
}

func (c *Context) handle() uint32 {
	c.nextHandle++
	return c.nextHandle
}

func (c *Context) ContextLost() bool {
	return c.Lost
}

func (c *Context) CreateShader(t gfx.ShaderType) gfx.Shader {
	s := gfx.Shader{Value: c.handle()}
	c.shaderTypes[s] = t
	c.record("CreateShader(%v)", t)
	return s
}

func (c *Context) ShaderSource(s gfx.Shader, src string) {
	c.sources[c.shaderTypes[s]] = src
	c.record("ShaderSource(%v)", c.shaderTypes[s])
}

func (c *Context) CompileShader(s gfx.Shader) {
	c.record("CompileShader(%v)", c.shaderTypes[s])
}

func (c *Context) ShaderCompiled(s gfx.Shader) bool {
	c.record("ShaderCompiled(%v)", c.shaderTypes[s])
	_, fail := c.CompileFailLog[c.shaderTypes[s]]
	return !fail
}

func (c *Context) ShaderInfoLog(s gfx.Shader) string {
	c.record("ShaderInfoLog(%v)", c.shaderTypes[s])
	return c.CompileFailLog[c.shaderTypes[s]]
}

func (c *Context) DeleteShader(s gfx.Shader) {
	c.record("DeleteShader(%v)", c.shaderTypes[s])
}

func (c *Context) CreateProgram() gfx.Program {
	c.record("CreateProgram")
	return gfx.Program{Value: c.handle()}
}

func (c *Context) AttachShader(p gfx.Program, s gfx.Shader) {
	c.record("AttachShader(%v)", c.shaderTypes[s])
}

func (c *Context) BindAttribLocation(p gfx.Program, index uint32, name string) {
	c.AttribBindings[name] = index
	c.record("BindAttribLocation(%d,%s)", index, name)
}

func (c *Context) LinkProgram(p gfx.Program) {
	c.record("LinkProgram")
}

func (c *Context) ProgramLinked(p gfx.Program) bool {
	c.record("ProgramLinked")
	return c.LinkFailLog == ""
}

func (c *Context) ProgramInfoLog(p gfx.Program) string {
	c.record("ProgramInfoLog")
	return c.LinkFailLog
}

func (c *Context) DeleteProgram(p gfx.Program) {
	c.record("DeleteProgram")
}

func (c *Context) UseProgram(p gfx.Program) {
	c.CurrentProgram = p
	c.record("UseProgram")
}

func (c *Context) UniformLocation(p gfx.Program, name string) (gfx.Uniform, bool) {
	c.LocationLookups[name]++
	c.record("UniformLocation(%s)", name)
	if c.Unresolvable[name] {
		return gfx.Uniform{}, false
	}
	if loc, ok := c.locations[name]; ok {
		return loc, true
	}
	c.nextUniform++
	loc := gfx.Uniform{Value: c.nextUniform}
	c.locations[name] = loc
	c.names[loc] = name
	return loc, true
}

func (c *Context) push(u gfx.Uniform, v any) {
	name := c.names[u]
	c.Pushes = append(c.Pushes, UniformPush{Name: name, Value: v})
	c.record("Uniform(%s)", name)
}

func (c *Context) Uniform1i(u gfx.Uniform, v int32) { c.push(u, v) }

func (c *Context) Uniform1f(u gfx.Uniform, v float32) { c.push(u, v) }

func (c *Context) Uniform2f(u gfx.Uniform, v0, v1 float32) { c.push(u, [2]float32{v0, v1}) }

func (c *Context) Uniform3f(u gfx.Uniform, v0, v1, v2 float32) {
	c.push(u, [3]float32{v0, v1, v2})
}

func (c *Context) Uniform4f(u gfx.Uniform, v0, v1, v2, v3 float32) {
	c.push(u, [4]float32{v0, v1, v2, v3})
}

func (c *Context) UniformMatrix4(u gfx.Uniform, v [16]float32) { c.push(u, v) }

func (c *Context) CreateBuffer() gfx.Buffer {
	c.record("CreateBuffer")
	return gfx.Buffer{Value: c.handle()}
}

func (c *Context) BindBuffer(target gfx.BufferTarget, b gfx.Buffer) {
	c.record("BindBuffer(%d)", target)
}

func (c *Context) BufferData(target gfx.BufferTarget, data []byte, usage gfx.BufferUsage) {
	c.LastBufferData = append([]byte(nil), data...)
	c.record("BufferData(%d,%d)", target, len(data))
}

func (c *Context) BufferSubData(target gfx.BufferTarget, offset int, data []byte) {
	c.LastBufferData = append([]byte(nil), data...)
	c.record("BufferSubData(%d,%d,%d)", target, offset, len(data))
}

func (c *Context) DeleteBuffer(b gfx.Buffer) {
	c.record("DeleteBuffer")
}

func (c *Context) CreateVertexArray() gfx.VertexArray {
	c.VertexArraysCreated++
	c.record("CreateVertexArray")
	return gfx.VertexArray{Value: c.handle()}
}

func (c *Context) BindVertexArray(v gfx.VertexArray) {
	c.record("BindVertexArray")
}

func (c *Context) DeleteVertexArray(v gfx.VertexArray) {
	c.VertexArraysDeleted++
	c.record("DeleteVertexArray")
}

func (c *Context) EnableVertexAttrib(index uint32) {
	c.record("EnableVertexAttrib(%d)", index)
}

func (c *Context) VertexAttribPointer(index uint32, components int, t gfx.AttribType, normalized bool, stride, offset int) {
	c.AttribPointerCalls++
	c.record("VertexAttribPointer(%d,%d,%d,%d)", index, components, stride, offset)
}

func (c *Context) CreateTexture() gfx.Texture {
	c.record("CreateTexture")
	return gfx.Texture{Value: c.handle()}
}

func (c *Context) ActiveTexture(unit int) {
	c.activeUnit = unit
	c.record("ActiveTexture(%d)", unit)
}

func (c *Context) BindTexture2D(t gfx.Texture) {
	c.TextureBinds = append(c.TextureBinds, c.activeUnit)
	c.record("BindTexture2D(unit=%d)", c.activeUnit)
}

func (c *Context) TexImage2D(width, height int, rgba []byte) {
	c.record("TexImage2D(%dx%d,%d)", width, height, len(rgba))
}

func (c *Context) DeleteTexture(t gfx.Texture) {
	c.record("DeleteTexture")
}

func (c *Context) SetDepthMode(m gfx.DepthMode) {
	c.record("SetDepthMode")
}

func (c *Context) SetStencilMode(m gfx.StencilMode) {
	c.record("SetStencilMode")
}

func (c *Context) SetColorMode(m gfx.ColorMode) {
	c.record("SetColorMode")
}

func (c *Context) SetCullMode(m gfx.CullFaceMode) {
	c.record("SetCullMode")
}

func (c *Context) DrawElements(mode gfx.PrimitiveMode, count, byteOffset int) {
	c.Draws = append(c.Draws, DrawCall{Mode: mode, Count: count, ByteOffset: byteOffset})
	c.record("DrawElements(%d,%d,%d)", mode, count, byteOffset)
}

var _ gfx.Context = (*Context)(nil)
