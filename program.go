// Copyright 2026 The gomapgl Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gomapgl/render/gfx"
	"github.com/gomapgl/render/shader"
)

// Builders supplies the four binding-group builders invoked after a
// successful link. Nil fields fall back to [BindNames] over the
// group's conventional name list (layer static uniforms, terrain
// prelude uniforms, projection prelude uniforms, configuration
// dynamic uniforms respectively).
type Builders struct {
	Fixed      BindingsBuilder
	Terrain    BindingsBuilder
	Projection BindingsBuilder
	DataDriven BindingsBuilder
}

// ProgramConfig is everything one program build needs besides the
// device context.
type ProgramConfig struct {
	// Name identifies the program in diagnostics and cache keys.
	Name string
	// Layer is the layer's shader source and declaration lists.
	Layer shader.Source
	// Shaders is the assembled text from [shader.Assemble]. It must
	// have been assembled from Layer and Projection; the compiler
	// only consumes the declaration lists, not the raw text.
	Shaders shader.Assembled
	// Projection supplies the projection prelude's uniform list.
	Projection shader.Projection
	// Style optionally contributes dynamic attribute and uniform
	// names. Nil means no configuration.
	Style StyleConfig
	// Builders are the binding-group builders; zero-value fields get
	// defaults.
	Builders Builders
}

// Program is one compiled and linked GPU program together with its
// attribute table and four uniform binding groups. A Program is
// immutable after construction; it is discarded, never rebuilt in
// place. After graphics-context loss and recovery a fresh Program
// must be built.
type Program struct {
	name          string
	handle        gfx.Program
	attributes    map[string]uint32
	numAttributes int

	fixed      Bindings
	terrain    Bindings
	projection Bindings
	dataDriven Bindings

	// failed is set at most once, during construction, when the
	// context reports itself lost. It is never cleared; every Draw on
	// a failed program is a no-op.
	failed bool
}

// NewProgram compiles, links and introspects one program.
//
// Compile and link failures are fatal errors carrying the driver's
// diagnostic log: they indicate invalid shader authoring and are
// never retried. Context loss at shader creation is not an error; it
// returns a program with Failed() == true that draws nothing.
func NewProgram(ctx gfx.Context, cfg ProgramConfig) (*Program, error) {
	p := &Program{name: cfg.Name}

	// Attribute table: layer static attributes first, configuration
	// dynamic attributes after, each non-empty name bound to the
	// location equal to its index in the concatenation.
	names := cfg.Layer.Attributes
	if cfg.Style != nil {
		names = append(append([]string(nil), names...), cfg.Style.Attributes()...)
	}
	p.numAttributes = len(names)
	p.attributes = make(map[string]uint32, len(names))
	for i, name := range names {
		if name != "" {
			p.attributes[name] = uint32(i)
		}
	}

	frag := ctx.CreateShader(gfx.FragmentShader)
	if ctx.ContextLost() {
		p.failed = true
		gfx.Logger().Warn("render: context lost during program build", "program", cfg.Name)
		return p, nil
	}
	ctx.ShaderSource(frag, cfg.Shaders.Fragment)
	ctx.CompileShader(frag)
	if !ctx.ShaderCompiled(frag) {
		return nil, fmt.Errorf("render: program %q: fragment shader failed to compile: %s", cfg.Name, ctx.ShaderInfoLog(frag))
	}

	vert := ctx.CreateShader(gfx.VertexShader)
	if ctx.ContextLost() {
		p.failed = true
		gfx.Logger().Warn("render: context lost during program build", "program", cfg.Name)
		return p, nil
	}
	ctx.ShaderSource(vert, cfg.Shaders.Vertex)
	ctx.CompileShader(vert)
	if !ctx.ShaderCompiled(vert) {
		return nil, fmt.Errorf("render: program %q: vertex shader failed to compile: %s", cfg.Name, ctx.ShaderInfoLog(vert))
	}

	handle := ctx.CreateProgram()
	ctx.AttachShader(handle, frag)
	ctx.AttachShader(handle, vert)
	for i, name := range names {
		if name != "" {
			ctx.BindAttribLocation(handle, uint32(i), name)
		}
	}
	ctx.LinkProgram(handle)
	if !ctx.ProgramLinked(handle) {
		log := ctx.ProgramInfoLog(handle)
		ctx.DeleteProgram(handle)
		ctx.DeleteShader(frag)
		ctx.DeleteShader(vert)
		return nil, fmt.Errorf("render: program %q: link failed: %s", cfg.Name, log)
	}
	ctx.DeleteShader(frag)
	ctx.DeleteShader(vert)
	p.handle = handle

	// Uniform candidates in fixed order, duplicates collapsed to the
	// first occurrence. Names without a location were eliminated as
	// dead code and are dropped, never placeholder-filled.
	locs := Locations{}
	seen := map[string]bool{}
	resolve := func(group []string) {
		for _, name := range group {
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			if loc, ok := ctx.UniformLocation(handle, name); ok {
				locs[name] = loc
			}
		}
	}
	resolve(shader.Prelude().Uniforms)
	resolve(cfg.Projection.Prelude.Uniforms)
	resolve(cfg.Layer.Uniforms)
	var styleUniforms []string
	if cfg.Style != nil {
		styleUniforms = cfg.Style.Uniforms()
		resolve(styleUniforms)
	}

	b := cfg.Builders
	if b.Fixed == nil {
		b.Fixed = BindNames(cfg.Layer.Uniforms...)
	}
	if b.Terrain == nil {
		b.Terrain = BindNames(shader.TerrainUniforms...)
	}
	if b.Projection == nil {
		b.Projection = BindNames(shader.ProjectionUniforms...)
	}
	if b.DataDriven == nil {
		b.DataDriven = BindNames(styleUniforms...)
	}
	p.fixed = b.Fixed(ctx, locs)
	p.terrain = b.Terrain(ctx, locs)
	p.projection = b.Projection(ctx, locs)
	p.dataDriven = b.DataDriven(ctx, locs)

	gfx.Logger().Debug("render: program built",
		"program", cfg.Name,
		"attributes", p.numAttributes,
		"uniforms", len(locs))
	return p, nil
}

// Name returns the program's diagnostic name.
func (p *Program) Name() string {
	return p.name
}

// Failed reports whether construction hit a lost context. A failed
// program never issues device calls.
func (p *Program) Failed() bool {
	return p.failed
}

// Handle returns the device program handle. The zero handle on a
// failed program is never used.
func (p *Program) Handle() gfx.Program {
	return p.handle
}

// AttributeIndex returns the bound location of a named vertex
// attribute from the program's attribute table.
func (p *Program) AttributeIndex(name string) (uint32, bool) {
	idx, ok := p.attributes[name]
	return idx, ok
}

// NumAttributes returns the length of the attribute concatenation,
// including any empty names that were skipped during binding.
func (p *Program) NumAttributes() int {
	return p.numAttributes
}

// Delete releases the device program object. The program must not be
// drawn with afterwards.
func (p *Program) Delete(ctx gfx.Context) {
	if p.failed {
		return
	}
	ctx.DeleteProgram(p.handle)
}
