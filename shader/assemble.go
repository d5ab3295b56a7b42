// Copyright 2026 The gomapgl Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import "strings"

// version300 is the directive emitted when the newer dialect is
// available. Without it, drivers default to GLSL ES 1.00 and the
// sources are transpiled to match.
const version300 = "#version 300 es"

// Preprocessor defines toggling optional shader behavior.
const (
	// DefineOverdraw enables the overdraw-inspector debug coloring.
	DefineOverdraw = "#define OVERDRAW_INSPECTOR"
	// DefineTerrain enables 3D terrain elevation sampling.
	DefineTerrain = "#define TERRAIN3D"
)

// Options configures one assembly. The zero value assembles for a
// legacy-dialect mercator target with no optional features.
type Options struct {
	// Projection supplies the projection prelude and define.
	Projection Projection
	// Overdraw enables the overdraw-inspector define.
	Overdraw bool
	// Terrain enables the terrain define.
	Terrain bool
	// Defines are caller-supplied extra defines, appended in order
	// after the built-in ones.
	Defines []string
	// GLSL300 reports that the target supports GLSL ES 3.00. When
	// false both stages are transpiled to the 1.00 dialect.
	GLSL300 bool
}

// Assembled is the final text of both stages, ready to compile.
type Assembled struct {
	Vertex   string
	Fragment string
}

// Assemble combines defines, the shared prelude, the projection
// prelude and the layer source into final per-stage text. It is a
// pure transform; the same inputs always produce the same output.
//
// The define list is built in a fixed order: the version directive
// (newer dialect only), the overdraw define, the terrain define, the
// projection define when non-empty, then extra defines as given.
func Assemble(layer Source, opts Options) Assembled {
	var defines []string
	if opts.GLSL300 {
		defines = append(defines, version300)
	}
	if opts.Overdraw {
		defines = append(defines, DefineOverdraw)
	}
	if opts.Terrain {
		defines = append(defines, DefineTerrain)
	}
	if opts.Projection.Define != "" {
		defines = append(defines, opts.Projection.Define)
	}
	defines = append(defines, opts.Defines...)

	prelude := Prelude()
	vertex := concat(defines, prelude.Vertex, opts.Projection.Prelude.Vertex, layer.Vertex)
	fragment := concat(defines, prelude.Fragment, opts.Projection.Prelude.Fragment, layer.Fragment)

	if !opts.GLSL300 {
		vertex = transpileVertex(vertex)
		fragment = transpileFragment(fragment)
	}
	return Assembled{Vertex: vertex, Fragment: fragment}
}

func concat(defines []string, parts ...string) string {
	joined := make([]string, 0, len(defines)+len(parts))
	joined = append(joined, defines...)
	joined = append(joined, parts...)
	return strings.Join(joined, "\n")
}
