// Copyright 2026 The gomapgl Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

// Source is the shader contribution of one rendering feature: the
// vertex and fragment text plus the ordered declaration lists the
// compiler needs to bind attribute locations and resolve uniform
// locations. A Source is immutable after construction; the render
// core never writes to it.
type Source struct {
	// Vertex is the vertex stage text, without defines or preludes.
	Vertex string
	// Fragment is the fragment stage text, without defines or
	// preludes.
	Fragment string
	// Attributes are the static vertex attribute names, in the order
	// they receive attribute indices.
	Attributes []string
	// Uniforms are the static uniform names contributed by this
	// source, in candidate-resolution order.
	Uniforms []string
}

// TerrainUniforms are the uniform names declared by the shared
// prelude's terrain block. They form the start of every program's
// uniform candidate list and are pushed from per-frame terrain
// payloads.
var TerrainUniforms = []string{
	"u_depth",
	"u_terrain",
	"u_terrain_dim",
	"u_terrain_matrix",
	"u_terrain_unpack",
	"u_terrain_exaggeration",
}

// ProjectionUniforms are the uniform names declared by the projection
// preludes. Per-frame projection payload fields map statically onto
// these names.
var ProjectionUniforms = []string{
	"u_projection_matrix",
	"u_projection_tile_mercator_coords",
	"u_projection_clipping_plane",
	"u_projection_transition",
	"u_projection_fallback_matrix",
}

// Prelude returns the shared prelude injected into every program
// ahead of the projection prelude and the layer source. Its uniform
// list is the terrain block; the prelude's helper functions compile
// away when TERRAIN3D is not defined.
func Prelude() Source {
	return Source{
		Vertex:   preludeVertexSource,
		Fragment: preludeFragmentSource,
		Uniforms: TerrainUniforms,
	}
}
