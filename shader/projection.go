// Copyright 2026 The gomapgl Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

// Projection is the shader contribution of a map projection: a
// prelude injected between the shared prelude and the layer source,
// and an optional define toggling projection-specific layer code.
// Both built-in projections expose the same projectTile entry points
// so layer sources stay projection-agnostic.
type Projection struct {
	// Name distinguishes projections in program cache keys.
	Name string
	// Define is prepended to the define list when non-empty.
	Define string
	// Prelude is the projection prelude source. Its uniform list
	// follows the shared prelude's in the candidate order.
	Prelude Source
}

// Mercator returns the flat web-mercator projection. It contributes
// no define; mercator is the baseline the layer sources are written
// against.
func Mercator() Projection {
	return Projection{
		Name: "mercator",
		Prelude: Source{
			Vertex:   mercatorVertexSource,
			Fragment: mercatorFragmentSource,
			Uniforms: ProjectionUniforms,
		},
	}
}

// Globe returns the spherical globe projection. Vertices are bent
// onto the sphere in the vertex stage and blended towards the
// mercator fallback matrix during the transition animation.
func Globe() Projection {
	return Projection{
		Name:   "globe",
		Define: "#define GLOBE",
		Prelude: Source{
			Vertex:   globeVertexSource,
			Fragment: globeFragmentSource,
			Uniforms: ProjectionUniforms,
		},
	}
}
