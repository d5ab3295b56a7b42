// Copyright 2026 The gomapgl Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

// Fill returns the built-in polygon fill layer source: one position
// attribute, constant color and opacity.
func Fill() Source {
	return Source{
		Vertex:     fillVertexSource,
		Fragment:   fillFragmentSource,
		Attributes: []string{"a_pos"},
		Uniforms:   []string{"u_color", "u_opacity"},
	}
}

// Line returns the built-in line layer source. Positions carry a
// packed extrusion normal; a_data carries the precomputed join
// offsets.
func Line() Source {
	return Source{
		Vertex:     lineVertexSource,
		Fragment:   lineFragmentSource,
		Attributes: []string{"a_pos_normal", "a_data"},
		Uniforms:   []string{"u_ratio", "u_width", "u_color", "u_opacity"},
	}
}
