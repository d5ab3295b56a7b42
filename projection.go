// Copyright 2026 The gomapgl Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gomapgl/render/gfx"

// ProjectionData is the per-frame projection payload. Every field is
// optional; a present field is pushed into the uniform bound under
// its statically mapped name, an absent field is skipped. The name
// mapping never varies per call.
type ProjectionData struct {
	// Matrix maps to u_projection_matrix.
	Matrix *Mat4
	// TileMercatorCoords maps to u_projection_tile_mercator_coords
	// (tile origin in xy, tile extent scale in zw).
	TileMercatorCoords *Vec4
	// ClippingPlane maps to u_projection_clipping_plane.
	ClippingPlane *Vec4
	// Transition maps to u_projection_transition, the globe-mercator
	// blend factor.
	Transition *Float
	// FallbackMatrix maps to u_projection_fallback_matrix.
	FallbackMatrix *Mat4
}

func (d *ProjectionData) push(ctx gfx.Context, b Bindings) {
	if d.Matrix != nil {
		b.Push(ctx, "u_projection_matrix", *d.Matrix)
	}
	if d.TileMercatorCoords != nil {
		b.Push(ctx, "u_projection_tile_mercator_coords", *d.TileMercatorCoords)
	}
	if d.ClippingPlane != nil {
		b.Push(ctx, "u_projection_clipping_plane", *d.ClippingPlane)
	}
	if d.Transition != nil {
		b.Push(ctx, "u_projection_transition", *d.Transition)
	}
	if d.FallbackMatrix != nil {
		b.Push(ctx, "u_projection_fallback_matrix", *d.FallbackMatrix)
	}
}
