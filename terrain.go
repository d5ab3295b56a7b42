// Copyright 2026 The gomapgl Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gomapgl/render/gfx"

// The two texture units reserved for terrain inputs. This is a
// context-wide contract owned by this subsystem: other code sharing
// the context must not bind these units between terrain setup and the
// draws that sample them. The units are fixed constants, never
// renegotiated per call.
const (
	// TerrainDepthTextureUnit holds the depth texture sampled by
	// u_depth.
	TerrainDepthTextureUnit = 2
	// TerrainCoordsTextureUnit holds the DEM texture sampled by
	// u_terrain.
	TerrainCoordsTextureUnit = 3
)

// TerrainData is the per-frame terrain payload: the two textures for
// the reserved units plus the values for the terrain uniform group.
// Presence is optional per draw; a nil TerrainData skips terrain
// setup entirely.
type TerrainData struct {
	// DepthTexture is bound to TerrainDepthTextureUnit.
	DepthTexture gfx.Texture
	// CoordsTexture is bound to TerrainCoordsTextureUnit.
	CoordsTexture gfx.Texture
	// Uniforms are pushed into the terrain binding group, keyed by
	// uniform name (see shader.TerrainUniforms). Values for the two
	// samplers are the unit numbers as [Int].
	Uniforms map[string]Value
}

// defaultSamplers points the two sampler uniforms at the reserved
// units.
func (t *TerrainData) defaultSamplers() map[string]Value {
	return map[string]Value{
		"u_depth":   Int(TerrainDepthTextureUnit),
		"u_terrain": Int(TerrainCoordsTextureUnit),
	}
}

// NewTerrainData returns a payload with the sampler uniforms preset
// to the reserved units and the given extra uniform values merged in.
func NewTerrainData(depth, coords gfx.Texture, uniforms map[string]Value) *TerrainData {
	t := &TerrainData{DepthTexture: depth, CoordsTexture: coords}
	t.Uniforms = t.defaultSamplers()
	for name, v := range uniforms {
		t.Uniforms[name] = v
	}
	return t
}
