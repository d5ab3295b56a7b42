// Copyright 2026 The gomapgl Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"testing"

	"github.com/gomapgl/render/gfx"
	"github.com/gomapgl/render/gfx/gfxtest"
)

func newDrawBuffers(ctx gfx.Context) (*VertexBuffer, *IndexBuffer) {
	layout := NewVertexBuffer(ctx, []float32{0, 0, 1, 0, 1, 1, 0, 1}, 8, gfx.StaticDraw,
		VertexAttribute{Name: "a_pos", Components: 2, Type: gfx.Float})
	index := NewIndexBuffer(ctx, []uint16{0, 1, 2, 0, 2, 3})
	return layout, index
}

func TestDraw_MinimalCallSequence(t *testing.T) {
	ctx := gfxtest.New()
	p := newFillProgram(t, ctx)

	base := ctx.CallCount()
	p.Draw(ctx, &DrawOptions{Mode: gfx.Triangles})

	want := []string{"UseProgram", "SetDepthMode", "SetStencilMode", "SetColorMode", "SetCullMode"}
	got := ctx.Calls[base:]
	if len(got) != len(want) {
		t.Fatalf("draw with no payloads issued %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, got[i], want[i])
		}
	}
	if len(ctx.Draws) != 0 {
		t.Errorf("draw with no segments issued %d draws", len(ctx.Draws))
	}
	if len(ctx.TextureBinds) != 0 {
		t.Errorf("draw without terrain bound %d textures", len(ctx.TextureBinds))
	}
}

func TestDraw_SegmentMultipliers(t *testing.T) {
	tests := []struct {
		name           string
		mode           gfx.PrimitiveMode
		offset, length int
		wantCount      int
		wantByteOffset int
	}{
		{"triangles", gfx.Triangles, 0, 6, 18, 0},
		{"triangles offset", gfx.Triangles, 6, 3, 9, 36},
		{"lines", gfx.Lines, 2, 4, 8, 8},
		{"line strip", gfx.LineStrip, 5, 6, 6, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := gfxtest.New()
			p := newFillProgram(t, ctx)
			layout, index := newDrawBuffers(ctx)

			p.Draw(ctx, &DrawOptions{
				Mode:     tt.mode,
				LayerID:  "roads",
				Layout:   layout,
				Index:    index,
				Segments: []*Segment{NewSegment(tt.offset, tt.length)},
			})
			if len(ctx.Draws) != 1 {
				t.Fatalf("issued %d draws, want 1", len(ctx.Draws))
			}
			d := ctx.Draws[0]
			if d.Mode != tt.mode || d.Count != tt.wantCount || d.ByteOffset != tt.wantByteOffset {
				t.Errorf("draw = {%v %d %d}, want {%v %d %d}",
					d.Mode, d.Count, d.ByteOffset, tt.mode, tt.wantCount, tt.wantByteOffset)
			}
		})
	}
}

func TestDraw_SegmentsInSubmissionOrder(t *testing.T) {
	ctx := gfxtest.New()
	p := newFillProgram(t, ctx)
	layout, index := newDrawBuffers(ctx)

	p.Draw(ctx, &DrawOptions{
		Mode:     gfx.Triangles,
		LayerID:  "roads",
		Layout:   layout,
		Index:    index,
		Segments: []*Segment{NewSegment(4, 2), NewSegment(0, 4)},
	})
	if len(ctx.Draws) != 2 {
		t.Fatalf("issued %d draws, want 2", len(ctx.Draws))
	}
	if ctx.Draws[0].ByteOffset != 24 || ctx.Draws[1].ByteOffset != 0 {
		t.Errorf("draw order = %v, want submission order", ctx.Draws)
	}
}

func TestDraw_TerrainBindsReservedUnits(t *testing.T) {
	ctx := gfxtest.New()
	p := newFillProgram(t, ctx)

	depth := ctx.CreateTexture()
	coords := ctx.CreateTexture()
	ctx.TextureBinds = nil

	p.Draw(ctx, &DrawOptions{
		Mode:    gfx.Triangles,
		Terrain: NewTerrainData(depth, coords, map[string]Value{"u_terrain_exaggeration": Float(1.5)}),
	})

	if got := ctx.TextureBinds; len(got) != 2 || got[0] != TerrainDepthTextureUnit || got[1] != TerrainCoordsTextureUnit {
		t.Errorf("texture binds = %v, want [%d %d]", got, TerrainDepthTextureUnit, TerrainCoordsTextureUnit)
	}
	if got := ctx.PushedValues("u_depth"); len(got) != 1 || got[0] != int32(TerrainDepthTextureUnit) {
		t.Errorf("u_depth pushes = %v, want [%d]", got, TerrainDepthTextureUnit)
	}
	if got := ctx.PushedValues("u_terrain"); len(got) != 1 || got[0] != int32(TerrainCoordsTextureUnit) {
		t.Errorf("u_terrain pushes = %v, want [%d]", got, TerrainCoordsTextureUnit)
	}
	if got := ctx.PushedValues("u_terrain_exaggeration"); len(got) != 1 || got[0] != float32(1.5) {
		t.Errorf("u_terrain_exaggeration pushes = %v, want [1.5]", got)
	}
}

func TestDraw_ProjectionPayloadPushesPresentFieldsOnly(t *testing.T) {
	ctx := gfxtest.New()
	p := newFillProgram(t, ctx)

	var m Mat4
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
	transition := Float(0.25)
	p.Draw(ctx, &DrawOptions{
		Mode:       gfx.Triangles,
		Projection: &ProjectionData{Matrix: &m, Transition: &transition},
	})

	if got := ctx.PushedValues("u_projection_matrix"); len(got) != 1 {
		t.Errorf("u_projection_matrix pushed %d times, want 1", len(got))
	}
	if got := ctx.PushedValues("u_projection_transition"); len(got) != 1 || got[0] != float32(0.25) {
		t.Errorf("u_projection_transition pushes = %v, want [0.25]", got)
	}
	for _, absent := range []string{
		"u_projection_tile_mercator_coords",
		"u_projection_clipping_plane",
		"u_projection_fallback_matrix",
	} {
		if got := ctx.PushedValues(absent); got != nil {
			t.Errorf("absent field %s was pushed: %v", absent, got)
		}
	}
}

func TestDraw_FixedUniformRedundancyElided(t *testing.T) {
	ctx := gfxtest.New()
	p := newFillProgram(t, ctx)

	red := map[string]Value{"u_color": Vec4{1, 0, 0, 1}}
	p.Draw(ctx, &DrawOptions{Mode: gfx.Triangles, Uniforms: red})
	p.Draw(ctx, &DrawOptions{Mode: gfx.Triangles, Uniforms: red})
	if got := ctx.PushedValues("u_color"); len(got) != 1 {
		t.Errorf("unchanged value pushed %d times across frames, want 1", len(got))
	}

	p.Draw(ctx, &DrawOptions{Mode: gfx.Triangles, Uniforms: map[string]Value{"u_color": Vec4{0, 1, 0, 1}}})
	if got := ctx.PushedValues("u_color"); len(got) != 2 {
		t.Errorf("changed value pushed %d times total, want 2", len(got))
	}
}

func TestDraw_UnknownUniformNameIgnored(t *testing.T) {
	ctx := gfxtest.New()
	p := newFillProgram(t, ctx)

	p.Draw(ctx, &DrawOptions{
		Mode:     gfx.Triangles,
		Uniforms: map[string]Value{"u_bogus": Float(1)},
	})
	if got := ctx.PushedValues("u_bogus"); got != nil {
		t.Errorf("unknown uniform name was pushed: %v", got)
	}
}

func TestDraw_StylePush(t *testing.T) {
	ctx := gfxtest.New()
	cfg := fillConfig()
	style := &testStyle{uniforms: []string{"u_fill_opacity"}}
	cfg.Style = style
	p, err := NewProgram(ctx, cfg)
	if err != nil {
		t.Fatalf("NewProgram: %v", err)
	}

	p.Draw(ctx, &DrawOptions{Mode: gfx.Triangles, Style: style, Zoom: 12})
	if style.pushes != 1 {
		t.Errorf("PushUniforms called %d times, want 1", style.pushes)
	}
	if got := ctx.PushedValues("u_fill_opacity"); len(got) != 1 || got[0] != float32(12) {
		t.Errorf("u_fill_opacity pushes = %v, want [12]", got)
	}
}
