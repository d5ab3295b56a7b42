// Copyright 2026 The gomapgl Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"testing"

	"github.com/gomapgl/render/gfx/gfxtest"
	"github.com/gomapgl/render/shader"
)

func TestProgramCache_GetOrBuild(t *testing.T) {
	ctx := gfxtest.New()
	cache := NewProgramCache()
	key := NewProgramKey("fill", shader.Options{Projection: shader.Mercator(), GLSL300: true})

	builds := 0
	build := func() (*Program, error) {
		builds++
		return NewProgram(ctx, fillConfig())
	}

	first, err := cache.GetOrBuild(key, build)
	if err != nil {
		t.Fatalf("GetOrBuild: %v", err)
	}
	second, err := cache.GetOrBuild(key, build)
	if err != nil {
		t.Fatalf("GetOrBuild: %v", err)
	}
	if builds != 1 {
		t.Errorf("built %d times, want 1", builds)
	}
	if first != second {
		t.Errorf("cache returned different programs for the same key")
	}

	stats := cache.Stats()
	if stats.Hits != 1 || stats.Misses != 1 || stats.Len != 1 {
		t.Errorf("Stats() = %+v, want {Hits:1 Misses:1 Len:1}", stats)
	}
}

func TestProgramCache_BuildErrorNotCached(t *testing.T) {
	cache := NewProgramCache()
	key := NewProgramKey("fill", shader.Options{Projection: shader.Mercator()})

	builds := 0
	wantErr := errors.New("compile failed")
	_, err := cache.GetOrBuild(key, func() (*Program, error) {
		builds++
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("GetOrBuild error = %v, want %v", err, wantErr)
	}
	if cache.Len() != 0 {
		t.Errorf("failed build was cached")
	}

	// The next lookup retries the build.
	_, _ = cache.GetOrBuild(key, func() (*Program, error) {
		builds++
		return nil, wantErr
	})
	if builds != 2 {
		t.Errorf("built %d times, want 2", builds)
	}
}

func TestProgramCache_Clear(t *testing.T) {
	ctx := gfxtest.New()
	cache := NewProgramCache()
	key := NewProgramKey("fill", shader.Options{Projection: shader.Mercator(), GLSL300: true})
	if _, err := cache.GetOrBuild(key, func() (*Program, error) {
		return NewProgram(ctx, fillConfig())
	}); err != nil {
		t.Fatalf("GetOrBuild: %v", err)
	}

	cache.Clear(ctx)
	if cache.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", cache.Len())
	}
	if countCalls(ctx.Calls, "DeleteProgram") != 1 {
		t.Errorf("Clear did not delete the device program")
	}
}

func TestNewProgramKey(t *testing.T) {
	mercator := shader.Options{Projection: shader.Mercator()}
	tests := []struct {
		name     string
		a, b     shader.Options
		sameName bool
		want     bool
	}{
		{
			name: "identical options collide",
			a:    mercator, b: mercator,
			sameName: true, want: true,
		},
		{
			name: "different layer names differ",
			a:    mercator, b: mercator,
			sameName: false, want: false,
		},
		{
			name: "projection differs",
			a:    mercator,
			b:    shader.Options{Projection: shader.Globe()},
			sameName: true, want: false,
		},
		{
			name: "dialect differs",
			a:    mercator,
			b:    shader.Options{Projection: shader.Mercator(), GLSL300: true},
			sameName: true, want: false,
		},
		{
			name: "terrain toggle differs",
			a:    mercator,
			b:    shader.Options{Projection: shader.Mercator(), Terrain: true},
			sameName: true, want: false,
		},
		{
			name: "extra defines differ",
			a:    shader.Options{Projection: shader.Mercator(), Defines: []string{"#define A"}},
			b:    shader.Options{Projection: shader.Mercator(), Defines: []string{"#define B"}},
			sameName: true, want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nameB := "fill"
			if !tt.sameName {
				nameB = "line"
			}
			ka := NewProgramKey("fill", tt.a)
			kb := NewProgramKey(nameB, tt.b)
			if got := ka == kb; got != tt.want {
				t.Errorf("keys equal = %v, want %v (%+v vs %+v)", got, tt.want, ka, kb)
			}
		})
	}
}
