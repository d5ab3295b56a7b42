// Copyright 2026 The gomapgl Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"testing"

	"github.com/gomapgl/render/gfx"
	"github.com/gomapgl/render/gfx/gfxtest"
)

func resolveLoc(t *testing.T, ctx *gfxtest.Context, name string) gfx.Uniform {
	t.Helper()
	loc, ok := ctx.UniformLocation(gfx.Program{}, name)
	if !ok {
		t.Fatalf("UniformLocation(%q) did not resolve", name)
	}
	return loc
}

func TestBinding_ElidesRepeatedValue(t *testing.T) {
	ctx := gfxtest.New()
	b := NewBinding(resolveLoc(t, ctx, "u_opacity"))

	b.Set(ctx, Float(0.5))
	b.Set(ctx, Float(0.5))
	if got := ctx.PushedValues("u_opacity"); len(got) != 1 {
		t.Fatalf("pushed %d times, want 1: %v", len(got), got)
	}

	b.Set(ctx, Float(0.7))
	got := ctx.PushedValues("u_opacity")
	if len(got) != 2 {
		t.Fatalf("pushed %d times after value change, want 2", len(got))
	}
	if got[1] != float32(0.7) {
		t.Errorf("second push = %v, want 0.7", got[1])
	}
}

func TestBinding_DistinguishesValueTypes(t *testing.T) {
	ctx := gfxtest.New()
	b := NewBinding(resolveLoc(t, ctx, "u_mix"))

	// Same numeric payload under different uniform types is a change.
	b.Set(ctx, Float(1))
	b.Set(ctx, Int(1))
	if got := ctx.PushedValues("u_mix"); len(got) != 2 {
		t.Errorf("pushed %d times, want 2", len(got))
	}
}

func TestBinding_IgnoresNil(t *testing.T) {
	ctx := gfxtest.New()
	b := NewBinding(resolveLoc(t, ctx, "u_width"))

	before := ctx.CallCount()
	b.Set(ctx, nil)
	if got := ctx.CallCount(); got != before {
		t.Errorf("nil value issued %d device calls", got-before)
	}
}

func TestBindings_PushUnknownNameIsNoOp(t *testing.T) {
	ctx := gfxtest.New()
	bs := Bindings{}

	before := ctx.CallCount()
	bs.Push(ctx, "u_gone", Float(1))
	if got := ctx.CallCount(); got != before {
		t.Errorf("push to an absent name issued %d device calls", got-before)
	}
}

func TestBindNames_SkipsUnresolvedNames(t *testing.T) {
	ctx := gfxtest.New()
	locs := Locations{"u_color": resolveLoc(t, ctx, "u_color")}

	bs := BindNames("u_color", "u_gone")(ctx, locs)
	if _, ok := bs["u_color"]; !ok {
		t.Errorf("resolved name missing from binding group")
	}
	if _, ok := bs["u_gone"]; ok {
		t.Errorf("unresolved name got a binding")
	}
}

func TestValue_MatrixPush(t *testing.T) {
	ctx := gfxtest.New()
	b := NewBinding(resolveLoc(t, ctx, "u_matrix"))

	var m Mat4
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
	b.Set(ctx, m)
	got := ctx.PushedValues("u_matrix")
	if len(got) != 1 {
		t.Fatalf("pushed %d times, want 1", len(got))
	}
	if got[0] != [16]float32(m) {
		t.Errorf("pushed %v, want identity", got[0])
	}
}
