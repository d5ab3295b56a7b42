// Copyright 2026 The gomapgl Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import "testing"

func TestDepthModes(t *testing.T) {
	d := DepthDisabled()
	if d.Func != Always || d.Mask {
		t.Errorf("DepthDisabled() = %+v, want Always func and no writes", d)
	}
	if d.Range != [2]float32{0, 1} {
		t.Errorf("DepthDisabled().Range = %v, want [0 1]", d.Range)
	}

	rw := DepthReadWrite(LessEqual)
	if rw.Func != LessEqual || !rw.Mask {
		t.Errorf("DepthReadWrite(LessEqual) = %+v", rw)
	}
}

func TestStencilDisabled(t *testing.T) {
	s := StencilDisabled()
	if s.Test != Always {
		t.Errorf("StencilDisabled().Test = %v, want Always", s.Test)
	}
	if s.Fail != Keep || s.DepthFail != Keep || s.Pass != Keep {
		t.Errorf("StencilDisabled() ops = %v/%v/%v, want Keep", s.Fail, s.DepthFail, s.Pass)
	}
}

func TestColorModes(t *testing.T) {
	u := ColorUnblended()
	if u.SrcFactor != BlendOne || u.DstFactor != BlendZero {
		t.Errorf("ColorUnblended() factors = %v/%v", u.SrcFactor, u.DstFactor)
	}
	b := ColorAlphaBlended()
	if b.SrcFactor != BlendOne || b.DstFactor != BlendOneMinusSrcAlpha {
		t.Errorf("ColorAlphaBlended() factors = %v/%v", b.SrcFactor, b.DstFactor)
	}
	for _, m := range []ColorMode{u, b} {
		if m.Mask != [4]bool{true, true, true, true} {
			t.Errorf("color mask = %v, want all channels", m.Mask)
		}
	}
}

func TestCullModes(t *testing.T) {
	if CullDisabled().Enabled {
		t.Errorf("CullDisabled() is enabled")
	}
	c := CullBackCCW()
	if !c.Enabled || c.Face != Back || c.Front != CounterClockwise {
		t.Errorf("CullBackCCW() = %+v", c)
	}
}

func TestShaderTypeString(t *testing.T) {
	if got := VertexShader.String(); got != "vertex" {
		t.Errorf("VertexShader.String() = %q", got)
	}
	if got := FragmentShader.String(); got != "fragment" {
		t.Errorf("FragmentShader.String() = %q", got)
	}
}
