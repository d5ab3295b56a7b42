// Copyright 2026 The gomapgl Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gomapgl/render/gfx"
)

// Value is a typed uniform value. The set of implementations is
// closed: Float, Int, Vec2, Vec3, Vec4 and Mat4 cover every uniform
// the shader sources declare. All implementations are comparable,
// which lets a binding skip the device call when the same value is
// pushed twice in a row.
type Value interface {
	apply(ctx gfx.Context, loc gfx.Uniform)
}

// Float is a scalar float uniform value.
type Float float32

// Int is a scalar int uniform value, also used for sampler units.
type Int int32

// Vec2 is a vec2 uniform value.
type Vec2 mgl32.Vec2

// Vec3 is a vec3 uniform value.
type Vec3 mgl32.Vec3

// Vec4 is a vec4 uniform value.
type Vec4 mgl32.Vec4

// Mat4 is a column-major mat4 uniform value.
type Mat4 mgl32.Mat4

func (v Float) apply(ctx gfx.Context, loc gfx.Uniform) { ctx.Uniform1f(loc, float32(v)) }

func (v Int) apply(ctx gfx.Context, loc gfx.Uniform) { ctx.Uniform1i(loc, int32(v)) }

func (v Vec2) apply(ctx gfx.Context, loc gfx.Uniform) { ctx.Uniform2f(loc, v[0], v[1]) }

func (v Vec3) apply(ctx gfx.Context, loc gfx.Uniform) { ctx.Uniform3f(loc, v[0], v[1], v[2]) }

func (v Vec4) apply(ctx gfx.Context, loc gfx.Uniform) { ctx.Uniform4f(loc, v[0], v[1], v[2], v[3]) }

func (v Mat4) apply(ctx gfx.Context, loc gfx.Uniform) { ctx.UniformMatrix4(loc, [16]float32(v)) }
