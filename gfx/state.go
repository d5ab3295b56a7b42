// Copyright 2026 The gomapgl Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

// CompareFunc is a depth or stencil comparison function.
type CompareFunc int

const (
	// Never fails every comparison.
	Never CompareFunc = iota
	// Less passes when the incoming value is less.
	Less
	// Equal passes when the values are equal.
	Equal
	// LessEqual passes when the incoming value is less or equal.
	LessEqual
	// Greater passes when the incoming value is greater.
	Greater
	// NotEqual passes when the values differ.
	NotEqual
	// GreaterEqual passes when the incoming value is greater or equal.
	GreaterEqual
	// Always passes every comparison.
	Always
)

// StencilOp is the action taken on a stencil buffer value.
type StencilOp int

const (
	// Keep leaves the stencil value unchanged.
	Keep StencilOp = iota
	// ZeroOut sets the stencil value to zero.
	ZeroOut
	// Replace sets the stencil value to the test reference.
	Replace
	// Increment increments the stencil value, clamping at maximum.
	Increment
	// IncrementWrap increments the stencil value with wraparound.
	IncrementWrap
	// Decrement decrements the stencil value, clamping at zero.
	Decrement
	// DecrementWrap decrements the stencil value with wraparound.
	DecrementWrap
	// Invert bitwise-inverts the stencil value.
	Invert
)

// BlendFactor is a source or destination blend coefficient.
type BlendFactor int

const (
	// BlendZero is the constant zero coefficient.
	BlendZero BlendFactor = iota
	// BlendOne is the constant one coefficient.
	BlendOne
	// BlendSrcAlpha scales by source alpha.
	BlendSrcAlpha
	// BlendOneMinusSrcAlpha scales by one minus source alpha.
	BlendOneMinusSrcAlpha
	// BlendDstColor scales by destination color.
	BlendDstColor
	// BlendOneMinusDstColor scales by one minus destination color.
	BlendOneMinusDstColor
)

// CullFace selects which triangle faces are discarded.
type CullFace int

const (
	// Back discards back faces.
	Back CullFace = iota
	// Front discards front faces.
	Front
)

// FrontFace selects the winding that counts as front-facing.
type FrontFace int

const (
	// CounterClockwise treats counter-clockwise triangles as front.
	CounterClockwise FrontFace = iota
	// Clockwise treats clockwise triangles as front.
	Clockwise
)

// DepthMode is the transient depth-test configuration of one draw.
type DepthMode struct {
	// Func is the depth comparison. Always with Mask false disables
	// the test entirely.
	Func CompareFunc
	// Mask enables depth buffer writes.
	Mask bool
	// Range is the near/far depth range mapping.
	Range [2]float32
}

// DepthDisabled returns the mode that neither tests nor writes depth.
func DepthDisabled() DepthMode {
	return DepthMode{Func: Always, Mask: false, Range: [2]float32{0, 1}}
}

// DepthReadWrite returns a standard read-write depth test.
func DepthReadWrite(f CompareFunc) DepthMode {
	return DepthMode{Func: f, Mask: true, Range: [2]float32{0, 1}}
}

// StencilMode is the transient stencil configuration of one draw.
type StencilMode struct {
	// Test is the stencil comparison function.
	Test CompareFunc
	// Ref is the reference value for the comparison.
	Ref int
	// ReadMask is ANDed with both reference and stored value before
	// the comparison.
	ReadMask uint32
	// Fail, DepthFail and Pass are the update actions for the three
	// test outcomes.
	Fail      StencilOp
	DepthFail StencilOp
	Pass      StencilOp
	// WriteMask restricts which stencil bits the actions may write.
	WriteMask uint32
}

// StencilDisabled returns the mode that passes everything and writes
// nothing.
func StencilDisabled() StencilMode {
	return StencilMode{
		Test: Always,
		Fail: Keep, DepthFail: Keep, Pass: Keep,
	}
}

// ColorMode is the transient blend and color-mask configuration of
// one draw.
type ColorMode struct {
	// SrcFactor and DstFactor form the blend function.
	SrcFactor BlendFactor
	DstFactor BlendFactor
	// Mask enables writes per channel, in RGBA order.
	Mask [4]bool
}

// ColorUnblended returns opaque overwrite of all four channels.
func ColorUnblended() ColorMode {
	return ColorMode{
		SrcFactor: BlendOne,
		DstFactor: BlendZero,
		Mask:      [4]bool{true, true, true, true},
	}
}

// ColorAlphaBlended returns premultiplied-alpha over compositing.
func ColorAlphaBlended() ColorMode {
	return ColorMode{
		SrcFactor: BlendOne,
		DstFactor: BlendOneMinusSrcAlpha,
		Mask:      [4]bool{true, true, true, true},
	}
}

// CullFaceMode is the transient face-culling configuration of one
// draw.
type CullFaceMode struct {
	// Enabled turns culling on.
	Enabled bool
	// Face is which side gets discarded when enabled.
	Face CullFace
	// Front is the front-facing winding convention.
	Front FrontFace
}

// CullDisabled returns the mode that draws both faces.
func CullDisabled() CullFaceMode {
	return CullFaceMode{Enabled: false, Face: Back, Front: CounterClockwise}
}

// CullBackCCW returns back-face culling with counter-clockwise front
// faces, the convention used by tile geometry.
func CullBackCCW() CullFaceMode {
	return CullFaceMode{Enabled: true, Face: Back, Front: CounterClockwise}
}
