// Copyright 2026 The gomapgl Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx_test

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/gomapgl/render/gfx"
	"github.com/gomapgl/render/gfx/gfxtest"
)

func hasCall(calls []string, prefix string) bool {
	for _, c := range calls {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

func TestUploadImage_RGBADirect(t *testing.T) {
	ctx := gfxtest.New()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})

	gfx.UploadImage(ctx, img)
	if !hasCall(ctx.Calls, "TexImage2D(2x2,16)") {
		t.Errorf("upload calls = %v, want a 2x2 16-byte TexImage2D", ctx.Calls)
	}
}

func TestUploadImage_ConvertsNonRGBA(t *testing.T) {
	ctx := gfxtest.New()
	img := image.NewGray(image.Rect(0, 0, 3, 2))

	gfx.UploadImage(ctx, img)
	if !hasCall(ctx.Calls, "TexImage2D(3x2,24)") {
		t.Errorf("upload calls = %v, want a 3x2 24-byte TexImage2D", ctx.Calls)
	}
}

func TestUploadImage_ConvertsSubImage(t *testing.T) {
	ctx := gfxtest.New()
	base := image.NewRGBA(image.Rect(0, 0, 8, 8))
	sub := base.SubImage(image.Rect(2, 2, 6, 6)).(*image.RGBA)

	// The sub-image's stride belongs to the parent, so it takes the
	// staging path; the uploaded size must still match its own bounds.
	gfx.UploadImage(ctx, sub)
	if !hasCall(ctx.Calls, "TexImage2D(4x4,64)") {
		t.Errorf("upload calls = %v, want a 4x4 64-byte TexImage2D", ctx.Calls)
	}
}

func TestNewImageTexture(t *testing.T) {
	ctx := gfxtest.New()
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))

	tex := gfx.NewImageTexture(ctx, img)
	if tex == (gfx.Texture{}) {
		t.Fatalf("NewImageTexture returned the zero texture")
	}
	if !hasCall(ctx.Calls, "BindTexture2D") {
		t.Errorf("texture was never bound")
	}
	if !hasCall(ctx.Calls, "TexImage2D(1x1,4)") {
		t.Errorf("upload calls = %v, want a 1x1 4-byte TexImage2D", ctx.Calls)
	}
}
