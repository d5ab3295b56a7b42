// Copyright 2026 The gomapgl Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// UploadImage uploads img to the texture bound on the active unit.
//
// *image.RGBA sources with a tightly packed pixel slice are uploaded
// directly; anything else is converted through an RGBA staging image
// first. Terrain payloads (DEM and tile-coordinate textures) arrive
// here as decoded images from upstream loaders.
func UploadImage(ctx Context, img image.Image) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	if rgba, ok := img.(*image.RGBA); ok && rgba.Stride == 4*w {
		ctx.TexImage2D(w, h, rgba.Pix)
		return
	}

	staging := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Copy(staging, image.Point{}, img, b, xdraw.Src, nil)
	ctx.TexImage2D(w, h, staging.Pix)
}

// NewImageTexture creates a texture on the active unit and uploads img
// to it. The texture stays bound on return.
func NewImageTexture(ctx Context, img image.Image) Texture {
	t := ctx.CreateTexture()
	ctx.BindTexture2D(t)
	UploadImage(ctx, img)
	return t
}
