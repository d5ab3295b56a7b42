// Copyright 2026 The gomapgl Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import (
	"regexp"
	"strings"
)

// The ES 3.00 constructs that have no direct 1.00 equivalent are a
// closed set for sources in this codebase: in/out qualifiers, the
// user-declared fragment output, and the overloaded texture()
// builtin. Everything else is shared between the dialects.
var (
	inRe      = regexp.MustCompile(`\bin\s`)
	outRe     = regexp.MustCompile(`\bout\s`)
	textureRe = regexp.MustCompile(`\btexture\(`)
)

// fragColorDecl is the output declaration the shared fragment prelude
// carries; it is removed entirely on the legacy path because 1.00
// writes gl_FragColor instead.
const fragColorDecl = "out highp vec4 fragColor;"

// transpileVertex rewrites assembled vertex text to GLSL ES 1.00.
func transpileVertex(src string) string {
	src = inRe.ReplaceAllString(src, "attribute ")
	src = outRe.ReplaceAllString(src, "varying ")
	src = textureRe.ReplaceAllString(src, "texture2D(")
	return src
}

// transpileFragment rewrites assembled fragment text to GLSL ES 1.00.
func transpileFragment(src string) string {
	src = strings.ReplaceAll(src, fragColorDecl, "")
	src = inRe.ReplaceAllString(src, "varying ")
	src = strings.ReplaceAll(src, "fragColor", "gl_FragColor")
	src = textureRe.ReplaceAllString(src, "texture2D(")
	return src
}
