// Copyright 2026 The gomapgl Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package shader assembles final GLSL text for layer programs.
//
// A program's source is built from four pieces, concatenated in a
// fixed order per stage: preprocessor defines, the shared prelude,
// the projection prelude, and the layer source. Assembly is a pure
// text transform with no device interaction; the render package
// compiles the result.
//
// Sources are authored in the GLSL ES 3.00 dialect. When the target
// context only supports GLSL ES 1.00, [Assemble] transpiles both
// stages to the legacy dialect instead of emitting a version
// directive.
package shader
