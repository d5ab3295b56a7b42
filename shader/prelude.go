// Copyright 2026 The gomapgl Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import _ "embed"

// Embedded GLSL sources, authored in the ES 3.00 dialect. Assemble
// transpiles them down when the target only speaks ES 1.00.

//go:embed glsl/prelude.vertex.glsl
var preludeVertexSource string

//go:embed glsl/prelude.fragment.glsl
var preludeFragmentSource string

//go:embed glsl/mercator.vertex.glsl
var mercatorVertexSource string

//go:embed glsl/mercator.fragment.glsl
var mercatorFragmentSource string

//go:embed glsl/globe.vertex.glsl
var globeVertexSource string

//go:embed glsl/globe.fragment.glsl
var globeFragmentSource string

//go:embed glsl/fill.vertex.glsl
var fillVertexSource string

//go:embed glsl/fill.fragment.glsl
var fillFragmentSource string

//go:embed glsl/line.vertex.glsl
var lineVertexSource string

//go:embed glsl/line.fragment.glsl
var lineFragmentSource string
