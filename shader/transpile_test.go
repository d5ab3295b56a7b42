// Copyright 2026 The gomapgl Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import "testing"

func TestTranspileVertex(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "input becomes attribute",
			src:  "in vec2 a_pos;",
			want: "attribute vec2 a_pos;",
		},
		{
			name: "output becomes varying",
			src:  "out vec4 v_color;",
			want: "varying vec4 v_color;",
		},
		{
			name: "texture builtin",
			src:  "vec4 c = texture(u_image, uv);",
			want: "vec4 c = texture2D(u_image, uv);",
		},
		{
			name: "identifiers containing the keyword survive",
			src:  "float intensity = routing + pin_pos.x;",
			want: "float intensity = routing + pin_pos.x;",
		},
		{
			name: "texture2D not rewritten twice",
			src:  "vec4 c = texture2D(u_image, uv);",
			want: "vec4 c = texture2D(u_image, uv);",
		},
		{
			name: "qualifier after precision",
			src:  "in highp vec3 a_pos3;\nout mediump vec2 v_uv;",
			want: "attribute highp vec3 a_pos3;\nvarying mediump vec2 v_uv;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := transpileVertex(tt.src); got != tt.want {
				t.Errorf("transpileVertex(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestTranspileFragment(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "input becomes varying",
			src:  "in vec4 v_color;",
			want: "varying vec4 v_color;",
		},
		{
			name: "output declaration removed",
			src:  "out highp vec4 fragColor;\nvoid main() {}",
			want: "\nvoid main() {}",
		},
		{
			name: "fragColor writes become gl_FragColor",
			src:  "fragColor = vec4(1.0);",
			want: "gl_FragColor = vec4(1.0);",
		},
		{
			name: "texture builtin",
			src:  "fragColor = texture(u_image, v_uv);",
			want: "gl_FragColor = texture2D(u_image, v_uv);",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := transpileFragment(tt.src); got != tt.want {
				t.Errorf("transpileFragment(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}
