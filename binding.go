// Copyright 2026 The gomapgl Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gomapgl/render/gfx"

// Locations maps uniform names to their resolved locations within one
// linked program. Names the driver eliminated as dead code are simply
// absent; a location that made it into the map is always valid.
type Locations map[string]gfx.Uniform

// Binding is one uniform slot of a compiled program. It remembers the
// last pushed value and elides the device call when the value is
// unchanged, so per-frame pushes of constant values cost nothing.
type Binding struct {
	loc     gfx.Uniform
	current Value
}

// NewBinding returns a binding for a resolved location.
func NewBinding(loc gfx.Uniform) *Binding {
	return &Binding{loc: loc}
}

// Set pushes v to the device unless it equals the previously pushed
// value. A nil value is ignored.
func (b *Binding) Set(ctx gfx.Context, v Value) {
	if v == nil || v == b.current {
		return
	}
	v.apply(ctx, b.loc)
	b.current = v
}

// Bindings is a binding group: a named mapping from uniform name to
// its setter. Programs hold four groups (fixed, terrain, projection,
// data-driven).
type Bindings map[string]*Binding

// Push sets the named uniform if the group contains it. Pushes
// addressed to a name not present in the group are no-ops, not
// errors; absence means the uniform was eliminated from the linked
// program.
func (bs Bindings) Push(ctx gfx.Context, name string, v Value) {
	if b, ok := bs[name]; ok {
		b.Set(ctx, v)
	}
}

// BindingsBuilder materializes one binding group from the resolved
// location map of a freshly linked program. Builders are passed to
// [NewProgram] explicitly, one per group, which keeps per-feature
// pluggability without any dispatch machinery.
type BindingsBuilder func(ctx gfx.Context, locs Locations) Bindings

// BindNames returns a builder that binds each named uniform that
// resolved to a location. Names without a location are skipped.
func BindNames(names ...string) BindingsBuilder {
	return func(_ gfx.Context, locs Locations) Bindings {
		bs := make(Bindings, len(names))
		for _, name := range names {
			if loc, ok := locs[name]; ok {
				bs[name] = NewBinding(loc)
			}
		}
		return bs
	}
}
