// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package resolver

import (
	"github.com/petar-djukic/paradox-script-mcp/pkg/types"
)

// TopLevelKey matches a key of the document itself and returns the stored
// value unchanged, whatever its shape.
type TopLevelKey struct{}

func (TopLevelKey) Name() string { return "top-level key" }

func (TopLevelKey) Find(doc *types.Block, symbol string) (types.Value, bool) {
	return doc.Get(symbol)
}

// FocusTree matches a focus_tree whose id is symbol, or a focus inside one.
// Trees are checked in order; each tree is tested before its focuses.
type FocusTree struct{}

func (FocusTree) Name() string { return "focus tree" }

func (FocusTree) Find(doc *types.Block, symbol string) (types.Value, bool) {
	v, ok := doc.Get("focus_tree")
	if !ok {
		return nil, false
	}
	for _, tree := range types.Blocks(v) {
		if id, ok := tree.ID(); ok && id == symbol {
			return tree, true
		}
		if focus, ok := tree.Get("focus"); ok {
			if b, ok := findByID(focus, symbol); ok {
				return b, true
			}
		}
	}
	return nil, false
}

// IDUnder matches an item with id == symbol under any of Keys, checked in
// the order given.
type IDUnder struct {
	Label string
	Keys  []string
}

func (s IDUnder) Name() string { return s.Label }

func (s IDUnder) Find(doc *types.Block, symbol string) (types.Value, bool) {
	for _, key := range s.Keys {
		v, ok := doc.Get(key)
		if !ok {
			continue
		}
		if b, ok := findByID(v, symbol); ok {
			return b, true
		}
	}
	return nil, false
}

// AnyID scans every top-level entry for an item whose id is symbol.
type AnyID struct{}

func (AnyID) Name() string { return "any id" }

func (AnyID) Find(doc *types.Block, symbol string) (types.Value, bool) {
	for _, e := range doc.Entries() {
		if b, ok := findByID(e.Value, symbol); ok {
			return b, true
		}
	}
	return nil, false
}

// NestedKey matches a block-valued key one level below a top-level block,
// which is how idea groups and decision categories nest their entries. It
// is not part of DefaultStrategies; pass it to New to opt in.
type NestedKey struct{}

func (NestedKey) Name() string { return "nested key" }

func (NestedKey) Find(doc *types.Block, symbol string) (types.Value, bool) {
	for _, e := range doc.Entries() {
		for _, b := range types.Blocks(e.Value) {
			if v, ok := b.Get(symbol); ok {
				if inner, ok := v.(*types.Block); ok {
					return inner, true
				}
			}
		}
	}
	return nil, false
}

// findByID returns the first block of v (a Block or a List of Blocks)
// whose id equals symbol exactly.
func findByID(v types.Value, symbol string) (*types.Block, bool) {
	for _, b := range types.Blocks(v) {
		if id, ok := b.ID(); ok && id == symbol {
			return b, true
		}
	}
	return nil, false
}
