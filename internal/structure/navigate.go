// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package structure navigates into a resolved symbol and renders it as
// compact or fully expanded text.
package structure

import (
	"strings"

	"github.com/petar-djukic/paradox-script-mcp/pkg/types"
)

// PathSeparator splits a key path into segments.
const PathSeparator = "."

// Navigate walks the dot-separated keyPath from start and returns the value
// reached along with the depth, which is the number of segments consumed.
// An empty keyPath returns start unchanged at depth 0.
//
// Every segment must select a key of a Block. Selecting from a List fails
// with UnsupportedNavigation; a missing key or a scalar fails with
// KeyPathNotFound.
func Navigate(start types.Value, keyPath string) (types.Value, int, error) {
	if keyPath == "" {
		return start, 0, nil
	}

	segments := strings.Split(keyPath, PathSeparator)
	cur := start
	for i, seg := range segments {
		walked := strings.Join(segments[:i+1], PathSeparator)

		switch node := cur.(type) {
		case *types.Block:
			next, ok := node.Get(seg)
			if !ok {
				return nil, 0, types.Errorf(types.KindKeyPathNotFound, "%s", walked)
			}
			cur = next
		case *types.List:
			return nil, 0, types.Errorf(types.KindUnsupportedNavigation,
				"%s: cannot select key %q from a list of %d items", walked, seg, node.Len())
		default:
			return nil, 0, types.Errorf(types.KindKeyPathNotFound, "%s", walked)
		}
	}

	return cur, len(segments), nil
}
