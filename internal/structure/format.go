// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package structure

import (
	"fmt"
	"strings"

	"github.com/petar-djukic/paradox-script-mcp/pkg/types"
)

const (
	// DefaultExpandDepth is the navigation depth at which rendering
	// switches from summaries to full expansion.
	DefaultExpandDepth = 2

	maxStringLen  = 50
	truncatedLen  = 47
	listPreview   = 3
	indentPerStep = 2
)

// Config configures a Formatter.
type Config struct {
	ExpandDepth int // Depth at or beyond which output is fully expanded (default 2)
}

// Formatter chooses between shallow and expanded rendering from the depth
// a caller navigated to.
type Formatter struct {
	expandDepth int
}

// NewFormatter returns a Formatter, applying the default threshold when
// cfg.ExpandDepth is zero.
func NewFormatter(cfg Config) *Formatter {
	depth := cfg.ExpandDepth
	if depth == 0 {
		depth = DefaultExpandDepth
	}
	return &Formatter{expandDepth: depth}
}

// ExpandDepth returns the configured threshold.
func (f *Formatter) ExpandDepth() int {
	return f.expandDepth
}

// Expands reports whether a value reached at depth is rendered expanded.
func (f *Formatter) Expands(depth int) bool {
	return depth >= f.expandDepth
}

// Render formats v for a value reached at the given navigation depth.
func (f *Formatter) Render(label string, v types.Value, depth int) string {
	return Format(label, v, f.Expands(depth))
}

// Format renders v under label.
//
// Shallow mode prints one line per key of a Block and summarizes every
// nested Block or List. Expanded mode prints the whole subtree with two
// spaces of indentation per level and never truncates strings.
func Format(label string, v types.Value, expandFull bool) string {
	switch t := v.(type) {
	case *types.List:
		if t.Len() == 0 {
			return label + ": []"
		}
		if expandFull {
			return label + ":\n" + strings.Join(expandList(t, indentPerStep), "\n")
		}
		return fmt.Sprintf("%s: [list] (%d items)", label, t.Len())

	case *types.Block:
		lines := []string{label + ":"}
		if expandFull {
			lines = append(lines, expandBlock(t, indentPerStep)...)
		} else {
			for _, e := range t.Entries() {
				lines = append(lines, "  "+shallowEntry(e))
			}
		}
		return strings.Join(lines, "\n")

	case types.Scalar:
		return label + ": " + t.Literal()

	default:
		return label + ":"
	}
}

// shallowEntry renders one key with its value summarized.
func shallowEntry(e types.Entry) string {
	switch t := e.Value.(type) {
	case *types.Block:
		return fmt.Sprintf("%s: [block] (%d keys)", e.Key, t.Len())

	case *types.List:
		n := t.Len()
		switch {
		case n == 0:
			return e.Key + ": []"
		case !t.AllScalars():
			return fmt.Sprintf("%s: [block list] (%d items)", e.Key, n)
		case n <= listPreview:
			return fmt.Sprintf("%s: [%s]", e.Key, joinLiterals(t.Items))
		default:
			return fmt.Sprintf("%s: [%s, ...] (%d items)", e.Key, joinLiterals(t.Items[:listPreview]), n)
		}

	case types.Scalar:
		return e.Key + ": " + opPrefix(e.Op) + shortScalar(t)

	default:
		return e.Key + ":"
	}
}

// expandBlock renders every entry of b at the given indent.
func expandBlock(b *types.Block, indent int) []string {
	prefix := strings.Repeat(" ", indent)
	var lines []string
	for _, e := range b.Entries() {
		lines = append(lines, expandNode(prefix+e.Key, e.Op, e.Value, indent)...)
	}
	return lines
}

// expandList renders every item of l positionally at the given indent.
func expandList(l *types.List, indent int) []string {
	prefix := strings.Repeat(" ", indent)
	var lines []string
	for i, it := range l.Items {
		lines = append(lines, expandNode(fmt.Sprintf("%s[%d]", prefix, i), "=", it, indent)...)
	}
	return lines
}

// expandNode renders head followed by v; composite values continue on the
// following lines one level deeper.
func expandNode(head, op string, v types.Value, indent int) []string {
	switch t := v.(type) {
	case *types.Block:
		if t.Len() == 0 {
			return []string{head + ": {}"}
		}
		return append([]string{head + ":"}, expandBlock(t, indent+indentPerStep)...)
	case *types.List:
		if t.Len() == 0 {
			return []string{head + ": []"}
		}
		return append([]string{head + ":"}, expandList(t, indent+indentPerStep)...)
	case types.Scalar:
		return []string{head + ": " + opPrefix(op) + fullScalar(t)}
	default:
		return []string{head + ":"}
	}
}

// shortScalar quotes strings and cuts those longer than maxStringLen runes
// down to truncatedLen runes followed by "...".
func shortScalar(s types.Scalar) string {
	if s.Kind != types.String {
		return s.Literal()
	}
	r := []rune(s.Str)
	if len(r) > maxStringLen {
		return `"` + string(r[:truncatedLen]) + `..."`
	}
	return `"` + s.Str + `"`
}

// fullScalar quotes strings without truncation.
func fullScalar(s types.Scalar) string {
	if s.Kind != types.String {
		return s.Literal()
	}
	return `"` + s.Str + `"`
}

func joinLiterals(items []types.Value) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(types.Scalar); ok {
			parts = append(parts, s.Literal())
		}
	}
	return strings.Join(parts, ", ")
}

// opPrefix shows comparison operators; plain assignments print nothing.
func opPrefix(op string) string {
	if op == "" || op == "=" {
		return ""
	}
	return op + " "
}
