// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package symbols renders a flat inventory of a script document's
// top-level entries.
package symbols

import (
	"fmt"
	"strings"

	"github.com/petar-djukic/paradox-script-mcp/pkg/types"
)

// List returns one line per top-level entry of doc, in declaration order:
//
//	block: <key> (L<start>-L<end>, id=<id>)
//	list: <key> (<n> items, L<start>-L<end>)
//	  - <id>
//	value: <key> = <value> (L<line>)
//
// Position and id annotations are omitted when unknown. List items that are
// blocks with an id get their own indented line; other items are counted
// only.
func List(doc *types.Block) []string {
	if doc == nil {
		return nil
	}

	var lines []string
	for _, e := range doc.Entries() {
		switch v := e.Value.(type) {
		case *types.Block:
			var notes []string
			if span := spanText(e.Span); span != "" {
				notes = append(notes, span)
			}
			if id, ok := v.ID(); ok && id != "" {
				notes = append(notes, "id="+id)
			}
			lines = append(lines, "block: "+e.Key+annotate(notes))

		case *types.List:
			notes := []string{fmt.Sprintf("%d items", v.Len())}
			if span := spanText(e.Span); span != "" {
				notes = append(notes, span)
			}
			lines = append(lines, "list: "+e.Key+annotate(notes))
			for _, b := range types.Blocks(v) {
				if id, ok := b.ID(); ok && id != "" {
					lines = append(lines, "  - "+id)
				}
			}

		case types.Scalar:
			var notes []string
			if e.Span.Start > 0 {
				notes = append(notes, fmt.Sprintf("L%d", e.Span.Start))
			}
			lines = append(lines, fmt.Sprintf("value: %s = %s%s", e.Key, v.Literal(), annotate(notes)))
		}
	}
	return lines
}

func spanText(s types.Span) string {
	if s.IsZero() {
		return ""
	}
	return fmt.Sprintf("L%d-L%d", s.Start, s.End)
}

func annotate(notes []string) string {
	if len(notes) == 0 {
		return ""
	}
	return " (" + strings.Join(notes, ", ") + ")"
}
