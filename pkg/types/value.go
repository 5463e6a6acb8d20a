// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types defines the parsed script document model and the error
// taxonomy shared across paradox-script-mcp packages.
package types

import (
	"strconv"
)

// Value is a node of a parsed script document. It is implemented only by
// Scalar, *Block and *List; callers type-switch on those three cases.
type Value interface {
	isValue()
}

// ScalarKind identifies the primitive type held by a Scalar.
type ScalarKind int

const (
	String ScalarKind = iota // Quoted or bare word
	Int                      // Integer literal
	Float                    // Decimal literal
	Bool                     // yes / no
)

// String returns the human-readable name of the scalar kind.
func (k ScalarKind) String() string {
	switch k {
	case String:
		return "string"
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// Scalar is a leaf value. Only the field matching Kind is meaningful.
type Scalar struct {
	Kind  ScalarKind
	Str   string
	Int   int64
	Float float64
	Bool  bool
	Raw   string // Source text when it differs from the canonical form, e.g. "1.0" or "0.50"
}

func (Scalar) isValue() {}

// StringValue returns a string scalar.
func StringValue(s string) Scalar { return Scalar{Kind: String, Str: s} }

// IntValue returns an integer scalar.
func IntValue(i int64) Scalar { return Scalar{Kind: Int, Int: i} }

// FloatValue returns a float scalar.
func FloatValue(f float64) Scalar { return Scalar{Kind: Float, Float: f} }

// BoolValue returns a boolean scalar.
func BoolValue(b bool) Scalar { return Scalar{Kind: Bool, Bool: b} }

// WithRaw records text as the source form of s unless Literal already
// produces it.
func (s Scalar) WithRaw(text string) Scalar {
	s.Raw = ""
	if s.Literal() != text {
		s.Raw = text
	}
	return s
}

// Literal renders the scalar the way script authors write it: the source
// text when known, otherwise booleans as yes/no, numbers in their shortest
// form and strings without quotes.
func (s Scalar) Literal() string {
	if s.Raw != "" {
		return s.Raw
	}
	switch s.Kind {
	case Bool:
		if s.Bool {
			return "yes"
		}
		return "no"
	case Int:
		return strconv.FormatInt(s.Int, 10)
	case Float:
		return strconv.FormatFloat(s.Float, 'f', -1, 64)
	default:
		return s.Str
	}
}

// Span is a 1-based inclusive line range. The zero value means the
// position is unknown.
type Span struct {
	Start int
	End   int
}

// IsZero reports whether the span carries no position.
func (s Span) IsZero() bool { return s.Start == 0 && s.End == 0 }

// Entry is one key assignment inside a Block.
type Entry struct {
	Key   string
	Op    string // Assignment operator; "=" for plain assignments
	Value Value
	Span  Span // Lines covered by the assignment, key through value

	multi bool // Value is a List collecting repeated assignments of Key
}

// Block is an ordered key to value mapping. A key assigned more than once
// is kept as a single entry whose value is a List of every occurrence in
// document order, so lookups stay unique without losing data.
type Block struct {
	Span Span

	entries []Entry
	index   map[string]int
}

func (*Block) isValue() {}

// NewBlock returns an empty block covering span.
func NewBlock(span Span) *Block {
	return &Block{Span: span, index: make(map[string]int)}
}

// Add appends an assignment. Repeating a key promotes its entry to a List
// of all assigned values.
func (b *Block) Add(key, op string, v Value, span Span) {
	if b.index == nil {
		b.index = make(map[string]int)
	}
	i, ok := b.index[key]
	if !ok {
		b.index[key] = len(b.entries)
		b.entries = append(b.entries, Entry{Key: key, Op: op, Value: v, Span: span})
		return
	}

	e := &b.entries[i]
	if !e.multi {
		e.Value = &List{Items: []Value{e.Value}, Span: e.Span}
		e.multi = true
	}
	l := e.Value.(*List)
	l.Items = append(l.Items, v)
	l.Span.End = span.End
	e.Span.End = span.End
}

// Get returns the value stored at key.
func (b *Block) Get(key string) (Value, bool) {
	i, ok := b.index[key]
	if !ok {
		return nil, false
	}
	return b.entries[i].Value, true
}

// Entry returns the full entry stored at key.
func (b *Block) Entry(key string) (Entry, bool) {
	i, ok := b.index[key]
	if !ok {
		return Entry{}, false
	}
	return b.entries[i], true
}

// Entries returns the entries in declaration order.
func (b *Block) Entries() []Entry {
	return b.entries
}

// Len returns the number of distinct keys.
func (b *Block) Len() int {
	return len(b.entries)
}

// ID returns the literal of the block's scalar id field, if any.
func (b *Block) ID() (string, bool) {
	v, ok := b.Get("id")
	if !ok {
		return "", false
	}
	s, ok := v.(Scalar)
	if !ok {
		return "", false
	}
	return s.Literal(), true
}

// List is an ordered sequence of values.
type List struct {
	Items []Value
	Span  Span
}

func (*List) isValue() {}

// Len returns the number of items.
func (l *List) Len() int {
	return len(l.Items)
}

// AllScalars reports whether every item is a Scalar. An empty list
// reports true.
func (l *List) AllScalars() bool {
	for _, it := range l.Items {
		if _, ok := it.(Scalar); !ok {
			return false
		}
	}
	return true
}

// Blocks returns the items of v that are blocks: v itself when it is a
// Block, the Block items when it is a List, nothing otherwise.
func Blocks(v Value) []*Block {
	switch t := v.(type) {
	case *Block:
		return []*Block{t}
	case *List:
		var out []*Block
		for _, it := range t.Items {
			if b, ok := it.(*Block); ok {
				out = append(out, b)
			}
		}
		return out
	default:
		return nil
	}
}
