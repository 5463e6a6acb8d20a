// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalar_Literal(t *testing.T) {
	tests := []struct {
		name string
		in   Scalar
		want string
	}{
		{name: "true", in: BoolValue(true), want: "yes"},
		{name: "false", in: BoolValue(false), want: "no"},
		{name: "int", in: IntValue(-42), want: "-42"},
		{name: "float", in: FloatValue(0.05), want: "0.05"},
		{name: "whole float", in: FloatValue(2), want: "2"},
		{name: "string", in: StringValue("GFX_focus_generic"), want: "GFX_focus_generic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Literal())
		})
	}
}

func TestScalar_WithRaw(t *testing.T) {
	assert.Equal(t, "1.0", FloatValue(1).WithRaw("1.0").Literal())
	assert.Equal(t, "0.50", FloatValue(0.5).WithRaw("0.50").Literal())
	assert.Equal(t, FloatValue(0.5), FloatValue(0.5).WithRaw("0.5"))
	assert.Equal(t, IntValue(3), IntValue(3).WithRaw("3"))
	assert.Equal(t, "+3", IntValue(3).WithRaw("+3").Literal())
}

func TestBlock_AddPreservesOrder(t *testing.T) {
	b := NewBlock(Span{Start: 1, End: 5})
	b.Add("id", "=", StringValue("JAP_focus"), Span{Start: 2, End: 2})
	b.Add("cost", "=", IntValue(10), Span{Start: 3, End: 3})
	b.Add("icon", "=", StringValue("GFX"), Span{Start: 4, End: 4})

	var keys []string
	for _, e := range b.Entries() {
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []string{"id", "cost", "icon"}, keys)
	assert.Equal(t, 3, b.Len())

	id, ok := b.ID()
	require.True(t, ok)
	assert.Equal(t, "JAP_focus", id)
}

func TestBlock_DuplicateKeysBecomeList(t *testing.T) {
	b := NewBlock(Span{})
	first := NewBlock(Span{Start: 1, End: 3})
	second := NewBlock(Span{Start: 4, End: 6})
	third := NewBlock(Span{Start: 7, End: 9})

	b.Add("focus", "=", first, Span{Start: 1, End: 3})
	b.Add("other", "=", IntValue(1), Span{Start: 3, End: 3})
	b.Add("focus", "=", second, Span{Start: 4, End: 6})
	b.Add("focus", "=", third, Span{Start: 7, End: 9})

	assert.Equal(t, 2, b.Len())
	v, ok := b.Get("focus")
	require.True(t, ok)
	l, ok := v.(*List)
	require.True(t, ok)
	require.Len(t, l.Items, 3)
	assert.Same(t, first, l.Items[0])
	assert.Same(t, third, l.Items[2])
	assert.Equal(t, Span{Start: 1, End: 9}, l.Span)
}

func TestBlock_DuplicateOfLiteralListWraps(t *testing.T) {
	b := NewBlock(Span{})
	lit := &List{Items: []Value{IntValue(1), IntValue(2)}}
	b.Add("color", "=", lit, Span{Start: 1, End: 1})
	b.Add("color", "=", lit, Span{Start: 2, End: 2})

	v, _ := b.Get("color")
	l := v.(*List)
	require.Len(t, l.Items, 2)
	assert.Same(t, lit, l.Items[0])
}

func TestBlock_IDRequiresScalar(t *testing.T) {
	b := NewBlock(Span{})
	b.Add("id", "=", NewBlock(Span{}), Span{})

	_, ok := b.ID()
	assert.False(t, ok)
}

func TestBlocks(t *testing.T) {
	a := NewBlock(Span{})
	c := NewBlock(Span{})
	l := &List{Items: []Value{a, StringValue("x"), c}}

	assert.Equal(t, []*Block{a, c}, Blocks(l))
	assert.Equal(t, []*Block{a}, Blocks(a))
	assert.Nil(t, Blocks(IntValue(1)))
}

func TestError_IsMatchesKind(t *testing.T) {
	err := fmt.Errorf("get structure: %w", Errorf(KindSymbolNotFound, "JAP_x in japan.txt"))

	assert.True(t, errors.Is(err, ErrSymbolNotFound))
	assert.False(t, errors.Is(err, ErrKeyPathNotFound))
	assert.Equal(t, "get structure: SymbolNotFound: JAP_x in japan.txt", err.Error())

	var typed *Error
	require.True(t, errors.As(err, &typed))
	assert.Equal(t, KindSymbolNotFound, typed.Kind)
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("unexpected '}'")
	err := WrapError(KindParseFailure, cause, "events/japan.txt")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "ParseFailure: events/japan.txt", err.Error())
	assert.Equal(t, "NotInitialized", ErrNotInitialized.Error())
}
