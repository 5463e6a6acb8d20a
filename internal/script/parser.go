// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package script parses Paradox script files (the brace-delimited
// key = value format used by Clausewitz games) into a types.Block tree.
package script

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/petar-djukic/paradox-script-mcp/pkg/types"
)

// ValuesKey holds bare values that appear inside a block alongside keyed
// assignments. Bracketed so it cannot be mistaken for a script key.
const ValuesKey = "[values]"

// SyntaxError records where and why a script failed to parse.
type SyntaxError struct {
	Path   string
	Line   int // 1-based
	Column int // 1-based
	Msg    string
}

func (e *SyntaxError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Msg)
	}
	return fmt.Sprintf("%s:%d:%d: %s", e.Path, e.Line, e.Column, e.Msg)
}

// Parser reads script files from disk. The zero value is ready to use.
type Parser struct{}

// ParseFile reads and parses the script at path.
func (Parser) ParseFile(path string) (*types.Block, error) {
	return ParseFile(path)
}

// ParseFile reads and parses the script at path.
func ParseFile(path string) (*types.Block, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return Parse(path, data)
}

// Parse parses src into the document's root block. name is used only in
// error messages.
func Parse(name string, src []byte) (*types.Block, error) {
	text, err := decode(src)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}

	p := &parser{lex: newLexer(text)}
	v, err := p.parseBody(token{line: 1, col: 1}, true)
	if err != nil {
		var se *SyntaxError
		if errors.As(err, &se) {
			se.Path = name
		}
		return nil, err
	}
	return v.(*types.Block), nil
}

// parser is a recursive-descent parser with one token of lookahead.
type parser struct {
	lex    *lexer
	peeked *token
}

func (p *parser) next() (token, error) {
	if p.peeked != nil {
		t := *p.peeked
		p.peeked = nil
		return t, nil
	}
	return p.lex.next()
}

func (p *parser) peek() (token, error) {
	if p.peeked == nil {
		t, err := p.lex.next()
		if err != nil {
			return token{}, err
		}
		p.peeked = &t
	}
	return *p.peeked, nil
}

// parseBody parses the contents of a braced body, or the whole file when
// top is set. A body holding only bare values becomes a List; anything else
// becomes a Block. The document root is always a Block.
func (p *parser) parseBody(open token, top bool) (types.Value, error) {
	block := types.NewBlock(types.Span{Start: open.line})
	var bare []types.Value
	bareSpan := types.Span{}

	addBare := func(v types.Value, start, end int) {
		if len(bare) == 0 {
			bareSpan.Start = start
		}
		bareSpan.End = end
		bare = append(bare, v)
	}

	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}

		switch tok.typ {
		case tokEOF:
			if !top {
				return nil, &SyntaxError{Line: open.line, Column: open.col, Msg: "unclosed '{'"}
			}
			block.Span.End = tok.line
			return finishBody(block, bare, bareSpan, true), nil

		case tokRBrace:
			if top {
				return nil, &SyntaxError{Line: tok.line, Column: tok.col, Msg: "unexpected '}'"}
			}
			block.Span.End = tok.line
			return finishBody(block, bare, bareSpan, false), nil

		case tokLBrace:
			v, err := p.parseBody(tok, false)
			if err != nil {
				return nil, err
			}
			addBare(v, tok.line, endLine(v, tok.line))

		case tokOp:
			return nil, &SyntaxError{Line: tok.line, Column: tok.col, Msg: fmt.Sprintf("unexpected operator %q", tok.text)}

		case tokWord, tokString:
			nxt, err := p.peek()
			if err != nil {
				return nil, err
			}
			if nxt.typ != tokOp {
				addBare(scalarOf(tok), tok.line, tok.line)
				continue
			}
			p.peeked = nil

			v, end, err := p.parseValue()
			if err != nil {
				return nil, err
			}
			block.Add(tok.text, nxt.text, v, types.Span{Start: tok.line, End: end})
		}
	}
}

// parseValue parses the right-hand side of an assignment and returns it
// with the line it ends on.
func (p *parser) parseValue() (types.Value, int, error) {
	tok, err := p.next()
	if err != nil {
		return nil, 0, err
	}

	switch tok.typ {
	case tokLBrace:
		v, err := p.parseBody(tok, false)
		if err != nil {
			return nil, 0, err
		}
		return v, endLine(v, tok.line), nil

	case tokWord:
		// Tagged bodies such as "rgb { 1 2 3 }" keep only the body.
		nxt, err := p.peek()
		if err != nil {
			return nil, 0, err
		}
		if nxt.typ == tokLBrace {
			p.peeked = nil
			v, err := p.parseBody(nxt, false)
			if err != nil {
				return nil, 0, err
			}
			return v, endLine(v, nxt.line), nil
		}
		return scalarOf(tok), tok.line, nil

	case tokString:
		return scalarOf(tok), tok.line, nil

	default:
		return nil, 0, &SyntaxError{Line: tok.line, Column: tok.col, Msg: fmt.Sprintf("expected value, found %s", tok.typ)}
	}
}

func finishBody(block *types.Block, bare []types.Value, bareSpan types.Span, top bool) types.Value {
	if len(bare) == 0 {
		return block
	}
	if block.Len() == 0 && !top {
		return &types.List{Items: bare, Span: block.Span}
	}
	block.Add(ValuesKey, "=", &types.List{Items: bare, Span: bareSpan}, bareSpan)
	return block
}

func endLine(v types.Value, fallback int) int {
	switch t := v.(type) {
	case *types.Block:
		return t.Span.End
	case *types.List:
		return t.Span.End
	default:
		return fallback
	}
}

// scalarOf types a token: quoted text is always a string; bare words are
// booleans, integers or decimals when they look like one.
func scalarOf(tok token) types.Scalar {
	if tok.typ == tokString {
		return types.StringValue(tok.text)
	}

	switch tok.text {
	case "yes":
		return types.BoolValue(true)
	case "no":
		return types.BoolValue(false)
	}

	// Numbers keep their written form so 1.0 stays 1.0. Integers beyond
	// int64 fall back to a float value.
	switch numberShape(tok.text) {
	case shapeInt:
		if i, err := strconv.ParseInt(tok.text, 10, 64); err == nil {
			return types.IntValue(i).WithRaw(tok.text)
		}
		if f, err := strconv.ParseFloat(tok.text, 64); err == nil {
			return types.FloatValue(f).WithRaw(tok.text)
		}
	case shapeFloat:
		if f, err := strconv.ParseFloat(tok.text, 64); err == nil {
			return types.FloatValue(f).WithRaw(tok.text)
		}
	}
	return types.StringValue(tok.text)
}

type shape int

const (
	shapeNone shape = iota
	shapeInt
	shapeFloat
)

// numberShape accepts -?digits and -?digits.digits only, so dates such as
// 1936.1.1 and scope paths stay strings.
func numberShape(s string) shape {
	if s == "" {
		return shapeNone
	}
	i := 0
	if s[0] == '-' || s[0] == '+' {
		i++
	}
	digits, dots, fracDigits := 0, 0, 0
	for ; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			if dots == 0 {
				digits++
			} else {
				fracDigits++
			}
		case c == '.':
			dots++
			if dots > 1 {
				return shapeNone
			}
		default:
			return shapeNone
		}
	}
	switch {
	case digits == 0:
		return shapeNone
	case dots == 0:
		return shapeInt
	case fracDigits > 0:
		return shapeFloat
	default:
		return shapeNone
	}
}
