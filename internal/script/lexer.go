// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package script

import (
	"strings"
	"unicode/utf8"
)

// tokenType identifies a lexical token of the script grammar.
type tokenType int

const (
	tokEOF    tokenType = iota
	tokLBrace           // "{"
	tokRBrace           // "}"
	tokOp               // "=", "<", ">", "<=", ">=", "!=", "==", "?="
	tokWord             // Bare word: identifiers, numbers, dates, scopes
	tokString           // Quoted string, escapes resolved
)

func (t tokenType) String() string {
	switch t {
	case tokEOF:
		return "end of file"
	case tokLBrace:
		return "'{'"
	case tokRBrace:
		return "'}'"
	case tokOp:
		return "operator"
	case tokWord:
		return "word"
	case tokString:
		return "string"
	default:
		return "unknown"
	}
}

// token is one lexeme with its 1-based position.
type token struct {
	typ  tokenType
	text string
	line int
	col  int
}

// lexer splits script source into tokens. Comments run from '#' to the end
// of the line and are dropped.
type lexer struct {
	src  string
	pos  int
	line int
	col  int
}

func newLexer(src string) *lexer {
	return &lexer{src: src, line: 1, col: 1}
}

// next returns the next token, or a SyntaxError for an unterminated string
// or a stray operator character.
func (l *lexer) next() (token, error) {
	l.skipSpaceAndComments()
	if l.pos >= len(l.src) {
		return token{typ: tokEOF, line: l.line, col: l.col}, nil
	}

	line, col := l.line, l.col
	c := l.src[l.pos]

	switch {
	case c == '{':
		l.advance(1)
		return token{typ: tokLBrace, text: "{", line: line, col: col}, nil
	case c == '}':
		l.advance(1)
		return token{typ: tokRBrace, text: "}", line: line, col: col}, nil
	case c == '"':
		return l.lexString(line, col)
	case c == '?' && !l.peekIs(1, '='):
		return l.lexWord(line, col), nil
	case isOpStart(c):
		return l.lexOp(line, col)
	default:
		return l.lexWord(line, col), nil
	}
}

func (l *lexer) lexWord(line, col int) token {
	start := l.pos
	l.advance(1)
	for l.pos < len(l.src) && !isDelimiter(l.src[l.pos]) {
		l.advance(1)
	}
	return token{typ: tokWord, text: l.src[start:l.pos], line: line, col: col}
}

func (l *lexer) peekIs(offset int, c byte) bool {
	return l.pos+offset < len(l.src) && l.src[l.pos+offset] == c
}

func (l *lexer) lexString(line, col int) (token, error) {
	l.advance(1) // opening quote
	var b strings.Builder
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch c {
		case '"':
			l.advance(1)
			return token{typ: tokString, text: b.String(), line: line, col: col}, nil
		case '\\':
			if l.pos+1 < len(l.src) && (l.src[l.pos+1] == '"' || l.src[l.pos+1] == '\\') {
				b.WriteByte(l.src[l.pos+1])
				l.advance(2)
				continue
			}
		}
		b.WriteByte(c)
		l.advance(1)
	}
	return token{}, &SyntaxError{Line: line, Column: col, Msg: "unterminated string"}
}

func (l *lexer) lexOp(line, col int) (token, error) {
	c := l.src[l.pos]
	if l.peekIs(1, '=') {
		l.advance(2)
		return token{typ: tokOp, text: string(c) + "=", line: line, col: col}, nil
	}
	if c == '!' {
		return token{}, &SyntaxError{Line: line, Column: col, Msg: "unexpected '" + string(c) + "'"}
	}
	l.advance(1)
	return token{typ: tokOp, text: string(c), line: line, col: col}, nil
}

func (l *lexer) skipSpaceAndComments() {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == '#':
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.advance(1)
			}
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			l.advance(1)
		default:
			return
		}
	}
}

// advance moves n bytes forward, tracking line and rune column.
func (l *lexer) advance(n int) {
	for i := 0; i < n && l.pos < len(l.src); i++ {
		c := l.src[l.pos]
		l.pos++
		if c == '\n' {
			l.line++
			l.col = 1
		} else if c < utf8.RuneSelf || utf8.RuneStart(c) {
			l.col++
		}
	}
}

func isOpStart(c byte) bool {
	return c == '=' || c == '<' || c == '>' || c == '!' || c == '?'
}

func isDelimiter(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '{', '}', '"', '#', '=', '<', '>', '!':
		return true
	}
	return false
}
