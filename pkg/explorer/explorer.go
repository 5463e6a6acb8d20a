// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package explorer is the public interface of paradox-script-mcp: it lets
// a caller browse a game's script files one symbol at a time instead of
// reading whole files.
//
// Every operation takes the Session returned by Init and re-parses the
// requested file; nothing is cached between calls.
package explorer

import (
	"errors"
	"log/slog"

	"github.com/petar-djukic/paradox-script-mcp/pkg/types"
)

// ErrInvalidConfig is returned by New for unusable configuration.
var ErrInvalidConfig = errors.New("invalid config")

// DefaultGame is the game type used when Init is called without one.
const DefaultGame = "hoi4"

// Parser turns a script file into its document tree.
type Parser interface {
	ParseFile(path string) (*types.Block, error)
}

// Config configures an Explorer.
type Config struct {
	ExpandDepth      int          // Key path depth at which structure output is fully expanded (default 2)
	KnowledgeDir     string       // Directory overriding embedded knowledge (empty = embedded)
	AllowOutsideRoot bool         // Permit file paths that escape the game directory
	Parser           Parser       // Script parser (default: the built-in parser)
	Logger           *slog.Logger // Structured logger (default: discard)
}

// Directory is a known script directory and what it contains.
type Directory struct {
	Path        string
	Description string
}

// Explorer runs the browsing operations. Failures are returned as
// *types.Error values whose Kind classifies them.
type Explorer interface {
	// Init validates gameDir and loads directory knowledge for gameType
	// (DefaultGame when empty).
	Init(gameDir, gameType string) (*Session, error)

	// ListDirectories returns the known script directories sorted by path.
	ListDirectories(s *Session) ([]Directory, error)

	// DescribePath returns the most specific known directory containing
	// relPath.
	DescribePath(s *Session, relPath string) (Directory, error)

	// ListSymbols returns the top-level inventory of filePath, one line per
	// entry.
	ListSymbols(s *Session, filePath string) ([]string, error)

	// GetStructure resolves symbol in filePath, follows the optional
	// dot-separated keyPath and renders the result. Output is summarized
	// until keyPath is at least ExpandDepth segments deep.
	GetStructure(s *Session, filePath, symbol, keyPath string) (string, error)
}
