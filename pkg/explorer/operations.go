// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package explorer

import (
	"errors"

	"github.com/petar-djukic/paradox-script-mcp/internal/structure"
	"github.com/petar-djukic/paradox-script-mcp/internal/symbols"
	"github.com/petar-djukic/paradox-script-mcp/pkg/types"
)

// ListDirectories implements Explorer.
func (e *explorer) ListDirectories(s *Session) ([]Directory, error) {
	if s == nil {
		return nil, notInitialized()
	}
	known := s.knowledge.List()
	out := make([]Directory, len(known))
	for i, d := range known {
		out[i] = Directory{Path: d.Path, Description: d.Description}
	}
	return out, nil
}

// DescribePath implements Explorer.
func (e *explorer) DescribePath(s *Session, relPath string) (Directory, error) {
	if s == nil {
		return Directory{}, notInitialized()
	}
	d, ok := s.knowledge.Lookup(relPath)
	if !ok {
		return Directory{}, types.Errorf(types.KindPathNotFound, "no known directory contains %s", relPath)
	}
	return Directory{Path: d.Path, Description: d.Description}, nil
}

// ListSymbols implements Explorer.
func (e *explorer) ListSymbols(s *Session, filePath string) ([]string, error) {
	doc, err := e.load(s, filePath)
	if err != nil {
		return nil, err
	}
	lines := symbols.List(doc)
	e.logger.Debug("listed symbols", "file", filePath, "count", len(lines))
	return lines, nil
}

// GetStructure implements Explorer.
func (e *explorer) GetStructure(s *Session, filePath, symbol, keyPath string) (string, error) {
	doc, err := e.load(s, filePath)
	if err != nil {
		return "", err
	}

	start, ok := e.resolver.Resolve(doc, symbol)
	if !ok {
		return "", types.Errorf(types.KindSymbolNotFound, "%s in %s", symbol, filePath)
	}

	node, depth, err := structure.Navigate(start, keyPath)
	if err != nil {
		var te *types.Error
		if errors.As(err, &te) {
			return "", &types.Error{Kind: te.Kind, Detail: symbol + structure.PathSeparator + te.Detail}
		}
		return "", err
	}

	label := symbol
	if keyPath != "" {
		label = symbol + structure.PathSeparator + keyPath
	}
	e.logger.Debug("rendering structure",
		"file", filePath, "label", label, "depth", depth, "expanded", e.formatter.Expands(depth))
	return e.formatter.Render(label, node, depth), nil
}

// load resolves filePath within the session and parses it.
func (e *explorer) load(s *Session, filePath string) (*types.Block, error) {
	if s == nil {
		return nil, notInitialized()
	}
	abs, err := s.ResolvePath(filePath)
	if err != nil {
		return nil, err
	}
	doc, err := e.cfg.Parser.ParseFile(abs)
	if err != nil {
		e.logger.Warn("parse failed", "file", filePath, "error", err)
		return nil, types.WrapError(types.KindParseFailure, err, "%v", err)
	}
	return doc, nil
}
