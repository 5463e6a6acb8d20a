// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package explorer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/petar-djukic/paradox-script-mcp/internal/knowledge"
	"github.com/petar-djukic/paradox-script-mcp/pkg/types"
)

// Session is the initialized context every operation runs against: the
// game directory and its loaded directory knowledge. It is immutable;
// re-initializing produces a new Session.
type Session struct {
	root         string
	game         string
	knowledge    *knowledge.Store
	allowOutside bool
}

// Root returns the absolute game directory.
func (s *Session) Root() string { return s.root }

// Game returns the game type.
func (s *Session) Game() string { return s.game }

// Init implements Explorer.
func (e *explorer) Init(gameDir, gameType string) (*Session, error) {
	if gameType == "" {
		gameType = DefaultGame
	}

	info, err := os.Stat(gameDir)
	if err != nil {
		return nil, types.WrapError(types.KindInvalidDirectory, err, "game directory not found: %s", gameDir)
	}
	if !info.IsDir() {
		return nil, types.Errorf(types.KindInvalidDirectory, "not a directory: %s", gameDir)
	}
	root, err := filepath.Abs(gameDir)
	if err != nil {
		return nil, types.WrapError(types.KindInvalidDirectory, err, "resolving %s", gameDir)
	}

	store, err := knowledge.Load(gameType, e.cfg.KnowledgeDir)
	if err != nil {
		if errors.Is(err, knowledge.ErrUnknownGame) {
			return nil, types.WrapError(types.KindUnknownGame, err, "no directory knowledge for %q", gameType)
		}
		return nil, types.WrapError(types.KindUnknownGame, err, "%v", err)
	}

	e.logger.Info("game initialized", "root", root, "game", gameType, "directories", len(store.List()))
	return &Session{
		root:         root,
		game:         gameType,
		knowledge:    store,
		allowOutside: e.cfg.AllowOutsideRoot,
	}, nil
}

// ResolvePath maps a path relative to the game directory to an absolute
// file path. Backslashes are treated as separators. The file must exist and
// must not be a directory; unless the session allows it, the path must stay
// inside the game directory.
func (s *Session) ResolvePath(relPath string) (string, error) {
	if s == nil {
		return "", notInitialized()
	}

	rel := strings.ReplaceAll(relPath, `\`, "/")
	if strings.TrimSpace(rel) == "" {
		return "", types.Errorf(types.KindPathNotFound, "empty file path")
	}
	full := filepath.Join(s.root, filepath.FromSlash(rel))

	if !s.allowOutside {
		r, err := filepath.Rel(s.root, full)
		if err != nil || r == ".." || strings.HasPrefix(r, ".."+string(filepath.Separator)) {
			return "", types.Errorf(types.KindPathNotFound, "%s is outside the game directory", relPath)
		}
	}

	info, err := os.Stat(full)
	if err != nil {
		return "", types.WrapError(types.KindPathNotFound, err, "file not found: %s", relPath)
	}
	if info.IsDir() {
		return "", types.Errorf(types.KindPathNotFound, "%s is a directory", relPath)
	}
	return full, nil
}

func notInitialized() error {
	return types.Errorf(types.KindNotInitialized, "call init_game first")
}
