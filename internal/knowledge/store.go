// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package knowledge loads per-game descriptions of script directories.
//
// Each game has a directories.yml of the form:
//
//	directories:
//	  common/national_focus:
//	    description: Focus trees
//
// Knowledge ships embedded for the supported games and can be replaced by
// files under an override directory laid out as <dir>/<game>/directories.yml.
package knowledge

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const fileName = "directories.yml"

//go:embed data
var embedded embed.FS

// ErrUnknownGame is returned when no knowledge file exists for a game type.
var ErrUnknownGame = errors.New("no directory knowledge for game")

// Directory is one known script directory.
type Directory struct {
	Path        string // Relative to the game root, forward slashes, no trailing slash
	Description string
}

// document mirrors directories.yml.
type document struct {
	Directories map[string]struct {
		Description string `yaml:"description"`
	} `yaml:"directories"`
}

// Store holds the directory knowledge for one game. It is read-only after
// Load.
type Store struct {
	game string
	dirs map[string]string
}

// Load reads knowledge for game. When overrideDir is non-empty the file is
// read from <overrideDir>/<game>/directories.yml instead of the embedded
// copy.
func Load(game, overrideDir string) (*Store, error) {
	if game == "" || strings.ContainsAny(game, `/\`) || game == "." || game == ".." {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGame, game)
	}

	var data []byte
	var err error
	if overrideDir != "" {
		data, err = os.ReadFile(filepath.Join(overrideDir, game, fileName))
	} else {
		data, err = fs.ReadFile(embedded, path.Join("data", game, fileName))
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGame, game)
	}
	if err != nil {
		return nil, fmt.Errorf("reading knowledge for %s: %w", game, err)
	}

	return Parse(game, data)
}

// Parse builds a Store from directories.yml content.
func Parse(game string, data []byte) (*Store, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing knowledge for %s: %w", game, err)
	}

	s := &Store{game: game, dirs: make(map[string]string, len(doc.Directories))}
	for p, info := range doc.Directories {
		s.dirs[normalize(p)] = info.Description
	}
	return s, nil
}

// Game returns the game type the knowledge was loaded for.
func (s *Store) Game() string {
	return s.game
}

// List returns every directory sorted by path.
func (s *Store) List() []Directory {
	out := make([]Directory, 0, len(s.dirs))
	for p, d := range s.dirs {
		out = append(out, Directory{Path: p, Description: d})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// Lookup returns the description of the most specific known directory that
// contains relPath. Prefixes match whole path segments only, so
// "common/ai" does not match "common/ai_areas/x.txt".
func (s *Store) Lookup(relPath string) (Directory, bool) {
	relPath = normalize(relPath)

	var best string
	found := false
	for p := range s.dirs {
		if !hasPathPrefix(relPath, p) {
			continue
		}
		if !found || len(p) > len(best) {
			best, found = p, true
		}
	}
	if !found {
		return Directory{}, false
	}
	return Directory{Path: best, Description: s.dirs[best]}, true
}

func hasPathPrefix(p, prefix string) bool {
	if prefix == "" {
		return true
	}
	return p == prefix || strings.HasPrefix(p, prefix+"/")
}

// normalize converts separators to '/' and trims leading "./" and slashes
// at either end.
func normalize(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	p = strings.TrimPrefix(p, "./")
	return strings.Trim(p, "/")
}
