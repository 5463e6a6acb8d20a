// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package knowledge

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedHOI4(t *testing.T) {
	s, err := Load("hoi4", "")
	require.NoError(t, err)
	assert.Equal(t, "hoi4", s.Game())

	dirs := s.List()
	require.NotEmpty(t, dirs)
	assert.True(t, sort.SliceIsSorted(dirs, func(i, j int) bool { return dirs[i].Path < dirs[j].Path }))

	d, ok := s.Lookup("common/national_focus/japan.txt")
	require.True(t, ok)
	assert.Equal(t, "common/national_focus", d.Path)
	assert.NotEmpty(t, d.Description)
}

func TestLoad_UnknownGame(t *testing.T) {
	for _, game := range []string{"stellaris", "", "../hoi4", `a\b`} {
		_, err := Load(game, "")
		assert.True(t, errors.Is(err, ErrUnknownGame), "game %q: %v", game, err)
	}
}

func TestLoad_OverrideDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "eu4"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "eu4", "directories.yml"), []byte(`
directories:
  events:
    description: Events
  common/ideas/:
    description: Idea groups
`), 0o644))

	s, err := Load("eu4", dir)
	require.NoError(t, err)
	assert.Equal(t, []Directory{
		{Path: "common/ideas", Description: "Idea groups"},
		{Path: "events", Description: "Events"},
	}, s.List())

	_, err = Load("hoi4", dir)
	assert.True(t, errors.Is(err, ErrUnknownGame))
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse("bad", []byte("directories: [unclosed"))
	assert.Error(t, err)
}

func TestLookup_LongestSegmentPrefix(t *testing.T) {
	s, err := Parse("test", []byte(`
directories:
  common:
    description: Common
  common/decisions:
    description: Decisions
  common/decisions/categories:
    description: Categories
  common/ai:
    description: AI
`))
	require.NoError(t, err)

	tests := []struct {
		path     string
		wantPath string
		wantOK   bool
	}{
		{path: "common/decisions/categories/japan.txt", wantPath: "common/decisions/categories", wantOK: true},
		{path: "common/decisions/japan.txt", wantPath: "common/decisions", wantOK: true},
		{path: `common\decisions\japan.txt`, wantPath: "common/decisions", wantOK: true},
		{path: "common/ai_areas/default.txt", wantPath: "common", wantOK: true},
		{path: "common", wantPath: "common", wantOK: true},
		{path: "events/Japan.txt", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			d, ok := s.Lookup(tt.path)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantPath, d.Path)
		})
	}
}
