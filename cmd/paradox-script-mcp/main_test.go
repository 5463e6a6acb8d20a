// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/paradox-script-mcp/pkg/types"
)

func writeGame(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	full := filepath.Join(root, "events", "Japan.txt")
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(`country_event = {
	id = japan.1
	immediate = { add_stability = 0.05 }
}
`), 0o644))
	return root
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	root := writeGame(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "symbols",
			args: []string{"--root", root, "symbols", "events/Japan.txt"},
			want: "block: country_event (L1-L4, id=japan.1)\n",
		},
		{
			name: "structure",
			args: []string{"--root", root, "structure", "events/Japan.txt", "japan.1"},
			want: "japan.1:\n  id: \"japan.1\"\n  immediate: [block] (1 keys)\n",
		},
		{
			name: "structure with key path",
			args: []string{"--root", root, "structure", "events/Japan.txt", "japan.1", "immediate"},
			want: "japan.1.immediate:\n  add_stability: 0.05\n",
		},
		{
			name: "describe",
			args: []string{"--root", root, "describe", "events/Japan.txt"},
		},
		{
			name: "version",
			args: []string{"version"},
			want: "paradox-script-mcp " + version + "\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			if tt.want != "" {
				assert.Equal(t, tt.want, out)
			} else {
				assert.NotEmpty(t, out)
			}
		})
	}
}

func TestCommands_Errors(t *testing.T) {
	root := writeGame(t)

	_, err := execute(t, "--root", root, "structure", "events/Japan.txt", "japan.2")
	assert.True(t, errors.Is(err, types.ErrSymbolNotFound), "got %v", err)

	_, err = execute(t, "--root", root, "symbols", "events/Korea.txt")
	assert.True(t, errors.Is(err, types.ErrPathNotFound), "got %v", err)

	_, err = execute(t, "--root", filepath.Join(root, "missing"), "dirs")
	assert.True(t, errors.Is(err, types.ErrInvalidDirectory), "got %v", err)

	_, err = execute(t, "--root", "", "dirs")
	assert.ErrorIs(t, err, errMissingRoot)

	_, err = execute(t, "serve", "--transport", "carrier-pigeon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown transport "carrier-pigeon"`)
}
