// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package explorer

import (
	"errors"
	"strings"

	"github.com/petar-djukic/paradox-script-mcp/pkg/types"
)

// The helpers below produce the exact text shown to tool and CLI users.

// InitText reports a successful Init.
func InitText(s *Session) string {
	return "Initialized: " + s.Root()
}

// DirectoriesText renders one "<path>/ -> <description>" line per directory.
func DirectoriesText(dirs []Directory) string {
	lines := make([]string, len(dirs))
	for i, d := range dirs {
		lines[i] = DirectoryText(d)
	}
	return strings.Join(lines, "\n")
}

// DirectoryText renders a single directory line.
func DirectoryText(d Directory) string {
	return d.Path + "/ -> " + d.Description
}

// SymbolsText joins symbol lines, or reports an empty file.
func SymbolsText(filePath string, lines []string) string {
	if len(lines) == 0 {
		return "No symbols found in " + filePath
	}
	return strings.Join(lines, "\n")
}

// ErrorText renders err as "Error: <Kind>: <detail>". Errors without a kind
// are rendered with their plain message.
func ErrorText(err error) string {
	var te *types.Error
	if errors.As(err, &te) {
		return "Error: " + te.Error()
	}
	return "Error: " + err.Error()
}
