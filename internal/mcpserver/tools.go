// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/petar-djukic/paradox-script-mcp/pkg/explorer"
)

// tool is one registered MCP tool.
type tool interface {
	Definition() mcp.Tool
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

func (s *Server) tools() []tool {
	return []tool{
		&initGameTool{s},
		&listDirectoriesTool{s},
		&listSymbolsTool{s},
		&getStructureTool{s},
		&describePathTool{s},
	}
}

// failure turns err into a tool error result. Domain failures are never
// returned as Go errors so the client always sees the rendered kind.
func (s *Server) failure(toolName string, err error) *mcp.CallToolResult {
	s.logger.Debug("tool failed", "tool", toolName, "error", err)
	return mcp.NewToolResultError(explorer.ErrorText(err))
}

// --- init_game ---

type initGameTool struct{ s *Server }

func (t *initGameTool) Definition() mcp.Tool {
	return mcp.NewTool("init_game",
		mcp.WithDescription("Set the game installation directory that every other tool reads from. Must be called first; calling it again switches games."),
		mcp.WithString("game_directory",
			mcp.Required(),
			mcp.Description("Absolute path to the game installation directory"),
		),
		mcp.WithString("game_type",
			mcp.Description("Game identifier selecting directory knowledge (default hoi4)"),
		),
	)
}

func (t *initGameTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dir, err := req.RequireString("game_directory")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	game := req.GetString("game_type", t.s.defaultGame)

	sess, err := t.s.explorer.Init(dir, game)
	if err != nil {
		return t.s.failure("init_game", err), nil
	}
	t.s.session.Store(sess)
	return mcp.NewToolResultText(explorer.InitText(sess)), nil
}

// --- list_directories ---

type listDirectoriesTool struct{ s *Server }

func (t *listDirectoriesTool) Definition() mcp.Tool {
	return mcp.NewTool("list_directories",
		mcp.WithDescription("List the known script directories of the initialized game with a description of what each contains."),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func (t *listDirectoriesTool) Handle(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dirs, err := t.s.explorer.ListDirectories(t.s.session.Load())
	if err != nil {
		return t.s.failure("list_directories", err), nil
	}
	return mcp.NewToolResultText(explorer.DirectoriesText(dirs)), nil
}

// --- list_symbols ---

type listSymbolsTool struct{ s *Server }

func (t *listSymbolsTool) Definition() mcp.Tool {
	return mcp.NewTool("list_symbols",
		mcp.WithDescription("List the top-level entries of a script file: blocks with line ranges and ids, lists with item counts, and plain values."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("file_path",
			mcp.Required(),
			mcp.Description("Script file path relative to the game directory, e.g. common/national_focus/japan.txt"),
		),
	)
}

func (t *listSymbolsTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	file, err := req.RequireString("file_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	lines, err := t.s.explorer.ListSymbols(t.s.session.Load(), file)
	if err != nil {
		return t.s.failure("list_symbols", err), nil
	}
	return mcp.NewToolResultText(explorer.SymbolsText(file, lines)), nil
}

// --- get_structure ---

type getStructureTool struct{ s *Server }

func (t *getStructureTool) Definition() mcp.Tool {
	return mcp.NewTool("get_structure",
		mcp.WithDescription("Show the structure of one symbol in a script file. Nested blocks are summarized until key_path is two keys deep, then shown in full."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("file_path",
			mcp.Required(),
			mcp.Description("Script file path relative to the game directory"),
		),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Top-level key, focus tree id, focus id, event id or other id to look up"),
		),
		mcp.WithString("key_path",
			mcp.Description("Dot-separated keys to follow from the symbol, e.g. completion_reward.add_ideas"),
		),
	)
}

func (t *getStructureTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	file, err := req.RequireString("file_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	symbol, err := req.RequireString("symbol")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	keyPath := req.GetString("key_path", "")

	out, err := t.s.explorer.GetStructure(t.s.session.Load(), file, symbol, keyPath)
	if err != nil {
		return t.s.failure("get_structure", err), nil
	}
	return mcp.NewToolResultText(out), nil
}

// --- describe_path ---

type describePathTool struct{ s *Server }

func (t *describePathTool) Definition() mcp.Tool {
	return mcp.NewTool("describe_path",
		mcp.WithDescription("Describe what the directory containing a path holds, using the most specific known directory."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("File or directory path relative to the game directory"),
		),
	)
}

func (t *describePathTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	d, err := t.s.explorer.DescribePath(t.s.session.Load(), p)
	if err != nil {
		return t.s.failure("describe_path", err), nil
	}
	return mcp.NewToolResultText(explorer.DirectoryText(d)), nil
}
