// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package mcpserver exposes the explorer operations as MCP tools over
// stdio or streamable HTTP.
package mcpserver

import (
	"log/slog"
	"sync/atomic"

	"github.com/mark3labs/mcp-go/server"

	"github.com/petar-djukic/paradox-script-mcp/pkg/explorer"
)

// Name is the server name announced during the MCP handshake.
const Name = "paradox-script"

// Config configures a Server.
type Config struct {
	Explorer    explorer.Explorer // Required
	DefaultGame string            // Game type used when init_game omits one (default explorer.DefaultGame)
	Version     string            // Reported to clients (default "dev")
	Logger      *slog.Logger      // Structured logger (default: discard)
}

// Server holds the MCP server and the active session. The session is
// replaced whole on every successful init_game; tool calls read whichever
// session is current when they start.
type Server struct {
	explorer    explorer.Explorer
	defaultGame string
	logger      *slog.Logger
	session     atomic.Pointer[explorer.Session]
	mcp         *server.MCPServer
}

// New creates the server and registers every tool.
func New(cfg Config) *Server {
	if cfg.DefaultGame == "" {
		cfg.DefaultGame = explorer.DefaultGame
	}
	if cfg.Version == "" {
		cfg.Version = "dev"
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	s := &Server{
		explorer:    cfg.Explorer,
		defaultGame: cfg.DefaultGame,
		logger:      cfg.Logger,
	}

	s.mcp = server.NewMCPServer(
		Name,
		cfg.Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)
	for _, t := range s.tools() {
		s.mcp.AddTool(t.Definition(), t.Handle)
	}
	return s
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// Session returns the active session, or nil before init_game.
func (s *Server) Session() *explorer.Session {
	return s.session.Load()
}

// SetSession installs sess as the active session. The CLI uses it to
// pre-initialize from the --root flag.
func (s *Server) SetSession(sess *explorer.Session) {
	s.session.Store(sess)
}

// ServeStdio serves MCP on stdin/stdout until the client disconnects.
func (s *Server) ServeStdio() error {
	s.logger.Info("serving MCP on stdio", "name", Name)
	return server.ServeStdio(s.mcp,
		server.WithErrorLogger(slog.NewLogLogger(s.logger.Handler(), slog.LevelError)))
}

const instructions = `Browse Paradox game script files one symbol at a time.
Call init_game with the game install directory first. Use list_directories
to find where content lives, list_symbols to see what a file declares and
get_structure to inspect one symbol. Add a dot-separated key_path to drill
into nested blocks; output is summarized until the path is two keys deep.`
