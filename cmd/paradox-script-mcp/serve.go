// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/paradox-script-mcp/internal/mcpserver"
)

// Transports accepted by --transport.
const (
	transportStdio = "stdio"
	transportHTTP  = "http"
)

// newServeCmd creates the "serve" command.
func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve MCP tools on stdio or streamable HTTP",
		Long:  "Serve runs an MCP server on stdin/stdout, or on streamable HTTP at <addr>/mcp with --transport http. When --root is set the game is initialized up front; otherwise clients call init_game.",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}

	cmd.Flags().String("transport", transportStdio, "MCP transport (stdio or http)")
	cmd.Flags().String("addr", mcpserver.DefaultHTTPAddr, "Listen address for the http transport")
	bindFlags(cmd.Flags())

	return cmd
}

// runServe starts the MCP server and blocks until the client disconnects
// or, for http, until interrupted.
func runServe(cmd *cobra.Command, args []string) error {
	transport := viper.GetString("transport")
	if transport != transportStdio && transport != transportHTTP {
		return fmt.Errorf("unknown transport %q (want %s or %s)", transport, transportStdio, transportHTTP)
	}

	logger := newLogger()

	e, err := newExplorer(logger)
	if err != nil {
		return err
	}

	srv := mcpserver.New(mcpserver.Config{
		Explorer:    e,
		DefaultGame: viper.GetString("game"),
		Version:     version,
		Logger:      logger,
	})

	if root := viper.GetString("root"); root != "" {
		sess, err := e.Init(root, viper.GetString("game"))
		if err != nil {
			return err
		}
		srv.SetSession(sess)
		logger.Info("pre-initialized game", "root", sess.Root(), "game", sess.Game())
	}

	var serveErr error
	if transport == transportHTTP {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		serveErr = srv.ListenHTTP(ctx, viper.GetString("addr"))
	} else {
		serveErr = srv.ServeStdio()
	}
	if serveErr != nil {
		logger.Error("server stopped", "error", serveErr)
		return serveErr
	}
	return nil
}
