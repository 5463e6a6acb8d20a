// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/sync/errgroup"
)

const (
	// HTTPEndpoint is the path of the streamable HTTP MCP endpoint.
	HTTPEndpoint = "/mcp"

	// HealthEndpoint answers 200 OK while the server is up.
	HealthEndpoint = "/health"

	// DefaultHTTPAddr is the listen address used when none is configured.
	DefaultHTTPAddr = "127.0.0.1:8000"

	shutdownTimeout = 5 * time.Second
)

// HTTPHandler returns the router serving MCP over streamable HTTP at
// HTTPEndpoint plus a health check. Tool calls share the server's single
// active session whichever transport they arrive on.
func (s *Server) HTTPHandler() http.Handler {
	streamable := server.NewStreamableHTTPServer(s.mcp,
		server.WithEndpointPath(HTTPEndpoint),
		server.WithStateLess(true),
	)

	r := chi.NewMux()
	r.Use(middleware.Recoverer)
	r.Handle(HTTPEndpoint, streamable)
	r.Get(HealthEndpoint, s.healthHandler)
	return r
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	s.logger.Debug("health check", "remote_addr", r.RemoteAddr)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

// ListenHTTP serves HTTPHandler on addr (DefaultHTTPAddr when empty) and
// blocks until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenHTTP(ctx context.Context, addr string) error {
	if addr == "" {
		addr = DefaultHTTPAddr
	}

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    addr,
		Handler: s.HTTPHandler(),
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg.Go(func() error {
		s.logger.Info("serving MCP over HTTP", "name", Name, "url", "http://"+addr+HTTPEndpoint)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		s.logger.Debug("shutting down HTTP server")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
