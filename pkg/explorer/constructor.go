// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package explorer

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/petar-djukic/paradox-script-mcp/internal/resolver"
	"github.com/petar-djukic/paradox-script-mcp/internal/script"
	"github.com/petar-djukic/paradox-script-mcp/internal/structure"
)

// New validates the config, applies defaults and returns a ready-to-use
// Explorer.
func New(cfg Config) (Explorer, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	applyDefaults(&cfg)

	return &explorer{
		cfg:       cfg,
		logger:    cfg.Logger,
		resolver:  resolver.New(cfg.Logger),
		formatter: structure.NewFormatter(structure.Config{ExpandDepth: cfg.ExpandDepth}),
	}, nil
}

// explorer implements Explorer over the internal resolver, navigator and
// formatters.
type explorer struct {
	cfg       Config
	logger    *slog.Logger
	resolver  *resolver.Resolver
	formatter *structure.Formatter
}

// validateConfig rejects values that cannot be defaulted.
func validateConfig(cfg Config) error {
	if cfg.ExpandDepth < 0 {
		return fmt.Errorf("ExpandDepth must be >= 0, got %d", cfg.ExpandDepth)
	}
	if cfg.KnowledgeDir != "" {
		if info, err := os.Stat(cfg.KnowledgeDir); err != nil || !info.IsDir() {
			return fmt.Errorf("KnowledgeDir %q does not exist or is not a directory", cfg.KnowledgeDir)
		}
	}
	return nil
}

// applyDefaults fills in zero-value fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.ExpandDepth == 0 {
		cfg.ExpandDepth = structure.DefaultExpandDepth
	}
	if cfg.Parser == nil {
		cfg.Parser = script.Parser{}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
}
