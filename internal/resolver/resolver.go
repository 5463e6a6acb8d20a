// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package resolver locates a named symbol inside a parsed script document.
// Resolution walks an ordered list of strategies; the first one that
// matches wins, and each strategy returns the first match in document
// order.
package resolver

import (
	"log/slog"

	"github.com/petar-djukic/paradox-script-mcp/pkg/types"
)

// Strategy is one symbol-lookup heuristic.
type Strategy interface {
	// Name identifies the strategy in logs.
	Name() string
	// Find returns the value named symbol, if this heuristic can see it.
	Find(doc *types.Block, symbol string) (types.Value, bool)
}

// DefaultStrategies returns the lookup order for game script files:
// top-level keys, focus trees, events, achievements and finally any
// top-level item with a matching id. A symbol is identified only by a
// top-level key or an id field.
func DefaultStrategies() []Strategy {
	return []Strategy{
		TopLevelKey{},
		FocusTree{},
		IDUnder{Label: "events", Keys: []string{"country_event", "news_event"}},
		IDUnder{Label: "achievements", Keys: []string{"achievement"}},
		AnyID{},
	}
}

// Resolver runs strategies in order.
type Resolver struct {
	strategies []Strategy
	logger     *slog.Logger
}

// New returns a Resolver over strategies, or DefaultStrategies when none
// are given. A nil logger discards output.
func New(logger *slog.Logger, strategies ...Strategy) *Resolver {
	if len(strategies) == 0 {
		strategies = DefaultStrategies()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Resolver{strategies: strategies, logger: logger}
}

// Resolve returns the value named symbol. The boolean is false when no
// strategy matched; an empty Block that did match is still reported as
// found.
func (r *Resolver) Resolve(doc *types.Block, symbol string) (types.Value, bool) {
	if doc == nil {
		return nil, false
	}
	for _, s := range r.strategies {
		if v, ok := s.Find(doc, symbol); ok {
			r.logger.Debug("symbol resolved", "symbol", symbol, "strategy", s.Name())
			return v, true
		}
	}
	r.logger.Debug("symbol not found", "symbol", symbol, "strategies", len(r.strategies))
	return nil, false
}

// Resolve runs the default strategies without logging.
func Resolve(doc *types.Block, symbol string) (types.Value, bool) {
	return New(nil).Resolve(doc, symbol)
}
