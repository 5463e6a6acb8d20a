// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package structure

import (
	"errors"
	"testing"

	"github.com/petar-djukic/paradox-script-mcp/internal/script"
	"github.com/petar-djukic/paradox-script-mcp/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const focusSource = `
focus = {
	id = JAP_strike_south
	cost = 10
	prerequisite = { focus = JAP_army_expansion }
	prerequisite = { focus = JAP_navy_expansion }
	completion_reward = {
		add_political_power = 120
		hidden_effect = {
			country_event = { id = japan.5 days = 3 }
			set_country_flag = JAP_south
		}
	}
}
`

func parseFocus(t *testing.T) *types.Block {
	t.Helper()
	doc, err := script.Parse("focus.txt", []byte(focusSource))
	require.NoError(t, err)
	v, ok := doc.Get("focus")
	require.True(t, ok)
	return v.(*types.Block)
}

func TestNavigate_EmptyPathIsIdentity(t *testing.T) {
	focus := parseFocus(t)

	v, depth, err := Navigate(focus, "")
	require.NoError(t, err)
	assert.Same(t, focus, v)
	assert.Equal(t, 0, depth)
}

func TestNavigate_DepthEqualsSegments(t *testing.T) {
	focus := parseFocus(t)

	tests := []struct {
		path      string
		wantDepth int
		wantType  any
	}{
		{path: "completion_reward", wantDepth: 1, wantType: &types.Block{}},
		{path: "completion_reward.hidden_effect", wantDepth: 2, wantType: &types.Block{}},
		{path: "completion_reward.hidden_effect.country_event", wantDepth: 3, wantType: &types.Block{}},
		{path: "completion_reward.hidden_effect.country_event.days", wantDepth: 4, wantType: types.Scalar{}},
		{path: "cost", wantDepth: 1, wantType: types.Scalar{}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			v, depth, err := Navigate(focus, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDepth, depth)
			assert.IsType(t, tt.wantType, v)
		})
	}
}

func TestNavigate_Failures(t *testing.T) {
	focus := parseFocus(t)

	tests := []struct {
		name       string
		path       string
		wantErr    error
		wantDetail string
	}{
		{name: "missing key", path: "completion_reward.nope", wantErr: types.ErrKeyPathNotFound, wantDetail: "completion_reward.nope"},
		{name: "missing first key", path: "ai_will_do", wantErr: types.ErrKeyPathNotFound, wantDetail: "ai_will_do"},
		{name: "key into list", path: "prerequisite.focus", wantErr: types.ErrUnsupportedNavigation, wantDetail: "prerequisite.focus"},
		{name: "key into scalar", path: "cost.value", wantErr: types.ErrKeyPathNotFound, wantDetail: "cost.value"},
		{name: "empty segment", path: "completion_reward.", wantErr: types.ErrKeyPathNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, depth, err := Navigate(focus, tt.path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Contains(t, err.Error(), tt.wantDetail)
			assert.Nil(t, v)
			assert.Equal(t, 0, depth)
		})
	}
}
