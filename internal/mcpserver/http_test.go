// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rpcResponse is the subset of a JSON-RPC response the tests inspect.
type rpcResponse struct {
	Result struct {
		ServerInfo struct {
			Name string `json:"name"`
		} `json:"serverInfo"`
		Tools []struct {
			Name string `json:"name"`
		} `json:"tools"`
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
		IsError bool `json:"isError"`
	} `json:"result"`
}

func postRPC(t *testing.T, url, body string) rpcResponse {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, text/event-stream")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out rpcResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHTTPHandler_StreamableMCP(t *testing.T) {
	s, root := newServer(t)
	ts := httptest.NewServer(s.HTTPHandler())
	defer ts.Close()
	url := ts.URL + HTTPEndpoint

	initResp := postRPC(t, url, `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{
		"protocolVersion":"2025-03-26","capabilities":{},
		"clientInfo":{"name":"test","version":"0.0.0"}}}`)
	assert.Equal(t, Name, initResp.Result.ServerInfo.Name)

	list := postRPC(t, url, `{"jsonrpc":"2.0","id":2,"method":"tools/list","params":{}}`)
	var names []string
	for _, tl := range list.Result.Tools {
		names = append(names, tl.Name)
	}
	assert.ElementsMatch(t, []string{"init_game", "list_directories", "list_symbols", "get_structure", "describe_path"}, names)

	before := postRPC(t, url, `{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{
		"name":"list_directories","arguments":{}}}`)
	assert.True(t, before.Result.IsError)
	require.Len(t, before.Result.Content, 1)
	assert.Equal(t, "Error: NotInitialized: call init_game first", before.Result.Content[0].Text)

	args, err := json.Marshal(map[string]any{
		"name":      "init_game",
		"arguments": map[string]any{"game_directory": root},
	})
	require.NoError(t, err)
	initGame := postRPC(t, url, `{"jsonrpc":"2.0","id":4,"method":"tools/call","params":`+string(args)+`}`)
	require.False(t, initGame.Result.IsError)
	require.NotNil(t, s.Session())

	symbols := postRPC(t, url, `{"jsonrpc":"2.0","id":5,"method":"tools/call","params":{
		"name":"list_symbols","arguments":{"file_path":"common/ideas/japan.txt"}}}`)
	assert.False(t, symbols.Result.IsError)
	require.Len(t, symbols.Result.Content, 1)
	assert.Equal(t, "block: ideas (L1-L8)", symbols.Result.Content[0].Text)
}

func TestHTTPHandler_Health(t *testing.T) {
	s, _ := newServer(t)
	ts := httptest.NewServer(s.HTTPHandler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + HealthEndpoint)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListenHTTP_ShutsDownOnCancel(t *testing.T) {
	s, _ := newServer(t)

	// Reserve a free port, then hand it to the server.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenHTTP(ctx, addr) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + HealthEndpoint)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("ListenHTTP did not return after cancel")
	}
}
