// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the agent chat view, the main conversation
// surface of the application.
//
// This file defines the Bubble Tea message types used by the chat view.
package chat

import "github.com/pelorus-ai/pelorus-tui/internal/api"

// QueryResultMsg delivers the outcome of an agent query.
type QueryResultMsg struct {
	Resp *api.QueryResponse
	Err  error
}

// MemoryClearedMsg confirms a backend memory reset.
type MemoryClearedMsg struct {
	Err error
}

// AgentInfoMsg delivers the result of an informational agent call
// (status, tools, examples, memory).
type AgentInfoMsg struct {
	Title string
	Body  string
	Err   error
}
