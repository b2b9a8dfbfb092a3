// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for communicating with the Maritime AI Agent backend.
package api

import (
	"context"
)

// =============================================================================
// AGENT OPERATIONS
// =============================================================================

// AgentQuery submits a natural-language query to the reasoning agent.
// The query rides in a multipart form so an optional document and context
// blob can travel with it. Uses the long-running query timeout.
func (c *Client) AgentQuery(ctx context.Context, query string, upload *Upload, agentContext string) (*QueryResponse, error) {
	fields := map[string]string{"query": query}
	if agentContext != "" {
		fields["context"] = agentContext
	}

	var resp QueryResponse
	if err := c.postMultipart(ctx, c.queryClient, "/agent/query", fields, upload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AgentStatus fetches the agent's operational status and capability list.
func (c *Client) AgentStatus(ctx context.Context) (*AgentStatus, error) {
	var resp AgentStatus
	if err := c.getJSON(ctx, "/agent/status", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AgentTools fetches the tools available to the agent.
func (c *Client) AgentTools(ctx context.Context) (*AgentToolsResponse, error) {
	var resp AgentToolsResponse
	if err := c.getJSON(ctx, "/agent/tools", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AgentExamples fetches example queries for the agent.
func (c *Client) AgentExamples(ctx context.Context) (*AgentExamplesResponse, error) {
	var resp AgentExamplesResponse
	if err := c.getJSON(ctx, "/agent/examples", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AgentMemory fetches the agent's remembered conversation turns.
func (c *Client) AgentMemory(ctx context.Context) (*AgentMemoryResponse, error) {
	var resp AgentMemoryResponse
	if err := c.getJSON(ctx, "/agent/memory", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ClearAgentMemory wipes the agent's conversation memory.
func (c *Client) ClearAgentMemory(ctx context.Context) (*ClearMemoryResponse, error) {
	var resp ClearMemoryResponse
	if err := c.postJSON(ctx, "/agent/memory/clear", struct{}{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
