// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pelorus-ai/pelorus-tui/internal/api"
)

// =============================================================================
// BACKEND COMMANDS
// =============================================================================

// queryCmd sends one agent query and delivers the result as a message.
func queryCmd(ctx context.Context, client *api.Client, query string, upload *api.Upload) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.AgentQuery(ctx, query, upload, "")
		return QueryResultMsg{Resp: resp, Err: err}
	}
}

// clearMemoryCmd resets the backend conversation memory.
func clearMemoryCmd(ctx context.Context, client *api.Client) tea.Cmd {
	return func() tea.Msg {
		_, err := client.ClearAgentMemory(ctx)
		return MemoryClearedMsg{Err: err}
	}
}

// statusCmd fetches the agent status summary.
func statusCmd(ctx context.Context, client *api.Client) tea.Cmd {
	return func() tea.Msg {
		status, err := client.AgentStatus(ctx)
		if err != nil {
			return AgentInfoMsg{Title: "Agent status", Err: err}
		}
		var b strings.Builder
		fmt.Fprintf(&b, "Agent: %s (%s)\n", status.AgentType, status.Status)
		fmt.Fprintf(&b, "Capabilities: %s\n", strings.Join(status.Capabilities, ", "))
		fmt.Fprintf(&b, "Voyage tools: %s\n", strings.Join(status.VoyagePlanningTools, ", "))
		if status.MemoryEnabled {
			b.WriteString("Memory: enabled")
		} else {
			b.WriteString("Memory: disabled")
		}
		return AgentInfoMsg{Title: "Agent status", Body: b.String()}
	}
}

// toolsCmd fetches the agent tool catalog.
func toolsCmd(ctx context.Context, client *api.Client) tea.Cmd {
	return func() tea.Msg {
		tools, err := client.AgentTools(ctx)
		if err != nil {
			return AgentInfoMsg{Title: "Agent tools", Err: err}
		}
		var b strings.Builder
		for _, tool := range tools.Tools {
			fmt.Fprintf(&b, "- **%s**: %s\n", tool.Name, tool.Description)
		}
		return AgentInfoMsg{Title: "Agent tools", Body: strings.TrimRight(b.String(), "\n")}
	}
}

// examplesCmd fetches example queries.
func examplesCmd(ctx context.Context, client *api.Client) tea.Cmd {
	return func() tea.Msg {
		examples, err := client.AgentExamples(ctx)
		if err != nil {
			return AgentInfoMsg{Title: "Example queries", Err: err}
		}
		var b strings.Builder
		for category, ex := range examples.Examples {
			fmt.Fprintf(&b, "- **%s**: %s\n", category, ex)
		}
		return AgentInfoMsg{Title: "Example queries", Body: strings.TrimRight(b.String(), "\n")}
	}
}

// memoryCmd fetches the backend conversation memory.
func memoryCmd(ctx context.Context, client *api.Client) tea.Cmd {
	return func() tea.Msg {
		mem, err := client.AgentMemory(ctx)
		if err != nil {
			return AgentInfoMsg{Title: "Agent memory", Err: err}
		}
		if len(mem.Messages) == 0 {
			return AgentInfoMsg{Title: "Agent memory", Body: "Memory is empty."}
		}
		var b strings.Builder
		for _, m := range mem.Messages {
			fmt.Fprintf(&b, "**%s**: %s\n", m.Role, m.Content)
		}
		return AgentInfoMsg{Title: "Agent memory", Body: strings.TrimRight(b.String(), "\n")}
	}
}
