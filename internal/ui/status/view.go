// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package status

import (
	"fmt"
	"strings"

	"github.com/pelorus-ai/pelorus-tui/internal/health"
)

// View renders the dashboard.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.view.View())
	b.WriteString("\n")
	if m.busy {
		b.WriteString(m.spin.View())
		b.WriteString(m.theme.ThinkingText.Render(" checking services…"))
	} else {
		b.WriteString(m.theme.ShortcutDesc.Render("r refresh"))
	}
	return b.String()
}

// refresh re-renders the snapshot into the viewport. Called only from
// Update handlers.
func (m *Model) refresh() {
	if m.snapshot == nil {
		m.view.SetContent("")
		return
	}
	s := m.snapshot

	var b strings.Builder

	b.WriteString(m.theme.PanelTitle.Render("Backend"))
	b.WriteString("\n")
	b.WriteString(m.renderLine("Endpoint", m.client.BaseURL()))
	b.WriteString(m.renderLine("Status", m.healthBadge(s.Health)))
	if !s.CheckedAt.IsZero() {
		b.WriteString(m.renderLine("Last check", s.CheckedAt.Format("15:04:05")))
	}
	if s.HealthDetail != "" {
		b.WriteString(m.renderLine("Detail", m.theme.ErrorText.Render(s.HealthDetail)))
	}
	b.WriteString("\n")

	b.WriteString(m.theme.PanelTitle.Render("Agent"))
	b.WriteString("\n")
	switch {
	case s.Agent != nil:
		b.WriteString(m.renderLine("Status", s.Agent.Status))
		b.WriteString(m.renderLine("Type", s.Agent.AgentType))
		b.WriteString(m.renderLine("Memory", onOff(s.Agent.MemoryEnabled)))
		if len(s.Agent.Capabilities) > 0 {
			b.WriteString(m.renderLine("Capabilities", strings.Join(s.Agent.Capabilities, ", ")))
		}
		if len(s.Agent.VoyagePlanningTools) > 0 {
			b.WriteString(m.renderLine("Voyage tools", strings.Join(s.Agent.VoyagePlanningTools, ", ")))
		}
	case s.AgentErr != nil:
		b.WriteString(m.renderLine("Status", m.theme.ErrorText.Render(s.AgentErr.Error())))
	default:
		b.WriteString(m.renderLine("Status", m.theme.MutedText.Render("not checked")))
	}
	b.WriteString("\n")

	b.WriteString(m.theme.PanelTitle.Render("Voice service"))
	b.WriteString("\n")
	switch {
	case s.Voice != nil:
		b.WriteString(m.renderLine("Service", s.Voice.Service))
		b.WriteString(m.renderLine("Status", s.Voice.Status))
		b.WriteString(m.renderLine("Conversations", fmt.Sprintf("%d", s.Voice.ActiveConversations)))
	case s.VoiceErr != nil:
		b.WriteString(m.renderLine("Status", m.theme.ErrorText.Render(s.VoiceErr.Error())))
	default:
		b.WriteString(m.renderLine("Status", m.theme.MutedText.Render("not checked")))
	}

	if m.logPath != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.PanelTitle.Render("Logging"))
		b.WriteString("\n")
		b.WriteString(m.renderLine("Request log", m.logPath))
	}

	panel := m.theme.Panel
	if m.width > 8 {
		panel = panel.Width(m.width - 4)
	}
	m.view.SetContent(panel.Render(b.String()))
}

func (m *Model) renderLine(label, value string) string {
	return m.theme.Label.Render(fmt.Sprintf("%-14s", label)) + m.theme.Value.Render(value) + "\n"
}

func (m *Model) healthBadge(s health.Status) string {
	switch s {
	case health.StatusHealthy:
		return m.theme.Connected.Render("● " + s.String())
	case health.StatusUnhealthy:
		return m.theme.Disconnected.Render("✗ " + s.String())
	default:
		return m.theme.Checking.Render("○ " + s.String())
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
