// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"
)

// View renders the chat view.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	switch {
	case m.state == StateWaiting:
		b.WriteString(m.spin.View())
		b.WriteString(m.theme.ThinkingText.Render(" working…"))
	case m.notice != "":
		b.WriteString(m.theme.MutedText.Render(m.notice))
	case m.pendingAttachment != nil:
		b.WriteString(m.theme.Attachment.Render("📎 " + m.pendingAttachment.Name))
	}
	b.WriteString("\n")

	b.WriteString(m.theme.InputContainer.Width(m.width - 2).Render(
		m.theme.InputPrompt.Render("› ") + m.input.View()))
	return b.String()
}
