// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package voicechat

import (
	"fmt"
	"strings"

	"github.com/pelorus-ai/pelorus-tui/internal/voice"
)

// View renders the voice view.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	b.WriteString(m.stateLine())
	b.WriteString("\n")

	if len(m.shortcuts) > 0 {
		b.WriteString(m.shortcutLine())
		b.WriteString("\n")
	}

	b.WriteString(m.theme.InputContainer.Width(m.width - 2).Render(
		m.theme.InputPrompt.Render("🎙 ") + m.input.View()))
	return b.String()
}

// stateLine renders the session state and any notice.
func (m *Model) stateLine() string {
	switch m.session.State() {
	case voice.StateListening:
		line := m.theme.Listening.Render("listening (" + m.session.Language() + ")")
		if t := m.session.Transcript(); t != "" {
			line += " " + m.theme.Transcript.Render(t)
		}
		return line
	case voice.StateProcessing:
		return m.spin.View() + m.theme.Processing.Render(" processing…")
	}

	if m.session.IsPlaying() {
		return m.theme.Playing.Render("🔊 playing reply")
	}
	if m.notice != "" {
		return m.theme.MutedText.Render(m.notice)
	}
	if err := m.session.LastError(); err != "" {
		return m.theme.ErrorText.Render(err)
	}
	return m.theme.MutedText.Render("idle")
}

// shortcutLine renders the numbered quick commands.
func (m *Model) shortcutLine() string {
	var parts []string
	for i, s := range m.shortcuts {
		if i >= 5 {
			break
		}
		parts = append(parts,
			m.theme.ShortcutKey.Render(fmt.Sprintf("%d", i+1))+
				" "+m.theme.ShortcutDesc.Render(s.Phrase))
	}
	return strings.Join(parts, "  ")
}
