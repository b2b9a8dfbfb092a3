// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the pelorus TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/pelorus-ai/pelorus-tui/internal/health"
	"github.com/pelorus-ai/pelorus-tui/internal/ui/styles"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// StatusBar is the bottom status bar: backend health on the left,
// voice and keyboard hints on the right.
type StatusBar struct {
	Health       health.Status
	VoiceEnabled bool
	Listening    bool
	Playing      bool
	Width        int

	theme *styles.Theme
}

// NewStatusBar creates a status bar with the given theme.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{theme: theme, VoiceEnabled: true}
}

// healthSegment renders the backend reachability indicator.
func (s *StatusBar) healthSegment() string {
	switch s.Health {
	case health.StatusHealthy:
		return s.theme.Connected.Render("● " + s.Health.String())
	case health.StatusUnhealthy:
		return s.theme.Disconnected.Render("✗ " + s.Health.String())
	default:
		return s.theme.Checking.Render("○ " + s.Health.String())
	}
}

// voiceSegment renders the voice activity indicator.
func (s *StatusBar) voiceSegment() string {
	switch {
	case s.Listening:
		return s.theme.Listening.Render("🎤 listening")
	case s.Playing:
		return s.theme.Playing.Render("🔊 playing")
	case s.VoiceEnabled:
		return s.theme.MutedText.Render("voice on")
	default:
		return s.theme.MutedText.Render("voice off")
	}
}

// shortcutSegment renders the keyboard hints.
func (s *StatusBar) shortcutSegment() string {
	var b strings.Builder
	pairs := []struct{ key, desc string }{
		{"tab", "switch"},
		{"esc", "cancel"},
		{"^c", "quit"},
	}
	for i, p := range pairs {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(s.theme.ShortcutKey.Render(p.key))
		b.WriteString(" ")
		b.WriteString(s.theme.ShortcutDesc.Render(p.desc))
	}
	return b.String()
}

// Render draws the status bar at its configured width.
func (s *StatusBar) Render() string {
	left := s.healthSegment()
	right := s.voiceSegment() + "  " + s.shortcutSegment()

	gap := s.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	line := left + strings.Repeat(" ", gap) + right
	return s.theme.StatusBar.Width(s.Width).Render(truncate(line, s.Width))
}

// truncate shortens a line to the given display width.
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
