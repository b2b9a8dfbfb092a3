// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/pelorus-ai/pelorus-tui/internal/model"
	"github.com/pelorus-ai/pelorus-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGE RENDERER
// =============================================================================

// MessageRenderer draws conversation messages as styled bubbles.
// Assistant answers render as markdown through glamour.
type MessageRenderer struct {
	theme          *styles.Theme
	markdown       *glamour.TermRenderer
	width          int
	maxWidth       int
	ShowTimestamps bool
}

// NewMessageRenderer creates a renderer wrapping markdown at width.
func NewMessageRenderer(theme *styles.Theme, width int) *MessageRenderer {
	r := &MessageRenderer{theme: theme, width: width, ShowTimestamps: true}
	r.rebuild()
	return r
}

// Resize rebuilds the markdown renderer for a new terminal width.
func (r *MessageRenderer) Resize(width int) {
	if width == r.width {
		return
	}
	r.width = width
	r.rebuild()
}

// SetMaxWidth caps the markdown wrap width; 0 follows the terminal.
func (r *MessageRenderer) SetMaxWidth(width int) {
	if width == r.maxWidth {
		return
	}
	r.maxWidth = width
	r.rebuild()
}

func (r *MessageRenderer) rebuild() {
	r.markdown, _ = glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(r.contentWidth()),
	)
}

func (r *MessageRenderer) contentWidth() int {
	w := r.width - 8
	if r.maxWidth > 0 && w > r.maxWidth {
		w = r.maxWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Render draws one message.
func (r *MessageRenderer) Render(msg *model.Message) string {
	var b strings.Builder

	if r.ShowTimestamps {
		b.WriteString(r.theme.Timestamp.Render(msg.Timestamp.Format("15:04")))
		b.WriteString(" ")
	}
	b.WriteString(r.theme.Title.Render(msg.Role.DisplayName()))
	b.WriteString("\n")

	switch msg.Role {
	case model.RoleUser:
		b.WriteString(r.renderUser(msg))
	default:
		b.WriteString(r.renderAssistant(msg))
	}
	return b.String()
}

func (r *MessageRenderer) renderUser(msg *model.Message) string {
	body := msg.Query
	if msg.Attachment != nil {
		body += "\n" + r.theme.Attachment.Render(
			fmt.Sprintf("📎 %s (%s)", msg.Attachment.Name, formatSize(msg.Attachment.Size)))
	}
	return r.theme.UserBubble.MaxWidth(r.width - 2).Render(body)
}

func (r *MessageRenderer) renderAssistant(msg *model.Message) string {
	resp := msg.Response
	if resp == nil {
		return r.theme.ThinkingText.Render("…")
	}
	if resp.IsError() {
		return r.theme.ErrorBubble.MaxWidth(r.width - 2).Render(resp.Answer)
	}

	body := resp.Answer
	if rendered, err := r.markdown.Render(resp.Answer); err == nil {
		body = strings.TrimRight(rendered, "\n")
	}

	var extras []string
	if len(resp.ToolsUsed) > 0 {
		badges := make([]string, len(resp.ToolsUsed))
		for i, tool := range resp.ToolsUsed {
			badges[i] = r.theme.ToolBadge.Render(tool)
		}
		extras = append(extras, strings.Join(badges, " "))
	}
	if resp.Confidence > 0 {
		extras = append(extras, r.theme.Confidence.Render(
			fmt.Sprintf("confidence %.0f%%", resp.Confidence*100)))
	}
	if resp.AudioRef != "" {
		extras = append(extras, r.theme.Playing.Render("🔊 audio reply"))
	}
	if len(extras) > 0 {
		body += "\n" + strings.Join(extras, "  ")
	}
	return r.theme.AssistantBubble.MaxWidth(r.width - 2).Render(body)
}

// formatSize renders a byte count in a compact human form.
func formatSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
