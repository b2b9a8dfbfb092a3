// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package transcript

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelorus-ai/pelorus-tui/internal/model"
	"github.com/pelorus-ai/pelorus-tui/internal/util"
)

// Markdown renders messages as a Markdown document.
func Markdown(title string, messages []*model.Message) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", title)
	for _, msg := range messages {
		fmt.Fprintf(&b, "## %s", msg.Role.DisplayName())
		if !msg.Timestamp.IsZero() {
			fmt.Fprintf(&b, " (%s)", msg.Timestamp.Format("2006-01-02 15:04"))
		}
		b.WriteString("\n\n")

		switch msg.Role {
		case model.RoleUser:
			b.WriteString(msg.Query)
			b.WriteString("\n")
			if msg.Attachment != nil {
				fmt.Fprintf(&b, "\nAttachment: %s\n", msg.Attachment.Name)
			}
		case model.RoleAssistant:
			if msg.Response == nil {
				break
			}
			b.WriteString(msg.Response.Answer)
			b.WriteString("\n")
			if len(msg.Response.ToolsUsed) > 0 {
				fmt.Fprintf(&b, "\nTools used: %s\n", strings.Join(msg.Response.ToolsUsed, ", "))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// ExportMarkdown writes messages to path as Markdown.
func ExportMarkdown(path, title string, messages []*model.Message) error {
	if len(messages) == 0 {
		return fmt.Errorf("nothing to export")
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("file already exists: %s", path)
	}
	return util.AtomicWriteFile(path, []byte(Markdown(title, messages)), 0o600)
}
