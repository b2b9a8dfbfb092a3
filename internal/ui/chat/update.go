// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pelorus-ai/pelorus-tui/internal/model"
	"github.com/pelorus-ai/pelorus-tui/internal/transcript"
)

// Init starts the spinner tick.
func (m *Model) Init() tea.Cmd {
	return m.spin.Tick
}

// Update handles one Bubble Tea message.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case QueryResultMsg:
		return m.handleQueryResult(msg)

	case MemoryClearedMsg:
		m.state = StateReady
		if msg.Err != nil {
			m.history.AppendAssistant(model.NewErrorResponse(msg.Err.Error()))
		} else {
			m.notice = "Conversation memory cleared."
		}
		m.refreshViewport()
		return m, nil

	case AgentInfoMsg:
		m.state = StateReady
		if msg.Err != nil {
			m.history.AppendAssistant(model.NewErrorResponse(msg.Err.Error()))
		} else {
			m.history.AppendAssistant(model.NewDirectResponse(
				"## " + msg.Title + "\n\n" + msg.Body))
		}
		m.refreshViewport()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (*Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.submit()
	case "esc":
		if m.state == StateWaiting {
			m.cancelMgr.cancel()
		}
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// submit sends the typed query. Ignored while a query is in flight.
func (m *Model) submit() (*Model, tea.Cmd) {
	if m.state == StateWaiting {
		return m, nil
	}
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}

	if strings.HasPrefix(text, "/") {
		return m.handleSlashCommand(text)
	}

	upload, err := m.stagedUpload()
	if err != nil {
		m.history.AppendAssistant(model.NewErrorResponse("Cannot read attachment: " + err.Error()))
		m.clearStaged()
		m.refreshViewport()
		return m, nil
	}

	m.history.AppendUser(text, m.pendingAttachment)
	m.input.Reset()
	m.clearStaged()
	m.notice = ""
	m.state = StateWaiting
	m.refreshViewport()

	ctx, cancel := context.WithCancel(context.Background())
	m.cancelMgr.set(cancel)
	return m, queryCmd(ctx, m.client, text, upload)
}

// handleSlashCommand dispatches local commands.
func (m *Model) handleSlashCommand(text string) (*Model, tea.Cmd) {
	fields := strings.Fields(text)
	cmd, args := fields[0], fields[1:]
	m.input.Reset()

	switch cmd {
	case "/clear":
		// Local history and backend memory are cleared together.
		m.history.Clear()
		m.transcriptID = ""
		m.state = StateWaiting
		m.refreshViewport()
		ctx, cancel := context.WithCancel(context.Background())
		m.cancelMgr.set(cancel)
		return m, clearMemoryCmd(ctx, m.client)

	case "/attach":
		if len(args) == 0 {
			m.notice = "Usage: /attach <path>"
			return m, nil
		}
		if err := m.attachFile(strings.Join(args, " ")); err != nil {
			m.notice = "Cannot attach: " + err.Error()
			return m, nil
		}
		m.notice = "Attached " + m.pendingAttachment.Name + " to the next query."
		return m, nil

	case "/detach":
		m.clearStaged()
		m.notice = "Attachment removed."
		return m, nil

	case "/save":
		if m.store == nil {
			m.notice = "Transcript storage is unavailable."
			return m, nil
		}
		// Repeated saves of the same conversation overwrite one transcript.
		id, err := m.store.Save(m.transcriptID, m.history.Messages())
		if err != nil {
			m.notice = "Cannot save: " + err.Error()
			return m, nil
		}
		m.transcriptID = id
		m.notice = "Transcript saved."
		return m, nil

	case "/transcripts":
		if m.store == nil {
			m.notice = "Transcript storage is unavailable."
			return m, nil
		}
		metas, err := m.store.List()
		if err != nil {
			m.notice = "Cannot list transcripts: " + err.Error()
			return m, nil
		}
		m.history.AppendAssistant(model.NewDirectResponse(formatTranscriptList(metas)))
		m.refreshViewport()
		return m, nil

	case "/export":
		if len(args) == 0 {
			m.notice = "Usage: /export <path>"
			return m, nil
		}
		path := strings.Join(args, " ")
		if err := transcript.ExportMarkdown(path, "Pelorus conversation", m.history.Messages()); err != nil {
			m.notice = "Cannot export: " + err.Error()
			return m, nil
		}
		m.notice = "Exported to " + path + "."
		return m, nil

	case "/status", "/tools", "/examples", "/memory":
		m.state = StateWaiting
		ctx, cancel := context.WithCancel(context.Background())
		m.cancelMgr.set(cancel)
		switch cmd {
		case "/status":
			return m, statusCmd(ctx, m.client)
		case "/tools":
			return m, toolsCmd(ctx, m.client)
		case "/examples":
			return m, examplesCmd(ctx, m.client)
		default:
			return m, memoryCmd(ctx, m.client)
		}

	default:
		m.notice = "Unknown command: " + cmd
		return m, nil
	}
}

func (m *Model) handleQueryResult(msg QueryResultMsg) (*Model, tea.Cmd) {
	m.state = StateReady
	m.cancelMgr.cancel()

	switch {
	case errors.Is(msg.Err, context.Canceled):
		m.notice = "Request cancelled."
	case msg.Err != nil:
		m.history.AppendAssistant(model.NewErrorResponse(msg.Err.Error()))
	case msg.Resp.Error != "":
		m.history.AppendAssistant(model.NewErrorResponse(msg.Resp.Error))
	default:
		m.history.AppendAssistant(model.NewAgenticResponse(
			msg.Resp.Answer, msg.Resp.ToolsUsed, msg.Resp.ExecutionPlan, msg.Resp.Confidence))
	}
	m.refreshViewport()
	return m, nil
}

// refreshViewport re-renders the conversation and scrolls to the bottom.
func (m *Model) refreshViewport() {
	var b strings.Builder
	for i, msg := range m.history.Messages() {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.renderer.Render(msg))
		b.WriteString("\n")
	}
	m.viewport.SetContent(b.String())
	m.viewport.GotoBottom()
}

// formatTranscriptList renders stored transcripts as a markdown list.
func formatTranscriptList(metas []transcript.Meta) string {
	if len(metas) == 0 {
		return "## Saved transcripts\n\nNone yet. Use /save to keep this conversation."
	}
	var b strings.Builder
	b.WriteString("## Saved transcripts\n\n")
	for _, meta := range metas {
		fmt.Fprintf(&b, "- **%s** (%d messages, %s)\n",
			meta.Summary, meta.MessageCount, meta.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return b.String()
}
