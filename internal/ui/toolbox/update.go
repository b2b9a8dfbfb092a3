// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package toolbox

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
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

	case ToolResultMsg:
		m.busy = false
		m.log.Append(msg.Entry)
		m.refreshLog()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (*Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.submit()
	case "ctrl+t":
		m.cycleTool()
		return m, nil
	case "ctrl+x":
		m.log.Clear()
		m.refreshLog()
		m.notice = "Tool log cleared."
		return m, nil
	case "tab":
		if m.tool == ToolWeather {
			m.completePort()
			return m, nil
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.view, cmd = m.view.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// submit runs the active tool on the input line. One invocation at a time.
func (m *Model) submit() (*Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}

	var cmd tea.Cmd
	switch m.tool {
	case ToolAsk:
		cmd = askCmd(m.client, text)
	case ToolDocument:
		cmd = documentCmd(m.client, text)
	case ToolWeather:
		coords, ok := knownPorts[strings.ToLower(text)]
		if !ok {
			m.notice = "Unknown port. Known ports: " + strings.Join(portNames(), ", ")
			return m, nil
		}
		cmd = weatherCmd(m.client, text, coords)
	}

	m.busy = true
	m.notice = ""
	m.input.Reset()
	return m, cmd
}

// refreshLog re-renders the tool log and scrolls to the bottom.
func (m *Model) refreshLog() {
	var b strings.Builder
	for _, entry := range m.log.Entries() {
		b.WriteString(m.renderEntry(entry))
		b.WriteString("\n")
	}
	m.view.SetContent(b.String())
	m.view.GotoBottom()
}
