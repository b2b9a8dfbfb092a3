// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package status

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Init probes the services once and starts the spinner.
func (m *Model) Init() tea.Cmd {
	m.busy = true
	return tea.Batch(refreshCmd(m.client, m.monitor), m.spin.Tick)
}

// Update handles one Bubble Tea message.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "r" && !m.busy {
			m.busy = true
			return m, refreshCmd(m.client, m.monitor)
		}

	case SnapshotMsg:
		m.busy = false
		m.snapshot = &msg
		m.refresh()
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

// Refresh returns a command that re-probes the services. The root model
// uses it on the background health tick.
func (m *Model) Refresh() tea.Cmd {
	if m.busy {
		return nil
	}
	m.busy = true
	return refreshCmd(m.client, m.monitor)
}
