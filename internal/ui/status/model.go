// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package status provides the connection dashboard view: backend health,
// agent readiness, and the voice service, refreshed together on demand
// or on the background health tick.
package status

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pelorus-ai/pelorus-tui/internal/api"
	"github.com/pelorus-ai/pelorus-tui/internal/health"
	"github.com/pelorus-ai/pelorus-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGES
// =============================================================================

// SnapshotMsg delivers one full dashboard refresh. Individual probes may
// fail independently; a nil section with its error means that service
// could not be reached.
type SnapshotMsg struct {
	Health       health.Status
	CheckedAt    time.Time
	HealthDetail string

	Agent    *api.AgentStatus
	AgentErr error

	Voice    *api.VoiceStatusResponse
	VoiceErr error
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model for the connection dashboard.
type Model struct {
	theme *styles.Theme

	width  int
	height int

	view viewport.Model
	spin spinner.Model

	client  *api.Client
	monitor *health.Monitor
	logPath string

	snapshot *SnapshotMsg
	busy     bool
}

// New creates the dashboard bound to the shared health monitor. logPath is
// shown so users can find the request log; empty hides the line.
func New(client *api.Client, monitor *health.Monitor, logPath string, theme *styles.Theme) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	return &Model{
		theme:   theme,
		view:    viewport.New(80, 20),
		spin:    sp,
		client:  client,
		monitor: monitor,
		logPath: logPath,
	}
}

// Resize adjusts the view to new terminal dimensions.
func (m *Model) Resize(width, height int) {
	m.width = width
	m.height = height
	vpHeight := height - 3
	if vpHeight < 3 {
		vpHeight = 3
	}
	m.view.Width = width
	m.view.Height = vpHeight
}

// Health returns the latest observed backend health.
func (m *Model) Health() health.Status {
	if m.snapshot == nil {
		return health.StatusUnknown
	}
	return m.snapshot.Health
}

// =============================================================================
// COMMANDS
// =============================================================================

// refreshCmd probes all three services and returns one snapshot. The
// agent and voice probes reuse the health check's verdict when the
// backend itself is down.
func refreshCmd(client *api.Client, monitor *health.Monitor) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		msg := SnapshotMsg{}
		msg.Health = monitor.Check(ctx)
		msg.CheckedAt = monitor.LastCheck()
		msg.HealthDetail = monitor.LastError()

		if msg.Health == health.StatusHealthy {
			msg.Agent, msg.AgentErr = client.AgentStatus(ctx)
			msg.Voice, msg.VoiceErr = client.VoiceStatus(ctx)
		}
		return msg
	}
}
