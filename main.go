// pelorus TUI - A terminal interface for the maritime AI assistant.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pelorus-ai/pelorus-tui/internal/api"
	"github.com/pelorus-ai/pelorus-tui/internal/config"
	"github.com/pelorus-ai/pelorus-tui/internal/health"
	"github.com/pelorus-ai/pelorus-tui/internal/model"
	"github.com/pelorus-ai/pelorus-tui/internal/telemetry"
	"github.com/pelorus-ai/pelorus-tui/internal/transcript"
	"github.com/pelorus-ai/pelorus-tui/internal/ui/chat"
	"github.com/pelorus-ai/pelorus-tui/internal/ui/components"
	"github.com/pelorus-ai/pelorus-tui/internal/ui/planner"
	statusview "github.com/pelorus-ai/pelorus-tui/internal/ui/status"
	"github.com/pelorus-ai/pelorus-tui/internal/ui/styles"
	"github.com/pelorus-ai/pelorus-tui/internal/ui/toolbox"
	"github.com/pelorus-ai/pelorus-tui/internal/ui/voicechat"
	"github.com/pelorus-ai/pelorus-tui/internal/voice"
	"github.com/pelorus-ai/pelorus-tui/internal/voyage"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--version", "-v":
			fmt.Printf("pelorus %s (%s, built %s)\n", Version, GitCommit, BuildDate)
			return
		case "--help", "-h":
			fmt.Println("Usage: pelorus [--version]")
			fmt.Println()
			fmt.Println("Configuration is read from ~/.pelorus/config.toml and PELORUS_*")
			fmt.Println("environment variables.")
			return
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	config.SetGlobal(cfg)

	reqLog := telemetry.Nop()
	logPath := ""
	if cfg.Logging.Enabled {
		logPath = cfg.Logging.Path
		if logPath == "" {
			logPath, err = config.DefaultLogPath()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error resolving log path: %v\n", err)
				os.Exit(1)
			}
		}
		reqLog, err = telemetry.Open(logPath, cfg.Logging.Level)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening request log: %v\n", err)
			os.Exit(1)
		}
	}
	defer reqLog.Close()

	client := api.NewClientWithConfig(&api.Config{
		BaseURL:      cfg.API.BaseURL,
		Timeout:      cfg.API.Timeout(),
		QueryTimeout: cfg.API.QueryTimeout(),
	})
	client.SetObserver(reqLog)

	// The configured theme overrides terminal background detection.
	lipgloss.SetHasDarkBackground(cfg.UI.Theme != "light")

	m := NewModel(client, cfg, logPath)
	defer m.shutdown()

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running pelorus: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// APPLICATION MODEL
// =============================================================================

// View identifiers, in tab order.
const (
	tabChat = iota
	tabVoice
	tabVoyage
	tabTools
	tabStatus
)

// healthTickMsg drives the periodic backend reachability check.
type healthTickMsg time.Time

// Model is the root Bubble Tea model. It owns the shared services and
// routes messages to the per-view models.
type Model struct {
	theme *styles.Theme

	width  int
	height int

	tabs   *components.TabBar
	status *components.StatusBar

	client  *api.Client
	monitor *health.Monitor
	session *voice.Session
	player  *voice.ExecPlayer

	chatTab   *chat.Model
	voiceTab  *voicechat.Model
	voyageTab *planner.Model
	toolsTab  *toolbox.Model
	statusTab *statusview.Model
}

// NewModel wires the shared services and the five views.
func NewModel(client *api.Client, cfg *config.Config, logPath string) *Model {
	theme := styles.NewTheme(80, 24)

	player := voice.DetectPlayer(client.BaseURL())
	var sessionPlayer voice.Player
	if player != nil {
		sessionPlayer = player
	}
	session := voice.NewSession(nil, sessionPlayer, cfg.Voice.Language)
	session.SetVoiceEnabled(cfg.Voice.Enabled)

	monitor := health.NewMonitor(client, cfg.API.HealthInterval())
	plan := voyage.NewPlanner(client)

	m := &Model{
		theme:   theme,
		tabs:    components.NewTabBar(theme, "Chat", "Voice", "Voyage", "Tools", "Status"),
		status:  components.NewStatusBar(theme),
		client:  client,
		monitor: monitor,
		session: session,
		player:  player,

		chatTab:   chat.New(client, model.NewHistory(), theme),
		voiceTab:  voicechat.New(client, model.NewHistory(), session, player, theme),
		voyageTab: planner.New(plan, theme),
		toolsTab:  toolbox.New(client, model.NewToolLog(), theme),
		statusTab: statusview.New(client, monitor, logPath, theme),
	}

	// Transcript persistence is optional; the chat view degrades to a
	// notice when the store cannot be opened.
	if store, err := transcript.NewStore(); err == nil {
		m.chatTab.SetTranscriptStore(store)
	}

	m.chatTab.SetShowTimestamps(cfg.UI.ShowTimestamps)
	m.voiceTab.SetShowTimestamps(cfg.UI.ShowTimestamps)
	m.chatTab.SetMarkdownWidth(cfg.UI.MarkdownWidth)
	m.voiceTab.SetMarkdownWidth(cfg.UI.MarkdownWidth)
	return m
}

// shutdown releases resources the Bubble Tea loop does not own.
func (m *Model) shutdown() {
	if m.player != nil {
		m.player.Stop()
	}
}

// Init starts every view and the health check loop.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.chatTab.Init(),
		m.voiceTab.Init(),
		m.voyageTab.Init(),
		m.toolsTab.Init(),
		m.statusTab.Init(),
		m.healthTick(),
	)
}

// healthTick schedules the next periodic reachability check.
func (m *Model) healthTick() tea.Cmd {
	return tea.Tick(m.monitor.Interval(), func(t time.Time) tea.Msg {
		return healthTickMsg(t)
	})
}

// Update routes one message. Key presses go to the active view only;
// everything else is broadcast so in-flight results reach their owner
// regardless of which view is showing.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case healthTickMsg:
		return m, tea.Batch(m.statusTab.Refresh(), m.healthTick())
	}

	return m, m.broadcast(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab":
		if m.tabs.Active == tabTools && m.toolsTab.CapturesTab() {
			break
		}
		m.tabs.Next()
		return m, nil
	case "shift+tab":
		m.tabs.Prev()
		return m, nil
	}
	return m, m.forwardToActive(msg)
}

// forwardToActive sends a message to the active view only.
func (m *Model) forwardToActive(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.tabs.Active {
	case tabChat:
		m.chatTab, cmd = m.chatTab.Update(msg)
	case tabVoice:
		m.voiceTab, cmd = m.voiceTab.Update(msg)
	case tabVoyage:
		m.voyageTab, cmd = m.voyageTab.Update(msg)
	case tabTools:
		m.toolsTab, cmd = m.toolsTab.Update(msg)
	case tabStatus:
		m.statusTab, cmd = m.statusTab.Update(msg)
	}
	return cmd
}

// broadcast sends a message to every view.
func (m *Model) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, 5)
	var cmd tea.Cmd

	m.chatTab, cmd = m.chatTab.Update(msg)
	cmds = append(cmds, cmd)
	m.voiceTab, cmd = m.voiceTab.Update(msg)
	cmds = append(cmds, cmd)
	m.voyageTab, cmd = m.voyageTab.Update(msg)
	cmds = append(cmds, cmd)
	m.toolsTab, cmd = m.toolsTab.Update(msg)
	cmds = append(cmds, cmd)
	m.statusTab, cmd = m.statusTab.Update(msg)
	cmds = append(cmds, cmd)

	return tea.Batch(cmds...)
}

// resize propagates new terminal dimensions to every view. The header
// and status bar each take one row.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.theme.Resize(width, height)

	m.tabs.Width = width
	m.status.Width = width

	contentHeight := height - 2
	if contentHeight < 5 {
		contentHeight = 5
	}
	m.chatTab.Resize(width, contentHeight)
	m.voiceTab.Resize(width, contentHeight)
	m.voyageTab.Resize(width, contentHeight)
	m.toolsTab.Resize(width, contentHeight)
	m.statusTab.Resize(width, contentHeight)
}

// View renders the tab bar, the active view, and the status bar.
func (m *Model) View() string {
	var body string
	switch m.tabs.Active {
	case tabChat:
		body = m.chatTab.View()
	case tabVoice:
		body = m.voiceTab.View()
	case tabVoyage:
		body = m.voyageTab.View()
	case tabTools:
		body = m.toolsTab.View()
	case tabStatus:
		body = m.statusTab.View()
	}

	m.status.Health = m.monitor.Status()
	m.status.VoiceEnabled = m.session.VoiceEnabled()
	m.status.Listening = m.session.State() == voice.StateListening
	m.status.Playing = m.session.IsPlaying()

	return m.tabs.Render() + "\n" + body + "\n" + m.status.Render()
}
