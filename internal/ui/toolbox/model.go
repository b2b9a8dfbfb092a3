// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package toolbox provides the direct tools view: one-shot questions,
// document summaries, and port weather, each logged independently of the
// agent conversation.
package toolbox

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pelorus-ai/pelorus-tui/internal/api"
	"github.com/pelorus-ai/pelorus-tui/internal/model"
	"github.com/pelorus-ai/pelorus-tui/internal/ui/styles"
)

// =============================================================================
// TOOLS
// =============================================================================

// Tool selects which direct tool the input line drives.
type Tool int

const (
	ToolAsk Tool = iota
	ToolDocument
	ToolWeather
	toolCount
)

// Label returns the display name of the tool.
func (t Tool) Label() string {
	switch t {
	case ToolAsk:
		return "Ask"
	case ToolDocument:
		return "Document"
	case ToolWeather:
		return "Weather"
	default:
		return "?"
	}
}

// Placeholder returns the input hint for the tool.
func (t Tool) Placeholder() string {
	switch t {
	case ToolAsk:
		return "One-shot maritime question…"
	case ToolDocument:
		return "Path to a document to summarize…"
	case ToolWeather:
		return "Port name (tab completes known ports)…"
	default:
		return ""
	}
}

// knownPorts maps preset port names to their coordinates for the
// weather tool.
var knownPorts = map[string]model.Coordinates{
	"rotterdam":   {Lat: 51.95, Lon: 4.14},
	"singapore":   {Lat: 1.26, Lon: 103.84},
	"shanghai":    {Lat: 31.23, Lon: 121.49},
	"hamburg":     {Lat: 53.54, Lon: 9.97},
	"los angeles": {Lat: 33.73, Lon: -118.26},
	"dubai":       {Lat: 25.27, Lon: 55.29},
	"santos":      {Lat: -23.98, Lon: -46.29},
	"mumbai":      {Lat: 18.95, Lon: 72.84},
}

// portNames returns the preset port names sorted for completion.
func portNames() []string {
	names := make([]string, 0, len(knownPorts))
	for name := range knownPorts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// =============================================================================
// MESSAGES
// =============================================================================

// ToolResultMsg delivers one finished tool invocation as a log entry.
type ToolResultMsg struct {
	Entry *model.ToolResponseEntry
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model for the direct tools view.
type Model struct {
	theme *styles.Theme

	width  int
	height int

	tool  Tool
	input textinput.Model
	log   *model.ToolLog
	view  viewport.Model
	spin  spinner.Model

	client *api.Client

	busy   bool
	notice string
}

// New creates the direct tools view bound to the shared tool log.
func New(client *api.Client, log *model.ToolLog, theme *styles.Theme) *Model {
	input := textinput.New()
	input.Placeholder = ToolAsk.Placeholder()
	input.CharLimit = 1000
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = theme.Spinner

	return &Model{
		theme:  theme,
		input:  input,
		log:    log,
		view:   viewport.New(80, 18),
		spin:   sp,
		client: client,
	}
}

// Log exposes the tool log backing the view.
func (m *Model) Log() *model.ToolLog { return m.log }

// CapturesTab reports whether the view wants the tab key for port name
// completion instead of view switching.
func (m *Model) CapturesTab() bool {
	return m.tool == ToolWeather && strings.TrimSpace(m.input.Value()) != ""
}

// Resize adjusts the view to new terminal dimensions.
func (m *Model) Resize(width, height int) {
	m.width = width
	m.height = height
	vpHeight := height - 5
	if vpHeight < 3 {
		vpHeight = 3
	}
	m.view.Width = width
	m.view.Height = vpHeight
	m.input.Width = width - 16
}

// cycleTool switches the active tool and updates the input hint.
func (m *Model) cycleTool() {
	m.tool = (m.tool + 1) % toolCount
	m.input.Placeholder = m.tool.Placeholder()
}

// completePort extends a partial port name to the first preset match.
func (m *Model) completePort() {
	prefix := strings.ToLower(strings.TrimSpace(m.input.Value()))
	if prefix == "" {
		return
	}
	for _, name := range portNames() {
		if strings.HasPrefix(name, prefix) {
			m.input.SetValue(name)
			m.input.CursorEnd()
			return
		}
	}
}

// =============================================================================
// COMMANDS
// =============================================================================

// askCmd runs the one-shot question tool.
func askCmd(client *api.Client, query string) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.AskQuestion(context.Background(), query)
		entry := &model.ToolResponseEntry{Kind: model.ToolAIQuery, Query: query}
		entry.Response = directResponse(resp, err)
		return ToolResultMsg{Entry: entry}
	}
}

// documentCmd runs the document summary tool.
func documentCmd(client *api.Client, path string) tea.Cmd {
	return func() tea.Msg {
		name := filepath.Base(path)
		entry := &model.ToolResponseEntry{Kind: model.ToolDocument, Filename: name}

		data, err := os.ReadFile(path)
		if err != nil {
			entry.Response = model.NewErrorResponse("Cannot read file: " + err.Error())
			return ToolResultMsg{Entry: entry}
		}
		resp, err := client.SummarizeDocument(context.Background(), &api.Upload{
			FieldName: "file",
			Filename:  name,
			Data:      data,
		})
		if err != nil {
			entry.Response = model.NewErrorResponse(err.Error())
		} else {
			entry.Response = model.NewDocumentResponse(resp.Answer, name)
		}
		return ToolResultMsg{Entry: entry}
	}
}

// weatherCmd runs the port weather tool.
func weatherCmd(client *api.Client, port string, coords model.Coordinates) tea.Cmd {
	return func() tea.Msg {
		entry := &model.ToolResponseEntry{
			Kind:        model.ToolWeather,
			PortName:    port,
			Coordinates: &coords,
		}
		resp, err := client.Weather(context.Background(), coords.Lat, coords.Lon)
		if err != nil {
			entry.Response = model.NewErrorResponse(err.Error())
		} else {
			entry.Response = model.NewWeatherResponse(weatherSummary(resp), port, resp)
		}
		return ToolResultMsg{Entry: entry}
	}
}

// directResponse wraps a one-shot answer or its failure.
func directResponse(resp *api.QueryResponse, err error) *model.Response {
	if err != nil {
		return model.NewErrorResponse(err.Error())
	}
	if resp.Error != "" {
		return model.NewErrorResponse(resp.Error)
	}
	return model.NewDirectResponse(resp.Answer)
}
