// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/pelorus-ai/pelorus-tui/internal/api"
	"github.com/pelorus-ai/pelorus-tui/internal/model"
	"github.com/pelorus-ai/pelorus-tui/internal/transcript"
	"github.com/pelorus-ai/pelorus-tui/internal/ui/components"
	"github.com/pelorus-ai/pelorus-tui/internal/ui/styles"
)

// =============================================================================
// CHAT STATE
// =============================================================================

// State represents the current state of the chat view.
type State int

const (
	StateReady   State = iota // Ready for input
	StateWaiting              // A query is in flight
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the agent chat view.
type Model struct {
	state State

	theme    *styles.Theme
	renderer *components.MessageRenderer

	width  int
	height int

	viewport viewport.Model
	input    textinput.Model
	spin     spinner.Model

	client  *api.Client
	history *model.History

	// Transcript persistence, nil when the store could not be opened.
	store        *transcript.Store
	transcriptID string

	cancelMgr *cancelManager

	// File staged for the next query, cleared after submission.
	pendingPath       string
	pendingAttachment *model.Attachment

	notice string
}

// New creates the chat view bound to the shared conversation store.
func New(client *api.Client, history *model.History, theme *styles.Theme) *Model {
	input := textinput.New()
	input.Placeholder = "Ask the maritime agent…"
	input.CharLimit = 2000
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	return &Model{
		theme:     theme,
		renderer:  components.NewMessageRenderer(theme, 80),
		viewport:  viewport.New(80, 20),
		input:     input,
		spin:      sp,
		client:    client,
		history:   history,
		cancelMgr: newCancelManager(),
	}
}

// SetTranscriptStore enables the /save, /export, and /transcripts commands.
func (m *Model) SetTranscriptStore(store *transcript.Store) {
	m.store = store
}

// SetShowTimestamps toggles per-message timestamps.
func (m *Model) SetShowTimestamps(show bool) {
	m.renderer.ShowTimestamps = show
}

// SetMarkdownWidth caps the answer wrap width; 0 follows the terminal.
func (m *Model) SetMarkdownWidth(width int) {
	m.renderer.SetMaxWidth(width)
}

// State returns the current view state.
func (m *Model) State() State { return m.state }

// History exposes the conversation store backing the view.
func (m *Model) History() *model.History { return m.history }

// Resize adjusts the view to new terminal dimensions.
func (m *Model) Resize(width, height int) {
	m.width = width
	m.height = height
	m.renderer.Resize(width)

	vpHeight := height - 5
	if vpHeight < 3 {
		vpHeight = 3
	}
	m.viewport.Width = width
	m.viewport.Height = vpHeight
	m.input.Width = width - 6
}

// attachFile stages a file for the next query. Only the name and size are
// kept in the conversation; the bytes are read again at submission.
func (m *Model) attachFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	m.pendingPath = path
	m.pendingAttachment = &model.Attachment{
		Name: filepath.Base(path),
		Size: info.Size(),
	}
	return nil
}

// stagedUpload reads the staged file into an upload, nil when none.
func (m *Model) stagedUpload() (*api.Upload, error) {
	if m.pendingPath == "" {
		return nil, nil
	}
	data, err := os.ReadFile(m.pendingPath)
	if err != nil {
		return nil, err
	}
	return &api.Upload{
		FieldName: "file",
		Filename:  filepath.Base(m.pendingPath),
		Data:      data,
	}, nil
}

// clearStaged drops the staged attachment.
func (m *Model) clearStaged() {
	m.pendingPath = ""
	m.pendingAttachment = nil
}
