// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package voicechat provides the voice interaction view: spoken or typed
// commands, quick-command shortcuts, and audio replies.
package voicechat

import (
	"context"
	"sort"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pelorus-ai/pelorus-tui/internal/api"
	"github.com/pelorus-ai/pelorus-tui/internal/model"
	"github.com/pelorus-ai/pelorus-tui/internal/ui/components"
	"github.com/pelorus-ai/pelorus-tui/internal/ui/styles"
	"github.com/pelorus-ai/pelorus-tui/internal/voice"
)

// =============================================================================
// MESSAGES
// =============================================================================

// VoiceResultMsg delivers the outcome of a voice command or chat turn.
type VoiceResultMsg struct {
	Text       string
	AudioRef   string
	Confidence float64
	Err        error
}

// ShortcutsMsg delivers the quick-command catalog.
type ShortcutsMsg struct {
	Shortcuts map[string]string
	Err       error
}

// LanguagesMsg delivers the supported recognition languages.
type LanguagesMsg struct {
	Languages map[string]string
	Default   string
	Err       error
}

// PlaybackDoneMsg signals that an audio reply finished playing.
type PlaybackDoneMsg struct{}

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model for the voice view.
type Model struct {
	theme    *styles.Theme
	renderer *components.MessageRenderer

	width  int
	height int

	viewport viewport.Model
	input    textinput.Model
	spin     spinner.Model

	client  *api.Client
	history *model.History
	session *voice.Session
	player  *voice.ExecPlayer

	// Quick commands, sorted by phrase for stable numbering.
	shortcuts []shortcut

	languages []string
	langIdx   int

	notice string
}

type shortcut struct {
	Phrase      string
	Description string
}

// New creates the voice view bound to the shared voice conversation store.
// The player may be nil when no audio backend is available.
func New(client *api.Client, history *model.History, session *voice.Session, player *voice.ExecPlayer, theme *styles.Theme) *Model {
	input := textinput.New()
	input.Placeholder = "Type a command, or press F2 to speak…"
	input.CharLimit = 500

	sp := spinner.New()
	sp.Spinner = spinner.Points
	sp.Style = theme.Spinner

	return &Model{
		theme:    theme,
		renderer: components.NewMessageRenderer(theme, 80),
		viewport: viewport.New(80, 20),
		input:    input,
		spin:     sp,
		client:   client,
		history:  history,
		session:  session,
		player:   player,
	}
}

// Session exposes the voice session for status display.
func (m *Model) Session() *voice.Session { return m.session }

// SetShowTimestamps toggles per-message timestamps.
func (m *Model) SetShowTimestamps(show bool) {
	m.renderer.ShowTimestamps = show
}

// SetMarkdownWidth caps the answer wrap width; 0 follows the terminal.
func (m *Model) SetMarkdownWidth(width int) {
	m.renderer.SetMaxWidth(width)
}

// Resize adjusts the view to new terminal dimensions.
func (m *Model) Resize(width, height int) {
	m.width = width
	m.height = height
	m.renderer.Resize(width)

	vpHeight := height - 7
	if vpHeight < 3 {
		vpHeight = 3
	}
	m.viewport.Width = width
	m.viewport.Height = vpHeight
	m.input.Width = width - 6
}

// setShortcuts installs the quick-command catalog in stable order.
func (m *Model) setShortcuts(raw map[string]string) {
	m.shortcuts = m.shortcuts[:0]
	for phrase, desc := range raw {
		m.shortcuts = append(m.shortcuts, shortcut{Phrase: phrase, Description: desc})
	}
	sort.Slice(m.shortcuts, func(i, j int) bool {
		return m.shortcuts[i].Phrase < m.shortcuts[j].Phrase
	})
}

// setLanguages installs the supported language tags in stable order.
func (m *Model) setLanguages(raw map[string]string, def string) {
	m.languages = m.languages[:0]
	for tag := range raw {
		m.languages = append(m.languages, tag)
	}
	sort.Strings(m.languages)
	for i, tag := range m.languages {
		if tag == def {
			m.langIdx = i
		}
	}
	if def != "" {
		m.session.SetLanguage(def)
	}
}

// cycleLanguage advances to the next recognition language.
func (m *Model) cycleLanguage() {
	if len(m.languages) == 0 {
		return
	}
	m.langIdx = (m.langIdx + 1) % len(m.languages)
	m.session.SetLanguage(m.languages[m.langIdx])
}

// =============================================================================
// COMMANDS
// =============================================================================

// processCmd sends a voice command for interpretation.
func processCmd(client *api.Client, command, language string) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.ProcessVoiceCommand(context.Background(), command, language)
		if err != nil {
			return VoiceResultMsg{Err: err}
		}
		return VoiceResultMsg{Text: resp.Response, AudioRef: resp.AudioURL, Confidence: resp.Confidence}
	}
}

// chatCmd sends a typed conversational turn with session continuity.
// When the caller wants a spoken reply and the backend returned none, the
// reply text is synthesized through the text-to-speech endpoint. Synthesis
// failure is not fatal: the turn falls back to text only.
func chatCmd(client *api.Client, message, sessionID, language string, speak bool) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.VoiceChat(context.Background(), message, sessionID, "")
		if err != nil {
			return VoiceResultMsg{Err: err}
		}
		audioRef := resp.AudioResponse
		if audioRef == "" && speak && resp.ResponseText != "" {
			if speech, err := client.TextToSpeech(context.Background(), resp.ResponseText, language, ""); err == nil {
				if path, err := voice.WriteSpeechFile(speech.AudioData); err == nil {
					audioRef = path
				}
			}
		}
		return VoiceResultMsg{Text: resp.ResponseText, AudioRef: audioRef}
	}
}

// shortcutsCmd fetches the quick-command catalog.
func shortcutsCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.VoiceShortcuts(context.Background())
		if err != nil {
			return ShortcutsMsg{Err: err}
		}
		return ShortcutsMsg{Shortcuts: resp.Shortcuts}
	}
}

// languagesCmd fetches the supported recognition languages.
func languagesCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.VoiceLanguages(context.Background())
		if err != nil {
			return LanguagesMsg{Err: err}
		}
		return LanguagesMsg{Languages: resp.Languages, Default: resp.Default}
	}
}

// waitPlaybackCmd waits for the current audio reply to finish.
func waitPlaybackCmd(done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if done != nil {
			<-done
		}
		return PlaybackDoneMsg{}
	}
}
