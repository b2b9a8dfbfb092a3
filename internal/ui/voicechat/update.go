// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package voicechat

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pelorus-ai/pelorus-tui/internal/model"
	"github.com/pelorus-ai/pelorus-tui/internal/voice"
)

// Init loads the shortcut and language catalogs.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(shortcutsCmd(m.client), languagesCmd(m.client), m.spin.Tick)
}

// Update handles one Bubble Tea message.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case VoiceResultMsg:
		return m.handleResult(msg)

	case ShortcutsMsg:
		if msg.Err == nil {
			m.setShortcuts(msg.Shortcuts)
		}
		return m, nil

	case LanguagesMsg:
		if msg.Err == nil {
			m.setLanguages(msg.Languages, msg.Default)
		}
		return m, nil

	case PlaybackDoneMsg:
		m.session.PlaybackEnded()
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
		return m.submitTyped()

	case "f2":
		return m.toggleListening()

	case "ctrl+o":
		m.session.SetVoiceEnabled(!m.session.VoiceEnabled())
		if m.session.VoiceEnabled() {
			m.notice = "Voice replies on."
		} else {
			m.notice = "Voice replies off."
		}
		return m, nil

	case "ctrl+l":
		m.cycleLanguage()
		m.notice = "Recognition language: " + m.session.Language()
		return m, nil
	}

	// Digits fire quick commands when the input line is empty.
	if m.input.Value() == "" && len(msg.String()) == 1 {
		if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= len(m.shortcuts) {
			return m.injectShortcut(m.shortcuts[n-1].Phrase)
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// submitTyped sends the typed line as a conversational turn.
func (m *Model) submitTyped() (*Model, tea.Cmd) {
	if m.session.State() == voice.StateProcessing {
		return m, nil
	}
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}
	if _, ok := m.session.InjectCommand(text); !ok {
		return m, nil
	}

	m.input.Reset()
	m.input.Focus()
	m.notice = ""
	m.history.AppendUser(text, nil)
	m.refreshViewport()
	speak := m.session.VoiceEnabled() && m.player != nil
	return m, chatCmd(m.client, text, m.session.ID(), m.session.Language(), speak)
}

// injectShortcut feeds a predefined phrase into the command path.
func (m *Model) injectShortcut(phrase string) (*Model, tea.Cmd) {
	if _, ok := m.session.InjectCommand(phrase); !ok {
		return m, nil
	}
	m.notice = ""
	m.history.AppendUser(phrase, nil)
	m.refreshViewport()
	return m, processCmd(m.client, phrase, m.session.Language())
}

// toggleListening starts or stops speech capture.
func (m *Model) toggleListening() (*Model, tea.Cmd) {
	switch m.session.State() {
	case voice.StateListening:
		m.session.Stop()
	case voice.StateIdle:
		if err := m.session.Start(); err != nil {
			if errors.Is(err, voice.ErrNotSupported) {
				m.notice = m.session.LastError()
			} else {
				m.notice = "Cannot start capture: " + err.Error()
			}
		}
	}
	return m, nil
}

func (m *Model) handleResult(msg VoiceResultMsg) (*Model, tea.Cmd) {
	if msg.Err != nil {
		m.session.FailProcessing(msg.Err.Error())
		m.history.AppendAssistant(model.NewErrorResponse(msg.Err.Error()))
		m.refreshViewport()
		return m, nil
	}

	started := m.session.CompleteProcessing(msg.AudioRef)
	m.history.AppendAssistant(model.NewVoiceResponse(msg.Text, msg.AudioRef, msg.Confidence))
	m.refreshViewport()

	if started && m.player != nil {
		return m, waitPlaybackCmd(m.player.Done())
	}
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
