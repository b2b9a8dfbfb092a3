// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package voice implements the speech-capture session state machine.
package voice

import (
	"errors"

	"github.com/google/uuid"
)

// =============================================================================
// CAPABILITY INTERFACES
// =============================================================================

// Recognizer is the injected speech-capture capability. Implementations
// deliver interim and finalized transcripts to the session through the
// UpdateTranscript / FinalizeUtterance / RecognitionError methods; the
// session never polls.
type Recognizer interface {
	// Start begins capturing in the given language.
	Start(language string) error
	// Stop ends capture without delivering a finalized utterance.
	Stop()
}

// Player is the injected audio-output capability.
type Player interface {
	// Play begins playback of the referenced audio resource.
	Play(ref string) error
	// Stop interrupts playback immediately.
	Stop()
}

// ErrNotSupported is returned by Start when no speech-capture capability
// is available.
var ErrNotSupported = errors.New("speech capture is not available")

// =============================================================================
// SESSION STATES
// =============================================================================

// State is the main session state. Playback is an orthogonal flag, not a
// state: audio can play while the session is already idle again.
type State int

const (
	StateIdle State = iota
	StateListening
	StateProcessing
)

// String returns the state name for display and logging.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateListening:
		return "listening"
	case StateProcessing:
		return "processing"
	default:
		return "unknown"
	}
}

// =============================================================================
// SESSION
// =============================================================================

// Session tracks one voice interaction session.
//
// Transitions: Idle → Listening → (Processing → Idle) | (Error → Idle).
// The session is ephemeral and never persisted. It runs entirely on the
// UI event loop, so no locking is required.
type Session struct {
	recognizer Recognizer
	player     Player

	id           string
	state        State
	playing      bool
	transcript   string
	language     string
	voiceEnabled bool
	lastErr      string
}

// NewSession creates a session around the given capabilities. Either may
// be nil: a nil recognizer makes Start fail with ErrNotSupported, a nil
// player silently disables playback.
func NewSession(recognizer Recognizer, player Player, language string) *Session {
	if language == "" {
		language = "en-US"
	}
	return &Session{
		recognizer:   recognizer,
		player:       player,
		id:           uuid.NewString(),
		language:     language,
		voiceEnabled: true,
	}
}

// ID returns the session id used for contextual voice-chat calls.
func (s *Session) ID() string { return s.id }

// State returns the current main state.
func (s *Session) State() State { return s.state }

// IsPlaying reports whether audio output is currently playing.
func (s *Session) IsPlaying() bool { return s.playing }

// Transcript returns the current interim transcript.
func (s *Session) Transcript() string { return s.transcript }

// LastError returns the most recent error message, empty when none.
func (s *Session) LastError() string { return s.lastErr }

// Language returns the selected recognition language.
func (s *Session) Language() string { return s.language }

// SetLanguage selects the recognition language for subsequent captures.
func (s *Session) SetLanguage(language string) {
	if language != "" {
		s.language = language
	}
}

// VoiceEnabled reports whether audio replies are enabled.
func (s *Session) VoiceEnabled() bool { return s.voiceEnabled }

// =============================================================================
// TRANSITIONS
// =============================================================================

// Start begins a capture session: Idle → Listening. Without a recognizer
// the session records a "not supported" error and stays functionally idle.
func (s *Session) Start() error {
	if s.state != StateIdle {
		return nil
	}
	if s.recognizer == nil {
		s.lastErr = "Speech capture is not supported here. Use the quick commands instead."
		return ErrNotSupported
	}
	if err := s.recognizer.Start(s.language); err != nil {
		s.lastErr = err.Error()
		return err
	}
	s.state = StateListening
	s.transcript = ""
	s.lastErr = ""
	return nil
}

// Stop is the manual stop: Listening → Idle with no utterance processed.
func (s *Session) Stop() {
	if s.state != StateListening {
		return
	}
	s.recognizer.Stop()
	s.state = StateIdle
	s.transcript = ""
}

// UpdateTranscript records the latest interim transcript while listening.
func (s *Session) UpdateTranscript(text string) {
	if s.state == StateListening {
		s.transcript = text
	}
}

// FinalizeUtterance completes capture with a finalized transcript:
// Listening → Processing. Returns the text to forward to the backend and
// whether the transition happened.
func (s *Session) FinalizeUtterance(text string) (string, bool) {
	if s.state != StateListening || text == "" {
		return "", false
	}
	s.recognizer.Stop()
	s.state = StateProcessing
	s.transcript = text
	return text, true
}

// InjectCommand feeds a predefined phrase straight into the Processing
// path, bypassing live capture. Shares the same downstream handling as a
// recognized utterance. Rejected while another command is in flight.
func (s *Session) InjectCommand(phrase string) (string, bool) {
	if s.state == StateProcessing || phrase == "" {
		return "", false
	}
	if s.state == StateListening {
		s.recognizer.Stop()
	}
	s.state = StateProcessing
	s.transcript = phrase
	return phrase, true
}

// RecognitionError handles a mid-session capture failure:
// Listening → Idle with the error surfaced.
func (s *Session) RecognitionError(message string) {
	if s.state != StateListening {
		return
	}
	s.recognizer.Stop()
	s.state = StateIdle
	s.lastErr = message
}

// CompleteProcessing finishes the command round-trip: Processing → Idle.
// When voice output is enabled and the response carries an audio
// reference, playback begins and the Playing flag holds until
// PlaybackEnded. Returns whether playback started.
func (s *Session) CompleteProcessing(audioRef string) bool {
	if s.state != StateProcessing {
		return false
	}
	s.state = StateIdle
	s.transcript = ""
	s.lastErr = ""

	if !s.voiceEnabled || audioRef == "" || s.player == nil {
		return false
	}
	if err := s.player.Play(audioRef); err != nil {
		s.lastErr = err.Error()
		return false
	}
	s.playing = true
	return true
}

// FailProcessing aborts the command round-trip: Processing → Idle with
// the error surfaced.
func (s *Session) FailProcessing(message string) {
	if s.state != StateProcessing {
		return
	}
	s.state = StateIdle
	s.transcript = ""
	s.lastErr = message
}

// PlaybackEnded clears the Playing flag when audio naturally ends or errors.
func (s *Session) PlaybackEnded() {
	s.playing = false
}

// SetVoiceEnabled toggles audio replies. Turning output off interrupts
// playback immediately; it never affects an in-flight Processing round-trip.
func (s *Session) SetVoiceEnabled(enabled bool) {
	s.voiceEnabled = enabled
	if !enabled && s.playing {
		if s.player != nil {
			s.player.Stop()
		}
		s.playing = false
	}
}
