// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for communicating with the Maritime AI Agent backend.
package api

import (
	"context"
)

// =============================================================================
// VOICE OPERATIONS
// =============================================================================

// ProcessVoiceCommand forwards a recognized utterance for processing and
// returns the reply text, an optional audio reference and a confidence score.
func (c *Client) ProcessVoiceCommand(ctx context.Context, command, language string) (*VoiceCommandResponse, error) {
	var resp VoiceCommandResponse
	req := VoiceCommandRequest{Command: command, Language: language}
	if err := c.postJSON(ctx, "/voice/process", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TextToSpeech converts text to a playable audio reference.
func (c *Client) TextToSpeech(ctx context.Context, text, language, voice string) (*SpeechResponse, error) {
	var resp SpeechResponse
	req := SpeechRequest{Text: text, Language: language, Voice: voice}
	if err := c.postJSON(ctx, "/voice/text-to-speech", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VoiceChat sends a message to the contextual voice conversation endpoint.
// Passing an empty sessionID starts a new conversation; the response carries
// the conversation id to use for the rest of the session.
func (c *Client) VoiceChat(ctx context.Context, message, sessionID, chatContext string) (*VoiceChatResponse, error) {
	var resp VoiceChatResponse
	req := VoiceChatRequest{Message: message, SessionID: sessionID, Context: chatContext}
	if err := c.postJSON(ctx, "/voice/chat", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VoiceShortcuts fetches the predefined quick-command phrases.
func (c *Client) VoiceShortcuts(ctx context.Context) (*VoiceShortcutsResponse, error) {
	var resp VoiceShortcutsResponse
	if err := c.getJSON(ctx, "/voice/shortcuts", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VoiceLanguages fetches the supported recognition/synthesis languages.
func (c *Client) VoiceLanguages(ctx context.Context) (*VoiceLanguagesResponse, error) {
	var resp VoiceLanguagesResponse
	if err := c.getJSON(ctx, "/voice/languages", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VoiceStatus fetches the voice subsystem status.
func (c *Client) VoiceStatus(ctx context.Context) (*VoiceStatusResponse, error) {
	var resp VoiceStatusResponse
	if err := c.getJSON(ctx, "/voice/status", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
