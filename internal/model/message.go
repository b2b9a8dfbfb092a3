// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversation history and responses.
package model

import (
	"time"

	"github.com/pelorus-ai/pelorus-tui/internal/api"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleAssistant:
		return "Pelorus"
	default:
		return string(r)
	}
}

// =============================================================================
// RESPONSE UNION
// =============================================================================

// ResponseKind discriminates the Response union.
type ResponseKind string

const (
	KindAgentic  ResponseKind = "agentic"
	KindDirect   ResponseKind = "direct"
	KindVoice    ResponseKind = "voice"
	KindWeather  ResponseKind = "weather"
	KindDocument ResponseKind = "document"
	KindError    ResponseKind = "error"
)

// Response is a tagged union discriminated by Kind. Exactly one variant's
// fields are populated; the constructors below are the only way responses
// are built so foreign-variant fields stay absent.
type Response struct {
	Kind   ResponseKind `json:"kind"`
	Answer string       `json:"answer"`

	// agentic
	ToolsUsed     []string `json:"tools_used,omitempty"`
	ExecutionPlan string   `json:"execution_plan,omitempty"`

	// agentic, voice
	Confidence float64 `json:"confidence,omitempty"`

	// voice
	AudioRef string `json:"audio_url,omitempty"`

	// weather
	Weather  *api.WeatherResponse `json:"weather_data,omitempty"`
	PortName string               `json:"port_name,omitempty"`

	// document
	Filename string `json:"filename,omitempty"`

	// error
	Error bool `json:"error,omitempty"`
}

// NewAgenticResponse builds an agentic-kind response.
func NewAgenticResponse(answer string, toolsUsed []string, plan string, confidence float64) *Response {
	return &Response{
		Kind:          KindAgentic,
		Answer:        answer,
		ToolsUsed:     toolsUsed,
		ExecutionPlan: plan,
		Confidence:    confidence,
	}
}

// NewDirectResponse builds a direct-kind response carrying only an answer.
func NewDirectResponse(answer string) *Response {
	return &Response{Kind: KindDirect, Answer: answer}
}

// NewVoiceResponse builds a voice-kind response.
func NewVoiceResponse(answer, audioRef string, confidence float64) *Response {
	return &Response{
		Kind:       KindVoice,
		Answer:     answer,
		AudioRef:   audioRef,
		Confidence: confidence,
	}
}

// NewWeatherResponse builds a weather-kind response.
func NewWeatherResponse(answer, portName string, weather *api.WeatherResponse) *Response {
	return &Response{
		Kind:     KindWeather,
		Answer:   answer,
		PortName: portName,
		Weather:  weather,
	}
}

// NewDocumentResponse builds a document-kind response.
func NewDocumentResponse(answer, filename string) *Response {
	return &Response{Kind: KindDocument, Answer: answer, Filename: filename}
}

// NewErrorResponse builds an error-kind response; answer carries the
// human-readable message.
func NewErrorResponse(message string) *Response {
	return &Response{Kind: KindError, Answer: message, Error: true}
}

// IsError reports whether the response is the error variant.
func (r *Response) IsError() bool {
	return r.Kind == KindError
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Attachment records a submitted document by name and size only; the
// content is not retained after submission.
type Attachment struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// Message represents a single entry in a conversation history.
// IDs are assigned by the owning History on append.
type Message struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Role      Role      `json:"role"`

	// Query and Attachment are set for role=user.
	Query      string      `json:"query,omitempty"`
	Attachment *Attachment `json:"attachment,omitempty"`

	// Response is set for role=assistant.
	Response *Response `json:"response,omitempty"`
}

// NewUserMessage creates a user message with an optional attachment.
func NewUserMessage(query string, attachment *Attachment) *Message {
	return &Message{
		Role:       RoleUser,
		Query:      query,
		Attachment: attachment,
	}
}

// NewAssistantMessage creates an assistant message wrapping a response.
func NewAssistantMessage(resp *Response) *Message {
	return &Message{
		Role:     RoleAssistant,
		Response: resp,
	}
}

// Preview returns a truncated preview of the message content.
// Uses rune-based truncation to handle Unicode correctly.
func (m *Message) Preview(maxLen int) string {
	content := m.Query
	if m.Role == RoleAssistant && m.Response != nil {
		content = m.Response.Answer
	}
	runes := []rune(content)
	if len(runes) <= maxLen {
		return content
	}
	return string(runes[:maxLen-3]) + "..."
}
