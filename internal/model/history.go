// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversation history and responses.
package model

import "time"

// =============================================================================
// HISTORY STORE
// =============================================================================

// History is an append-only ordered store of conversation messages.
// Insertion order is the display order: entries land at the tail in the
// order their operations resolve, and are never re-sorted. There is no
// size cap and no deduplication.
//
// Each feature area (agent chat, voice chat) owns its own History; the
// instances live in the top-level application state and are passed down
// by reference.
type History struct {
	seq      int64
	messages []*Message
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{messages: make([]*Message, 0)}
}

// Append assigns the next monotonic id and a capture timestamp, each only
// when the message does not already carry one, and inserts the message at
// the tail. Returns the message for convenience.
func (h *History) Append(msg *Message) *Message {
	if msg.ID == 0 {
		h.seq++
		msg.ID = h.seq
	} else if msg.ID > h.seq {
		h.seq = msg.ID
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}
	h.messages = append(h.messages, msg)
	return msg
}

// AppendUser creates, appends and returns a user message.
func (h *History) AppendUser(query string, attachment *Attachment) *Message {
	return h.Append(NewUserMessage(query, attachment))
}

// AppendAssistant creates, appends and returns an assistant message.
func (h *History) AppendAssistant(resp *Response) *Message {
	return h.Append(NewAssistantMessage(resp))
}

// Clear resets the history to empty and restarts the id sequence.
// Irreversible; confirmation is the caller's responsibility.
func (h *History) Clear() {
	h.messages = make([]*Message, 0)
	h.seq = 0
}

// Messages returns the stored messages in display order.
func (h *History) Messages() []*Message {
	return h.messages
}

// Len returns the number of stored messages.
func (h *History) Len() int {
	return len(h.messages)
}

// Last returns the most recent message, or nil if empty.
func (h *History) Last() *Message {
	if len(h.messages) == 0 {
		return nil
	}
	return h.messages[len(h.messages)-1]
}

// =============================================================================
// TOOL LOG
// =============================================================================

// ToolKind identifies which direct tool produced an entry.
type ToolKind string

const (
	ToolAIQuery  ToolKind = "ai_query"
	ToolDocument ToolKind = "document"
	ToolWeather  ToolKind = "weather"
)

// Coordinates is a lat/lon pair attached to weather tool entries.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ToolResponseEntry records one completed direct-tool invocation, successful
// or failed. Entries are immutable after creation and removed only by a
// bulk clear.
type ToolResponseEntry struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Kind      ToolKind  `json:"kind"`

	Query       string       `json:"query,omitempty"`
	Filename    string       `json:"filename,omitempty"`
	PortName    string       `json:"port_name,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`

	Response *Response `json:"response"`
}

// ToolLog is the append-only store for direct-tool results. Same ordering
// and clearing semantics as History.
type ToolLog struct {
	seq     int64
	entries []*ToolResponseEntry
}

// NewToolLog creates an empty tool log.
func NewToolLog() *ToolLog {
	return &ToolLog{entries: make([]*ToolResponseEntry, 0)}
}

// Append assigns id and timestamp when missing and inserts at the tail.
func (l *ToolLog) Append(entry *ToolResponseEntry) *ToolResponseEntry {
	if entry.ID == 0 {
		l.seq++
		entry.ID = l.seq
	} else if entry.ID > l.seq {
		l.seq = entry.ID
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	l.entries = append(l.entries, entry)
	return entry
}

// Clear resets the log to empty and restarts the id sequence.
func (l *ToolLog) Clear() {
	l.entries = make([]*ToolResponseEntry, 0)
	l.seq = 0
}

// Entries returns the stored entries in display order.
func (l *ToolLog) Entries() []*ToolResponseEntry {
	return l.entries
}

// Len returns the number of stored entries.
func (l *ToolLog) Len() int {
	return len(l.entries)
}
