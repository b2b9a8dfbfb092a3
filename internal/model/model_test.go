// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"testing"
	"time"
)

// =============================================================================
// RESPONSE UNION TESTS
// =============================================================================

func TestResponse_ExactlyOneKind(t *testing.T) {
	tests := []struct {
		name string
		resp *Response
		kind ResponseKind
	}{
		{"agentic", NewAgenticResponse("ans", []string{"weather"}, "plan", 0.9), KindAgentic},
		{"direct", NewDirectResponse("ans"), KindDirect},
		{"voice", NewVoiceResponse("ans", "/audio/1.mp3", 0.95), KindVoice},
		{"weather", NewWeatherResponse("ans", "Singapore", nil), KindWeather},
		{"document", NewDocumentResponse("ans", "charter.pdf"), KindDocument},
		{"error", NewErrorResponse("boom"), KindError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.resp.Kind != tc.kind {
				t.Errorf("Kind = %q, want %q", tc.resp.Kind, tc.kind)
			}
		})
	}
}

func TestErrorResponse_CarriesNoForeignFields(t *testing.T) {
	resp := NewErrorResponse("cannot reach backend")

	if !resp.Error {
		t.Error("error-kind response must carry Error=true")
	}
	if resp.Answer != "cannot reach backend" {
		t.Errorf("Answer = %q, want the human-readable message", resp.Answer)
	}
	if resp.ToolsUsed != nil {
		t.Errorf("ToolsUsed = %v, want absent", resp.ToolsUsed)
	}
	if resp.AudioRef != "" || resp.Weather != nil || resp.Filename != "" {
		t.Error("error-kind response must not populate other variants' fields")
	}
	if !resp.IsError() {
		t.Error("IsError() = false, want true")
	}
}

func TestAgenticResponse_ConfidenceRange(t *testing.T) {
	resp := NewAgenticResponse("ans", nil, "", 0.75)
	if resp.Confidence < 0 || resp.Confidence > 1 {
		t.Errorf("Confidence = %v, want in [0,1]", resp.Confidence)
	}
	if resp.Error {
		t.Error("agentic response must not carry the error flag")
	}
}

// =============================================================================
// HISTORY TESTS
// =============================================================================

func TestHistory_AppendAssignsMonotonicIDs(t *testing.T) {
	h := NewHistory()

	first := h.AppendUser("one", nil)
	second := h.AppendAssistant(NewDirectResponse("two"))
	third := h.AppendUser("three", nil)

	if first.ID != 1 || second.ID != 2 || third.ID != 3 {
		t.Errorf("ids = %d, %d, %d, want 1, 2, 3", first.ID, second.ID, third.ID)
	}
	if h.Len() != 3 {
		t.Errorf("Len() = %d, want 3", h.Len())
	}
	if h.Last() != third {
		t.Error("Last() should return the tail entry")
	}
}

func TestHistory_AppendPreservesResolutionOrder(t *testing.T) {
	h := NewHistory()

	// Two in-flight requests resolving out of issuance order: both are
	// retained, tail order follows resolution.
	late := NewUserMessage("issued first, resolved second", nil)
	early := NewUserMessage("issued second, resolved first", nil)

	h.Append(early)
	h.Append(late)

	msgs := h.Messages()
	if msgs[0] != early || msgs[1] != late {
		t.Error("append order must equal resolution order")
	}
}

func TestHistory_ClearResetsIDSequence(t *testing.T) {
	h := NewHistory()
	for i := 0; i < 5; i++ {
		h.AppendUser("msg", nil)
	}

	h.Clear()
	if h.Len() != 0 {
		t.Fatalf("Len() after Clear = %d, want 0", h.Len())
	}

	fresh := h.AppendUser("first after clear", nil)
	if fresh.ID != 1 {
		t.Errorf("id after clear = %d, want a fresh sequence starting at 1", fresh.ID)
	}
	if h.Len() != 1 {
		t.Errorf("Len() = %d, want 1 with no residual entries", h.Len())
	}
}

func TestHistory_AppendKeepsExistingID(t *testing.T) {
	h := NewHistory()

	msg := NewUserMessage("restored", nil)
	msg.ID = 7
	h.Append(msg)

	if msg.ID != 7 {
		t.Errorf("ID = %d, want the pre-set id kept", msg.ID)
	}

	// The sequence continues past the highest preset id, never reusing it.
	next := h.AppendUser("fresh", nil)
	if next.ID != 8 {
		t.Errorf("next id = %d, want 8", next.ID)
	}
}

func TestToolLog_AppendKeepsExistingID(t *testing.T) {
	l := NewToolLog()

	entry := &ToolResponseEntry{ID: 3, Kind: ToolAIQuery, Response: NewDirectResponse("ok")}
	l.Append(entry)

	if entry.ID != 3 {
		t.Errorf("ID = %d, want the pre-set id kept", entry.ID)
	}
	next := l.Append(&ToolResponseEntry{Kind: ToolAIQuery, Response: NewDirectResponse("ok")})
	if next.ID != 4 {
		t.Errorf("next id = %d, want 4", next.ID)
	}
}

func TestHistory_AppendKeepsExistingTimestamp(t *testing.T) {
	h := NewHistory()
	captured := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	msg := NewUserMessage("q", nil)
	msg.Timestamp = captured
	h.Append(msg)

	if !msg.Timestamp.Equal(captured) {
		t.Errorf("Timestamp = %v, want the pre-set capture time", msg.Timestamp)
	}

	fresh := h.AppendUser("q2", nil)
	if fresh.Timestamp.IsZero() {
		t.Error("Append must stamp messages without a timestamp")
	}
}

func TestMessage_AttachmentKeepsNameAndSizeOnly(t *testing.T) {
	msg := NewUserMessage("summarize this", &Attachment{Name: "charter.pdf", Size: 18231})

	if msg.Attachment.Name != "charter.pdf" || msg.Attachment.Size != 18231 {
		t.Errorf("Attachment = %+v", msg.Attachment)
	}
}

// =============================================================================
// TOOL LOG TESTS
// =============================================================================

func TestToolLog_AppendAndClear(t *testing.T) {
	l := NewToolLog()

	l.Append(&ToolResponseEntry{
		Kind:     ToolAIQuery,
		Query:    "demurrage rates?",
		Response: NewDirectResponse("it depends"),
	})
	l.Append(&ToolResponseEntry{
		Kind:        ToolWeather,
		PortName:    "Rotterdam",
		Coordinates: &Coordinates{Lat: 51.9225, Lon: 4.4792},
		Response:    NewWeatherResponse("mild", "Rotterdam", nil),
	})

	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}
	entries := l.Entries()
	if entries[0].ID != 1 || entries[1].ID != 2 {
		t.Errorf("ids = %d, %d, want 1, 2", entries[0].ID, entries[1].ID)
	}
	if entries[1].Coordinates.Lat != 51.9225 {
		t.Errorf("Coordinates = %+v", entries[1].Coordinates)
	}

	l.Clear()
	if l.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", l.Len())
	}
	replacement := l.Append(&ToolResponseEntry{Kind: ToolDocument, Response: NewDocumentResponse("sum", "a.pdf")})
	if replacement.ID != 1 {
		t.Errorf("id after clear = %d, want 1", replacement.ID)
	}
}

func TestToolLog_FailedInvocationsAreRetained(t *testing.T) {
	l := NewToolLog()

	entry := l.Append(&ToolResponseEntry{
		Kind:     ToolAIQuery,
		Query:    "question",
		Response: NewErrorResponse("request timed out"),
	})

	if !entry.Response.IsError() {
		t.Error("failed invocations should land as error-kind responses")
	}
	if l.Len() != 1 {
		t.Errorf("Len() = %d, want 1", l.Len())
	}
}

func TestRole_DisplayName(t *testing.T) {
	if RoleUser.DisplayName() != "You" {
		t.Errorf("RoleUser.DisplayName() = %q", RoleUser.DisplayName())
	}
	if RoleAssistant.DisplayName() != "Pelorus" {
		t.Errorf("RoleAssistant.DisplayName() = %q", RoleAssistant.DisplayName())
	}
}
