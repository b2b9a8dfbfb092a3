// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/pelorus-ai/pelorus-tui/internal/health"
	"github.com/pelorus-ai/pelorus-tui/internal/model"
	"github.com/pelorus-ai/pelorus-tui/internal/ui/styles"
)

func testTheme() *styles.Theme {
	return styles.NewTheme(80, 24)
}

func TestTabBar_Navigation(t *testing.T) {
	tb := NewTabBar(testTheme(), "Chat", "Voice", "Voyage", "Tools", "Status")

	if tb.Active != 0 {
		t.Fatalf("expected first tab active, got %d", tb.Active)
	}

	tb.Next()
	if tb.Active != 1 {
		t.Errorf("Next: got %d", tb.Active)
	}

	tb.Prev()
	tb.Prev()
	if tb.Active != 4 {
		t.Errorf("expected Prev to wrap to last tab, got %d", tb.Active)
	}

	tb.Next()
	if tb.Active != 0 {
		t.Errorf("expected Next to wrap to first tab, got %d", tb.Active)
	}

	tb.Select(3)
	if tb.Active != 3 {
		t.Errorf("Select: got %d", tb.Active)
	}
	tb.Select(99)
	if tb.Active != 3 {
		t.Errorf("expected out-of-range Select ignored, got %d", tb.Active)
	}
}

func TestTabBar_RenderContainsLabels(t *testing.T) {
	tb := NewTabBar(testTheme(), "Chat", "Voice")
	tb.Width = 80

	out := tb.Render()
	if !strings.Contains(out, "Chat") || !strings.Contains(out, "Voice") {
		t.Errorf("expected labels in output, got %q", out)
	}
}

func TestStatusBar_HealthStates(t *testing.T) {
	sb := NewStatusBar(testTheme())
	sb.Width = 80

	tests := []struct {
		status health.Status
		want   string
	}{
		{health.StatusUnknown, "checking"},
		{health.StatusHealthy, "connected"},
		{health.StatusUnhealthy, "disconnected"},
	}
	for _, tt := range tests {
		sb.Health = tt.status
		if out := sb.Render(); !strings.Contains(out, tt.want) {
			t.Errorf("status %v: expected %q in output", tt.status, tt.want)
		}
	}
}

func TestStatusBar_VoiceIndicator(t *testing.T) {
	sb := NewStatusBar(testTheme())
	sb.Width = 100

	sb.Listening = true
	if out := sb.Render(); !strings.Contains(out, "listening") {
		t.Error("expected listening indicator")
	}

	sb.Listening = false
	sb.Playing = true
	if out := sb.Render(); !strings.Contains(out, "playing") {
		t.Error("expected playing indicator")
	}

	sb.Playing = false
	sb.VoiceEnabled = false
	if out := sb.Render(); !strings.Contains(out, "voice off") {
		t.Error("expected voice off indicator")
	}
}

func TestMessageRenderer_UserMessage(t *testing.T) {
	r := NewMessageRenderer(testTheme(), 80)

	msg := model.NewUserMessage("What is the weather in Rotterdam?", nil)
	out := r.Render(msg)
	if !strings.Contains(out, "What is the weather in Rotterdam?") {
		t.Errorf("expected query in output, got %q", out)
	}
	if !strings.Contains(out, "You") {
		t.Error("expected user display name")
	}
}

func TestMessageRenderer_AttachmentShowsNameAndSize(t *testing.T) {
	r := NewMessageRenderer(testTheme(), 80)

	msg := model.NewUserMessage("Summarize this.", &model.Attachment{Name: "manifest.pdf", Size: 2048})
	out := r.Render(msg)
	if !strings.Contains(out, "manifest.pdf") {
		t.Error("expected attachment name in output")
	}
	if !strings.Contains(out, "2.0 KB") {
		t.Errorf("expected formatted size in output, got %q", out)
	}
}

func TestMessageRenderer_ErrorResponse(t *testing.T) {
	r := NewMessageRenderer(testTheme(), 80)

	msg := model.NewAssistantMessage(model.NewErrorResponse("cannot reach backend"))
	out := r.Render(msg)
	if !strings.Contains(out, "cannot reach backend") {
		t.Errorf("expected error text in output, got %q", out)
	}
}

func TestMessageRenderer_AgenticExtras(t *testing.T) {
	r := NewMessageRenderer(testTheme(), 120)

	msg := model.NewAssistantMessage(
		model.NewAgenticResponse("Course plotted.", []string{"route_optimizer"}, "", 0.92))
	out := r.Render(msg)
	if !strings.Contains(out, "route_optimizer") {
		t.Error("expected tool badge in output")
	}
	if !strings.Contains(out, "92%") {
		t.Errorf("expected confidence in output, got %q", out)
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{512, "512 B"},
		{2048, "2.0 KB"},
		{3 << 20, "3.0 MB"},
	}
	for _, tt := range tests {
		if got := formatSize(tt.n); got != tt.want {
			t.Errorf("formatSize(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
