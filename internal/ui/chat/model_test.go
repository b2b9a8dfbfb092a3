// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pelorus-ai/pelorus-tui/internal/api"
	"github.com/pelorus-ai/pelorus-tui/internal/model"
	"github.com/pelorus-ai/pelorus-tui/internal/transcript"
	"github.com/pelorus-ai/pelorus-tui/internal/ui/styles"
)

func newTestModel() *Model {
	m := New(api.NewClient(), model.NewHistory(), styles.NewTheme(80, 24))
	m.Resize(80, 24)
	return m
}

func pressEnter(m *Model) (*Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestSubmit_AppendsUserMessageAndWaits(t *testing.T) {
	m := newTestModel()
	m.input.SetValue("plan a route to Singapore")

	m, cmd := pressEnter(m)
	if cmd == nil {
		t.Fatal("expected a query command")
	}
	if m.State() != StateWaiting {
		t.Errorf("expected waiting state, got %v", m.State())
	}
	if m.history.Len() != 1 {
		t.Fatalf("expected 1 message, got %d", m.history.Len())
	}
	last := m.history.Last()
	if last.Role != model.RoleUser || last.Query != "plan a route to Singapore" {
		t.Errorf("unexpected user message: %+v", last)
	}
	if m.input.Value() != "" {
		t.Error("expected input cleared after submit")
	}
}

func TestSubmit_IgnoredWhileWaiting(t *testing.T) {
	m := newTestModel()
	m.input.SetValue("first")
	m, _ = pressEnter(m)

	m.input.SetValue("second")
	m, cmd := pressEnter(m)
	if cmd != nil {
		t.Error("expected second submission ignored")
	}
	if m.history.Len() != 1 {
		t.Errorf("expected 1 message, got %d", m.history.Len())
	}
}

func TestSubmit_BlankInputIgnored(t *testing.T) {
	m := newTestModel()
	m.input.SetValue("   ")

	m, cmd := pressEnter(m)
	if cmd != nil {
		t.Error("expected blank submission ignored")
	}
	if m.history.Len() != 0 {
		t.Errorf("expected empty history, got %d messages", m.history.Len())
	}
}

func TestQueryResult_AppendsAgenticResponse(t *testing.T) {
	m := newTestModel()
	m.state = StateWaiting

	m, _ = m.Update(QueryResultMsg{Resp: &api.QueryResponse{
		Answer:     "Course plotted.",
		ToolsUsed:  []string{"route_optimizer"},
		Confidence: 0.9,
	}})

	if m.State() != StateReady {
		t.Errorf("expected ready state, got %v", m.State())
	}
	last := m.history.Last()
	if last == nil || last.Response == nil {
		t.Fatal("expected assistant message")
	}
	if last.Response.Kind != model.KindAgentic {
		t.Errorf("expected agentic kind, got %q", last.Response.Kind)
	}
	if last.Response.Answer != "Course plotted." {
		t.Errorf("unexpected answer: %q", last.Response.Answer)
	}
}

func TestQueryResult_TransportErrorBecomesErrorMessage(t *testing.T) {
	m := newTestModel()
	m.state = StateWaiting

	m, _ = m.Update(QueryResultMsg{Err: api.ErrBackendDown})

	last := m.history.Last()
	if last == nil || !last.Response.IsError() {
		t.Fatal("expected error-kind message")
	}
	if last.Response.Answer != "cannot reach backend" {
		t.Errorf("unexpected error text: %q", last.Response.Answer)
	}
}

func TestQueryResult_CancelledShowsNoticeNotTimeout(t *testing.T) {
	m := newTestModel()
	m.state = StateWaiting

	cancelled := &api.ClientError{
		Type:    api.ErrTypeCancelled,
		Message: "request cancelled",
		Cause:   context.Canceled,
	}
	m, _ = m.Update(QueryResultMsg{Err: cancelled})

	if m.notice != "Request cancelled." {
		t.Errorf("unexpected notice: %q", m.notice)
	}
	if last := m.history.Last(); last != nil && last.Response.IsError() {
		t.Errorf("cancelled request appended as error: %q", last.Response.Answer)
	}
}

func TestQueryResult_ApplicationErrorBecomesErrorMessage(t *testing.T) {
	m := newTestModel()
	m.state = StateWaiting

	m, _ = m.Update(QueryResultMsg{Resp: &api.QueryResponse{Error: "tool execution failed"}})

	last := m.history.Last()
	if last == nil || !last.Response.IsError() {
		t.Fatal("expected error-kind message")
	}
	if last.Response.Answer != "tool execution failed" {
		t.Errorf("unexpected error text: %q", last.Response.Answer)
	}
}

func TestClearCommand_ResetsHistory(t *testing.T) {
	m := newTestModel()
	m.history.AppendUser("old question", nil)
	m.history.AppendAssistant(model.NewDirectResponse("old answer"))

	m.input.SetValue("/clear")
	m, cmd := pressEnter(m)
	if cmd == nil {
		t.Fatal("expected a memory clear command")
	}
	if m.history.Len() != 0 {
		t.Errorf("expected history cleared, got %d messages", m.history.Len())
	}

	// The store restarts its id sequence after a clear.
	msg := m.history.AppendUser("fresh question", nil)
	if msg.ID != 1 {
		t.Errorf("expected id sequence reset, got %d", msg.ID)
	}
}

func TestAgentInfo_AppendsDirectResponse(t *testing.T) {
	m := newTestModel()
	m.state = StateWaiting

	m, _ = m.Update(AgentInfoMsg{Title: "Agent tools", Body: "- route_optimizer"})

	last := m.history.Last()
	if last == nil || last.Response.Kind != model.KindDirect {
		t.Fatal("expected direct-kind message")
	}
	if m.State() != StateReady {
		t.Errorf("expected ready state, got %v", m.State())
	}
}

func TestAgentInfo_ErrorAppendsErrorResponse(t *testing.T) {
	m := newTestModel()
	m.state = StateWaiting

	m, _ = m.Update(AgentInfoMsg{Title: "Agent tools", Err: errors.New("request timed out")})

	last := m.history.Last()
	if last == nil || !last.Response.IsError() {
		t.Fatal("expected error-kind message")
	}
}

func TestAttachCommand_StagesFile(t *testing.T) {
	m := newTestModel()

	m.input.SetValue("/attach /nonexistent/file.pdf")
	m, _ = pressEnter(m)
	if m.pendingAttachment != nil {
		t.Error("expected missing file rejected")
	}
	if m.notice == "" {
		t.Error("expected a notice for the missing file")
	}
}

func TestUnknownSlashCommand(t *testing.T) {
	m := newTestModel()

	m.input.SetValue("/teleport")
	m, cmd := pressEnter(m)
	if cmd != nil {
		t.Error("expected no command for unknown input")
	}
	if m.notice == "" {
		t.Error("expected an unknown-command notice")
	}
}

func TestSaveCommand_PersistsTranscript(t *testing.T) {
	m := newTestModel()
	store, err := transcript.NewStoreWithDir(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	m.SetTranscriptStore(store)
	m.history.AppendUser("plan a route", nil)
	m.history.AppendAssistant(model.NewDirectResponse("done"))

	m.input.SetValue("/save")
	m, _ = pressEnter(m)
	if m.notice != "Transcript saved." {
		t.Errorf("notice = %q", m.notice)
	}

	metas, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(metas) != 1 {
		t.Fatalf("store has %d transcripts, want 1", len(metas))
	}

	// A second save of the same conversation overwrites, not duplicates.
	m.input.SetValue("/save")
	m, _ = pressEnter(m)
	metas, _ = store.List()
	if len(metas) != 1 {
		t.Errorf("store has %d transcripts after resave, want 1", len(metas))
	}
}

func TestSaveCommand_WithoutStore(t *testing.T) {
	m := newTestModel()
	m.history.AppendUser("q", nil)

	m.input.SetValue("/save")
	m, _ = pressEnter(m)
	if m.notice != "Transcript storage is unavailable." {
		t.Errorf("notice = %q", m.notice)
	}
}

func TestSaveCommand_EmptyConversation(t *testing.T) {
	m := newTestModel()
	store, err := transcript.NewStoreWithDir(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	m.SetTranscriptStore(store)

	m.input.SetValue("/save")
	m, _ = pressEnter(m)
	if !strings.HasPrefix(m.notice, "Cannot save:") {
		t.Errorf("notice = %q", m.notice)
	}
}

func TestTranscriptsCommand_ListsSaved(t *testing.T) {
	m := newTestModel()
	store, err := transcript.NewStoreWithDir(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	m.SetTranscriptStore(store)
	m.history.AppendUser("plan a route", nil)
	if _, err := store.Save("", m.history.Messages()); err != nil {
		t.Fatal(err)
	}

	m.input.SetValue("/transcripts")
	m, _ = pressEnter(m)

	last := m.history.Last()
	if last == nil || last.Role != model.RoleAssistant {
		t.Fatal("expected a listing message")
	}
	if !strings.Contains(last.Response.Answer, "plan a route") {
		t.Errorf("listing missing summary: %q", last.Response.Answer)
	}
}

func TestExportCommand_WritesMarkdown(t *testing.T) {
	m := newTestModel()
	m.history.AppendUser("plan a route", nil)
	m.history.AppendAssistant(model.NewDirectResponse("done"))

	path := filepath.Join(t.TempDir(), "chat.md")
	m.input.SetValue("/export " + path)
	m, _ = pressEnter(m)
	if !strings.HasPrefix(m.notice, "Exported to ") {
		t.Fatalf("notice = %q", m.notice)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "plan a route") {
		t.Error("exported file missing conversation")
	}
}
