// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package toolbox

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pelorus-ai/pelorus-tui/internal/api"
	"github.com/pelorus-ai/pelorus-tui/internal/model"
	"github.com/pelorus-ai/pelorus-tui/internal/ui/styles"
)

func newTestModel() *Model {
	m := New(api.NewClient(), model.NewToolLog(), styles.NewTheme(80, 24))
	m.Resize(80, 24)
	return m
}

func pressEnter(m *Model) (*Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestSubmit_StartsToolAndGuardsReentry(t *testing.T) {
	m := newTestModel()
	m.input.SetValue("what is laytime?")

	m, cmd := pressEnter(m)
	if cmd == nil {
		t.Fatal("expected a tool command")
	}
	if !m.busy {
		t.Error("expected busy after submit")
	}
	if m.input.Value() != "" {
		t.Error("expected input cleared after submit")
	}

	m.input.SetValue("second question")
	m, cmd = pressEnter(m)
	if cmd != nil {
		t.Error("expected second submission ignored while busy")
	}
}

func TestSubmit_BlankInputIgnored(t *testing.T) {
	m := newTestModel()
	m.input.SetValue("   ")

	m, cmd := pressEnter(m)
	if cmd != nil {
		t.Error("expected no command for blank input")
	}
	if m.busy {
		t.Error("expected not busy")
	}
}

func TestWeather_UnknownPortStaysLocal(t *testing.T) {
	m := newTestModel()
	m.tool = ToolWeather
	m.input.SetValue("atlantis")

	m, cmd := pressEnter(m)
	if cmd != nil {
		t.Error("expected no command for an unknown port")
	}
	if m.busy {
		t.Error("expected not busy")
	}
	if !strings.Contains(m.notice, "Unknown port") {
		t.Errorf("notice = %q, want unknown-port hint", m.notice)
	}
	if !strings.Contains(m.notice, "rotterdam") {
		t.Errorf("notice = %q, want known ports listed", m.notice)
	}
}

func TestWeather_TabCompletesPortName(t *testing.T) {
	m := newTestModel()
	m.tool = ToolWeather
	m.input.SetValue("rott")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if got := m.input.Value(); got != "rotterdam" {
		t.Errorf("input = %q, want %q", got, "rotterdam")
	}
}

func TestResult_AppendsToLog(t *testing.T) {
	m := newTestModel()
	m.busy = true

	entry := &model.ToolResponseEntry{
		Kind:     model.ToolAIQuery,
		Query:    "what is laytime?",
		Response: model.NewDirectResponse("Time allowed for loading."),
	}
	m, _ = m.Update(ToolResultMsg{Entry: entry})

	if m.busy {
		t.Error("expected busy cleared after result")
	}
	if m.log.Len() != 1 {
		t.Fatalf("log has %d entries, want 1", m.log.Len())
	}
	if m.log.Entries()[0].ID != 1 {
		t.Errorf("entry id = %d, want 1", m.log.Entries()[0].ID)
	}
}

func TestResult_FailedInvocationRetained(t *testing.T) {
	m := newTestModel()
	m.busy = true

	entry := &model.ToolResponseEntry{
		Kind:     model.ToolDocument,
		Filename: "missing.pdf",
		Response: model.NewErrorResponse("Cannot read file: no such file"),
	}
	m, _ = m.Update(ToolResultMsg{Entry: entry})

	if m.log.Len() != 1 {
		t.Fatalf("log has %d entries, want 1", m.log.Len())
	}
	if !m.log.Entries()[0].Response.IsError() {
		t.Error("expected error entry in log")
	}
}

func TestClear_ResetsLogAndIDs(t *testing.T) {
	m := newTestModel()
	m.log.Append(&model.ToolResponseEntry{
		Kind:     model.ToolAIQuery,
		Query:    "q",
		Response: model.NewDirectResponse("a"),
	})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	if m.log.Len() != 0 {
		t.Errorf("log has %d entries, want 0", m.log.Len())
	}
	if m.notice != "Tool log cleared." {
		t.Errorf("notice = %q", m.notice)
	}

	replacement := m.log.Append(&model.ToolResponseEntry{
		Kind:     model.ToolAIQuery,
		Query:    "q2",
		Response: model.NewDirectResponse("a2"),
	})
	if replacement.ID != 1 {
		t.Errorf("id after clear = %d, want 1", replacement.ID)
	}
}

func TestCycleTool_UpdatesPlaceholder(t *testing.T) {
	m := newTestModel()
	if m.tool != ToolAsk {
		t.Fatalf("initial tool = %v, want ToolAsk", m.tool)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	if m.tool != ToolDocument {
		t.Errorf("tool = %v, want ToolDocument", m.tool)
	}
	if m.input.Placeholder != ToolDocument.Placeholder() {
		t.Errorf("placeholder = %q", m.input.Placeholder)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	if m.tool != ToolAsk {
		t.Errorf("tool = %v, want wrap back to ToolAsk", m.tool)
	}
}

func TestRenderEntry_Weather(t *testing.T) {
	m := newTestModel()
	weather := &api.WeatherResponse{
		Forecast: []api.ForecastEntry{
			{Time: "2026-01-10T06:00", Temperature: 11.5, Condition: "clear"},
		},
		BadPeriods: [][]string{{"2026-01-11T00:00", "2026-01-11T12:00"}},
	}
	entry := &model.ToolResponseEntry{
		Kind:        model.ToolWeather,
		PortName:    "rotterdam",
		Coordinates: &model.Coordinates{Lat: 51.95, Lon: 4.14},
		Response:    model.NewWeatherResponse(weatherSummary(weather), "rotterdam", weather),
	}
	m.log.Append(entry)

	out := m.renderEntry(entry)
	if !strings.Contains(out, "rotterdam") {
		t.Error("expected port name in rendered entry")
	}
	if !strings.Contains(out, "clear") {
		t.Error("expected forecast condition in rendered entry")
	}
	if !strings.Contains(out, "adverse weather") {
		t.Error("expected adverse period in rendered entry")
	}
}

func TestWeatherSummary(t *testing.T) {
	tests := []struct {
		name string
		resp *api.WeatherResponse
		want string
	}{
		{
			name: "empty forecast",
			resp: &api.WeatherResponse{},
			want: "No forecast available.",
		},
		{
			name: "calm",
			resp: &api.WeatherResponse{
				Forecast: []api.ForecastEntry{{Temperature: 18.2, Condition: "clear"}},
			},
			want: "clear, 18.2°C",
		},
		{
			name: "with adverse periods",
			resp: &api.WeatherResponse{
				Forecast:   []api.ForecastEntry{{Temperature: 7.0, Condition: "storm"}},
				BadPeriods: [][]string{{"a", "b"}, {"c", "d"}},
			},
			want: "storm, 7.0°C, 2 adverse period(s)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := weatherSummary(tt.resp); got != tt.want {
				t.Errorf("weatherSummary() = %q, want %q", got, tt.want)
			}
		})
	}
}
