// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package planner

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pelorus-ai/pelorus-tui/internal/api"
	"github.com/pelorus-ai/pelorus-tui/internal/ui/styles"
	"github.com/pelorus-ai/pelorus-tui/internal/voyage"
)

func newTestModel() *Model {
	p := voyage.NewPlanner(api.NewClient())
	m := New(p, styles.NewTheme(100, 30))
	m.Resize(100, 30)
	return m
}

func TestOptimize_RequiresBothEndpointsLocally(t *testing.T) {
	m := newTestModel()
	m.inputs[fieldOrigin].SetValue("Rotterdam")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no command without a destination")
	}
	if m.notice == "" {
		t.Error("expected a local precondition notice")
	}
	if m.busy {
		t.Error("expected view not busy")
	}
}

func TestRisks_RequireRouteLocally(t *testing.T) {
	m := newTestModel()

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyF5})
	if cmd != nil {
		t.Error("expected no command without a route")
	}
	if m.notice != "Optimize a route first." {
		t.Errorf("unexpected notice: %q", m.notice)
	}
}

func TestFuel_RunsWithoutRoute(t *testing.T) {
	m := newTestModel()
	m.inputs[fieldDistance].SetValue("5000")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyF6})
	if cmd == nil {
		t.Fatal("expected a fuel command without a route")
	}
	if !m.busy {
		t.Error("expected busy while step runs")
	}
}

func TestFuel_RequiresDistanceLocally(t *testing.T) {
	for _, distance := range []string{"", "eight thousand", "-200"} {
		m := newTestModel()
		m.inputs[fieldDistance].SetValue(distance)

		m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyF6})
		if cmd != nil {
			t.Errorf("distance %q: expected no command", distance)
		}
		if m.notice != "Enter a route distance in nautical miles." {
			t.Errorf("distance %q: unexpected notice: %q", distance, m.notice)
		}
	}
}

func TestRouteResult_PrefillsDistance(t *testing.T) {
	m := newTestModel()
	m.busy = true

	m, _ = m.Update(RouteMsg{Resp: &api.RouteResponse{
		OptimalRoute: api.RouteSummary{TotalDistanceNM: 8288},
	}})
	if got := m.inputs[fieldDistance].Value(); got != "8288" {
		t.Errorf("expected distance pre-filled from the route, got %q", got)
	}
}

func TestOptimize_StartsStepAndGuardsReentry(t *testing.T) {
	m := newTestModel()
	m.inputs[fieldOrigin].SetValue("Rotterdam")
	m.inputs[fieldDestination].SetValue("Singapore")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected an optimize command")
	}
	if !m.busy {
		t.Error("expected busy while step runs")
	}

	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected re-entry blocked while busy")
	}
}

func TestStepFailure_SurfacesNotice(t *testing.T) {
	m := newTestModel()
	m.busy = true

	m, _ = m.Update(RouteMsg{Err: api.ErrBackendDown})
	if m.busy {
		t.Error("expected busy cleared")
	}
	if m.notice != "Route optimization failed: cannot reach backend" {
		t.Errorf("unexpected notice: %q", m.notice)
	}
}

func TestPreconditionError_KeepsShortWording(t *testing.T) {
	m := newTestModel()
	m.busy = true

	m, _ = m.Update(RiskMsg{Err: voyage.ErrNoRoute})
	if m.notice != "optimize a route first" {
		t.Errorf("unexpected notice: %q", m.notice)
	}
}

func TestFocusCycling(t *testing.T) {
	m := newTestModel()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.focus != fieldDestination {
		t.Errorf("expected destination focused, got %d", m.focus)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.focus != fieldDistance {
		t.Errorf("expected wrap to distance, got %d", m.focus)
	}
}

func TestCycleWeather(t *testing.T) {
	m := newTestModel()
	if m.weather != voyage.WeatherModerate {
		t.Fatalf("unexpected initial sea state: %q", m.weather)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlW})
	if m.weather != voyage.WeatherRough {
		t.Errorf("expected rough, got %q", m.weather)
	}
}

func TestSpecFor(t *testing.T) {
	for _, vesselType := range []string{"container", "bulk", "tanker", "general"} {
		spec, ok := specFor(vesselType)
		if !ok {
			t.Errorf("expected %q accepted", vesselType)
		}
		if spec.Type != vesselType {
			t.Errorf("expected type %q, got %q", vesselType, spec.Type)
		}
	}
	if spec, ok := specFor(""); !ok || spec.Type != "container" {
		t.Errorf("expected container default for empty type, got %+v (%v)", spec, ok)
	}
	if _, ok := specFor("hydrofoil"); ok {
		t.Error("expected unknown vessel type rejected")
	}
}

func TestOptimize_RejectsUnknownVesselType(t *testing.T) {
	m := newTestModel()
	m.inputs[fieldOrigin].SetValue("Rotterdam")
	m.inputs[fieldDestination].SetValue("Singapore")
	m.inputs[fieldVesselType].SetValue("hydrofoil")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no command for an unknown vessel type")
	}
	if m.notice != vesselTypeHint {
		t.Errorf("unexpected notice: %q", m.notice)
	}
}

func TestCyclePriority(t *testing.T) {
	m := newTestModel()
	if m.priority != "balanced" {
		t.Fatalf("unexpected initial priority: %q", m.priority)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	if m.priority != "speed" {
		t.Errorf("expected speed, got %q", m.priority)
	}
	for i := 0; i < 3; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	}
	if m.priority != "balanced" {
		t.Errorf("expected wrap back to balanced, got %q", m.priority)
	}
}
