// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package planner provides the voyage planning view: route optimization,
// risk analysis, and fuel planning as workflow steps on one session.
package planner

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pelorus-ai/pelorus-tui/internal/api"
	"github.com/pelorus-ai/pelorus-tui/internal/ui/styles"
	"github.com/pelorus-ai/pelorus-tui/internal/voyage"
)

// =============================================================================
// MESSAGES
// =============================================================================

// RouteMsg delivers the outcome of route optimization.
type RouteMsg struct {
	Resp *api.RouteResponse
	Err  error
}

// RiskMsg delivers the outcome of risk analysis.
type RiskMsg struct {
	Resp *api.RiskResponse
	Err  error
}

// FuelMsg delivers the outcome of fuel optimization.
type FuelMsg struct {
	Resp *api.FuelResponse
	Err  error
}

// RefDataMsg confirms the reference data load.
type RefDataMsg struct {
	Err error
}

// =============================================================================
// FORM FIELDS
// =============================================================================

const (
	fieldOrigin = iota
	fieldDestination
	fieldVesselType
	fieldDistance
	fieldCount
)

// vesselSpecs maps the accepted vessel types to fuel-model parameters.
// The backend rejects anything outside this set.
var vesselSpecs = map[string]api.VesselSpec{
	"container": {Type: "container", DeadweightT: 50000, EnginePowerKW: 25000, FuelType: "HFO"},
	"tanker":    {Type: "tanker", DeadweightT: 80000, EnginePowerKW: 18000, FuelType: "HFO"},
	"bulk":      {Type: "bulk", DeadweightT: 60000, EnginePowerKW: 12000, FuelType: "VLSFO"},
	"general":   {Type: "general", DeadweightT: 30000, EnginePowerKW: 10000, FuelType: "MGO"},
}

const vesselTypeHint = "Vessel type must be one of: bulk, container, general, tanker."

// specFor resolves the vessel type typed into the form. An empty value
// defaults to container; an unknown value is rejected before any request.
func specFor(vesselType string) (api.VesselSpec, bool) {
	if vesselType == "" {
		return vesselSpecs["container"], true
	}
	spec, ok := vesselSpecs[vesselType]
	return spec, ok
}

// priorities lists the optimization priorities the backend accepts.
var priorities = []string{"balanced", "speed", "cost", "safety"}

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model for the voyage planning view.
type Model struct {
	theme *styles.Theme

	width  int
	height int

	inputs  [fieldCount]textinput.Model
	focus   int
	results viewport.Model
	spin    spinner.Model

	planner  *voyage.Planner
	weather  voyage.WeatherSeverity
	priority string

	busy   bool
	notice string
}

// New creates the voyage planning view.
func New(planner *voyage.Planner, theme *styles.Theme) *Model {
	m := &Model{
		theme:    theme,
		planner:  planner,
		weather:  voyage.WeatherModerate,
		priority: priorities[0],
		results:  viewport.New(80, 16),
	}

	labels := [fieldCount]string{"Origin port", "Destination port", "Vessel type", "Route distance (nm)"}
	for i := range m.inputs {
		in := textinput.New()
		in.Placeholder = labels[i]
		in.CharLimit = 64
		m.inputs[i] = in
	}
	m.inputs[fieldVesselType].SetValue("container")
	m.inputs[fieldOrigin].Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = theme.Spinner
	m.spin = sp
	return m
}

// Planner exposes the workflow state backing the view.
func (m *Model) Planner() *voyage.Planner { return m.planner }

// Resize adjusts the view to new terminal dimensions.
func (m *Model) Resize(width, height int) {
	m.width = width
	m.height = height
	for i := range m.inputs {
		m.inputs[i].Width = width/2 - 8
	}
	vpHeight := height - 9
	if vpHeight < 3 {
		vpHeight = 3
	}
	m.results.Width = width
	m.results.Height = vpHeight
}

// setFocus moves keyboard focus to the given field.
func (m *Model) setFocus(i int) {
	m.focus = ((i % fieldCount) + fieldCount) % fieldCount
	for j := range m.inputs {
		if j == m.focus {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

// cycleWeather advances the sea-state assumption for fuel planning.
func (m *Model) cycleWeather() {
	severities := voyage.Severities()
	for i, s := range severities {
		if s == m.weather {
			m.weather = severities[(i+1)%len(severities)]
			return
		}
	}
	m.weather = voyage.WeatherModerate
}

// cyclePriority advances the optimization priority for route planning.
func (m *Model) cyclePriority() {
	for i, p := range priorities {
		if p == m.priority {
			m.priority = priorities[(i+1)%len(priorities)]
			return
		}
	}
	m.priority = priorities[0]
}

// =============================================================================
// COMMANDS
// =============================================================================

func optimizeCmd(p *voyage.Planner, req api.RouteRequest) tea.Cmd {
	return func() tea.Msg {
		resp, err := p.OptimizeRoute(context.Background(), req)
		return RouteMsg{Resp: resp, Err: err}
	}
}

func risksCmd(p *voyage.Planner, vesselType string) tea.Cmd {
	return func() tea.Msg {
		resp, err := p.AnalyzeRisks(context.Background(), vesselType)
		return RiskMsg{Resp: resp, Err: err}
	}
}

func fuelCmd(p *voyage.Planner, distanceNM float64, spec api.VesselSpec, weather voyage.WeatherSeverity) tea.Cmd {
	return func() tea.Msg {
		resp, err := p.OptimizeFuel(context.Background(), distanceNM, spec, weather)
		return FuelMsg{Resp: resp, Err: err}
	}
}

func refDataCmd(p *voyage.Planner) tea.Cmd {
	return func() tea.Msg {
		return RefDataMsg{Err: p.LoadReferenceData(context.Background())}
	}
}
