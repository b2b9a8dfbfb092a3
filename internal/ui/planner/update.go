// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package planner

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pelorus-ai/pelorus-tui/internal/api"
	"github.com/pelorus-ai/pelorus-tui/internal/voyage"
)

// Init fetches the port catalog and piracy zones.
func (m *Model) Init() tea.Cmd {
	m.busy = true
	return tea.Batch(refDataCmd(m.planner), m.spin.Tick)
}

// Update handles one Bubble Tea message.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case RouteMsg:
		m.busy = false
		if msg.Err != nil {
			m.stepFailed("Route optimization", msg.Err)
		} else {
			m.notice = "Route optimized. F5 analyzes risks, F6 plans fuel."
			m.inputs[fieldDistance].SetValue(
				strconv.FormatFloat(msg.Resp.OptimalRoute.TotalDistanceNM, 'f', 0, 64))
			m.refreshResults()
		}
		return m, nil

	case RiskMsg:
		m.busy = false
		if msg.Err != nil {
			m.stepFailed("Risk analysis", msg.Err)
		} else {
			m.notice = "Risk analysis complete."
			m.refreshResults()
		}
		return m, nil

	case FuelMsg:
		m.busy = false
		if msg.Err != nil {
			m.stepFailed("Fuel optimization", msg.Err)
		} else {
			m.notice = "Fuel plan ready."
			m.refreshResults()
		}
		return m, nil

	case RefDataMsg:
		m.busy = false
		if msg.Err != nil {
			m.notice = "Reference data unavailable: " + msg.Err.Error()
		} else {
			m.refreshResults()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.results, cmd = m.results.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (*Model, tea.Cmd) {
	switch msg.String() {
	case "up":
		m.setFocus(m.focus - 1)
		return m, nil
	case "down":
		m.setFocus(m.focus + 1)
		return m, nil
	case "enter":
		return m.runOptimize()
	case "f5":
		return m.runRisks()
	case "f6":
		return m.runFuel()
	case "f7":
		return m.runRefData()
	case "ctrl+w":
		m.cycleWeather()
		m.notice = "Sea state for fuel planning: " + string(m.weather)
		return m, nil
	case "ctrl+p":
		m.cyclePriority()
		m.notice = "Route optimization priority: " + m.priority
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// runOptimize starts the route step. The local endpoint check fires
// before any network call.
func (m *Model) runOptimize() (*Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	vesselType := strings.TrimSpace(m.inputs[fieldVesselType].Value())
	spec, ok := specFor(vesselType)
	if !ok {
		m.notice = vesselTypeHint
		return m, nil
	}
	req := api.RouteRequest{
		Origin:      strings.TrimSpace(m.inputs[fieldOrigin].Value()),
		Destination: strings.TrimSpace(m.inputs[fieldDestination].Value()),
		VesselType:  spec.Type,
		Priorities:  []string{m.priority},
	}
	if req.Origin == "" || req.Destination == "" {
		m.notice = "Enter both an origin and a destination port."
		return m, nil
	}
	m.busy = true
	m.notice = ""
	return m, optimizeCmd(m.planner, req)
}

// runRisks starts the risk step, requiring an optimized route.
func (m *Model) runRisks() (*Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	if !m.planner.HasRoute() {
		m.notice = "Optimize a route first."
		return m, nil
	}
	spec, ok := specFor(strings.TrimSpace(m.inputs[fieldVesselType].Value()))
	if !ok {
		m.notice = vesselTypeHint
		return m, nil
	}
	m.busy = true
	m.notice = ""
	return m, risksCmd(m.planner, spec.Type)
}

// runFuel starts the fuel step. It needs only a distance, which may have
// been pre-filled by a route result or entered by hand.
func (m *Model) runFuel() (*Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	distance, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[fieldDistance].Value()), 64)
	if err != nil || distance <= 0 {
		m.notice = "Enter a route distance in nautical miles."
		return m, nil
	}
	spec, ok := specFor(strings.TrimSpace(m.inputs[fieldVesselType].Value()))
	if !ok {
		m.notice = vesselTypeHint
		return m, nil
	}
	m.busy = true
	m.notice = ""
	return m, fuelCmd(m.planner, distance, spec, m.weather)
}

// runRefData retries the reference data load.
func (m *Model) runRefData() (*Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	m.busy = true
	return m, refDataCmd(m.planner)
}

// stepFailed surfaces a step error, keeping precondition wording local.
func (m *Model) stepFailed(step string, err error) {
	if errors.Is(err, voyage.ErrNoRoute) || errors.Is(err, voyage.ErrMissingEndpoints) ||
		errors.Is(err, voyage.ErrInvalidDistance) {
		m.notice = err.Error()
		return
	}
	m.notice = step + " failed: " + err.Error()
}
