// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package planner

import (
	"fmt"
	"strings"

	"github.com/pelorus-ai/pelorus-tui/internal/api"
)

// View renders the voyage planning view.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.PanelTitle.Render("Voyage planning"))
	b.WriteString("\n")
	for i := range m.inputs {
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	switch {
	case m.busy:
		b.WriteString(m.spin.View())
		b.WriteString(m.theme.ThinkingText.Render(" working…"))
	case m.notice != "":
		b.WriteString(m.theme.MutedText.Render(m.notice))
	default:
		b.WriteString(m.theme.ShortcutDesc.Render(
			"enter optimize  f5 risks  f6 fuel  f7 reference  ^w sea state (" +
				string(m.weather) + ")  ^p priority (" + m.priority + ")"))
	}
	b.WriteString("\n")

	b.WriteString(m.results.View())
	return b.String()
}

// refreshResults re-renders the step results into the viewport.
// Called from Update after each step completes, so the view itself never
// touches planner state concurrently with a running step.
func (m *Model) refreshResults() {
	var b strings.Builder

	if route := m.planner.Route(); route != nil {
		b.WriteString(m.renderRoute(route))
		b.WriteString("\n")
	}
	if risks := m.planner.Risks(); risks != nil {
		b.WriteString(m.renderRisks(risks))
		b.WriteString("\n")
	}
	if fuel := m.planner.Fuel(); fuel != nil {
		b.WriteString(m.renderFuel(fuel))
		b.WriteString("\n")
	}
	if ports := m.planner.Ports(); ports != nil {
		fmt.Fprintf(&b, "%s %d ports in catalog",
			m.theme.Label.Render("Reference:"), len(ports.Ports))
		if zones := m.planner.PiracyZones(); zones != nil {
			fmt.Fprintf(&b, ", %d piracy zones", len(zones.Zones))
		}
		b.WriteString("\n")
	}

	m.results.SetContent(b.String())
}

func (m *Model) renderRoute(route *api.RouteResponse) string {
	var b strings.Builder
	b.WriteString(m.theme.PanelTitle.Render("Optimal route: " + route.OptimalRoute.RouteName))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %.0f nm  %s %.1f days  %s %.0f t\n",
		m.theme.Label.Render("Distance"), route.OptimalRoute.TotalDistanceNM,
		m.theme.Label.Render("Duration"), route.OptimalRoute.EstimatedDurationDays,
		m.theme.Label.Render("Fuel"), route.OptimalRoute.TotalFuelMT)
	fmt.Fprintf(&b, "%s $%.0f  %s %d waypoints\n",
		m.theme.Label.Render("Cost"), route.OptimalRoute.TotalCostUSD,
		m.theme.Label.Render("Track"), len(route.OptimalRoute.Waypoints))
	for _, rec := range route.Recommendations {
		b.WriteString(m.theme.MutedText.Render("• " + rec))
		b.WriteString("\n")
	}
	for _, alt := range route.Alternatives {
		fmt.Fprintf(&b, "%s %s (%.0f nm)\n",
			m.theme.Label.Render("Alternative:"), alt.RouteName, alt.DistanceNM)
	}
	return b.String()
}

func (m *Model) renderRisks(risks *api.RiskResponse) string {
	var b strings.Builder
	score := risks.Analysis.OverallRiskScore
	b.WriteString(m.theme.PanelTitle.Render("Risk analysis"))
	b.WriteString("  ")
	b.WriteString(m.theme.RiskStyle(score).Render(fmt.Sprintf("overall %.1f/10", score)))
	b.WriteString("\n")

	sections := []struct {
		label  string
		points []api.RiskPoint
	}{
		{"Weather", risks.Analysis.WeatherRisks},
		{"Piracy", risks.Analysis.PiracyRisks},
		{"Congestion", risks.Analysis.CongestionRisks},
	}
	for _, sec := range sections {
		if len(sec.points) == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s\n", m.theme.Label.Render(sec.label+":"))
		for _, p := range sec.points {
			b.WriteString("  ")
			b.WriteString(m.theme.RiskStyle(p.RiskLevel).Render(fmt.Sprintf("%.1f", p.RiskLevel)))
			b.WriteString(" " + p.Location)
			if p.Description != "" {
				b.WriteString(m.theme.MutedText.Render(" – " + p.Description))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m *Model) renderFuel(fuel *api.FuelResponse) string {
	var b strings.Builder
	b.WriteString(m.theme.PanelTitle.Render("Fuel plan"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %.1f kn, %.0f t total\n",
		m.theme.Label.Render("Current"),
		fuel.Plan.Current.SpeedKnots, fuel.Plan.Current.TotalFuelMT)
	fmt.Fprintf(&b, "%s %.1f kn, %.0f t total\n",
		m.theme.Label.Render("Optimized"),
		fuel.Plan.Optimized.Recommended, fuel.Plan.Optimized.TotalFuelMT)
	fmt.Fprintf(&b, "%s %.0f t (%.0f%%), $%.0f\n",
		m.theme.Label.Render("Savings"),
		fuel.Plan.Savings.FuelSavedMT, fuel.Plan.Savings.FuelSavedPercent,
		fuel.Plan.Savings.CostSavingsUSD)
	for _, rec := range fuel.Plan.Recommendations {
		b.WriteString(m.theme.MutedText.Render("• " + rec))
		b.WriteString("\n")
	}
	return b.String()
}
