// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package voyage implements the multi-step voyage planning workflow.
package voyage

import (
	"context"
	"errors"
	"strings"

	"github.com/pelorus-ai/pelorus-tui/internal/api"
)

// =============================================================================
// ERRORS
// =============================================================================

// ErrNoRoute is returned when a step requires an optimized route that has
// not been computed yet. No network call is made in that case.
var ErrNoRoute = errors.New("optimize a route first")

// ErrMissingEndpoints is returned when route optimization is requested
// without both an origin and a destination.
var ErrMissingEndpoints = errors.New("origin and destination are required")

// ErrInvalidDistance is returned when fuel optimization is requested with a
// non-positive route distance. No network call is made in that case.
var ErrInvalidDistance = errors.New("route distance must be positive")

// =============================================================================
// WEATHER SEVERITY
// =============================================================================

// WeatherSeverity is the coarse sea-state input to fuel optimization.
type WeatherSeverity string

const (
	WeatherCalm     WeatherSeverity = "calm"
	WeatherModerate WeatherSeverity = "moderate"
	WeatherRough    WeatherSeverity = "rough"
	WeatherSevere   WeatherSeverity = "severe"
)

// Valid reports whether the severity is one of the accepted values.
func (w WeatherSeverity) Valid() bool {
	switch w {
	case WeatherCalm, WeatherModerate, WeatherRough, WeatherSevere:
		return true
	}
	return false
}

// Severities lists the accepted values in ascending order.
func Severities() []WeatherSeverity {
	return []WeatherSeverity{WeatherCalm, WeatherModerate, WeatherRough, WeatherSevere}
}

// =============================================================================
// PLANNER
// =============================================================================

// Client is the backend surface the planner depends on.
type Client interface {
	OptimizeRoute(ctx context.Context, req api.RouteRequest) (*api.RouteResponse, error)
	AnalyzeRisks(ctx context.Context, req api.RiskRequest) (*api.RiskResponse, error)
	OptimizeFuel(ctx context.Context, req api.FuelRequest) (*api.FuelResponse, error)
	Ports(ctx context.Context, region, search string) (*api.PortsResponse, error)
	PiracyZones(ctx context.Context) (*api.PiracyZonesResponse, error)
}

// Planner holds the state of one voyage planning session. Each step keeps
// only its latest result: re-running a step overwrites the previous one.
// Reference data (ports and piracy zones) is fetched once per session.
type Planner struct {
	client Client

	route *api.RouteResponse
	risks *api.RiskResponse
	fuel  *api.FuelResponse

	ports  *api.PortsResponse
	zones  *api.PiracyZonesResponse
	loaded bool
}

// NewPlanner creates a planner bound to the given backend client.
func NewPlanner(client Client) *Planner {
	return &Planner{client: client}
}

// Route returns the latest optimized route, nil when none.
func (p *Planner) Route() *api.RouteResponse { return p.route }

// Risks returns the latest risk analysis, nil when none.
func (p *Planner) Risks() *api.RiskResponse { return p.risks }

// Fuel returns the latest fuel plan, nil when none.
func (p *Planner) Fuel() *api.FuelResponse { return p.fuel }

// Ports returns the cached port catalog, nil until LoadReferenceData.
func (p *Planner) Ports() *api.PortsResponse { return p.ports }

// PiracyZones returns the cached piracy zones, nil until LoadReferenceData.
func (p *Planner) PiracyZones() *api.PiracyZonesResponse { return p.zones }

// HasRoute reports whether a route has been optimized this session.
func (p *Planner) HasRoute() bool { return p.route != nil }

// =============================================================================
// WORKFLOW STEPS
// =============================================================================

// OptimizeRoute runs the first workflow step. Both endpoints are required;
// vessel type and priorities pass through as given.
func (p *Planner) OptimizeRoute(ctx context.Context, req api.RouteRequest) (*api.RouteResponse, error) {
	if strings.TrimSpace(req.Origin) == "" || strings.TrimSpace(req.Destination) == "" {
		return nil, ErrMissingEndpoints
	}
	resp, err := p.client.OptimizeRoute(ctx, req)
	if err != nil {
		return nil, err
	}
	p.route = resp
	return resp, nil
}

// AnalyzeRisks runs the risk step against the current route's waypoints.
// Requires an optimized route; fails locally without one.
func (p *Planner) AnalyzeRisks(ctx context.Context, vesselType string) (*api.RiskResponse, error) {
	if p.route == nil || len(p.route.OptimalRoute.Waypoints) == 0 {
		return nil, ErrNoRoute
	}
	resp, err := p.client.AnalyzeRisks(ctx, api.RiskRequest{
		Route:      p.route.OptimalRoute.Waypoints,
		VesselType: vesselType,
	})
	if err != nil {
		return nil, err
	}
	p.risks = resp
	return resp, nil
}

// OptimizeFuel runs the fuel step for the given distance. The step does not
// depend on an optimized route: any positive distance is accepted, whether it
// came from a route result or was entered directly.
func (p *Planner) OptimizeFuel(ctx context.Context, distanceNM float64, specs api.VesselSpec, weather WeatherSeverity) (*api.FuelResponse, error) {
	if distanceNM <= 0 {
		return nil, ErrInvalidDistance
	}
	if !weather.Valid() {
		weather = WeatherModerate
	}
	resp, err := p.client.OptimizeFuel(ctx, api.FuelRequest{
		DistanceNM:        distanceNM,
		VesselSpecs:       specs,
		WeatherConditions: string(weather),
	})
	if err != nil {
		return nil, err
	}
	p.fuel = resp
	return resp, nil
}

// LoadReferenceData fetches the port catalog and piracy zones once per
// session. Subsequent calls are no-ops; a partial failure leaves the
// session unloaded so the next call retries both.
func (p *Planner) LoadReferenceData(ctx context.Context) error {
	if p.loaded {
		return nil
	}
	ports, err := p.client.Ports(ctx, "", "")
	if err != nil {
		return err
	}
	zones, err := p.client.PiracyZones(ctx)
	if err != nil {
		return err
	}
	p.ports = ports
	p.zones = zones
	p.loaded = true
	return nil
}

// Reset discards all per-session results and reference data.
func (p *Planner) Reset() {
	p.route = nil
	p.risks = nil
	p.fuel = nil
	p.ports = nil
	p.zones = nil
	p.loaded = false
}
