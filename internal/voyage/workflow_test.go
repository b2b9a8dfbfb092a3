// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package voyage

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/pelorus-ai/pelorus-tui/internal/api"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func newTestPlanner(t *testing.T, handler http.HandlerFunc, requests *atomic.Int64) (*Planner, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests != nil {
			requests.Add(1)
		}
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	client := api.NewClientWithConfig(&api.Config{BaseURL: srv.URL})
	return NewPlanner(client), srv
}

func routeHandler(t *testing.T) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/voyage/optimize":
			json.NewEncoder(w).Encode(api.RouteResponse{
				Status: "success",
				OptimalRoute: api.RouteSummary{
					RouteName:       "Rotterdam to Singapore",
					TotalDistanceNM: 8288,
					Waypoints: []api.Waypoint{
						{Lat: 51.9, Lon: 4.4, Sequence: 1},
						{Lat: 1.29, Lon: 103.85, Sequence: 2},
					},
				},
			})
		case "/voyage/analyze-risks":
			var req api.RiskRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Errorf("decode risk request: %v", err)
			}
			if len(req.Route) == 0 {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{"detail": "Waypoints are required"})
				return
			}
			json.NewEncoder(w).Encode(api.RiskResponse{
				Status:   "success",
				Analysis: api.RiskAnalysis{OverallRiskScore: 4.2},
			})
		case "/voyage/fuel-optimization":
			var req api.FuelRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Errorf("decode fuel request: %v", err)
			}
			if req.DistanceNM <= 0 {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{"detail": "Distance must be positive"})
				return
			}
			json.NewEncoder(w).Encode(api.FuelResponse{
				Status: "success",
				Plan: api.FuelPlan{
					Optimized: api.FuelScenario{Recommended: 14},
				},
			})
		case "/voyage/ports":
			json.NewEncoder(w).Encode(api.PortsResponse{
				Ports: []api.Port{{Name: "Rotterdam", Country: "Netherlands"}},
			})
		case "/voyage/piracy-zones":
			json.NewEncoder(w).Encode(api.PiracyZonesResponse{
				Zones: []api.PiracyZone{{Name: "Gulf of Aden", RiskLevel: 8.5, RiskCategory: "high"}},
			})
		default:
			http.NotFound(w, r)
		}
	}
}

// =============================================================================
// TESTS
// =============================================================================

func TestPlanner_FullWorkflow(t *testing.T) {
	p, _ := newTestPlanner(t, routeHandler(t), nil)
	ctx := context.Background()

	route, err := p.OptimizeRoute(ctx, api.RouteRequest{
		Origin:      "Rotterdam",
		Destination: "Singapore",
		VesselType:  "container",
	})
	if err != nil {
		t.Fatalf("OptimizeRoute: %v", err)
	}
	if route.OptimalRoute.TotalDistanceNM != 8288 {
		t.Errorf("unexpected distance: %g", route.OptimalRoute.TotalDistanceNM)
	}
	if !p.HasRoute() {
		t.Error("expected planner to hold a route")
	}

	risks, err := p.AnalyzeRisks(ctx, "container")
	if err != nil {
		t.Fatalf("AnalyzeRisks: %v", err)
	}
	if risks.Analysis.OverallRiskScore != 4.2 {
		t.Errorf("unexpected risk score: %g", risks.Analysis.OverallRiskScore)
	}

	fuel, err := p.OptimizeFuel(ctx, route.OptimalRoute.TotalDistanceNM, api.VesselSpec{Type: "container"}, WeatherModerate)
	if err != nil {
		t.Fatalf("OptimizeFuel: %v", err)
	}
	if fuel.Plan.Optimized.Recommended != 14 {
		t.Errorf("unexpected speed: %g", fuel.Plan.Optimized.Recommended)
	}
}

func TestPlanner_RouteForwardsVesselTypeAndPriorities(t *testing.T) {
	var got api.RouteRequest
	handler := func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode route request: %v", err)
		}
		json.NewEncoder(w).Encode(api.RouteResponse{Status: "success"})
	}
	p, _ := newTestPlanner(t, handler, nil)

	_, err := p.OptimizeRoute(context.Background(), api.RouteRequest{
		Origin:      "Rotterdam",
		Destination: "Singapore",
		VesselType:  "tanker",
		Priorities:  []string{"safety"},
	})
	if err != nil {
		t.Fatalf("OptimizeRoute: %v", err)
	}
	if got.VesselType != "tanker" {
		t.Errorf("unexpected vessel type: %q", got.VesselType)
	}
	if len(got.Priorities) != 1 || got.Priorities[0] != "safety" {
		t.Errorf("unexpected priorities: %v", got.Priorities)
	}
}

func TestPlanner_RiskWithoutRouteMakesNoNetworkCall(t *testing.T) {
	var requests atomic.Int64
	p, _ := newTestPlanner(t, routeHandler(t), &requests)

	_, err := p.AnalyzeRisks(context.Background(), "container")
	if !errors.Is(err, ErrNoRoute) {
		t.Fatalf("expected ErrNoRoute, got %v", err)
	}
	if n := requests.Load(); n != 0 {
		t.Errorf("expected no requests, server saw %d", n)
	}
}

func TestPlanner_FuelWithoutRouteSucceeds(t *testing.T) {
	p, _ := newTestPlanner(t, routeHandler(t), nil)

	fuel, err := p.OptimizeFuel(context.Background(), 5000, api.VesselSpec{Type: "container"}, WeatherModerate)
	if err != nil {
		t.Fatalf("OptimizeFuel: %v", err)
	}
	if fuel.Plan.Optimized.Recommended != 14 {
		t.Errorf("unexpected speed: %g", fuel.Plan.Optimized.Recommended)
	}
	if p.Fuel() == nil {
		t.Error("expected fuel plan stored without a route")
	}
	if p.HasRoute() {
		t.Error("expected no route after a fuel-only session")
	}
}

func TestPlanner_FuelInvalidDistanceMakesNoNetworkCall(t *testing.T) {
	var requests atomic.Int64
	p, _ := newTestPlanner(t, routeHandler(t), &requests)

	for _, distance := range []float64{0, -120} {
		_, err := p.OptimizeFuel(context.Background(), distance, api.VesselSpec{}, WeatherCalm)
		if !errors.Is(err, ErrInvalidDistance) {
			t.Fatalf("distance %g: expected ErrInvalidDistance, got %v", distance, err)
		}
	}
	if n := requests.Load(); n != 0 {
		t.Errorf("expected no requests, server saw %d", n)
	}
}

func TestPlanner_OptimizeRequiresBothEndpoints(t *testing.T) {
	var requests atomic.Int64
	p, _ := newTestPlanner(t, routeHandler(t), &requests)

	tests := []struct {
		name        string
		origin      string
		destination string
	}{
		{"missing origin", "", "Singapore"},
		{"missing destination", "Rotterdam", ""},
		{"whitespace origin", "   ", "Singapore"},
		{"both missing", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.OptimizeRoute(context.Background(), api.RouteRequest{
				Origin:      tt.origin,
				Destination: tt.destination,
			})
			if !errors.Is(err, ErrMissingEndpoints) {
				t.Errorf("expected ErrMissingEndpoints, got %v", err)
			}
		})
	}
	if n := requests.Load(); n != 0 {
		t.Errorf("expected no requests, server saw %d", n)
	}
}

func TestPlanner_ReRunningRouteKeepsDownstreamResults(t *testing.T) {
	p, _ := newTestPlanner(t, routeHandler(t), nil)
	ctx := context.Background()

	req := api.RouteRequest{Origin: "Rotterdam", Destination: "Singapore"}
	if _, err := p.OptimizeRoute(ctx, req); err != nil {
		t.Fatalf("OptimizeRoute: %v", err)
	}
	if _, err := p.AnalyzeRisks(ctx, "container"); err != nil {
		t.Fatalf("AnalyzeRisks: %v", err)
	}
	if _, err := p.OptimizeFuel(ctx, 5000, api.VesselSpec{}, WeatherCalm); err != nil {
		t.Fatalf("OptimizeFuel: %v", err)
	}

	if _, err := p.OptimizeRoute(ctx, req); err != nil {
		t.Fatalf("second OptimizeRoute: %v", err)
	}
	if p.Risks() == nil {
		t.Error("expected risk analysis kept after re-running the route step")
	}
	if p.Fuel() == nil {
		t.Error("expected fuel plan kept after re-running the route step")
	}
}

func TestPlanner_LoadReferenceDataOnce(t *testing.T) {
	var requests atomic.Int64
	p, _ := newTestPlanner(t, routeHandler(t), &requests)
	ctx := context.Background()

	if err := p.LoadReferenceData(ctx); err != nil {
		t.Fatalf("LoadReferenceData: %v", err)
	}
	if p.Ports() == nil || len(p.Ports().Ports) != 1 {
		t.Error("expected port catalog cached")
	}
	if p.PiracyZones() == nil || len(p.PiracyZones().Zones) != 1 {
		t.Error("expected piracy zones cached")
	}

	before := requests.Load()
	if err := p.LoadReferenceData(ctx); err != nil {
		t.Fatalf("second LoadReferenceData: %v", err)
	}
	if requests.Load() != before {
		t.Error("expected second load to hit the cache")
	}
}

func TestPlanner_LoadReferenceDataRetriesAfterFailure(t *testing.T) {
	fail := true
	var requests atomic.Int64
	handler := func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(map[string]string{"detail": "upstream unavailable"})
			return
		}
		routeHandler(t)(w, r)
	}
	p, _ := newTestPlanner(t, handler, &requests)
	ctx := context.Background()

	if err := p.LoadReferenceData(ctx); err == nil {
		t.Fatal("expected first load to fail")
	}

	fail = false
	if err := p.LoadReferenceData(ctx); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if p.Ports() == nil || p.PiracyZones() == nil {
		t.Error("expected reference data cached after retry")
	}
}

func TestPlanner_Reset(t *testing.T) {
	p, _ := newTestPlanner(t, routeHandler(t), nil)
	ctx := context.Background()

	if _, err := p.OptimizeRoute(ctx, api.RouteRequest{Origin: "A", Destination: "B"}); err != nil {
		t.Fatalf("OptimizeRoute: %v", err)
	}
	if err := p.LoadReferenceData(ctx); err != nil {
		t.Fatalf("LoadReferenceData: %v", err)
	}

	p.Reset()
	if p.HasRoute() || p.Ports() != nil || p.PiracyZones() != nil {
		t.Error("expected all session state discarded")
	}
}

func TestWeatherSeverity_Valid(t *testing.T) {
	for _, s := range Severities() {
		if !s.Valid() {
			t.Errorf("expected %q valid", s)
		}
	}
	if WeatherSeverity("hurricane").Valid() {
		t.Error("expected unknown severity rejected")
	}
}
