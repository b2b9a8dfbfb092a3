// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for communicating with the Maritime AI Agent backend.
package api

import (
	"context"
	"net/url"
)

// =============================================================================
// VOYAGE PLANNING OPERATIONS
// =============================================================================

// OptimizeRoute requests an optimized route between two ports.
func (c *Client) OptimizeRoute(ctx context.Context, req RouteRequest) (*RouteResponse, error) {
	var resp RouteResponse
	if err := c.postJSON(ctx, "/voyage/optimize", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AnalyzeRisks evaluates weather and piracy risks along a route.
func (c *Client) AnalyzeRisks(ctx context.Context, req RiskRequest) (*RiskResponse, error) {
	var resp RiskResponse
	if err := c.postJSON(ctx, "/voyage/analyze-risks", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// OptimizeFuel calculates speed and consumption recommendations.
func (c *Client) OptimizeFuel(ctx context.Context, req FuelRequest) (*FuelResponse, error) {
	var resp FuelResponse
	if err := c.postJSON(ctx, "/voyage/fuel-optimization", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Ports fetches the major-ports database, optionally filtered by region or
// a name search.
func (c *Client) Ports(ctx context.Context, region, search string) (*PortsResponse, error) {
	path := "/voyage/ports"
	query := url.Values{}
	if region != "" {
		query.Set("region", region)
	}
	if search != "" {
		query.Set("search", search)
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var resp PortsResponse
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PiracyZones fetches the current piracy risk zones.
func (c *Client) PiracyZones(ctx context.Context) (*PiracyZonesResponse, error) {
	var resp PiracyZonesResponse
	if err := c.getJSON(ctx, "/voyage/piracy-zones", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
