// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for communicating with the Maritime AI Agent backend.
package api

// =============================================================================
// LIVENESS
// =============================================================================

// PingResponse is the body of GET /ping.
type PingResponse struct {
	Status string `json:"status"` // "ok" when the backend is responding
}

// =============================================================================
// DIRECT TOOLS
// =============================================================================

// QueryRequest is the request body for POST /ask.
type QueryRequest struct {
	Query string `json:"query"`
}

// QueryResponse is the answer payload shared by /ask, /documents/summarize
// and /agent/query. Fields beyond Answer are populated only by the agent.
type QueryResponse struct {
	Answer        string   `json:"answer"`
	ToolsUsed     []string `json:"tools_used,omitempty"`
	ExecutionPlan string   `json:"execution_plan,omitempty"`
	Confidence    float64  `json:"confidence,omitempty"`
	Timestamp     string   `json:"timestamp,omitempty"`
	Error         string   `json:"error,omitempty"`
}

// ForecastEntry is a single point in the weather forecast.
type ForecastEntry struct {
	Time        string  `json:"time"`
	Temperature float64 `json:"temperature"` // Celsius
	Condition   string  `json:"condition"`
}

// WeatherResponse is the body of GET /weather/{lat}/{lon}.
type WeatherResponse struct {
	Forecast []ForecastEntry `json:"forecast"`
	// BadPeriods lists [start, end] ISO timestamp pairs of adverse weather.
	BadPeriods [][]string `json:"bad_periods"`
}

// =============================================================================
// AGENT
// =============================================================================

// AgentStatus is the body of GET /agent/status.
type AgentStatus struct {
	Status              string   `json:"status"`
	AgentType           string   `json:"agent_type"`
	Capabilities        []string `json:"capabilities"`
	VoyagePlanningTools []string `json:"voyage_planning_tools"`
	MemoryEnabled       bool     `json:"memory_enabled"`
}

// AgentTool describes a single tool available to the agent.
type AgentTool struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AgentToolsResponse is the body of GET /agent/tools.
type AgentToolsResponse struct {
	Tools []AgentTool `json:"tools"`
}

// AgentExamplesResponse is the body of GET /agent/examples.
type AgentExamplesResponse struct {
	Examples map[string]string `json:"examples"`
}

// MemoryMessage is one remembered conversation turn.
type MemoryMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AgentMemoryResponse is the body of GET /agent/memory.
type AgentMemoryResponse struct {
	Messages []MemoryMessage `json:"messages"`
}

// ClearMemoryResponse is the acknowledgement from POST /agent/memory/clear.
type ClearMemoryResponse struct {
	Message        string `json:"message"`
	AvailableTools int    `json:"available_tools"`
}

// =============================================================================
// VOICE
// =============================================================================

// VoiceCommandRequest is the request body for POST /voice/process.
type VoiceCommandRequest struct {
	Command  string `json:"command"`
	Language string `json:"language"`
}

// VoiceCommandResponse is the body of POST /voice/process.
type VoiceCommandResponse struct {
	Response   string  `json:"response"`
	AudioURL   string  `json:"audio_url,omitempty"`
	Confidence float64 `json:"confidence"`
}

// SpeechRequest is the request body for POST /voice/text-to-speech.
type SpeechRequest struct {
	Text     string  `json:"text"`
	Language string  `json:"language"`
	Voice    string  `json:"voice,omitempty"`
	Speed    float64 `json:"speed,omitempty"`
}

// SpeechResponse is the body of POST /voice/text-to-speech.
type SpeechResponse struct {
	Status    string `json:"status"`
	AudioData string `json:"audio_data"` // base64 MP3
	Text      string `json:"text"`
	Language  string `json:"language"`
	Timestamp string `json:"timestamp"`
}

// VoiceChatRequest is the request body for POST /voice/chat.
type VoiceChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
	Context   string `json:"context,omitempty"`
}

// VoiceChatResponse is the body of POST /voice/chat.
type VoiceChatResponse struct {
	ResponseText     string `json:"response_text"`
	AudioResponse    string `json:"audio_response,omitempty"`
	ConversationID   string `json:"conversation_id"`
	Timestamp        string `json:"timestamp"`
	ProcessingTimeMs int    `json:"processing_time_ms"`
}

// VoiceShortcutsResponse is the body of GET /voice/shortcuts.
type VoiceShortcutsResponse struct {
	Shortcuts map[string]string `json:"voice_shortcuts"`
	Total     int               `json:"total_shortcuts"`
}

// VoiceLanguagesResponse is the body of GET /voice/languages.
type VoiceLanguagesResponse struct {
	Languages map[string]string `json:"supported_languages"`
	Default   string            `json:"default_language"`
	Total     int               `json:"total_languages"`
}

// VoiceStatusResponse is the body of GET /voice/status.
type VoiceStatusResponse struct {
	Service             string `json:"service"`
	Status              string `json:"status"`
	ActiveConversations int    `json:"active_conversations"`
}

// =============================================================================
// VOYAGE PLANNING
// =============================================================================

// RouteRequest is the request body for POST /voyage/optimize.
type RouteRequest struct {
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
	VesselType  string   `json:"vessel_type"`
	Priorities  []string `json:"priorities"`
}

// Waypoint is a single point along a route.
type Waypoint struct {
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Sequence int     `json:"sequence,omitempty"`
}

// RouteSummary holds the metrics of one optimized route.
type RouteSummary struct {
	RouteName             string     `json:"route_name"`
	TotalDistanceNM       float64    `json:"total_distance_nm"`
	EstimatedDurationDays float64    `json:"estimated_duration_days"`
	TotalFuelMT           float64    `json:"total_fuel_consumption_mt"`
	EstimatedFuelCostUSD  float64    `json:"estimated_fuel_cost_usd"`
	TotalCostUSD          float64    `json:"total_cost_usd"`
	WeatherScore          float64    `json:"weather_score"`
	SafetyScore           float64    `json:"safety_score"`
	EfficiencyScore       float64    `json:"efficiency_score"`
	Waypoints             []Waypoint `json:"waypoints"`
}

// RouteAlternative is a lighter summary of a non-optimal candidate route.
type RouteAlternative struct {
	RouteName    string  `json:"route_name"`
	DistanceNM   float64 `json:"distance_nm"`
	DurationDays float64 `json:"duration_days"`
	FuelCostUSD  float64 `json:"fuel_cost_usd"`
	TotalScore   float64 `json:"total_score"`
}

// RouteResponse is the body of POST /voyage/optimize.
type RouteResponse struct {
	Status          string             `json:"status"`
	OptimalRoute    RouteSummary       `json:"optimal_route"`
	Alternatives    []RouteAlternative `json:"alternatives,omitempty"`
	Recommendations []string           `json:"recommendations,omitempty"`
	Priority        string             `json:"optimization_priority"`
	Timestamp       string             `json:"timestamp"`
}

// RiskRequest is the request body for POST /voyage/analyze-risks.
type RiskRequest struct {
	Route      []Waypoint `json:"route"`
	VesselType string     `json:"vessel_type"`
}

// RiskPoint flags elevated risk at one location along the route.
type RiskPoint struct {
	Location    string  `json:"location"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	RiskLevel   float64 `json:"risk_level"`
	Description string  `json:"description"`
}

// RiskAnalysis holds the per-category risk findings.
type RiskAnalysis struct {
	WeatherRisks     []RiskPoint `json:"weather_risks"`
	PiracyRisks      []RiskPoint `json:"piracy_risks"`
	CongestionRisks  []RiskPoint `json:"congestion_risks"`
	OverallRiskScore float64     `json:"overall_risk_score"`
}

// RiskSummary condenses the analysis for display.
type RiskSummary struct {
	TotalWaypoints   int    `json:"total_waypoints"`
	WeatherRiskCount int    `json:"weather_risk_points"`
	PiracyRiskCount  int    `json:"piracy_risk_points"`
	OverallRiskLevel string `json:"overall_risk_level"` // "Low", "Medium", "High"
}

// RiskResponse is the body of POST /voyage/analyze-risks.
type RiskResponse struct {
	Status    string       `json:"status"`
	Analysis  RiskAnalysis `json:"route_analysis"`
	Summary   RiskSummary  `json:"risk_summary"`
	Timestamp string       `json:"timestamp"`
}

// VesselSpec describes the vessel for fuel optimization.
type VesselSpec struct {
	Type          string  `json:"type"`
	DeadweightT   float64 `json:"deadweight_t"`
	EnginePowerKW float64 `json:"engine_power_kw"`
	FuelType      string  `json:"fuel_type"`
}

// FuelRequest is the request body for POST /voyage/fuel-optimization.
type FuelRequest struct {
	DistanceNM        float64    `json:"distance"`
	VesselSpecs       VesselSpec `json:"vessel_specs"`
	WeatherConditions string     `json:"weather_conditions,omitempty"`
}

// FuelScenario describes one speed/consumption scenario.
type FuelScenario struct {
	SpeedKnots  float64 `json:"speed_knots,omitempty"`
	Recommended float64 `json:"recommended_speed_knots,omitempty"`
	VoyageDays  float64 `json:"voyage_days"`
	DailyFuelMT float64 `json:"daily_fuel_mt"`
	TotalFuelMT float64 `json:"total_fuel_mt"`
}

// FuelSavings quantifies the gain of the optimized scenario.
type FuelSavings struct {
	FuelSavedMT        float64 `json:"fuel_saved_mt"`
	FuelSavedPercent   float64 `json:"fuel_saved_percent"`
	TimeDifferenceDays float64 `json:"time_difference_days"`
	CostSavingsUSD     float64 `json:"cost_savings_usd"`
}

// FuelPlan holds the full optimization result.
type FuelPlan struct {
	Current         FuelScenario `json:"current_scenario"`
	Optimized       FuelScenario `json:"optimized_scenario"`
	Savings         FuelSavings  `json:"savings"`
	Recommendations []string     `json:"recommendations"`
}

// FuelResponse is the body of POST /voyage/fuel-optimization.
type FuelResponse struct {
	Status    string   `json:"status"`
	Plan      FuelPlan `json:"fuel_optimization"`
	Timestamp string   `json:"timestamp"`
}

// Port describes one entry of the major-ports database.
type Port struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	MajorPort bool    `json:"major_port"`
	Region    string  `json:"region"`
}

// PortsResponse is the body of GET /voyage/ports.
type PortsResponse struct {
	Status     string   `json:"status"`
	Ports      []Port   `json:"ports"`
	TotalPorts int      `json:"total_ports"`
	Regions    []string `json:"regions_available"`
}

// LatLon is a coordinate pair.
type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ZoneBounds is the bounding box of a piracy zone.
type ZoneBounds struct {
	Southwest LatLon `json:"southwest"`
	Northeast LatLon `json:"northeast"`
}

// PiracyZone describes one risk zone.
type PiracyZone struct {
	Name         string     `json:"name"`
	RiskLevel    float64    `json:"risk_level"` // 1-10 scale
	RiskCategory string     `json:"risk_category"`
	Boundaries   ZoneBounds `json:"boundaries"`
}

// PiracyZonesResponse is the body of GET /voyage/piracy-zones.
type PiracyZonesResponse struct {
	Status     string       `json:"status"`
	Zones      []PiracyZone `json:"piracy_zones"`
	TotalZones int          `json:"total_zones"`
}
