// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversation history and responses.
//
// This package defines the core domain types used throughout the application
// for representing chat messages, tagged backend responses, and the
// append-only history stores behind each tab.
//
// # Key Types
//
//   - Response: tagged union (agentic, direct, voice, weather, document,
//     error) discriminated by Kind; built only through its constructors
//   - Message: single history entry with role, timestamp, and either a
//     user query or an assistant Response
//   - History: append-only message store with monotonic ids and bulk clear
//   - ToolLog / ToolResponseEntry: same store shape for direct-tool results
//
// # Usage
//
// Append a completed exchange:
//
//	history := model.NewHistory()
//	history.AppendUser("weather in Singapore", nil)
//	history.AppendAssistant(model.NewAgenticResponse(answer, tools, plan, 0.9))
//
// Failures become error-kind responses, never missing entries:
//
//	history.AppendAssistant(model.NewErrorResponse(err.Error()))
package model
