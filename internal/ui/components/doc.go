// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the pelorus TUI.
//
// # Key Types
//
//   - TabBar: Top navigation between the application views
//   - StatusBar: Bottom bar with backend health and voice indicators
//   - MessageRenderer: Conversation bubbles with markdown answers
package components
