// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the pelorus TUI.
//
// All colors are Lip Gloss AdaptiveColor values, so light and dark
// terminals both get a readable palette without configuration.
//
// # Key Types
//
//   - Theme: All styled components, built once per terminal size
//
// # Usage
//
//	theme := styles.NewTheme(width, height)
//	fmt.Print(theme.UserBubble.Render("hello"))
package styles
