// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/pelorus-ai/pelorus-tui/internal/ui/styles"
)

// =============================================================================
// TAB BAR COMPONENT
// =============================================================================

// TabBar renders the top navigation between the application views.
type TabBar struct {
	Labels []string
	Active int
	Width  int

	theme *styles.Theme
}

// NewTabBar creates a tab bar over the given labels.
func NewTabBar(theme *styles.Theme, labels ...string) *TabBar {
	return &TabBar{theme: theme, Labels: labels}
}

// Next advances to the following tab, wrapping around.
func (t *TabBar) Next() {
	if len(t.Labels) == 0 {
		return
	}
	t.Active = (t.Active + 1) % len(t.Labels)
}

// Prev moves to the previous tab, wrapping around.
func (t *TabBar) Prev() {
	if len(t.Labels) == 0 {
		return
	}
	t.Active = (t.Active - 1 + len(t.Labels)) % len(t.Labels)
}

// Select jumps to the tab at index i if it exists.
func (t *TabBar) Select(i int) {
	if i >= 0 && i < len(t.Labels) {
		t.Active = i
	}
}

// Render draws the tab bar.
func (t *TabBar) Render() string {
	var b strings.Builder
	for i, label := range t.Labels {
		if i > 0 {
			b.WriteString(t.theme.TabSeparator.Render("│"))
		}
		if i == t.Active {
			b.WriteString(t.theme.TabActive.Render(label))
		} else {
			b.WriteString(t.theme.Tab.Render(label))
		}
	}
	return truncate(b.String(), t.Width)
}
