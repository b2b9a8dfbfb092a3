// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package toolbox

import (
	"fmt"
	"strings"

	"github.com/pelorus-ai/pelorus-tui/internal/api"
	"github.com/pelorus-ai/pelorus-tui/internal/model"
)

// View renders the direct tools view.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.view.View())
	b.WriteString("\n")

	switch {
	case m.busy:
		b.WriteString(m.spin.View())
		b.WriteString(m.theme.ThinkingText.Render(" working…"))
	case m.notice != "":
		b.WriteString(m.theme.MutedText.Render(m.notice))
	default:
		b.WriteString(m.theme.ShortcutDesc.Render("^t switch tool  ^x clear log"))
	}
	b.WriteString("\n")

	b.WriteString(m.theme.InputContainer.Width(m.width - 2).Render(
		m.theme.ToolBadge.Render(m.tool.Label()) + " " + m.input.View()))
	return b.String()
}

// renderEntry draws one tool log entry.
func (m *Model) renderEntry(entry *model.ToolResponseEntry) string {
	var b strings.Builder

	b.WriteString(m.theme.Timestamp.Render(entry.Timestamp.Format("15:04")))
	b.WriteString(" ")
	b.WriteString(m.theme.ToolBadge.Render(string(entry.Kind)))
	b.WriteString(" ")
	switch entry.Kind {
	case model.ToolAIQuery:
		b.WriteString(m.theme.Value.Render(entry.Query))
	case model.ToolDocument:
		b.WriteString(m.theme.Attachment.Render(entry.Filename))
	case model.ToolWeather:
		b.WriteString(m.theme.Value.Render(entry.PortName))
		if entry.Coordinates != nil {
			b.WriteString(m.theme.MutedText.Render(
				fmt.Sprintf(" (%.2f, %.2f)", entry.Coordinates.Lat, entry.Coordinates.Lon)))
		}
	}
	b.WriteString("\n")

	if entry.Response.IsError() {
		b.WriteString(m.theme.ErrorText.Render(entry.Response.Answer))
	} else if entry.Kind == model.ToolWeather && entry.Response.Weather != nil {
		b.WriteString(m.renderWeather(entry.Response.Weather))
	} else {
		b.WriteString(m.theme.Value.Render(entry.Response.Answer))
	}
	b.WriteString("\n")
	return b.String()
}

// renderWeather draws the forecast with adverse periods highlighted.
func (m *Model) renderWeather(w *api.WeatherResponse) string {
	var b strings.Builder
	for i, f := range w.Forecast {
		if i >= 8 {
			break
		}
		fmt.Fprintf(&b, "%s %s %.1f°C\n",
			m.theme.Label.Render(f.Time),
			m.theme.Value.Render(f.Condition),
			f.Temperature)
	}
	for _, period := range w.BadPeriods {
		if len(period) == 2 {
			b.WriteString(m.theme.ErrorText.Render("⚠ adverse weather " + period[0] + " – " + period[1]))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// weatherSummary condenses a forecast into one line for the entry text.
func weatherSummary(w *api.WeatherResponse) string {
	if len(w.Forecast) == 0 {
		return "No forecast available."
	}
	first := w.Forecast[0]
	summary := fmt.Sprintf("%s, %.1f°C", first.Condition, first.Temperature)
	if len(w.BadPeriods) > 0 {
		summary += fmt.Sprintf(", %d adverse period(s)", len(w.BadPeriods))
	}
	return summary
}
