package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/quill/internal/core/domain"
)

// View renders the unit list next to the reload log.
//
//nolint:gocritic // hugeParam ignored
func (m Model) View() string {
	if m.Viewport.Height == 0 {
		return "Initializing..."
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.unitList(),
		m.logPane(),
	)
}

//nolint:gocritic // hugeParam ignored
func (m Model) unitList() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("TEMPLATES") + "\n\n")

	for _, unit := range m.Units {
		var style lipgloss.Style
		var icon string

		switch unit.Status {
		case domain.StatusRunning:
			style = unitRunningStyle
			icon = m.Spinner.View()
		case domain.StatusCompleted:
			style = unitDoneStyle
			icon = "✓"
		case domain.StatusFailed:
			style = unitErrorStyle
			icon = "✗"
		case domain.StatusSkipped:
			style = unitSkippedStyle
			icon = "-"
		default:
			style = unitPendingStyle
			icon = "○"
		}

		s.WriteString(style.Render(fmt.Sprintf("%s %s", icon, unit.Key)) + "\n")
	}

	return listStyle.Render(s.String())
}

//nolint:gocritic // hugeParam ignored
func (m Model) logPane() string {
	header := titleStyle.Render("RELOADS")
	if m.Home != "" {
		header = titleStyle.Render("RELOADS: " + m.Home)
	}

	return logStyle.Render(
		lipgloss.JoinVertical(
			lipgloss.Left,
			header,
			m.Viewport.View(),
		),
	)
}
