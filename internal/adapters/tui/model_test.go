package tui_test

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/quill/internal/adapters/tui"
	"go.trai.ch/quill/internal/core/domain"
)

func update(t *testing.T, m tui.Model, msg tea.Msg) tui.Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(tui.Model)
	require.True(t, ok)
	return model
}

func TestModel_Report(t *testing.T) {
	m := tui.NewModel()
	m = update(t, m, tui.MsgReport{
		Order:  []string{"layout.html", "page.html"},
		Status: map[string]domain.RunStatus{"layout.html": domain.StatusCompleted, "page.html": domain.StatusFailed},
		Err:    errors.New("page broke"),
	})

	require.Len(t, m.Units, 2)
	assert.Equal(t, "layout.html", m.Units[0].Key)
	assert.Equal(t, domain.StatusFailed, m.UnitMap["page.html"].Status)
	assert.Equal(t, 1, m.Runs)
	assert.Contains(t, m.Log[0], "page broke")

	m = update(t, m, tui.MsgReport{
		Order:  []string{"page.html", "about.html"},
		Status: map[string]domain.RunStatus{"page.html": domain.StatusCompleted, "about.html": domain.StatusCompleted},
	})
	require.Len(t, m.Units, 3)
	assert.Equal(t, "about.html", m.Units[0].Key, "units stay sorted")
	assert.Equal(t, domain.StatusCompleted, m.UnitMap["page.html"].Status)
	assert.Len(t, m.Log, 2)
}

func TestModel_Quit(t *testing.T) {
	m := tui.NewModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_WindowSize(t *testing.T) {
	m := update(t, tui.NewModel(), tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, 28, m.Viewport.Height)
	assert.Equal(t, 56, m.Viewport.Width)
}

func TestView(t *testing.T) {
	m := tui.NewModel()
	assert.Contains(t, m.View(), "Initializing...")

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 20})
	m = update(t, m, tui.MsgWatching{Home: "/site/templates"})
	m = update(t, m, tui.MsgReport{
		Order: []string{"a.html", "b.html", "c.html", "d.html"},
		Status: map[string]domain.RunStatus{
			"a.html": domain.StatusCompleted,
			"b.html": domain.StatusFailed,
			"c.html": domain.StatusSkipped,
			"d.html": domain.StatusPending,
		},
	})

	out := m.View()
	for _, want := range []string{"TEMPLATES", "RELOADS: /site/templates", "✓ a.html", "✗ b.html", "- c.html", "○ d.html", "run 1: 4 templates"} {
		assert.Contains(t, out, want)
	}
}
