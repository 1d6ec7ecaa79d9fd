// Package tui provides the terminal dashboard of the watch command.
package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/quill/internal/core/domain"
)

const (
	unitListWidthRatio = 0.4
	logPaneBorderWidth = 4
)

// UnitNode represents a single template in the UI list.
type UnitNode struct {
	Key    string
	Status domain.RunStatus
}

// Model represents the dashboard state.
type Model struct {
	Units    []*UnitNode
	UnitMap  map[string]*UnitNode
	Viewport viewport.Model
	Spinner  spinner.Model
	Home     string
	Runs     int
	Log      []string
}

// NewModel creates a new dashboard model.
func NewModel() Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = unitRunningStyle

	return Model{
		Units:    make([]*UnitNode, 0),
		UnitMap:  make(map[string]*UnitNode),
		Viewport: viewport.New(0, 0),
		Spinner:  s,
	}
}

// Init starts the spinner.
//
//nolint:gocritic // hugeParam ignored
func (m Model) Init() tea.Cmd {
	return m.Spinner.Tick
}

// Update handles incoming messages and updates the model state.
//
//nolint:gocritic // hugeParam ignored
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		listWidth := int(float64(msg.Width) * unitListWidthRatio)
		m.Viewport.Width = msg.Width - listWidth - logPaneBorderWidth
		m.Viewport.Height = msg.Height - 2

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case MsgWatching:
		m.Home = msg.Home
		m = m.appendLog("watching " + msg.Home)

	case MsgReport:
		m = m.applyReport(msg)
	}

	return m, nil
}

//nolint:gocritic // hugeParam ignored
func (m Model) applyReport(msg MsgReport) Model {
	m.Runs++
	for _, key := range msg.Order {
		node, ok := m.UnitMap[key]
		if !ok {
			node = &UnitNode{Key: key}
			m.UnitMap[key] = node
			m.Units = append(m.Units, node)
		}
		node.Status = msg.Status[key]
	}
	slices.SortFunc(m.Units, func(a, b *UnitNode) int { return strings.Compare(a.Key, b.Key) })

	line := fmt.Sprintf("run %d: %d templates", m.Runs, len(msg.Order))
	if msg.Err != nil {
		line += "\n" + msg.Err.Error()
	}
	return m.appendLog(line)
}

//nolint:gocritic // hugeParam ignored
func (m Model) appendLog(line string) Model {
	m.Log = append(slices.Clone(m.Log), line)
	m.Viewport.SetContent(strings.Join(m.Log, "\n"))
	m.Viewport.GotoBottom()
	return m
}
