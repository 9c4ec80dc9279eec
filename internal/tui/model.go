// Package tui is the terminal dashboard client. It renders the panel layout,
// drives the grid placement engine for move/resize interactions, and saves
// full layout snapshots back through the HTTP API.
package tui

import (
	"sort"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dashgrid/internal/api"
	"dashgrid/internal/calendar"
	"dashgrid/internal/config"
	"dashgrid/internal/football"
	"dashgrid/internal/grid"
)

// mode is the client interaction mode
type mode int

const (
	modeNormal mode = iota
	modeMove
	modeResize
)

// Model represents the application state for the TUI
type Model struct {
	client *Client
	engine *grid.Engine
	theme  config.ThemeConfig

	layout    api.Layout
	panelKeys []string
	selPanel  int
	selWidget int

	mode    mode
	pointer grid.Cell
	// origin is the active widget's rectangle before the interaction,
	// kept to detect a reverted drop
	origin grid.Position

	calendar *calendar.EventsResponse
	football *football.Data

	notification string
	dirty        bool
	loading      bool
	spinner      spinner.Model
	width        int
	height       int
}

// InitialModel creates the TUI model; data loads through Init commands.
func InitialModel(client *Client, cfg *config.Config) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Theme.Accent))

	return Model{
		client:  client,
		engine:  grid.New(cfg.Grid.Rows, cfg.Grid.Cols),
		theme:   cfg.Theme,
		layout:  api.Layout{},
		loading: true,
		spinner: sp,
	}
}

// Init kicks off the initial data loads.
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		loadPanelsCmd(m.client),
		loadCalendarCmd(m.client),
		loadFootballCmd(m.client),
	)
}

// setLayout installs a fresh layout and re-derives every view index.
func (m *Model) setLayout(layout api.Layout) {
	m.layout = layout
	m.panelKeys = make([]string, 0, len(layout))
	for key := range layout {
		m.panelKeys = append(m.panelKeys, key)
	}
	sort.Strings(m.panelKeys)

	if m.selPanel >= len(m.panelKeys) {
		m.selPanel = 0
	}
	m.clampWidgetSelection()
}

// currentPanelKey returns the selected panel's key, or "" with no panels.
func (m Model) currentPanelKey() string {
	if len(m.panelKeys) == 0 {
		return ""
	}
	return m.panelKeys[m.selPanel]
}

// currentWidgets returns the selected panel's widget list.
func (m Model) currentWidgets() []api.Widget {
	key := m.currentPanelKey()
	if key == "" {
		return nil
	}
	return m.layout[key].Widgets
}

// selectedWidget returns a copy of the selected widget, or nil.
func (m Model) selectedWidget() *api.Widget {
	widgets := m.currentWidgets()
	if len(widgets) == 0 || m.selWidget >= len(widgets) {
		return nil
	}
	w := widgets[m.selWidget]
	return &w
}

func (m *Model) clampWidgetSelection() {
	widgets := m.currentWidgets()
	if m.selWidget >= len(widgets) {
		m.selWidget = 0
		if len(widgets) > 0 {
			m.selWidget = len(widgets) - 1
		}
	}
}

// notify sets the status line and schedules its clearing.
func (m *Model) notify(text string) tea.Cmd {
	m.notification = text
	return clearNotificationAfter(notificationTimeout)
}
