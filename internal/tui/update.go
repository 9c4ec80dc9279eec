package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"dashgrid/internal/api"
	"dashgrid/internal/grid"
)

// Update handles all messages and updates the model accordingly
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch m.mode {
		case modeMove, modeResize:
			return m.updateInteraction(msg)
		default:
			return m.updateNormal(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case panelsLoadedMsg:
		m.loading = false
		m.setLayout(msg.layout)
		if err := m.engine.ApplyLayout(m.layout); err != nil {
			return m, m.notify(fmt.Sprintf("Layout error: %v", err))
		}
		m.layout = m.engine.SerializeLayout(m.layout)
		m.dirty = false

	case panelsSavedMsg:
		m.dirty = false
		return m, m.notify("Panels saved successfully")

	case calendarLoadedMsg:
		m.calendar = &msg.events

	case footballLoadedMsg:
		m.football = &msg.data

	case errMsg:
		m.loading = false
		return m, m.notify(msg.err.Error())

	case clearNotificationMsg:
		m.notification = ""

	case themeUpdatedMsg:
		m.theme = msg.theme
	}

	return m, nil
}

// updateNormal handles keys outside of an interaction
func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab", "l", "right":
		if len(m.panelKeys) > 0 {
			m.selPanel = (m.selPanel + 1) % len(m.panelKeys)
			m.selWidget = 0
		}

	case "shift+tab", "h", "left":
		if len(m.panelKeys) > 0 {
			m.selPanel = (m.selPanel - 1 + len(m.panelKeys)) % len(m.panelKeys)
			m.selWidget = 0
		}

	case "j", "down":
		if widgets := m.currentWidgets(); len(widgets) > 0 {
			m.selWidget = (m.selWidget + 1) % len(widgets)
		}

	case "k", "up":
		if widgets := m.currentWidgets(); len(widgets) > 0 {
			m.selWidget = (m.selWidget - 1 + len(widgets)) % len(widgets)
		}

	case "m":
		return m.startMove()

	case "r":
		return m.startResize(grid.SouthEast)

	case "R":
		return m.startResize(grid.South)

	case "C":
		return m.startResize(grid.East)

	case "a":
		return m.addWidget()

	case "x":
		return m.deleteWidget()

	case "w":
		return m, savePanelsCmd(m.client, m.engine.SerializeLayout(m.layout))

	case "g":
		return m, tea.Batch(
			loadPanelsCmd(m.client),
			loadCalendarCmd(m.client),
			loadFootballCmd(m.client),
		)
	}

	return m, nil
}

// updateInteraction handles keys while a move or resize is in progress
func (m Model) updateInteraction(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.engine.CancelInteraction()
		m.mode = modeNormal
		return m, m.notify("Cancelled")

	case "h", "left":
		m.pointer.Col = max(1, m.pointer.Col-1)
	case "l", "right":
		m.pointer.Col = min(m.engine.Cols(), m.pointer.Col+1)
	case "k", "up":
		m.pointer.Row = max(1, m.pointer.Row-1)
	case "j", "down":
		m.pointer.Row = min(m.engine.Rows(), m.pointer.Row+1)

	case "enter":
		return m.finalizeInteraction()
	}

	return m, nil
}

func (m Model) startMove() (tea.Model, tea.Cmd) {
	w := m.selectedWidget()
	if w == nil {
		return m, nil
	}
	if err := m.engine.StartDrag(w.ID); err != nil {
		return m, m.notify(err.Error())
	}
	pos, _ := m.engine.PositionOf(w.ID)
	m.origin = pos
	m.pointer = grid.Cell{Row: pos.StartRow, Col: pos.StartCol}
	m.mode = modeMove
	return m, nil
}

func (m Model) startResize(dir grid.Direction) (tea.Model, tea.Cmd) {
	w := m.selectedWidget()
	if w == nil {
		return m, nil
	}
	if err := m.engine.StartResize(w.ID, dir); err != nil {
		return m, m.notify(err.Error())
	}
	pos, _ := m.engine.PositionOf(w.ID)
	m.origin = pos
	m.pointer = grid.Cell{Row: pos.EndRow - 1, Col: pos.EndCol - 1}
	m.mode = modeResize
	return m, nil
}

func (m Model) finalizeInteraction() (tea.Model, tea.Cmd) {
	var (
		committed grid.Position
		reverted  bool
		err       error
	)
	if m.mode == modeMove {
		committed, reverted, err = m.engine.FinalizeDrag(m.pointer)
	} else {
		committed, reverted, err = m.engine.FinalizeResize(m.pointer)
	}
	m.mode = modeNormal
	if err != nil {
		return m, m.notify(err.Error())
	}

	m.layout = m.engine.SerializeLayout(m.layout)
	if reverted {
		return m, m.notify("No room there, kept the old spot")
	}
	if committed != m.origin {
		m.dirty = true
	}
	return m, nil
}

func (m Model) addWidget() (tea.Model, tea.Cmd) {
	key := m.currentPanelKey()
	if key == "" {
		return m, m.notify("No panel selected")
	}

	id := time.Now().UnixMilli()
	pos, err := m.engine.Add(id, grid.DefaultWidgetWidth, grid.DefaultWidgetHeight)
	if err != nil {
		return m, m.notify("No space left on the grid")
	}

	panel := m.layout[key]
	panel.Widgets = append(panel.Widgets, api.Widget{
		ID:    id,
		Title: "New widget",
		Area:  pos.String(),
	})
	m.layout[key] = panel
	m.selWidget = len(panel.Widgets) - 1
	m.dirty = true
	return m, nil
}

func (m Model) deleteWidget() (tea.Model, tea.Cmd) {
	w := m.selectedWidget()
	if w == nil {
		return m, nil
	}
	key := m.currentPanelKey()

	m.engine.Remove(w.ID)
	panel := m.layout[key]
	panel.Widgets = append(panel.Widgets[:m.selWidget], panel.Widgets[m.selWidget+1:]...)
	m.layout[key] = panel
	m.clampWidgetSelection()
	m.dirty = true
	return m, nil
}
