package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"dashgrid/internal/api"
	"dashgrid/internal/grid"
)

// Cache the Glamour renderer; creating one per frame is expensive
var (
	rendererOnce sync.Once
	renderer     *glamour.TermRenderer
)

func markdown(content string) string {
	rendererOnce.Do(func() {
		renderer, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(widgetWidth-4),
		)
	})
	if renderer == nil || content == "" {
		return content
	}
	out, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimSpace(out)
}

// View renders the whole dashboard
func (m Model) View() string {
	st := newStyles(m.theme.Accent, m.theme.Border, m.theme.ActiveBorder, m.theme.Muted)

	var b strings.Builder
	b.WriteString(st.title.Render("dashgrid"))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(st.muted.Render(" loading dashboard..."))
		b.WriteString("\n")
	} else if len(m.panelKeys) == 0 {
		b.WriteString(st.muted.Render("No panels loaded. Press g to refresh."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderPanels(st))
		b.WriteString("\n")
	}

	if m.mode != modeNormal {
		b.WriteString("\n")
		b.WriteString(m.renderGrid(st))
		b.WriteString("\n")
	}

	if m.calendar != nil || m.football != nil {
		b.WriteString("\n")
		b.WriteString(m.renderSidebar(st))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatus(st))
	return b.String()
}

// renderPanels draws every panel side by side, selected one highlighted.
func (m Model) renderPanels(st styles) string {
	rendered := make([]string, 0, len(m.panelKeys))
	for i, key := range m.panelKeys {
		panelStyle := st.panel
		if i == m.selPanel {
			panelStyle = st.activePanel
		}
		rendered = append(rendered, panelStyle.Render(m.renderPanel(st, key, i == m.selPanel)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderPanel(st styles, key string, selected bool) string {
	panel := m.layout[key]

	var b strings.Builder
	b.WriteString(st.title.Render(panel.Title))
	b.WriteString("\n")

	// Large widgets take a full row; multiple smalls share one
	for _, row := range grid.GroupPanelRows(panel.Widgets) {
		cards := make([]string, 0, len(row))
		for _, w := range row {
			cards = append(cards, m.renderWidget(st, key, w, selected, len(row)))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
		b.WriteString("\n")
	}

	if len(panel.Widgets) == 0 {
		b.WriteString(st.muted.Render("empty · press a to add"))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderWidget(st styles, panelKey string, w api.Widget, panelSelected bool, rowSize int) string {
	style := st.widget
	isSelected := panelSelected && m.isSelectedWidget(panelKey, w.ID)
	switch {
	case isSelected && m.mode != modeNormal:
		style = st.movingWidget
	case isSelected:
		style = st.activeWidget
	}
	if rowSize > 1 {
		style = style.Width(widgetWidth/rowSize - 1)
	}

	var b strings.Builder
	title := w.Title
	if w.Color != "" {
		title = lipgloss.NewStyle().Foreground(lipgloss.Color(w.Color)).Bold(true).Render(w.Title)
	}
	b.WriteString(title)
	if w.Content != "" {
		b.WriteString("\n")
		b.WriteString(markdown(w.Content))
	}
	if w.Area != "" {
		b.WriteString("\n")
		b.WriteString(st.muted.Render(w.Area))
	}
	return style.Render(b.String())
}

func (m Model) isSelectedWidget(panelKey string, id int64) bool {
	if panelKey != m.currentPanelKey() {
		return false
	}
	w := m.selectedWidget()
	return w != nil && w.ID == id
}

// renderGrid draws the occupancy map during a move or resize, with the
// pointer cell marked.
func (m Model) renderGrid(st styles) string {
	positions := m.engine.Positions()
	activeID, _ := m.engine.ActiveInteraction()

	var b strings.Builder
	b.WriteString(st.muted.Render(fmt.Sprintf("grid %dx%d · arrows move · enter drop · esc cancel",
		m.engine.Rows(), m.engine.Cols())))
	b.WriteString("\n")

	for row := 1; row <= m.engine.Rows(); row++ {
		for col := 1; col <= m.engine.Cols(); col++ {
			cell := grid.Cell{Row: row, Col: col}
			switch {
			case cell == m.pointer:
				b.WriteString(st.gridActive.Render("◎ "))
			case m.cellOwner(positions, row, col) == activeID && activeID != 0:
				b.WriteString(st.gridActive.Render("▣ "))
			case m.cellOwner(positions, row, col) != 0:
				b.WriteString(st.gridFilled.Render("■ "))
			default:
				b.WriteString(st.gridCell.Render("· "))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) cellOwner(positions map[int64]grid.Position, row, col int) int64 {
	for id, pos := range positions {
		if row >= pos.StartRow && row < pos.EndRow && col >= pos.StartCol && col < pos.EndCol {
			return id
		}
	}
	return 0
}

// renderSidebar shows the calendar and football summaries.
func (m Model) renderSidebar(st styles) string {
	var sections []string

	if m.calendar != nil && len(m.calendar.Events) > 0 {
		var b strings.Builder
		b.WriteString(st.title.Render(fmt.Sprintf("Calendar (%s)", m.calendar.Source)))
		b.WriteString("\n")
		for i, e := range m.calendar.Events {
			if i >= 4 {
				break
			}
			b.WriteString(fmt.Sprintf("%s  %s",
				st.muted.Render(e.Start.Format("Mon 15:04")), e.Title))
			b.WriteString("\n")
		}
		sections = append(sections, st.panel.Render(b.String()))
	}

	if m.football != nil {
		f := m.football
		var b strings.Builder
		b.WriteString(st.title.Render(f.TeamInfo.Team.Name))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("#%d · %d pts · %dW %dD %dL\n",
			f.Standings.Position, f.Standings.Points,
			f.Standings.Wins, f.Standings.Draws, f.Standings.Losses))
		if len(f.Fixtures) > 0 {
			next := f.Fixtures[0]
			b.WriteString(st.muted.Render(fmt.Sprintf("next: %s vs %s",
				next.Teams.Home.Name, next.Teams.Away.Name)))
			b.WriteString("\n")
		}
		sections = append(sections, st.panel.Render(b.String()))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, sections...)
}

func (m Model) renderStatus(st styles) string {
	if m.notification != "" {
		return st.statusBar.Render(m.notification)
	}

	help := "tab panel · j/k widget · m move · r resize · a add · x delete · w save · g refresh · q quit"
	if m.dirty {
		help = "unsaved changes · " + help
	}
	return st.muted.Render(help)
}
