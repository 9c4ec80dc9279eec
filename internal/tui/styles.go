package tui

import "github.com/charmbracelet/lipgloss"

// Style definitions for the dashboard UI
// These styles follow Lipgloss conventions for composable terminal styling

const (
	panelWidth  = 38
	widgetWidth = 34
)

// styles holds the theme-derived style set, built once per model.
type styles struct {
	title        lipgloss.Style
	panel        lipgloss.Style
	activePanel  lipgloss.Style
	widget       lipgloss.Style
	activeWidget lipgloss.Style
	movingWidget lipgloss.Style
	muted        lipgloss.Style
	statusBar    lipgloss.Style
	gridCell     lipgloss.Style
	gridFilled   lipgloss.Style
	gridActive   lipgloss.Style
}

func newStyles(accent, border, activeBorder, muted string) styles {
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(accent)),

		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(border)).
			Padding(0, 1).
			Width(panelWidth),

		activePanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(activeBorder)).
			Padding(0, 1).
			Width(panelWidth),

		widget: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(border)).
			Padding(0, 1).
			Width(widgetWidth),

		activeWidget: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(activeBorder)).
			Padding(0, 1).
			Width(widgetWidth),

		movingWidget: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color(accent)).
			Padding(0, 1).
			Width(widgetWidth),

		muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(muted)),

		statusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(accent)).
			Bold(true),

		gridCell: lipgloss.NewStyle().
			Foreground(lipgloss.Color(muted)),

		gridFilled: lipgloss.NewStyle().
			Foreground(lipgloss.Color(border)),

		gridActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(accent)).
			Bold(true),
	}
}
