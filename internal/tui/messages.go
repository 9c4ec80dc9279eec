package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"dashgrid/internal/api"
	"dashgrid/internal/calendar"
	"dashgrid/internal/config"
	"dashgrid/internal/football"
)

// notificationTimeout is how long status messages stay on screen.
const notificationTimeout = 4 * time.Second

// Messages flowing through the update loop

type panelsLoadedMsg struct{ layout api.Layout }

type panelsSavedMsg struct{}

type calendarLoadedMsg struct{ events calendar.EventsResponse }

type footballLoadedMsg struct{ data football.Data }

type errMsg struct{ err error }

type clearNotificationMsg struct{}

type themeUpdatedMsg struct{ theme config.ThemeConfig }

// ThemeUpdated wraps a fresh theme for delivery into a running program, used
// by the config file watcher.
func ThemeUpdated(theme config.ThemeConfig) tea.Msg {
	return themeUpdatedMsg{theme: theme}
}

// Commands

func loadPanelsCmd(client *Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		layout, err := client.GetPanels(ctx)
		if err != nil {
			return errMsg{err}
		}
		return panelsLoadedMsg{layout}
	}
}

func savePanelsCmd(client *Client, layout api.Layout) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.SavePanels(ctx, layout); err != nil {
			return errMsg{err}
		}
		return panelsSavedMsg{}
	}
}

func loadCalendarCmd(client *Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		events, err := client.CalendarEvents(ctx)
		if err != nil {
			return errMsg{err}
		}
		return calendarLoadedMsg{events}
	}
}

func loadFootballCmd(client *Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		data, err := client.Football(ctx)
		if err != nil {
			return errMsg{err}
		}
		return footballLoadedMsg{data}
	}
}

func clearNotificationAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearNotificationMsg{}
	})
}
