package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"dashgrid/internal/api"
	"dashgrid/internal/config"
)

func newTestModel(t *testing.T) Model {
	t.Helper()

	cfg := &config.Config{}
	cfg.Grid.Rows = 8
	cfg.Grid.Cols = 6
	cfg.Theme = config.ThemeConfig{
		Accent:       "#00d563",
		Border:       "#444444",
		ActiveBorder: "#00d563",
		Muted:        "#888888",
	}
	return InitialModel(NewClient("http://localhost:3000"), cfg)
}

func testLayout() api.Layout {
	return api.Layout{
		"tasks": {
			Title: "Tasks",
			Widgets: []api.Widget{
				{ID: 1, Title: "Today", Area: "1 / 1 / 3 / 3"},
				{ID: 2, Title: "Backlog", Area: "1 / 3 / 3 / 5"},
			},
		},
		"notes": {
			Title: "Notes",
			Widgets: []api.Widget{
				{ID: 3, Title: "Scratch", Area: "3 / 1 / 5 / 3"},
			},
		},
	}
}

func loadedModel(t *testing.T) Model {
	t.Helper()

	m := newTestModel(t)
	updated, _ := m.Update(panelsLoadedMsg{layout: testLayout()})
	return updated.(Model)
}

func keyPress(m Model, key string) Model {
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func TestPanelsLoadedSortsKeys(t *testing.T) {
	t.Parallel()

	m := loadedModel(t)

	if len(m.panelKeys) != 2 {
		t.Fatalf("Expected 2 panel keys, got %d", len(m.panelKeys))
	}
	if m.panelKeys[0] != "notes" || m.panelKeys[1] != "tasks" {
		t.Errorf("Expected sorted keys [notes tasks], got %v", m.panelKeys)
	}
	if m.dirty {
		t.Error("Expected freshly loaded model to be clean")
	}
}

func TestPanelsLoadedPlacesWidgets(t *testing.T) {
	t.Parallel()

	m := loadedModel(t)

	for _, id := range []int64{1, 2, 3} {
		if _, ok := m.engine.PositionOf(id); !ok {
			t.Errorf("Expected widget %d to be placed on the grid", id)
		}
	}
}

func TestTabCyclesPanels(t *testing.T) {
	t.Parallel()

	m := loadedModel(t)
	if m.currentPanelKey() != "notes" {
		t.Fatalf("Expected first panel notes, got %s", m.currentPanelKey())
	}

	m = keyPress(m, "tab")
	if m.currentPanelKey() != "tasks" {
		t.Errorf("Expected tasks after tab, got %s", m.currentPanelKey())
	}

	m = keyPress(m, "tab")
	if m.currentPanelKey() != "notes" {
		t.Errorf("Expected wrap back to notes, got %s", m.currentPanelKey())
	}
}

func TestWidgetSelectionCycles(t *testing.T) {
	t.Parallel()

	m := loadedModel(t)
	m = keyPress(m, "tab") // tasks, two widgets

	if w := m.selectedWidget(); w == nil || w.ID != 1 {
		t.Fatalf("Expected widget 1 selected, got %+v", w)
	}

	m = keyPress(m, "j")
	if w := m.selectedWidget(); w == nil || w.ID != 2 {
		t.Errorf("Expected widget 2 after j, got %+v", w)
	}

	m = keyPress(m, "j")
	if w := m.selectedWidget(); w == nil || w.ID != 1 {
		t.Errorf("Expected wrap to widget 1, got %+v", w)
	}
}

func TestMoveCommitsToNewPosition(t *testing.T) {
	t.Parallel()

	m := loadedModel(t)
	m = keyPress(m, "m") // move widget 3 (notes panel)

	if m.mode != modeMove {
		t.Fatalf("Expected move mode, got %v", m.mode)
	}

	// Widget 3 starts at row 3; drop it two rows down
	m = keyPress(m, "j")
	m = keyPress(m, "j")
	m = keyPress(m, "enter")

	if m.mode != modeNormal {
		t.Errorf("Expected normal mode after drop, got %v", m.mode)
	}
	pos, ok := m.engine.PositionOf(3)
	if !ok {
		t.Fatal("Expected widget 3 to remain placed")
	}
	if pos.StartRow != 5 || pos.StartCol != 1 {
		t.Errorf("Expected widget at 5/1, got %d/%d", pos.StartRow, pos.StartCol)
	}
	if !m.dirty {
		t.Error("Expected dirty flag after a committed move")
	}
	if m.layout["notes"].Widgets[0].Area != pos.String() {
		t.Errorf("Expected layout area %s, got %s", pos.String(), m.layout["notes"].Widgets[0].Area)
	}
}

func TestMoveRevertsOnOccupiedDrop(t *testing.T) {
	t.Parallel()

	m := loadedModel(t)
	before, _ := m.engine.PositionOf(3)

	m = keyPress(m, "m")
	// Point at widget 1's cell; the drop must revert, not error
	m = keyPress(m, "k")
	m = keyPress(m, "k")
	m = keyPress(m, "enter")

	after, _ := m.engine.PositionOf(3)
	if after != before {
		t.Errorf("Expected reverted position %v, got %v", before, after)
	}
	if m.dirty {
		t.Error("Expected clean model after a reverted drop")
	}
	if m.notification == "" {
		t.Error("Expected a notification explaining the revert")
	}
}

func TestMoveDropOnOriginalAnchorIsQuiet(t *testing.T) {
	t.Parallel()

	m := loadedModel(t)
	before, _ := m.engine.PositionOf(3)

	m = keyPress(m, "m")
	m = keyPress(m, "enter") // drop without moving the pointer

	if m.notification != "" {
		t.Errorf("Expected no notification for an in-place drop, got %q", m.notification)
	}
	if m.dirty {
		t.Error("Expected clean model after an in-place drop")
	}
	after, _ := m.engine.PositionOf(3)
	if after != before {
		t.Errorf("Expected unchanged position %v, got %v", before, after)
	}
}

func TestEscCancelsInteraction(t *testing.T) {
	t.Parallel()

	m := loadedModel(t)
	before, _ := m.engine.PositionOf(3)

	m = keyPress(m, "m")
	m = keyPress(m, "j")
	m = keyPress(m, "esc")

	if m.mode != modeNormal {
		t.Errorf("Expected normal mode after esc, got %v", m.mode)
	}
	after, _ := m.engine.PositionOf(3)
	if after != before {
		t.Errorf("Expected untouched position %v, got %v", before, after)
	}
	if _, active := m.engine.ActiveInteraction(); active {
		t.Error("Expected no active interaction after esc")
	}
}

func TestResizeGrowsWidget(t *testing.T) {
	t.Parallel()

	m := loadedModel(t)
	m = keyPress(m, "r") // southeast resize of widget 3

	if m.mode != modeResize {
		t.Fatalf("Expected resize mode, got %v", m.mode)
	}

	m = keyPress(m, "j")
	m = keyPress(m, "enter")

	pos, _ := m.engine.PositionOf(3)
	if pos.EndRow != 6 {
		t.Errorf("Expected end row 6 after growing, got %d", pos.EndRow)
	}
	if !m.dirty {
		t.Error("Expected dirty flag after a resize")
	}
}

func TestAddWidgetFindsFreeSlot(t *testing.T) {
	t.Parallel()

	m := loadedModel(t)
	before := len(m.currentWidgets())

	m = keyPress(m, "a")

	widgets := m.currentWidgets()
	if len(widgets) != before+1 {
		t.Fatalf("Expected %d widgets, got %d", before+1, len(widgets))
	}
	added := widgets[len(widgets)-1]
	if added.Area == "" {
		t.Error("Expected new widget to receive a grid area")
	}
	if _, ok := m.engine.PositionOf(added.ID); !ok {
		t.Error("Expected new widget to be placed on the grid")
	}
	if !m.dirty {
		t.Error("Expected dirty flag after adding a widget")
	}
}

func TestDeleteWidgetFreesGridSpace(t *testing.T) {
	t.Parallel()

	m := loadedModel(t)
	m = keyPress(m, "x") // widget 3

	if len(m.layout["notes"].Widgets) != 0 {
		t.Errorf("Expected empty notes panel, got %d widgets", len(m.layout["notes"].Widgets))
	}
	if _, ok := m.engine.PositionOf(3); ok {
		t.Error("Expected widget 3 removed from the grid")
	}
}

func TestSavedMessageClearsDirty(t *testing.T) {
	t.Parallel()

	m := loadedModel(t)
	m = keyPress(m, "a")
	if !m.dirty {
		t.Fatal("Expected dirty model before save")
	}

	updated, _ := m.Update(panelsSavedMsg{})
	m = updated.(Model)

	if m.dirty {
		t.Error("Expected clean model after save confirmation")
	}
	if m.notification != "Panels saved successfully" {
		t.Errorf("Expected save notification, got %q", m.notification)
	}
}

func TestNotificationClears(t *testing.T) {
	t.Parallel()

	m := loadedModel(t)
	updated, _ := m.Update(panelsSavedMsg{})
	m = updated.(Model)

	updated, _ = m.Update(clearNotificationMsg{})
	m = updated.(Model)

	if m.notification != "" {
		t.Errorf("Expected cleared notification, got %q", m.notification)
	}
}

func TestThemeUpdateAppliesLive(t *testing.T) {
	t.Parallel()

	m := loadedModel(t)

	updated, _ := m.Update(themeUpdatedMsg{theme: config.ThemeConfig{
		Accent:       "#ff00ff",
		Border:       "#222222",
		ActiveBorder: "#ff00ff",
		Muted:        "#666666",
	}})
	m = updated.(Model)

	if m.theme.Accent != "#ff00ff" {
		t.Errorf("Expected updated accent '#ff00ff', got '%s'", m.theme.Accent)
	}
}

func TestViewRendersWithoutPanels(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	out := m.View()
	if out == "" {
		t.Error("Expected non-empty view")
	}
}

func TestViewRendersGridDuringMove(t *testing.T) {
	t.Parallel()

	m := loadedModel(t)
	m = keyPress(m, "m")

	out := m.View()
	if out == "" {
		t.Fatal("Expected non-empty view")
	}
	if m.mode != modeMove {
		t.Fatalf("Expected move mode, got %v", m.mode)
	}
}
