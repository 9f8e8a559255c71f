package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func samplePickItems() []PickItem {
	return []PickItem{
		{Number: 1, Name: "explain", Category: "coding"},
		{Number: 2, Name: "review", Category: "coding"},
		{Number: 3, Name: "brainstorm", Category: "Root"},
	}
}

func update(t *testing.T, m PickerModel, msg tea.Msg) (PickerModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	pm, ok := next.(PickerModel)
	if !ok {
		t.Fatalf("Update returned %T, want PickerModel", next)
	}
	return pm, cmd
}

func TestPicker_ChooseAfterMovingDown(t *testing.T) {
	m := NewPicker(samplePickItems())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if cmd == nil {
		t.Fatal("enter should quit the program")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("enter should return tea.Quit")
	}
	item, ok := m.Chosen()
	if !ok {
		t.Fatal("expected a chosen item")
	}
	if item.Number != 2 || item.Name != "review" {
		t.Errorf("chosen: got %+v, want #2 review", item)
	}
}

func TestPicker_QuitWithoutChoosing(t *testing.T) {
	m := NewPicker(samplePickItems())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should quit the program")
	}
	if _, ok := m.Chosen(); ok {
		t.Error("quitting should not choose an item")
	}
}

func TestPicker_WindowResize(t *testing.T) {
	m := NewPicker(samplePickItems())

	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	if cmd != nil {
		t.Error("resize should not issue a command")
	}
	if m.View() == "" {
		t.Error("view should not be empty")
	}
}

func TestPickItem_Display(t *testing.T) {
	it := PickItem{Number: 4, Name: "review", Category: "coding"}
	if it.Title() != "4. review" {
		t.Errorf("Title: got %q", it.Title())
	}
	if it.Description() != "📁 coding" {
		t.Errorf("Description: got %q", it.Description())
	}
	if it.FilterValue() != "review" {
		t.Errorf("FilterValue: got %q", it.FilterValue())
	}
}
