package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PickItem implements list.Item for one numbered prompt.
type PickItem struct {
	Number   int
	Name     string
	Category string
}

// Title returns the prompt name for list display.
func (i PickItem) Title() string {
	return fmt.Sprintf("%d. %s", i.Number, i.Name)
}

// Description returns the prompt's category for list display.
func (i PickItem) Description() string {
	return "📁 " + i.Category
}

// FilterValue is required by list.Item. Filtering is disabled in the picker.
func (i PickItem) FilterValue() string {
	return i.Name
}

const (
	defaultPickerWidth  = 80
	defaultPickerHeight = 20
)

// PickerModel lets the user choose a prompt from the numbered listing.
type PickerModel struct {
	list   list.Model
	keys   KeyMap
	chosen *PickItem
}

// NewPicker creates a PickerModel over items, in the given order.
func NewPicker(items []PickItem) PickerModel {
	listItems := make([]list.Item, len(items))
	for i, it := range items {
		listItems[i] = it
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.Color(primaryColor)).
		BorderForeground(lipgloss.Color(primaryColor))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.Color("#9CA3AF"))

	l := list.New(listItems, delegate, defaultPickerWidth, defaultPickerHeight)
	l.Title = "Available Custom Prompts"
	l.Styles.Title = l.Styles.Title.Background(lipgloss.Color(primaryColor))
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{DefaultKeyMap.Choose}
	}

	return PickerModel{list: l, keys: DefaultKeyMap}
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Choose):
			if item, ok := m.list.SelectedItem().(PickItem); ok {
				m.chosen = &item
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m PickerModel) View() string {
	return m.list.View()
}

// Chosen returns the item selected with enter, if any.
func (m PickerModel) Chosen() (PickItem, bool) {
	if m.chosen == nil {
		return PickItem{}, false
	}
	return *m.chosen, true
}

// Pick runs the picker and returns the chosen item. ok is false when the
// user quit without choosing.
func Pick(items []PickItem) (item PickItem, ok bool, err error) {
	final, err := Run(NewPicker(items))
	if err != nil {
		return PickItem{}, false, err
	}
	pm, isPicker := final.(PickerModel)
	if !isPicker {
		return PickItem{}, false, nil
	}
	item, ok = pm.Chosen()
	return item, ok, nil
}
