package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/critters/internal/config"
	"github.com/vovakirdan/critters/internal/core"
)

// MenuItem is one selectable scenario. An empty Preset means the
// configured world as loaded from the config file.
type MenuItem struct {
	Preset      config.Preset
	Title       string
	Description string
}

// MenuModel is the Bubble Tea model for the scenario picker.
type MenuModel struct {
	items       []MenuItem
	cursor      int
	config      core.RuntimeConfig
	keys        MenuKeyMap
	help        help.Model
	theme       Theme
	quitting    bool
	selected    *MenuItem
	openHistory bool
}

// NewMenuModel creates the scenario picker: the configured world first,
// followed by every preset.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	items := []MenuItem{{
		Title:       "Configured world",
		Description: "Populations from the config file",
	}}
	for _, p := range config.Presets() {
		items = append(items, MenuItem{
			Preset:      p,
			Title:       strings.ToUpper(string(p[:1])) + string(p[1:]),
			Description: p.Description(),
		})
	}

	return MenuModel{
		items:  items,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
		theme:  DefaultTheme(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Select):
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit

		case key.Matches(msg, m.keys.History):
			m.openHistory = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	width := m.config.ScreenW

	b.WriteString("\n")
	b.WriteString(m.theme.Title.Render(centerText("  C R I T T E R S  ", width)))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Label.Render(centerText("Pick a scenario", width)))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		style := m.theme.Value
		if i == m.cursor {
			cursor = "> "
			style = m.theme.Selected
		}
		line := fmt.Sprintf("%s%-18s %s", cursor, item.Title, item.Description)
		b.WriteString(style.Render(centerText(line, width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(centerText(m.help.View(m.keys), width)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsHistory returns true if user requested the run history.
func (m MenuModel) WantsHistory() bool {
	return m.openHistory
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Item         *MenuItem
	Config       core.RuntimeConfig
	WantsHistory bool
	Quit         bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsHistory():
		result.WantsHistory = true
	case m.IsQuitting() || m.Selected() == nil:
		result.Quit = true
	default:
		result.Item = m.Selected()
	}
	return result, nil
}
