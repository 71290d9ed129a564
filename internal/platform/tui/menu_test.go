package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/critters/internal/config"
	"github.com/vovakirdan/critters/internal/core"
)

func pressMenu(m MenuModel, msg tea.KeyMsg) (MenuModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(MenuModel), cmd
}

func TestMenuItems(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())

	if len(m.items) != len(config.Presets())+1 {
		t.Fatalf("got %d items, want %d", len(m.items), len(config.Presets())+1)
	}
	if m.items[0].Preset != "" {
		t.Errorf("first item should be the configured world, got preset %q", m.items[0].Preset)
	}

	view := m.View()
	for _, want := range []string{"C R I T T E R S", "Configured world", "Classic", "Siege"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())
	up := tea.KeyMsg{Type: tea.KeyUp}
	down := tea.KeyMsg{Type: tea.KeyDown}

	m, _ = pressMenu(m, up)
	if m.cursor != 0 {
		t.Errorf("cursor should stay at 0, got %d", m.cursor)
	}
	for range m.items {
		m, _ = pressMenu(m, down)
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor should stop at last item, got %d", m.cursor)
	}

	m, cmd := pressMenu(m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should quit the menu")
	}
	if m.Selected() == nil || m.Selected().Preset != config.Presets()[len(config.Presets())-1] {
		t.Errorf("Selected() = %+v, want last preset", m.Selected())
	}
}

func TestMenuHistoryAndQuit(t *testing.T) {
	tests := []struct {
		name        string
		key         tea.KeyMsg
		wantHistory bool
		wantQuit    bool
	}{
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, true, false},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, false, true},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, cmd := pressMenu(NewMenuModel(core.DefaultConfig()), tt.key)
			if cmd == nil {
				t.Fatal("expected a quit command")
			}
			if m.WantsHistory() != tt.wantHistory {
				t.Errorf("WantsHistory() = %v, want %v", m.WantsHistory(), tt.wantHistory)
			}
			if m.IsQuitting() != tt.wantQuit {
				t.Errorf("IsQuitting() = %v, want %v", m.IsQuitting(), tt.wantQuit)
			}
			if m.Selected() != nil {
				t.Error("nothing should be selected")
			}
		})
	}
}

func TestMenuResize(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	cfg := next.(MenuModel).Config()
	if cfg.ScreenW != 120 || cfg.ScreenH != 50 {
		t.Errorf("Config() = %dx%d, want 120x50", cfg.ScreenW, cfg.ScreenH)
	}
}
