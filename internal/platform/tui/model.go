package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/critters/internal/core"
	"github.com/vovakirdan/critters/internal/world"
)

// panelWidth is the inner width of the side panel.
const panelWidth = 24

// ViewerOptions configures the live viewer.
type ViewerOptions struct {
	TickRate int // Turns per second
	MaxTurns int // Stop advancing after this many turns; 0 runs until quit
	Paused   bool
	Logger   *log.Logger
}

// ViewerModel is the Bubble Tea model that animates a world.
// It owns no world state of its own; every turn is a call to Advance.
type ViewerModel struct {
	world  *world.World
	screen *core.Screen
	theme  Theme
	keys   ViewerKeyMap
	help   help.Model
	logger *log.Logger

	tickRate int
	maxTurns int
	paused   bool
	done     bool
	quitting bool
	err      error
	notice   string

	width  int
	height int
}

// NewViewerModel creates a viewer for w.
func NewViewerModel(w *world.World, opts ViewerOptions) ViewerModel {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return ViewerModel{
		world:    w,
		screen:   core.NewScreen(w.Width()+2, w.Height()+2),
		theme:    DefaultTheme(),
		keys:     DefaultViewerKeyMap(),
		help:     help.New(),
		logger:   logger,
		tickRate: clampTickRate(opts.TickRate),
		maxTurns: opts.MaxTurns,
		paused:   opts.Paused,
		done:     opts.MaxTurns > 0 && w.Turn() >= opts.MaxTurns,
	}
}

// Init starts the tick loop.
func (m ViewerModel) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m ViewerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused

	case key.Matches(msg, m.keys.Step):
		if m.paused {
			m.advance()
		}

	case key.Matches(msg, m.keys.Debug):
		m.world.ToggleDebug()

	case key.Matches(msg, m.keys.Faster):
		m.tickRate = clampTickRate(m.tickRate * 2)

	case key.Matches(msg, m.keys.Slower):
		m.tickRate = clampTickRate(m.tickRate / 2)

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handleTick runs one turn unless paused. The tick loop keeps running while
// paused and stops once the world is done.
func (m ViewerModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.done {
		return m, nil
	}
	if !m.paused {
		m.advance()
	}
	if m.done {
		return m, nil
	}
	return m, tickCmd(m.tickRate)
}

func (m *ViewerModel) advance() {
	if m.done {
		return
	}
	if err := m.world.Advance(); err != nil {
		m.err = err
		m.done = true
		m.logger.Error("simulation stopped", "turn", m.world.Turn(), "error", err)
		return
	}
	if m.maxTurns > 0 && m.world.Turn() >= m.maxTurns {
		m.done = true
		m.logger.Info("turn limit reached", "turns", m.world.Turn())
	}
}

// saveScreenshot writes the plain-text board to ~/.critters/screenshots.
func (m *ViewerModel) saveScreenshot() {
	DrawWorld(m.screen, m.world)

	home, err := os.UserHomeDir()
	if err != nil {
		m.notice = "screenshot failed"
		return
	}
	dir := filepath.Join(home, ".critters", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.notice = "screenshot failed"
		m.logger.Warn("screenshot", "error", err)
		return
	}

	name := fmt.Sprintf("turn%06d_%s.txt", m.world.Turn(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()+"\n"), 0o600); err != nil {
		m.notice = "screenshot failed"
		m.logger.Warn("screenshot", "error", err)
		return
	}
	m.notice = "saved " + name
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the board, the side panel and the help line.
func (m ViewerModel) View() string {
	if m.quitting {
		return ""
	}

	DrawWorld(m.screen, m.world)
	board := RenderScreen(m.screen)

	body := lipgloss.JoinHorizontal(lipgloss.Top, board, " ", m.renderPanel())
	return body + "\n" + m.theme.Help.Render(m.help.View(m.keys))
}

// renderPanel renders turn, speed and population information.
func (m ViewerModel) renderPanel() string {
	t := m.theme
	var b strings.Builder

	b.WriteString(t.Title.Render("CRITTERS"))
	b.WriteString("\n")
	b.WriteString(t.Separator.Render(strings.Repeat("─", panelWidth)))
	b.WriteString("\n")

	row := func(label string, value any) {
		b.WriteString(t.Label.Render(fmt.Sprintf("%-10s", label)))
		b.WriteString(t.Value.Render(fmt.Sprint(value)))
		b.WriteString("\n")
	}

	turnText := fmt.Sprint(m.world.Turn())
	if m.maxTurns > 0 {
		turnText = fmt.Sprintf("%d/%d", m.world.Turn(), m.maxTurns)
	}
	row("Turn", turnText)
	row("Alive", m.world.Size())
	row("Speed", fmt.Sprintf("%d/s", m.tickRate))

	last := m.world.LastTurn()
	row("Hops", last.Hops)
	row("Infected", last.Infections)
	row("Repelled", last.Repelled)

	b.WriteString(t.Separator.Render(strings.Repeat("─", panelWidth)))
	b.WriteString("\n")
	for _, sc := range m.world.Counts() {
		name := sc.Species
		if len(name) > 14 {
			name = name[:13] + "."
		}
		b.WriteString(t.Label.Render(fmt.Sprintf("%-15s", name)))
		b.WriteString(t.Value.Render(fmt.Sprintf("%5d", sc.Count)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.err != nil:
		b.WriteString(t.Error.Render("STOPPED"))
		b.WriteString("\n")
		b.WriteString(t.Label.Width(panelWidth).Render(m.err.Error()))
	case m.done:
		b.WriteString(t.Done.Render("DONE"))
	case m.paused:
		b.WriteString(t.Paused.Render("PAUSED"))
	}
	if m.world.Debug() {
		b.WriteString("\n")
		b.WriteString(t.Debug.Render("debug: facing arrows"))
	}
	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(t.Label.Render(m.notice))
	}

	return t.PanelBorder.Width(panelWidth + 2).Render(b.String())
}

// Err returns the error that stopped the simulation, if any.
func (m ViewerModel) Err() error {
	return m.err
}

// Done reports whether the viewer stopped advancing.
func (m ViewerModel) Done() bool {
	return m.done
}

// RunViewer animates w until the user quits. The world is left in its
// final state for the caller to inspect.
func RunViewer(w *world.World, opts ViewerOptions) error {
	model := NewViewerModel(w, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(ViewerModel); ok && m.err != nil {
		return m.err
	}
	return nil
}
