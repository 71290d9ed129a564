package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/critters/internal/storage"
)

// History layout constants
const (
	minWidthForDetail = 100 // Minimum width to show the run detail box
	detailWidth       = 28  // Width of the run detail box
	maxRuns           = 100 // Max runs to load
)

type historyView int

const (
	viewRuns historyView = iota
	viewSpecies
)

// HistoryModel is the Bubble Tea model for browsing recorded runs.
type HistoryModel struct {
	store   *storage.Store
	runs    []storage.RunRecord
	stats   []storage.SpeciesStats
	loadErr error

	view       historyView
	table      table.Model
	help       help.Model
	keys       HistoryKeyMap
	theme      Theme
	width      int
	height     int
	quitting   bool
	goingBack  bool // True if user pressed back (not quit)
	showDetail bool
}

// NewHistoryModel creates a history browser and loads the recorded runs.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	m := HistoryModel{
		store:      store,
		keys:       DefaultHistoryKeyMap(),
		help:       help.New(),
		theme:      DefaultTheme(),
		width:      width,
		height:     height,
		showDetail: width >= minWidthForDetail,
	}
	m.load()
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// load reads runs and species statistics from the store.
func (m *HistoryModel) load() {
	if m.store == nil {
		return
	}
	runs, err := m.store.RecentRuns(maxRuns)
	if err != nil {
		m.loadErr = err
		return
	}
	stats, err := m.store.AllSpeciesStats()
	if err != nil {
		m.loadErr = err
		return
	}
	m.runs, m.stats = runs, stats
}

// createTable creates a table with the columns of the current view.
func (m *HistoryModel) createTable() table.Model {
	var columns []table.Column
	switch m.view {
	case viewSpecies:
		columns = []table.Column{
			{Title: "Species", Width: 16},
			{Title: "Runs", Width: 6},
			{Title: "Wins", Width: 6},
			{Title: "Best", Width: 6},
			{Title: "Avg", Width: 8},
			{Title: "Last Seen", Width: 14},
		}
	default:
		columns = []table.Column{
			{Title: "#", Width: 5},
			{Title: "Date", Width: 14},
			{Title: "Seed", Width: 20},
			{Title: "Board", Width: 9},
			{Title: "Turns", Width: 7},
			{Title: "Winner", Width: 12},
			{Title: "Alive", Width: 6},
		}
	}

	height := m.height - 8 // Leave room for title, help, and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.Inherit(m.theme.Header)
	s.Selected = s.Selected.Inherit(m.theme.Selected)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table for the current view.
func (m *HistoryModel) updateTableRows() {
	var rows []table.Row
	switch m.view {
	case viewSpecies:
		rows = make([]table.Row, len(m.stats))
		for i, st := range m.stats {
			rows[i] = table.Row{
				st.Species,
				fmt.Sprint(st.Runs),
				fmt.Sprint(st.Wins),
				fmt.Sprint(st.BestFinal),
				fmt.Sprintf("%.1f", st.AvgFinal),
				formatDate(st.LastSeen),
			}
		}
	default:
		rows = make([]table.Row, len(m.runs))
		for i, r := range m.runs {
			winner := r.Winner()
			if winner == "" {
				winner = "-"
			}
			rows[i] = table.Row{
				fmt.Sprint(r.ID),
				formatDate(r.CreatedAt),
				fmt.Sprint(r.Seed),
				fmt.Sprintf("%dx%d", r.Width, r.Height),
				fmt.Sprint(r.Turns),
				winner,
				fmt.Sprint(r.Survivors()),
			}
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history browser.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Switch):
			if m.view == viewRuns {
				m.view = viewSpecies
			} else {
				m.view = viewRuns
			}
			m.table = m.createTable()
			m.updateTableRows()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showDetail = m.width >= minWidthForDetail
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history browser.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "RUN HISTORY"
	if m.view == viewSpecies {
		title = "SPECIES RECORDS"
	}
	b.WriteString(m.theme.Title.MarginBottom(1).Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	box := m.theme.PanelBorder.Render(m.renderTableContent())
	if m.showDetail && m.view == viewRuns && len(m.runs) > 0 {
		box = lipgloss.JoinHorizontal(lipgloss.Top, box, "  ", m.renderDetail())
	}
	b.WriteString(box)

	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m HistoryModel) renderTableContent() string {
	if m.loadErr != nil {
		return m.theme.Error.Padding(2, 4).Render("Cannot read history:\n" + m.loadErr.Error())
	}
	if len(m.runs) == 0 {
		return m.theme.Empty.Render("No runs recorded yet.\nFinish a run to see it here!")
	}
	return m.table.View()
}

// renderDetail renders the populations of the selected run.
func (m HistoryModel) renderDetail() string {
	r, ok := m.SelectedRun()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render(fmt.Sprintf("Run %d", r.ID)))
	b.WriteString("\n")
	b.WriteString(m.theme.Separator.Render(strings.Repeat("─", detailWidth-4)))
	b.WriteString("\n")
	b.WriteString(m.theme.Label.Render(fmt.Sprintf("%-12s%6s%6s", "Species", "Start", "End")))
	b.WriteString("\n")
	for _, p := range r.Populations {
		name := p.Species
		if len(name) > 11 {
			name = name[:10] + "."
		}
		b.WriteString(m.theme.Value.Render(fmt.Sprintf("%-12s%6d%6d", name, p.Initial, p.Final)))
		b.WriteString("\n")
	}

	return m.theme.PanelBorder.Width(detailWidth).Render(b.String())
}

// SelectedRun returns the run under the cursor in the runs view.
func (m HistoryModel) SelectedRun() (storage.RunRecord, bool) {
	if m.view != viewRuns {
		return storage.RunRecord{}, false
	}
	i := m.table.Cursor()
	if i < 0 || i >= len(m.runs) {
		return storage.RunRecord{}, false
	}
	return m.runs[i], true
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("Jan 02 15:04")
}

// centerText pads text on the left to center it within width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// IsGoingBack returns true if user wants to go back to the menu.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// RunHistory runs the history browser.
// Returns true if user wants to go back to the menu, false if quitting.
func RunHistory(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewHistoryModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(HistoryModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
