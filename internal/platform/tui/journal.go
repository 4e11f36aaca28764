package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cubehop/internal/storage"
)

// Journal layout constants
const (
	minWidthForDetail = 96 // Minimum width to show the outcome pane beside the runs
	detailWidth       = 38
	journalChrome     = 8 // Title, borders and help bar
)

// JournalKeyMap defines the key bindings for the journal viewer.
type JournalKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Sort key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k JournalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Sort, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k JournalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Sort, k.Quit}}
}

// DefaultJournalKeyMap returns default key bindings.
func DefaultJournalKeyMap() JournalKeyMap {
	return JournalKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Sort: key.NewBinding(
			key.WithKeys("tab", "s"),
			key.WithHelp("tab", "recent/top"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// JournalModel is the Bubble Tea model for browsing recorded runs.
type JournalModel struct {
	store    *storage.Store
	limit    int
	top      bool // Rank by score instead of start time
	runs     []storage.Run
	outcomes []storage.OutcomeEntry
	err      error
	table    table.Model
	help     help.Model
	keys     JournalKeyMap
	width    int
	height   int
	quitting bool
}

// NewJournalModel creates a journal viewer over the given store.
func NewJournalModel(store *storage.Store, limit, width, height int) JournalModel {
	m := JournalModel{
		store:  store,
		limit:  limit,
		keys:   DefaultJournalKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadRuns()
	return m
}

// createTable creates a new table sized to the window.
func (m *JournalModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Started", Width: 14},
		{Title: "Score", Width: 6},
		{Title: "Events", Width: 6},
		{Title: "End", Width: 5},
		{Title: "Run", Width: 10},
	}

	height := m.height - journalChrome
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns reloads the run list in the current order.
func (m *JournalModel) loadRuns() {
	if m.top {
		m.runs, m.err = m.store.TopRuns(m.limit)
	} else {
		m.runs, m.err = m.store.RecentRuns(m.limit)
	}

	m.table.SetRows(RunRows(m.runs))
	m.table.GotoTop()
	m.loadOutcomes()
}

// loadOutcomes loads the outcomes of the selected run.
func (m *JournalModel) loadOutcomes() {
	m.outcomes = nil
	i := m.table.Cursor()
	if i < 0 || i >= len(m.runs) {
		return
	}
	outcomes, err := m.store.Outcomes(m.runs[i].ID)
	if err != nil {
		m.err = err
		return
	}
	m.outcomes = outcomes
}

// RunRows formats runs as table rows.
func RunRows(runs []storage.Run) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		end := r.EndReason
		if r.Open() {
			end = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			r.StartedAt.Format("Jan 02 15:04"),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Outcomes),
			end,
			shortID(r.ID),
		}
	}
	return rows
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Init initializes the journal model.
func (m JournalModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the journal viewer.
func (m JournalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Sort):
			m.top = !m.top
			m.loadRuns()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			m.loadOutcomes()
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(RunRows(m.runs))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the journal.
func (m JournalModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "RUN JOURNAL - recent"
	if m.top {
		title = "RUN JOURNAL - top scores"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	paneStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	runs := paneStyle.Render(m.renderRuns())
	if m.width >= minWidthForDetail {
		detail := paneStyle.Width(detailWidth).Render(m.renderOutcomes())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, runs, " ", detail))
	} else {
		b.WriteString(runs)
	}

	if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		b.WriteString("\n")
		b.WriteString(errStyle.Render(m.err.Error()))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderRuns renders the table or empty message.
func (m JournalModel) renderRuns() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nPlay with --journal <path> to keep a journal.")
	}
	return m.table.View()
}

// renderOutcomes lists the selected run's collisions.
func (m JournalModel) renderOutcomes() string {
	if len(m.outcomes) == 0 {
		return "No outcomes."
	}

	outcomes := m.outcomes
	if rows := m.height - journalChrome; rows > 0 && len(outcomes) > rows {
		outcomes = outcomes[:rows]
	}

	var b strings.Builder
	for _, o := range outcomes {
		fmt.Fprintf(&b, "%6d %-7s x=%5.2f y=%4.2f  %d\n", o.Tick, o.Kind, o.ObstacleX, o.ObstacleY, o.Score)
	}
	return strings.TrimRight(b.String(), "\n")
}

// RunJournal runs the journal viewer.
func RunJournal(store *storage.Store, limit, width, height int) error {
	p := tea.NewProgram(
		NewJournalModel(store, limit, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
