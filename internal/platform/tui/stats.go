package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-klondike/internal/storage"
)

// maxDeals is the number of recent deals loaded into the stats table.
const maxDeals = 100

// StatsKeyMap defines the key bindings for the stats screen.
type StatsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StatsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k StatsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultStatsKeyMap returns default key bindings.
func DefaultStatsKeyMap() StatsKeyMap {
	return StatsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// StatsModel is the Bubble Tea model for the deal history screen.
type StatsModel struct {
	stats    storage.DealStats
	deals    []storage.DealRecord
	table    table.Model
	help     help.Model
	keys     StatsKeyMap
	width    int
	height   int
	quitting bool
}

// NewStatsModel creates a stats model from loaded history.
func NewStatsModel(stats storage.DealStats, deals []storage.DealRecord, width, height int) StatsModel {
	m := StatsModel{
		stats:  stats,
		deals:  deals,
		help:   help.New(),
		keys:   DefaultStatsKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// LoadStatsModel reads history from the store.
func LoadStatsModel(store *storage.Store, width, height int) (StatsModel, error) {
	stats, err := store.Stats()
	if err != nil {
		return StatsModel{}, err
	}
	deals, err := store.RecentDeals(maxDeals)
	if err != nil {
		return StatsModel{}, err
	}
	return NewStatsModel(*stats, deals, width, height), nil
}

// createTable creates a new table sized to the window.
func (m *StatsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Finished", Width: 14},
		{Title: "Outcome", Width: 10},
		{Title: "Seed", Width: 20},
		{Title: "Time", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)), // Header, totals, help and margins
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

// updateTableRows fills the table with the loaded deals.
func (m *StatsModel) updateTableRows() {
	rows := make([]table.Row, len(m.deals))
	for i, d := range m.deals {
		rows[i] = DealRow(d)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// DealRow formats one deal as table cells.
func DealRow(d storage.DealRecord) table.Row {
	return table.Row{
		d.FinishedAt.Local().Format("Jan 02 15:04"),
		d.Outcome,
		fmt.Sprintf("%d", d.Seed),
		FormatDuration(d),
	}
}

// FormatDuration formats how long a deal took as m:ss.
func FormatDuration(d storage.DealRecord) string {
	secs := int(d.FinishedAt.Sub(d.StartedAt).Seconds())
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Summary returns the one-line totals shown above the table.
func Summary(s storage.DealStats) string {
	return fmt.Sprintf("Played %d  |  Won %d  |  Abandoned %d  |  Win rate %.0f%%",
		s.Played, s.Won, s.Abandoned, s.WinRate()*100)
}

// Init initializes the stats model.
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the stats screen.
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the stats screen.
func (m StatsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("KLONDIKE HISTORY", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(Summary(m.stats), m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.deals) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(boxStyle.Render(emptyStyle.Render("No deals recorded yet.\nFinish or abandon a deal to see it here.")))
	} else {
		b.WriteString(boxStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// RunStats runs the stats screen until the user quits.
func RunStats(store *storage.Store, width, height int) error {
	model, err := LoadStatsModel(store, width, height)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
