// Package tui is an interactive viewer over the export rows.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/mydehq/gamedesc/internal/report"
	"github.com/mydehq/gamedesc/internal/types"
	"github.com/mydehq/gamedesc/internal/ui"
)

type state int

const (
	stateInitial state = iota
	stateScanning
	stateBrowsing
	stateFilter
	stateExporting
	stateFinished
)

var (
	titleStyle    = ui.StyleCommand
	subTitleStyle = ui.StyleDim
	infoStyle     = ui.StyleCommand
	successStyle  = ui.StyleHeader
	warningStyle  = ui.StyleWarn
	errorStyle    = ui.StyleFlag

	actionBarMsgStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "229", Dark: "229"}).
				Background(lipgloss.AdaptiveColor{Light: "57", Dark: "57"}).
				Padding(0, 1)

	actionBarKeyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "57", Dark: "57"}).
				Background(lipgloss.AdaptiveColor{Light: "229", Dark: "229"}).
				Padding(0, 1).
				Bold(true)
)

type scanDoneMsg struct {
	exp report.Export
	err error
}

type exportDoneMsg struct {
	written int
	err     error
}

// Model browses the report rows of a set of platforms and can export them.
type Model struct {
	state    state
	root     string
	output   string
	err      error
	warn     error
	quitting bool

	platforms []types.Platform
	names     func(label string) string

	table   table.Model
	input   textinput.Model
	exp     report.Export
	visible []report.Row
	filter  string
	written int

	width  int
	height int
}

// NewModel creates a viewer over platforms. names maps folder labels to
// display names and output is the report path used by export.
func NewModel(root string, platforms []types.Platform, names func(string) string, output string) Model {
	t := table.New(
		table.WithColumns(columns(100)),
		table.WithFocused(true),
		table.WithHeight(10), // dynamically updated
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true).
		Foreground(lipgloss.Color("86"))
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	ti := textinput.New()
	ti.Placeholder = "title or platform"
	ti.CharLimit = 128
	ti.Width = 40

	return Model{
		state:     stateInitial,
		root:      root,
		output:    output,
		platforms: platforms,
		names:     names,
		table:     t,
		input:     ti,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateFilter {
			switch msg.String() {
			case "ctrl+c":
				m.quitting = true
				return m, tea.Quit
			case "esc":
				m.state = stateBrowsing
				m.input.Blur()
				return m, nil
			case "enter":
				m.filter = strings.TrimSpace(m.input.Value())
				m.state = stateBrowsing
				m.input.Blur()
				m.updateTable()
				return m, nil
			}
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "q":
			if m.state != stateScanning && m.state != stateExporting {
				m.quitting = true
				return m, tea.Quit
			}

		case "enter", "r":
			if m.state == stateInitial || m.state == stateFinished || (m.state == stateBrowsing && msg.String() == "r") {
				m.state = stateScanning
				m.err = nil
				m.warn = nil
				return m, m.scan()
			}

		case "/":
			if m.state == stateBrowsing {
				m.state = stateFilter
				m.input.SetValue(m.filter)
				m.input.Focus()
				return m, textinput.Blink
			}

		case "e":
			if m.state == stateBrowsing && len(m.exp.Rows) > 0 {
				m.state = stateExporting
				return m, m.export()
			}
		}

	case scanDoneMsg:
		m.warn = msg.err
		m.exp = msg.exp
		m.state = stateBrowsing
		m.updateTable()
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = stateBrowsing
			return m, nil
		}
		m.written = msg.written
		m.state = stateFinished
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeTable()
	}

	if m.state == stateBrowsing {
		m.table, cmd = m.table.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// matches reports whether row passes the current filter.
func (m Model) matches(row report.Row) bool {
	if m.filter == "" {
		return true
	}
	f := strings.ToLower(m.filter)
	return strings.Contains(strings.ToLower(row.Title), f) ||
		strings.Contains(strings.ToLower(row.PlatformName), f) ||
		strings.Contains(strings.ToLower(row.PlatformFolder), f)
}

func (m *Model) updateTable() {
	m.visible = nil
	var rows []table.Row
	for _, r := range m.exp.Rows {
		if !m.matches(r) {
			continue
		}
		m.visible = append(m.visible, r)
		rows = append(rows, table.Row{r.Title, r.PlatformName, r.EntryType, strconv.Itoa(r.DiskCount), r.XMLState})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func columns(width int) []table.Column {
	typeW, disksW, stateW := 10, 6, 10
	flexW := (width - typeW - disksW - stateW) / 2
	if flexW < 10 {
		flexW = 10
	}
	return []table.Column{
		{Title: "Title", Width: flexW},
		{Title: "Platform", Width: flexW},
		{Title: "Type", Width: typeW},
		{Title: "Disks", Width: disksW},
		{Title: "State", Width: stateW},
	}
}

func (m *Model) resizeTable() {
	if m.width <= 0 || m.height <= 0 {
		return
	}

	m.table.SetColumns(columns(m.width - 14)) // padding and cell gaps

	headerH := 4 // Title + Path + padding
	footerH := 4 // Detail + action bar
	contentH := m.height - headerH - footerH
	if contentH < 5 {
		contentH = 5
	}
	m.table.SetHeight(contentH - 2)
}

func (m Model) scan() tea.Cmd {
	platforms := m.platforms
	names := m.names
	return func() tea.Msg {
		b := &report.Builder{Names: names}
		exp, err := b.Collect(platforms)
		return scanDoneMsg{exp: exp, err: err}
	}
}

func (m Model) export() tea.Cmd {
	rows := m.exp.Rows
	output := m.output
	return func() tea.Msg {
		n, err := report.WriteFile(output, rows)
		return exportDoneMsg{written: n, err: err}
	}
}

func (m Model) renderActionBar(actions []string) string {
	var rendered []string
	for _, a := range actions {
		parts := strings.SplitN(a, " ", 2)
		if len(parts) == 2 {
			rendered = append(rendered, actionBarKeyStyle.Render(parts[0])+actionBarMsgStyle.Render(parts[1]))
		}
	}
	bar := strings.Join(rendered, lipgloss.NewStyle().Background(lipgloss.Color("57")).Render("  "))

	padW := m.width - lipgloss.Width(bar)
	if padW < 0 {
		padW = 0
	}
	padding := lipgloss.NewStyle().Background(lipgloss.Color("57")).Render(strings.Repeat(" ", padW))

	return bar + padding
}

func (m Model) selectedDetail() string {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.visible) {
		return ""
	}
	r := m.visible[i]
	return subTitleStyle.Render(fmt.Sprintf("%s/%s", r.PlatformFolder, r.FilePath))
}

func (m Model) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	if m.width <= 0 || m.height <= 0 {
		return "Starting..."
	}

	var s strings.Builder

	header := fmt.Sprintf("%s  %s", titleStyle.Render("GAMEDESC"), subTitleStyle.Render("ROOT: "+m.root))
	s.WriteString(lipgloss.NewStyle().Padding(1, 2).Render(header))
	s.WriteString("\n")

	var contentView string
	var actionBarView string
	place := func(content string) string {
		return lipgloss.Place(m.width, m.height-6, lipgloss.Center, lipgloss.Center, content)
	}

	switch m.state {
	case stateInitial:
		contentView = place(fmt.Sprintf("%d platforms found. Press Enter to read descriptors", len(m.platforms)))
		actionBarView = m.renderActionBar([]string{"Enter Scan", "q Quit"})

	case stateScanning:
		contentView = place(infoStyle.Render("Reading descriptors and grouping entries..."))
		actionBarView = m.renderActionBar([]string{"ctrl+c Abort"})

	case stateBrowsing, stateFilter:
		stat := fmt.Sprintf("%d of %d rows from %d platforms.", len(m.visible), len(m.exp.Rows), m.exp.Platforms)
		if m.filter != "" {
			stat += " Filter: " + m.filter
		}
		lines := []string{subTitleStyle.Render(stat)}
		if m.exp.Malformed > 0 {
			lines = append(lines, warningStyle.Render(fmt.Sprintf("%d malformed descriptors shown from recovered entries.", m.exp.Malformed)))
		}
		if m.warn != nil {
			lines = append(lines, warningStyle.Render(m.warn.Error()))
		}
		if m.err != nil {
			lines = append(lines, errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		}
		body := strings.Join(lines, "\n") + "\n\n" + m.table.View() + "\n" + m.selectedDetail()
		if m.state == stateFilter {
			body += "\n" + m.input.View()
			actionBarView = m.renderActionBar([]string{"Enter Apply", "Esc Cancel"})
		} else {
			actionBarView = m.renderActionBar([]string{"e Export", "/ Filter", "r Rescan", "↑/↓ Scroll", "q Quit"})
		}
		contentView = lipgloss.NewStyle().Padding(0, 2).Render(body)

	case stateExporting:
		contentView = place(infoStyle.Render("Writing report..."))
		actionBarView = m.renderActionBar([]string{"ctrl+c Abort"})

	case stateFinished:
		summary := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2).BorderForeground(lipgloss.Color("34")).Render(
			fmt.Sprintf("%s\nWrote %d rows (%s) to %s", successStyle.Bold(true).Render("EXPORTED"),
				len(m.exp.Rows), humanize.Bytes(uint64(m.written)), m.output),
		)
		contentView = place(summary)
		actionBarView = m.renderActionBar([]string{"Enter Rescan", "q Quit"})
	}

	s.WriteString(contentView)

	// Force the action bar to the absolute bottom via newlines
	currentLines := strings.Count(s.String(), "\n")
	neededNewLines := (m.height - 2) - currentLines
	if neededNewLines > 0 {
		s.WriteString(strings.Repeat("\n", neededNewLines))
	} else {
		s.WriteString("\n")
	}
	s.WriteString(actionBarView)

	return s.String()
}
