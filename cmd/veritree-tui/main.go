package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/capek-safety/veritree/pkg/faulttree"
	"github.com/capek-safety/veritree/pkg/project"
	"github.com/capek-safety/veritree/pkg/report"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFAA")).
			MarginLeft(2).
			MarginTop(1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#007755")).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666")).
				Padding(0, 2)

	contentStyle = lipgloss.NewStyle().
			MarginLeft(2).
			MarginTop(1)

	statsBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FF00")).
			Padding(1, 2).
			MarginRight(2)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1).
			MarginLeft(2)
)

type view int

const (
	overviewView view = iota
	topEventsView
	cutSetsView
	commonCausesView
	argumentView
	viewCount
)

type keyMap struct {
	Tab      key.Binding
	ShiftTab key.Binding
	Enter    key.Binding
	Quit     key.Binding
	Up       key.Binding
	Down     key.Binding
}

var keys = keyMap{
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next view"),
	),
	ShiftTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev view"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "analyze selected"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("up/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("down/j", "down"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Enter, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ShiftTab, k.Enter},
		{k.Up, k.Down},
		{k.Quit},
	}
}

type model struct {
	project     *project.Project
	gen         *report.Generator
	currentView view
	topTable    table.Model
	help        help.Model
	keys        keyMap
	width       int
	height      int
	message     string
	messageErr  bool

	selected     faulttree.NodeID
	cutSetText   string
	causesText   string
	argumentText string
}

func initialModel(p *project.Project) model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Name", Width: 36},
		{Title: "Type", Width: 16},
		{Title: "Gate", Width: 6},
	}

	rows := make([]table.Row, 0)
	for _, r := range p.Tree.Roots() {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", r.ID),
			r.Name(),
			string(r.Type),
			r.GateType,
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#00FFAA")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#007755")).
		Bold(false)
	t.SetStyles(s)

	return model{
		project:     p,
		gen:         report.NewGenerator(nil),
		currentView: overviewView,
		topTable:    t,
		help:        help.New(),
		keys:        keys,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Tab):
			m.currentView = (m.currentView + 1) % viewCount

		case key.Matches(msg, m.keys.ShiftTab):
			if m.currentView == 0 {
				m.currentView = viewCount - 1
			} else {
				m.currentView--
			}

		case key.Matches(msg, m.keys.Enter):
			if m.currentView == topEventsView {
				m.analyzeSelected()
			}
		}
	}

	if m.currentView == topEventsView {
		m.topTable, cmd = m.topTable.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *model) analyzeSelected() {
	row := m.topTable.SelectedRow()
	if row == nil {
		m.message = "No top event selected"
		m.messageErr = true
		return
	}
	var id uint64
	if _, err := fmt.Sscanf(row[0], "%d", &id); err != nil {
		m.message = fmt.Sprintf("Bad row id: %v", err)
		m.messageErr = true
		return
	}
	m.selected = faulttree.NodeID(id)

	start := time.Now()
	m.cutSetText = m.renderCutSets(m.selected)

	causes, err := m.project.Tree.CommonCauseReport(m.selected)
	if err != nil {
		m.message = fmt.Sprintf("Analysis error: %v", err)
		m.messageErr = true
		return
	}
	m.causesText = causes

	argument, err := m.gen.Argumentation(m.project.Tree, m.selected)
	if err != nil {
		m.message = fmt.Sprintf("Analysis error: %v", err)
		m.messageErr = true
		return
	}
	m.argumentText = argument

	m.message = fmt.Sprintf("Analyzed %s in %s", row[1], time.Since(start))
	m.messageErr = false
}

func (m *model) renderCutSets(id faulttree.NodeID) string {
	cutSets, err := m.project.Tree.CutSets(id)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Cut sets (%d):\n", len(cutSets))
	for i, cs := range cutSets {
		names := make([]string, 0, len(cs))
		for _, cid := range cs.Sorted() {
			if n, err := m.project.Tree.GetNode(cid); err == nil {
				names = append(names, n.Name())
			}
		}
		fmt.Fprintf(&b, "  %d. {%s}\n", i+1, strings.Join(names, ", "))
	}
	return b.String()
}

func (m model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("🌲 VeriTree - Safety Analysis Workbench"))
	s.WriteString("\n\n")
	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	switch m.currentView {
	case overviewView:
		s.WriteString(m.renderOverview())
	case topEventsView:
		s.WriteString(contentStyle.Render(m.topTable.View()))
	case cutSetsView:
		s.WriteString(m.renderAnalysis(m.cutSetText))
	case commonCausesView:
		s.WriteString(m.renderAnalysis(m.causesText))
	case argumentView:
		s.WriteString(m.renderAnalysis(m.argumentText))
	}

	if m.message != "" {
		s.WriteString("\n\n")
		if m.messageErr {
			s.WriteString(errorStyle.Render("✗ " + m.message))
		} else {
			s.WriteString(successStyle.Render("✓ " + m.message))
		}
	}

	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp())))

	return s.String()
}

func (m model) renderTabs() string {
	tabs := []string{"Overview", "Top Events", "Cut Sets", "Common Causes", "Argument"}
	var renderedTabs []string
	for i, t := range tabs {
		if view(i) == m.currentView {
			renderedTabs = append(renderedTabs, activeTabStyle.Render(t))
		} else {
			renderedTabs = append(renderedTabs, inactiveTabStyle.Render(t))
		}
	}
	return contentStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, renderedTabs...))
}

func (m model) renderOverview() string {
	stats := fmt.Sprintf(
		"Project: %s\n\nNodes: %d\nTop events: %d\nGSN diagrams: %d",
		m.project.Name,
		m.project.Tree.Len(),
		len(m.project.Tree.Roots()),
		len(m.project.Diagrams),
	)
	violations := m.project.Tree.Validate(faulttree.DefaultConstraints()...)
	check := "Constraints: clean"
	if len(violations) > 0 {
		check = fmt.Sprintf("Constraints: %d violation(s)", len(violations))
	}
	boxes := lipgloss.JoinHorizontal(lipgloss.Top,
		statsBoxStyle.Render(stats),
		statsBoxStyle.Render(check),
	)
	return contentStyle.Render(boxes)
}

func (m model) renderAnalysis(text string) string {
	if text == "" {
		return contentStyle.Render("Select a top event and press enter on the Top Events tab.")
	}
	return contentStyle.Render(text)
}

func main() {
	projectPath := flag.String("project", "", "Project archive to open (.vtpj)")
	flag.Parse()

	if *projectPath == "" {
		fmt.Println("Usage: veritree-tui -project <path>")
		os.Exit(1)
	}

	p, err := project.LoadFile(*projectPath)
	if err != nil {
		log.Fatalf("Failed to load project: %v", err)
	}

	prog := tea.NewProgram(initialModel(p), tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		log.Fatalf("TUI error: %v", err)
	}
}
