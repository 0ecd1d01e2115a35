package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shvbsle/termrex/internal/assets"
	"github.com/shvbsle/termrex/internal/log"
	"github.com/shvbsle/termrex/internal/plugins"
	"github.com/shvbsle/termrex/internal/scores"
	"github.com/shvbsle/termrex/internal/sprite"
)

// Version is the current version of termrex.
var Version = "v0.1.0"

type pane int

const (
	paneModes pane = iota
	paneScores
)

// Model is the launcher: the registered modes on the left, the high score
// table on the right. Choosing a mode quits the program; the caller reads
// GetPluginToLaunch, runs it and starts a fresh launcher afterwards.
type Model struct {
	modes  []plugins.Plugin
	cursor int
	table  table.Model
	help   help.Model
	keys   keyMap
	focus  pane
	logo   string
	width  int
	height int

	launch plugins.Plugin
}

// New builds the launcher for the modes in registry and the scores in
// store. asciiOnly picks the logo art.
func New(registry *plugins.Registry, store *scores.Store, asciiOnly bool) *Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	banner := assets.For(asciiOnly).IntroBanner
	return &Model{
		modes: registry.List(),
		table: newScoreTable(store),
		help:  h,
		keys:  newKeyMap(),
		logo:  paintLogo(trimRight(sprite.Plain(banner)), detectEasterEgg(time.Now())),
	}
}

func trimRight(lines []string) []string {
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return lines
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// GetPluginToLaunch returns the mode the player picked, or nil if they quit.
func (m *Model) GetPluginToLaunch() plugins.Plugin {
	return m.launch
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.launch = nil
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Switch):
			m.toggleFocus()
			return m, nil
		}

		if m.focus == paneScores {
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.modes)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Launch):
			if len(m.modes) == 0 {
				return m, nil
			}
			m.launch = m.modes[m.cursor]
			log.TUI().Info("mode selected", "mode", m.launch.Name())
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *Model) toggleFocus() {
	if m.focus == paneModes {
		m.focus = paneScores
		m.table.Focus()
		return
	}
	m.focus = paneModes
	m.table.Blur()
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.logo)
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("a terminal T-rex runner " + Version))
	b.WriteString("\n\n")

	panes := lipgloss.JoinHorizontal(lipgloss.Top, m.modesView(), " ", m.scoresView())
	b.WriteString(panes)
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
	}
	return b.String()
}

func (m *Model) modesView() string {
	var b strings.Builder
	b.WriteString(paneTitleStyle.Render("Modes"))
	b.WriteString("\n")
	if len(m.modes) == 0 {
		b.WriteString(emptyStyle.Render("nothing to launch"))
	}
	for i, p := range m.modes {
		name := modeStyle.Render("  " + p.Name())
		if i == m.cursor {
			name = selectedModeStyle.Render("> " + p.Name())
		}
		b.WriteString(name)
		b.WriteString("  ")
		b.WriteString(descStyle.Render(p.Description()))
		b.WriteString("\n")
	}
	return m.paneStyle(paneModes).Render(strings.TrimRight(b.String(), "\n"))
}

func (m *Model) scoresView() string {
	var b strings.Builder
	b.WriteString(paneTitleStyle.Render("High scores"))
	b.WriteString("\n")
	if len(m.table.Rows()) == 0 {
		b.WriteString(emptyStyle.Render("no runs yet"))
	} else {
		b.WriteString(m.table.View())
	}
	return m.paneStyle(paneScores).Render(b.String())
}

func (m *Model) paneStyle(p pane) lipgloss.Style {
	if m.focus == p {
		return focusedPaneStyle
	}
	return paneStyle
}
