package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/shvbsle/termrex/internal/scores"
)

const dateLayout = "2006-01-02 15:04"

func scoreColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 3},
		{Title: "Score", Width: 7},
		{Title: "Player", Width: 16},
		{Title: "Date", Width: len(dateLayout)},
	}
}

// scoreRows turns the high score table into table rows, best first.
func scoreRows(entries []scores.Entry) []table.Row {
	rows := make([]table.Row, 0, len(entries))
	for i, e := range entries {
		date := ""
		if !e.Date.IsZero() {
			date = e.Date.Local().Format(dateLayout)
		}
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(e.Score),
			e.Player,
			date,
		})
	}
	return rows
}

func newScoreTable(store *scores.Store) table.Model {
	t := table.New(
		table.WithColumns(scoreColumns()),
		table.WithRows(scoreRows(store.Top(scores.MaxEntries))),
		table.WithHeight(scores.MaxEntries+1),
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
