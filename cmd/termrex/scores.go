package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/shvbsle/termrex/internal/scores"
)

// NewScoresCommand builds the command that prints the high score table.
func NewScoresCommand(_ *app) *cobra.Command {
	var asJSON bool
	var limit int

	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Show the high score table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			entries := store.Top(limit)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}
			if len(entries) == 0 {
				_, err := fmt.Fprintln(out, "No high scores yet. Go run!")
				return err
			}
			_, err = fmt.Fprintln(out, scoreTable(entries))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the table as JSON")
	cmd.Flags().IntVarP(&limit, "limit", "n", scores.MaxEntries, "how many entries to show")
	return cmd
}

func scoreTable(entries []scores.Entry) string {
	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("238"))).
		Headers("#", "SCORE", "PLAYER", "DATE").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	for i, e := range entries {
		date := ""
		if !e.Date.IsZero() {
			date = e.Date.Local().Format("2006-01-02 15:04")
		}
		t.Row(strconv.Itoa(i+1), strconv.Itoa(e.Score), e.Player, date)
	}
	return t.Render()
}
