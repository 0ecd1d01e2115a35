package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/shvbsle/termrex/internal/plugins"
	"github.com/shvbsle/termrex/internal/scores"
)

func newTestModel(t *testing.T, store *scores.Store) *Model {
	t.Helper()
	registry := plugins.NewRegistry()
	for _, name := range []string{"run", "gallery"} {
		registry.Register(&plugins.Func{
			ID:    name,
			About: name + " mode",
			Run:   func(context.Context) error { return nil },
		})
	}
	return New(registry, store, true)
}

func press(m *Model, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestLaunchSelectedMode(t *testing.T) {
	m := newTestModel(t, scores.Memory())

	press(m, tea.KeyMsg{Type: tea.KeyDown})
	cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})

	if !isQuit(cmd) {
		t.Fatal("Expected the launcher to quit after choosing a mode")
	}
	p := m.GetPluginToLaunch()
	if p == nil || p.Name() != "gallery" {
		t.Errorf("Expected gallery, got %v", p)
	}
}

func TestCursorStaysInRange(t *testing.T) {
	m := newTestModel(t, scores.Memory())

	press(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("Expected cursor 0, got %d", m.cursor)
	}
	for i := 0; i < 5; i++ {
		press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	}
	if m.cursor != 1 {
		t.Errorf("Expected cursor on the last mode, got %d", m.cursor)
	}
}

func TestQuitLaunchesNothing(t *testing.T) {
	m := newTestModel(t, scores.Memory())

	cmd := press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !isQuit(cmd) {
		t.Error("Expected q to quit")
	}
	if m.GetPluginToLaunch() != nil {
		t.Error("Expected no mode to launch")
	}
}

func TestTabMovesFocusToScores(t *testing.T) {
	store := scores.Memory()
	store.Add(scores.Entry{Score: 300, Player: "ada"})
	store.Add(scores.Entry{Score: 100, Player: "bob"})
	m := newTestModel(t, store)

	press(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != paneScores || !m.table.Focused() {
		t.Fatal("Expected the score table to take focus")
	}

	press(m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 0 {
		t.Error("Expected the mode cursor to stay put while scores have focus")
	}
	if m.table.Cursor() != 1 {
		t.Errorf("Expected the table cursor to move, got %d", m.table.Cursor())
	}

	cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if isQuit(cmd) || m.GetPluginToLaunch() != nil {
		t.Error("Expected enter on the score table not to launch")
	}
}

func TestViewShowsModesAndScores(t *testing.T) {
	store := scores.Memory()
	store.Add(scores.Entry{Score: 1234, Player: "ada"})
	m := newTestModel(t, store)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	view := ansi.Strip(m.View())
	for _, want := range []string{"run mode", "gallery mode", "High scores", "1234", "ada", Version} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected %q in the launcher view", want)
		}
	}
}

func TestEmptyScoreTable(t *testing.T) {
	m := newTestModel(t, scores.Memory())
	if !strings.Contains(ansi.Strip(m.View()), "no runs yet") {
		t.Error("Expected a placeholder for an empty table")
	}
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t, scores.Memory())
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	if !m.help.ShowAll {
		t.Error("Expected ? to show all keys")
	}
	if !strings.Contains(ansi.Strip(m.View()), "modes/scores") {
		t.Error("Expected the full help to list tab")
	}
}

func TestScoreRows(t *testing.T) {
	date := time.Date(2024, 5, 1, 12, 30, 0, 0, time.Local)
	rows := scoreRows([]scores.Entry{
		{Score: 500, Player: "ada", Date: date},
		{Score: 200, Player: "bob"},
	})

	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "1" || rows[0][1] != "500" || rows[0][3] != "2024-05-01 12:30" {
		t.Errorf("Unexpected first row %v", rows[0])
	}
	if rows[1][3] != "" {
		t.Errorf("Expected an empty date, got %q", rows[1][3])
	}
}

func TestDetectEasterEgg(t *testing.T) {
	tests := []struct {
		env  string
		date time.Time
		want EasterEggMode
	}{
		{"", time.Date(2024, time.October, 31, 0, 0, 0, 0, time.UTC), EasterEggHalloween},
		{"", time.Date(2024, time.December, 25, 0, 0, 0, 0, time.UTC), EasterEggChristmas},
		{"", time.Date(2024, time.July, 4, 0, 0, 0, 0, time.UTC), EasterEggNone},
		{"xmas", time.Date(2024, time.July, 4, 0, 0, 0, 0, time.UTC), EasterEggChristmas},
		{"Halloween", time.Date(2024, time.July, 4, 0, 0, 0, 0, time.UTC), EasterEggHalloween},
	}
	for _, tt := range tests {
		t.Setenv("TERMREX_EASTER_EGG", tt.env)
		if got := detectEasterEgg(tt.date); got != tt.want {
			t.Errorf("detectEasterEgg(%q, %v) = %v, want %v", tt.env, tt.date.Format("Jan 2"), got, tt.want)
		}
	}
}
