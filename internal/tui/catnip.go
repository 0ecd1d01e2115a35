package tui

import (
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// EasterEggMode represents special seasonal themes
type EasterEggMode int

const (
	EasterEggNone EasterEggMode = iota
	EasterEggHalloween
	EasterEggChristmas
)

// detectEasterEgg checks TERMREX_EASTER_EGG first, then the date.
func detectEasterEgg(now time.Time) EasterEggMode {
	if egg := os.Getenv("TERMREX_EASTER_EGG"); egg != "" {
		switch strings.ToLower(egg) {
		case "halloween":
			return EasterEggHalloween
		case "xmas", "christmas":
			return EasterEggChristmas
		}
	}

	switch {
	case now.Month() == time.October && now.Day() == 31:
		return EasterEggHalloween
	case now.Month() == time.December && now.Day() == 25:
		return EasterEggChristmas
	}
	return EasterEggNone
}

// paintLogo colours the banner: orange for Halloween, red and green rows
// for Christmas, T-rex green otherwise.
func paintLogo(lines []string, mode EasterEggMode) string {
	orange := lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	red := lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	green := lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true)

	painted := make([]string, len(lines))
	for i, line := range lines {
		switch {
		case mode == EasterEggHalloween:
			painted[i] = orange.Render(line)
		case mode == EasterEggChristmas && i%2 == 0:
			painted[i] = red.Render(line)
		default:
			painted[i] = green.Render(line)
		}
	}
	return strings.Join(painted, "\n")
}
