package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/reone-boardgame/palette-roulette/internal/palette"
)

// Theme contains the styles used outside the playfield.
type Theme struct {
	HUDLabel   lipgloss.Style
	HUDValue   lipgloss.Style
	JumpButton lipgloss.Style
	SwatchText lipgloss.Style
	Help       lipgloss.Style
}

// DefaultTheme returns the default footer styles.
func DefaultTheme() Theme {
	return Theme{
		HUDLabel:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		HUDValue:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		JumpButton: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("51")).Bold(true).Padding(0, 1),
		SwatchText: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Help:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// Swatch renders a color chip labeled with its hex and CSS forms. The label
// color is picked for contrast against the chip.
func (t Theme) Swatch(label string, c palette.RGB) string {
	chip := lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(c.ContrastText().Hex())).
		Padding(0, 1).
		Render(c.Hex())
	return fmt.Sprintf("%s %s %s", t.HUDLabel.Render(label), chip, t.SwatchText.Render(c.CSS()))
}

// HUD renders the in-run status line.
func (t Theme) HUD(score int, speed float64, jumpButton bool) string {
	s := fmt.Sprintf("%s %s  %s %s",
		t.HUDLabel.Render("score"), t.HUDValue.Render(fmt.Sprint(score)),
		t.HUDLabel.Render("speed"), t.HUDValue.Render(fmt.Sprintf("%.1f", speed)))
	if jumpButton {
		s += "  " + t.JumpButton.Render("JUMP")
	}
	return s
}
