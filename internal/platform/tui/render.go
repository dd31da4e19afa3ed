package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/reone-boardgame/palette-roulette/internal/core"
)

// cellColors holds the ANSI code for each scene color; the zero value is
// the terminal default.
var cellColors = [...]string{
	core.ColorRed:         "1",
	core.ColorGreen:       "2",
	core.ColorYellow:      "3",
	core.ColorBlue:        "4",
	core.ColorWhite:       "7",
	core.ColorBrightRed:   "9",
	core.ColorBrightWhite: "15",
	core.ColorGray:        "245",
	core.ColorDarkGray:    "238",
}

var cellStyles = buildCellStyles()

func buildCellStyles() []lipgloss.Style {
	styles := make([]lipgloss.Style, len(cellColors))
	for i, code := range cellColors {
		styles[i] = lipgloss.NewStyle()
		if code != "" {
			styles[i] = styles[i].Foreground(lipgloss.Color(code))
		}
	}
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(cellStyles) {
		return cellStyles[c]
	}
	return cellStyles[core.ColorDefault]
}

// RenderScreen turns the cell buffer into styled terminal text. Each run of
// same-colored cells is styled once.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	for y := range rows {
		rows[y] = renderRow(s, y)
	}
	return strings.Join(rows, "\n")
}

func renderRow(s *core.Screen, y int) string {
	var line, run strings.Builder
	current := core.ColorDefault
	flush := func() {
		if run.Len() > 0 {
			line.WriteString(styleFor(current).Render(run.String()))
			run.Reset()
		}
	}

	for x, w := 0, s.Width(); x < w; x++ {
		cell := s.GetCell(x, y)
		if cell.Color != current {
			flush()
			current = cell.Color
		}
		run.WriteRune(cell.Rune)
	}
	flush()
	return line.String()
}
