package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-duel/internal/core"
)

// Theme holds the Lip Gloss styles of the platform screens.
type Theme struct {
	// Cell colors used by game screens
	Cells map[core.Color]lipgloss.Style

	// Menu
	MenuTitle       lipgloss.Style
	MenuSubtitle    lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
	MenuBox         lipgloss.Style

	// Status line below the arena
	Status lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}

	return Theme{
		Cells: map[core.Color]lipgloss.Style{
			core.ColorDefault: lipgloss.NewStyle(),
			core.ColorRed:     fg("9"),
			core.ColorGreen:   fg("10"),
			core.ColorYellow:  fg("11"),
			core.ColorBlue:    fg("12"),
			core.ColorMagenta: fg("13"),
			core.ColorCyan:    fg("14"),
			core.ColorWhite:   fg("15"),
			core.ColorOrange:  fg("208"),
			core.ColorGray:    fg("245"),
		},

		MenuTitle:       fg("51").Bold(true),
		MenuSubtitle:    fg("245"),
		MenuItemNormal:  fg("252"),
		MenuItemActive:  fg("226").Bold(true),
		MenuDescription: fg("240"),
		MenuBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 4),

		Status: fg("240"),
	}
}

// MonochromeTheme drops cell colors, for terminals without color support.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	for c := range theme.Cells {
		theme.Cells[c] = lipgloss.NewStyle()
	}
	return theme
}

func (t Theme) cell(c core.Color) lipgloss.Style {
	if s, ok := t.Cells[c]; ok {
		return s
	}
	return t.Cells[core.ColorDefault]
}
