package tui

import "github.com/charmbracelet/lipgloss"

// Colors using AdaptiveColor for light/dark terminal support.
var (
	colorWhite = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim   = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorCyan  = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	filterStyle = lipgloss.NewStyle().
			Foreground(colorWhite)

	selectedItemStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorWhite)

	itemStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	currentStyle = lipgloss.NewStyle().Foreground(colorGreen)
	emptyStyle   = lipgloss.NewStyle().Foreground(colorDim).Italic(true)
)

// Help styles.
var (
	helpKeyStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorDim)
	helpSepStyle  = lipgloss.NewStyle().Foreground(colorDim)
)
