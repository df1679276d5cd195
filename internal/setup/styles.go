package setup

import "github.com/charmbracelet/lipgloss"

// Colors using AdaptiveColor for light/dark terminal support.
var (
	colorWhite = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim   = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed   = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorCyan  = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

var (
	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorWhite).
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Width(28).
			Foreground(colorWhite)

	toggleOnStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	toggleOffStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	cursorStyle = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "254", Dark: "237"})

	hintStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			MarginTop(1)
)
