package theme

import "charm.land/lipgloss/v2"

var (
	ColorBlack = lipgloss.Color("#000000")
	ColorWhite = lipgloss.Color("#FFFFFF")
	ColorDim   = lipgloss.Color("#666666")
)

var (
	ColorUnlit   = lipgloss.Color("#2A2A2A") // letters that are switched off
	ColorHealthy = lipgloss.Color("#16EC06")
	ColorWarning = lipgloss.Color("#FFDE00")
)

var ColorBgDark = lipgloss.Color("#0B0B0B")
