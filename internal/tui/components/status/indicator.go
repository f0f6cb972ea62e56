package status

import (
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/wordclock/internal/gate"
	"github.com/garrettladley/wordclock/internal/tui/theme"
)

const statusDot = "●"

// Indicator shows what the light gate currently knows.
type Indicator struct {
	Capability gate.Capability
}

func (i Indicator) Render() string {
	switch i.Capability {
	case gate.Healthy:
		return lipgloss.NewStyle().
			Foreground(theme.ColorHealthy).
			Render(statusDot + " lights connected")
	case gate.Unreachable:
		return lipgloss.NewStyle().
			Foreground(theme.ColorWarning).
			Render(statusDot + " lights unreachable")
	default:
		return lipgloss.NewStyle().
			Foreground(theme.ColorDim).
			Render(statusDot + " no light gate")
	}
}
