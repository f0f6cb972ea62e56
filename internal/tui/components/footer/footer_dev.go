//go:build !release

package footer

import (
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/wordclock/internal/tui/theme"
	"github.com/garrettladley/wordclock/internal/version"
)

var devVersionStyle = lipgloss.NewStyle().Foreground(theme.ColorDim)

func (f Footer) leftContent() string {
	v := version.Get()
	if version.IsDevelopment(v) {
		v += " (dev build)"
	}
	return devVersionStyle.Render(v)
}
