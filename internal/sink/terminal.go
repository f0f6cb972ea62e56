package sink

import (
	"io"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/wordclock/internal/display"
)

const (
	ansiClearScreen = "\x1b[2J"
	ansiCursorHome  = "\x1b[H"
	ansiReset       = "\x1b[0m"

	upperHalfBlock = "▀"
)

var _ Sink = (*Terminal)(nil)

// Terminal draws frames with half blocks, two pixel rows per text line.
type Terminal struct {
	w       io.Writer
	started bool
}

func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w}
}

func (t *Terminal) Present(f display.Frame) error {
	var b strings.Builder
	if !t.started {
		b.WriteString(ansiClearScreen)
		t.started = true
	}
	b.WriteString(ansiCursorHome)
	b.WriteString(HalfBlocks(f))
	b.WriteString("\n")
	_, err := io.WriteString(t.w, b.String())
	return err
}

func (t *Terminal) Close() error {
	_, err := io.WriteString(t.w, ansiReset+"\n")
	return err
}

// HalfBlocks renders f as display.Height/2 lines of display.Width cells.
func HalfBlocks(f display.Frame) string {
	lines := make([]string, 0, display.Height/2)
	for y := 0; y < display.Height; y += 2 {
		var line strings.Builder
		for x := range display.Width {
			style := lipgloss.NewStyle().
				Foreground(f[y][x]).
				Background(f[y+1][x])
			line.WriteString(style.Render(upperHalfBlock))
		}
		lines = append(lines, line.String())
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
