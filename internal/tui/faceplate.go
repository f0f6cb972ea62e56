package tui

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/wordclock/internal/display"
	"github.com/garrettladley/wordclock/internal/grid"
)

// cellColor samples the top-left pixel of cell (row, col).
func cellColor(f *display.Frame, row, col int) (color.Color, bool) {
	c := f.At(col*grid.Density, row*grid.Density)
	if c.IsBlack() {
		return nil, false
	}
	return c, true
}

// FaceplateView draws the letters of the faceplate, lit ones in the color
// the panel shows them in.
func (m *Model) FaceplateView() string {
	plate := grid.Faceplate()
	unlit := m.theme.Unlit()

	lines := make([]string, 0, grid.Rows)
	for row := range grid.Rows {
		var b strings.Builder
		for col := range grid.Cols {
			if col > 0 {
				b.WriteByte(' ')
			}
			letter := strings.ToUpper(string(plate[row][col]))
			if c, ok := cellColor(&m.frame, row, col); ok {
				b.WriteString(m.theme.Lit(c).Render(letter))
			} else {
				b.WriteString(unlit.Render(letter))
			}
		}
		lines = append(lines, b.String())
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// LitLetters returns the lit letters row by row with unlit cells as spaces.
func (m *Model) LitLetters() []string {
	plate := grid.Faceplate()
	rows := make([]string, grid.Rows)
	for row := range grid.Rows {
		var b strings.Builder
		for col := range grid.Cols {
			if _, ok := cellColor(&m.frame, row, col); ok {
				b.WriteRune(plate[row][col])
			} else {
				b.WriteByte(' ')
			}
		}
		rows[row] = b.String()
	}
	return rows
}
