package sink

import (
	"io"
	"strings"

	drawille "github.com/exrook/drawille-go"

	"github.com/garrettladley/wordclock/internal/display"
)

var _ Sink = (*Braille)(nil)

// Braille draws lit pixels as braille dots, ignoring color. Each character
// holds 2x4 pixels so the whole panel fits in 16x8 characters.
type Braille struct {
	w io.Writer
}

func NewBraille(w io.Writer) *Braille {
	return &Braille{w: w}
}

func (b *Braille) Present(f display.Frame) error {
	_, err := io.WriteString(b.w, ansiCursorHome+Dots(f)+"\n")
	return err
}

func (b *Braille) Close() error {
	return nil
}

// Dots renders the lit pixels of f in braille.
func Dots(f display.Frame) string {
	canvas := drawille.NewCanvas()
	for y := range display.Height {
		for x := range display.Width {
			if !f[y][x].IsBlack() {
				canvas.Set(x, y)
			}
		}
	}

	const (
		cols = display.Width / 2
		rows = display.Height / 4
	)
	got := canvas.Rows(0, 0, display.Width, display.Height)
	lines := make([]string, rows)
	for i := range lines {
		var line string
		if i < len(got) {
			line = got[i]
		}
		// pad or truncate to exact width
		runes := []rune(line)
		switch {
		case len(runes) < cols:
			line += strings.Repeat(string(emptyBraille), cols-len(runes))
		case len(runes) > cols:
			line = string(runes[:cols])
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

const emptyBraille rune = '⠀'
