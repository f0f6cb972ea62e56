package display

import (
	"image"

	"github.com/garrettladley/wordclock/internal/grid"
)

const (
	Width  = grid.Cols * grid.Density
	Height = grid.Rows * grid.Density
)

// Frame is one full picture of the panel, indexed [y][x]. The zero Frame is
// all black.
type Frame [Height][Width]Color

// Bounds is the pixel rectangle of every frame.
func Bounds() image.Rectangle {
	return image.Rect(0, 0, Width, Height)
}

// Fill paints r (clipped to the frame) with c.
func (f *Frame) Fill(r image.Rectangle, c Color) {
	r = r.Intersect(Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			f[y][x] = c
		}
	}
}

func (f *Frame) At(x, y int) Color {
	return f[y][x]
}

// LitBounds returns the smallest rectangle holding every non-black pixel.
func (f *Frame) LitBounds() image.Rectangle {
	var lit image.Rectangle
	for y := range Height {
		for x := range Width {
			if !f[y][x].IsBlack() {
				lit = lit.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return lit
}
