package grid

import "image"

const blankCell = '·'

// Plate is the lettering of the whole faceplate, indexed [row][col] from 0.
type Plate [Rows][Cols]rune

var plate = buildPlate()

// Faceplate returns the letters cut into the faceplate.
func Faceplate() Plate {
	return plate
}

// Letter returns the rune t shows at cell p (0-based), if t covers p.
func (t Token) Letter(p image.Point) (rune, bool) {
	if !t.Valid() {
		return 0, false
	}
	e := layout[t]
	cells := e.span.Cells()
	if !p.In(cells) {
		return 0, false
	}
	face := []rune(e.face)
	idx := (p.Y-cells.Min.Y)*e.span.Width + (p.X - cells.Min.X)
	if idx >= len(face) {
		return blankCell, true
	}
	return face[idx], true
}

func buildPlate() Plate {
	var p Plate
	for row := range p {
		for col := range p[row] {
			p[row][col] = blankCell
		}
	}
	for _, t := range All() {
		cells := layout[t].span.Cells()
		for y := cells.Min.Y; y < cells.Max.Y; y++ {
			for x := cells.Min.X; x < cells.Max.X; x++ {
				if r, ok := t.Letter(image.Pt(x, y)); ok {
					p[y][x] = r
				}
			}
		}
	}
	return p
}
