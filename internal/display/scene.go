package display

import "github.com/garrettladley/wordclock/internal/grid"

// Tier decides which color a token gets when it shows up in more than one
// layer. Higher tiers win.
type Tier uint8

const (
	Tertiary Tier = iota + 1
	Secondary
	Primary
)

func (t Tier) String() string {
	switch t {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	case Tertiary:
		return "tertiary"
	default:
		return "unknown"
	}
}

// Layer is a set of tokens sharing one color.
type Layer struct {
	Tokens []grid.Token
	Color  Color
}

// Scene is everything lit during one tick.
type Scene struct {
	Primary   Layer
	Secondary Layer
	Tertiary  Layer
}

func (s Scene) layers() []struct {
	tier  Tier
	layer Layer
} {
	return []struct {
		tier  Tier
		layer Layer
	}{
		{tier: Primary, layer: s.Primary},
		{tier: Secondary, layer: s.Secondary},
		{tier: Tertiary, layer: s.Tertiary},
	}
}

// IndicatorScene is what the panel shows while the room lights are off.
func IndicatorScene(dim Color) Scene {
	return Scene{
		Tertiary: Layer{Tokens: []grid.Token{grid.Indicator}, Color: dim},
	}
}
