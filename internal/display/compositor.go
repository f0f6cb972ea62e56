// Package display composes lit tokens into frames and fades between them.
package display

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/garrettladley/wordclock/internal/grid"
)

// Presenter shows a whole frame on the panel.
type Presenter interface {
	Present(f Frame) error
}

// Fade controls how a new frame replaces the previous one. A zero Delay
// presents the steps back to back.
type Fade struct {
	Steps int
	Delay time.Duration
}

// Length is the time a fade spends sleeping between its steps.
func (f Fade) Length() time.Duration {
	return time.Duration(max(f.Steps, 1)-1) * f.Delay
}

// Cut replaces the frame in a single step.
var Cut = Fade{Steps: 1}

type Compositor struct {
	presenter Presenter
	clock     clockwork.Clock
	dim       Color
}

type Option func(*Compositor)

func WithClock(c clockwork.Clock) Option {
	return func(comp *Compositor) { comp.clock = c }
}

// WithDim sets the color of the indicator shown while the gate is closed.
func WithDim(c Color) Option {
	return func(comp *Compositor) { comp.dim = c }
}

func New(p Presenter, opts ...Option) *Compositor {
	c := &Compositor{
		presenter: p,
		clock:     clockwork.NewRealClock(),
		dim:       RGB(32, 0, 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Render fades from prev to the frame for scene and returns that frame, which
// the caller passes back as prev on the next call. The first call should pass
// the zero Frame.
func (c *Compositor) Render(prev Frame, scene Scene, gateOpen bool, fade Fade) (Frame, error) {
	if !gateOpen {
		scene = IndicatorScene(c.dim)
	}
	target, err := Target(scene)
	if err != nil {
		return prev, err
	}

	frames := Interpolate(prev, target, fade.Steps)
	for i, f := range frames {
		if err := c.presenter.Present(f); err != nil {
			return prev, fmt.Errorf("display: present step %d/%d: %w", i+1, len(frames), err)
		}
		if fade.Delay > 0 && i < len(frames)-1 {
			c.clock.Sleep(fade.Delay)
		}
	}
	return target, nil
}

type stroke struct {
	token grid.Token
	tier  Tier
	color Color
	span  grid.Span
}

// Target paints every token of scene onto a black frame. A token listed in
// several layers takes the color of its highest tier. Any token missing from
// the layout fails the whole frame.
func Target(scene Scene) (Frame, error) {
	strokes, err := resolve(scene)
	if err != nil {
		return Frame{}, err
	}
	var f Frame
	for _, s := range strokes {
		f.Fill(s.span.Pixels(), s.color)
	}
	return f, nil
}

// resolve orders strokes lowest tier first so higher tiers win any cell that
// superimposed tokens share.
func resolve(scene Scene) ([]stroke, error) {
	byToken := make(map[grid.Token]stroke)
	for _, l := range scene.layers() {
		for _, tok := range l.layer.Tokens {
			span, err := grid.Lookup(tok)
			if err != nil {
				return nil, fmt.Errorf("display: %s layer: %w", l.tier, err)
			}
			if cur, ok := byToken[tok]; ok && cur.tier >= l.tier {
				continue
			}
			byToken[tok] = stroke{token: tok, tier: l.tier, color: l.layer.Color, span: span}
		}
	}

	strokes := make([]stroke, 0, len(byToken))
	for _, s := range byToken {
		strokes = append(strokes, s)
	}
	slices.SortFunc(strokes, func(a, b stroke) int {
		if c := cmp.Compare(a.tier, b.tier); c != 0 {
			return c
		}
		return cmp.Compare(a.token, b.token)
	})
	return strokes, nil
}

// Interpolate returns the frames of a linear fade from prev to target. The
// last frame is always target.
func Interpolate(prev, target Frame, steps int) []Frame {
	steps = max(steps, 1)
	frames := make([]Frame, steps)
	for s := range steps {
		f := &frames[s]
		for y := range Height {
			for x := range Width {
				f[y][x] = lerp(prev[y][x], target[y][x], s+1, steps)
			}
		}
	}
	return frames
}

func lerp(from, to Color, num, den int) Color {
	return Color{
		R: lerpChannel(from.R, to.R, num, den),
		G: lerpChannel(from.G, to.G, num, den),
		B: lerpChannel(from.B, to.B, num, den),
	}
}

func lerpChannel(from, to uint8, num, den int) uint8 {
	delta := int(to) - int(from)
	return uint8(int(from) + delta*num/den)
}
