// Package clock drives the panel: it turns the time into a scene every tick
// and hands it to the compositor.
package clock

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/garrettladley/wordclock/internal/display"
	"github.com/garrettladley/wordclock/internal/grid"
	"github.com/garrettladley/wordclock/internal/overlay"
	"github.com/garrettladley/wordclock/internal/timewords"
	"github.com/garrettladley/wordclock/internal/xslog"
)

const minutesPerDay = 24 * 60

// Opener reports whether the room lights allow the time to show.
type Opener interface {
	Open(ctx context.Context) bool
}

type alwaysOpen struct{}

func (alwaysOpen) Open(context.Context) bool { return true }

type Loop struct {
	compositor *display.Compositor
	clock      clockwork.Clock
	gate       Opener
	logger     *slog.Logger

	primary   display.Color
	overlay   overlay.Config
	interval  time.Duration
	fade      display.Fade
	scanDelay time.Duration
}

type Option func(*Loop)

func WithClock(c clockwork.Clock) Option {
	return func(l *Loop) { l.clock = c }
}

func WithGate(g Opener) Option {
	return func(l *Loop) { l.gate = g }
}

// WithLogger pins the loop's logger. Without it, Run logs through the logger
// carried by its context.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loop) { l.logger = logger }
}

func WithPrimaryColor(c display.Color) Option {
	return func(l *Loop) { l.primary = c }
}

// WithOverlay sets the modifiers, birthday and colors of the overlay.
func WithOverlay(cfg overlay.Config) Option {
	return func(l *Loop) { l.overlay = cfg }
}

// WithInterval sets the time between clock ticks.
func WithInterval(d time.Duration) Option {
	return func(l *Loop) { l.interval = d }
}

func WithFade(f display.Fade) Option {
	return func(l *Loop) { l.fade = f }
}

// WithScanDelay sets the pause between steps of the test modes.
func WithScanDelay(d time.Duration) Option {
	return func(l *Loop) { l.scanDelay = d }
}

func New(c *display.Compositor, opts ...Option) *Loop {
	l := &Loop{
		compositor: c,
		clock:      clockwork.NewRealClock(),
		gate:       alwaysOpen{},
		primary:    display.RGB(255, 255, 255),
		overlay: overlay.Config{
			Enabled:        overlay.Modifiers{},
			SecondaryColor: display.RGB(255, 32, 64),
			Palette:        overlay.DefaultPalette,
		},
		interval: 5 * time.Second,
		fade:     display.Fade{Steps: 20, Delay: 25 * time.Millisecond},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run shows mode until it completes or ctx is done. Cancellation is only
// observed between ticks, so a fade in progress always finishes. A canceled
// context is a clean stop and returns nil.
func (l *Loop) Run(ctx context.Context, mode Mode) error {
	if l.logger != nil {
		ctx = xslog.WithLogger(ctx, l.logger)
	}
	ctx = xslog.WithAttrs(ctx, xslog.Mode(mode.String()))

	switch mode {
	case ModeClock:
		return l.runClock(ctx)
	case ModeTimeTest:
		return l.runTimeTest(ctx)
	case ModeBasicTest:
		return l.runBasicTest(ctx)
	default:
		return &InvalidModeError{Mode: string(mode)}
	}
}

func (l *Loop) runClock(ctx context.Context) error {
	var (
		logger = xslog.FromContext(ctx)
		st     = overlay.NewState()
		prev   display.Frame
	)
	logger.DebugContext(ctx, "clock running", xslog.Duration(l.fade.Length()))
	for {
		now := l.clock.Now()
		primary := timewords.Derive(now)
		ov, next := overlay.Tick(now, primary, st, l.overlay)
		open := l.gate.Open(ctx)

		logger.DebugContext(ctx, "tick",
			xslog.Tokens(timewords.Phrase(primary)),
			xslog.Counter("secondary", st.Secondary.Value),
			xslog.Counter("fade", st.Fade.Value),
			xslog.GateOpen(open))
		st = next

		scene := display.Scene{
			Primary:   display.Layer{Tokens: primary, Color: l.primary},
			Secondary: ov.Secondary,
			Tertiary:  ov.Tertiary,
		}
		f, err := l.compositor.Render(prev, scene, open, l.fade)
		if err != nil {
			return fmt.Errorf("clock: render %s: %w", now.Format(time.Kitchen), err)
		}
		prev = f

		select {
		case <-ctx.Done():
			return nil
		case <-l.clock.After(l.interval):
		}
	}
}

func (l *Loop) runTimeTest(ctx context.Context) error {
	var (
		logger = xslog.FromContext(ctx)
		now    = l.clock.Now()
		prev   display.Frame
		shown  int
	)
	defer func() { logger.InfoContext(ctx, "time test finished", xslog.Count(shown)) }()

	for m := range minutesPerDay {
		t := time.Date(now.Year(), now.Month(), now.Day(), m/60, m%60, 0, 0, now.Location())
		primary := timewords.Derive(t)
		logger.DebugContext(ctx, "time test", xslog.Tokens(timewords.Phrase(primary)))

		f, err := l.compositor.Render(prev, display.Scene{
			Primary: display.Layer{Tokens: primary, Color: l.primary},
		}, true, display.Cut)
		if err != nil {
			return fmt.Errorf("clock: render %s: %w", t.Format("15:04"), err)
		}
		prev = f
		shown++

		if !l.pause(ctx) {
			return nil
		}
	}
	return nil
}

func (l *Loop) runBasicTest(ctx context.Context) error {
	var (
		logger = xslog.FromContext(ctx)
		all    = grid.All()
		prev   display.Frame
		shown  int
	)
	defer func() { logger.InfoContext(ctx, "basic test finished", xslog.Count(shown)) }()

	for _, tok := range all {
		logger.DebugContext(ctx, "basic test", xslog.Tokens(tok.String()))
		f, err := l.compositor.Render(prev, display.Scene{
			Primary: display.Layer{Tokens: []grid.Token{tok}, Color: l.primary},
		}, true, display.Cut)
		if err != nil {
			return fmt.Errorf("clock: render %q: %w", tok, err)
		}
		prev = f
		shown++

		if !l.pause(ctx) {
			return nil
		}
	}

	if _, err := l.compositor.Render(prev, display.Scene{
		Primary: display.Layer{Tokens: all, Color: l.primary},
	}, true, display.Cut); err != nil {
		return fmt.Errorf("clock: render all: %w", err)
	}
	shown++
	l.pause(ctx)
	return nil
}

// pause waits one scan delay and reports whether to keep going.
func (l *Loop) pause(ctx context.Context) bool {
	if l.scanDelay <= 0 {
		return ctx.Err() == nil
	}
	select {
	case <-ctx.Done():
		return false
	case <-l.clock.After(l.scanDelay):
		return true
	}
}
