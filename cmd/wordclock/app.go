package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/garrettladley/wordclock/internal/clock"
	"github.com/garrettladley/wordclock/internal/config"
	"github.com/garrettladley/wordclock/internal/display"
	"github.com/garrettladley/wordclock/internal/gate"
	"github.com/garrettladley/wordclock/internal/overlay"
	"github.com/garrettladley/wordclock/internal/sink"
	"github.com/garrettladley/wordclock/internal/xslog"
)

// runFlags override the environment when set.
type runFlags struct {
	mode         string
	modifiers    string
	modifiersSet bool
	sink         string
	birthday     string
}

func (f *runFlags) register(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&f.mode, "mode", "", "what to show: clock, time_test or basic_test (env MODE)")
	flags.StringVar(&f.modifiers, "modifiers", "", "comma separated overlays: birthday,friday,iloveyou,byjeremy,leah, or none (env MODIFIERS)")
	flags.StringVar(&f.sink, "sink", "", "where frames go: terminal, braille or spi (env DISPLAY_SINK)")
	flags.StringVar(&f.birthday, "birthday", "", "birthday as MM-DD (env BIRTHDAY)")
}

// parsed records which flags were given, so an explicit empty value can
// override the environment.
func (f runFlags) parsed(cmd *cobra.Command) runFlags {
	f.modifiersSet = cmd.Flags().Changed("modifiers")
	return f
}

// app is everything a run needs, resolved before any hardware is touched.
type app struct {
	cfg       config.Config
	mode      clock.Mode
	modifiers overlay.Modifiers
	sinkKind  sink.Kind
	logger    *slog.Logger
}

func setup(f runFlags, logOut io.Writer) (*app, error) {
	cfg, err := config.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	a := &app{cfg: cfg, mode: cfg.Mode}

	if f.mode != "" {
		if a.mode, err = clock.ParseMode(f.mode); err != nil {
			return nil, err
		}
	}

	names := cfg.Modifiers
	if f.modifiersSet {
		names = strings.Split(f.modifiers, ",")
	}
	if a.modifiers, err = overlay.ParseModifiers(names); err != nil {
		return nil, err
	}

	if f.birthday != "" {
		if a.cfg.Birthday, err = overlay.ParseMonthDay(f.birthday); err != nil {
			return nil, err
		}
	}

	kind := cfg.Display.Sink
	if f.sink != "" {
		kind = f.sink
	}
	if a.sinkKind, err = sink.ParseKind(kind); err != nil {
		return nil, err
	}

	a.logger = newLogger(cfg, logOut).With(
		xslog.RunID(uuid.NewString()),
		xslog.Version(),
	)
	slog.SetDefault(a.logger)
	return a, nil
}

func newLogger(cfg config.Config, w io.Writer) *slog.Logger {
	if cfg.Env.IsDevelopment() {
		return xslog.NewTextLogger(w, cfg.LogLevel)
	}
	return xslog.NewLogger(w, cfg.LogLevel)
}

func (a *app) gate() *gate.Gate {
	return gate.New(a.cfg.Gate)
}

func (a *app) loop(p display.Presenter, g clock.Opener) *clock.Loop {
	comp := display.New(p, display.WithDim(a.cfg.Colors.Dim))
	return clock.New(comp,
		clock.WithGate(g),
		clock.WithPrimaryColor(a.cfg.Colors.Primary),
		clock.WithOverlay(overlay.Config{
			Enabled:        a.modifiers,
			Birthday:       a.cfg.Birthday,
			SecondaryColor: a.cfg.Colors.Secondary,
			Palette:        overlay.DefaultPalette,
		}),
		clock.WithInterval(a.cfg.Display.Tick),
		clock.WithFade(a.cfg.Display.Fade()),
		clock.WithScanDelay(a.cfg.Display.ScanDelay),
	)
}

func (a *app) logStart(ctx context.Context, g *gate.Gate, sinkName string) {
	a.logger.InfoContext(ctx, "starting",
		xslog.Mode(a.mode.String()),
		xslog.Modifiers(a.modifiers.Names()),
		xslog.Sink(sinkName),
		xslog.Capability(g.Capability().String()))
}

func runClock(ctx context.Context, f runFlags) error {
	a, err := setup(f, os.Stderr)
	if err != nil {
		return err
	}

	g := a.gate()
	defer func() { _ = g.Close() }()

	s, err := sink.Open(a.sinkKind, sink.SPIOpts{
		Bus: a.cfg.Display.SPIBus,
		Hz:  a.cfg.Display.SPIHz,
	})
	if err != nil {
		return fmt.Errorf("failed to open %s sink: %w", a.sinkKind, err)
	}
	defer func() {
		if err := s.Close(); err != nil {
			a.logger.ErrorContext(ctx, "failed to close sink", xslog.Error(err))
		}
	}()

	a.logStart(ctx, g, string(a.sinkKind))
	ctx = xslog.WithLogger(ctx, a.logger)

	loop := a.loop(s, g)
	if err := sink.Guard(s, func() error { return loop.Run(ctx, a.mode) }); err != nil {
		a.logger.ErrorContext(ctx, "clock stopped", xslog.Error(err))
		return err
	}
	a.logger.InfoContext(ctx, "clock stopped")
	return nil
}
