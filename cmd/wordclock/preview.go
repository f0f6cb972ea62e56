package main

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/garrettladley/wordclock/internal/paths"
	"github.com/garrettladley/wordclock/internal/sink"
	"github.com/garrettladley/wordclock/internal/tui"
	"github.com/garrettladley/wordclock/internal/xslog"
)

func previewCmd(flags *runFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Show the faceplate in the terminal",
		Long:  "Runs the clock against a full-screen preview of the faceplate instead of a panel.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd.Context(), flags.parsed(cmd))
		},
	}
}

func runPreview(ctx context.Context, f runFlags) error {
	// the preview owns the terminal, so logs go to a file
	logPath, err := paths.PreviewLog()
	if err != nil {
		return err
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open preview log: %w", err)
	}
	defer func() { _ = logFile.Close() }()

	a, err := setup(f, logFile)
	if err != nil {
		return err
	}

	g := a.gate()
	defer func() { _ = g.Close() }()

	model := tui.New(tui.Deps{Gate: g})
	p := tea.NewProgram(&model)
	s := tui.NewSink(p)

	a.logStart(ctx, g, "preview")
	ctx, cancel := context.WithCancel(xslog.WithLogger(ctx, a.logger))
	defer cancel()

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer cancel()
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("preview: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		defer p.Quit()
		loop := a.loop(s, g)
		return sink.Guard(s, func() error { return loop.Run(egCtx, a.mode) })
	})
	return eg.Wait()
}
