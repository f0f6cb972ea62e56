//go:build !release

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/garrettladley/wordclock/internal/display"
	"github.com/garrettladley/wordclock/internal/sink"
	"github.com/garrettladley/wordclock/internal/timewords"
)

func phraseCmd() *cobra.Command {
	var draw bool
	cmd := &cobra.Command{
		Use:   "phrase [HH:MM]",
		Short: "Print the words shown at a time",
		Long:  "Prints the words the clock lights for a time of day, or for now when no time is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			at := time.Now()
			if len(args) == 1 {
				t, err := parseClockTime(args[0], at)
				if err != nil {
					return err
				}
				at = t
			}

			tokens := timewords.Derive(at)
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s  %s\n", at.Format("15:04"), timewords.Phrase(tokens))

			if draw {
				f, err := display.Target(display.Scene{
					Primary: display.Layer{Tokens: tokens, Color: display.RGB(255, 255, 255)},
				})
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(out, sink.Dots(f))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&draw, "draw", false, "also draw the lit pixels in braille")
	return cmd
}

// parseClockTime reads HH:MM as a time on the same day as ref.
func parseClockTime(s string, ref time.Time) (time.Time, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q, want HH:MM: %w", s, err)
	}
	return time.Date(ref.Year(), ref.Month(), ref.Day(), t.Hour(), t.Minute(), 0, 0, ref.Location()), nil
}
