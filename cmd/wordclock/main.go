package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/garrettladley/wordclock/internal/version"
)

func main() {
	_ = godotenv.Load()

	var flags runFlags
	rootCmd := &cobra.Command{
		Use:     "wordclock",
		Short:   "Tell the time in words on an LED faceplate",
		Version: version.Get(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClock(cmd.Context(), flags.parsed(cmd))
		},
	}
	flags.register(rootCmd)

	rootCmd.AddCommand(previewCmd(&flags))
	addDevCommands(rootCmd)

	if err := fang.Execute(context.Background(), rootCmd, fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}
