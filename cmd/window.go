package cmd

import (
	"fmt"
	"time"

	"github.com/ethpandaops/logtools/internal/actions"
	"github.com/ethpandaops/logtools/internal/config"
	"github.com/ethpandaops/logtools/internal/timewindow"
	"github.com/spf13/cobra"
)

var (
	windowStartOffset time.Duration
	windowEndOffset   time.Duration

	// windowClock is replaced in tests.
	windowClock timewindow.Clock = timewindow.SystemClock{}
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Print the current UTC time and the time 1h05m from now",
	Long: `Prints two UTC timestamps formatted as YYYY-MM-DDTHH:MMZ: the current time
followed by the current time plus one hour and five minutes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		startOffset, endOffset := cfg.WindowStartOffset, cfg.WindowEndOffset
		if cmd.Flags().Changed("start-offset") {
			startOffset = windowStartOffset
		}
		if cmd.Flags().Changed("end-offset") {
			endOffset = windowEndOffset
		}

		window := actions.Window(cmd.OutOrStdout(), windowClock, startOffset, endOffset)
		Logger.WithField("span", window.End.Sub(window.Start)).Debug("Printed time window")

		return nil
	},
}

func init() {
	windowCmd.Flags().DurationVar(&windowStartOffset, "start-offset", config.DefaultWindowStartOffset, "Offset added to now for the first line")
	windowCmd.Flags().DurationVar(&windowEndOffset, "end-offset", config.DefaultWindowEndOffset, "Offset added to now for the second line")
	rootCmd.AddCommand(windowCmd)
}
