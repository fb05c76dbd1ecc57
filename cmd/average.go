package cmd

import (
	"fmt"

	"github.com/ethpandaops/logtools/internal/actions"
	"github.com/ethpandaops/logtools/internal/config"
	"github.com/spf13/cobra"
)

var (
	averagePattern string
	averageSummary bool
)

var averageCmd = &cobra.Command{
	Use:   "average [log-file]",
	Short: "Print the average of TIME(ms) durations in a log file",
	Long: `Scans every line of the log file for "TIME(ms) => <digits>" and prints the
arithmetic mean of the captured values as "Average time: <value>".
Prints 0 when no line carries a duration.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		opts := actions.AverageOptions{
			File:    cfg.DurationFile,
			Pattern: cfg.DurationPattern,
			Summary: averageSummary,
		}
		if len(args) == 1 {
			opts.File = args[0]
		}
		if cmd.Flags().Changed("pattern") {
			opts.Pattern = averagePattern
		}

		if _, err := actions.Average(Logger, cmd.OutOrStdout(), opts); err != nil {
			return fmt.Errorf("average failed: %w", err)
		}
		return nil
	},
}

func init() {
	averageCmd.Flags().StringVarP(&averagePattern, "pattern", "p", "", "Duration pattern with one capture group")
	averageCmd.Flags().BoolVarP(&averageSummary, "summary", "s", false, "Also print a count/min/max/mean table")
	rootCmd.AddCommand(averageCmd)
}
