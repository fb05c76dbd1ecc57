package cmd

import (
	"fmt"

	"github.com/ethpandaops/logtools/internal/actions"
	"github.com/ethpandaops/logtools/internal/config"
	"github.com/spf13/cobra"
)

var filterPattern string

var filterCmd = &cobra.Command{
	Use:   "filter [input-file] [output-file]",
	Short: "Copy k6 iteration progress lines into a new file",
	Long: `Copies every line of the input file matching
"<digits>/<digits> VUs, <digits> complete and <digits> interrupted iterations"
into the output file, unchanged and in order. The output file is created or truncated.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		opts := actions.FilterOptions{
			Input:   cfg.FilterInput,
			Output:  cfg.FilterOutput,
			Pattern: cfg.FilterPattern,
		}
		if len(args) > 0 {
			opts.Input = args[0]
		}
		if len(args) > 1 {
			opts.Output = args[1]
		}
		if cmd.Flags().Changed("pattern") {
			opts.Pattern = filterPattern
		}

		if _, err := actions.Filter(Logger, opts); err != nil {
			return fmt.Errorf("filter failed: %w", err)
		}
		return nil
	},
}

func init() {
	filterCmd.Flags().StringVarP(&filterPattern, "pattern", "p", "", "Pattern a line must contain to be kept")
	rootCmd.AddCommand(filterCmd)
}
