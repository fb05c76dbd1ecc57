package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/ethpandaops/logtools/internal/actions"
	"github.com/ethpandaops/logtools/internal/config"
	"github.com/ethpandaops/logtools/internal/interactive"
	"github.com/ethpandaops/logtools/internal/output"
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch interactive TUI mode",
	Long:  `Launches the interactive Terminal User Interface for logtools.`,
	Run: func(_ *cobra.Command, _ []string) {
		RunInteractive()
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

// RunInteractive shows the main menu until the user exits.
func RunInteractive() {
	fmt.Println("logtools - Interactive Mode")
	fmt.Println("===========================")
	fmt.Println()

	for {
		options := []interactive.MenuOption{
			{
				Name:        "⏱️  Average Durations",
				Description: "Average the TIME(ms) values of a log file",
				Action:      withPause(runAverageMenu),
			},
			{
				Name:        "🕐 Time Window",
				Description: "Print now and now + 1h05m in UTC",
				Action: withPause(func(cfg *config.Config) error {
					actions.Window(os.Stdout, windowClock, cfg.WindowStartOffset, cfg.WindowEndOffset)
					return nil
				}),
			},
			{
				Name:        "🔎 Filter Progress Lines",
				Description: "Copy k6 iteration progress lines into a new file",
				Action:      withPause(runFilterMenu),
			},
			{
				Name:        "📋 Show Config",
				Description: "Display current configuration",
				Action: withPause(func(_ *config.Config) error {
					return actions.ShowConfig(os.Stdout)
				}),
			},
		}

		if err := interactive.ShowMainMenu(options); err != nil {
			if errors.Is(err, interactive.ErrExit) {
				fmt.Println("Goodbye!")
				return
			}
			log.Fatal(err)
		}

		fmt.Println()
	}
}

// withPause loads the config, runs action, reports its error and waits for Enter.
func withPause(action func(cfg *config.Config) error) func() error {
	return func() error {
		cfg, err := config.Load()
		if err == nil {
			fmt.Println()
			err = action(cfg)
		}
		if err != nil {
			fmt.Printf("\n❌ Error: %v\n", err)
		}
		interactive.PauseForEnter()
		return nil
	}
}

func runAverageMenu(cfg *config.Config) error {
	path, err := interactive.AskPath("Log file:", cfg.DurationFile)
	if err != nil {
		return err
	}

	_, err = actions.Average(Logger, os.Stdout, actions.AverageOptions{
		File:    path,
		Pattern: cfg.DurationPattern,
		Summary: interactive.Confirm("Show summary table?"),
	})
	return err
}

func runFilterMenu(cfg *config.Config) error {
	input, err := interactive.AskPath("Input file:", cfg.FilterInput)
	if err != nil {
		return err
	}

	outputPath, err := interactive.AskPath("Output file:", cfg.FilterOutput)
	if err != nil {
		return err
	}

	if _, statErr := os.Stat(outputPath); statErr == nil {
		if !interactive.Confirm(fmt.Sprintf("%s exists. Overwrite it?", outputPath)) {
			fmt.Println("Filter canceled.")
			return nil
		}
	}

	result, err := actions.Filter(Logger, actions.FilterOptions{
		Input:   input,
		Output:  outputPath,
		Pattern: cfg.FilterPattern,
	})
	if err != nil {
		return err
	}

	colors := output.NewColorHelper()
	fmt.Printf("✅ Kept %s lines in %s\n", colors.FormatMatched(result.Matched, result.Scanned), outputPath)
	return nil
}
