package cmd

import (
	"github.com/spf13/cobra"
	apperrors "github.com/zorak1103/basics/internal/errors"
	"github.com/zorak1103/basics/internal/steps"
)

var greetCmd = &cobra.Command{
	Use:   "greet [name...]",
	Short: "Greet each name on its own line",
	Long: `Greet prints "Hello, {name}!" once per name, in the order given.
Without arguments the names from greet.names in the config are used.`,
	Example: `  basics greet
  basics greet Carol Dave`,
	RunE: func(cmd *cobra.Command, args []string) error {
		names := args
		if len(names) == 0 {
			names = cfg.Program().Names
		}

		logger := newLogger(cmd)
		for _, name := range names {
			logger.Debug("running step", "step", "greet", "name", name)
			if err := steps.Greet(cmd.OutOrStdout(), name); err != nil {
				return &apperrors.StepError{Step: "greet", Err: err}
			}
		}
		return nil
	},
}

// nolint:gochecknoinits // Standard Cobra pattern for command registration
func init() {
	rootCmd.AddCommand(greetCmd)
}
