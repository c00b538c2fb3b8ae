package cmd

import (
	"github.com/spf13/cobra"
	apperrors "github.com/zorak1103/basics/internal/errors"
	"github.com/zorak1103/basics/internal/steps"
)

var (
	sumX int
	sumY int
)

var sumCmd = &cobra.Command{
	Use:   "sum",
	Short: "Print the sum of x and y",
	Example: `  # Use the configured operands (1 and 2 by default)
  basics sum

  # Override one operand
  basics sum --y 40`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		p := cfg.Program()
		if cmd.Flags().Changed("x") {
			p.X = sumX
		}
		if cmd.Flags().Changed("y") {
			p.Y = sumY
		}

		newLogger(cmd).Debug("running step", "step", "sum", "x", p.X, "y", p.Y)
		if _, err := steps.Sum(cmd.OutOrStdout(), p.X, p.Y); err != nil {
			return &apperrors.StepError{Step: "sum", Err: err}
		}
		return nil
	},
}

// nolint:gochecknoinits // Standard Cobra pattern for command registration
func init() {
	rootCmd.AddCommand(sumCmd)

	sumCmd.Flags().IntVar(&sumX, "x", 0, "first operand (default from config)")
	sumCmd.Flags().IntVar(&sumY, "y", 0, "second operand (default from config)")
}
