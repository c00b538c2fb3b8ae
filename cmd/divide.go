package cmd

import (
	"github.com/spf13/cobra"
	apperrors "github.com/zorak1103/basics/internal/errors"
	"github.com/zorak1103/basics/internal/steps"
)

var (
	numerator   int
	denominator int
)

var divideCmd = &cobra.Command{
	Use:   "divide",
	Short: "Run the guarded division",
	Long: `Divide attempts numerator / denominator. A failure is classified as a
division by zero, a value error or an unexpected error and reported on stdout;
it never changes the exit status. "Execution completed." is always printed last.`,
	Example: `  # 10 / 0 by default
  basics divide

  basics divide --numerator 9 --denominator 3`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		p := cfg.Program()
		if cmd.Flags().Changed("numerator") {
			p.Numerator = numerator
		}
		if cmd.Flags().Changed("denominator") {
			p.Denominator = denominator
		}

		logger := newLogger(cmd)
		logger.Debug("running step", "step", "divide", "numerator", p.Numerator, "denominator", p.Denominator)

		out, err := steps.DivideStep(cmd.OutOrStdout(), p.Numerator, p.Denominator)
		if err != nil {
			return &apperrors.StepError{Step: "divide", Err: err}
		}
		if out.Failed() {
			logger.Info("guarded division failed", "kind", out.Kind.String(), "error", out.Err)
		} else {
			logger.Debug("guarded division succeeded", "value", out.Value)
		}
		return nil
	},
}

// nolint:gochecknoinits // Standard Cobra pattern for command registration
func init() {
	rootCmd.AddCommand(divideCmd)

	divideCmd.Flags().IntVar(&numerator, "numerator", 0, "dividend (default from config)")
	divideCmd.Flags().IntVar(&denominator, "denominator", 0, "divisor (default from config)")
}
