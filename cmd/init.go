package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zorak1103/basics/internal/templates"
)

var (
	force bool
)

// initFiles maps generated file names to their embedded content, in write order.
var initFiles = []struct {
	name    string
	content []byte
}{
	{"basics.yaml", templates.ConfigYAML},
	{".env", templates.EnvFile},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a sample basics.yaml and .env",
	Long: `Init writes the sample configuration files into the current directory:
  - basics.yaml (operands and log level, set to the built-in defaults)
  - .env (commented BASICS_* environment overrides)

Existing files are kept unless --force is given.`,
	Example: `  # Initialize in current directory
  basics init

  # Force overwrite existing files
  basics init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()

		for _, f := range initFiles {
			if _, err := os.Stat(f.name); err == nil && !force {
				fmt.Fprintf(out, "Skipping %s (already exists, use --force to overwrite)\n", f.name)
				continue
			}

			if err := os.WriteFile(f.name, f.content, 0o600); err != nil {
				return fmt.Errorf("failed to write %s: %w", f.name, err)
			}
			fmt.Fprintf(out, "Created %s\n", f.name)
		}

		fmt.Fprintln(out, "\nRun 'basics' to execute all steps with this configuration.")
		return nil
	},
}

// nolint:gochecknoinits // Standard Cobra pattern for command registration
func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration files")
}
