// Package cmd implements the CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/zorak1103/basics/internal/config"
	apperrors "github.com/zorak1103/basics/internal/errors"
	"github.com/zorak1103/basics/internal/logging"
	"github.com/zorak1103/basics/internal/steps"
	"github.com/zorak1103/basics/internal/version"
)

// Exit code semantics: 0 = success, 1 = general error, 2 = config error
const (
	exitError       = 1
	exitConfigError = 2
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "basics",
	Short: "Sum, greet and divide, in that order",
	Long: `basics runs three steps once, top to bottom:

  1. prints the sum of two integers
  2. greets each configured name
  3. attempts a guarded division, reports the failure kind if it fails,
     and always finishes with "Execution completed."

Operands come from basics.yaml, BASICS_* environment variables or the
built-in defaults (1 + 2, Alice and Bob, 10 / 0).`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if cmd.Name() == "init" || cmd.Name() == "help" {
			return nil
		}

		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded

		if verbose && cfg.ConfigFilePath != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Loaded configuration from: %s\n", cfg.ConfigFilePath)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		runner := steps.NewRunner(cfg.Program(), newLogger(cmd))
		return runner.Run(cmd.Context(), cmd.OutOrStdout())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var cfgErr *apperrors.ConfigurationError
	if errors.As(err, &cfgErr) {
		return exitConfigError
	}
	return exitError
}

// newLogger builds the stderr logger for cmd from the loaded config.
// The level was validated by config.Load; --verbose forces debug.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level, _ := logging.ParseLevel(cfg.Log.Level) // nolint:errcheck // validated on load
	if verbose {
		level = slog.LevelDebug
	}
	return logging.New(cmd.ErrOrStderr(), level)
}

// nolint:gochecknoinits // Standard Cobra pattern for command registration
func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./basics.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// GetConfig returns the loaded configuration or nil if not loaded.
// Must be called after rootCmd.PersistentPreRunE has executed.
func GetConfig() *config.Config {
	return cfg
}
