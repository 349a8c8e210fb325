package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oshokin/emergency-response/internal/config"
	"github.com/oshokin/emergency-response/internal/logger"
	"github.com/oshokin/emergency-response/internal/service/harness"
	"github.com/oshokin/emergency-response/internal/version"
)

var (
	// logLevel sets the process-wide log level.
	logLevel string

	// rootCmd represents the base command for the scenario battery.
	rootCmd = &cobra.Command{
		Use:   "emergency-check",
		Short: "Run the built-in battery of emergency scenarios.",
		Long: `Runs a fixed set of scenarios against the response model and prints
PASS or FAIL for each one. Exits with a non-zero status if any check fails.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		Version:      version.Short(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			level, ok := logger.ParseLogLevel(logLevel)
			if !ok {
				return fmt.Errorf("%w: %q", config.ErrInvalidLogLevel, logLevel)
			}

			logger.SetLevel(level)

			_, err := harness.Run(cmd.Context(), cmd.OutOrStdout())

			return err
		},
	}
)

// Execute runs the emergency-check CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "warn", "log level: debug, info, warn, error or off")
}
