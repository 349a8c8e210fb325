package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/emergency-response/internal/config"
	"github.com/oshokin/emergency-response/internal/service/simulator"
	"github.com/oshokin/emergency-response/internal/version"
)

var (
	// rounds overrides the number of activation passes from the scenario.
	rounds int
	// format selects the report format.
	format string
	// logLevel overrides the scenario's log level.
	logLevel string

	// rootCmd represents the base command for running a scenario.
	rootCmd = &cobra.Command{
		Use:   "emergency-sim [scenario.yaml]",
		Short: "Run an emergency-response scenario and print the resulting severity.",
		Long: `Loads a YAML scenario describing the initial severity of an emergency and
its ordered response plan, then runs the requested number of activation passes.

Each pass applies every response once, in plan order. Effects compound across
passes. Delayed responses stay dormant until their configured pass.
The report is printed to stdout as a table or as JSON; logs go to stderr.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		Version:      version.Short(),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			// Use scenario argument if provided, otherwise the default filename.
			configPath := config.DefaultConfigFilename
			if len(args) > 0 {
				configPath = args[0]
			}

			options := &simulator.Options{
				ConfigPath: configPath,
				Rounds:     rounds,
				Format:     simulator.Format(format),
				LogLevel:   logLevel,
			}

			return simulator.Run(ctx, options, cmd.OutOrStdout())
		},
	}
)

// Execute runs the emergency-sim CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().IntVarP(&rounds, "rounds", "r", 0, "number of activation passes (overrides scenario)")
	rootCmd.Flags().StringVarP(&format, "format", "f", string(simulator.FormatText), "report format: text or json")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "", "log level: debug, info, warn, error or off")
}
