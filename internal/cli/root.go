/*
PURPOSE:
  Defines the root Cobra command for the cmdbench CLI.
  Handles global flags and logger initialization.

REQUIREMENTS:
  User-specified:
  - Provide a CLI interface.
  - Support global flags like --log-level.

  Implementation-discovered:
  - Needs to expose an Execute() function for main.go.
  - Log level/format must be applied before any subcommand logs.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/cmdbench/main.go
  - Calls: Child commands (run, sample, validate)
  - Modifies: output.Logger

ERROR HANDLING:
  - Returns error to main.go for exit code handling.

IMPLEMENTATION RULES:
  - Use `PersistentFlags()` for flags available to all subcommands.
  - Keep Run logic in subcommands.

USAGE:
  Called by main.go.

SELF-HEALING INSTRUCTIONS:
  - If adding new global flags, add them to init().

RELATED FILES:
  - cmd/cmdbench/main.go
  - internal/output/logger.go

MAINTENANCE:
  - Update when adding global configuration options.
*/

package cli

import (
	"github.com/daryltucker/cmdbench/internal/output"
	"github.com/spf13/cobra"
)

var (
	// cfgFile stores the path to the config file (if specified via --config)
	cfgFile   string
	logLevel  string
	logFormat string

	rootCmd = &cobra.Command{
		Use:   "cmdbench",
		Short: "Benchmark shell commands defined in a config file",
		Long: `Runs groups of commands with setup/tear-down hooks, times every measured
invocation with nanosecond resolution and exports one record per run.
Use 'run --help' for benchmark options.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := output.Setup(logLevel, logFormat, cmd.ErrOrStderr())
			return err
		},
	}
)

// addConfigFlag registers --config on commands that read a config file.
func addConfigFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&cfgFile, "config", "", "config file (default searches cmdbench.json, .yaml, .yml, .hcl)")
}

// configArg returns the positional config path if given, else --config.
func configArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfgFile
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (env "+output.EnvLogLevel+")")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text or json (env "+output.EnvLogFormat+")")
}
