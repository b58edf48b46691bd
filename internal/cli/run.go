/*
PURPOSE:
  Defines the 'run' subcommand.
  Executes the benchmark and exports the records.

REQUIREMENTS:
  User-specified:
  - Run the benchmarks described by the config file.
  - Write results to CSV (or JSON Lines).
  - Toggle between quiet and verbose child output.

  Implementation-discovered:
  - Need to load and validate config first.
  - On a fatal failure the original tool exported nothing. Keep that as
    the default; --export-partial writes what was gathered anyway.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.New().Run(), internal/output.Export()
  - Uses: internal/config

ERROR HANDLING:
  - Returns error if config load fails, engine run fails or export fails.

IMPLEMENTATION RULES:
  - Setup flags in init().
  - Logic: Load Config -> Engine.Run -> Export.

USAGE:
  cmdbench run bench.yaml results.csv
  cmdbench run --config bench.yaml -o results.csv

SELF-HEALING INSTRUCTIONS:
  - Check flag names match the documented CLI.

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new CLI overrides.
*/

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/daryltucker/cmdbench/internal/config"
	"github.com/daryltucker/cmdbench/internal/engine"
	"github.com/daryltucker/cmdbench/internal/output"
	"github.com/spf13/cobra"
)

var (
	outputPath    string
	outputFormat  string
	verbose       bool
	echoOutput    bool
	noHeader      bool
	exportPartial bool
)

var runCmd = &cobra.Command{
	Use:   "run [config] [output]",
	Short: "Run the benchmark suite",
	Long: `Executes every task group in the config file, strictly in order:
1. Group initialization command (not timed).
2. For each task: setup command, the measured command repeated
   repetition_count times (each run timed), tear-down command.
3. Group cleanup command (not timed).

Empty helper commands are skipped. The first command that cannot be
started aborts the run.`,
	Example: `  # Run with defaults (searches cmdbench.json/.yaml/.yml/.hcl)
  cmdbench run

  # Explicit config and output
  cmdbench run bench.hcl results.csv

  # Same, with flags
  cmdbench run --config bench.hcl -o results.csv

  # Stream child output and write JSON Lines
  cmdbench run -v -o results.jsonl`,
	Args: cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Positional arguments win over --config / --output.
		outPath := outputPath
		if len(args) == 2 {
			outPath = args[1]
		}

		// 1. Load Config
		cfg, err := config.Load(configArg(args))
		if err != nil {
			return err
		}

		format := strings.ToLower(outputFormat)
		if format == "" {
			format = output.FormatFor(outPath)
		}
		if format != "csv" && format != "json" {
			return fmt.Errorf("unsupported output format %q", format)
		}

		mode := engine.ModeQuiet
		switch {
		case verbose:
			mode = engine.ModeVerbose
		case echoOutput:
			mode = engine.ModeEcho
		}

		// 2. Execution
		e := engine.New(mode, engine.WithLogger(output.Logger))
		runErr := e.Run(cfg)
		if runErr != nil && !exportPartial {
			return runErr
		}

		// 3. Export
		records := e.Records()
		w, err := output.NewWriter(outPath, format, !noHeader)
		if err != nil {
			return errors.Join(runErr, fmt.Errorf("could not export result: %w", err))
		}
		if err := output.Export(w, records); err != nil {
			return errors.Join(runErr, fmt.Errorf("could not export result: %w", err))
		}

		if runErr != nil {
			output.Logger.Warn("Partial result exported", "path", outPath, "records", len(records))
			return runErr
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Result exported to %s.\n", outPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	addConfigFlag(runCmd)

	runCmd.Flags().StringVarP(&outputPath, "output", "o", "cmdbench_results.csv", "Output file for results")
	runCmd.Flags().StringVar(&outputFormat, "format", "", "Output format: csv or json (default from output extension)")
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Stream command output and report exit status")
	runCmd.Flags().BoolVar(&echoOutput, "echo", false, "Print captured standard output after each command")
	runCmd.Flags().BoolVar(&noHeader, "no-header", false, "Omit the CSV header row")
	runCmd.Flags().BoolVar(&exportPartial, "export-partial", false, "Export records gathered before a fatal error")
	runCmd.MarkFlagsMutuallyExclusive("verbose", "echo")
}
