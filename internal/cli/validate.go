/*
PURPOSE:
  Defines the 'validate' subcommand.
  Loads the config and prints what a run would do, without running it.

REQUIREMENTS:
  User-specified:
  - Check a config file before a long benchmark.

  Implementation-discovered:
  - Useful validation step before full run.
  - Show planned measured runs per task so typos in repetition_count stand out.

ARCHITECTURE INTEGRATION:
  - Calls: internal/config.Load(), internal/config.PlannedRuns()

ERROR HANDLING:
  - Returns the load/validation error unchanged.

IMPLEMENTATION RULES:
  - Simple output to stdout.
  - Never invoke any command.

USAGE:
  cmdbench validate bench.yaml
  cmdbench validate --config bench.yaml

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/config/config.go

MAINTENANCE:
  - None.
*/

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/daryltucker/cmdbench/internal/config"
	"github.com/daryltucker/cmdbench/internal/model"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [config]",
	Short: "Validate the config file and print the execution plan",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configArg(args))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, group := range cfg.TaskGroups {
			fmt.Fprintf(out, "group %q\n", group.Name)
			printHelper(out, "initialization", group.InitializationCommand)
			for _, task := range group.Tasks {
				label := model.ExecutionRecord{Group: group.Name, Command: task.Executable()}.Label()
				fmt.Fprintf(out, "  - %s x%d: %s\n", label, task.RepetitionCount, strings.Join(task.Command, " "))
				printHelper(out, "    setup", task.SetupCommand)
				printHelper(out, "    tear_down", task.TearDownCommand)
			}
			printHelper(out, "cleanup", group.CleanupCommand)
		}
		fmt.Fprintf(out, "%d groups, %d measured runs\n", len(cfg.TaskGroups), config.PlannedRuns(cfg))
		return nil
	},
}

func printHelper(out io.Writer, name string, argv []string) {
	if model.IsHelperAbsent(argv) {
		return
	}
	fmt.Fprintf(out, "  %s: %s\n", name, strings.Join(argv, " "))
}

func init() {
	rootCmd.AddCommand(validateCmd)
	addConfigFlag(validateCmd)
}
