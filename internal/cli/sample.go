package cli

import (
	"fmt"

	"github.com/daryltucker/cmdbench/internal/config"
	"github.com/daryltucker/cmdbench/internal/output"
	"github.com/spf13/cobra"
)

var sampleCmd = &cobra.Command{
	Use:   "sample [path]",
	Short: "Write a sample configuration (json, yaml or hcl by extension)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.DefaultFiles[0]
		if len(args) == 1 {
			path = args[0]
		}

		if err := config.WriteSample(path); err != nil {
			return err
		}

		output.Logger.Debug("Sample configuration written", "path", path)
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration generated successfully to %s.\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sampleCmd)
}
