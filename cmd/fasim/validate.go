package main

import (
	"fmt"

	"github.com/aretw0/fasim"
	"github.com/aretw0/fasim/internal/cli"
	"github.com/aretw0/fasim/internal/logging"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [table]",
	Short: "Check the table for malformed lines",
	Long:  `Parses the table and reports dangling symbols and uses of the reserved None state.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		engine, err := fasim.New(tableArg(cfg, args),
			fasim.WithLogger(logging.NewNop()),
			fasim.WithParseOptions(cli.ParseOptions(cfg)...),
		)
		if err != nil {
			return fmt.Errorf("error initializing engine: %w", err)
		}
		table := engine.Table()
		out := cmd.OutOrStdout()

		diags := table.Diagnostics()
		for _, d := range diags {
			fmt.Fprintln(out, d.String())
		}
		if len(diags) > 0 {
			return fmt.Errorf("validation failed: %d problem(s)", len(diags))
		}
		fmt.Fprintf(out, "Table is valid: %d state(s)\n", table.Len())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
