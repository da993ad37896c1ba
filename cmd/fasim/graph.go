package main

import (
	"fmt"

	"github.com/aretw0/fasim"
	"github.com/aretw0/fasim/internal/cli"
	"github.com/aretw0/fasim/internal/logging"
	"github.com/aretw0/fasim/internal/presentation/graph"
	"github.com/aretw0/fasim/internal/runtime"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [table]",
	Short: "Export the automaton as a Mermaid diagram",
	Long: `Outputs a Mermaid diagram (graph LR) of the automaton.
With --trace, the states visited by that simulation are highlighted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		traceLine, _ := cmd.Flags().GetString("trace")

		engine, err := fasim.New(tableArg(cfg, args),
			fasim.WithLogger(logging.NewNop()),
			fasim.WithParseOptions(cli.ParseOptions(cfg)...),
		)
		if err != nil {
			return fmt.Errorf("error initializing engine: %w", err)
		}

		var overlay *graph.GraphOverlay
		if traceLine != "" {
			req, err := engine.ParseRequest(traceLine)
			if err != nil {
				return fmt.Errorf("invalid trace: %w", err)
			}
			overlay = graph.OverlayFromTrace(runtime.Run(engine.Table(), req.Start, req.Inputs))
		}

		_, err = fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(engine.Table(), overlay))
		return err
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("trace", "", `Simulation to highlight, e.g. "A;0;1"`)
}
