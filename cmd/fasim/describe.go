package main

import (
	"fmt"

	"github.com/aretw0/fasim"
	"github.com/aretw0/fasim/internal/cli"
	"github.com/aretw0/fasim/internal/logging"
	"github.com/aretw0/fasim/internal/presentation/tui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var describeCmd = &cobra.Command{
	Use:   "describe [table]",
	Short: "Print the automaton description",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")

		engine, err := fasim.New(tableArg(cfg, args),
			fasim.WithLogger(logging.NewNop()),
			fasim.WithParseOptions(cli.ParseOptions(cfg)...),
		)
		if err != nil {
			return fmt.Errorf("error initializing engine: %w", err)
		}

		out := cmd.OutOrStdout()
		switch format {
		case "text":
			return engine.Describe(out)
		case "markdown":
			render, err := tui.NewRenderer()
			if err != nil {
				return err
			}
			md, err := render(tui.Markdown(engine.Table()))
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(out, md)
			return err
		case "yaml":
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			if err := enc.Encode(engine.Table()); err != nil {
				return err
			}
			return enc.Close()
		}
		return fmt.Errorf("unknown format %q (want text, markdown or yaml)", format)
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().StringP("format", "f", "text", "Output format: text, markdown or yaml")
}
