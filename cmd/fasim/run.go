package main

import (
	"os"

	"github.com/aretw0/fasim/internal/cli"
	"github.com/aretw0/fasim/internal/presentation/text"
	"github.com/aretw0/fasim/internal/presentation/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [table] [inputs]",
	Short: "Simulate every request of an input file",
	Long: `Prints the automaton description and then one trace per line of the input file.
Missing file names are asked for interactively, defaulting to faparity.txt and fainputparity.txt.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		debug, _ := cmd.Flags().GetBool("debug")
		noPrompt, _ := cmd.Flags().GetBool("no-prompt")
		color, _ := cmd.Flags().GetBool("color")
		if cmd.Flags().Changed("workers") {
			cfg.Workers, _ = cmd.Flags().GetInt("workers")
		}

		opts := cli.SessionOptions{
			Config: cfg,
			Debug:  debug,
			Out:    cmd.OutOrStdout(),
		}
		if len(args) > 0 {
			opts.TablePath = args[0]
		}
		if len(args) > 1 {
			opts.RequestsPath = args[1]
		}

		interactive := term.IsTerminal(int(os.Stdin.Fd()))
		if !noPrompt && interactive {
			opts.In = cmd.InOrStdin()
			opts.Banner = opts.TablePath == "" || opts.RequestsPath == ""
		}
		if color {
			opts.Style = tui.StyleFor(cmd.OutOrStdout())
		} else {
			opts.Style = text.Plain{}
		}

		_, err = cli.RunSession(cmd.Context(), opts)
		return err
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("no-prompt", false, "Never prompt; use the configured file names")
	runCmd.Flags().Bool("color", false, "Color states when writing to a terminal")
	runCmd.Flags().IntP("workers", "w", 1, "Number of simulations run concurrently")

	rootCmd.RunE = runCmd.RunE
	rootCmd.Args = runCmd.Args
}
