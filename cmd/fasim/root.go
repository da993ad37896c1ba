package main

import (
	"fmt"
	"os"

	"github.com/aretw0/fasim/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fasim",
	Short: "fasim simulates deterministic finite automata",
	Long: `fasim reads a finite automaton from a semicolon-delimited table and runs
simulation requests against it, printing every transition it takes.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Config file (default fasim.yaml if present)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging of every transition")
	rootCmd.PersistentFlags().Bool("trim-space", false, "Trim whitespace around table and input fields")
	rootCmd.PersistentFlags().Bool("shared-row", false, "Accumulate transitions across table lines (legacy table files)")
}

// loadConfig reads the config file and applies the persistent flags on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("trim-space") {
		cfg.Parse.TrimSpace, _ = cmd.Flags().GetBool("trim-space")
	}
	if cmd.Flags().Changed("shared-row") {
		cfg.Parse.SharedRow, _ = cmd.Flags().GetBool("shared-row")
	}
	return cfg, nil
}

// tableArg picks the table path from the first argument, falling back to the config.
func tableArg(cfg *config.Config, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.Table
}
