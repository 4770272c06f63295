// Package main provides bstree, a command line front end for the Trees package.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// app carries what the subcommands share once the root command has loaded the config.
type app struct {
	cfg    *Config
	logger *slog.Logger
}

func main() {
	err := newRootCommand().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string

	a := &app{logger: slog.Default()}

	rootCmd := &cobra.Command{
		Use:   "bstree",
		Short: "Build, inspect and edit unbalanced binary search trees",
		Long: `bstree builds a binary search tree from integers given on the command line
and prints its traversals, statistics and structure.

Commands:
  show      Print traversals and statistics
  remove    Remove a value and show the replacement
  measure   Compare heights of random and sorted insertion`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(configPath, cmd)
			if err != nil {
				return err
			}
			a.cfg = cfg
			color.NoColor = color.NoColor || cfg.NoColor //nolint:reassign // global switch of the color package

			level := slog.LevelInfo
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is .bstree.yaml in . or $HOME)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	rootCmd.AddCommand(showCmd(a))
	rootCmd.AddCommand(removeCmd(a))
	rootCmd.AddCommand(measureCmd(a))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bstree %s\n", version)
		},
	}
}
