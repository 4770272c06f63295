package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/g-m-twostay/go-bst/Trees"
)

func showCmd(a *app) *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "show <value>...",
		Short: "Print traversals and statistics of a tree",
		Long: `Build a tree by inserting the values in order, the first one becoming the
root, then print its traversals, renderings and statistics.

Examples:
  bstree show 5 3 8 1 4 7 10
  bstree show --dump 1 2 3 4`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, err := parseValues(args)
			if err != nil {
				return err
			}

			root, err := Trees.From(vs)
			if err != nil {
				return fmt.Errorf("build tree: %w", err)
			}
			a.logger.Debug("built tree", "size", root.Count(), "height", root.Height())

			w := cmd.OutOrStdout()
			writeTraversals(w, root)
			label := color.New(color.FgCyan)
			label.Fprintf(w, "%-12s", "tree:")
			fmt.Fprintln(w, root.String())
			label.Fprintf(w, "%-12s", "debug:")
			fmt.Fprintln(w, root.GoString())
			if dump {
				root.Fprint(w)
			}
			writeStats(w, root)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "also print the tree one node per line")

	return cmd
}
