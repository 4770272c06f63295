package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/g-m-twostay/go-bst/Trees"
)

// ErrValueNotFound is returned when the value to remove isn't in the tree.
var ErrValueNotFound = errors.New("value not in tree")

func removeCmd(a *app) *cobra.Command {
	var target int

	cmd := &cobra.Command{
		Use:   "remove --value <v> <value>...",
		Short: "Remove a value from a tree and show what replaced it",
		Long: `Build a tree by inserting the values in order, remove the first node
holding --value, and print the node that took its place.

Examples:
  bstree remove --value 8 5 3 8 1 4 7 10`,
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

			n := root.Search(target)
			if n == nil {
				return fmt.Errorf("remove %d: %w", target, ErrValueNotFound)
			}

			wasRoot := n == root
			rep := n.Remove()
			a.logger.Debug("removed node", "value", target, "root", wasRoot, "replaced", rep != nil)

			w := cmd.OutOrStdout()
			if rep != nil {
				color.New(color.FgGreen).Fprintf(w, "removed %d, replaced by %d\n", target, rep.Value())
			} else {
				color.New(color.FgGreen).Fprintf(w, "removed %d, no replacement\n", target)
			}

			if wasRoot {
				root = rep
			}
			if root == nil {
				color.New(color.FgYellow).Fprintln(w, "tree is now empty")
				return nil
			}
			if wasRoot {
				fmt.Fprintf(w, "new root: %d\n", root.Value())
			}
			writeTraversals(w, root)
			writeStats(w, root)
			return nil
		},
	}

	cmd.Flags().IntVar(&target, "value", 0, "value to remove")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}
