package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/g-m-twostay/go-bst/Trees"
)

// parseValues converts the positional arguments to ints.
func parseValues(args []string) ([]int, error) {
	vs := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", a, err)
		}
		vs[i] = v
	}
	return vs, nil
}

func joinValues(vs []int) string {
	s := make([]string, len(vs))
	for i, v := range vs {
		s[i] = strconv.Itoa(v)
	}
	return strings.Join(s, " ")
}

func collectValues(walk func(func(int) bool) bool) []int {
	var vs []int
	walk(func(v int) bool {
		vs = append(vs, v)
		return true
	})
	return vs
}

func levelValues(root *Trees.Node[int]) []int {
	var vs []int
	root.LevelOrder(func(n *Trees.Node[int]) bool {
		vs = append(vs, n.Value())
		return true
	})
	return vs
}

// writeTraversals prints the four orders of the tree under root.
func writeTraversals(w io.Writer, root *Trees.Node[int]) {
	label := color.New(color.FgCyan)
	label.Fprintf(w, "%-12s", "pre-order:")
	fmt.Fprintln(w, joinValues(collectValues(root.PreOrder)))
	label.Fprintf(w, "%-12s", "in-order:")
	fmt.Fprintln(w, joinValues(collectValues(root.InOrder)))
	label.Fprintf(w, "%-12s", "post-order:")
	fmt.Fprintln(w, joinValues(collectValues(root.PostOrder)))
	label.Fprintf(w, "%-12s", "level-order:")
	fmt.Fprintln(w, joinValues(levelValues(root)))
}

// writeStats renders a one row table of statistics of the tree under root.
func writeStats(w io.Writer, root *Trees.Node[int]) {
	mn, mx := root.Minimum().Value(), root.Maximum().Value()

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Count", "Height", "Min", "Max", "Valid"})
	t.AppendRow(table.Row{root.Count(), root.Height(), mn, mx, root.IsBST(mn, mx) && !root.Corrupt()})
	t.Render()
}
