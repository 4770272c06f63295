package main

import (
	"io"
	"math/rand"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/g-m-twostay/go-bst/Trees"
)

// shape of a tree after a sequence of insertions.
type shape struct {
	order     string
	size      uint
	height    uint
	leafDepth float64 // average depth of leaves, the root has depth 1.
	elapsed   time.Duration
}

func measureCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "measure",
		Short: "Compare heights of random and sorted insertion",
		Long: `Insert --n values in random order and in ascending order and report the
height and average leaf depth of both trees. The tree isn't balanced, so the
ascending order always gives a tree of height n.

The defaults can also be set with measure.n and measure.seed in the config
file or BSTREE_MEASURE_N and BSTREE_MEASURE_SEED.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, seed := a.cfg.Measure.N, a.cfg.Measure.Seed
			a.logger.Debug("measuring", "n", n, "seed", seed)

			random := rand.New(rand.NewSource(seed)).Perm(n)
			ascending := make([]int, n)
			for i := range ascending {
				ascending[i] = i
			}

			writeShapes(cmd.OutOrStdout(), measure("random", random), measure("ascending", ascending))
			return nil
		},
	}

	cmd.Flags().Int("n", DefaultMeasureN, "number of values to insert")
	cmd.Flags().Int64("seed", 0, "seed of the random order")

	return cmd
}

func measure(order string, vs []int) shape {
	start := time.Now()
	tree := Trees.BuildBST(vs)
	elapsed := time.Since(start)

	s := shape{order: order, size: tree.Size(), height: tree.Height(), elapsed: elapsed}
	if root := tree.Root(); root != nil {
		var leaves, sum uint
		root.LevelOrder(func(n *Trees.Node[int]) bool {
			if n.IsLeaf() {
				leaves++
				sum += n.Depth() + 1
			}
			return true
		})
		s.leafDepth = float64(sum) / float64(leaves)
	}
	return s
}

func writeShapes(w io.Writer, shapes ...shape) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Order", "Size", "Height", "Avg Leaf Depth", "Build Time"})
	for _, s := range shapes {
		t.AppendRow(table.Row{s.order, s.size, s.height, s.leafDepth, s.elapsed})
	}
	t.Render()
}
