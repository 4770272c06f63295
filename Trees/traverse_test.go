package Trees

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode_Orders(t *testing.T) {
	root := MustFrom(scenario)
	var pre, in, post, level []int
	require.True(t, root.PreOrder(func(v int) bool {
		pre = append(pre, v)
		return true
	}))
	require.True(t, root.InOrder(func(v int) bool {
		in = append(in, v)
		return true
	}))
	require.True(t, root.PostOrder(func(v int) bool {
		post = append(post, v)
		return true
	}))
	root.LevelOrder(func(n *Node[int]) bool {
		level = append(level, n.Value())
		return true
	})
	assert.Equal(t, []int{5, 3, 1, 4, 8, 7, 10}, pre)
	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 10}, in)
	assert.Equal(t, []int{1, 4, 3, 7, 10, 8, 5}, post)
	assert.Equal(t, []int{5, 3, 8, 1, 4, 7, 10}, level)
}

func TestNode_OrdersStop(t *testing.T) {
	root := MustFrom(scenario)
	var got []int
	stopAt := func(last int) func(int) bool {
		got = got[:0]
		return func(v int) bool {
			got = append(got, v)
			return v != last
		}
	}
	assert.False(t, root.PreOrder(stopAt(4)))
	assert.Equal(t, []int{5, 3, 1, 4}, got)
	assert.False(t, root.InOrder(stopAt(5)))
	assert.Equal(t, []int{1, 3, 4, 5}, got)
	assert.False(t, root.PostOrder(stopAt(3)))
	assert.Equal(t, []int{1, 4, 3}, got)

	var level []int
	root.LevelOrder(func(n *Node[int]) bool {
		level = append(level, n.Value())
		return len(level) < 3
	})
	assert.Equal(t, []int{5, 3, 8}, level)
}

func TestNode_LevelOrderSubtree(t *testing.T) {
	root := MustFrom(scenario)
	var level []int
	root.Search(8).LevelOrder(func(n *Node[int]) bool {
		level = append(level, n.Value())
		return true
	})
	assert.Equal(t, []int{8, 7, 10}, level)
}

func TestNode_ToSliceMap(t *testing.T) {
	root := MustFrom(scenario)
	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 10}, root.ToSlice())
	assert.Equal(t, []int{2, 6, 8, 10, 14, 16, 20}, root.Map(func(v int) int { return v * 2 }))
	assert.Equal(t, []string{"a"}, NewNode("a").ToSlice())
}

func TestNode_String(t *testing.T) {
	root := MustFrom(scenario)
	assert.Equal(t, "((1) <- 3 -> (4)) <- 5 -> ((7) <- 8 -> (10))", root.String())
	assert.Equal(t, "7", root.Search(7).String())

	small := MustFrom([]int{2, 1, 3})
	assert.Equal(t, "[[] <- 1(p: 2) -> []] <- 2(p: nil) -> [[] <- 3(p: 2) -> []]", small.GoString())
	assert.Equal(t, "[] <- 3(p: 2) -> []", small.Right().GoString())

	w := new(strings.Builder)
	small.Fprint(w)
	assert.Equal(t, "2\n  L 1\n  R 3\n", w.String())
}
