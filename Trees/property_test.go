package Trees

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/stretchr/testify/require"
)

var rg = rand.New(rand.NewSource(0))

const (
	tAddN        = 4000
	tAddValRange = 1000
)

// entry makes repeated values distinct inside the btree oracle.
type entry struct {
	v, id int
}

func entryLess(a, b entry) bool {
	return a.v < b.v || (a.v == b.v && a.id < b.id)
}

func oracleValues(o *btree.BTreeG[entry]) []int {
	s := make([]int, 0, o.Len())
	o.Ascend(func(e entry) bool {
		s = append(s, e.v)
		return true
	})
	return s
}

// oracleRemove deletes one entry holding v, reporting whether there was any.
func oracleRemove(o *btree.BTreeG[entry], v int) bool {
	var found *entry
	o.AscendGreaterOrEqual(entry{v, math.MinInt}, func(e entry) bool {
		if e.v == v {
			found = &e
		}
		return false
	})
	if found == nil {
		return false
	}
	o.Delete(*found)
	return true
}

func TestNode_InsertSorted(t *testing.T) {
	root := NewNode(rg.Intn(tAddValRange))
	oracle := btree.NewG[entry](8, entryLess)
	oracle.ReplaceOrInsert(entry{root.Value(), 0})
	for i := 1; i <= tAddN; i++ {
		v := rg.Intn(tAddValRange)
		n := root.Insert(v)
		require.Equal(t, v, n.Value())
		oracle.ReplaceOrInsert(entry{v, i})
	}
	got := root.ToSlice()
	require.Len(t, got, tAddN+1)
	require.True(t, slices.IsSorted(got))
	require.Equal(t, oracleValues(oracle), got)
	require.False(t, root.Corrupt())
	for _, v := range got {
		n := root.Search(v)
		require.NotNil(t, n)
		require.Equal(t, v, n.Value())
	}
	t.Logf("height: %d, size: %d", root.Height(), root.Count())
}

func TestNode_RemoveRandom(t *testing.T) {
	root := NewNode(tAddValRange / 2)
	oracle := btree.NewG[entry](8, entryLess)
	oracle.ReplaceOrInsert(entry{root.Value(), 0})
	for i := 1; i <= tAddN; i++ {
		v := rg.Intn(tAddValRange)
		root.Insert(v)
		oracle.ReplaceOrInsert(entry{v, i})
	}
	lo, hi := math.MinInt, math.MaxInt
	for count := root.Count(); count > 1; count-- {
		v := rg.Intn(tAddValRange)
		n := root.Search(v)
		for n == nil {
			v = rg.Intn(tAddValRange)
			n = root.Search(v)
		}
		wasRoot := n == root
		rep := n.Remove()
		if wasRoot {
			require.NotNil(t, rep)
			root = rep
		}
		require.True(t, root.IsRoot())
		require.True(t, n.IsRoot() && n.IsLeaf())
		require.True(t, oracleRemove(oracle, v))
		require.Equal(t, count-1, root.Count())
		require.True(t, root.IsBST(lo, hi))
		if count%97 == 0 {
			require.False(t, root.Corrupt())
			require.Equal(t, oracleValues(oracle), root.ToSlice())
		}
	}
	require.Nil(t, root.Remove())
}

func TestNode_SuccessorSymmetry(t *testing.T) {
	vs := rg.Perm(tAddN)
	root := MustFrom(vs)
	for _, v := range vs {
		n := root.Search(v)
		if s := n.Successor(); s != nil {
			require.Equal(t, v+1, s.Value())
			require.Same(t, n, s.Predecessor())
		} else {
			require.Equal(t, tAddN-1, v)
		}
		if p := n.Predecessor(); p != nil {
			require.Equal(t, v-1, p.Value())
			require.Same(t, n, p.Successor())
		} else {
			require.Equal(t, 0, v)
		}
	}
}

// predecessor and successor with repeated values still walk in-order.
func TestNode_SuccessorDuplicates(t *testing.T) {
	root := NewNode(rg.Intn(50))
	for range 500 {
		root.Insert(rg.Intn(50))
	}
	var fwd, bwd []*Node[int]
	for n := root.Minimum(); n != nil; n = n.Successor() {
		fwd = append(fwd, n)
	}
	for n := root.Maximum(); n != nil; n = n.Predecessor() {
		bwd = append(bwd, n)
	}
	require.Len(t, fwd, 501)
	slices.Reverse(bwd)
	require.Equal(t, fwd, bwd)
}

// strict neighbours of BST against gods' red-black tree.
func TestBST_PredecessorSuccessor(t *testing.T) {
	tree, oracle := NewBST[int](), redblacktree.NewWithIntComparator()
	for range tAddN {
		v := rg.Intn(tAddValRange) * 2
		tree.Insert(v)
		oracle.Put(v, struct{}{})
	}
	for q := -2; q < tAddValRange*2+2; q++ {
		p, ok := tree.Predecessor(q)
		if f, found := oracle.Floor(q - 1); found {
			require.True(t, ok)
			require.Equal(t, f.Key.(int), p)
		} else {
			require.False(t, ok)
		}
		s, ok := tree.Successor(q)
		if c, found := oracle.Ceiling(q + 1); found {
			require.True(t, ok)
			require.Equal(t, c.Key.(int), s)
		} else {
			require.False(t, ok)
		}
	}
}
