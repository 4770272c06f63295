package Trees

import "golang.org/x/exp/constraints"

// BST holds the root of a tree of Node and keeps it up to date when the root
// is removed. Repeated values are allowed. The tree isn't balanced, the height D
// depends only on the order of insertions and removals, and is O(n) in the
// worst case.
// The zero value is an empty tree.
type BST[T constraints.Ordered] struct {
	root *Node[T] //nil when the tree is empty.
	sz   uint
}

// NewBST returns an empty tree.
func NewBST[T constraints.Ordered]() *BST[T] {
	return new(BST[T])
}

// BuildBST inserts vs in order into an empty tree. vs can be empty.
// Time: O(n*D)
func BuildBST[T constraints.Ordered](vs []T) *BST[T] {
	u := NewBST[T]()
	for _, v := range vs {
		u.Insert(v)
	}
	return u
}

// Root of the tree, nil when empty.
func (u *BST[T]) Root() *Node[T] {
	return u.root
}

// Size [Tree.Size]
// Time: O(1)
func (u *BST[T]) Size() uint {
	return u.sz
}

// Height of the tree, 0 when empty.
// Time: O(n)
func (u *BST[T]) Height() uint {
	if u.root == nil {
		return 0
	}
	return u.root.Height()
}

// Clear drops all the nodes.
func (u *BST[T]) Clear() {
	u.root, u.sz = nil, 0
}

// Insert [Tree.Insert]. Always succeeds.
// Time: O(D)
func (u *BST[T]) Insert(v T) bool {
	if u.root == nil {
		u.root = NewNode(v)
	} else {
		u.root.Insert(v)
	}
	u.sz++
	return true
}

// Remove [Tree.Remove]. Removes the first node found holding v.
// Time: O(D)
func (u *BST[T]) Remove(v T) bool {
	n := u.Get(v)
	if n == nil {
		return false
	}
	if rep := n.Remove(); n == u.root {
		u.root = rep
	}
	u.sz--
	return true
}

// Get the first node holding v, nil if there's none. The node stays owned
// by u; it's valid until it's removed.
// Time: O(D)
func (u *BST[T]) Get(v T) *Node[T] {
	if u.root == nil {
		return nil
	}
	return u.root.Search(v)
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *BST[T]) Has(v T) bool {
	return u.Get(v) != nil
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BST[T]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return u.root.Minimum().v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BST[T]) Maximum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return u.root.Maximum().v, true
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *BST[T]) Predecessor(v T) (T, bool) {
	var p *Node[T]
	for cur := u.root; cur != nil; {
		if v <= cur.v {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *BST[T]) Successor(v T) (T, bool) {
	var p *Node[T]
	for cur := u.root; cur != nil; {
		if v < cur.v {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// KLargest [Tree.KLargest]
// Time: O(D+k)
func (u *BST[T]) KLargest(k uint) (T, bool) {
	if u.root == nil || k > u.sz {
		return *new(T), false
	}
	if n := u.root.KLargest(k); n != nil {
		return n.v, true
	}
	return *new(T), false
}

// RankOf [Tree.RankOf]
// Time: O(n)
func (u *BST[T]) RankOf(v T) uint {
	if u.root == nil {
		return 0
	}
	return u.root.RankOf(v)
}

// InOrder [Tree.InOrder]
// Follows Successor from the Minimum, so the tree isn't touched during iteration.
// Time: f(): amortized O(1) at each call to the returned function. Space: O(1)
func (u *BST[T]) InOrder() func() (T, bool) {
	var cur *Node[T]
	if u.root != nil {
		cur = u.root.Minimum()
	}
	return func() (r T, has bool) {
		if cur == nil {
			return
		}
		r, has = cur.v, true
		cur = cur.Successor()
		return
	}
}

// Values in in-order.
func (u *BST[T]) Values() []T {
	if u.root == nil {
		return nil
	}
	return u.root.ToSlice()
}

// Corrupt [Tree.Corrupt]
// Also reports a size that doesn't match the number of nodes.
// Time: O(n); Space: O(n)
func (u *BST[T]) Corrupt() bool {
	if u.root == nil {
		return u.sz != 0
	}
	return u.root.p != nil || u.root.Corrupt() || u.root.Count() != u.sz
}

func (u *BST[T]) String() string {
	if u.root == nil {
		return "()"
	}
	return u.root.String()
}
