package Trees

import "golang.org/x/exp/constraints"

// Node is a node of an unbalanced binary search tree. Every node is also the
// subtree rooted at it, so all receivers can be called on any node, not just
// the root. Values in the left subtree are less than v, values in the right
// subtree are greater than or equal to v; equal values always go right.
// A node owns l and r. p is only used to walk upward.
// The zero value is a single node holding the zero value of T.
type Node[T constraints.Ordered] struct {
	v       T
	l, r, p *Node[T]
}

// EmptySliceError is returned when building a tree from a slice with no elements.
type EmptySliceError struct{}

func (EmptySliceError) Error() string {
	return "Trees: can't build a tree from an empty slice"
}

// NewNode returns a node holding v with no links.
func NewNode[T constraints.Ordered](v T) *Node[T] {
	return &Node[T]{v: v}
}

// From builds a tree by making vs[0] the root and inserting the rest of vs in order.
// Time: O(n*D)
func From[T constraints.Ordered](vs []T) (*Node[T], error) {
	if len(vs) == 0 {
		return nil, EmptySliceError{}
	}
	root := NewNode(vs[0])
	for _, v := range vs[1:] {
		root.Insert(v)
	}
	return root, nil
}

// MustFrom is From but panics with EmptySliceError when vs is empty.
func MustFrom[T constraints.Ordered](vs []T) *Node[T] {
	root, err := From(vs)
	if err != nil {
		panic(err)
	}
	return root
}

func (u *Node[T]) Value() T {
	return u.v
}

func (u *Node[T]) Left() *Node[T] {
	return u.l
}

func (u *Node[T]) Right() *Node[T] {
	return u.r
}

func (u *Node[T]) Parent() *Node[T] {
	return u.p
}

// Root walks up the parent links.
// Time: O(D)
func (u *Node[T]) Root() *Node[T] {
	cur := u
	for cur.p != nil {
		cur = cur.p
	}
	return cur
}

func (u *Node[T]) IsRoot() bool {
	return u.p == nil
}

// IsLeaf is true for any node without children, including a lone root.
func (u *Node[T]) IsLeaf() bool {
	return u.l == nil && u.r == nil
}

func (u *Node[T]) HasLeft() bool {
	return u.l != nil
}

func (u *Node[T]) HasRight() bool {
	return u.r != nil
}

func (u *Node[T]) HasBothChildren() bool {
	return u.l != nil && u.r != nil
}

func (u *Node[T]) HasAnyChild() bool {
	return u.l != nil || u.r != nil
}

func (u *Node[T]) IsLeftChild() bool {
	return u.p != nil && u.p.l == u
}

func (u *Node[T]) IsRightChild() bool {
	return u.p != nil && u.p.r == u
}

// Search for the first node holding target on the path from u.
// Returns nil if there's none.
// Time: O(D); Space: O(1)
func (u *Node[T]) Search(target T) *Node[T] {
	for cur := u; cur != nil; {
		if target == cur.v {
			return cur
		} else if target < cur.v {
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return nil
}

// Has is Search(target)!=nil.
func (u *Node[T]) Has(target T) bool {
	return u.Search(target) != nil
}

// Minimum node of the subtree. A leaf is its own Minimum.
// Time: O(D); Space: O(1)
func (u *Node[T]) Minimum() *Node[T] {
	cur := u
	for cur.l != nil {
		cur = cur.l
	}
	return cur
}

// Maximum node of the subtree. A leaf is its own Maximum.
// Time: O(D); Space: O(1)
func (u *Node[T]) Maximum() *Node[T] {
	cur := u
	for cur.r != nil {
		cur = cur.r
	}
	return cur
}

// Successor is the node following u in in-order: the Minimum of the right
// subtree, or else the first ancestor reached from its left side, which is
// also the first ancestor holding a value greater than u's. Returns nil if u
// is the last node.
// Time: O(D); Space: O(1)
func (u *Node[T]) Successor() *Node[T] {
	if u.r != nil {
		return u.r.Minimum()
	}
	cur := u
	for cur.p != nil && cur.p.r == cur {
		cur = cur.p
	}
	return cur.p
}

// Predecessor is the node preceding u in in-order: the Maximum of the left
// subtree, or else the first ancestor reached from its right side. With
// repeated values that ancestor may hold a value equal to u's.
// Returns nil if u is the first node.
// Time: O(D); Space: O(1)
func (u *Node[T]) Predecessor() *Node[T] {
	if u.l != nil {
		return u.l.Maximum()
	}
	cur := u
	for cur.p != nil && cur.p.l == cur {
		cur = cur.p
	}
	return cur.p
}

// Insert v as a new leaf under u and return the new node. Equal values go to
// the right. The tree isn't rebalanced, so inserting sorted values makes D=O(n).
// Time: O(D); Space: O(1)
func (u *Node[T]) Insert(v T) *Node[T] {
	for cur := u; ; {
		if v < cur.v {
			if cur.l == nil {
				cur.l = &Node[T]{v: v, p: cur}
				return cur.l
			}
			cur = cur.l
		} else {
			if cur.r == nil {
				cur.r = &Node[T]{v: v, p: cur}
				return cur.r
			}
			cur = cur.r
		}
	}
}

// Remove u from the tree it's in and return the node taking its place, which
// is the Minimum of the right subtree, or the left child itself if there's no
// right subtree, or nil if u is a leaf.
// The left child moves up whole because equal values sit on the right: the
// Maximum of the left subtree may have copies above it that would end up on
// its left.
// Afterward u has no links. When u was the root the caller must keep the
// returned node as the new root, and a nil return means the tree is now empty.
// Recursive, but the replacement has no left child so every further call
// only descends.
// Time: O(D)
func (u *Node[T]) Remove() *Node[T] {
	var rep *Node[T]
	if u.r == nil {
		rep = u.l
	} else {
		rep = u.r.Minimum()
		// rep may be u.r, so children are read only after it's detached.
		rep.Remove()
		rep.l, rep.r = u.l, u.r
		if rep.l != nil {
			rep.l.p = rep
		}
		if rep.r != nil {
			rep.r.p = rep
		}
	}
	u.transplant(rep)
	u.p, u.l, u.r = nil, nil, nil
	return rep
}

// transplant points the slot of u in its parent to n, and sets n's parent to u's.
// u's own links are left as they are.
func (u *Node[T]) transplant(n *Node[T]) {
	if p := u.p; p != nil {
		if p.l == u {
			p.l = n
		} else {
			p.r = n
		}
	}
	if n != nil {
		n.p = u.p
	}
}
