package Trees

// Height of the subtree, 1 for a leaf.
// Recursive. Time: O(n)
func (u *Node[T]) Height() uint {
	var lh, rh uint
	if u.l != nil {
		lh = u.l.Height()
	}
	if u.r != nil {
		rh = u.r.Height()
	}
	return 1 + max(lh, rh)
}

// Depth is the number of parent links from u to the root.
// Time: O(D); Space: O(1)
func (u *Node[T]) Depth() (d uint) {
	for cur := u.p; cur != nil; cur = cur.p {
		d++
	}
	return
}

// Count of nodes in the subtree.
// Recursive. Time: O(n)
func (u *Node[T]) Count() uint {
	c := uint(1)
	if u.l != nil {
		c += u.l.Count()
	}
	if u.r != nil {
		c += u.r.Count()
	}
	return c
}

// IsBST checks that every value in the subtree is within [min, max] and that
// the ordering holds below u: the left subtree of a node gets [min, v), the
// right subtree gets [v, max]. Returns false at the first violation.
// Both bounds are inclusive: pass the largest allowed value as max, not one
// past it.
// Recursive. Time: O(n)
func (u *Node[T]) IsBST(min, max T) bool {
	return u.isBST(min, max, false)
}

// isBST is IsBST with max excluded when open is true.
func (u *Node[T]) isBST(min, max T, open bool) bool {
	if u.v < min || u.v > max || (open && u.v == max) {
		return false
	}
	return (u.l == nil || u.l.isBST(min, u.v, true)) && (u.r == nil || u.r.isBST(u.v, max, open))
}

// Corrupt returns whether the subtree breaks the ordering, has children and
// parents that disagree, has a cycle, or is referenced by its parent through
// both or neither of the parent's slots.
// Recursive. Time: O(n); Space: O(n)
func (u *Node[T]) Corrupt() bool {
	if p := u.p; p != nil && (p.l == u) == (p.r == u) {
		return true
	}
	return u.corrupt(nil, nil, make(map[*Node[T]]struct{}))
}

// corrupt checks the subtree against the optional bounds lo<=v<hi.
func (u *Node[T]) corrupt(lo, hi *T, seen map[*Node[T]]struct{}) bool {
	if _, in := seen[u]; in {
		return true
	}
	seen[u] = struct{}{}
	if (lo != nil && u.v < *lo) || (hi != nil && u.v >= *hi) {
		return true
	}
	if u.l != nil && (u.l == u.r || u.l.p != u || u.l.corrupt(lo, &u.v, seen)) {
		return true
	}
	return u.r != nil && (u.r.p != u || u.r.corrupt(&u.v, hi, seen))
}

// KLargest returns the k-th node in in-order, counting from 1. nil if k is 0
// or larger than Count().
// Time: O(D+k)
func (u *Node[T]) KLargest(k uint) *Node[T] {
	if k == 0 {
		return nil
	}
	cur, last := u.Minimum(), u.Maximum()
	for ; k > 1; k-- {
		if cur == last {
			return nil
		}
		cur = cur.Successor()
	}
	return cur
}

// RankOf the first occurrence of v in in-order within the subtree, counting from 1.
// Returns 0 if v isn't in the subtree.
// Time: O(n)
func (u *Node[T]) RankOf(v T) uint {
	var ra uint
	for cur := u; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else {
			if cur.l != nil {
				ra += cur.l.Count()
			}
			if v == cur.v {
				return ra + 1
			}
			ra++
			cur = cur.r
		}
	}
	return 0
}
