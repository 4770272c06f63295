package Trees

import "github.com/g-m-twostay/go-bst/Queues"

// PreOrder calls visit on u, then the left subtree, then the right subtree.
// Stops as soon as visit returns false. Returns whether the whole subtree was visited.
// Recursive.
func (u *Node[T]) PreOrder(visit func(T) bool) bool {
	return visit(u.v) && (u.l == nil || u.l.PreOrder(visit)) && (u.r == nil || u.r.PreOrder(visit))
}

// InOrder is PreOrder but visits u between its subtrees. Values come in
// non-decreasing order.
// Recursive.
func (u *Node[T]) InOrder(visit func(T) bool) bool {
	return (u.l == nil || u.l.InOrder(visit)) && visit(u.v) && (u.r == nil || u.r.InOrder(visit))
}

// PostOrder is PreOrder but visits u after its subtrees.
// Recursive.
func (u *Node[T]) PostOrder(visit func(T) bool) bool {
	return (u.l == nil || u.l.PostOrder(visit)) && (u.r == nil || u.r.PostOrder(visit)) && visit(u.v)
}

// LevelOrder visits nodes breadth first, left before right on each level,
// starting from u. Stops when visit returns false.
// Time: O(n); Space: O(width)
func (u *Node[T]) LevelOrder(visit func(*Node[T]) bool) {
	q := Queues.MakeArrayQueue[*Node[T]](8)
	for q.Push(u); !q.Empty(); {
		cur, _ := q.Pop()
		if !visit(cur) {
			return
		}
		if cur.l != nil {
			q.Push(cur.l)
		}
		if cur.r != nil {
			q.Push(cur.r)
		}
	}
}

// Map returns f applied to every value in in-order.
func (u *Node[T]) Map(f func(T) T) []T {
	var s []T
	u.InOrder(func(v T) bool {
		s = append(s, f(v))
		return true
	})
	return s
}

// ToSlice returns the values in in-order.
func (u *Node[T]) ToSlice() []T {
	return u.Map(func(v T) T { return v })
}
