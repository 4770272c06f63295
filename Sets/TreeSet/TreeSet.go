package TreeSet

import (
	"github.com/g-m-twostay/go-bst/Sets"
	"github.com/g-m-twostay/go-bst/Trees"
	"golang.org/x/exp/constraints"
)

var _ Sets.Set[int] = (*TreeSet[int])(nil)

// TreeSet is an ordered set backed by an unbalanced Trees.BST. Range goes in
// ascending order and Take gives the smallest element.
// The zero value is an empty set.
type TreeSet[E constraints.Ordered] struct {
	t Trees.BST[E]
}

func New[E constraints.Ordered]() *TreeSet[E] {
	return new(TreeSet[E])
}

// From puts all of es into a new set, skipping duplicates.
func From[E constraints.Ordered](es ...E) *TreeSet[E] {
	u := New[E]()
	for _, e := range es {
		u.Put(e)
	}
	return u
}

// Put e. Time: O(D)
func (u *TreeSet[E]) Put(e E) bool {
	if u.t.Has(e) {
		return false
	}
	return u.t.Insert(e)
}

func (u *TreeSet[E]) Has(e E) bool {
	return u.t.Has(e)
}

func (u *TreeSet[E]) Remove(e E) bool {
	return u.t.Remove(e)
}

func (u *TreeSet[E]) Size() uint {
	return u.t.Size()
}

func (u *TreeSet[E]) Take() (e E) {
	e, _ = u.t.Minimum()
	return
}

func (u *TreeSet[E]) Range(f func(E) bool) {
	if r := u.t.Root(); r != nil {
		r.InOrder(f)
	}
}

// Floor is the greatest element less than or equal to e.
func (u *TreeSet[E]) Floor(e E) (E, bool) {
	if u.t.Has(e) {
		return e, true
	}
	return u.t.Predecessor(e)
}

// Ceiling is the smallest element greater than or equal to e.
func (u *TreeSet[E]) Ceiling(e E) (E, bool) {
	if u.t.Has(e) {
		return e, true
	}
	return u.t.Successor(e)
}
