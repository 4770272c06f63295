package Trees

import (
	"fmt"
	"io"
	"strings"
)

// String renders the subtree as "(left) <- v -> (right)", leaving out missing sides.
func (u *Node[T]) String() string {
	w := new(strings.Builder)
	u.describe(w)
	return w.String()
}

func (u *Node[T]) describe(w *strings.Builder) {
	if u.l != nil {
		w.WriteByte('(')
		u.l.describe(w)
		w.WriteString(") <- ")
	}
	fmt.Fprint(w, u.v)
	if u.r != nil {
		w.WriteString(" -> (")
		u.r.describe(w)
		w.WriteByte(')')
	}
}

// GoString renders the subtree with the parent of every node, as
// "[left] <- v(p: parent) -> [right]". Missing sides are "[]", the root has "p: nil".
func (u *Node[T]) GoString() string {
	w := new(strings.Builder)
	u.debug(w)
	return w.String()
}

func (u *Node[T]) debug(w *strings.Builder) {
	w.WriteByte('[')
	if u.l != nil {
		u.l.debug(w)
	}
	w.WriteString("] <- ")
	if u.p != nil {
		fmt.Fprintf(w, "%v(p: %v)", u.v, u.p.v)
	} else {
		fmt.Fprintf(w, "%v(p: nil)", u.v)
	}
	w.WriteString(" -> [")
	if u.r != nil {
		u.r.debug(w)
	}
	w.WriteByte(']')
}

// Fprint dumps the subtree to w, one node per line in pre-order, indented by depth
// relative to u. Children are tagged with L or R.
func (u *Node[T]) Fprint(w io.Writer) {
	u.dumpRec(w, "", 0)
}

func (u *Node[T]) dumpRec(w io.Writer, tag string, depth int) {
	fmt.Fprintf(w, "%s%s%v\n", strings.Repeat("  ", depth), tag, u.v)
	if u.l != nil {
		u.l.dumpRec(w, "L ", depth+1)
	}
	if u.r != nil {
		u.r.dumpRec(w, "R ", depth+1)
	}
}
