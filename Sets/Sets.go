package Sets

type Set[E any] interface {
	//Put e in the set. False if e is already in the set.
	Put(E) bool
	Has(E) bool
	//Remove e from the set. False if e isn't in the set.
	Remove(E) bool
	Size() uint
	//Take any element without removing it. The zero value if the set is empty.
	Take() E
	//Range over the elements until f returns false.
	Range(func(E) bool)
}
