package Trees

import "golang.org/x/exp/constraints"

// A node in the OSMultiset.
// The zero value is meaningless.
type node[T any, S constraints.Unsigned] struct {
	v    T
	l, r nodePtr[T, S]
	cnt  S // copies of v, at least 1.
	sz   S // cnt plus the sizes of both subtrees.
}

// Pointer to a node
// nil Pointer is meaningless. A nodePtr is considered to be nil if the
// pointer is equal to the nilPtr in OSMultiset. The value of this node has
// both node.l, node.r = itself, and cnt, sz=0. v is the zero value of T
type nodePtr[T any, S constraints.Unsigned] *node[T, S]

// newNil makes the loopback node used as nilPtr.
func newNil[T any, S constraints.Unsigned]() nodePtr[T, S] {
	z := new(node[T, S])
	z.l, z.r = z, z
	return z
}
