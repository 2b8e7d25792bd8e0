package Trees

// A node in the BSTree
// The zero value is meaningless.
type node[T any] struct {
	v    T
	l, r nodePtr[T]
}

// Pointer to a node
// nil Pointer is meaningless. A nodePtr is considered to be nil if the
// pointer is equal to the nilPtr in BSTree. The value of this node has
// both node.l, node.r = itself. v is the zero value of T and must never
// be given out.
type nodePtr[T any] *node[T]

// makeNil returns a new self looping sentinel.
func makeNil[T any]() nodePtr[T] {
	z := new(node[T])
	z.l, z.r = z, z
	return z
}
