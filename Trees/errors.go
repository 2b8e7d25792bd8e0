package Trees

import "fmt"

// CorruptTreeError is the panic value used when a traversal reaches a node
// that must hold a value but doesn't. It can only happen if the links of the
// tree were broken, never because of the values inserted.
type CorruptTreeError struct {
	Order string
}

func (e CorruptTreeError) Error() string {
	return fmt.Sprintf("Trees: %s traversal reached a node without value", e.Order)
}

// InvalidSliceError is the panic value of BuildBSTree when the given slice isn't
// strictly ascending: A=sli[I-1] isn't less than B=sli[I].
type InvalidSliceError[T any] struct {
	I    int
	A, B T
}

func (e InvalidSliceError[T]) Error() string {
	return fmt.Sprintf("Trees: slice not strictly ascending at %d: %v, %v", e.I, e.A, e.B)
}

// CapacityError is the panic value of ArrBSTree.Insert when the index type
// can't address another node.
type CapacityError struct {
	Size uint64
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("Trees: index type full at %d nodes", e.Size)
}
