package Trees

import "iter"

// Tree represents A binary search tree without repeated values.
// Receivers that has A bool as A second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case the value of x should be undefined.
// If an implementation didn't specify anything special, then the implemented
// receivers follows the behaviors defined here. All methods are implemented
// iteratively, so the depth of the tree never grows the goroutine stack.
type Tree[T any] interface {
	//Insert v to the Tree. Returning true if v was added, false if an equal
	//value is already present, in which case the Tree is left untouched.
	Insert(v T) bool
	//Has element v.
	Has(v T) bool
	//Size of the tree.
	Size() uint
	//PreOrder returns an Iterator giving the values as node, left subtree, right subtree.
	PreOrder() Iterator[T]
	//InOrder returns an Iterator giving the values in ascending order.
	InOrder() Iterator[T]
	//PostOrder returns an Iterator giving the values as left subtree, right subtree, node.
	PostOrder() Iterator[T]
}

// Iterator is a single pass, forward only sequence over the values of a Tree.
// Calling Next is like calling "Next()" of iterators: p, valid=it.Next().
// p points into the tree and is meaningful only if valid is true. When
// valid==false, then the Iterator is exhausted; valid can't turn true after
// it first became false.
// The tree must not be modified during the iteration, otherwise the
// Iterator may skip or repeat values. There will be no panic if such cases
// happens so design the algorithm with this in mind.
type Iterator[T any] interface {
	Next() (*T, bool)
}

// Seq adapts it for range loops. Breaking out of the loop leaves it where it
// stopped.
func Seq[T any](it Iterator[T]) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for p, ok := it.Next(); ok; p, ok = it.Next() {
			if !yield(p) {
				return
			}
		}
	}
}

// Collect drains it into a slice of values.
func Collect[T any](it Iterator[T]) (s []T) {
	for p := range Seq(it) {
		s = append(s, *p)
	}
	return
}
