package Trees

import (
	"cmp"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// links of a node in the ArrBSTree.
// The zero value is meaningful: a node without children.
type info[S constraints.Unsigned] struct {
	l, r S
}

// ArrBSTree is the BSTree with all nodes kept in two arrays and linked by
// index. Index 0 is the loopback nil: ifs[0] links to itself and has no
// value; vs[i-1] is the value of ifs[i]. Since there is no removal, indexes
// are handed out in insertion order and never reused, so the index of a node
// is its identity for its whole life.
// S is the type of the indexes, it must be able to hold Size()+1.
type ArrBSTree[T any, S constraints.Unsigned] struct {
	root S
	ifs  []info[S]
	vs   []T
	cmp  func(a, b T) int
}

// NewArr returns an empty ArrBSTree ordered by cmp.Compare with room for hint
// values before the arrays need to grow.
func NewArr[T cmp.Ordered, S constraints.Unsigned](hint S) *ArrBSTree[T, S] {
	return NewArrFunc[T, S](hint, cmp.Compare[T])
}

// NewArrFunc is the NewFunc equivalence of NewArr.
func NewArrFunc[T any, S constraints.Unsigned](hint S, c func(a, b T) int) *ArrBSTree[T, S] {
	ifs := make([]info[S], 1, uint(hint)+1)
	return &ArrBSTree[T, S]{0, ifs, make([]T, 0, hint), c}
}

// BuildArr builds a balanced ArrBSTree from the given slice, which must be
// sorted in ascending order without duplicates; this isn't checked.
// The slice is handed to the tree and mustn't be modified by the caller later.
// Time: O(n).
func BuildArr[T cmp.Ordered, S constraints.Unsigned](vs []T) *ArrBSTree[T, S] {
	if uint64(len(vs)) >= uint64(^S(0)) {
		panic(CapacityError{uint64(len(vs))})
	}
	root, ifs := buildIfs(S(len(vs)))
	return &ArrBSTree[T, S]{root, ifs, vs, cmp.Compare[T]}
}

// overflowMid is equivalent to (a+b)/2 but deals with overflow.
func overflowMid[S constraints.Unsigned](a, b S) S {
	return a + (b-a)>>1
}

// buildIfs array of size vsLen to represent a complete binary tree.
func buildIfs[S constraints.Unsigned](vsLen S) (root S, ifs []info[S]) {
	ifs = make([]info[S], vsLen+1)
	if vsLen == 0 {
		return
	}
	st := make([][3]S, 0, bits.Len64(uint64(vsLen))) //[left,right,mid]
	root = overflowMid(1, vsLen)
	for st = append(st, [3]S{1, vsLen, root}); len(st) > 0; {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		if top[0] < top[2] {
			nr := top[2] - 1
			ifs[top[2]].l = overflowMid(top[0], nr)
			st = append(st, [3]S{top[0], nr, ifs[top[2]].l})
		}
		if top[2] < top[1] {
			nl := top[2] + 1
			ifs[top[2]].r = overflowMid(nl, top[1])
			st = append(st, [3]S{nl, top[1], ifs[top[2]].r})
		}
	}
	return
}

// Size returns the size of the tree.
func (u *ArrBSTree[T, S]) Size() uint {
	return uint(len(u.vs))
}

// Insert [Tree.Insert]
// Panics with CapacityError if S can't index another node.
// Time: O(D), amortized O(1) for growing the arrays.
func (u *ArrBSTree[T, S]) Insert(v T) bool {
	curI := &u.root
	for *curI != 0 {
		if c := u.cmp(v, u.vs[*curI-1]); c < 0 {
			curI = &u.ifs[*curI].l
		} else if c > 0 {
			curI = &u.ifs[*curI].r
		} else {
			return false
		}
	}
	next := S(len(u.ifs))
	if next == 0 {
		panic(CapacityError{uint64(len(u.vs))})
	}
	*curI = next //set before appending, curI may point into the old ifs.
	u.ifs = append(u.ifs, info[S]{})
	u.vs = append(u.vs, v)
	return true
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *ArrBSTree[T, S]) Has(v T) bool {
	for curI := u.root; curI != 0; {
		if c := u.cmp(v, u.vs[curI-1]); c < 0 {
			curI = u.ifs[curI].l
		} else if c == 0 {
			return true
		} else {
			curI = u.ifs[curI].r
		}
	}
	return false
}

// Clear the tree, keeping the arrays for later insertions. Values are reset
// to the zero value so they can be collected.
// Time: O(n)
func (u *ArrBSTree[T, S]) Clear() {
	clear(u.vs)
	u.root, u.ifs, u.vs = 0, u.ifs[:1], u.vs[:0]
}

// PreOrder [Tree.PreOrder]
func (u *ArrBSTree[T, S]) PreOrder() Iterator[T] {
	return newPreIter[T, S](u, u.root)
}

// InOrder [Tree.InOrder]
func (u *ArrBSTree[T, S]) InOrder() Iterator[T] {
	return newInIter[T, S](u, u.root)
}

// PostOrder [Tree.PostOrder]
// The node given last is remembered by its index.
func (u *ArrBSTree[T, S]) PostOrder() Iterator[T] {
	return newPostIter[T, S](u, u.root)
}

func (u *ArrBSTree[T, S]) null() S {
	return 0
}
func (u *ArrBSTree[T, S]) left(i S) S {
	return u.ifs[i].l
}
func (u *ArrBSTree[T, S]) right(i S) S {
	return u.ifs[i].r
}
func (u *ArrBSTree[T, S]) value(i S) *T {
	if i == 0 || uint(i) > uint(len(u.vs)) {
		return nil
	}
	return &u.vs[i-1]
}
