package Trees

import "cmp"

// BSTree is an unbalanced binary search tree with no repeated values. Nodes
// are never rotated or removed, so the shape of the tree is decided by the
// order of insertion alone: the first inserted value stays at the root.
// This struct holds a root pointer and a corresponding nilPtr used
// as nil described in nodePtr. The empty tree is root==nilPtr.
// The height D of the tree is O(log n) for random insertion orders, but
// O(n) for sorted ones.
type BSTree[T any] struct {
	root   nodePtr[T] //the root of the tree. It should be nilPtr initially.
	nilPtr nodePtr[T] // nilPtr is the pointer used instead of nil here, it follows the description in nodePtr
	cmp    func(a, b T) int
	sz     uint
}

// New returns an empty BSTree ordered by cmp.Compare.
// BSTree shouldn't be created directly using struct literal.
func New[T cmp.Ordered]() *BSTree[T] {
	return NewFunc[T](cmp.Compare[T])
}

// NewFunc returns an empty BSTree ordered by c. c(a,b) must be negative when
// a<b, zero when a==b and positive when a>b, and must describe a strict total
// order.
func NewFunc[T any](c func(a, b T) int) *BSTree[T] {
	z := makeNil[T]()
	return &BSTree[T]{z, z, c, 0}
}

// BuildBSTree builds a balanced BSTree using the given sorted slice. This is faster than
// repeatedly calling Insert, and the height of the result is the lowest possible.
// The given slice must be sorted
// in ascending order and mustn't contain duplicate elements.
// If safe==true, this function will check if the conditions are met and panic with InvalidSliceError
// if the conditions are broken. Otherwise, this function won't perform the check, and it is
// up to the user to ensure the conditions are met(otherwise the tree will be corrupt).
// Time: O(n).
func BuildBSTree[T cmp.Ordered](sli []T, safe bool) *BSTree[T] {
	if safe {
		for i := 1; i < len(sli); i++ {
			if !(sli[i-1] < sli[i]) {
				panic(InvalidSliceError[T]{i, sli[i-1], sli[i]})
			}
		}
	}
	u := New[T]()
	var build func([]T) nodePtr[T]
	build = func(s []T) nodePtr[T] {
		if len(s) > 0 {
			mid := len(s) >> 1
			return &node[T]{s[mid], build(s[0:mid]), build(s[mid+1:])}
		} else {
			return u.nilPtr
		}
	}
	u.root, u.sz = build(sli), uint(len(sli))
	return u
}

// Size returns the size of the tree.
// Time: O(1); Space: O(1)
func (u *BSTree[T]) Size() uint {
	return u.sz
}

// Insert [Tree.Insert]
// The new node always becomes a leaf.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Insert(v T) bool {
	curPtr := &u.root
	for cur := *curPtr; cur != u.nilPtr; cur = *curPtr {
		if c := u.cmp(v, cur.v); c < 0 {
			curPtr = &cur.l
		} else if c > 0 {
			curPtr = &cur.r
		} else {
			return false
		}
	}
	*curPtr = &node[T]{v, u.nilPtr, u.nilPtr}
	u.sz++
	return true
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Has(v T) bool {
	for cur := u.root; cur != u.nilPtr; {
		if c := u.cmp(v, cur.v); c < 0 {
			cur = cur.l
		} else if c == 0 {
			return true
		} else {
			cur = cur.r
		}
	}
	return false
}

// Minimum element of the tree.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Minimum() (T, bool) {
	if cur := u.root; cur == u.nilPtr {
		return cur.v, false
	} else {
		for cur.l != u.nilPtr {
			cur = cur.l
		}
		return cur.v, true
	}
}

// Maximum element of the tree.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Maximum() (T, bool) {
	if cur := u.root; cur == u.nilPtr {
		return cur.v, false
	} else {
		for cur.r != u.nilPtr {
			cur = cur.r
		}
		return cur.v, true
	}
}

// Height is the number of nodes on the longest path from the root, 0 for
// the empty tree. It walks the tree level by level.
// Time: O(n); Space: O(n)
func (u *BSTree[T]) Height() (h uint) {
	if u.root == u.nilPtr {
		return 0
	}
	for level := []nodePtr[T]{u.root}; len(level) > 0; h++ {
		var next []nodePtr[T]
		for _, n := range level {
			if n.l != u.nilPtr {
				next = append(next, n.l)
			}
			if n.r != u.nilPtr {
				next = append(next, n.r)
			}
		}
		level = next
	}
	return
}

// Clear the tree. The nodes are left to the garbage collector, any Iterator
// still in use keeps seeing the old nodes.
func (u *BSTree[T]) Clear() {
	u.root, u.sz = u.nilPtr, 0
}

// Corrupt returns whether some node has a value outside the range its
// ancestors allow, or the links don't form a tree of Size() nodes.
// Time: O(n); Space: O(D)
func (u *BSTree[T]) Corrupt() bool {
	type bound struct {
		n      nodePtr[T]
		lo, hi *T
	}
	var count uint
	for st := []bound{{u.root, nil, nil}}; len(st) > 0; {
		b := st[len(st)-1]
		st = st[:len(st)-1]
		if b.n == u.nilPtr {
			continue
		}
		if count++; count > u.sz {
			return true
		}
		if (b.lo != nil && u.cmp(*b.lo, b.n.v) >= 0) || (b.hi != nil && u.cmp(b.n.v, *b.hi) >= 0) {
			return true
		}
		st = append(st, bound{b.n.l, b.lo, &b.n.v}, bound{b.n.r, &b.n.v, b.hi})
	}
	return count != u.sz
}

// PreOrder [Tree.PreOrder]
// Time: amortized O(1) at each call to Next. Space: O(D)
func (u *BSTree[T]) PreOrder() Iterator[T] {
	return newPreIter[T, nodePtr[T]](u, u.root)
}

// InOrder [Tree.InOrder]
// Time: amortized O(1) at each call to Next. Space: O(D)
func (u *BSTree[T]) InOrder() Iterator[T] {
	return newInIter[T, nodePtr[T]](u, u.root)
}

// PostOrder [Tree.PostOrder]
// Time: amortized O(1) at each call to Next. Space: O(D)
func (u *BSTree[T]) PostOrder() Iterator[T] {
	return newPostIter[T, nodePtr[T]](u, u.root)
}

func (u *BSTree[T]) null() nodePtr[T] {
	return u.nilPtr
}
func (u *BSTree[T]) left(n nodePtr[T]) nodePtr[T] {
	return n.l
}
func (u *BSTree[T]) right(n nodePtr[T]) nodePtr[T] {
	return n.r
}
func (u *BSTree[T]) value(n nodePtr[T]) *T {
	if n == u.nilPtr {
		return nil
	}
	return &n.v
}
