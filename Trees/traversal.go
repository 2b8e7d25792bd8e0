package Trees

// walker exposes the links of a tree whose nodes are addressed by handles of
// type H. Two handles are the same node iff they are ==.
type walker[T any, H comparable] interface {
	null() H
	left(H) H
	right(H) H
	// value of the node, nil for null().
	value(H) *T
}

// must returns the value of a node that is required to have one.
func must[T any, H comparable](w walker[T, H], n H, order string) *T {
	if p := w.value(n); p != nil {
		return p
	}
	panic(CorruptTreeError{order})
}

// preIter pops a node, pushes its right child then its left child so the
// left one is popped first, and gives the node's value.
// Space: O(D)
type preIter[T any, H comparable] struct {
	w  walker[T, H]
	st []H
}

func newPreIter[T any, H comparable](w walker[T, H], root H) *preIter[T, H] {
	u := &preIter[T, H]{w: w}
	if root != w.null() {
		u.st = append(u.st, root)
	}
	return u
}

func (u *preIter[T, H]) Next() (*T, bool) {
	if len(u.st) == 0 {
		return nil, false
	}
	cur := u.st[len(u.st)-1]
	u.st = u.st[:len(u.st)-1]
	if r := u.w.right(cur); r != u.w.null() {
		u.st = append(u.st, r)
	}
	if l := u.w.left(cur); l != u.w.null() {
		u.st = append(u.st, l)
	}
	return must(u.w, cur, "pre-order"), true
}

// inIter walks down the left spine from cur pushing every node to st, then
// gives the top of st and continues from its right child on the next call.
// Space: O(D)
type inIter[T any, H comparable] struct {
	w   walker[T, H]
	cur H
	st  []H
}

func newInIter[T any, H comparable](w walker[T, H], root H) *inIter[T, H] {
	return &inIter[T, H]{w: w, cur: root}
}

func (u *inIter[T, H]) Next() (*T, bool) {
	for ; u.cur != u.w.null(); u.cur = u.w.left(u.cur) {
		u.st = append(u.st, u.cur)
	}
	if len(u.st) == 0 {
		return nil, false
	}
	top := u.st[len(u.st)-1]
	u.st = u.st[:len(u.st)-1]
	u.cur = u.w.right(top)
	return must(u.w, top, "in-order"), true
}

// postIter keeps the ancestors still waiting for their right subtree in st.
// A popped node is ready when it has no right child or its right child is
// the node given last; otherwise it goes back to st and the walk continues
// down its right child. Readiness compares handles, never values.
// Space: O(D)
type postIter[T any, H comparable] struct {
	w         walker[T, H]
	cur, last H
	st        []H
}

func newPostIter[T any, H comparable](w walker[T, H], root H) *postIter[T, H] {
	u := &postIter[T, H]{w: w, cur: w.null(), last: w.null()}
	for ; root != w.null(); root = w.left(root) {
		u.st = append(u.st, root)
	}
	return u
}

func (u *postIter[T, H]) Next() (*T, bool) {
	for u.cur != u.w.null() || len(u.st) > 0 {
		for ; u.cur != u.w.null(); u.cur = u.w.left(u.cur) {
			u.st = append(u.st, u.cur)
		}
		top := u.st[len(u.st)-1]
		u.st = u.st[:len(u.st)-1]
		if r := u.w.right(top); r == u.w.null() || r == u.last {
			u.last = top
			return must(u.w, top, "post-order"), true
		} else {
			u.st = append(u.st, top)
			u.cur = r
		}
	}
	return nil, false
}
