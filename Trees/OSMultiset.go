package Trees

import (
	"cmp"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/g-m-twostay/go-ostree/Queues"
	"golang.org/x/exp/constraints"
)

// OSMultiset is an insert only order statistics multiset. It's a binary search
// tree where equal values share one node with a copy count, and every node
// knows the size of its subtree counting copies, so ranks are found in one
// descent.
// T is the type of values it will hold, S is the type of the variables
// used for storing the sizes of different subtrees.
// The tree is never rebalanced. Inserting values in ascending or descending
// order makes it a linked list, and the depth D of the tree becomes n. On
// random input D is O(log n). Methods that walk the whole tree are iterative,
// so a skewed tree never overflows the goroutine stack.
// S should be wide enough for the number of values stored, and shouldn't be
// any type that overflows when converted to uint.
type OSMultiset[T cmp.Ordered, S constraints.Unsigned] struct {
	root   nodePtr[T, S] //the root of the tree. It should be nilPtr initially.
	nilPtr nodePtr[T, S] // nilPtr is the pointer used instead of nil here, it follows the description in nodePtr
	total  S
}

// New returns an empty OSMultiset.
// OSMultiset shouldn't be created directly using struct literal.
func New[T cmp.Ordered, S constraints.Unsigned]() *OSMultiset[T, S] {
	z := newNil[T, S]()
	return &OSMultiset[T, S]{root: z, nilPtr: z}
}

// From builds an OSMultiset using the given sorted slice. Equal neighbours are
// collapsed into one node. The middle distinct value becomes the root of each
// subtree, so the built tree has depth about log2 of the distinct count.
// Later calls to Insert don't keep that balance.
// If safe==true, From panics with InvalidSliceError when sli isn't ascending.
// Otherwise the check is skipped and an unsorted slice gives a corrupt tree.
// Time: O(n)
func From[T cmp.Ordered, S constraints.Unsigned](sli []T, safe bool) *OSMultiset[T, S] {
	u := New[T, S]()
	if len(sli) == 0 {
		return u
	}
	// run i is sli[starts[i]:starts[i+1]].
	starts := make([]int, 1, len(sli)+1)
	for i := 1; i < len(sli); i++ {
		if sli[i-1] != sli[i] {
			if safe && sli[i] < sli[i-1] {
				panic(InvalidSliceError[T]{sli[i-1], sli[i], i})
			}
			starts = append(starts, i)
		}
	}
	starts = append(starts, len(sli))
	type job struct {
		lo, hi int            // runs [lo, hi) go below *at.
		at     *nodePtr[T, S] // where the subtree root is linked.
	}
	st := []job{{0, len(starts) - 1, &u.root}}
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		if top.lo >= top.hi {
			continue
		}
		mid := int(uint(top.lo+top.hi) >> 1)
		n := &node[T, S]{v: sli[starts[mid]], l: u.nilPtr, r: u.nilPtr,
			cnt: S(starts[mid+1] - starts[mid]), sz: S(starts[top.hi] - starts[top.lo])}
		*top.at = n
		st = append(st, job{top.lo, mid, &n.l}, job{mid + 1, top.hi, &n.r})
	}
	u.total = u.root.sz
	return u
}

// Size returns the number of values in the multiset counting copies.
// Time: O(1); Space: O(1)
func (u *OSMultiset[T, S]) Size() uint {
	return uint(u.total)
}

// Insert v. Every node on the path gains one in size since v ends up at or
// below it. An equal value adds a copy to its node, otherwise a new leaf is
// linked where the search fell off the tree.
// Time: O(D); Space: O(1)
func (u *OSMultiset[T, S]) Insert(v T) {
	u.total++
	curPtr := &u.root
	for cur := *curPtr; cur != u.nilPtr; cur = *curPtr {
		cur.sz++
		if v < cur.v {
			curPtr = &cur.l
		} else if v == cur.v {
			cur.cnt++
			return
		} else {
			curPtr = &cur.r
		}
	}
	*curPtr = &node[T, S]{v, u.nilPtr, u.nilPtr, 1, 1}
}

// RankOf [Ranker.RankOf]
// The descent stops at a node equal to v: its left subtree is all smaller,
// and its copies count only when inclusive. When no node equals v, inclusive
// makes no difference.
// Time: O(D); Space: O(1)
func (u *OSMultiset[T, S]) RankOf(v T, inclusive bool) uint {
	var ra S
	for cur := u.root; cur != u.nilPtr; {
		if v < cur.v {
			cur = cur.l
		} else if v == cur.v {
			ra += cur.l.sz
			if inclusive {
				ra += cur.cnt
			}
			break
		} else {
			ra += cur.l.sz + cur.cnt
			cur = cur.r
		}
	}
	return uint(ra)
}

// find the node holding v, or nilPtr.
func (u *OSMultiset[T, S]) find(v T) nodePtr[T, S] {
	cur := u.root
	for cur != u.nilPtr && v != cur.v {
		if v < cur.v {
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return cur
}

// Count of copies of v, 0 if v was never inserted.
// Time: O(D); Space: O(1)
func (u *OSMultiset[T, S]) Count(v T) uint {
	return uint(u.find(v).cnt)
}

// Has element v.
// Time: O(D); Space: O(1)
func (u *OSMultiset[T, S]) Has(v T) bool {
	return u.find(v) != u.nilPtr
}

// Minimum element of the multiset. The bool is false when it's empty.
// Time: O(D); Space: O(1)
func (u *OSMultiset[T, S]) Minimum() (T, bool) {
	cur := u.root
	for cur != u.nilPtr && cur.l != u.nilPtr {
		cur = cur.l
	}
	return cur.v, cur != u.nilPtr
}

// Maximum element of the multiset. The bool is false when it's empty.
// Time: O(D); Space: O(1)
func (u *OSMultiset[T, S]) Maximum() (T, bool) {
	cur := u.root
	for cur != u.nilPtr && cur.r != u.nilPtr {
		cur = cur.r
	}
	return cur.v, cur != u.nilPtr
}

// KSmallest finds the k-th smallest value counting copies, so that
// KSmallest(RankOf(v, false)+1) is v for every stored v.
// Returns (x,true) if 1<=k<=Size(), otherwise (zero value,false).
// Time: O(D); Space: O(1)
func (u *OSMultiset[T, S]) KSmallest(k uint) (T, bool) {
	if k == 0 || k > u.Size() {
		return *new(T), false
	}
	t := S(k)
	for cur := u.root; ; {
		if t <= cur.l.sz {
			cur = cur.l
		} else if t <= cur.l.sz+cur.cnt {
			return cur.v, true
		} else {
			t -= cur.l.sz + cur.cnt
			cur = cur.r
		}
	}
}

// InOrder returns A closure function f acting like an iterator over the
// distinct values in ascending order. val, copies, valid=f(); val and copies
// are meaningful only if valid is true. When valid==false, then f is exhausted.
// The pending nodes are kept on a stack, the tree itself isn't touched. The
// multiset mustn't be modified while f is in use.
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *OSMultiset[T, S]) InOrder() func() (T, S, bool) {
	st := arraystack.New()
	for cur := u.root; cur != u.nilPtr; cur = cur.l {
		st.Push(cur)
	}
	return func() (v T, c S, has bool) {
		top, ok := st.Pop()
		if !ok {
			return
		}
		n := top.(nodePtr[T, S])
		for cur := n.r; cur != u.nilPtr; cur = cur.l {
			st.Push(cur)
		}
		return n.v, n.cnt, true
	}
}

// levels walks the tree breadth first, calling f with each node and its
// depth starting at 1.
func (u *OSMultiset[T, S]) levels(f func(n nodePtr[T, S], d uint)) {
	type item struct {
		n nodePtr[T, S]
		d uint
	}
	if u.root == u.nilPtr {
		return
	}
	q := Queues.MakeArrayQueue[item](64)
	q.Push(item{u.root, 1})
	for !q.Empty() {
		it, _ := q.Pop()
		l, r := it.n.l, it.n.r
		f(it.n, it.d)
		if l != u.nilPtr {
			q.Push(item{l, it.d + 1})
		}
		if r != u.nilPtr {
			q.Push(item{r, it.d + 1})
		}
	}
}

// Height is the number of levels, 0 for an empty multiset.
// Time: O(n); Space: O(width)
func (u *OSMultiset[T, S]) Height() (h uint) {
	u.levels(func(_ nodePtr[T, S], d uint) {
		h = max(h, d)
	})
	return
}

// Clear drops every node. The nodes are unlinked level by level so nothing
// keeps a detached subtree reachable.
// Time: O(n); Space: O(width)
func (u *OSMultiset[T, S]) Clear() {
	u.levels(func(n nodePtr[T, S], _ uint) {
		n.l, n.r = u.nilPtr, u.nilPtr
	})
	u.root, u.total = u.nilPtr, 0
}

// Corrupt returns whether some node breaks the size bookkeeping or the search
// order, or the total doesn't match the root. This is to be distinguished from
// whether the tree is balanced, which it's not meant to be.
// Time: O(n); Space: O(D)
func (u *OSMultiset[T, S]) Corrupt() bool {
	if u.nilPtr.sz != 0 || u.nilPtr.cnt != 0 || u.root.sz != u.total {
		return true
	}
	type bound struct {
		n      nodePtr[T, S]
		lo, hi nodePtr[T, S] // strict bounds from ancestors, nilPtr when open.
	}
	st := arraystack.New()
	if u.root != u.nilPtr {
		st.Push(bound{u.root, u.nilPtr, u.nilPtr})
	}
	for !st.Empty() {
		top, _ := st.Pop()
		b := top.(bound)
		n := b.n
		if n.cnt == 0 || n.sz != n.cnt+n.l.sz+n.r.sz {
			return true
		}
		if (b.lo != u.nilPtr && n.v <= b.lo.v) || (b.hi != u.nilPtr && n.v >= b.hi.v) {
			return true
		}
		if n.l != u.nilPtr {
			st.Push(bound{n.l, b.lo, n})
		}
		if n.r != u.nilPtr {
			st.Push(bound{n.r, n, b.hi})
		}
	}
	return false
}
