package Queues

// circArrQ keeps content[head], content[head+1], ..., content[tail-1] modulo
// len(content). head==tail means empty when sz==0 and full when sz==len(content).
type circArrQ[T any] struct {
	sz, head, tail uint
	content        []T
}

// MakeArrayQueue with room for initCap items before the first resize.
func MakeArrayQueue[T any](initCap uint) ArrayQueue[T] {
	return &circArrQ[T]{0, 0, 0, make([]T, max(initCap, 1))}
}

func (u *circArrQ[T]) Empty() bool {
	return u.sz == 0
}

// resize moves the content to a new slice of length newLen>=u.sz, starting at 0.
func (u *circArrQ[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if u.sz > 0 {
		if u.head < u.tail {
			copy(nc, u.content[u.head:u.tail])
		} else {
			n := copy(nc, u.content[u.head:])
			copy(nc[n:], u.content[:u.tail])
		}
	}
	u.content, u.head = nc, 0
	u.tail = u.sz % newLen
}

func (u *circArrQ[T]) Shrink() {
	u.resize(max(u.sz, 1))
}

func (u *circArrQ[T]) Clear() {
	clear(u.content)
	u.tail, u.head, u.sz = 0, 0, 0
}

func (u *circArrQ[T]) Size() uint {
	return u.sz
}

// Push item to the tail. Grows by 1.5x (at least 1) when full.
// Time: amortized O(1)
func (u *circArrQ[T]) Push(item T) {
	if l := uint(len(u.content)); u.sz == l {
		u.resize(l + max(l>>1, 1))
	}
	u.content[u.tail] = item
	u.tail = (u.tail + 1) % uint(len(u.content))
	u.sz++
}

func (u *circArrQ[T]) Pop() (item T, e error) {
	if u.Empty() {
		return item, &EmptyQueueError{}
	}
	item = u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return item, nil
}

func (u *circArrQ[T]) Peek() (item T) {
	if !u.Empty() {
		item = u.content[u.head]
	}
	return
}
