package Queues

// Queue is a FIFO of T.
type Queue[T any] interface {
	Push(item T)
	//Pop the oldest item. Returns EmptyQueueError when the queue has nothing.
	Pop() (T, error)
	//Peek at the oldest item without removing it. The zero value of T is
	//returned for an empty queue.
	Peek() T
	Empty() bool
}

// ArrayQueue is a Queue backed by a growable circular slice.
type ArrayQueue[T any] interface {
	Queue[T]
	//Shrink the backing slice to fit the current content.
	Shrink()
	//Clear the queue, keeping the backing slice.
	Clear()
	Size() uint
	resize(newLen uint)
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
