package collections

import (
	"fmt"
)

type Queue[V any] interface {
	Push(V)
	Pop() (V, error)
	Peek() (V, error)
	Size() int
	IsEmpty() bool
}

type queue[V any] struct {
	entries []V
	head    int
}

func NewQueue[V any]() Queue[V] {
	return &queue[V]{
		entries: make([]V, 0),
	}
}

// NewQueueOf returns a queue holding vs in order.
func NewQueueOf[V any](vs ...V) Queue[V] {
	q := NewQueue[V]()
	for _, v := range vs {
		q.Push(v)
	}
	return q
}

func (q *queue[V]) Push(v V) {
	q.entries = append(q.entries, v)
}

func (q *queue[V]) Pop() (v V, err error) {
	if q.IsEmpty() {
		return v, ErrEmpty
	}
	v = q.entries[q.head]
	var zero V
	q.entries[q.head] = zero
	q.head++
	// reclaim the consumed prefix once it dominates the buffer
	if q.head > 16 && q.head*2 > len(q.entries) {
		q.entries = append(q.entries[:0], q.entries[q.head:]...)
		q.head = 0
	}
	return v, nil
}

func (q *queue[V]) Peek() (v V, err error) {
	if q.IsEmpty() {
		return v, ErrEmpty
	}
	return q.entries[q.head], nil
}

func (q *queue[V]) Size() int {
	return len(q.entries) - q.head
}

func (q *queue[V]) IsEmpty() bool {
	return q.Size() == 0
}

func (q queue[V]) String() string {
	return fmt.Sprint(q.entries[q.head:])
}
