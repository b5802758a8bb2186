package collections

import "fmt"

type Stack[V any] interface {
	Push(V)
	Pop() (V, error)
	Peek() (V, error)
	Size() int
	IsEmpty() bool
}

type stack[V any] struct {
	entries []V
}

func NewStack[V any]() Stack[V] {
	return &stack[V]{
		entries: make([]V, 0),
	}
}

func (s *stack[V]) Push(v V) {
	s.entries = append(s.entries, v)
}

func (s *stack[V]) Pop() (v V, err error) {
	n := len(s.entries)
	if n == 0 {
		return v, ErrEmpty
	}
	v = s.entries[n-1]
	var zero V
	s.entries[n-1] = zero
	s.entries = s.entries[:n-1]
	return v, nil
}

func (s *stack[V]) Peek() (v V, err error) {
	n := len(s.entries)
	if n == 0 {
		return v, ErrEmpty
	}
	return s.entries[n-1], nil
}

func (s *stack[V]) Size() int {
	return len(s.entries)
}

func (s *stack[V]) IsEmpty() bool {
	return len(s.entries) == 0
}

func (s stack[V]) String() string {
	return fmt.Sprint(s.entries)
}
