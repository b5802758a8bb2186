// Package intset implements a set of integers kept as a sorted doubly linked
// list between two sentinel nodes.
package intset

import (
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/tuannh982/intset/intset/internal"
)

const emptyText = "Set is empty!"

// Set is a set of integers in ascending order. The zero value is an empty set
// ready to use. A Set is not safe for concurrent use.
type Set struct {
	store   *internal.Store
	counter int
	allocs  Counter
}

func New(opts ...Option) *Set {
	s := &Set{}
	for _, opt := range opts {
		opt(s)
	}
	s.lazyInit()
	return s
}

// Of returns the singleton {v}.
func Of(v int, opts ...Option) *Set {
	s := New(opts...)
	s.insertBefore(internal.Tail, v)
	return s
}

// FromSorted builds a set from strictly increasing values. It returns
// ErrUnsorted if values are out of order or repeat.
func FromSorted(values []int, opts ...Option) (*Set, error) {
	if !strictlyIncreasing(values) {
		return nil, ErrUnsorted
	}
	return FromSortedUnchecked(values, opts...), nil
}

func MustFromSorted(values []int, opts ...Option) *Set {
	s, err := FromSorted(values, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// FromSortedUnchecked appends values in the given order without validating
// them. Unsorted or repeated input leaves the set in an undefined state.
func FromSortedUnchecked(values []int, opts ...Option) *Set {
	s := New(opts...)
	for _, v := range values {
		s.insertBefore(internal.Tail, v)
	}
	return s
}

func strictlyIncreasing(values []int) bool {
	// IsSortedFunc reports false as soon as less(values[i], values[i-1]) holds,
	// so a non-strict comparison rejects repeats as well.
	return slices.IsSortedFunc(values, func(a, b int) bool {
		return a <= b
	})
}

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set {
	c := New(WithCounter(s.counterOrDefault()))
	for i := s.first(); i != internal.Tail; i = s.store.Next(i) {
		c.insertBefore(internal.Tail, s.store.Value(i))
	}
	return c
}

// Assign replaces the contents of s with a copy of src. The copy is built
// before s is touched.
func (s *Set) Assign(src *Set) *Set {
	tmp := src.Clone()
	s.Swap(tmp)
	return s
}

// Swap exchanges the contents of s and other.
func (s *Set) Swap(other *Set) {
	s.store, other.store = other.store, s.store
	s.counter, other.counter = other.counter, s.counter
	s.allocs, other.allocs = other.allocs, s.allocs
}

// Clear removes every element, keeping the sentinels.
func (s *Set) Clear() {
	if s.store == nil {
		return
	}
	for i := s.store.Next(internal.Head); i != internal.Tail; i = s.store.Next(internal.Head) {
		s.remove(i)
	}
}

// Release clears s and drops its node storage. s may be reused afterwards as
// an empty set.
func (s *Set) Release() {
	s.Clear()
	s.store = nil
}

func (s *Set) Contains(v int) bool {
	for i := s.first(); i != internal.Tail; i = s.store.Next(i) {
		if s.store.Value(i) == v {
			return true
		}
	}
	return false
}

// Len returns the number of elements.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return s.counter
}

func (s *Set) IsEmpty() bool {
	return s.Len() == 0
}

// Values returns the elements in ascending order.
func (s *Set) Values() []int {
	arr := make([]int, 0, s.Len())
	for i := s.first(); i != internal.Tail; i = s.store.Next(i) {
		arr = append(arr, s.store.Value(i))
	}
	return arr
}

func (s *Set) String() string {
	var b strings.Builder
	_, _ = s.WriteTo(&b)
	return b.String()
}

// WriteTo renders s as "{ v1 v2 ... vn }", or as "Set is empty!" when there
// are no elements.
func (s *Set) WriteTo(w io.Writer) (int64, error) {
	if s.IsEmpty() {
		n, err := io.WriteString(w, emptyText)
		return int64(n), err
	}
	var b strings.Builder
	b.WriteString("{ ")
	for i := s.first(); i != internal.Tail; i = s.store.Next(i) {
		b.WriteString(strconv.Itoa(s.store.Value(i)))
		b.WriteByte(' ')
	}
	b.WriteByte('}')
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

func (s *Set) lazyInit() {
	if s.store == nil {
		s.store = internal.NewStore(s.counterOrDefault())
		s.counter = 0
	}
}

func (s *Set) counterOrDefault() Counter {
	if s == nil || s.allocs == nil {
		return Allocations
	}
	return s.allocs
}

// first returns the slot of the smallest element, or Tail when s holds none.
func (s *Set) first() int {
	if s == nil || s.store == nil {
		return internal.Tail
	}
	return s.store.Next(internal.Head)
}

func (s *Set) insertBefore(pos, v int) {
	s.lazyInit()
	s.store.InsertBefore(pos, v)
	s.counter++
}

func (s *Set) remove(i int) {
	s.store.Unlink(i)
	s.counter--
}
