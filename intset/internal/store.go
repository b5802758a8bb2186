package internal

import "errors"

// Head and Tail are the reserved slots of the two sentinel nodes. Both are
// present in every store and never carry an element.
const (
	Head = 0
	Tail = 1
	none = -1
)

var (
	errSentinelUnlink = errors.New("cannot unlink a sentinel node")
	errInsertAtHead   = errors.New("cannot insert before the head sentinel")
)

// Counter observes node allocations.
type Counter interface {
	Inc()
}

type node struct {
	value int
	next  int
	prev  int
}

// Store is an arena of list nodes linked by slot index. Released slots are
// recycled before the arena grows.
type Store struct {
	nodes   []node
	free    []int
	counter Counter
}

func NewStore(counter Counter) *Store {
	s := &Store{
		nodes:   make([]node, 0, 8),
		free:    make([]int, 0),
		counter: counter,
	}
	s.alloc(0, Tail, none)
	s.alloc(0, none, Head)
	return s
}

func (s *Store) alloc(value, next, prev int) int {
	if s.counter != nil {
		s.counter.Inc()
	}
	n := node{value: value, next: next, prev: prev}
	if k := len(s.free); k > 0 {
		i := s.free[k-1]
		s.free = s.free[:k-1]
		s.nodes[i] = n
		return i
	}
	s.nodes = append(s.nodes, n)
	return len(s.nodes) - 1
}

// InsertBefore splices a new node holding value in front of pos and returns
// its slot.
func (s *Store) InsertBefore(pos, value int) int {
	if pos == Head {
		panic(errInsertAtHead)
	}
	prev := s.nodes[pos].prev
	i := s.alloc(value, pos, prev)
	s.nodes[prev].next = i
	s.nodes[pos].prev = i
	return i
}

// Unlink detaches the node at i and releases its slot.
func (s *Store) Unlink(i int) {
	if i == Head || i == Tail {
		panic(errSentinelUnlink)
	}
	n := s.nodes[i]
	s.nodes[n.prev].next = n.next
	s.nodes[n.next].prev = n.prev
	s.nodes[i] = node{next: none, prev: none}
	s.free = append(s.free, i)
}

func (s *Store) Next(i int) int {
	return s.nodes[i].next
}

func (s *Store) Prev(i int) int {
	return s.nodes[i].prev
}

func (s *Store) Value(i int) int {
	return s.nodes[i].value
}

// Reachable counts the real nodes found walking from Head to Tail.
func (s *Store) Reachable() int {
	n := 0
	for i := s.nodes[Head].next; i != Tail; i = s.nodes[i].next {
		n++
	}
	return n
}

// ReachableBackward counts the real nodes found walking from Tail to Head.
func (s *Store) ReachableBackward() int {
	n := 0
	for i := s.nodes[Tail].prev; i != Head; i = s.nodes[i].prev {
		n++
	}
	return n
}

// Slots reports the arena size, sentinels included.
func (s *Store) Slots() int {
	return len(s.nodes)
}
