package intset

import "sync/atomic"

// Counter is notified once per node allocated by a set, sentinels included.
// A prometheus.Counter satisfies it.
type Counter interface {
	Inc()
}

// AllocationCounter is a Counter safe for use by sets owned by different
// goroutines.
type AllocationCounter struct {
	n int64
}

func (c *AllocationCounter) Inc() {
	atomic.AddInt64(&c.n, 1)
}

func (c *AllocationCounter) Load() int64 {
	return atomic.LoadInt64(&c.n)
}

// Allocations is the counter used by sets created without WithCounter.
var Allocations = &AllocationCounter{}

// NodesAllocated returns the number of nodes ever allocated through Allocations.
func NodesAllocated() int64 {
	return Allocations.Load()
}

type Option func(s *Set)

// WithCounter routes the set's node allocations to c. Copies made from the
// set inherit the counter.
func WithCounter(c Counter) Option {
	return func(s *Set) {
		s.allocs = c
	}
}
