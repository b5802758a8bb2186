package intset

import "github.com/tuannh982/intset/intset/internal"

// Union adds every element of other to s and returns s.
func (s *Set) Union(other *Set) *Set {
	s.lazyInit()
	p, q := s.first(), other.first()
	for p != internal.Tail && q != internal.Tail {
		pv, qv := s.store.Value(p), other.store.Value(q)
		switch {
		case pv == qv:
			p, q = s.store.Next(p), other.store.Next(q)
		case pv < qv:
			p = s.store.Next(p)
		default:
			s.insertBefore(p, qv)
			q = other.store.Next(q)
		}
	}
	// Whatever remains of other is larger than every element of s.
	for ; q != internal.Tail; q = other.store.Next(q) {
		s.insertBefore(p, other.store.Value(q))
	}
	return s
}

// Intersect removes from s every element not in other and returns s.
func (s *Set) Intersect(other *Set) *Set {
	p, q := s.first(), other.first()
	for p != internal.Tail && q != internal.Tail {
		pv, qv := s.store.Value(p), other.store.Value(q)
		switch {
		case pv == qv:
			p, q = s.store.Next(p), other.store.Next(q)
		case pv < qv:
			p = s.store.Next(p)
			s.remove(s.store.Prev(p))
		default:
			q = other.store.Next(q)
		}
	}
	for p != internal.Tail {
		p = s.store.Next(p)
		s.remove(s.store.Prev(p))
	}
	return s
}

// Subtract removes from s every element in other and returns s.
func (s *Set) Subtract(other *Set) *Set {
	p, q := s.first(), other.first()
	for p != internal.Tail && q != internal.Tail {
		pv, qv := s.store.Value(p), other.store.Value(q)
		switch {
		case pv == qv:
			p, q = s.store.Next(p), other.store.Next(q)
			s.remove(s.store.Prev(p))
		case pv < qv:
			p = s.store.Next(p)
		default:
			q = other.store.Next(q)
		}
	}
	return s
}

// UnionOf returns a new set holding the elements of a or b.
func UnionOf(a, b *Set) *Set {
	return a.Clone().Union(b)
}

// IntersectionOf returns a new set holding the elements of both a and b.
func IntersectionOf(a, b *Set) *Set {
	return a.Clone().Intersect(b)
}

// DifferenceOf returns a new set holding the elements of a that are not in b.
func DifferenceOf(a, b *Set) *Set {
	return a.Clone().Subtract(b)
}
