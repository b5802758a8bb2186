package intset

import "github.com/tuannh982/intset/intset/internal"

// Equal reports whether s and other hold the same elements.
func (s *Set) Equal(other *Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	p, q := s.first(), other.first()
	for p != internal.Tail && q != internal.Tail {
		if s.store.Value(p) != other.store.Value(q) {
			return false
		}
		p, q = s.store.Next(p), other.store.Next(q)
	}
	return p == internal.Tail && q == internal.Tail
}

// Compare orders s and other by inclusion: Less when s is a proper subset of
// other, Greater when s is a proper superset, Equivalent when both hold the
// same elements, Unordered otherwise.
func (s *Set) Compare(other *Set) Ordering {
	switch {
	case s.Equal(other):
		return Equivalent
	case s.Len() > other.Len() && includes(s, other):
		return Greater
	case s.Len() < other.Len() && includes(other, s):
		return Less
	default:
		return Unordered
	}
}

func (s *Set) IsSubsetOf(other *Set) bool {
	o := s.Compare(other)
	return o == Less || o == Equivalent
}

func (s *Set) IsProperSubsetOf(other *Set) bool {
	return s.Compare(other) == Less
}

func (s *Set) IsSupersetOf(other *Set) bool {
	o := s.Compare(other)
	return o == Greater || o == Equivalent
}

// includes reports whether every element of sub is in super. Both chains are
// ascending, so the walk stops at the first element of sub that super skips.
func includes(super, sub *Set) bool {
	p, q := super.first(), sub.first()
	for q != internal.Tail {
		if p == internal.Tail {
			return false
		}
		pv, qv := super.store.Value(p), sub.store.Value(q)
		switch {
		case pv == qv:
			p, q = super.store.Next(p), sub.store.Next(q)
		case pv < qv:
			p = super.store.Next(p)
		default:
			return false
		}
	}
	return true
}
