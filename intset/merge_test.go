package intset

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	a := MustFromSorted([]int{1, 3, 5})
	b := MustFromSorted([]int{3, 5, 7})

	t.Run("union", func(t *testing.T) {
		s := a.Clone().Union(b)
		require.Equal(t, []int{1, 3, 5, 7}, s.Values())
		requireConsistent(t, s)
	})

	t.Run("intersection", func(t *testing.T) {
		s := a.Clone().Intersect(b)
		require.Equal(t, []int{3, 5}, s.Values())
		requireConsistent(t, s)
	})

	t.Run("difference", func(t *testing.T) {
		s := a.Clone().Subtract(b)
		require.Equal(t, []int{1}, s.Values())
		requireConsistent(t, s)
	})

	t.Run("operands are untouched", func(t *testing.T) {
		_ = UnionOf(a, b)
		_ = IntersectionOf(a, b)
		_ = DifferenceOf(a, b)
		require.Equal(t, []int{1, 3, 5}, a.Values())
		require.Equal(t, []int{3, 5, 7}, b.Values())
	})
}

func TestMergeWithEmpty(t *testing.T) {
	a := MustFromSorted([]int{2, 4, 6})

	e := New()
	e.Union(a)
	require.Equal(t, a.Values(), e.Values())
	requireConsistent(t, e)

	e = New()
	e.Intersect(a)
	require.True(t, e.IsEmpty())

	s := a.Clone().Subtract(New())
	require.True(t, s.Equal(a))

	s = a.Clone().Intersect(New())
	require.True(t, s.IsEmpty())
	requireConsistent(t, s)

	s = a.Clone().Union(New())
	require.True(t, s.Equal(a))

	var zero Set
	s = a.Clone().Union(&zero).Intersect(&zero)
	require.True(t, s.IsEmpty())
}

func TestMergeTails(t *testing.T) {
	t.Run("union appends the longer tail", func(t *testing.T) {
		s := MustFromSorted([]int{1, 2}).Union(MustFromSorted([]int{0, 5, 6, 7}))
		require.Equal(t, []int{0, 1, 2, 5, 6, 7}, s.Values())
		requireConsistent(t, s)
	})

	t.Run("intersection drops the remaining tail", func(t *testing.T) {
		s := MustFromSorted([]int{1, 8, 9, 10}).Intersect(MustFromSorted([]int{1, 2}))
		require.Equal(t, []int{1}, s.Values())
		requireConsistent(t, s)
	})

	t.Run("difference keeps the remaining tail", func(t *testing.T) {
		s := MustFromSorted([]int{1, 8, 9, 10}).Subtract(MustFromSorted([]int{1, 2}))
		require.Equal(t, []int{8, 9, 10}, s.Values())
		requireConsistent(t, s)
	})
}

func TestMergeWithSelf(t *testing.T) {
	s := MustFromSorted([]int{1, 2, 3})
	s.Union(s)
	require.Equal(t, []int{1, 2, 3}, s.Values())
	s.Intersect(s)
	require.Equal(t, []int{1, 2, 3}, s.Values())
	s.Subtract(s)
	require.True(t, s.IsEmpty())
	requireConsistent(t, s)
}

func TestMergeProperties(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		av := randomSorted(r, r.Intn(20), 40)
		bv := randomSorted(r, r.Intn(20), 40)
		a, b := MustFromSorted(av), MustFromSorted(bv)

		union := UnionOf(a, b)
		require.True(t, union.Equal(UnionOf(b, a)))
		inter := IntersectionOf(a, b)
		require.True(t, inter.Equal(IntersectionOf(b, a)))
		diff := DifferenceOf(a, b)

		for v := 0; v < 40; v++ {
			inA, inB := a.Contains(v), b.Contains(v)
			require.Equal(t, inA || inB, union.Contains(v))
			require.Equal(t, inA && inB, inter.Contains(v))
			require.Equal(t, inA && !inB, diff.Contains(v))
		}

		// a chain of in-place operations keeps the counter in step with the list
		c := a.Clone()
		c.Union(b).Subtract(inter).Intersect(union)
		requireConsistent(t, c)
		requireConsistent(t, union)
		requireConsistent(t, inter)
		requireConsistent(t, diff)
	}
}
