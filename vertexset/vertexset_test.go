package vertexset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treedepth/vertexset"
)

func TestAddContainsRemove(t *testing.T) {
	s := vertexset.New()
	s.Add(3)
	s.Add(7)
	require.True(t, s.Contains(3))
	require.True(t, s.Contains(7))
	require.False(t, s.Contains(4))
	s.Remove(3)
	require.False(t, s.Contains(3), "3 should have been removed")
	require.Equal(t, 1, s.Cardinality())
}

func TestToSortedIsAscending(t *testing.T) {
	s := vertexset.FromSlice([]int{5, 1, 3, 1})
	got := s.ToSorted()
	require.Equal(t, []int{1, 3, 5}, got)
	require.True(t, vertexset.IsSortedAscending(got))
}

func TestClearAndClone(t *testing.T) {
	s := vertexset.FromSlice([]int{1, 2, 3})
	c := s.Clone()
	s.Clear()
	require.True(t, s.IsEmpty(), "expected s to be empty after Clear")
	require.Equal(t, 3, c.Cardinality(), "clone should be unaffected by clearing the original")
}

func TestAndNotAndEquals(t *testing.T) {
	a := vertexset.FromSlice([]int{1, 2, 3, 4})
	b := vertexset.FromSlice([]int{2, 4})
	a.AndNot(b)
	want := vertexset.FromSlice([]int{1, 3})
	require.True(t, a.Equals(want), "got %v, want %v", a.ToSorted(), want.ToSorted())
}

func TestSortedUnion(t *testing.T) {
	got := vertexset.SortedUnion([]int{1, 3, 5}, []int{2, 3, 6})
	require.Equal(t, []int{1, 2, 3, 5, 6}, got)
}
