// Package vertexset provides a small wrapper around a Roaring bitmap for
// sets of non-negative integer vertex ids.
//
// It backs core.SubGraph's membership mask and the scoped visited marks used
// by every traversal: a Set is always owned by its caller (an Engine, a
// SubGraph method, a test) and is never shared across goroutines or kept as
// package-level state.
package vertexset

import (
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
)

// Set is a mutable set of non-negative ints, backed by a Roaring bitmap.
// The zero value is not usable; construct with New.
type Set struct {
	rb *roaring.Bitmap
}

// New returns an empty Set.
func New() *Set {
	return &Set{rb: roaring.New()}
}

// FromSlice returns a Set containing exactly the given ids (duplicates and
// order are irrelevant).
func FromSlice(ids []int) *Set {
	s := New()
	s.AddAll(ids)
	return s
}

// Add inserts id into the set. Adding an id already present is a no-op.
func (s *Set) Add(id int) {
	s.rb.Add(uint32(id))
}

// AddAll inserts every id in ids.
func (s *Set) AddAll(ids []int) {
	for _, id := range ids {
		s.rb.Add(uint32(id))
	}
}

// Remove deletes id from the set, if present.
func (s *Set) Remove(id int) {
	s.rb.Remove(uint32(id))
}

// Contains reports whether id is a member of the set.
func (s *Set) Contains(id int) bool {
	return s.rb.Contains(uint32(id))
}

// Clear empties the set in place, so the caller can reuse the allocation
// across calls instead of allocating a fresh Set per recursion frame.
func (s *Set) Clear() {
	s.rb.Clear()
}

// Clone returns an independent copy of the set.
func (s *Set) Clone() *Set {
	return &Set{rb: s.rb.Clone()}
}

// Cardinality returns the number of members.
func (s *Set) Cardinality() int {
	return int(s.rb.GetCardinality())
}

// IsEmpty reports whether the set has no members.
func (s *Set) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// ToSorted returns the members in ascending order. The result is the
// "canonical word" of the set per spec.md's SubGraph definition.
func (s *Set) ToSorted() []int {
	arr := s.rb.ToArray()
	out := make([]int, len(arr))
	for i, v := range arr {
		out[i] = int(v)
	}
	return out
}

// AndNot removes every member of other from s, in place.
func (s *Set) AndNot(other *Set) {
	s.rb.AndNot(other.rb)
}

// Equals reports whether s and other contain exactly the same ids.
func (s *Set) Equals(other *Set) bool {
	return s.rb.Equals(other.rb)
}

// IsSubsetOf reports whether every member of s is also a member of other.
func (s *Set) IsSubsetOf(other *Set) bool {
	return s.rb.GetCardinality() <= other.rb.GetCardinality() && s.rb.AndCardinality(other.rb) == s.rb.GetCardinality()
}

// SortedUnion merges two ascending id slices into one ascending, duplicate
// free slice. Used to build canonical words without going through a Set.
func SortedUnion(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// IsSortedAscending reports whether ids is strictly increasing, the
// invariant every canonical word must satisfy.
func IsSortedAscending(ids []int) bool {
	return sort.IntsAreSorted(ids) && noDuplicates(ids)
}

func noDuplicates(ids []int) bool {
	for i := 1; i < len(ids); i++ {
		if ids[i] == ids[i-1] {
			return false
		}
	}
	return true
}
