package filter

import (
	"cmp"
	"maps"
	"slices"
)

// Set is a set of values of type T. The zero value is an empty set ready to use.
type Set[T cmp.Ordered] struct {
	members map[T]struct{}
}

// NewSet returns a set holding the given values
func NewSet[T cmp.Ordered](values ...T) Set[T] {
	var s Set[T]
	for _, v := range values {
		s.Add(v)
	}
	return s
}

func (s *Set[T]) Add(v T) {
	if s.members == nil {
		s.members = map[T]struct{}{}
	}
	s.members[v] = struct{}{}
}

func (s *Set[T]) Remove(v T) {
	delete(s.members, v)
}

// Toggle adds v when included is true and removes it otherwise
func (s *Set[T]) Toggle(v T, included bool) {
	if included {
		s.Add(v)
		return
	}
	s.Remove(v)
}

func (s Set[T]) Contains(v T) bool {
	_, ok := s.members[v]
	return ok
}

func (s Set[T]) Len() int {
	return len(s.members)
}

func (s Set[T]) IsEmpty() bool {
	return len(s.members) == 0
}

// Values returns the members in ascending order
func (s Set[T]) Values() []T {
	return slices.Sorted(maps.Keys(s.members))
}

// Clone returns an independent copy of the set
func (s Set[T]) Clone() Set[T] {
	return Set[T]{members: maps.Clone(s.members)}
}
