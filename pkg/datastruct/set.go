package datastruct

import "go.llib.dev/collkit/pkg/iterx"

// Set is an unordered collection of unique elements.
// The zero value is an empty, ready to use Set.
type Set[T comparable] struct {
	vs map[T]struct{}
}

// SetOf creates a Set holding the given elements.
func SetOf[T comparable](vs ...T) Set[T] {
	var set Set[T]
	set.Add(vs...)
	return set
}

// SetFrom materialises a Set by driving the pull iterator to exhaustion.
func SetFrom[T comparable](i iterx.Iterator[T]) Set[T] {
	var set Set[T]
	for {
		v, ok := i.Next()
		if !ok {
			break
		}
		set.Add(v)
	}
	return set
}

func (s *Set[T]) Add(vs ...T) {
	if s.vs == nil {
		s.vs = make(map[T]struct{})
	}
	for _, v := range vs {
		s.vs[v] = struct{}{}
	}
}

func (s Set[T]) Has(v T) bool {
	_, ok := s.vs[v]
	return ok
}

func (s *Set[T]) Delete(v T) {
	delete(s.vs, v)
}

func (s Set[T]) Len() int { return len(s.vs) }

// ToSlice returns the elements in no particular order.
func (s Set[T]) ToSlice() []T {
	out := make([]T, 0, len(s.vs))
	for v := range s.vs {
		out = append(out, v)
	}
	return out
}

// Iter returns a pull iterator over the elements, in no particular order.
func (s Set[T]) Iter() iterx.Iterator[T] {
	return iterx.Slice(s.ToSlice())
}

// Stream returns the elements wrapped in the fluent iterator adapter.
func (s Set[T]) Stream() *iterx.Stream[T] {
	return iterx.On(s.Iter())
}

// Union returns a new Set with the elements of both sets.
func (s Set[T]) Union(oth Set[T]) Set[T] {
	var out Set[T]
	out.Add(s.ToSlice()...)
	out.Add(oth.ToSlice()...)
	return out
}

// Intersect returns a new Set with the elements present in both sets.
func (s Set[T]) Intersect(oth Set[T]) Set[T] {
	var out Set[T]
	for v := range s.vs {
		if oth.Has(v) {
			out.Add(v)
		}
	}
	return out
}

// Difference returns a new Set with the elements of this set that the other lacks.
func (s Set[T]) Difference(oth Set[T]) Set[T] {
	var out Set[T]
	for v := range s.vs {
		if !oth.Has(v) {
			out.Add(v)
		}
	}
	return out
}
