package datastruct

import (
	"go.llib.dev/collkit/pkg/compare"
	"go.llib.dev/collkit/pkg/iterx"
)

// MultiSet is an unordered collection that counts how many times each element occurs.
// The zero value is an empty, ready to use MultiSet.
type MultiSet[T comparable] struct {
	vs    map[T]int
	total int
}

// MultiSetOf creates a MultiSet holding the given elements.
func MultiSetOf[T comparable](vs ...T) MultiSet[T] {
	var ms MultiSet[T]
	ms.Add(vs...)
	return ms
}

// MultiSetFrom materialises a MultiSet by driving the pull iterator to exhaustion.
func MultiSetFrom[T comparable](i iterx.Iterator[T]) MultiSet[T] {
	var ms MultiSet[T]
	for {
		v, ok := i.Next()
		if !ok {
			break
		}
		ms.Add(v)
	}
	return ms
}

func (ms *MultiSet[T]) Add(vs ...T) {
	for _, v := range vs {
		ms.AddN(v, 1)
	}
}

// AddN records n further occurrences of the element.
// A non-positive n leaves the MultiSet untouched.
func (ms *MultiSet[T]) AddN(v T, n int) {
	if n <= 0 {
		return
	}
	if ms.vs == nil {
		ms.vs = make(map[T]int)
	}
	ms.vs[v] += n
	ms.total += n
}

// CountOf tells how many occurrences of the element the MultiSet holds.
func (ms MultiSet[T]) CountOf(v T) int {
	return ms.vs[v]
}

func (ms MultiSet[T]) Has(v T) bool {
	return 0 < ms.vs[v]
}

// Remove drops a single occurrence of the element.
// It reports whether an occurrence was present to drop.
func (ms *MultiSet[T]) Remove(v T) bool {
	c, ok := ms.vs[v]
	if !ok {
		return false
	}
	if c == 1 {
		delete(ms.vs, v)
	} else {
		ms.vs[v] = c - 1
	}
	ms.total--
	return true
}

// Delete drops every occurrence of the element.
func (ms *MultiSet[T]) Delete(v T) {
	c, ok := ms.vs[v]
	if !ok {
		return
	}
	delete(ms.vs, v)
	ms.total -= c
}

// Len tells how many distinct elements the MultiSet holds.
func (ms MultiSet[T]) Len() int { return len(ms.vs) }

// Total tells how many occurrences the MultiSet holds altogether.
func (ms MultiSet[T]) Total() int { return ms.total }

// ToMap returns a copy of the element counts as a plain Go map.
func (ms MultiSet[T]) ToMap() map[T]int {
	out := make(map[T]int, len(ms.vs))
	for v, c := range ms.vs {
		out[v] = c
	}
	return out
}

// Ranked returns the element-count pairs, the most frequent first.
// Elements with equal counts are ordered by the generic compare.Any ordering,
// so the result is deterministic.
func (ms MultiSet[T]) Ranked() []iterx.KV[T, int] {
	out := make([]iterx.KV[T, int], 0, len(ms.vs))
	for v, c := range ms.vs {
		out = append(out, iterx.KV[T, int]{K: v, V: c})
	}
	compare.SortFunc(out, func(a, b iterx.KV[T, int]) int {
		if c := compare.Numbers(b.V, a.V); c != 0 {
			return c
		}
		return compare.Any(a.K, b.K)
	})
	return out
}

// Iter returns a pull iterator over the element-count pairs, in Ranked order.
func (ms MultiSet[T]) Iter() iterx.Iterator[iterx.KV[T, int]] {
	return iterx.Slice(ms.Ranked())
}

// Stream returns the element-count pairs wrapped in the fluent iterator adapter.
func (ms MultiSet[T]) Stream() *iterx.Stream[iterx.KV[T, int]] {
	return iterx.On(ms.Iter())
}
