package datastruct

import (
	"go.llib.dev/collkit/pkg/compare"
	"go.llib.dev/collkit/pkg/iterx"
)

// Array is an ordered list of elements.
// The zero value is an empty, ready to use Array.
type Array[T any] struct {
	vs []T
}

var _ Sequence[any] = (*Array[any])(nil)

// ArrayOf creates an Array holding the given elements.
func ArrayOf[T any](vs ...T) Array[T] {
	var a Array[T]
	a.Append(vs...)
	return a
}

// ArrayFrom materialises an Array by driving the pull iterator to exhaustion.
func ArrayFrom[T any](i iterx.Iterator[T]) Array[T] {
	return Array[T]{vs: iterx.Collect(i)}
}

func (a *Array[T]) Append(vs ...T) {
	a.vs = append(a.vs, vs...)
}

// Lookup returns the element at the given position.
func (a Array[T]) Lookup(index int) (T, bool) {
	if index < 0 || len(a.vs) <= index {
		var zero T
		return zero, false
	}
	return a.vs[index], true
}

// Set overwrites the element at an existing position.
func (a *Array[T]) Set(index int, val T) bool {
	if index < 0 || len(a.vs) <= index {
		return false
	}
	a.vs[index] = val
	return true
}

// Insert places the values before the given position.
// Inserting at Len() appends.
func (a *Array[T]) Insert(index int, vs ...T) bool {
	if index < 0 || len(a.vs) < index {
		return false
	}
	a.vs = append(a.vs[:index], append(append([]T{}, vs...), a.vs[index:]...)...)
	return true
}

// Delete removes the element at the given position, keeping the order of the rest.
func (a *Array[T]) Delete(index int) bool {
	if index < 0 || len(a.vs) <= index {
		return false
	}
	a.vs = append(a.vs[:index], a.vs[index+1:]...)
	return true
}

func (a Array[T]) Len() int { return len(a.vs) }

// ToSlice returns a copy of the elements, in order.
func (a Array[T]) ToSlice() []T {
	out := make([]T, len(a.vs))
	copy(out, a.vs)
	return out
}

// Iter returns a fresh pull iterator over the elements.
func (a Array[T]) Iter() iterx.Iterator[T] {
	return iterx.Slice(a.vs)
}

// Stream returns the elements wrapped in the fluent iterator adapter.
func (a Array[T]) Stream() *iterx.Stream[T] {
	return iterx.On(a.Iter())
}

// Sort orders the elements ascending.
// Without a comparator the generic compare.Any ordering is used,
// so an Array of any element type can be sorted.
func (a *Array[T]) Sort(cmps ...func(l, r T) int) {
	cmp := compare.AnyFunc[T]
	if 0 < len(cmps) && cmps[0] != nil {
		cmp = cmps[0]
	}
	compare.SortFunc(a.vs, cmp)
}

// Reverse flips the element order in place.
func (a *Array[T]) Reverse() {
	for i, j := 0, len(a.vs)-1; i < j; i, j = i+1, j-1 {
		a.vs[i], a.vs[j] = a.vs[j], a.vs[i]
	}
}
