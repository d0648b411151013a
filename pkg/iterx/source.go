package iterx

import (
	"fmt"
	"iter"
	"reflect"
)

// Slice returns a fresh iterator over the values of the given slice, in order.
func Slice[T any](vs []T) Iterator[T] {
	return &sliceIter[T]{vs: vs}
}

type sliceIter[T any] struct {
	vs    []T
	index int
}

func (i *sliceIter[T]) Next() (T, bool) {
	if len(i.vs) <= i.index {
		var zero T
		return zero, false
	}
	v := i.vs[i.index]
	i.index++
	return v, true
}

func (i *sliceIter[T]) String() string { return "slice" }

// Empty returns an iterator that is exhausted from the start.
// It is used to represent a nil result with the Null object pattern.
func Empty[T any]() Iterator[T] {
	return emptyIter[T]{}
}

type emptyIter[T any] struct{}

func (emptyIter[T]) Next() (T, bool) {
	var zero T
	return zero, false
}

func (emptyIter[T]) String() string { return "empty" }

// Range returns an iterator over the arithmetic sequence start, start+step, start+2*step, ...
// The stop bound is inclusive.
// A positive step runs while the value <= stop, a negative step runs while the value >= stop.
// A zero step is a configuration error, as the sequence could never reach the stop bound.
func Range(start, stop, step int) (Iterator[int], error) {
	if step == 0 {
		return nil, ErrConfiguration.F("Range: a zero step can not reach %d from %d", stop, start)
	}
	return &rangeIter{start: start, next: start, stop: stop, step: step}, nil
}

type rangeIter struct {
	start            int // as constructed, for rendering
	next, stop, step int
}

func (i *rangeIter) Next() (int, bool) {
	v := i.next
	if (0 < i.step && i.stop < v) || (i.step < 0 && v < i.stop) {
		return 0, false
	}
	i.next = v + i.step
	return v, true
}

func (i *rangeIter) String() string {
	return fmt.Sprintf("range(%d, %d, %d)", i.start, i.stop, i.step)
}

// Reiterate returns an infinite iterator that yields the given element on every pull, forever.
func Reiterate[T any](v T) Iterator[T] {
	return &reiterateIter[T]{v: v}
}

type reiterateIter[T any] struct{ v T }

func (i *reiterateIter[T]) Next() (T, bool) { return i.v, true }

func (i *reiterateIter[T]) String() string { return "reiterate" }

// SingleValue returns an iterator that yields the given element exactly once,
// then signals exhaustion on every subsequent pull.
// The element is retained by the iterator even after emission.
func SingleValue[T any](v T) Iterator[T] {
	return &singleValueIter[T]{v: v}
}

type singleValueIter[T any] struct {
	v    T
	done bool
}

func (i *singleValueIter[T]) Next() (T, bool) {
	if i.done {
		var zero T
		return zero, false
	}
	i.done = true
	return i.v, true
}

func (i *singleValueIter[T]) String() string { return "single" }

// Cycle returns an infinite iterator that yields the slice elements in order,
// wrapping back to the first element after the last.
// An empty slice is a configuration error, as there is nothing to cycle over.
//
// Mutating the backing slice while cycling is undefined behaviour.
func Cycle[T any](vs []T) (Iterator[T], error) {
	if len(vs) == 0 {
		return nil, ErrConfiguration.F("Cycle: no element to cycle over")
	}
	return &cycleIter[T]{vs: vs}, nil
}

type cycleIter[T any] struct {
	vs    []T
	index int
}

func (i *cycleIter[T]) Next() (T, bool) {
	v := i.vs[i.index]
	i.index = (i.index + 1) % len(i.vs)
	return v, true
}

func (i *cycleIter[T]) String() string { return "cycle" }

// CountFrom returns an infinite arithmetic iterator.
// The first pull returns start+step, not start, and every pull after keeps adding step.
func CountFrom(start, step int) Iterator[int] {
	return &countFromIter{start: start, current: start, step: step}
}

type countFromIter struct {
	start         int // as constructed, for rendering
	current, step int
}

func (i *countFromIter) Next() (int, bool) {
	i.current += i.step
	return i.current, true
}

func (i *countFromIter) String() string {
	return fmt.Sprintf("count(%d, %d)", i.start, i.step)
}

// FromAny normalises an arbitrary value into an iterator:
//   - a map yields its key-value pairs as KV[any, any], in Go's map enumeration order,
//     which is intentionally randomised by the runtime and must not be relied upon
//   - a string yields its characters one rune per pull
//   - a slice or array yields its elements in order
//   - any other value is yielded exactly once
func FromAny(v any) Iterator[any] {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		return &mapPairIter{pairs: rv.MapRange()}
	case reflect.String:
		return &runeIter{runes: []rune(rv.String())}
	case reflect.Slice, reflect.Array:
		return &reflectSliceIter{vs: rv}
	default:
		return SingleValue[any](v)
	}
}

type mapPairIter struct {
	pairs *reflect.MapIter
}

func (i *mapPairIter) Next() (any, bool) {
	if !i.pairs.Next() {
		return nil, false
	}
	return KV[any, any]{K: i.pairs.Key().Interface(), V: i.pairs.Value().Interface()}, true
}

func (i *mapPairIter) String() string { return "pairs" }

type runeIter struct {
	runes []rune
	index int
}

func (i *runeIter) Next() (any, bool) {
	if len(i.runes) <= i.index {
		return nil, false
	}
	r := i.runes[i.index]
	i.index++
	return r, true
}

func (i *runeIter) String() string { return "runes" }

type reflectSliceIter struct {
	vs    reflect.Value
	index int
}

func (i *reflectSliceIter) Next() (any, bool) {
	if i.vs.Len() <= i.index {
		return nil, false
	}
	v := i.vs.Index(i.index).Interface()
	i.index++
	return v, true
}

func (i *reflectSliceIter) String() string { return "slice" }

// FromSeq adapts a standard library push sequence into a pull Iterator.
// The returned iterator releases the underlying coroutine on exhaustion.
func FromSeq[T any](s iter.Seq[T]) Iterator[T] {
	next, stop := iter.Pull(s)
	return &seqIter[T]{next: next, stop: stop}
}

type seqIter[T any] struct {
	next func() (T, bool)
	stop func()
	done bool
}

func (i *seqIter[T]) Next() (T, bool) {
	if i.done {
		var zero T
		return zero, false
	}
	v, ok := i.next()
	if !ok {
		i.done = true
		i.stop()
	}
	return v, ok
}

func (i *seqIter[T]) String() string { return "seq" }

// ToSeq adapts a pull Iterator into a standard library push sequence.
// The returned sequence is single use, as it drains the shared iterator.
func ToSeq[T any](i Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if i == nil {
			return
		}
		for {
			v, ok := i.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
