package iterx

import (
	"iter"

	"go.llib.dev/collkit/pkg/errorkit"
)

// Stream is the fluent adapter of the package.
// It wraps a pull Iterator so the transform and sink vocabulary
// can be invoked as chained calls instead of nested function application.
//
// A Stream has its own identity, separate from the iterator it wraps,
// and forwards pulls to the wrapped iterator unchanged.
// Every transform method returns a new Stream, so chains compose arbitrarily.
//
// Transforms that require a function argument defer the missing-function failure:
// a nil function makes the resulting stream exhausted,
// and the error is retrievable through Err on the stream and every stream derived from it.
type Stream[T any] struct {
	src Iterator[T]
	err error
}

// On wraps a pull iterator into a fluent Stream.
func On[T any](i Iterator[T]) *Stream[T] {
	if i == nil {
		i = Empty[T]()
	}
	return &Stream[T]{src: i}
}

// OnFunc wraps a bare pull function into a fluent Stream.
func OnFunc[T any](fn func() (T, bool)) *Stream[T] {
	if fn == nil {
		return On(Empty[T]())
	}
	return On[T](Func[T](fn))
}

// OnSeq wraps a standard library push sequence into a fluent Stream.
func OnSeq[T any](s iter.Seq[T]) *Stream[T] {
	if s == nil {
		return On(Empty[T]())
	}
	return On(FromSeq(s))
}

// Next forwards the pull to the wrapped iterator, making Stream an Iterator itself.
func (s *Stream[T]) Next() (T, bool) { return s.src.Next() }

// Err reports the deferred construction error of the chain, if any.
func (s *Stream[T]) Err() error { return s.err }

// String renders the combinator topology of the chain, names only, no addresses.
func (s *Stream[T]) String() string { return describe(s.src) }

// Seq exposes the stream as a standard library push sequence.
func (s *Stream[T]) Seq() iter.Seq[T] { return ToSeq[T](s.src) }

func (s *Stream[T]) derive(itr Iterator[T], err error) *Stream[T] {
	if err != nil {
		return &Stream[T]{src: Empty[T](), err: errorkit.Merge(s.err, err)}
	}
	return &Stream[T]{src: itr, err: s.err}
}

// Map transforms each element of the stream.
// Changing the element type requires the package level Map function,
// as Go methods cannot introduce new type parameters.
func (s *Stream[T]) Map(transform func(T) T) *Stream[T] {
	itr, err := Map[T, T](s.src, transform)
	return s.derive(itr, err)
}

// Filter keeps the elements the selector reports true for.
func (s *Stream[T]) Filter(selector func(T) bool) *Stream[T] {
	itr, err := Filter[T](s.src, selector)
	return s.derive(itr, err)
}

// Take limits the stream to at most n elements.
func (s *Stream[T]) Take(n int) *Stream[T] {
	return s.derive(Take[T](s.src, n), nil)
}

// Skip discards the first n elements lazily on the first pull.
func (s *Stream[T]) Skip(n int) *Stream[T] {
	return s.derive(Skip[T](s.src, n), nil)
}

// SkipWhile discards elements while the selector holds.
func (s *Stream[T]) SkipWhile(selector func(T) bool) *Stream[T] {
	itr, err := SkipWhile[T](s.src, selector)
	return s.derive(itr, err)
}

// TakeWhile passes elements while the selector holds, then exhausts permanently.
func (s *Stream[T]) TakeWhile(selector func(T) bool) *Stream[T] {
	itr, err := TakeWhile[T](s.src, selector)
	return s.derive(itr, err)
}

// Chain continues the stream with the values of the other iterator
// after this stream is exhausted.
func (s *Stream[T]) Chain(oth Iterator[T]) *Stream[T] {
	return s.derive(Chain[T](s.src, oth), nil)
}

// Zip pairs up the stream with another iterator of the same element type.
// Pairing with a different element type requires the package level Zip function.
func (s *Stream[T]) Zip(oth Iterator[T]) *Stream[KV[T, T]] {
	return &Stream[KV[T, T]]{src: Zip[T, T](s.src, oth), err: s.err}
}

// Terminate normalises the stream to keep signalling exhaustion
// after the first time it became exhausted.
func (s *Stream[T]) Terminate() *Stream[T] {
	return s.derive(Terminate[T](s.src), nil)
}

// Collect drains the stream into a slice.
// A deferred construction error of the chain is surfaced here.
func (s *Stream[T]) Collect() ([]T, error) {
	if s.err != nil {
		return nil, s.err
	}
	return Collect[T](s.src), nil
}

// Fold drains the stream, folding every element into the accumulator, starting from initial.
func (s *Stream[T]) Fold(initial T, fn func(T, T) T) (T, error) {
	if s.err != nil {
		return initial, s.err
	}
	return Fold[T, T](s.src, initial, fn)
}

// Reduce drains the stream, seeding the accumulator with the first element.
// On an already exhausted stream it returns the zero value and ok == false with a nil error.
func (s *Stream[T]) Reduce(fn func(T, T) T) (T, bool, error) {
	if s.err != nil {
		var zero T
		return zero, false, s.err
	}
	return Reduce[T](s.src, fn)
}

// First pulls the first element of the stream.
func (s *Stream[T]) First() (T, bool) { return First[T](s.src) }

// Last drains the stream and returns its last element.
func (s *Stream[T]) Last() (T, bool) { return Last[T](s.src) }

// Count drains the stream and returns the number of elements.
func (s *Stream[T]) Count() int { return Count[T](s.src) }

// ForEach drains the stream, calling fn with each element,
// stopping at the first error fn returns.
func (s *Stream[T]) ForEach(fn func(T) error) error {
	if s.err != nil {
		return s.err
	}
	return ForEach[T](s.src, fn)
}
