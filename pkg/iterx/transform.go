package iterx

import "fmt"

// Map allows you to do additional transformation on the values.
// This is useful in cases where you have to alter the input value,
// or change the type all together.
// The transformation is applied lazily, one element per pull.
func Map[To any, From any](i Iterator[From], transform func(From) To) (Iterator[To], error) {
	if transform == nil {
		return nil, ErrMissingFunc.F("Map: nil transform function")
	}
	if i == nil {
		i = Empty[From]()
	}
	return &mapIter[To, From]{src: i, transform: transform}, nil
}

type mapIter[To any, From any] struct {
	src       Iterator[From]
	transform func(From) To
}

func (i *mapIter[To, From]) Next() (To, bool) {
	v, ok := i.src.Next()
	if !ok {
		var zero To
		return zero, false
	}
	return i.transform(v), true
}

func (i *mapIter[To, From]) String() string {
	return fmt.Sprintf("map(%s)", describe(i.src))
}

// Filter keeps the values the selector reports true for.
// Each pull keeps pulling upstream until a value passes the selector or upstream exhausts.
func Filter[T any](i Iterator[T], selector func(T) bool) (Iterator[T], error) {
	if selector == nil {
		return nil, ErrMissingFunc.F("Filter: nil selector function")
	}
	if i == nil {
		i = Empty[T]()
	}
	return &filterIter[T]{src: i, match: selector}, nil
}

type filterIter[T any] struct {
	src   Iterator[T]
	match func(T) bool
}

func (i *filterIter[T]) Next() (T, bool) {
	for {
		v, ok := i.src.Next()
		if !ok {
			var zero T
			return zero, false
		}
		if i.match(v) {
			return v, true
		}
	}
}

func (i *filterIter[T]) String() string {
	return fmt.Sprintf("filter(%s)", describe(i.src))
}

// Take yields up to n values, then signals exhaustion on every further pull,
// even if upstream still has values. Upstream is never pulled again after the limit.
// A non-positive n is exhausted immediately.
func Take[T any](i Iterator[T], n int) Iterator[T] {
	if i == nil {
		i = Empty[T]()
	}
	return &takeIter[T]{src: i, n: n, remaining: n}
}

type takeIter[T any] struct {
	src       Iterator[T]
	n         int // as constructed, for rendering
	remaining int
}

func (i *takeIter[T]) Next() (T, bool) {
	if i.remaining <= 0 {
		var zero T
		return zero, false
	}
	v, ok := i.src.Next()
	if !ok {
		i.remaining = 0
		var zero T
		return zero, false
	}
	i.remaining--
	return v, true
}

func (i *takeIter[T]) String() string {
	return fmt.Sprintf("take(%s, %d)", describe(i.src), i.n)
}

// Skip consumes and discards the first n upstream values on the first pull only,
// then behaves as a plain pass-through.
// If upstream exhausts during the skip phase, all further pulls return exhaustion.
func Skip[T any](i Iterator[T], n int) Iterator[T] {
	if i == nil {
		i = Empty[T]()
	}
	return &skipIter[T]{src: i, n: n}
}

type skipIter[T any] struct {
	src     Iterator[T]
	n       int
	skipped bool
	done    bool
}

func (i *skipIter[T]) Next() (T, bool) {
	if i.done {
		var zero T
		return zero, false
	}
	if !i.skipped {
		i.skipped = true
		for j := 0; j < i.n; j++ {
			if _, ok := i.src.Next(); !ok {
				i.done = true
				var zero T
				return zero, false
			}
		}
	}
	return i.src.Next()
}

func (i *skipIter[T]) String() string {
	return fmt.Sprintf("skip(%s, %d)", describe(i.src), i.n)
}

// SkipWhile pulls and discards upstream values while the selector holds.
// The first value the selector rejects is returned as part of that same pull,
// and every pull after that is an unconditional pass-through;
// the selector is never consulted again.
func SkipWhile[T any](i Iterator[T], selector func(T) bool) (Iterator[T], error) {
	if selector == nil {
		return nil, ErrMissingFunc.F("SkipWhile: nil selector function")
	}
	if i == nil {
		i = Empty[T]()
	}
	return &skipWhileIter[T]{src: i, match: selector}, nil
}

type skipWhileIter[T any] struct {
	src     Iterator[T]
	match   func(T) bool
	skipped bool
}

func (i *skipWhileIter[T]) Next() (T, bool) {
	if i.skipped {
		return i.src.Next()
	}
	i.skipped = true
	for {
		v, ok := i.src.Next()
		if !ok {
			var zero T
			return zero, false
		}
		if !i.match(v) {
			return v, true
		}
	}
}

func (i *skipWhileIter[T]) String() string {
	return fmt.Sprintf("skipwhile(%s)", describe(i.src))
}

// TakeWhile returns upstream values while the selector holds.
// The first value the selector rejects is dropped, not emitted,
// and from then on the iterator signals exhaustion permanently;
// upstream is not pulled again.
func TakeWhile[T any](i Iterator[T], selector func(T) bool) (Iterator[T], error) {
	if selector == nil {
		return nil, ErrMissingFunc.F("TakeWhile: nil selector function")
	}
	if i == nil {
		i = Empty[T]()
	}
	return &takeWhileIter[T]{src: i, match: selector}, nil
}

type takeWhileIter[T any] struct {
	src   Iterator[T]
	match func(T) bool
	done  bool
}

func (i *takeWhileIter[T]) Next() (T, bool) {
	var zero T
	if i.done {
		return zero, false
	}
	v, ok := i.src.Next()
	if !ok || !i.match(v) {
		i.done = true
		return zero, false
	}
	return v, true
}

func (i *takeWhileIter[T]) String() string {
	return fmt.Sprintf("takewhile(%s)", describe(i.src))
}

// Chain exhausts the first iterator completely, then switches permanently to the other.
// Once the switch happened, the first iterator is never invoked again,
// even if it could resume producing values.
func Chain[T any](i, oth Iterator[T]) Iterator[T] {
	if i == nil {
		i = Empty[T]()
	}
	if oth == nil {
		oth = Empty[T]()
	}
	return &chainIter[T]{first: i, second: oth}
}

type chainIter[T any] struct {
	first, second Iterator[T]
	switched      bool
}

func (i *chainIter[T]) Next() (T, bool) {
	if !i.switched {
		if v, ok := i.first.Next(); ok {
			return v, true
		}
		i.switched = true
	}
	return i.second.Next()
}

func (i *chainIter[T]) String() string {
	return fmt.Sprintf("chain(%s, %s)", describe(i.first), describe(i.second))
}

// Zip pairs up two iterators.
// Each pull pulls both sides; when either side is exhausted,
// the zip is treated as fully exhausted and neither side is pulled again.
// No partial pairs are produced.
func Zip[A, B any](a Iterator[A], b Iterator[B]) Iterator[KV[A, B]] {
	if a == nil {
		a = Empty[A]()
	}
	if b == nil {
		b = Empty[B]()
	}
	return &zipIter[A, B]{a: a, b: b}
}

type zipIter[A, B any] struct {
	a    Iterator[A]
	b    Iterator[B]
	done bool
}

func (i *zipIter[A, B]) Next() (KV[A, B], bool) {
	var zero KV[A, B]
	if i.done {
		return zero, false
	}
	va, oka := i.a.Next()
	vb, okb := i.b.Next()
	if !oka || !okb {
		i.done = true
		return zero, false
	}
	return KV[A, B]{K: va, V: vb}, true
}

func (i *zipIter[A, B]) String() string {
	return fmt.Sprintf("zip(%s, %s)", describe(i.a), describe(i.b))
}

// Terminate passes values through until upstream first signals exhaustion,
// then signals exhaustion on every subsequent pull regardless of upstream behaviour.
// Use it to normalise iterators that might resume producing values after exhaustion.
func Terminate[T any](i Iterator[T]) Iterator[T] {
	if i == nil {
		i = Empty[T]()
	}
	return &terminateIter[T]{src: i}
}

type terminateIter[T any] struct {
	src  Iterator[T]
	done bool
}

func (i *terminateIter[T]) Next() (T, bool) {
	if i.done {
		var zero T
		return zero, false
	}
	v, ok := i.src.Next()
	if !ok {
		i.done = true
	}
	return v, ok
}

func (i *terminateIter[T]) String() string {
	return fmt.Sprintf("terminate(%s)", describe(i.src))
}
