package iterx

// Collect pulls the iterator until exhaustion,
// accumulating every produced value in pull order into a new slice.
// An exhausted input yields an empty, non-nil slice.
func Collect[T any](i Iterator[T]) []T {
	if i == nil {
		return nil
	}
	var vs = make([]T, 0)
	for {
		v, ok := i.Next()
		if !ok {
			break
		}
		vs = append(vs, v)
	}
	return vs
}

// Fold drives the iterator to completion,
// folding every pulled value into the accumulator left to right, starting from initial.
func Fold[R, T any](i Iterator[T], initial R, fn func(R, T) R) (R, error) {
	if fn == nil {
		return initial, ErrMissingFunc.F("Fold: nil reducer function")
	}
	var acc = initial
	if i == nil {
		return acc, nil
	}
	for {
		v, ok := i.Next()
		if !ok {
			break
		}
		acc = fn(acc, v)
	}
	return acc, nil
}

// Reduce folds the iterator left to right,
// seeding the accumulator with the first pulled value.
// When the iterator is already exhausted, the zero value and ok == false is returned
// with a nil error: exhaustion is the designed termination signal, not a failure.
func Reduce[T any](i Iterator[T], fn func(T, T) T) (T, bool, error) {
	var zero T
	if fn == nil {
		return zero, false, ErrMissingFunc.F("Reduce: nil reducer function")
	}
	if i == nil {
		return zero, false, nil
	}
	acc, ok := i.Next()
	if !ok {
		return zero, false, nil
	}
	for {
		v, ok := i.Next()
		if !ok {
			break
		}
		acc = fn(acc, v)
	}
	return acc, true, nil
}

// First pulls the first value of the iterator.
func First[T any](i Iterator[T]) (T, bool) {
	if i == nil {
		var zero T
		return zero, false
	}
	return i.Next()
}

// Last drains the iterator and returns the last pulled value.
func Last[T any](i Iterator[T]) (T, bool) {
	var (
		last T
		ok   bool
	)
	if i == nil {
		return last, ok
	}
	for {
		v, more := i.Next()
		if !more {
			break
		}
		last = v
		ok = true
	}
	return last, ok
}

// Count drains the iterator and returns the total number of iterations.
//
// Good when all you want is to count the elements but don't want to do anything else with them.
func Count[T any](i Iterator[T]) int {
	var total int
	if i == nil {
		return total
	}
	for {
		if _, ok := i.Next(); !ok {
			break
		}
		total++
	}
	return total
}

// ForEach drains the iterator, calling fn with each pulled value.
// Iteration stops at the first error fn returns, and that error is returned.
func ForEach[T any](i Iterator[T], fn func(T) error) error {
	if fn == nil {
		return ErrMissingFunc.F("ForEach: nil function block")
	}
	if i == nil {
		return nil
	}
	for {
		v, ok := i.Next()
		if !ok {
			return nil
		}
		if err := fn(v); err != nil {
			return err
		}
	}
}
