// Package datastruct provides value-semantics container types
// that produce and consume the pull iterators of pkg/iterx.
package datastruct

import "go.llib.dev/collkit/pkg/iterx"

// List is the common interface of containers holding an iterable list of elements.
type List[T any] interface {
	Append(vs ...T)
	ToSlice() []T
	Iter() iterx.Iterator[T]
	Sizer
}

// Sequence is a List whose elements are addressable by their position.
type Sequence[T any] interface {
	List[T]
	Lookup(index int) (T, bool)
	Set(index int, val T) bool
	Insert(index int, vs ...T) bool
	Delete(index int) bool
}

// KVS stands for Key Value Store, a common interface for map[K]V like containers.
type KVS[K comparable, V any] interface {
	Lookup(key K) (V, bool)
	Get(key K) V
	Set(key K, val V)
	Delete(key K)
	Keys() []K
	ToMap() map[K]V
	Iter() iterx.Iterator[iterx.KV[K, V]]
	Sizer
}

type Sizer interface {
	Len() int
}
