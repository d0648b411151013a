package datastruct

import (
	"go.llib.dev/collkit/pkg/compare"
	"go.llib.dev/collkit/pkg/iterx"
)

// HashMap is a value-semantics wrapper around a Go map.
// The zero value is an empty, ready to use HashMap.
type HashMap[K comparable, V any] struct {
	vs map[K]V
}

var _ KVS[string, any] = (*HashMap[string, any])(nil)

// HashMapOf creates a HashMap from the given key-value pairs.
func HashMapOf[K comparable, V any](kvs ...iterx.KV[K, V]) HashMap[K, V] {
	var m HashMap[K, V]
	for _, kv := range kvs {
		m.Set(kv.K, kv.V)
	}
	return m
}

// HashMapFrom materialises a HashMap by driving the pull iterator to exhaustion.
// A later pair with an already seen key overwrites the earlier value.
func HashMapFrom[K comparable, V any](i iterx.Iterator[iterx.KV[K, V]]) HashMap[K, V] {
	var m HashMap[K, V]
	for {
		kv, ok := i.Next()
		if !ok {
			break
		}
		m.Set(kv.K, kv.V)
	}
	return m
}

func (m HashMap[K, V]) Lookup(key K) (V, bool) {
	val, ok := m.vs[key]
	return val, ok
}

func (m HashMap[K, V]) Get(key K) V {
	return m.vs[key]
}

func (m *HashMap[K, V]) Set(key K, val V) {
	if m.vs == nil {
		m.vs = make(map[K]V)
	}
	m.vs[key] = val
}

func (m *HashMap[K, V]) Delete(key K) {
	delete(m.vs, key)
}

func (m HashMap[K, V]) Len() int { return len(m.vs) }

// Keys returns the keys in the generic compare.Any order,
// so the result is deterministic regardless of Go's map enumeration.
func (m HashMap[K, V]) Keys() []K {
	keys := make([]K, 0, len(m.vs))
	for k := range m.vs {
		keys = append(keys, k)
	}
	compare.SortAny(keys)
	return keys
}

// ToMap returns a copy of the content as a plain Go map.
func (m HashMap[K, V]) ToMap() map[K]V {
	out := make(map[K]V, len(m.vs))
	for k, v := range m.vs {
		out[k] = v
	}
	return out
}

// Iter returns a pull iterator over the key-value pairs.
// The pairs arrive in the deterministic Keys order.
func (m HashMap[K, V]) Iter() iterx.Iterator[iterx.KV[K, V]] {
	keys := m.Keys()
	kvs := make([]iterx.KV[K, V], 0, len(keys))
	for _, k := range keys {
		kvs = append(kvs, iterx.KV[K, V]{K: k, V: m.vs[k]})
	}
	return iterx.Slice(kvs)
}

// Stream returns the key-value pairs wrapped in the fluent iterator adapter.
func (m HashMap[K, V]) Stream() *iterx.Stream[iterx.KV[K, V]] {
	return iterx.On(m.Iter())
}
