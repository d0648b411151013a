// Package iterx provides a lazy pull-iterator combinator framework.
//
// # Summary
//
// An iterator's goal is to decouple the origin of the data from the consumer who uses that data.
// A pull iterator represents an iterable list of elements,
// which length is not known until it is fully iterated, thus can range from zero to infinity.
// Sources produce a fresh iterator, transforms wrap an existing one without evaluating it,
// and sinks drive the pipeline to completion, pulling one element at a time
// from the outermost wrapper down to the source.
//
// Constructing a pipeline performs zero pulls;
// each Next call performs only the minimal upstream work needed for one output value.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
// https://en.wikipedia.org/wiki/Lazy_evaluation
package iterx

import (
	"fmt"
	"reflect"
	"strings"

	"go.llib.dev/collkit/pkg/errorkit"
)

// Iterator is the pull contract of the package.
// Each Next call returns the next element of the sequence and true,
// or the zero value and false once the sequence is exhausted.
//
// The (T, bool) return shape keeps element values and the exhaustion signal apart:
// a nil or zero element is an ordinary value, only ok == false means the sequence ended.
//
// A raw Iterator is not guaranteed to stay exhausted after it reported exhaustion once;
// use Terminate to normalise iterators that might resume.
// An iterator must have a single owner and must not be pulled from two call sites.
type Iterator[T any] interface {
	// Next returns the next element of the sequence,
	// or ok == false if no more element is retrievable.
	Next() (T, bool)
}

// Func lets a bare function act as an Iterator,
// so externally supplied pull functions plug into the pipeline without adaptation.
type Func[T any] func() (T, bool)

func (fn Func[T]) Next() (T, bool) { return fn() }

func (fn Func[T]) String() string { return "func" }

// KV represents a generic key-value pair.
type KV[K, V any] struct {
	K K
	V V
}

const (
	// ErrConfiguration is returned when a source constructor receives arguments
	// it cannot produce values from.
	ErrConfiguration errorkit.Error = "iterx: invalid source configuration"
	// ErrMissingFunc is returned when a transform or sink requires a function argument
	// but got nil instead.
	ErrMissingFunc errorkit.Error = "iterx: missing function argument"
)

// describe renders a human readable, address free description of an iterator,
// used by Stream.String to show the combinator topology.
func describe(v any) string {
	if v == nil {
		return "<nil>"
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := t.Name()
	if name == "" {
		name = t.String()
	}
	if i := strings.IndexByte(name, '['); 0 <= i {
		name = name[:i]
	}
	return name
}
