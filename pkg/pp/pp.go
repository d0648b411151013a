// Package pp provides a cycle-safe pretty printer for debugging purposes.
//
// The rendering is Go-syntax-like, deterministic and address free:
// map entries arrive in a stable order, and cyclic references are cut
// with a back-reference marker instead of recursing forever.
package pp

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"go.llib.dev/collkit/pkg/compare"
)

// DefaultWriter is the output of PP.
var DefaultWriter io.Writer = os.Stderr

// PP prints the pretty-printed representation of the values to the DefaultWriter,
// then returns the values unchanged, so it can be dropped into any expression
// while debugging.
func PP[T any](vs ...T) []T {
	_, _ = fmt.Fprintln(DefaultWriter, FormatAll(vs...))
	return vs
}

// Format renders a value into its pretty-printed representation.
func Format(v any) string {
	f := &formatter{visited: make(map[uintptr]struct{})}
	f.value(reflect.ValueOf(v))
	return f.String()
}

// FormatAll renders each value with Format, space separated.
func FormatAll[T any](vs ...T) string {
	var parts []string
	for _, v := range vs {
		parts = append(parts, Format(v))
	}
	return strings.Join(parts, " ")
}

type formatter struct {
	strings.Builder
	visited map[uintptr]struct{}
}

func (f *formatter) value(v reflect.Value) {
	if !v.IsValid() {
		f.WriteString("nil")
		return
	}
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			f.WriteString("nil")
			return
		}
		f.value(v.Elem())
	case reflect.Pointer:
		f.pointer(v)
	case reflect.Map:
		f.mapValue(v)
	case reflect.Slice, reflect.Array:
		f.sequence(v)
	case reflect.Struct:
		f.structValue(v)
	case reflect.String:
		f.WriteString(strconv.Quote(v.String()))
	case reflect.Bool:
		f.WriteString(strconv.FormatBool(v.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		f.WriteString(strconv.FormatInt(v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		f.WriteString(strconv.FormatUint(v.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		f.WriteString(strconv.FormatFloat(v.Float(), 'g', -1, 64))
	case reflect.Complex64, reflect.Complex128:
		f.WriteString(strconv.FormatComplex(v.Complex(), 'g', -1, 128))
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		// unrenderable kinds are shown by type, never by address
		f.WriteString(v.Type().String())
	default:
		f.WriteString(v.Kind().String())
	}
}

func (f *formatter) pointer(v reflect.Value) {
	if v.IsNil() {
		f.WriteString("nil")
		return
	}
	if !f.enter(v.Pointer(), v.Type()) {
		return
	}
	defer f.leave(v.Pointer())
	f.WriteString("&")
	f.value(v.Elem())
}

func (f *formatter) mapValue(v reflect.Value) {
	if v.IsNil() {
		f.WriteString(v.Type().String() + "(nil)")
		return
	}
	if !f.enter(v.Pointer(), v.Type()) {
		return
	}
	defer f.leave(v.Pointer())
	f.WriteString(v.Type().String())
	f.WriteString("{")
	// keys reached through an unexported field are not interfaceable,
	// Values orders them directly
	keys := v.MapKeys()
	compare.SortFunc(keys, compare.Values)
	for i, k := range keys {
		if 0 < i {
			f.WriteString(", ")
		}
		f.value(k)
		f.WriteString(": ")
		f.value(v.MapIndex(k))
	}
	f.WriteString("}")
}

func (f *formatter) sequence(v reflect.Value) {
	if v.Kind() == reflect.Slice {
		if v.IsNil() {
			f.WriteString(v.Type().String() + "(nil)")
			return
		}
		if !f.enter(v.Pointer(), v.Type()) {
			return
		}
		defer f.leave(v.Pointer())
	}
	f.WriteString(v.Type().String())
	f.WriteString("{")
	for i := 0; i < v.Len(); i++ {
		if 0 < i {
			f.WriteString(", ")
		}
		f.value(v.Index(i))
	}
	f.WriteString("}")
}

func (f *formatter) structValue(v reflect.Value) {
	f.WriteString(v.Type().String())
	f.WriteString("{")
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		if 0 < i {
			f.WriteString(", ")
		}
		f.WriteString(t.Field(i).Name)
		f.WriteString(": ")
		f.value(v.Field(i))
	}
	f.WriteString("}")
}

// enter registers a reference before recursing into it.
// It reports false after writing a back-reference marker
// when the reference is already part of the current rendering path.
func (f *formatter) enter(ptr uintptr, t reflect.Type) bool {
	if _, ok := f.visited[ptr]; ok {
		f.WriteString("<cyclic " + t.String() + ">")
		return false
	}
	f.visited[ptr] = struct{}{}
	return true
}

func (f *formatter) leave(ptr uintptr) {
	delete(f.visited, ptr)
}
