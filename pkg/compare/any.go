package compare

import (
	"fmt"
	"reflect"
)

// Any orders two values of arbitrary, possibly different types.
//
// The ordering is total and deterministic within a process:
// nils sort first, then values are grouped by kind
// (bool < number < string < sequence < map < struct < everything else),
// and compared within their group.
// Numbers compare across integer and float kinds by numeric value.
// Sequences compare lexicographically, maps by their sorted key-value pairs,
// pointers by their pointee.
// Values Go cannot order meaningfully (func, chan) fall back to their type name.
//
// Any tolerates cyclic values: a reference pair that was already visited
// along the current comparison path is treated as equal.
func Any(a, b any) int {
	return anyValue(reflect.ValueOf(a), reflect.ValueOf(b), make(map[visit]struct{}))
}

// AnyFunc is the Any comparator in the shape the sorting helpers expect.
func AnyFunc[T any](a, b T) int { return Any(a, b) }

// Values is the Any ordering over reflect.Value operands.
// It never materialises the operands with Interface,
// so values obtained from unexported fields can be ordered too.
func Values(a, b reflect.Value) int {
	return anyValue(a, b, make(map[visit]struct{}))
}

type visit struct{ a, b uintptr }

const (
	groupNil = iota
	groupBool
	groupNumber
	groupString
	groupSequence
	groupMap
	groupStruct
	groupOther
)

func kindGroup(k reflect.Kind) int {
	switch k {
	case reflect.Bool:
		return groupBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return groupNumber
	case reflect.String:
		return groupString
	case reflect.Slice, reflect.Array:
		return groupSequence
	case reflect.Map:
		return groupMap
	case reflect.Struct:
		return groupStruct
	default:
		return groupOther
	}
}

func anyValue(a, b reflect.Value, visited map[visit]struct{}) int {
	for a.IsValid() && a.Kind() == reflect.Interface {
		a = a.Elem()
	}
	for b.IsValid() && b.Kind() == reflect.Interface {
		b = b.Elem()
	}
	if a.IsValid() && a.Kind() == reflect.Pointer && a.IsNil() {
		a = reflect.Value{}
	}
	if b.IsValid() && b.Kind() == reflect.Pointer && b.IsNil() {
		b = reflect.Value{}
	}
	if !a.IsValid() || !b.IsValid() {
		return Bools(a.IsValid(), b.IsValid()) // nil sorts first
	}
	if a.Kind() == reflect.Pointer && b.Kind() == reflect.Pointer {
		if a.Pointer() == b.Pointer() {
			return 0
		}
		ref := visit{a: a.Pointer(), b: b.Pointer()}
		if _, ok := visited[ref]; ok {
			return 0
		}
		visited[ref] = struct{}{}
		defer delete(visited, ref)
		return anyValue(a.Elem(), b.Elem(), visited)
	}
	if a.Kind() == reflect.Pointer {
		return anyValue(a.Elem(), b, visited)
	}
	if b.Kind() == reflect.Pointer {
		return anyValue(a, b.Elem(), visited)
	}
	ga, gb := kindGroup(a.Kind()), kindGroup(b.Kind())
	if ga != gb {
		return Numbers(ga, gb)
	}
	switch ga {
	case groupBool:
		return Bools(a.Bool(), b.Bool())
	case groupNumber:
		return Numbers(toFloat(a), toFloat(b))
	case groupString:
		return Strings(a.String(), b.String())
	case groupSequence:
		return anySequence(a, b, visited)
	case groupMap:
		return anyMap(a, b, visited)
	case groupStruct:
		return anyStruct(a, b, visited)
	default:
		return Strings(a.Type().String(), b.Type().String())
	}
}

func toFloat(v reflect.Value) float64 {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint())
	case reflect.Float32, reflect.Float64:
		return v.Float()
	default:
		panic(fmt.Sprintf("compare: %s is not a number", v.Kind()))
	}
}

func anySequence(a, b reflect.Value, visited map[visit]struct{}) int {
	if a.Kind() == reflect.Slice && b.Kind() == reflect.Slice {
		if a.IsNil() || b.IsNil() {
			if c := Bools(!a.IsNil(), !b.IsNil()); c != 0 {
				return c
			}
		} else {
			ref := visit{a: a.Pointer(), b: b.Pointer()}
			if _, ok := visited[ref]; ok {
				return 0
			}
			visited[ref] = struct{}{}
			defer delete(visited, ref)
		}
	}
	n := min(a.Len(), b.Len())
	for i := 0; i < n; i++ {
		if c := anyValue(a.Index(i), b.Index(i), visited); c != 0 {
			return c
		}
	}
	return Numbers(a.Len(), b.Len())
}

func anyMap(a, b reflect.Value, visited map[visit]struct{}) int {
	if a.IsNil() || b.IsNil() {
		if c := Bools(!a.IsNil(), !b.IsNil()); c != 0 {
			return c
		}
		return 0
	}
	ref := visit{a: a.Pointer(), b: b.Pointer()}
	if _, ok := visited[ref]; ok {
		return 0
	}
	visited[ref] = struct{}{}
	defer delete(visited, ref)

	if c := Numbers(a.Len(), b.Len()); c != 0 {
		return c
	}
	ka, kb := sortedKeys(a, visited), sortedKeys(b, visited)
	for i := range ka {
		if c := anyValue(ka[i], kb[i], visited); c != 0 {
			return c
		}
	}
	for i := range ka {
		if c := anyValue(a.MapIndex(ka[i]), b.MapIndex(kb[i]), visited); c != 0 {
			return c
		}
	}
	return 0
}

func sortedKeys(m reflect.Value, visited map[visit]struct{}) []reflect.Value {
	keys := m.MapKeys()
	sortValuesFunc(keys, func(a, b reflect.Value) int {
		return anyValue(a, b, visited)
	})
	return keys
}

func anyStruct(a, b reflect.Value, visited map[visit]struct{}) int {
	if a.Type() != b.Type() {
		return Strings(a.Type().String(), b.Type().String())
	}
	for i := 0; i < a.NumField(); i++ {
		if c := anyValue(a.Field(i), b.Field(i), visited); c != 0 {
			return c
		}
	}
	return 0
}
