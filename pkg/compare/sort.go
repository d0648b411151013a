package compare

import (
	"reflect"
	"slices"

	"go.llib.dev/collkit/internal/constraints"
)

// Sort sorts a slice of any ordered type in ascending order.
func Sort[T constraints.Ordered](vs []T) {
	slices.Sort(vs)
}

// SortFunc sorts the slice in the ascending order defined by the cmp function.
// The sort is stable, equal elements keep their original order.
func SortFunc[T any](vs []T, cmp func(a, b T) int) {
	slices.SortStableFunc(vs, cmp)
}

// SortAny sorts a slice of arbitrary values with the Any comparator,
// so mixed-type slices get a deterministic order as well.
func SortAny[T any](vs []T) {
	SortFunc(vs, AnyFunc[T])
}

func sortValuesFunc(vs []reflect.Value, cmp func(a, b reflect.Value) int) {
	slices.SortStableFunc(vs, cmp)
}
