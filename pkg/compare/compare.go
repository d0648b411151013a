// Package compare provides comparator interfaces and generic comparison helpers,
// including a reflective comparator that can order values of any type.
package compare

import (
	"strings"

	"go.llib.dev/collkit/internal/constraints"
)

// Interface defines how comparison can be implemented on a user defined type.
// Types implementing it can be ordered by the sorting routines of this package.
//
// Example usage:
//
//	type MyNumber int
//
//	func (m MyNumber) Compare(oth MyNumber) int {
//		return compare.Numbers(int(m), int(oth))
//	}
type Interface[T any] interface {
	// Compare returns:
	//   -1 if the receiver is less than the argument,
	//    0 if they're equal, and
	//   +1 if the receiver is greater.
	//
	// Implementors must ensure consistent ordering semantics.
	Compare(T) int
}

// ShortInterface is the short form of Interface,
// matching the convention of math/big and similar packages.
type ShortInterface[T any] interface {
	// Cmp compares x and y and returns:
	//   - -1 if x  < y;
	//   -  0 if x == y;
	//   - +1 if x  > y.
	Cmp(T) int
}

// IsEqual reports whether two values are equal based on their comparison result.
func IsEqual(cmp int) bool { return cmp == 0 }

// IsLess reports whether the receiver is less than the other value.
func IsLess(cmp int) bool { return cmp < 0 }

// IsLessOrEqual reports whether the receiver is less than or equal to the other value.
func IsLessOrEqual(cmp int) bool { return cmp <= 0 }

// IsMore reports whether the receiver is greater than the other value.
func IsMore(cmp int) bool { return 0 < cmp }

// IsMoreOrEqual reports whether the receiver is more than or equal to the other value.
func IsMoreOrEqual(cmp int) bool { return 0 <= cmp }

// IsGreater reports whether the receiver is greater than the other value.
func IsGreater(cmp int) bool { return IsMore(cmp) }

// IsGreaterOrEqual reports whether the receiver is greater than or equal to the other value.
func IsGreaterOrEqual(cmp int) bool { return IsMoreOrEqual(cmp) }

func Numbers[T constraints.Number](a, b T) int {
	switch {
	case a < b:
		return -1
	case b < a:
		return 1
	default:
		return 0
	}
}

func Strings[S ~string](a, b S) int {
	return strings.Compare(string(a), string(b))
}

// Bools orders false before true.
func Bools[B ~bool](a, b B) int {
	switch {
	case !bool(a) && bool(b):
		return -1
	case bool(a) && !bool(b):
		return 1
	default:
		return 0
	}
}

// Ordered compares two values of any ordered type.
func Ordered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case b < a:
		return 1
	default:
		return 0
	}
}
