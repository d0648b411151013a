// Package constraints contains the generic constraints shared between the collkit packages.
package constraints

import "golang.org/x/exp/constraints"

type (
	Ordered  = constraints.Ordered
	Signed   = constraints.Signed
	Unsigned = constraints.Unsigned
	Integer  = constraints.Integer
	Float    = constraints.Float
)

// Number is a constraint that matches every built-in numeric type.
type Number interface {
	constraints.Integer | constraints.Float
}
