package glm

import "golang.org/x/exp/constraints"

type float interface {
	constraints.Float
}

type numeric interface {
	float | uint32
}

// Rad is an angle in radians.
type Rad float64
