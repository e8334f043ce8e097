package decimal

import (
	"math"

	"github.com/calebcase/decimal/integer"
)

// Ordering is the result of a three way comparison that admits NaN.
type Ordering int8

// Orderings. Less, Equal and Greater match the sign convention of
// cmp.Compare.
const (
	Less      Ordering = -1
	Equal     Ordering = 0
	Greater   Ordering = 1
	Unordered Ordering = 2
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	}

	return "unordered"
}

// Class is the floating point category of a value.
type Class uint8

// Categories, in the order fpclassify tests them.
const (
	ClassNormal Class = iota
	ClassInfinite
	ClassNaN
	ClassZero
	ClassSubnormal
)

func (c Class) String() string {
	switch c {
	case ClassNormal:
		return "normal"
	case ClassInfinite:
		return "infinite"
	case ClassNaN:
		return "nan"
	case ClassZero:
		return "zero"
	}

	return "subnormal"
}

func (e engine[T]) classify(a components[T]) Class {
	switch {
	case a.kind.isNaN():
		return ClassNaN
	case a.kind == infinite:
		return ClassInfinite
	case a.coeff.IsZero():
		return ClassZero
	case e.isNormal(a):
		return ClassNormal
	}

	return ClassSubnormal
}

func sameQuantum[T integer.Uint[T]](a, b components[T]) bool {
	switch {
	case a.kind.isNaN() || b.kind.isNaN():
		return a.kind.isNaN() && b.kind.isNaN()
	case a.kind == infinite || b.kind == infinite:
		return a.kind == b.kind
	}

	return a.exp == b.exp
}

func quantExp[T integer.Uint[T]](a components[T]) int {
	if a.kind != finite {
		return math.MinInt32
	}

	return a.exp
}
