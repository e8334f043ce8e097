package decimal

import (
	"github.com/calebcase/decimal/integer"
)

// format holds the parameters of one interchange format.
type format struct {
	name string

	// precision is the number of significant decimal digits.
	precision int

	// bias is subtracted from the stored exponent.
	bias int

	// maxBiased is the largest stored exponent.
	maxBiased int

	layout *layout
}

var (
	format32 = &format{
		name:      "decimal32",
		precision: 7,
		bias:      101,
		maxBiased: 191,
		layout:    newLayout(32, 8, 20),
	}

	format64 = &format{
		name:      "decimal64",
		precision: 16,
		bias:      398,
		maxBiased: 767,
		layout:    newLayout(64, 10, 50),
	}

	// The high word of decimal128 carries 46 of the 110 payload bits.
	format128 = &format{
		name:      "decimal128",
		precision: 34,
		bias:      6176,
		maxBiased: 12287,
		layout:    newLayout(64, 14, 46),
	}
)

// Exponent limits of the coefficient-integer view (value = coeff * 10^exp).
const (
	MinExp32 = -101
	MaxExp32 = 90

	MinExp64 = -398
	MaxExp64 = 369

	MinExp128 = -6176
	MaxExp128 = 6111
)

// Working engines per format. The fma engines reuse the format parameters
// with a coefficient wide enough to hold an exact product plus an aligned
// addend.
var (
	eng32  = engine[integer.U64]{format32}
	eng64  = engine[integer.U128]{format64}
	eng128 = engine[integer.U256]{format128}

	fma32  = engine[integer.U128]{format32}
	fma64  = engine[integer.U256]{format64}
	fma128 = engine[integer.Big]{format128}
)
