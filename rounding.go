package decimal

import (
	"strings"
	"sync/atomic"

	"github.com/calebcase/decimal/integer"
)

// RoundingMode selects how discarded digits affect the retained ones.
type RoundingMode uint8

// Rounding modes. The names follow the C floating point environment.
const (
	// NearestEven rounds to the nearest value and breaks ties toward an
	// even last digit.
	NearestEven RoundingMode = iota

	// NearestFromZero rounds to the nearest value and breaks ties away
	// from zero.
	NearestFromZero

	// TowardZero truncates.
	TowardZero

	// Upward rounds toward positive infinity.
	Upward

	// Downward rounds toward negative infinity.
	Downward
)

var roundingNames = [...]string{
	NearestEven:     "nearest_even",
	NearestFromZero: "nearest_from_zero",
	TowardZero:      "toward_zero",
	Upward:          "upward",
	Downward:        "downward",
}

func (m RoundingMode) String() string {
	if int(m) < len(roundingNames) {
		return roundingNames[m]
	}

	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (m RoundingMode) MarshalText() ([]byte, error) {
	if int(m) >= len(roundingNames) {
		return nil, Error.New("unknown rounding mode: %d", uint8(m))
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Matching ignores case
// and accepts dashes in place of underscores.
func (m *RoundingMode) UnmarshalText(text []byte) (err error) {
	name := strings.ReplaceAll(strings.ToLower(string(text)), "-", "_")

	for i, n := range roundingNames {
		if n == name {
			*m = RoundingMode(i)

			return nil
		}
	}

	return Error.New("unknown rounding mode: %q", text)
}

// roundUp decides whether the magnitude retained after a division by a
// power of ten must be incremented.
func (m RoundingMode) roundUp(neg, odd bool, rem integer.Remainder) bool {
	if rem.Zero {
		return false
	}

	switch m {
	case TowardZero:
		return false
	case Upward:
		return !neg
	case Downward:
		return neg
	case NearestFromZero:
		return rem.Half >= 0
	}

	return rem.Half > 0 || (rem.Half == 0 && odd)
}

var defaultMode atomic.Uint32

// RoundingModeDefault returns the process wide rounding mode used by the
// methods of Decimal32, Decimal64 and Decimal128.
func RoundingModeDefault() RoundingMode {
	return RoundingMode(defaultMode.Load())
}

// SetRoundingMode changes the process wide rounding mode and returns the
// previous one. It affects every subsequent operation that does not go
// through a Context, in every goroutine.
func SetRoundingMode(m RoundingMode) (prev RoundingMode) {
	return RoundingMode(defaultMode.Swap(uint32(m)))
}
