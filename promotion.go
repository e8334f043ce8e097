package decimal

// Kind identifies which format a Value holds.
type Kind uint8

const (
	Kind32 Kind = iota
	Kind64
	Kind128
)

func (k Kind) String() string {
	switch k {
	case Kind32:
		return "decimal32"
	case Kind64:
		return "decimal64"
	case Kind128:
		return "decimal128"
	}

	return "unknown"
}

// promote returns the format mixed operands are evaluated in: the wider of
// the two.
func promote(a, b Kind) Kind {
	if a > b {
		return a
	}

	return b
}

// Value holds a decimal of any of the three formats. Binary operations on
// values of different formats widen the narrower operand first, which is
// exact, and return a Value of the wider format.
//
// The zero Value is a decimal32 positive zero.
type Value struct {
	kind Kind
	d32  Decimal32
	d64  Decimal64
	d128 Decimal128
}

func Value32(x Decimal32) Value { return Value{kind: Kind32, d32: x} }

func Value64(x Decimal64) Value { return Value{kind: Kind64, d64: x} }

func Value128(x Decimal128) Value { return Value{kind: Kind128, d128: x} }

// Kind returns the format of v.
func (v Value) Kind() Kind { return v.kind }

// As32 returns v as a Decimal32, rounding with the default mode when v is
// wider.
func (v Value) As32() Decimal32 {
	switch v.kind {
	case Kind64:
		return v.d64.To32()
	case Kind128:
		return v.d128.To32()
	}

	return v.d32
}

// As64 returns v as a Decimal64.
func (v Value) As64() Decimal64 {
	switch v.kind {
	case Kind32:
		return v.d32.To64()
	case Kind128:
		return v.d128.To64()
	}

	return v.d64
}

// As128 returns v as a Decimal128. The conversion is always exact.
func (v Value) As128() Decimal128 {
	switch v.kind {
	case Kind32:
		return v.d32.To128()
	case Kind64:
		return v.d64.To128()
	}

	return v.d128
}

func (v Value) String() string {
	switch v.kind {
	case Kind64:
		return v.d64.String()
	case Kind128:
		return v.d128.String()
	}

	return v.d32.String()
}

// binary applies the operation matching the promoted kind of v and w.
func (v Value) binary(
	w Value,
	op32 func(x, y Decimal32) Decimal32,
	op64 func(x, y Decimal64) Decimal64,
	op128 func(x, y Decimal128) Decimal128,
) Value {
	switch promote(v.kind, w.kind) {
	case Kind64:
		return Value64(op64(v.As64(), w.As64()))
	case Kind128:
		return Value128(op128(v.As128(), w.As128()))
	}

	return Value32(op32(v.d32, w.d32))
}

func (v Value) Add(w Value) Value {
	return v.binary(w, Decimal32.Add, Decimal64.Add, Decimal128.Add)
}

func (v Value) Sub(w Value) Value {
	return v.binary(w, Decimal32.Sub, Decimal64.Sub, Decimal128.Sub)
}

func (v Value) Mul(w Value) Value {
	return v.binary(w, Decimal32.Mul, Decimal64.Mul, Decimal128.Mul)
}

func (v Value) Quo(w Value) Value {
	return v.binary(w, Decimal32.Quo, Decimal64.Quo, Decimal128.Quo)
}

func (v Value) Rem(w Value) Value {
	return v.binary(w, Decimal32.Rem, Decimal64.Rem, Decimal128.Rem)
}

// Compare orders v and w by value after promotion.
func (v Value) Compare(w Value) Ordering {
	switch promote(v.kind, w.kind) {
	case Kind64:
		return v.As64().Compare(w.As64())
	case Kind128:
		return v.As128().Compare(w.As128())
	}

	return v.d32.Compare(w.d32)
}

// Equal reports whether v and w have the same value, regardless of format.
func (v Value) Equal(w Value) bool {
	return v.Compare(w) == Equal
}
