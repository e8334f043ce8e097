package decimal

import (
	num "github.com/shabbyrobe/go-num"

	"github.com/calebcase/decimal/integer"
)

// Forms reported by Decompose and accepted by Compose. The first three
// match the decimal decomposer convention used by database drivers;
// FormSNaN extends it so signaling NaNs survive a round trip.
const (
	FormFinite   byte = 0
	FormInfinite byte = 1
	FormNaN      byte = 2
	FormSNaN     byte = 3
)

func decompose[T integer.Uint[T]](c components[T], buf []byte) (form byte, negative bool, coefficient []byte, exponent int32) {
	switch c.kind {
	case infinite:
		return FormInfinite, c.neg, buf[:0], 0
	case quietNaN:
		form = FormNaN
	case signalingNaN:
		form = FormSNaN
	default:
		exponent = int32(c.exp)
	}

	hi, lo := c.coeff.Words()
	i := integer.NewWords(hi, lo, c.neg)

	return form, c.neg, append(buf[:0], i.Value...), exponent
}

// compose builds exact components. Nothing is rounded: a coefficient or
// exponent the format cannot hold is an error.
func compose[T integer.Uint[T]](e engine[T], form byte, negative bool, coefficient []byte, exponent int32) (c components[T], err error) {
	if len(coefficient) == 0 {
		coefficient = []byte{0}
	}

	hi, lo, err := integer.Int{Value: coefficient}.Words()
	if err != nil {
		return c, Error.Wrap(err)
	}

	digits := integer.DigitsU128(num.U128FromRaw(hi, lo))
	coeff := e.num(0).FromWords(hi, lo)
	p := e.f.precision

	switch form {
	case FormFinite:
		if digits > p {
			return c, Error.New("%s coefficient has %d digits", e.f.name, digits)
		}

		exp := int(exponent)
		if exp < -e.f.bias || exp > e.f.maxBiased-e.f.bias {
			return c, Error.New("%s exponent out of range: %d", e.f.name, exp)
		}

		return components[T]{kind: finite, neg: negative, exp: exp, coeff: coeff}, nil
	case FormInfinite:
		return e.inf(negative), nil
	case FormNaN, FormSNaN:
		if digits > p-1 {
			return c, Error.New("%s payload has %d digits", e.f.name, digits)
		}

		c = components[T]{kind: quietNaN, neg: negative, coeff: coeff}
		if form == FormSNaN {
			c.kind = signalingNaN
		}

		return c, nil
	}

	return c, Error.New("unknown form: %d", form)
}

// Decompose returns the parts of x. The coefficient is a big-endian binary
// magnitude; for NaN it is the payload. buf is reused when it has room.
func (x Decimal32) Decompose(buf []byte) (form byte, negative bool, coefficient []byte, exponent int32) {
	return decompose(x.unpack(), buf)
}

// Compose sets x exactly from parts.
func (x *Decimal32) Compose(form byte, negative bool, coefficient []byte, exponent int32) error {
	c, err := compose(eng32, form, negative, coefficient, exponent)
	if err != nil {
		return err
	}

	*x = pack32(c)

	return nil
}

// Decompose returns the parts of x. The coefficient is a big-endian binary
// magnitude; for NaN it is the payload. buf is reused when it has room.
func (x Decimal64) Decompose(buf []byte) (form byte, negative bool, coefficient []byte, exponent int32) {
	return decompose(x.unpack(), buf)
}

// Compose sets x exactly from parts.
func (x *Decimal64) Compose(form byte, negative bool, coefficient []byte, exponent int32) error {
	c, err := compose(eng64, form, negative, coefficient, exponent)
	if err != nil {
		return err
	}

	*x = pack64(c)

	return nil
}

// Decompose returns the parts of x. The coefficient is a big-endian binary
// magnitude; for NaN it is the payload. buf is reused when it has room.
func (x Decimal128) Decompose(buf []byte) (form byte, negative bool, coefficient []byte, exponent int32) {
	return decompose(x.unpack(), buf)
}

// Compose sets x exactly from parts.
func (x *Decimal128) Compose(form byte, negative bool, coefficient []byte, exponent int32) error {
	c, err := compose(eng128, form, negative, coefficient, exponent)
	if err != nil {
		return err
	}

	*x = pack128(c)

	return nil
}
