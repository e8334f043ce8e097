// Package decimal provides IEEE 754-2008 decimal floating point numbers in
// the binary integer decimal (BID) encoding.
//
// The equation for a finite decimal number is:
//
//  number = (-1)^sign * coefficient * 10^exponent
//
// Where coefficient is an unsigned integer of at most P digits. For example:
//
//  1.23 = 123 * 10^-2
//
// Three formats are provided:
//
//  | Type       | Bits | P  | Exponent        |
//  |------------|------|----|-----------------|
//  | Decimal32  | 32   | 7  | -101 to 90      |
//  | Decimal64  | 64   | 16 | -398 to 369     |
//  | Decimal128 | 128  | 34 | -6176 to 6111   |
//  |------------|------|----|-----------------|
//
// A number has several representations (its cohort): 1.0 is both 10 * 10^-1
// and 1 * 10^0. Comparisons treat members of a cohort as equal, arithmetic
// picks one of them.
//
// Encoding
//
// The bits after the sign form the combination field. When the two bits
// following the sign are not both set the exponent follows directly and the
// remaining bits hold the coefficient. Decimal32 shown:
//
//  | 0 | 1 ... 8 | 9 ... 31    |
//  |---|---------|-------------|
//  | s | exp     | coefficient | Direct layout, coefficient < 2^23.
//  |---|---------|-------------|
//
// When they are both set the exponent is shifted by two bits and the
// coefficient gains an implied 100 prefix:
//
//  | 0 | 1 . 2 | 3 ... 10 | 11 ... 31   |
//  |---|-------|----------|-------------|
//  | s | 1 . 1 | exp      | coefficient | Large layout, coefficient = 0b100 << 21 | bits.
//  |---|-------|----------|-------------|
//
// The remaining combinations are reserved for special values:
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 |
//  |---|-------------------|---|
//  | s | 1 . 1 . 1 . 1 . 0 |   | Infinity
//  | s | 1 . 1 . 1 . 1 . 1 | 0 | Quiet NaN
//  | s | 1 . 1 . 1 . 1 . 1 | 1 | Signaling NaN
//  |---|-------------------|---|
//
// A coefficient above 10^P - 1 is non-canonical and reads as zero.
//
// Rounding
//
// Every operation computes an exact intermediate result and rounds it once.
// The methods of Decimal32, Decimal64 and Decimal128 use the process wide
// mode set with SetRoundingMode. A Context carries a mode explicitly:
//
//  ctx := decimal.Context{Mode: decimal.TowardZero}
//  x := ctx.NewDecimal32(12345675, 0) // 1234567e1
//
// Errors
//
// Arithmetic never fails. Invalid operations produce NaN, overflow produces
// Infinity and underflow produces subnormal numbers or zero. Only the integer
// conversions (Int64, Int32 and Uint64) return errors, of class ErrInvalid for
// NaN and ErrRange for values that do not fit.
//
package decimal
