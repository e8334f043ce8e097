// Package interchange moves decimal values across byte boundaries.
//
// Two fixed width encodings are supported. BID is the native layout of the
// decimal package. DPD (densely packed decimal) stores the coefficient as
// declets, three decimal digits in ten bits:
//
//  | 0 | 1 ... 5     | 6 ...            | ...                 |
//  |---|-------------|------------------|---------------------|
//  | s | combination | exp continuation | declet | ... | declet |
//  |---|-------------|------------------|---------------------|
//
// The combination field holds the top two exponent bits and the leading
// digit:
//
//  | 0 | 1 | 2 | 3 | 4 |
//  |-------------------|
//  | e . e | d . d . d | Leading digit 0 to 7.
//  | 1 . 1 | e . e | d | Leading digit 8 or 9.
//  | 1 . 1 . 1 . 1 . 0 | Infinity
//  | 1 . 1 . 1 . 1 . 1 | NaN, signaling when the next bit is set.
//  |-------------------|
//
// Stream
//
// An Encoder writes a sequence of records and a Decoder reads them back.
// Each record starts with a one byte tag naming the format and encoding:
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || Tag   |
//  |-------------------------------||-------|
//  | 1 | 0 | 0 . 0 | 0 . 0 | k . k || BID   | 4, 8 or 16 bytes follow.
//  | 1 | 0 | 0 . 1 | 0 . 0 | k . k || DPD   | 4, 8 or 16 bytes follow.
//  | 1 | 0 | 1 . 0 | 0 . 0 | k . k || Parts | Head byte, exponent, coefficient.
//  |-------------------------------||-------|
//
// Where kk is 00 for decimal32, 01 for decimal64 and 10 for decimal128. Any
// other tag byte is an error.
//
// Parts records carry the exponent and the coefficient as sign-magnitude
// integers with a trailing sign bit (aka zigzag), each preceded by a one
// byte length, and reproduce the exact cohort member.
//
package interchange

import "github.com/zeebo/errs"

// Error is the error class for this package.
var Error = errs.Class("interchange")
