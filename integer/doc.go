// Package integer provides the unsigned coefficient arithmetic used by the
// decimal formats.
//
// Each decimal format stores its significand as an unsigned binary integer
// and needs scratch space roughly twice as wide while computing. The Uint
// interface captures the operations the decimal engine uses so one generic
// implementation runs over every width:
//
//  | Type | Backing            | Safe digits | Used by                      |
//  |------|--------------------|-------------|------------------------------|
//  | U64  | uint64             | 19          | decimal32                    |
//  | U128 | go-num U128        | 38          | decimal64, decimal32 fma     |
//  | U256 | holiman uint256    | 77          | decimal128, decimal64 fma    |
//  | Big  | math/big           | unbounded   | decimal128 fma               |
//  |------|--------------------|-------------|------------------------------|
//
// Int is a sign-magnitude integer with a zig-zag binary form. It carries
// coefficients and exponents through the component interchange records.
package integer

import "github.com/zeebo/errs"

// Error is the error class for this package.
var Error = errs.Class("integer")
