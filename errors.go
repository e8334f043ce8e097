package decimal

import "github.com/zeebo/errs"

var (
	// Error is the error class for this package.
	Error = errs.Class("decimal")

	// ErrInvalid marks a conversion from NaN.
	ErrInvalid = errs.Class("decimal: invalid operation")

	// ErrRange marks a conversion whose source is infinite or does not
	// fit the target.
	ErrRange = errs.Class("decimal: out of range")
)
