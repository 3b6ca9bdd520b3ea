package decimal

import "github.com/zeebo/errs"

// Error classes reported by this package. Membership is tested with the
// class's Has method, e.g. decimal.ErrDivisionByZero.Has(err).
var (
	// ErrInvalidFormat reports text input rejected by the parsing grammar.
	ErrInvalidFormat = errs.Class("invalid format")

	// ErrDivisionByZero reports a zero divisor passed to Quo or Rcp.
	ErrDivisionByZero = errs.Class("division by zero")

	// ErrOverflow reports a conversion to a native numeric type whose range
	// cannot hold the value's magnitude.
	ErrOverflow = errs.Class("overflow")
)
