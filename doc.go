// Package decimal implements arbitrary-precision decimal floating-point
// arithmetic on immutable values.
//
// Numbers are represented as a sequence of base 10**9 limbs together with a
// radix exponent, giving up to MaxDigits significant decimal digits. All
// observable values are canonical, so equal values have equal
// representations and comparison never needs to normalize.
//
// The usual way in is Parse or one of the From conversions:
//
//	x := decimal.MustParse("5.4321")
//	y, _ := decimal.FromFloat64(0.25)
//	z := x.Add(y)
//
// Methods round to nearest, ties to even. When another policy is needed the
// package-level functions take an explicit RoundingMode, and the context
// subpackage bundles a mode with error latching for chained computations.
package decimal
