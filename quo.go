package decimal

// maxQuoIter bounds the Goldschmidt loop. The float64 seed is good for about
// 15 digits and every iteration doubles that, so MaxDigits is reached within
// four iterations; the bound only guards against a non-converging seed.
const maxQuoIter = 16

// Quo returns the quotient x/y rounded to MaxLimbs limbs using mode. It
// fails with ErrDivisionByZero if y is zero.
//
// The quotient is computed by Goldschmidt iteration, using only the
// multiply, subtract and rounding engines. Exponents are factored out first
// and the iteration runs on the exponent-free significands N and D: both are
// repeatedly multiplied by a correction factor f that drives D toward one,
// doubling the number of correct digits per step. The loop ends when D
// canonicalizes to exactly one, or when f does while D has not — at that
// point rounding has exhausted the available precision and N is as close to
// the quotient as the limb cap permits.
func Quo(x, y Decimal, mode RoundingMode) (Decimal, error) {
	if y.IsZero() {
		return Decimal{}, ErrDivisionByZero.New("division of %s by zero", x)
	}
	if x.IsZero() {
		return Decimal{}, nil
	}
	neg := (x.Sign() < 0) != (y.Sign() < 0)
	n := Decimal{limbs: x.limbs.abs()}
	d := Decimal{limbs: y.limbs.abs()}
	shift := x.exp - y.exp

	f := seedRcp(d)
	for i := 0; i < maxQuoIter; i++ {
		n = Mul(n, f, mode)
		d = Mul(d, f, mode)
		if d.Equal(One) {
			break
		}
		f = Sub(Two, d, mode)
		if f.Equal(One) {
			break
		}
	}
	n = Decimal{limbs: n.limbs, exp: n.exp + shift}
	if neg {
		n = n.Neg()
	}
	return n, nil
}

// Quo returns x/y with the default ToNearestEven rounding.
func (x Decimal) Quo(y Decimal) (Decimal, error) {
	return Quo(x, y, ToNearestEven)
}

// Rcp returns the reciprocal 1/x. It fails with ErrDivisionByZero if x is
// zero.
func (x Decimal) Rcp() (Decimal, error) {
	return Quo(One, x, ToNearestEven)
}

// seedRcp estimates 1/d from d's leading limbs with a native float64
// division, giving the Goldschmidt loop roughly 15 correct digits to start
// from. d must be positive with a zero exponent.
func seedRcp(d Decimal) Decimal {
	approx := float64(d.limbs[0])
	if len(d.limbs) > 1 {
		approx += float64(d.limbs[1]) / _DB
	}
	if len(d.limbs) > 2 {
		approx += float64(d.limbs[2]) / (_DB * _DB)
	}
	f, _ := FromFloat64(1 / approx)
	return f
}
