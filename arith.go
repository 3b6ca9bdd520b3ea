package decimal

// Add returns the sum x+y rounded to MaxLimbs limbs using mode.
//
// The sum is formed over the union of the limb-exponent ranges spanned by
// both operands, capped to MaxLimbs plus two guard positions. When one
// operand lies entirely below that window it cannot affect the rounded
// result and the other operand is returned directly.
func Add(x, y Decimal, mode RoundingMode) Decimal {
	return addSub(x, y, false, mode)
}

// Sub returns the difference x-y rounded to MaxLimbs limbs using mode.
func Sub(x, y Decimal, mode RoundingMode) Decimal {
	return addSub(x, y, true, mode)
}

// Mul returns the product x*y rounded to MaxLimbs limbs using mode.
func Mul(x, y Decimal, mode RoundingMode) Decimal {
	if x.IsZero() || y.IsZero() {
		return Decimal{}
	}
	// top carries one guard position above x.exp+y.exp for the product carry
	top := x.exp + y.exp + 1
	lo := (x.exp - int32(len(x.limbs)) + 1) + (y.exp - int32(len(y.limbs)) + 1)
	if top-lo+1 > MaxLimbs+guardLimbs {
		lo = top - (MaxLimbs + guardLimbs) + 1
	}
	buf := make(limbs, top-lo+1)
	for i, a := range x.limbs {
		for j, b := range y.limbs {
			e := (x.exp - int32(i)) + (y.exp - int32(j))
			if e+1 < lo {
				// both contributions fall below the guard window
				continue
			}
			p := a * b
			hi, lop := p/_DB, p%_DB
			k := int(top - e)
			start := k - 1
			buf[k-1] += hi
			if e >= lo {
				buf[k] += lop
				start = k
			}
			// keep intermediate sums within one radix of their slot
			buf, top = fixCarry(buf, top, start)
		}
	}
	return norm(buf, top, mode)
}

// Add returns x+y with the default ToNearestEven rounding.
func (x Decimal) Add(y Decimal) Decimal {
	return Add(x, y, ToNearestEven)
}

// Sub returns x-y with the default ToNearestEven rounding.
func (x Decimal) Sub(y Decimal) Decimal {
	return Sub(x, y, ToNearestEven)
}

// Mul returns x*y with the default ToNearestEven rounding.
func (x Decimal) Mul(y Decimal) Decimal {
	return Mul(x, y, ToNearestEven)
}

func addSub(x, y Decimal, negY bool, mode RoundingMode) Decimal {
	if y.IsZero() {
		return x
	}
	if x.IsZero() {
		if negY {
			return y.Neg()
		}
		return y
	}
	hi := x.exp
	if y.exp > hi {
		hi = y.exp
	}
	loX := x.exp - int32(len(x.limbs)) + 1
	loY := y.exp - int32(len(y.limbs)) + 1
	lo := loX
	if loY < lo {
		lo = loY
	}
	if hi-lo+1 > MaxLimbs+guardLimbs {
		lo = hi - (MaxLimbs + guardLimbs) + 1
	}
	// an operand entirely below the window leaves the other unchanged
	if x.exp < lo {
		if negY {
			return y.Neg()
		}
		return y
	}
	if y.exp < lo {
		return x
	}
	buf := make(limbs, hi-lo+1)
	for i := range buf {
		e := hi - int32(i)
		w := y.limbs.at(y.exp, e)
		if negY {
			w = -w
		}
		buf[i] = x.limbs.at(x.exp, e) + w
	}
	return norm(buf, hi, mode)
}
