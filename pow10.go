package decimal

import (
	"math/bits"
	"sync"
)

var pow10tab = [...]int64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
	10000000000, 100000000000, 1000000000000, 10000000000000, 100000000000000, 1000000000000000,
	10000000000000000, 100000000000000000, 1000000000000000000,
}

func pow10(n int) int64 {
	return pow10tab[n]
}

var pow2digitsTab = [...]uint{
	1, 1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4, 4, 4, 5, 5,
	5, 6, 6, 6, 7, 7, 7, 7, 8, 8, 8, 9, 9, 9, 10, 10,
	10, 10, 11, 11, 11, 12, 12, 12, 13, 13, 13, 13, 14, 14, 14, 15,
	15, 15, 16, 16, 16, 16, 17, 17, 17, 18, 18, 18, 19, 19, 19, 20, 20,
}

// decDigits returns n such that 10**(n-1) <= x < 10**n, i.e. the number of
// digits required to represent x. Returns 0 for x == 0. x must not be
// negative.
func decDigits(x int64) int {
	n := int(pow2digitsTab[bits.Len64(uint64(x))])
	if x < pow10tab[n-1] {
		n--
	}
	return n
}

// powTenCache memoizes PowTen results. Recomputing and overwriting a slot
// under contention is safe: the function is pure and its results immutable.
var powTenCache sync.Map // int32 -> Decimal

// PowTen returns 10**n as a Decimal. Results are cached process-wide.
func PowTen(n int32) Decimal {
	if v, ok := powTenCache.Load(n); ok {
		return v.(Decimal)
	}
	ls, exp := packDigits([]byte{'1'}, int(n), false)
	d := Decimal{limbs: ls, exp: exp}
	powTenCache.Store(n, d)
	return d
}
