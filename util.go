package decimal

func max(x, y int) int {
	if x > y {
		return x
	}
	return y
}

// floorDiv returns the quotient of a/b rounded toward negative infinity.
// b must be positive.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
