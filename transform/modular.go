package transform

// ModularInverse returns x in [0, m) with (a*x) mod m == 1, using the
// extended Euclidean algorithm.
//
// a and m must be coprime. When they are not, the result is whatever the
// algorithm's Bezout coefficient happens to be and is not an inverse;
// callers that need to know can check IsInvertible first.
func ModularInverse(a, m int) int {
	oldR, r := a, m
	oldS, s := 1, 0

	for r != 0 {
		q := floorDiv(oldR, r)
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
	}

	if oldS < 0 {
		return oldS + m
	}
	return oldS
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
