// Package format provides the human-readable number, size and duration
// formatting used by reports.
package format

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// fixedPrec is wide enough to hold a float64 mantissa times 10^20 exactly.
const fixedPrec = 256

// Fixed formats x with exactly digits decimal places.
//
// Rounding works on the exact binary value of x and breaks exact ties away
// from zero, so Fixed(0.125, 2) is "0.13" and Fixed(1.005, 2) is "1.00"
// (1.005 is stored slightly below 1.005). strconv rounds ties to even and
// would give "0.12". Negative values keep their sign even when they round
// to zero. digits is clamped to [0, 20].
func Fixed(x float64, digits int) string {
	if digits < 0 {
		digits = 0
	}
	if digits > 20 {
		digits = 20
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'f', digits, 64)
	}

	neg := x < 0
	if neg {
		x = -x
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	scaled := new(big.Float).SetPrec(fixedPrec).SetFloat64(x)
	scaled.Mul(scaled, new(big.Float).SetPrec(fixedPrec).SetInt(scale))

	n, _ := scaled.Int(nil)
	frac := new(big.Float).SetPrec(fixedPrec).Sub(scaled, new(big.Float).SetPrec(fixedPrec).SetInt(n))
	if frac.Cmp(big.NewFloat(0.5)) >= 0 {
		n.Add(n, big.NewInt(1))
	}

	s := n.String()
	if digits > 0 {
		if len(s) <= digits {
			s = strings.Repeat("0", digits-len(s)+1) + s
		}
		s = s[:len(s)-digits] + "." + s[len(s)-digits:]
	}
	if neg {
		s = "-" + s
	}
	return s
}

// Percent returns part/whole*100 formatted with two decimals.
// A zero whole yields "0.00".
func Percent(part, whole int) string {
	if whole == 0 {
		return Fixed(0, 2)
	}
	return Fixed(float64(part)/float64(whole)*100, 2)
}
