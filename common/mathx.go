// Package common holds the small helpers shared by the page bundle and the
// offline tools: console logging, interpolation and a seeded RNG.
package common

import (
	"math"
	"strconv"
	"strings"
)

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits v to [lo, hi]. NaN becomes lo.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RoundJS rounds the way JavaScript's Math.round does: halves go toward +Inf,
// so -2.5 rounds to -2 where math.Round would give -3. Comparing against the
// floor instead of adding 0.5 keeps 0.49999999999999994 at 0.
func RoundJS(v float64) float64 {
	r := math.Floor(v)
	if v-r >= 0.5 {
		r++
	}
	return r
}

// FormatNumber renders v the way a JavaScript number is stringified when it
// is written into a style property: the shortest decimal that round-trips,
// switching to exponent form below 1e-6 and from 1e21 up ("1e-7", "1e+21").
func FormatNumber(v float64) string {
	if v == 0 {
		// avoid "-0"
		return "0"
	}
	if abs := math.Abs(v); abs < 1e-6 || abs >= 1e21 {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		// Go pads the exponent to two digits, JavaScript does not
		s = strings.Replace(s, "e-0", "e-", 1)
		return strings.Replace(s, "e+0", "e+", 1)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
