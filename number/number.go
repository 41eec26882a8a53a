// Package number parses JSON number tokens without allocating. Every parser
// takes the value to return when the token is malformed or out of range, so
// a conversion never fails and never wraps.
package number

import "math"

// Int64 parses an optionally signed run of decimal digits.
func Int64(s string) (int64, bool) {
	return parseInt(s, 64)
}

// ParseInt64 returns def when s is not an integer or does not fit in 64 bits.
func ParseInt64(s string, def int64) int64 {
	if n, ok := parseInt(s, 64); ok {
		return n
	}
	return def
}

// ParseInt32 returns def when s is not an integer or does not fit in 32 bits.
func ParseInt32(s string, def int32) int32 {
	if n, ok := parseInt(s, 32); ok {
		return int32(n)
	}
	return def
}

func parseInt(s string, bits uint) (int64, bool) {
	if len(s) == 0 {
		return 0, false
	}
	i := 0
	neg := false
	switch s[0] {
	case '-':
		neg = true
		i++
	case '+':
		i++
	}
	if i == len(s) {
		return 0, false
	}

	limit := uint64(1)<<(bits-1) - 1
	if neg {
		limit++
	}
	var n uint64
	for ; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		d := uint64(c - '0')
		if n > (limit-d)/10 {
			return 0, false
		}
		n = n*10 + d
	}
	if neg {
		return -int64(n), true
	}
	return int64(n), true
}

// IsInteger reports whether s has no fraction or exponent part.
func IsInteger(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '.', 'e', 'E':
			return false
		}
	}
	return true
}

// Valid reports whether s follows the strict JSON number grammar: an
// optional minus, no leading zeros, no plus sign on the integer part.
func Valid(s string) bool {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	switch {
	case i == len(s):
		return false
	case s[i] == '0':
		i++
	case isDigit(s[i]):
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	default:
		return false
	}
	if i < len(s) && s[i] == '.' {
		i++
		if i == len(s) || !isDigit(s[i]) {
			return false
		}
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		if i == len(s) || !isDigit(s[i]) {
			return false
		}
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	return i == len(s)
}

// Float64 parses a number token made of an optional sign, digits, an optional
// fraction and an optional exponent.
func Float64(s string) (float64, bool) {
	if len(s) == 0 {
		return 0, false
	}
	i := 0
	neg := false
	switch s[0] {
	case '-':
		neg = true
		i++
	case '+':
		i++
	}
	if i >= len(s) || !isDigit(s[i]) {
		return 0, false
	}

	var mantissa uint64
	exponent := 0
	for ; i < len(s) && isDigit(s[i]); i++ {
		if mantissa < maxMantissa {
			mantissa = mantissa*10 + uint64(s[i]-'0')
		} else {
			exponent++
		}
	}

	if i < len(s) && s[i] == '.' {
		i++
		if i >= len(s) || !isDigit(s[i]) {
			return 0, false
		}
		for ; i < len(s) && isDigit(s[i]); i++ {
			if mantissa < maxMantissa {
				mantissa = mantissa*10 + uint64(s[i]-'0')
				exponent--
			}
		}
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		expNeg := false
		if i < len(s) && (s[i] == '-' || s[i] == '+') {
			expNeg = s[i] == '-'
			i++
		}
		if i >= len(s) || !isDigit(s[i]) {
			return 0, false
		}
		e := 0
		for ; i < len(s) && isDigit(s[i]); i++ {
			if e < maxExponent {
				e = e*10 + int(s[i]-'0')
			}
		}
		if expNeg {
			e = -e
		}
		exponent += e
	}

	if i != len(s) {
		return 0, false
	}

	f := float64(mantissa)
	switch {
	case mantissa == 0:
	case exponent < minExponent:
		f = 0
	case exponent < 0:
		// divide by exact powers so the scale never underflows before f does
		for exponent < -maxPow10 {
			f /= pow10[maxPow10]
			exponent += maxPow10
		}
		f /= pow10[-exponent]
	case exponent > 0:
		f *= Pow10(exponent)
	}
	if neg {
		f = -f
	}
	return f, true
}

// ParseFloat64 returns def when s is not a number.
func ParseFloat64(s string, def float64) float64 {
	if f, ok := Float64(s); ok {
		return f
	}
	return def
}

// ParseFloat32 returns def when s is not a number.
func ParseFloat32(s string, def float32) float32 {
	if f, ok := Float64(s); ok {
		return float32(f)
	}
	return def
}

// Pow10 returns 10**d, exact for 0 <= d <= 22.
func Pow10(d int) float64 {
	if d >= 0 && d < len(pow10) {
		return pow10[d]
	}
	return math.Pow10(d)
}

const (
	// digits beyond this are dropped into the exponent
	maxMantissa = (math.MaxUint64 - 9) / 10
	maxExponent = 100000
	// the mantissa has at most 20 digits, so below this the value is under
	// half the smallest subnormal
	minExponent = -(324 + 20)
	maxPow10    = len(pow10) - 1
)

var pow10 = [...]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
	1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19, 1e20,
	1e21, 1e22,
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
