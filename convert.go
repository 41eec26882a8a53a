package jvalue

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cockroachdb/apd/v2"
	"github.com/oarkflow/date"

	"github.com/oarkflow/jvalue/number"
)

// numeric returns the text a numeric conversion parses: the literal of a
// number, 1 or 0 for a boolean, and the unescaped contents of a string.
func (v Value) numeric() (string, bool) {
	switch v.Kind() {
	case KindNumber:
		return v.numberText(), true
	case KindBoolean:
		if v.isTrue() {
			return "1", true
		}
		return "0", true
	case KindString:
		return v.unquote(), true
	}
	return "", false
}

func (v Value) unquote() string {
	s := v.interior()
	if strings.IndexByte(s, '\\') < 0 {
		return s
	}
	return string(appendUnescaped(make([]byte, 0, len(s)), s))
}

func appendUnescaped(dst []byte, s string) []byte {
	for i := 0; i < len(s); {
		var r rune
		r, i = decodeRune(s, i)
		dst = utf8.AppendRune(dst, r)
	}
	return dst
}

// integer converts to an integer of the given width. Tokens with a fraction
// or exponent are truncated toward zero; anything out of range fails.
func (v Value) integer(bits uint) (int64, bool) {
	s, ok := v.numeric()
	if !ok {
		return 0, false
	}
	if number.IsInteger(s) {
		n, ok := number.Int64(s)
		if !ok {
			return 0, false
		}
		if bits < 64 && (n < -1<<(bits-1) || n > 1<<(bits-1)-1) {
			return 0, false
		}
		return n, true
	}
	f, ok := number.Float64(s)
	if !ok || math.IsNaN(f) {
		return 0, false
	}
	f = math.Trunc(f)
	if lim := math.Ldexp(1, int(bits-1)); f < -lim || f >= lim {
		return 0, false
	}
	return int64(f), true
}

// ToBool returns the truth of v: a number is true when non-zero, a string
// when non-empty and every container is true. Null yields def.
func (v Value) ToBool(def bool) bool {
	switch v.Kind() {
	case KindBoolean:
		return v.isTrue()
	case KindNumber:
		return number.ParseFloat64(v.numberText(), 0) != 0
	case KindString:
		return v.n != 2
	case KindArray, KindObject:
		return true
	}
	return def
}

func (v Value) ToInt(def int) int {
	if n, ok := v.integer(strconvIntSize); ok {
		return int(n)
	}
	return def
}

func (v Value) ToInt32(def int32) int32 {
	if n, ok := v.integer(32); ok {
		return int32(n)
	}
	return def
}

func (v Value) ToInt64(def int64) int64 {
	if n, ok := v.integer(64); ok {
		return n
	}
	return def
}

func (v Value) ToUint8(def uint8) uint8 {
	if n, ok := v.integer(64); ok && n >= 0 && n <= math.MaxUint8 {
		return uint8(n)
	}
	return def
}

func (v Value) ToFloat64(def float64) float64 {
	if s, ok := v.numeric(); ok {
		return number.ParseFloat64(s, def)
	}
	return def
}

func (v Value) ToFloat32(def float32) float32 {
	if s, ok := v.numeric(); ok {
		return number.ParseFloat32(s, def)
	}
	return def
}

// ToString returns the decoded contents of a string, the literal of a
// boolean or the token of a number. Other kinds yield def.
func (v Value) ToString(def string) string {
	switch v.Kind() {
	case KindString:
		return v.unquote()
	case KindBoolean, KindNumber:
		return v.Raw()
	}
	return def
}

// ToDecimal returns the exact decimal value of a number or numeric string.
func (v Value) ToDecimal(def *apd.Decimal) *apd.Decimal {
	s, ok := v.numeric()
	if !ok {
		return def
	}
	d, _, err := apd.NewFromString(s)
	if err != nil || d.Form != apd.Finite {
		return def
	}
	return d
}

// ToTime reads a string in any layout the date parser recognizes, or a
// number as seconds since the Unix epoch.
func (v Value) ToTime(def time.Time) time.Time {
	switch v.Kind() {
	case KindString:
		t, err := date.Parse(v.unquote())
		if err != nil {
			return def
		}
		return t
	case KindNumber:
		f, ok := number.Float64(v.numberText())
		if !ok || math.Abs(f) > maxUnixSeconds {
			return def
		}
		sec, frac := math.Modf(f)
		return time.Unix(int64(sec), int64(math.Round(frac*1e9))).UTC()
	}
	return def
}

const (
	strconvIntSize = 32 << (^uint(0) >> 63)
	maxUnixSeconds = 1 << 40
)
