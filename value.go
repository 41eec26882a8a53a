// Package jvalue reads JSON lazily and writes it incrementally.
//
// A Value is a view over a span of the original text. Parsing does not build
// a tree: navigation re-scans the relevant span on demand, so a Value costs
// three integers and a string header no matter how large the document is.
// The text is never copied, which is safe because Go strings are immutable.
//
// Structural faults (an unclosed string or container, a misspelled literal,
// a missing property name) are reported as *SyntaxError. Conversions never
// fail: when a value has the wrong kind or does not fit, the caller's
// default is returned.
package jvalue

import (
	"strconv"

	"github.com/oarkflow/jvalue/number"
	"github.com/oarkflow/jvalue/scanner"
)

type Kind = scanner.Kind

const (
	KindInvalid = scanner.Invalid
	KindNull    = scanner.Null
	KindBoolean = scanner.Boolean
	KindNumber  = scanner.Number
	KindString  = scanner.String
	KindArray   = scanner.Array
	KindObject  = scanner.Object
)

type SyntaxError = scanner.SyntaxError

var (
	ErrStringNotClosed      = scanner.ErrStringNotClosed
	ErrArrayNotClosed       = scanner.ErrArrayNotClosed
	ErrObjectNotClosed      = scanner.ErrObjectNotClosed
	ErrIllegalBoolean       = scanner.ErrIllegalBoolean
	ErrIllegalNull          = scanner.ErrIllegalNull
	ErrIllegalNumber        = scanner.ErrIllegalNumber
	ErrExpectedPropertyName = scanner.ErrExpectedPropertyName
	ErrExpectedColon        = scanner.ErrExpectedColon
	ErrExpectedComma        = scanner.ErrExpectedComma
	ErrExpectedValue        = scanner.ErrExpectedValue
	ErrIllegalEscape        = scanner.ErrIllegalEscape
	ErrControlCharacter     = scanner.ErrControlCharacter
)

var (
	Null        = literal(scanner.NullLiteral, KindNull)
	True        = literal(scanner.TrueLiteral, KindBoolean)
	False       = literal(scanner.FalseLiteral, KindBoolean)
	EmptyString = literal(`""`, KindString)
	EmptyArray  = literal(`[]`, KindArray)
	EmptyObject = literal(`{}`, KindObject)
)

// Value is an immutable view of one JSON token inside a backing text. The
// zero Value is JSON null.
type Value struct {
	text  string
	start int
	n     int
	kind  Kind
}

func literal(text string, kind Kind) Value {
	return Value{text: text, n: len(text), kind: kind}
}

// Parse returns a view of the single JSON value in text, trimmed of the
// surrounding whitespace. Only the outer token is classified here; nested
// content is checked when it is walked. Empty text is JSON null.
func Parse(text string) (Value, error) {
	start := scanner.SkipWhitespace(text, 0, len(text))
	end := len(text)
	for end > start {
		i := scanner.BackwardSkipWhitespace(text, end-1)
		if i >= start && text[i] == ' ' {
			end = i
			continue
		}
		end = i + 1
		break
	}
	if end < start {
		end = start
	}
	return newValue(text, start, end-start)
}

// MustParse is like Parse but panics on a structural fault.
func MustParse(text string) Value {
	v, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return v
}

func newValue(text string, start, n int) (Value, error) {
	kind, err := scanner.Classify(text, start, n)
	if err != nil {
		return Value{}, err
	}
	if n < 0 {
		n = 0
	}
	return Value{text: text, start: start, n: n, kind: kind}, nil
}

func FromBool(b bool) Value {
	if b {
		return True
	}
	return False
}

func FromInt(i int) Value {
	return FromInt64(int64(i))
}

func FromInt64(i int64) Value {
	return literal(strconv.FormatInt(i, 10), KindNumber)
}

func FromUint64(u uint64) Value {
	return literal(strconv.FormatUint(u, 10), KindNumber)
}

// FromFloat64 returns Null for NaN and the infinities, which JSON cannot
// represent.
func FromFloat64(f float64) Value {
	b, ok := appendFloat(nil, f, 64)
	if !ok {
		return Null
	}
	return literal(string(b), KindNumber)
}

// FromString returns a String value holding s escaped and quoted.
func FromString(s string) Value {
	return literal(string(appendQuoted(make([]byte, 0, len(s)+2), s)), KindString)
}

func (v Value) Kind() Kind {
	if v.n <= 0 {
		return KindNull
	}
	return v.kind
}

func (v Value) IsNull() bool {
	return v.Kind() == KindNull
}

// Raw returns the token exactly as it appears in the backing text.
func (v Value) Raw() string {
	if v.n <= 0 {
		return scanner.NullLiteral
	}
	return v.text[v.start : v.start+v.n]
}

func (v Value) String() string {
	return v.Raw()
}

// Source returns the backing text with the offset and length of the span.
func (v Value) Source() (text string, offset, length int) {
	return v.text, v.start, v.n
}

func (v Value) Offset() int {
	return v.start
}

func (v Value) Len() int {
	return v.n
}

func (v Value) end() int {
	return v.start + v.n
}

func (v Value) isTrue() bool {
	return v.text[v.start] == 't'
}

// interior is the span between a String's quotes.
func (v Value) interior() string {
	return v.text[v.start+1 : v.end()-1]
}

func (v Value) numberText() string {
	return v.text[v.start:v.end()]
}

// IsInteger reports whether v is a Number without fraction or exponent.
func (v Value) IsInteger() bool {
	return v.Kind() == KindNumber && number.IsInteger(v.numberText())
}
