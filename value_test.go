package jvalue

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		text string
		kind Kind
		raw  string
	}{
		{``, KindNull, `null`},
		{`   `, KindNull, `null`},
		{`null`, KindNull, `null`},
		{` true`, KindBoolean, `true`},
		{"false\n", KindBoolean, `false`},
		{`-1.5e3`, KindNumber, `-1.5e3`},
		{`"hi"`, KindString, `"hi"`},
		{"\t[1, 2]\r\n", KindArray, `[1, 2]`},
		{`{"a": 1} `, KindObject, `{"a": 1}`},
		{"[1, \"x\" ] \n ", KindArray, `[1, "x" ]`},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			v, err := Parse(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, v.Kind())
			assert.Equal(t, tt.raw, v.Raw())
		})
	}
}

func TestParseFaults(t *testing.T) {
	_, err := Parse(`[1, "x" ]`)
	require.NoError(t, err)

	_, err = Parse(`[1, 2`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrArrayNotClosed))

	var syntaxErr *SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	assert.Equal(t, 0, syntaxErr.Offset)
	assert.Equal(t, 5, syntaxErr.Length)

	for text, want := range map[string]error{
		`{"a":1`: ErrObjectNotClosed,
		`"abc`:   ErrStringNotClosed,
		`tru`:    ErrIllegalBoolean,
		`nul`:    ErrIllegalNull,
		`x`:      ErrIllegalNumber,
		`1 2`:    ErrIllegalNumber,
	} {
		_, err := Parse(text)
		assert.ErrorIs(t, err, want, text)
	}

	assert.Panics(t, func() { MustParse(`[`) })
}

func TestZeroValue(t *testing.T) {
	var v Value
	assert.Equal(t, KindNull, v.Kind())
	assert.True(t, v.IsNull())
	assert.Equal(t, "null", v.Raw())
	assert.Equal(t, "null", v.String())
	assert.True(t, v.Equal(Null))
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, `true`, FromBool(true).Raw())
	assert.Equal(t, `false`, FromBool(false).Raw())
	assert.Equal(t, `-42`, FromInt(-42).Raw())
	assert.Equal(t, `9223372036854775807`, FromInt64(math.MaxInt64).Raw())
	assert.Equal(t, `18446744073709551615`, FromUint64(math.MaxUint64).Raw())
	assert.Equal(t, `0.5`, FromFloat64(0.5).Raw())
	assert.Equal(t, `1e+21`, FromFloat64(1e21).Raw())
	assert.Equal(t, `1e-7`, FromFloat64(1e-7).Raw())
	assert.Equal(t, KindNull, FromFloat64(math.NaN()).Kind())
	assert.Equal(t, KindNull, FromFloat64(math.Inf(-1)).Kind())

	s := FromString("a\"b\\c\n\x01")
	assert.Equal(t, KindString, s.Kind())
	assert.Equal(t, `"a\"b\\c\n\u0001"`, s.Raw())
	assert.Equal(t, "a\"b\\c\n\x01", s.ToString(""))

	assert.Equal(t, KindArray, EmptyArray.Kind())
	assert.Equal(t, KindObject, EmptyObject.Kind())
	assert.Equal(t, "", EmptyString.ToString("x"))
}

func TestSource(t *testing.T) {
	text := `{"a": [1, 2]}`
	v := MustParse(text).Get("a")
	src, off, n := v.Source()
	assert.Equal(t, text, src)
	assert.Equal(t, 6, off)
	assert.Equal(t, 6, n)
	assert.Equal(t, off, v.Offset())
	assert.Equal(t, n, v.Len())
}

func TestIsInteger(t *testing.T) {
	assert.True(t, MustParse(`12`).IsInteger())
	assert.False(t, MustParse(`1.2`).IsInteger())
	assert.False(t, MustParse(`"12"`).IsInteger())
}
