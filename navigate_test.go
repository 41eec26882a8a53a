package jvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMember(t *testing.T) {
	v := MustParse(`{"a":1,"b":[1,2],"c\"d":"x","ab":true,"a":2}`)

	b, err := v.Member("b")
	require.NoError(t, err)
	assert.Equal(t, KindArray, b.Kind())

	var got []int
	it := b.Elements()
	for it.Next() {
		assert.Equal(t, KindNumber, it.Value().Kind())
		got = append(got, it.Value().ToInt(0))
	}
	require.NoError(t, it.Err())
	assert.Equal(t, []int{1, 2}, got)

	assert.Equal(t, 1, v.Get("a").ToInt(0), "first duplicate wins")
	assert.Equal(t, "x", v.Get(`c"d`).ToString(""))
	assert.True(t, v.Get("ab").ToBool(false))
	assert.True(t, v.Get("abc").IsNull(), "prefix of a key is not a match")
	assert.True(t, v.Has("ab"))
	assert.False(t, v.Has("zz"))

	missing, err := MustParse(`{}`).Member("missing")
	require.NoError(t, err)
	assert.Equal(t, KindNull, missing.Kind())

	notObject, err := MustParse(`[1]`).Member("a")
	require.NoError(t, err)
	assert.True(t, notObject.IsNull())
}

func TestMemberEscapedKey(t *testing.T) {
	v := MustParse(`{"café":1,"😀":2,"tab\there":3}`)
	assert.Equal(t, 1, v.Get("café").ToInt(0))
	assert.Equal(t, 2, v.Get("😀").ToInt(0))
	assert.Equal(t, 3, v.Get("tab\there").ToInt(0))
	assert.True(t, v.Get("caf").IsNull())
	assert.True(t, v.Get("café!").IsNull())
}

func TestMemberFault(t *testing.T) {
	v := MustParse(`{"a" 1}`)
	_, err := v.Member("a")
	assert.ErrorIs(t, err, ErrExpectedColon)
	assert.True(t, v.Get("a").IsNull())
}

func TestCount(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{`[]`, 0},
		{`[ ]`, 0},
		{`[1]`, 1},
		{`[ "a" ]`, 1},
		{`[1,2,3]`, 3},
		{`[[1,2],{"a":[3,4]},"x,y"]`, 3},
		{`{}`, 0},
		{`{"a":1,"b":{"c":2,"d":3}}`, 2},
		{`"not a container"`, 0},
		{`42`, 0},
	}
	for _, tt := range tests {
		n, err := MustParse(tt.text).Count()
		require.NoError(t, err, tt.text)
		assert.Equal(t, tt.want, n, tt.text)
	}

	_, err := MustParse(`[1,[2]`).Count()
	assert.Error(t, err)

	_, err = MustParse(`[1],[2]`).Count()
	assert.ErrorIs(t, err, ErrExpectedComma)
	assert.Equal(t, 0, MustParse(`[1],[2]`).Size())
}

func TestIndex(t *testing.T) {
	v := MustParse(`[1,2,3,4,5,6,7,8,9]`)
	assert.Equal(t, 1, v.At(0).ToInt(0))
	assert.Equal(t, 2, v.At(1).ToInt(0))
	assert.Equal(t, 9, v.At(-1).ToInt(0))
	assert.Equal(t, 8, v.At(-2).ToInt(0))
	assert.True(t, v.At(9).IsNull())
	assert.True(t, v.At(-10).IsNull())
	assert.True(t, MustParse(`{"a":1}`).At(0).IsNull())

	_, err := MustParse(`[1 2]`).Index(1)
	assert.ErrorIs(t, err, ErrExpectedComma)
}

func TestLookup(t *testing.T) {
	v := MustParse(`{"users":[{"name":"ann","tags":["a","b"]},{"name":"bob"}]}`)

	got, err := v.Lookup("users", "1", "name")
	require.NoError(t, err)
	assert.Equal(t, "bob", got.ToString(""))

	got, err = v.Lookup("users", "0", "tags", "-1")
	require.NoError(t, err)
	assert.Equal(t, "b", got.ToString(""))

	got, err = v.Lookup("users", "x")
	require.NoError(t, err)
	assert.True(t, got.IsNull())

	got, err = v.Lookup("users", "0", "name", "deeper")
	require.NoError(t, err)
	assert.True(t, got.IsNull())

	got, err = v.Lookup()
	require.NoError(t, err)
	assert.True(t, got.Equal(v))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, MustParse(`{"a":[1,2,{"b":null}],"c":"d\"e"}`).Validate())
	assert.NoError(t, MustParse(`  "plain" `).Validate())
	assert.NoError(t, MustParse(`["\"\\\/\b\f\n\r\t\u00e9\uD83D\uDE00", -0.5e-3, 0]`).Validate())

	tests := []struct {
		text string
		want error
	}{
		{`[1,]`, ErrExpectedValue},
		{`[,1]`, ErrExpectedValue},
		{`[1 2]`, ErrExpectedComma},
		{`{"a":1,}`, ErrExpectedValue},
		{`{a:1}`, ErrExpectedPropertyName},
		{`{"a"}`, ErrExpectedColon},
		{`[tru]`, ErrIllegalBoolean},
		{`[1,{"a":[1}]`, ErrObjectNotClosed},
		{`[1.2.3]`, ErrIllegalNumber},
		{`[-]`, ErrIllegalNumber},
		{`"a" "b"`, ErrStringNotClosed},
		{`01`, ErrIllegalNumber},
		{`-01`, ErrIllegalNumber},
		{`[00]`, ErrIllegalNumber},
		{`{"a":1.}`, ErrIllegalNumber},
		{`"\x"`, ErrIllegalEscape},
		{"\"a\tb\"", ErrControlCharacter},
		{`"\u12"`, ErrIllegalEscape},
		{`"\u12G4"`, ErrIllegalEscape},
		{`{"k\q":1}`, ErrIllegalEscape},
		{`["ok", "bad`+"\n"+`"]`, ErrControlCharacter},
		{`["line\`+"\n"+`"]`, ErrIllegalEscape},
	}
	for _, tt := range tests {
		v, err := Parse(tt.text)
		require.NoError(t, err, tt.text)
		assert.ErrorIs(t, v.Validate(), tt.want, tt.text)
	}

	var serr *SyntaxError
	require.ErrorAs(t, MustParse(`["abc\x"]`).Validate(), &serr)
	assert.Equal(t, 5, serr.Offset)
	assert.Equal(t, `\x`, serr.Snippet())
}

func TestSliceAndMap(t *testing.T) {
	items, err := MustParse(`[1, "two", [3]]`).Slice()
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, KindString, items[1].Kind())
	assert.Equal(t, `[3]`, items[2].Raw())

	m, err := MustParse(`{"a":1,"b\n":2,"a":3}`).Map()
	require.NoError(t, err)
	assert.Len(t, m, 2)
	assert.Equal(t, 3, m["a"].ToInt(0))
	assert.Equal(t, 2, m["b\n"].ToInt(0))

	keys, err := MustParse(`{"z":1,"y":2,"z":3}`).Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "y", "z"}, keys)

	none, err := MustParse(`1`).Slice()
	require.NoError(t, err)
	assert.Nil(t, none)
}
