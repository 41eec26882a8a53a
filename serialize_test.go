package jvalue

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/go-cmp/cmp"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerialize(t *testing.T) {
	v := MustParse(` [1, "x" , {"a" : null, "b":[ ]}, true] `)

	s, err := Serialize(v, Compact)
	require.NoError(t, err)
	assert.Equal(t, `[1,"x",{"a":null,"b":[]},true]`, s)

	s, err = Serialize(v, CompactLines)
	require.NoError(t, err)
	assert.Equal(t, "[\n1,\n\"x\",\n{\n\"a\":null,\n\"b\":[]\n},\ntrue\n]", s)

	s, err = Serialize(MustParse(`{"aA":"é"}`), Compact)
	require.NoError(t, err)
	assert.Equal(t, `{"aA":"é"}`, s, "keys are re-escaped, scalars copied")

	_, err = Serialize(MustParse(`[1,]`), Compact)
	assert.ErrorIs(t, err, ErrExpectedValue)

	s, err = Serialize(Value{}, Pretty)
	require.NoError(t, err)
	assert.Equal(t, `null`, s)
}

func TestRoundTrip(t *testing.T) {
	faker := gofakeit.New(3)
	for i := 0; i < 200; i++ {
		doc := randomDocument(faker, 4)
		text, err := Marshal(doc)
		require.NoError(t, err)

		v, err := Parse(string(text))
		require.NoError(t, err)
		require.NoError(t, v.Validate())

		for _, f := range []Format{Compact, CompactLines, Pretty} {
			s, err := Serialize(v, f)
			require.NoError(t, err)
			again, err := Parse(s)
			require.NoError(t, err, s)
			require.True(t, Equal(v, again), "%s\n%s", text, s)
			require.Equal(t, v.Hash(), again.Hash())
			if f == Compact {
				require.Equal(t, string(text), s)
			}
		}

		var want, got any
		require.NoError(t, Unmarshal(text, &want))
		require.NoError(t, v.Decode(&got))
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("decoded mismatch (-want +got):\n%s", diff)
		}
	}
}

type envelope struct {
	ID   int   `json:"id"`
	Body Value `json:"body"`
}

func TestMarshalJSON(t *testing.T) {
	in := envelope{ID: 7, Body: MustParse(`{ "a" : [1, 2] }`)}
	b, err := Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, `{"id":7,"body":{"a":[1,2]}}`, string(b))

	var out envelope
	require.NoError(t, Unmarshal(b, &out))
	assert.Equal(t, 7, out.ID)
	assert.True(t, out.Body.Equal(in.Body))
	assert.Equal(t, 2, out.Body.Get("a").At(1).ToInt(0))

	_, err = MustParse(`[1 2]`).MarshalJSON()
	assert.ErrorIs(t, err, ErrExpectedComma)
}

func TestSwappedMarshaler(t *testing.T) {
	SetMarshaler(jsoniter.ConfigCompatibleWithStandardLibrary.Marshal)
	SetUnmarshaler(jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal)
	t.Cleanup(func() {
		SetMarshaler(nil)
		SetUnmarshaler(nil)
	})

	b, err := Marshal(envelope{ID: 1, Body: MustParse(`[true]`)})
	require.NoError(t, err)
	assert.Equal(t, `{"id":1,"body":[true]}`, string(b))

	var p point
	require.NoError(t, MustParse(`{"x": 4, "y": 5}`).Decode(&p))
	assert.Equal(t, point{X: 4, Y: 5}, p)

	w := NewBufferWriter()
	w.WriteAny(point{X: 1})
	v, err := w.BuildValue()
	require.NoError(t, err)
	assert.Equal(t, `{"x":1,"y":0}`, v.Raw())
}
