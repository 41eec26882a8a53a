package unmarshaler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetUnmarshaler(t *testing.T) {
	var m map[string]int
	require.NoError(t, Instance()([]byte(`{"a":1}`), &m))
	assert.Equal(t, map[string]int{"a": 1}, m)

	errFixed := errors.New("fixed")
	SetUnmarshaler(func([]byte, any) error { return errFixed })
	assert.ErrorIs(t, Instance()([]byte(`1`), &m), errFixed)

	SetUnmarshaler(nil)
	var n int
	require.NoError(t, Instance()([]byte(`7`), &n))
	assert.Equal(t, 7, n)
}
