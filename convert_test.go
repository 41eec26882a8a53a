package jvalue

import (
	"math"
	"testing"
	"time"

	"github.com/cockroachdb/apd/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBool(t *testing.T) {
	tests := []struct {
		text string
		def  bool
		want bool
	}{
		{`null`, true, true},
		{`null`, false, false},
		{`true`, false, true},
		{`false`, true, false},
		{`0`, true, false},
		{`0.0`, true, false},
		{`-2.5`, false, true},
		{`""`, true, false},
		{`"false"`, false, true},
		{`[]`, false, true},
		{`{}`, false, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MustParse(tt.text).ToBool(tt.def), tt.text)
	}
}

func TestToInt(t *testing.T) {
	tests := []struct {
		text string
		want int32
	}{
		{`2147483647`, 2147483647},
		{`2147483648`, -1},
		{`-2147483648`, -2147483648},
		{`-2147483649`, -1},
		{`12.9`, 12},
		{`-12.9`, -12},
		{`1e3`, 1000},
		{`1e10`, -1},
		{`true`, 1},
		{`false`, 0},
		{`"42"`, 42},
		{`"4.5"`, 4},
		{`"x"`, -1},
		{`null`, -1},
		{`[1]`, -1},
		{`{}`, -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MustParse(tt.text).ToInt32(-1), tt.text)
	}

	assert.Equal(t, 7, MustParse(`7`).ToInt(0))
	assert.Equal(t, int64(math.MaxInt64), MustParse(`9223372036854775807`).ToInt64(0))
	assert.Equal(t, int64(-5), MustParse(`9223372036854775808`).ToInt64(-5))
	assert.Equal(t, int64(-5), MustParse(`1e19`).ToInt64(-5))
	assert.Equal(t, int64(1e18), MustParse(`1e18`).ToInt64(-5))
}

func TestToUint8(t *testing.T) {
	assert.Equal(t, uint8(255), MustParse(`255`).ToUint8(0))
	assert.Equal(t, uint8(9), MustParse(`256`).ToUint8(9))
	assert.Equal(t, uint8(9), MustParse(`-1`).ToUint8(9))
	assert.Equal(t, uint8(1), MustParse(`true`).ToUint8(9))
}

func TestToFloat(t *testing.T) {
	assert.Equal(t, 1.5, MustParse(`1.5`).ToFloat64(0))
	assert.Equal(t, -2.5e-3, MustParse(`-2.5e-3`).ToFloat64(0))
	assert.Equal(t, 3.25, MustParse(`"3.25"`).ToFloat64(0))
	assert.Equal(t, 1.0, MustParse(`true`).ToFloat64(0))
	assert.Equal(t, 9.0, MustParse(`"abc"`).ToFloat64(9))
	assert.Equal(t, 9.0, MustParse(`1.2.3`).ToFloat64(9), "malformed number yields the default")
	assert.Equal(t, 9.0, MustParse(`null`).ToFloat64(9))
	assert.Equal(t, float32(10.1), MustParse(`10.1`).ToFloat32(0))
	assert.Equal(t, float32(-1), MustParse(`[]`).ToFloat32(-1))
}

func TestToString(t *testing.T) {
	assert.Equal(t, "a\nb", MustParse(`"a\nb"`).ToString("d"))
	assert.Equal(t, "true", MustParse(`true`).ToString("d"))
	assert.Equal(t, "-1.50", MustParse(`-1.50`).ToString("d"))
	assert.Equal(t, "d", MustParse(`null`).ToString("d"))
	assert.Equal(t, "d", MustParse(`[1]`).ToString("d"))
	assert.Equal(t, "", MustParse(`""`).ToString("d"))
}

func TestToDecimal(t *testing.T) {
	d := MustParse(`123456789012345678901234567890.5`).ToDecimal(nil)
	require.NotNil(t, d)
	assert.Equal(t, "123456789012345678901234567890.5", d.String())

	d = MustParse(`"0.10"`).ToDecimal(nil)
	require.NotNil(t, d)
	assert.Equal(t, 0, d.Cmp(apd.New(1, -1)))

	def := apd.New(7, 0)
	assert.Same(t, def, MustParse(`"seven"`).ToDecimal(def))
	assert.Same(t, def, MustParse(`{}`).ToDecimal(def))
}

func TestToTime(t *testing.T) {
	def := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

	got := MustParse(`1700000000`).ToTime(def)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), got)

	got = MustParse(`1.5`).ToTime(def)
	assert.Equal(t, time.Unix(1, 500000000).UTC(), got)

	got = MustParse(`"2024-03-05T10:20:30Z"`).ToTime(def)
	assert.True(t, got.Equal(time.Date(2024, 3, 5, 10, 20, 30, 0, time.UTC)), got)

	assert.Equal(t, def, MustParse(`"not a date at all"`).ToTime(def))
	assert.Equal(t, def, MustParse(`true`).ToTime(def))
	assert.Equal(t, def, MustParse(`1e300`).ToTime(def))
}
