package numeric_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/pwline/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIsFloat checks float detection for builtin and named types.
func TestIsFloat(t *testing.T) {
	type celsius float32
	type tick uint16

	assert.True(t, numeric.IsFloat[float32]())
	assert.True(t, numeric.IsFloat[float64]())
	assert.True(t, numeric.IsFloat[celsius]())
	assert.False(t, numeric.IsFloat[int]())
	assert.False(t, numeric.IsFloat[uint8]())
	assert.False(t, numeric.IsFloat[tick]())
}

// TestIsNaN covers NaN detection on floats and the integer no-op.
func TestIsNaN(t *testing.T) {
	assert.True(t, numeric.IsNaN(math.NaN()))
	assert.True(t, numeric.IsNaN(float32(math.NaN())))
	assert.False(t, numeric.IsNaN(1.5))
	assert.False(t, numeric.IsNaN(7))
}

// TestConvert_Exact covers conversions that must succeed unchanged.
func TestConvert_Exact(t *testing.T) {
	f, err := numeric.Convert[float32](uint32(20))
	require.NoError(t, err)
	assert.Equal(t, float32(20), f)

	g, err := numeric.Convert[float64](int64(-30))
	require.NoError(t, err)
	assert.Equal(t, -30.0, g)

	i, err := numeric.Convert[int8](int64(-128))
	require.NoError(t, err)
	assert.Equal(t, int8(-128), i)

	u, err := numeric.Convert[uint16](4.0)
	require.NoError(t, err)
	assert.Equal(t, uint16(4), u)
}

// TestConvert_FloatNarrowing accepts rounding between float widths but
// rejects saturation to infinity.
func TestConvert_FloatNarrowing(t *testing.T) {
	f, err := numeric.Convert[float32](0.1)
	require.NoError(t, err)
	assert.Equal(t, float32(0.1), f)

	_, err = numeric.Convert[float32](math.MaxFloat64)
	assert.ErrorIs(t, err, numeric.ErrOverflow)

	inf, err := numeric.Convert[float32](math.Inf(1))
	require.NoError(t, err, "an infinite input is carried, not created")
	assert.True(t, math.IsInf(float64(inf), 1))
}

// TestConvert_Lossy covers truncation that must be reported.
func TestConvert_Lossy(t *testing.T) {
	tests := []struct {
		name string
		conv func() error
		want error
	}{
		{"fraction into int", func() error { _, err := numeric.Convert[int](2.5); return err }, numeric.ErrLossyConversion},
		{"wide int into int8", func() error { _, err := numeric.Convert[int8](300); return err }, numeric.ErrLossyConversion},
		{"2^24+1 into float32", func() error { _, err := numeric.Convert[float32](int32(1<<24 + 1)); return err }, numeric.ErrLossyConversion},
		{"negative into unsigned", func() error { _, err := numeric.Convert[uint32](int64(-1)); return err }, numeric.ErrOverflow},
		{"negative int into uint8", func() error { _, err := numeric.Convert[uint8](int8(-1)); return err }, numeric.ErrOverflow},
		{"NaN into int", func() error { _, err := numeric.Convert[int64](math.NaN()); return err }, numeric.ErrLossyConversion},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.conv(), tc.want)
		})
	}
}

// TestMustConvert panics with a matchable sentinel.
func TestMustConvert(t *testing.T) {
	assert.Equal(t, 3.0, numeric.MustConvert[float64](3))

	defer func() {
		r := recover()
		require.NotNil(t, r, "MustConvert must panic on lossy input")
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, numeric.ErrLossyConversion)
	}()
	numeric.MustConvert[int](0.25)
}

// TestSpan checks ordinary spans and wrap detection.
func TestSpan(t *testing.T) {
	assert.Equal(t, uint32(20), numeric.Span[uint32](0, 20))
	assert.Equal(t, 30, numeric.Span(-10, 20))
	assert.Equal(t, 1.5, numeric.Span(0.5, 2.0))

	assert.Panics(t, func() { numeric.Span[int8](-100, 100) }, "int8 span of 200 wraps")
}
