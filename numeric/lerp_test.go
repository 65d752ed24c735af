package numeric_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/pwline/numeric"
	"github.com/stretchr/testify/assert"
)

// TestLerp_Float checks the float path on rising and falling segments.
func TestLerp_Float(t *testing.T) {
	assert.Equal(t, 2.5, numeric.Lerp(0.0, 10.0, 1.0, 4.0))
	assert.Equal(t, 7.5, numeric.Lerp(10.0, 0.0, 1.0, 4.0))
	assert.Equal(t, float32(1), numeric.Lerp[float32](1, 1, 3, 7))
}

// TestLerp_IntegerNoOverflow checks that neither the rise nor the product
// of offset and rise wraps in R.
func TestLerp_IntegerNoOverflow(t *testing.T) {
	assert.Equal(t, uint8(100), numeric.Lerp[uint8](0, 200, 100, 200))
	assert.Equal(t, int32(50000), numeric.Lerp[int32](0, 100000, 50000, 100000))
	assert.Equal(t, int8(50), numeric.Lerp[int8](-100, 100, 75, 100), "rise of 200 exceeds int8")
	assert.Equal(t, int8(-50), numeric.Lerp[int8](100, -100, 75, 100))
	assert.Equal(t, uint64(math.MaxUint64/2), numeric.Lerp[uint64](0, math.MaxUint64, 2, 4))
	assert.Equal(t, int64(0), numeric.Lerp[int64](math.MaxInt64, math.MinInt64, 5, 10))
}

// TestLerp_IntegerTruncation checks the quotient truncates toward from.
func TestLerp_IntegerTruncation(t *testing.T) {
	assert.Equal(t, 3, numeric.Lerp(0, 10, 1, 3))
	assert.Equal(t, 7, numeric.Lerp(10, 0, 1, 3))
	assert.Equal(t, uint16(90), numeric.Lerp[uint16](100, 0, 1, 10))
	assert.Equal(t, -3, numeric.Lerp(0, -10, 1, 3))
}

// TestLerp_Endpoints checks off 0 and off span land on the endpoints.
func TestLerp_Endpoints(t *testing.T) {
	assert.Equal(t, int16(-7), numeric.Lerp[int16](-7, 300, 0, 9))
	assert.Equal(t, int16(300), numeric.Lerp[int16](-7, 300, 9, 9))
	assert.Equal(t, uint32(math.MaxUint32), numeric.Lerp[uint32](0, math.MaxUint32, 5, 5))
}
