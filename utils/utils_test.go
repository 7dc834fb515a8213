package utils_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"struct-builder/utils"
)

func TestBounds(t *testing.T) {
	t.Parallel()

	lo, hi := utils.SignedBounds(8)
	assert.Equal(t, int64(math.MinInt8), lo)
	assert.Equal(t, int64(math.MaxInt8), hi)

	lo, hi = utils.SignedBounds(64)
	assert.Equal(t, int64(math.MinInt64), lo)
	assert.Equal(t, int64(math.MaxInt64), hi)

	assert.Equal(t, uint64(math.MaxUint16), utils.UnsignedBound(16))
	assert.Equal(t, uint64(math.MaxUint64), utils.UnsignedBound(64))

	assert.True(t, utils.IsInRange(lo, 0, hi))
	assert.False(t, utils.IsInRange(1.5, 1.0, 2.0))
}

func TestUnpack2(t *testing.T) {
	t.Parallel()

	a, b := utils.Unpack2([]string{"pkg", "Func", "rest"})
	assert.Equal(t, "pkg", a)
	assert.Equal(t, "Func", b)

	a, b = utils.Unpack2([]string{"only"})
	assert.Equal(t, "only", a)
	assert.Empty(t, b)
}
