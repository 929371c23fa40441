package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexColor(t *testing.T) {
	c, err := HexColor("#404088")
	require.NoError(t, err)
	assert.Equal(t, NewColor(0x40, 0x40, 0x88), c)
	assert.Equal(t, "#404088", c.HexString())

	_, err = HexColor("not a color")
	assert.Error(t, err)
}

func TestLerpEndpoints(t *testing.T) {
	a := NewColor(0x40, 0x40, 0x88)
	b := NewColor(0x00, 0xCC, 0x00)

	assert.Equal(t, a, Lerp(a, b, 0))
	assert.Equal(t, b, Lerp(a, b, 1))

	// Out-of-range amounts clamp to the endpoints.
	assert.Equal(t, a, Lerp(a, b, -0.5))
	assert.Equal(t, b, Lerp(a, b, 1.5))
}

func TestLerpMidpoint(t *testing.T) {
	mid := Lerp(NewColor(0, 0, 0), NewColor(255, 255, 255), 0.5)
	for _, ch := range []uint8{mid.R, mid.G, mid.B} {
		assert.InDelta(t, 128, float64(ch), 1)
	}
}

func TestDistance(t *testing.T) {
	a := NewColor(0, 0, 0)
	assert.Zero(t, Distance(a, a))
	assert.Greater(t, Distance(a, NewColor(255, 255, 255)), Distance(a, NewColor(10, 10, 10)))
}
