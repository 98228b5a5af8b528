package netlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitVectorFromUint64(t *testing.T) {
	cases := []struct {
		name  string
		width int
		v     uint64
		str   string
	}{
		{"zero", 4, 0, "0000"},
		{"five", 4, 5, "0101"},
		{"truncated", 2, 5, "01"},
		{"full64", 64, 0x8000000000000001, "1000000000000000000000000000000000000000000000000000000000000001"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bv := BitVectorFromUint64(tc.width, tc.v)
			assert.Equal(t, tc.width, len(bv))
			assert.Equal(t, tc.str, bv.String())
		})
	}
}

func TestBitVectorUint64(t *testing.T) {
	bv := BitVectorFromUint64(64, 12345678901234567)
	v, ok := bv.Uint64()
	require.True(t, ok)
	assert.Equal(t, uint64(12345678901234567), v)

	wide := NewBitVector(65)
	wide[64] = true
	_, ok = wide.Uint64()
	assert.False(t, ok, "a set bit above 63 does not fit")

	wide[64] = false
	wide[3] = true
	v, ok = wide.Uint64()
	require.True(t, ok, "clear high bits are fine")
	assert.Equal(t, uint64(8), v)
}

func TestBitVectorResize(t *testing.T) {
	bv := BitVectorFromUint64(3, 0b101)
	bv.Resize(5)
	require.Len(t, bv, 5)
	assert.Equal(t, "00101", bv.String(), "grown bits are zero")

	bv.Resize(2)
	require.Len(t, bv, 2)
	assert.Equal(t, "01", bv.String())
}
