package blif

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pborges/blifnet/internal/netlist"
)

func TestParseBits(t *testing.T) {
	cases := []struct {
		in  string
		str string
	}{
		{"0", "0"},
		{"1", "1"},
		{"1010", "1010"},
		{"1xX0", "1000"},
		{"xxxx", "0000"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			bv, ok := parseBits(tc.in)
			require.True(t, ok)
			require.Len(t, bv, len(tc.in))
			assert.Equal(t, tc.str, bv.String())
			// bit i is set iff source character len-1-i is '1'
			for i := range bv {
				assert.Equal(t, tc.in[len(tc.in)-1-i] == '1', bv[i])
			}
		})
	}

	for _, bad := range []string{"2", "10z01", "0b10", "-1"} {
		_, ok := parseBits(bad)
		assert.False(t, ok, bad)
	}
}

func TestParseQuotedNumberDecimal(t *testing.T) {
	cases := []struct {
		in string
		v  uint64
	}{
		{"1", 1},
		{"42", 42},
		{"9", 9},
		{"18446744073709551615", 1<<64 - 1},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			bv, ok, err := parseQuotedNumber(tc.in)
			require.NoError(t, err)
			require.True(t, ok)
			require.Len(t, bv, 64, "decimals decode at a fixed 64-bit width")
			v, fits := bv.Uint64()
			require.True(t, fits)
			assert.Equal(t, tc.v, v)
		})
	}
}

func TestParseQuotedNumberDecimalOverflow(t *testing.T) {
	// 2^64: one past the accumulator, fatal rather than a fall-back
	_, ok, err := parseQuotedNumber("18446744073709551616")
	assert.False(t, ok)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decimal integer overflow in parameter")

	_, _, err = parseQuotedNumber("99999999999999999999")
	assert.Error(t, err)
}

func TestParseQuotedNumberFallback(t *testing.T) {
	for _, in := range []string{
		"",       // empty fails immediately
		"hello",  // not a number at all
		"12a3",   // letter in a decimal
		"0xzz",   // z does not fit radix 16
		"0b12",   // 2 does not fit radix 2
		"09",     // 9 does not fit radix 8
		"0x1._2", // non-alphanumeric
	} {
		bv, ok, err := parseQuotedNumber(in)
		assert.NoError(t, err, in)
		assert.False(t, ok, in)
		assert.Nil(t, bv, in)
	}
}

func TestParseQuotedNumberRadix(t *testing.T) {
	cases := []struct {
		in       string
		width    int
		log2base int
		digits   string
	}{
		{"0x1", 4, 4, "1"},
		{"0xff", 8, 4, "ff"},
		{"0xAb", 8, 4, "ab"},
		{"0x5555", 16, 4, "5555"},
		{"0b1", 1, 1, "1"},
		{"0b101001", 6, 1, "101001"},
		{"0755", 9, 3, "755"},
		{"00", 3, 3, "0"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			bv, ok, err := parseQuotedNumber(tc.in)
			require.NoError(t, err)
			require.True(t, ok)
			require.Len(t, bv, tc.width, "width is digit count times bits per digit")
			assert.Equal(t, tc.digits, encodeRadix(bv, tc.log2base))
		})
	}
}

// encodeRadix renders a bit vector back into lower-case digits at
// 2^log2base, most significant digit first.
func encodeRadix(bv netlist.BitVector, log2base int) string {
	const digits = "0123456789abcdefghijklmnopqrstuvwxyz"
	n := len(bv) / log2base
	var b strings.Builder
	for i := n - 1; i >= 0; i-- {
		v := 0
		for j := 0; j < log2base; j++ {
			if bv[i*log2base+j] {
				v |= 1 << uint(j)
			}
		}
		b.WriteByte(digits[v])
	}
	return b.String()
}

func TestDigitValue(t *testing.T) {
	assert.Equal(t, 0, digitValue('0'))
	assert.Equal(t, 9, digitValue('9'))
	assert.Equal(t, 10, digitValue('a'))
	assert.Equal(t, 10, digitValue('A'))
	assert.Equal(t, 35, digitValue('z'))
	assert.Equal(t, -1, digitValue('_'))
	assert.Equal(t, -1, digitValue(' '))
}
