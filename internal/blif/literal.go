package blif

import (
	"math"

	"github.com/pkg/errors"

	"github.com/pborges/blifnet/internal/netlist"
)

// errDecimalOverflow distinguishes the fatal overflow of a quoted decimal
// parameter from the silent fall-back to string storage.
var errDecimalOverflow = errors.New("decimal integer overflow in parameter")

// parseBits decodes a binary constant over {0,1,x,X} into a bit vector of
// the same width, last source character least significant. Don't-care
// digits decode to zero. ok is false on any other character.
func parseBits(s string) (netlist.BitVector, bool) {
	bv := netlist.NewBitVector(len(s))
	for i := range bv {
		switch s[len(s)-1-i] {
		case '1':
			bv[i] = true
		case '0', 'x', 'X':
		default:
			return nil, false
		}
	}
	return bv, true
}

// parseQuotedNumber decodes the numeric-literal dialect Radiant writes
// inside quoted .param strings. A leading 0 selects a prefixed radix
// (0x hex, 0b binary, otherwise octal); anything else is decimal.
//
// Decimal values become a 64-bit vector; accumulator overflow is the fatal
// errDecimalOverflow, not a fall-back. Prefixed radixes produce one digit's
// worth of bits per character (4, 1 or 3). Any character that does not fit
// the radix makes the whole value fall back to string storage: ok is false
// and the caller keeps the literal text.
func parseQuotedNumber(s string) (bv netlist.BitVector, ok bool, err error) {
	if len(s) == 0 {
		return nil, false, nil
	}
	offset := 0
	base := 10
	log2base := 0
	if len(s) >= 2 && s[0] == '0' {
		offset++
		switch s[1] {
		case 'x':
			base, log2base = 16, 4
			offset++
		case 'b':
			base, log2base = 2, 1
			offset++
		default:
			base, log2base = 8, 3
		}
	}

	if base == 10 {
		var v uint64
		for ; offset < len(s); offset++ {
			cval := digitValue(s[offset])
			if cval < 0 || cval > 9 {
				return nil, false, nil
			}
			if v > (math.MaxUint64-uint64(cval))/10 {
				return nil, false, errDecimalOverflow
			}
			v = v*10 + uint64(cval)
		}
		return netlist.BitVectorFromUint64(64, v), true, nil
	}

	n := len(s) - offset
	bv = netlist.NewBitVector(n * log2base)
	for i := 0; i < n; i++ {
		cval := digitValue(s[len(s)-1-i])
		if cval < 0 || cval >= base {
			return nil, false, nil
		}
		for j := 0; j < log2base; j++ {
			bv[i*log2base+j] = cval&(1<<uint(j)) != 0
		}
	}
	return bv, true, nil
}

// digitValue returns the value of an alphanumeric digit, letters counting
// from 10 regardless of case, or -1.
func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	}
	return -1
}
