package netlist

// BitVector is a fixed-width string of bits. Bit 0 is the least significant
// bit; String renders most significant first, the way the bits appear in a
// BLIF source file.
type BitVector []bool

// NewBitVector returns an all-zero vector of width n.
func NewBitVector(n int) BitVector {
	return make(BitVector, n)
}

// BitVectorFromUint64 returns a vector of width n holding v. Bits of v above
// n are discarded.
func BitVectorFromUint64(n int, v uint64) BitVector {
	bv := make(BitVector, n)
	for i := 0; i < n && i < 64; i++ {
		bv[i] = v&(1<<uint(i)) != 0
	}
	return bv
}

// Resize grows or truncates the vector to width n. New bits are zero.
func (bv *BitVector) Resize(n int) {
	old := *bv
	if n <= len(old) {
		*bv = old[:n]
		return
	}
	grown := make(BitVector, n)
	copy(grown, old)
	*bv = grown
}

// Uint64 returns the value of the low 64 bits and whether the full vector
// fits in 64 bits.
func (bv BitVector) Uint64() (uint64, bool) {
	var v uint64
	ok := true
	for i, b := range bv {
		if !b {
			continue
		}
		if i >= 64 {
			ok = false
			break
		}
		v |= 1 << uint(i)
	}
	return v, ok
}

func (bv BitVector) String() string {
	buf := make([]byte, len(bv))
	for i, b := range bv {
		c := byte('0')
		if b {
			c = '1'
		}
		buf[len(bv)-1-i] = c
	}
	return string(buf)
}
