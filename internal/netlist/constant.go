package netlist

import "fmt"

// Position is a source location used in diagnostics and carried by every
// Const so that bad values can be reported where they were written.
type Position struct {
	File string
	Line int
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d", p.File, p.Line)
}

// Value is the logic level of a constant net.
type Value int

const (
	ValueZero Value = iota
	ValueOne
)

func (v Value) String() string {
	if v == ValueOne {
		return "1"
	}
	return "0"
}

// ConstKind discriminates the two payloads a Const can carry.
type ConstKind int

const (
	ConstBits ConstKind = iota
	ConstString
)

// Const is an attribute or parameter value attached to an instance: either a
// bit vector or a verbatim string.
type Const struct {
	Kind ConstKind
	Bits BitVector
	Str  string
	Pos  Position
}

// BitsConst returns a bit-vector valued Const defined at pos.
func BitsConst(pos Position, bv BitVector) Const {
	return Const{Kind: ConstBits, Bits: bv, Pos: pos}
}

// StringConst returns a string valued Const defined at pos.
func StringConst(pos Position, s string) Const {
	return Const{Kind: ConstString, Str: s, Pos: pos}
}
