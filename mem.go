package x64

// Scale is the index multiplier of a memory operand. It is stored as
// the 2-bit SIB scale field (log2 of the multiplier), so no invalid
// multiplier is representable.
type Scale uint8

const (
	Scale1 Scale = iota
	Scale2
	Scale4
	Scale8
)

// Mem describes an x64 memory operand [base + index*scale + disp].
// Values are built through Ptr, Sib or Abs; construction never fails.
// The displacement is encoded in the smallest sufficient form: omitted
// when zero, disp8 when it fits, disp32 otherwise. Addressing-mode
// rules are honored transparently: RSP/R12 bases escape into a SIB
// byte and RBP/R13 bases are encoded with an explicit displacement.
type Mem struct {
	disp     int32
	base     Reg64
	index    Reg64
	scale    Scale
	hasBase  bool
	hasIndex bool
}

// Ptr returns the memory operand [base + disp].
func Ptr(base Reg64, disp int32) Mem {
	return Mem{base: base, disp: disp, hasBase: true}
}

// Sib returns the memory operand [base + index*scale + disp].
//
// RSP cannot be an index register (its SIB encoding means "no index");
// passing it is a programmer error and panics.
func Sib(base, index Reg64, scale Scale, disp int32) Mem {
	if index == RSP {
		panic("x64: RSP cannot be used as an index register")
	}
	return Mem{base: base, index: index, scale: scale, disp: disp, hasBase: true, hasIndex: true}
}

// Abs returns the absolute memory operand [disp]. Absolute addressing
// always encodes a 32-bit displacement.
func Abs(disp int32) Mem {
	return Mem{disp: disp}
}
