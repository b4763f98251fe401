package x64

// The 16 general-purpose registers, one named constant set per operand
// width. Every encoder method is typed against exactly one of these
// sets, so an instruction can never be handed a register of the wrong
// width.

// Reg64 is a 64-bit general-purpose register.
type Reg64 uint8

// Reg32 is a 32-bit general-purpose register.
type Reg32 uint8

// Reg16 is a 16-bit general-purpose register.
type Reg16 uint8

// Reg8 is an 8-bit general-purpose register. SPB, BPB, SIB and DIB are
// the REX-encoded low bytes of RSP/RBP/RSI/RDI; the legacy high-byte
// registers (AH..BH) are not representable.
type Reg8 uint8

// 64-bit registers
const (
	RAX Reg64 = iota
	RCX
	RDX
	RBX
	RSP
	RBP
	RSI
	RDI
	R8
	R9
	R10
	R11
	R12
	R13
	R14
	R15
)

// 32-bit registers
const (
	EAX Reg32 = iota
	ECX
	EDX
	EBX
	ESP
	EBP
	ESI
	EDI
	R8L
	R9L
	R10L
	R11L
	R12L
	R13L
	R14L
	R15L
)

// 16-bit registers
const (
	AX Reg16 = iota
	CX
	DX
	BX
	SP
	BP
	SI
	DI
	R8W
	R9W
	R10W
	R11W
	R12W
	R13W
	R14W
	R15W
)

// 8-bit registers
const (
	AL Reg8 = iota
	CL
	DL
	BL
	SPB
	BPB
	SIB
	DIB
	R8B
	R9B
	R10B
	R11B
	R12B
	R13B
	R14B
	R15B
)

// rex8 reports whether the register can only be encoded with a REX
// prefix present (SPB..DIB need a plain 0x40, R8B..R15B need REX.B).
func (r Reg8) rex8() bool { return r >= SPB }
