package x64

// Push and pop use the short register-in-opcode forms. The operand
// size defaults to 64 bits in long mode, so no REX.W is emitted.

// Pushq encodes push r (64-bit).
func (a *Assembler) Pushq(r Reg64) {
	if r >= R8 {
		a.b.Byte(rex(false, 0, 0, uint8(r)))
	}
	a.b.Byte(0x50 + uint8(r)&7)
}

// Popq encodes pop r (64-bit).
func (a *Assembler) Popq(r Reg64) {
	if r >= R8 {
		a.b.Byte(rex(false, 0, 0, uint8(r)))
	}
	a.b.Byte(0x58 + uint8(r)&7)
}

// Pushw encodes push r (16-bit).
func (a *Assembler) Pushw(r Reg16) {
	a.b.Byte(0x66)
	if r >= R8W {
		a.b.Byte(rex(false, 0, 0, uint8(r)))
	}
	a.b.Byte(0x50 + uint8(r)&7)
}

// Popw encodes pop r (16-bit).
func (a *Assembler) Popw(r Reg16) {
	a.b.Byte(0x66)
	if r >= R8W {
		a.b.Byte(rex(false, 0, 0, uint8(r)))
	}
	a.b.Byte(0x58 + uint8(r)&7)
}
