package x64

// Branch-to-label instructions always use the near form with a 32-bit
// relative displacement, even when the final distance would fit in 8
// bits. The fixed width keeps label resolution single-pass: a
// displacement never changes size after it has been reserved.

// Jmp encodes an unconditional jmp to l.
func (a *Assembler) Jmp(l Label) {
	a.emitRel32([]byte{0xe9}, l)
}

// Jz encodes a jz (jump if ZF=1) to l.
func (a *Assembler) Jz(l Label) {
	a.emitRel32([]byte{0x0f, 0x84}, l)
}

// Jnz encodes a jnz (jump if ZF=0) to l.
func (a *Assembler) Jnz(l Label) {
	a.emitRel32([]byte{0x0f, 0x85}, l)
}

// Callq encodes an indirect call through r. The operand size defaults
// to 64 bits, so no REX.W is needed.
func (a *Assembler) Callq(r Reg64) {
	if r >= R8 {
		a.b.Byte(rex(false, 0, 0, uint8(r)))
	}
	a.b.Byte2(0xff, modrm(modDirect, 2, uint8(r)))
}

// Cmovzq encodes cmovz dst, src (64-bit): dst is overwritten with src
// only if ZF=1.
func (a *Assembler) Cmovzq(dst, src Reg64) {
	a.encodeRM2(0x0f, 0x44, uint8(dst), uint8(src))
}

// Cmovnzq encodes cmovnz dst, src (64-bit): dst is overwritten with
// src only if ZF=0.
func (a *Assembler) Cmovnzq(dst, src Reg64) {
	a.encodeRM2(0x0f, 0x45, uint8(dst), uint8(src))
}

// encodeRM2 encodes a two-byte-opcode 64-bit instruction in RM form:
// reg is the destination, rm the source.
func (a *Assembler) encodeRM2(opc0, opc1 byte, reg, rm uint8) {
	a.b.Byte(rex(true, reg, 0, rm))
	a.b.Byte2(opc0, opc1)
	a.b.Byte(modrm(modDirect, reg, rm))
}

// Ret encodes a near ret.
func (a *Assembler) Ret() {
	a.b.Byte(0xc3)
}

// Nop encodes a single-byte nop.
func (a *Assembler) Nop() {
	a.b.Byte(0x90)
}
