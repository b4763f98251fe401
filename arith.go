package x64

// Addq encodes add dst, src (64-bit).
func (a *Assembler) Addq(dst, src Reg64) {
	a.encodeRR([]byte{0x01}, 8, uint8(dst), uint8(src), false)
}

// Addl encodes add dst, src (32-bit).
func (a *Assembler) Addl(dst, src Reg32) {
	a.encodeRR([]byte{0x01}, 4, uint8(dst), uint8(src), false)
}

// AddqImm encodes add dst, imm32 (sign-extended).
func (a *Assembler) AddqImm(dst Reg64, imm Imm32) {
	a.encodeRI(0x81, 0, 8, uint8(dst), imm)
}

// AddlImm encodes add dst, imm32.
func (a *Assembler) AddlImm(dst Reg32, imm Imm32) {
	a.encodeRI(0x81, 0, 4, uint8(dst), imm)
}

// Subq encodes sub dst, src (64-bit).
func (a *Assembler) Subq(dst, src Reg64) {
	a.encodeRR([]byte{0x29}, 8, uint8(dst), uint8(src), false)
}

// Subl encodes sub dst, src (32-bit).
func (a *Assembler) Subl(dst, src Reg32) {
	a.encodeRR([]byte{0x29}, 4, uint8(dst), uint8(src), false)
}

// SubqImm encodes sub dst, imm32 (sign-extended).
func (a *Assembler) SubqImm(dst Reg64, imm Imm32) {
	a.encodeRI(0x81, 5, 8, uint8(dst), imm)
}

// SublImm encodes sub dst, imm32.
func (a *Assembler) SublImm(dst Reg32, imm Imm32) {
	a.encodeRI(0x81, 5, 4, uint8(dst), imm)
}

// SubbMemImm encodes sub byte [dst], imm8.
func (a *Assembler) SubbMemImm(dst Mem, imm Imm8) {
	a.encodeMem([]byte{0x80}, 1, dst, 5, false)
	a.emitImm(imm)
}

// Cmpq encodes cmp dst, src (64-bit). The status flags reflect
// dst - src; the result is discarded.
func (a *Assembler) Cmpq(dst, src Reg64) {
	a.encodeRR([]byte{0x39}, 8, uint8(dst), uint8(src), false)
}

// Cmpl encodes cmp dst, src (32-bit).
func (a *Assembler) Cmpl(dst, src Reg32) {
	a.encodeRR([]byte{0x39}, 4, uint8(dst), uint8(src), false)
}

// CmpqImm encodes cmp dst, imm32 (sign-extended).
func (a *Assembler) CmpqImm(dst Reg64, imm Imm32) {
	a.encodeRI(0x81, 7, 8, uint8(dst), imm)
}

// CmplImm encodes cmp dst, imm32.
func (a *Assembler) CmplImm(dst Reg32, imm Imm32) {
	a.encodeRI(0x81, 7, 4, uint8(dst), imm)
}

// CmpwMemImm encodes cmp word [dst], imm16.
func (a *Assembler) CmpwMemImm(dst Mem, imm Imm16) {
	a.encodeMem([]byte{0x81}, 2, dst, 7, false)
	a.emitImm(imm)
}

// Testq encodes test op1, op2 (64-bit): the flags reflect the bitwise
// AND of the operands; the result is discarded.
func (a *Assembler) Testq(op1, op2 Reg64) {
	a.encodeRR([]byte{0x85}, 8, uint8(op1), uint8(op2), false)
}

// Testl encodes test op1, op2 (32-bit).
func (a *Assembler) Testl(op1, op2 Reg32) {
	a.encodeRR([]byte{0x85}, 4, uint8(op1), uint8(op2), false)
}

// Xorq encodes xor dst, src (64-bit).
func (a *Assembler) Xorq(dst, src Reg64) {
	a.encodeRR([]byte{0x31}, 8, uint8(dst), uint8(src), false)
}

// Xorl encodes xor dst, src (32-bit).
func (a *Assembler) Xorl(dst, src Reg32) {
	a.encodeRR([]byte{0x31}, 4, uint8(dst), uint8(src), false)
}

// Incq encodes inc dst (64-bit).
func (a *Assembler) Incq(dst Reg64) {
	a.encodeR(0xff, 0, 8, uint8(dst), false)
}

// Incl encodes inc dst (32-bit).
func (a *Assembler) Incl(dst Reg32) {
	a.encodeR(0xff, 0, 4, uint8(dst), false)
}

// IncqMem encodes inc qword [dst].
func (a *Assembler) IncqMem(dst Mem) {
	a.encodeMem([]byte{0xff}, 8, dst, 0, false)
}

// InclMem encodes inc dword [dst].
func (a *Assembler) InclMem(dst Mem) {
	a.encodeMem([]byte{0xff}, 4, dst, 0, false)
}

// IncwMem encodes inc word [dst].
func (a *Assembler) IncwMem(dst Mem) {
	a.encodeMem([]byte{0xff}, 2, dst, 0, false)
}

// IncbMem encodes inc byte [dst].
func (a *Assembler) IncbMem(dst Mem) {
	a.encodeMem([]byte{0xfe}, 1, dst, 0, false)
}

// Decq encodes dec dst (64-bit).
func (a *Assembler) Decq(dst Reg64) {
	a.encodeR(0xff, 1, 8, uint8(dst), false)
}

// Decl encodes dec dst (32-bit).
func (a *Assembler) Decl(dst Reg32) {
	a.encodeR(0xff, 1, 4, uint8(dst), false)
}
