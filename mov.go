package x64

// MOV, register to register.

// Movq encodes mov dst, src (64-bit).
func (a *Assembler) Movq(dst, src Reg64) {
	a.encodeRR([]byte{0x89}, 8, uint8(dst), uint8(src), false)
}

// Movl encodes mov dst, src (32-bit).
func (a *Assembler) Movl(dst, src Reg32) {
	a.encodeRR([]byte{0x89}, 4, uint8(dst), uint8(src), false)
}

// Movw encodes mov dst, src (16-bit).
func (a *Assembler) Movw(dst, src Reg16) {
	a.encodeRR([]byte{0x89}, 2, uint8(dst), uint8(src), false)
}

// Movb encodes mov dst, src (8-bit).
func (a *Assembler) Movb(dst, src Reg8) {
	a.encodeRR([]byte{0x88}, 1, uint8(dst), uint8(src), dst.rex8() || src.rex8())
}

// MOV, immediate to register (register-in-opcode forms).

// MovqImm encodes mov dst, imm64 (movabs).
func (a *Assembler) MovqImm(dst Reg64, imm Imm64) {
	a.encodeOI(0xb8, 8, uint8(dst), false, imm)
}

// MovlImm encodes mov dst, imm32.
func (a *Assembler) MovlImm(dst Reg32, imm Imm32) {
	a.encodeOI(0xb8, 4, uint8(dst), false, imm)
}

// MovwImm encodes mov dst, imm16.
func (a *Assembler) MovwImm(dst Reg16, imm Imm16) {
	a.encodeOI(0xb8, 2, uint8(dst), false, imm)
}

// MovbImm encodes mov dst, imm8.
func (a *Assembler) MovbImm(dst Reg8, imm Imm8) {
	a.encodeOI(0xb0, 1, uint8(dst), dst.rex8(), imm)
}

// MOV, memory to register.

// MovqLoad encodes mov dst, qword [src].
func (a *Assembler) MovqLoad(dst Reg64, src Mem) {
	a.encodeMem([]byte{0x8b}, 8, src, uint8(dst), false)
}

// MovlLoad encodes mov dst, dword [src].
func (a *Assembler) MovlLoad(dst Reg32, src Mem) {
	a.encodeMem([]byte{0x8b}, 4, src, uint8(dst), false)
}

// MovwLoad encodes mov dst, word [src].
func (a *Assembler) MovwLoad(dst Reg16, src Mem) {
	a.encodeMem([]byte{0x8b}, 2, src, uint8(dst), false)
}

// MovbLoad encodes mov dst, byte [src].
func (a *Assembler) MovbLoad(dst Reg8, src Mem) {
	a.encodeMem([]byte{0x8a}, 1, src, uint8(dst), dst.rex8())
}

// MOV, register to memory.

// MovqStore encodes mov qword [dst], src.
func (a *Assembler) MovqStore(dst Mem, src Reg64) {
	a.encodeMem([]byte{0x89}, 8, dst, uint8(src), false)
}

// MovlStore encodes mov dword [dst], src.
func (a *Assembler) MovlStore(dst Mem, src Reg32) {
	a.encodeMem([]byte{0x89}, 4, dst, uint8(src), false)
}

// MovwStore encodes mov word [dst], src.
func (a *Assembler) MovwStore(dst Mem, src Reg16) {
	a.encodeMem([]byte{0x89}, 2, dst, uint8(src), false)
}

// MovbStore encodes mov byte [dst], src.
func (a *Assembler) MovbStore(dst Mem, src Reg8) {
	a.encodeMem([]byte{0x88}, 1, dst, uint8(src), src.rex8())
}

// MOV, immediate to memory (opcode extension 0).

// MovqStoreImm encodes mov qword [dst], imm32 (sign-extended).
func (a *Assembler) MovqStoreImm(dst Mem, imm Imm32) {
	a.encodeMem([]byte{0xc7}, 8, dst, 0, false)
	a.emitImm(imm)
}

// MovlStoreImm encodes mov dword [dst], imm32.
func (a *Assembler) MovlStoreImm(dst Mem, imm Imm32) {
	a.encodeMem([]byte{0xc7}, 4, dst, 0, false)
	a.emitImm(imm)
}

// MovwStoreImm encodes mov word [dst], imm16.
func (a *Assembler) MovwStoreImm(dst Mem, imm Imm16) {
	a.encodeMem([]byte{0xc7}, 2, dst, 0, false)
	a.emitImm(imm)
}

// MovbStoreImm encodes mov byte [dst], imm8.
func (a *Assembler) MovbStoreImm(dst Mem, imm Imm8) {
	a.encodeMem([]byte{0xc6}, 1, dst, 0, false)
	a.emitImm(imm)
}
