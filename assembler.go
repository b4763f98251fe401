package x64

import (
	"fmt"
)

// unboundPC marks a label table entry whose label has not been bound.
const unboundPC int32 = -1

// ModRM.mod field values.
const (
	modIndirect uint8 = 0
	modDisp8    uint8 = 1
	modDisp32   uint8 = 2
	modDirect   uint8 = 3
)

// Encoding of "no register" in the SIB index and base fields.
const (
	sibNoIndex uint8 = 4
	sibNoBase  uint8 = 5
)

// An Assembler encodes x64 instructions into a byte buffer. Each
// exported method appends the encoding of exactly one instruction;
// there is one method per supported mnemonic and operand shape, so an
// operand combination without a valid x64 encoding cannot be
// expressed.
//
// Branches to labels always reserve a 32-bit displacement which is
// patched when the label is bound (see Bind); Finalize returns the
// fully patched machine code.
//
// An Assembler is not safe for concurrent use. When re-using an
// assembler after Finalize, Reset must be called first.
type Assembler struct {
	b      buffer
	labels []int32 // label id -> bound offset, or unboundPC
	fixups []fixup
	err    error

	_labels [8]int32
	_fixups [8]fixup
}

// NewAssembler creates an assembler with an empty code buffer, no
// labels and no pending fixups.
func NewAssembler() *Assembler {
	a := &Assembler{}
	a.labels = a._labels[:0]
	a.fixups = a._fixups[:0]
	return a
}

// Reset clears the code buffer, all labels and pending fixups, and the
// error if one exists.
func (a *Assembler) Reset() {
	a.b.Reset()
	a.labels = a._labels[:0]
	a.fixups = a._fixups[:0]
	a.err = nil
}

// Err returns the first error which occurred while encoding
// instructions or binding labels since the assembler was last reset.
func (a *Assembler) Err() error { return a.err }

// Code returns the instructions encoded so far. Displacements of
// branches to still-unbound labels are not patched yet; use Finalize
// for the finished code.
func (a *Assembler) Code() []byte { return a.b.Get() }

// PC returns the current program counter (the number of bytes encoded
// so far).
func (a *Assembler) PC() uint32 { return uint32(a.b.Len()) }

// Finalize returns the encoded machine code. It fails if an encoding
// error occurred earlier, or if any label created for this assembler
// was never bound (which would leave a branch displacement
// unpatched).
func (a *Assembler) Finalize() ([]byte, error) {
	if a.err != nil {
		return nil, a.err
	}
	for id, pc := range a.labels {
		if pc == unboundPC {
			a.err = fmt.Errorf("x64: label %d was never bound", id)
			return nil, a.err
		}
	}
	return a.b.Get(), nil
}

// rex assembles a REX prefix byte. reg, index and base are full 4-bit
// register numbers; their high bits land in REX.R, REX.X and REX.B.
func rex(w bool, reg, index, base uint8) byte {
	r := byte(0x40) | (reg&8)>>1 | (index&8)>>2 | (base&8)>>3
	if w {
		r |= 8
	}
	return r
}

// modrm assembles a ModRM byte.
func modrm(mod, reg, rm uint8) byte {
	return mod<<6 | (reg&7)<<3 | rm&7
}

// sib assembles a SIB byte. scale is the 2-bit log2 field.
func sib(scale, index, base uint8) byte {
	return scale<<6 | (index&7)<<3 | base&7
}

// legacyPrefix emits the 0x66 operand-size prefix for 16-bit operands.
func (a *Assembler) legacyPrefix(opsize uint8) {
	if opsize == 2 {
		a.b.Byte(0x66)
	}
}

// emitImm appends an immediate with the encoded length equal to its
// declared width, little-endian.
func (a *Assembler) emitImm(imm immArg) {
	switch imm.width() {
	case 1:
		a.b.Int8(int8(imm.int64()))
	case 2:
		a.b.Int16(int16(imm.int64()))
	case 4:
		a.b.Int32(int32(imm.int64()))
	case 8:
		a.b.Int64(imm.int64())
	}
}

// encodeRR encodes a register-register instruction in MR form:
// rm -> ModRM.rm (destination), reg -> ModRM.reg (source).
// opsize is the operand width in bytes; rex8 forces a REX prefix for
// 8-bit operands that are only encodable with one.
func (a *Assembler) encodeRR(opc []byte, opsize uint8, rm, reg uint8, rex8 bool) {
	a.legacyPrefix(opsize)
	w := opsize == 8
	if w || rm >= 8 || reg >= 8 || rex8 {
		a.b.Byte(rex(w, reg, 0, rm))
	}
	a.b.Bytes(opc)
	a.b.Byte(modrm(modDirect, reg, rm))
}

// encodeOI encodes a register-in-opcode immediate instruction: the low
// 3 bits of the register are OR'd into the opcode byte, the high bit
// routes to REX.B.
func (a *Assembler) encodeOI(opc byte, opsize uint8, reg uint8, rex8 bool, imm immArg) {
	a.legacyPrefix(opsize)
	w := opsize == 8
	if w || reg >= 8 || rex8 {
		a.b.Byte(rex(w, 0, 0, reg))
	}
	a.b.Byte(opc + reg&7)
	a.emitImm(imm)
}

// encodeR encodes a single-register instruction with an opcode
// extension in ModRM.reg.
func (a *Assembler) encodeR(opc byte, ext uint8, opsize uint8, rm uint8, rex8 bool) {
	a.legacyPrefix(opsize)
	w := opsize == 8
	if w || rm >= 8 || rex8 {
		a.b.Byte(rex(w, 0, 0, rm))
	}
	a.b.Byte2(opc, modrm(modDirect, ext, rm))
}

// encodeRI encodes a register-immediate instruction with an opcode
// extension in ModRM.reg.
func (a *Assembler) encodeRI(opc byte, ext uint8, opsize uint8, rm uint8, imm immArg) {
	a.legacyPrefix(opsize)
	w := opsize == 8
	if w || rm >= 8 {
		a.b.Byte(rex(w, 0, 0, rm))
	}
	a.b.Byte2(opc, modrm(modDirect, ext, rm))
	a.emitImm(imm)
}

// encodeMem encodes a memory-form instruction: reg is the ModRM.reg
// field (a register number or an opcode extension) and m supplies the
// ModRM.mod/rm fields, the optional SIB byte and the displacement.
func (a *Assembler) encodeMem(opc []byte, opsize uint8, m Mem, reg uint8, rex8 bool) {
	a.legacyPrefix(opsize)
	w := opsize == 8

	var index, base uint8
	if m.hasIndex {
		index = uint8(m.index)
	}
	if m.hasBase {
		base = uint8(m.base)
	}
	if w || reg >= 8 || index >= 8 || base >= 8 || rex8 {
		a.b.Byte(rex(w, reg, index, base))
	}
	a.b.Bytes(opc)

	// Absolute addressing: ModRM.rm=100 escapes into a SIB byte whose
	// base field 101 with mod=00 means "no base, disp32".
	if !m.hasBase {
		a.b.Byte(modrm(modIndirect, reg, 4))
		a.b.Byte(sib(uint8(m.scale), sibNoIndex, sibNoBase))
		a.b.Int32(m.disp)
		return
	}

	// Smallest sufficient displacement. RBP/R13 cannot be encoded
	// without one, so a zero disp8 is used there.
	mode := modDisp32
	switch {
	case m.disp == 0 && base&7 != 5:
		mode = modIndirect
	case m.disp >= -128 && m.disp <= 127:
		mode = modDisp8
	}

	// RSP/R12 bases collide with the SIB escape in ModRM.rm and
	// therefore always need a SIB byte, as does any indexed operand.
	if m.hasIndex || base&7 == 4 {
		a.b.Byte(modrm(mode, reg, 4))
		idx := sibNoIndex
		if m.hasIndex {
			idx = index
		}
		a.b.Byte(sib(uint8(m.scale), idx, base))
	} else {
		a.b.Byte(modrm(mode, reg, base))
	}

	switch mode {
	case modDisp8:
		a.b.Int8(int8(m.disp))
	case modDisp32:
		a.b.Int32(m.disp)
	}
}
