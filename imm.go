package x64

// Imm8 is an 8-bit immediate operand.
//
// Imm8 implements immArg.
type Imm8 int8

// Imm16 is a 16-bit immediate operand.
//
// Imm16 implements immArg.
type Imm16 int16

// Imm32 is a 32-bit immediate operand.
//
// Imm32 implements immArg.
type Imm32 int32

// Imm64 is a 64-bit immediate operand.
//
// Imm64 implements immArg.
type Imm64 int64

// immArg is an immediate of a fixed width. The encoded length of an
// immediate always equals its declared width, little-endian.
type immArg interface {
	width() uint8
	int64() int64
}

func (i Imm8) width() uint8  { return 1 }
func (i Imm16) width() uint8 { return 2 }
func (i Imm32) width() uint8 { return 4 }
func (i Imm64) width() uint8 { return 8 }

func (i Imm8) int64() int64  { return int64(i) }
func (i Imm16) int64() int64 { return int64(i) }
func (i Imm32) int64() int64 { return int64(i) }
func (i Imm64) int64() int64 { return int64(i) }
