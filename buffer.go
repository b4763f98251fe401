package x64

import (
	"encoding/binary"
)

// buffer is the append-only encoding buffer. Encoded bytes are never
// removed; the only in-place writes happen through PutInt32 when a
// label fixup patches a previously reserved displacement.
type buffer struct {
	b []byte
	i int
}

func (b *buffer) extend(length int) {
	if len(b.b)-b.i >= length {
		return
	}
	n := len(b.b) * 2
	if n < b.i+length {
		n = b.i + length
	}
	bb := make([]byte, n)
	copy(bb, b.b[:b.i])
	b.b = bb
}

func (b *buffer) Len() int    { return b.i }
func (b *buffer) Get() []byte { return b.b[:b.i] }

func (b *buffer) Reset() {
	b.i = 0
}

func (b *buffer) Byte(v byte) {
	b.extend(1)
	b.b[b.i] = v
	b.i++
}

func (b *buffer) Byte2(v1, v2 byte) {
	b.extend(2)
	b.b[b.i], b.b[b.i+1] = v1, v2
	b.i += 2
}

func (b *buffer) Bytes(v []byte) {
	b.extend(len(v))
	copy(b.b[b.i:], v)
	b.i += len(v)
}

func (b *buffer) Int8(v int8) {
	b.extend(1)
	b.b[b.i] = byte(v)
	b.i++
}

func (b *buffer) Int16(v int16) {
	b.extend(2)
	binary.LittleEndian.PutUint16(b.b[b.i:], uint16(v))
	b.i += 2
}

func (b *buffer) Int32(v int32) {
	b.extend(4)
	binary.LittleEndian.PutUint32(b.b[b.i:], uint32(v))
	b.i += 4
}

func (b *buffer) Int64(v int64) {
	b.extend(8)
	binary.LittleEndian.PutUint64(b.b[b.i:], uint64(v))
	b.i += 8
}

// PutInt32 overwrites 4 previously written bytes at off.
func (b *buffer) PutInt32(off int, v int32) {
	binary.LittleEndian.PutUint32(b.b[off:], uint32(v))
}
