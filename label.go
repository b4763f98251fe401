package x64

import (
	"fmt"
	"math"
)

// A Label marks a position in the code buffer and may be used as a
// branch target before that position is known. Labels are created with
// (*Assembler).NewLabel and are handles into the assembler's label
// table; a Label must not be used with an assembler other than the one
// that created it.
//
// Every label goes through two states: unbound after NewLabel, then
// bound exactly once by Bind. Finalize fails while any label created
// for the assembler remains unbound.
type Label struct {
	id uint16
}

// fixup is a deferred displacement patch for a branch that referenced
// a label before it was bound. loc is the buffer offset of the
// reserved placeholder. Branches always use the near rel32 form, so
// the placeholder is always 4 bytes wide.
type fixup struct {
	loc   uint32
	label uint16
}

// NewLabel creates a fresh unbound label.
func (a *Assembler) NewLabel() Label {
	id := uint16(len(a.labels))
	a.labels = append(a.labels, unboundPC)
	return Label{id: id}
}

// Bind binds the label to the current position and patches every
// pending branch that referenced it. A label can only be bound once;
// binding it again is a programmer error which poisons the assembler
// (see Err).
func (a *Assembler) Bind(l Label) error {
	if a.err != nil {
		return a.err
	}
	if int(l.id) >= len(a.labels) {
		a.err = fmt.Errorf("x64: unknown label %d", l.id)
		return a.err
	}
	if a.labels[l.id] != unboundPC {
		a.err = fmt.Errorf("x64: label %d is already bound", l.id)
		return a.err
	}
	pc := int32(a.b.Len())
	a.labels[l.id] = pc

	kept := a.fixups[:0]
	for _, f := range a.fixups {
		if f.label == l.id {
			a.patch(f.loc, pc)
		} else {
			kept = append(kept, f)
		}
	}
	a.fixups = kept
	return a.err
}

// patch writes the rel32 displacement to the placeholder at loc. The
// displacement is relative to the end of the placeholder, i.e. the
// first byte of the following instruction.
func (a *Assembler) patch(loc uint32, target int32) {
	disp := int64(target) - (int64(loc) + 4)
	if disp > math.MaxInt32 || disp < math.MinInt32 {
		a.err = fmt.Errorf("x64: relative label offset exceeds range for 32-bit displacement")
		return
	}
	a.b.PutInt32(int(loc), int32(disp))
}

// emitRel32 emits a branch opcode followed by a rel32 displacement
// targeting l. If l is already bound the displacement is written
// immediately, otherwise a fixup is recorded and resolved when l is
// bound.
func (a *Assembler) emitRel32(opc []byte, l Label) {
	a.b.Bytes(opc)
	loc := uint32(a.b.Len())
	a.b.Int32(0)

	if int(l.id) >= len(a.labels) {
		a.err = fmt.Errorf("x64: unknown label %d", l.id)
		return
	}
	if pc := a.labels[l.id]; pc != unboundPC {
		a.patch(loc, pc)
	} else {
		a.fixups = append(a.fixups, fixup{loc: loc, label: l.id})
	}
}
