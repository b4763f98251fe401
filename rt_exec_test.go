//go:build amd64 && (linux || darwin)

package x64

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// The generated code is entered through a Go function value, so the
// tests below rely on Go's amd64 internal ABI: the first integer
// result is returned in RAX.

func compile(t *testing.T, f func(*Assembler)) func() int {
	t.Helper()
	asm := NewAssembler()
	f(asm)
	code, err := asm.Finalize()
	require.NoError(t, err)

	rt, err := NewRuntime(code)
	require.NoError(t, err)
	t.Cleanup(func() { rt.Close() })

	var fn func() int
	require.NoError(t, rt.Func(&fn))
	return fn
}

func TestExecRet(t *testing.T) {
	// The minimal control path: a single ret falls straight back to
	// the caller.
	asm := NewAssembler()
	asm.Ret()
	code, err := asm.Finalize()
	require.NoError(t, err)

	rt, err := NewRuntime(code)
	require.NoError(t, err)
	defer rt.Close()

	var fn func()
	require.NoError(t, rt.Func(&fn))
	fn()
}

func TestExecMovRet(t *testing.T) {
	fn := compile(t, func(a *Assembler) {
		a.MovlImm(EAX, 42)
		a.Ret()
	})
	require.Equal(t, 42, fn())
}

func TestExecLoopSum(t *testing.T) {
	// Sum the integers 0..42: zero an accumulator, count a register
	// down from 42, branch back while non-zero.
	fn := compile(t, func(a *Assembler) {
		loop := a.NewLabel()
		a.Xorl(EAX, EAX)
		a.MovlImm(ECX, 42)
		a.Bind(loop)
		a.Addl(EAX, ECX)
		a.Decl(ECX)
		a.Jnz(loop)
		a.Ret()
	})
	require.Equal(t, 903, fn())
}

func TestExecForwardBranch(t *testing.T) {
	fn := compile(t, func(a *Assembler) {
		done := a.NewLabel()
		a.MovlImm(EAX, 1)
		a.Jmp(done)
		a.MovlImm(EAX, 2) // skipped
		a.Bind(done)
		a.Ret()
	})
	require.Equal(t, 1, fn())
}

func TestExecCmov(t *testing.T) {
	fn := compile(t, func(a *Assembler) {
		a.MovqImm(RAX, 1)
		a.MovqImm(RCX, 5)
		a.Testq(RAX, RAX) // ZF=0
		a.Cmovzq(RAX, RCX)  // not taken
		a.Cmovnzq(RAX, RCX) // taken
		a.Ret()
	})
	require.Equal(t, 5, fn())
}

func TestExecPushPop(t *testing.T) {
	fn := compile(t, func(a *Assembler) {
		a.MovqImm(RAX, 7)
		a.Pushq(RAX)
		a.MovqImm(RAX, 0)
		a.Popq(RAX)
		a.Ret()
	})
	require.Equal(t, 7, fn())
}

func TestExecMemOps(t *testing.T) {
	// Round-trip a value through a stack slot and increment it there.
	fn := compile(t, func(a *Assembler) {
		a.SubqImm(RSP, 16)
		a.MovqStoreImm(Ptr(RSP, 0), 5)
		a.IncqMem(Ptr(RSP, 0))
		a.MovqLoad(RAX, Ptr(RSP, 0))
		a.AddqImm(RSP, 16)
		a.Ret()
	})
	require.Equal(t, 6, fn())
}
