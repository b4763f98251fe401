// Package x64 provides a run-time x86-64 instruction encoder and a
// minimal JIT runtime to execute the emitted code in-process.
//
// The Assembler appends byte-exact x64 encodings through one typed
// method per mnemonic and operand shape; operand combinations without
// a valid encoding have no method and cannot be expressed. Forward
// branch targets are handled with labels: a branch to an unbound label
// reserves a 32-bit displacement which is patched when the label is
// bound.
//
// usage example:
//
//	package example
//
//	import (
//		"github.com/jitx/x64"
//	)
//
//	// CompileSum42 builds a function computing the sum of the
//	// integers 0 through 42.
//	func CompileSum42() (func() int, error) {
//		asm := x64.NewAssembler()
//
//		loop := asm.NewLabel()
//
//		asm.Xorl(x64.EAX, x64.EAX)           // acc := 0
//		asm.MovlImm(x64.ECX, 42)             // n := 42
//		asm.Bind(loop)
//		asm.Addl(x64.EAX, x64.ECX)           // acc += n
//		asm.Decl(x64.ECX)                    // n--
//		asm.Jnz(loop)                        // until n == 0
//		asm.Ret()
//
//		code, err := asm.Finalize()
//		if err != nil {
//			return nil, err
//		}
//
//		rt, err := x64.NewRuntime(code)
//		if err != nil {
//			return nil, err
//		}
//
//		var sum func() int
//		if err := rt.Func(&sum); err != nil {
//			return nil, err
//		}
//		return sum, nil // sum() == 903
//	}
//
// The Runtime maps the finished code into memory that is first
// writable, then executable (never both at once) and reinterprets the
// region as a caller-asserted function signature. That last step is
// inherently unchecked; see Runtime.Func.
package x64
