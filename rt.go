//go:build unix

package x64

import (
	"fmt"
	"os"
	"reflect"
	"unsafe"

	"golang.org/x/sys/unix"
)

// A Runtime owns a block of executable memory holding one finished
// code buffer. The region is mapped writable, filled, and then flipped
// to read-execute: it is never writable and executable at the same
// time, and it cannot be modified after loading. Load a new Runtime
// for new code.
//
// A Runtime must stay owned by a single goroutine. It provides no
// internal synchronization for the mapping, the Func boundary or the
// unmap in Close; it must not be copied (go vet's copylocks check
// flags copies) and must not be shared or handed to another goroutine.
type Runtime struct {
	noCopy noCopy
	mem    []byte
}

// NewRuntime maps an anonymous region rounded up to the page size,
// copies code into it and makes it executable. Failure to map or to
// change the protection is returned as an error; there is no retry.
func NewRuntime(code []byte) (*Runtime, error) {
	if len(code) == 0 {
		return nil, fmt.Errorf("x64: empty code buffer")
	}
	pagesize := os.Getpagesize()
	size := (len(code) + pagesize - 1) &^ (pagesize - 1)

	mem, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("x64: mmap code region: %w", err)
	}
	copy(mem, code)
	if err := unix.Mprotect(mem, unix.PROT_READ|unix.PROT_EXEC); err != nil {
		unix.Munmap(mem)
		return nil, fmt.Errorf("x64: mprotect code region: %w", err)
	}
	return &Runtime{mem: mem}, nil
}

// Func points dst, which must be a pointer to a function value, at the
// entry of the loaded code.
//
// This is the single unchecked boundary of the package: the runtime
// cannot verify that the loaded bytes form a valid function of the
// asserted signature. Calling the resulting function with a mismatched
// signature, or loading bytes that are not valid x64 code, is
// undefined behavior.
func (rt *Runtime) Func(dst interface{}) error {
	// A function value dereferences to a code pointer; pointing it at
	// the slice header makes the mapped region the entry point. See
	// "Go 1.1 Function Calls":
	// https://docs.google.com/document/d/1bMwCey-gmqZVTpRax-ESeVuZGmjwbocYs1iHplK-cjo/pub
	type interfaceHeader struct {
		typ  uintptr
		addr **[]byte
	}
	v := reflect.ValueOf(dst)
	if !v.IsValid() || v.Kind() != reflect.Ptr || v.IsNil() || !v.Elem().CanSet() || v.Elem().Kind() != reflect.Func {
		return fmt.Errorf("x64: Func destination must be a pointer to a function value")
	}
	header := *(*interfaceHeader)(unsafe.Pointer(&dst))
	*header.addr = &rt.mem
	return nil
}

// Addr returns the entry address of the loaded code.
func (rt *Runtime) Addr() uintptr {
	return uintptr(unsafe.Pointer(&rt.mem[0]))
}

// Size returns the size of the mapped region in bytes.
func (rt *Runtime) Size() int { return len(rt.mem) }

// Close unmaps the executable region. Function values previously
// obtained through Func must not be called afterwards.
func (rt *Runtime) Close() error {
	mem := rt.mem
	rt.mem = nil
	if mem == nil {
		return nil
	}
	if err := unix.Munmap(mem); err != nil {
		return fmt.Errorf("x64: munmap code region: %w", err)
	}
	return nil
}

// noCopy triggers go vet's copylocks check when a containing struct is
// copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
