package abi

import (
	"fmt"

	"GasWhisperer/internal/codec"
)

// Exports implements the guest-side entry points over a buffer registry.
//
// Host protocol for one call:
//  1. ptr := alloc(len(request)); write the request at ptr
//  2. packed := optimize(ptr, len(request)); (outPtr, outLen) := Unpack(packed)
//  3. read outLen bytes at outPtr
//  4. free(outPtr); free(ptr)
type Exports struct {
	Buffers *Buffers
	Handler *Handler
}

// NewExports wires a fresh registry to a wall-clock handler.
func NewExports() *Exports {
	return &Exports{Buffers: NewBuffers(), Handler: NewHandler()}
}

// Alloc reserves size bytes for the host to write into.
func (e *Exports) Alloc(size uint32) uint32 {
	ptr, _ := e.Buffers.Alloc(size)
	return ptr
}

// Free releases a buffer previously returned by Alloc or Optimize.
func (e *Exports) Free(ptr uint32) {
	e.Buffers.Free(ptr)
}

// Optimize reads the request at (ptr, length), which stays owned by the caller,
// and returns the packed (pointer, length) of a new response buffer that the
// caller now owns.
func (e *Exports) Optimize(ptr, length uint32) uint64 {
	var out []byte
	if in, err := e.Buffers.Bytes(ptr, length); err != nil {
		out = codec.EncodeError(fmt.Sprintf("%v: %v", codec.ErrInvalidInput, err))
	} else {
		out = e.Handler.Handle(in)
	}
	return Pack(e.Buffers.Adopt(out), uint32(len(out)))
}
