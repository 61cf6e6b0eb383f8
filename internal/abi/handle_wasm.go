//go:build wasm

package abi

import "unsafe"

// handleOf is the buffer's address in linear memory, so the host can read and
// write it directly. Go's collector does not move heap objects.
func (b *Buffers) handleOf(buf []byte) uint32 {
	return uint32(uintptr(unsafe.Pointer(unsafe.SliceData(buf))))
}
