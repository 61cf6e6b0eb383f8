package abi

import (
	"fmt"
	"sync"
)

// Buffers pins every buffer that crosses the boundary until the other side frees it.
//
// In a garbage-collected guest the pin is what keeps a buffer alive after its pointer
// has been handed out: whoever receives a pointer from Alloc or Adopt owns that buffer
// and must release it with Free exactly once.
type Buffers struct {
	mu   sync.Mutex
	live map[uint32][]byte
	seq  uint32
}

// NewBuffers creates an empty registry.
func NewBuffers() *Buffers {
	return &Buffers{live: make(map[uint32][]byte)}
}

// Alloc allocates a zeroed buffer of size bytes and returns its pointer.
func (b *Buffers) Alloc(size uint32) (uint32, []byte) {
	buf := make([]byte, size, max(size, 1))
	return b.Adopt(buf), buf
}

// Adopt pins buf and returns its pointer. buf must not be modified afterwards.
func (b *Buffers) Adopt(buf []byte) uint32 {
	if cap(buf) == 0 {
		buf = make([]byte, 0, 1)
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	ptr := b.handleOf(buf)
	b.live[ptr] = buf
	return ptr
}

// Bytes returns the first length bytes of the pinned buffer starting at ptr.
func (b *Buffers) Bytes(ptr, length uint32) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	buf, ok := b.live[ptr]
	if !ok {
		return nil, fmt.Errorf("unknown buffer pointer %d", ptr)
	}
	if int(length) > len(buf) {
		return nil, fmt.Errorf("length %d exceeds buffer length %d", length, len(buf))
	}
	return buf[:length], nil
}

// Free releases the buffer at ptr. It reports false for a pointer that is not live.
func (b *Buffers) Free(ptr uint32) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.live[ptr]; !ok {
		return false
	}
	delete(b.live, ptr)
	return true
}

// Live returns the number of buffers still owned by someone.
func (b *Buffers) Live() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.live)
}

// Pack combines a pointer and a length into one return value: pointer in the high
// 32 bits, length in the low 32 bits.
func Pack(ptr, length uint32) uint64 {
	return uint64(ptr)<<32 | uint64(length)
}

// Unpack splits a value produced by Pack.
func Unpack(v uint64) (ptr, length uint32) {
	return uint32(v >> 32), uint32(v)
}
