//go:build !wasm

package abi

// handleOf hands out opaque, 8-aligned, non-zero handles outside of wasm, where
// native addresses do not fit the 32-bit ABI. After the counter wraps it skips
// zero and handles that are still live. Callers hold b.mu.
func (b *Buffers) handleOf(_ []byte) uint32 {
	for {
		b.seq += 8
		if b.seq == 0 {
			continue
		}
		if _, taken := b.live[b.seq]; !taken {
			return b.seq
		}
	}
}
