package main

import "GasWhisperer/internal/abi"

var exports = abi.NewExports()

//go:wasmexport alloc
func alloc(size uint32) uint32 {
	return exports.Alloc(size)
}

//go:wasmexport free
func free(ptr uint32) {
	exports.Free(ptr)
}

//go:wasmexport optimize
func optimize(ptr, length uint32) uint64 {
	return exports.Optimize(ptr, length)
}
