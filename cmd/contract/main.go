// Command contract is the gas optimizer as a WebAssembly guest.
//
// Build as a reactor module:
//
//	GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o gasopt.wasm ./cmd/contract
//
// Exports:
//
//	alloc(size u32) u32           reserve a request buffer; the host owns it
//	free(ptr u32)                 release a buffer from alloc or optimize
//	optimize(ptr u32, len u32) u64
//	                              run a request; returns Pack(outPtr, outLen) of a new
//	                              response buffer that the host owns and must free
package main

func main() {}
