// Package abi is the byte-level boundary between the contract host and the optimizer.
//
// The host hands over a UTF-8 JSON request and receives a newly allocated UTF-8 JSON
// response: either an OptimizeOutput or {"error": "..."}. Malformed input never
// panics; it is reported in the error payload.
package abi

import (
	"context"
	"errors"
	"fmt"
	"time"

	"GasWhisperer/internal/codec"
	"GasWhisperer/internal/optimizer"
)

// Clock returns the reference time for the recommended submission time.
type Clock func() time.Time

// Handler decodes requests, runs the optimizer and encodes the response.
type Handler struct {
	Now Clock
}

// NewHandler creates a Handler reading the wall clock.
func NewHandler() *Handler {
	return &Handler{Now: time.Now}
}

var defaultHandler = NewHandler()

// Handle runs a request through the default handler.
func Handle(input []byte) []byte {
	return defaultHandler.Handle(input)
}

// Handle never mutates input and never retains the returned slice; the caller owns it.
func (h *Handler) Handle(input []byte) (output []byte) {
	defer func() {
		if r := recover(); r != nil {
			output = codec.EncodeError("internal error")
		}
	}()

	in, err := codec.DecodeInput(input)
	if err != nil {
		return codec.EncodeError(errorMessage(err))
	}

	out := optimizer.Optimize(in, h.Now())
	data, err := codec.EncodeOutput(out)
	if err != nil {
		return codec.EncodeError(fmt.Sprintf("encode output: %v", err))
	}
	return data
}

func errorMessage(err error) string {
	if errors.Is(err, codec.ErrInvalidInput) {
		return err.Error()
	}
	return fmt.Sprintf("%v: %v", codec.ErrInvalidInput, err)
}

// Optimize adapts Handle to the same shape as the wasm host runner.
func (h *Handler) Optimize(_ context.Context, input []byte) ([]byte, error) {
	return h.Handle(input), nil
}
