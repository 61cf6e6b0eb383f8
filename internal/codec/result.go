package codec

import (
	"errors"
	"fmt"

	"GasWhisperer/internal/model"
)

// ErrGuest wraps an error payload returned across the boundary.
var ErrGuest = errors.New("optimizer returned an error")

type result struct {
	model.OptimizeOutput
	Error *string `json:"error"`
}

// DecodeResult parses a boundary response, turning an error payload into ErrGuest.
func DecodeResult(data []byte) (*model.OptimizeOutput, error) {
	var r result
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}
	if r.Error != nil {
		return nil, fmt.Errorf("%w: %s", ErrGuest, *r.Error)
	}
	return &r.OptimizeOutput, nil
}
