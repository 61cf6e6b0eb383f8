package codec

import (
	"errors"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/valyala/fastjson"

	"GasWhisperer/internal/model"
)

// ErrInvalidInput is wrapped by every decode failure.
var ErrInvalidInput = errors.New("invalid input")

// DecodeInput parses a UTF-8 JSON OptimizeInput. All fields are required and must
// carry the right JSON type; unknown fields are ignored.
func DecodeInput(data []byte) (*model.OptimizeInput, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: not valid UTF-8", ErrInvalidInput)
	}

	var p fastjson.Parser
	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if v.Type() != fastjson.TypeObject {
		return nil, fmt.Errorf("%w: expected object, got %s", ErrInvalidInput, v.Type())
	}

	in := &model.OptimizeInput{}
	if in.Tx, err = requireString(v, "tx"); err != nil {
		return nil, err
	}
	if in.CurrentGas, err = requireNumber(v, "current_gas"); err != nil {
		return nil, err
	}

	recent := v.Get("recent")
	if recent == nil {
		return nil, fmt.Errorf("%w: missing field recent", ErrInvalidInput)
	}
	items, err := recent.Array()
	if err != nil {
		return nil, fmt.Errorf("%w: recent: %v", ErrInvalidInput, err)
	}

	in.Recent = make([]model.RecentPoint, 0, len(items))
	for i, item := range items {
		pt, err := decodePoint(item)
		if err != nil {
			return nil, fmt.Errorf("recent[%d]: %w", i, err)
		}
		in.Recent = append(in.Recent, pt)
	}
	return in, nil
}

func decodePoint(v *fastjson.Value) (model.RecentPoint, error) {
	if v.Type() != fastjson.TypeObject {
		return model.RecentPoint{}, fmt.Errorf("%w: expected object, got %s", ErrInvalidInput, v.Type())
	}
	ts, err := requireString(v, "timestamp")
	if err != nil {
		return model.RecentPoint{}, err
	}
	gas, err := requireNumber(v, "gas_gwei")
	if err != nil {
		return model.RecentPoint{}, err
	}
	return model.RecentPoint{Timestamp: ts, GasPrice: gas}, nil
}

func requireString(v *fastjson.Value, key string) (string, error) {
	f := v.Get(key)
	if f == nil {
		return "", fmt.Errorf("%w: missing field %s", ErrInvalidInput, key)
	}
	b, err := f.StringBytes()
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidInput, key, err)
	}
	return string(b), nil
}

func requireNumber(v *fastjson.Value, key string) (float64, error) {
	f := v.Get(key)
	if f == nil {
		return 0, fmt.Errorf("%w: missing field %s", ErrInvalidInput, key)
	}
	n, err := f.Float64()
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalidInput, key, err)
	}
	if math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, fmt.Errorf("%w: %s: number out of range", ErrInvalidInput, key)
	}
	return n, nil
}
