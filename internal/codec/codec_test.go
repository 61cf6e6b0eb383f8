package codec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GasWhisperer/internal/model"
)

func TestDecodeInput_Valid(t *testing.T) {
	in, err := DecodeInput([]byte(`{
		"tx": "swap 0.5 ETH to USDC on Uniswap",
		"current_gas": 12,
		"recent": [
			{"timestamp": "2025-01-01T00:00:00Z", "gas_gwei": 10.5},
			{"timestamp": "2025-01-01T00:01:00Z", "gas_gwei": 11, "block": 7}
		],
		"extra": true
	}`))
	require.NoError(t, err)
	assert.Equal(t, "swap 0.5 ETH to USDC on Uniswap", in.Tx)
	assert.Equal(t, 12.0, in.CurrentGas)
	require.Len(t, in.Recent, 2)
	assert.Equal(t, "2025-01-01T00:00:00Z", in.Recent[0].Timestamp)
	assert.Equal(t, 10.5, in.Recent[0].GasPrice)
	assert.Equal(t, 11.0, in.Recent[1].GasPrice)
}

func TestDecodeInput_EmptyRecent(t *testing.T) {
	in, err := DecodeInput([]byte(`{"tx":"","current_gas":3.5,"recent":[]}`))
	require.NoError(t, err)
	assert.Empty(t, in.Recent)
	assert.NotNil(t, in.Recent)
}

func TestDecodeInput_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"not json", `hello`, ""},
		{"empty", ``, ""},
		{"array", `[1,2]`, "expected object"},
		{"missing current_gas", `{"tx":"a","recent":[]}`, "missing field current_gas"},
		{"missing tx", `{"current_gas":1,"recent":[]}`, "missing field tx"},
		{"missing recent", `{"tx":"a","current_gas":1}`, "missing field recent"},
		{"string gas", `{"tx":"a","current_gas":"12","recent":[]}`, "current_gas"},
		{"null gas", `{"tx":"a","current_gas":null,"recent":[]}`, "current_gas"},
		{"number tx", `{"tx":1,"current_gas":1,"recent":[]}`, "tx"},
		{"recent object", `{"tx":"a","current_gas":1,"recent":{}}`, "recent"},
		{"point missing gas", `{"tx":"a","current_gas":1,"recent":[{"timestamp":"t"}]}`, "recent[0]"},
		{"point not object", `{"tx":"a","current_gas":1,"recent":[5]}`, "recent[0]"},
		{"overflowing gas", `{"tx":"a","current_gas":1e400,"recent":[]}`, "current_gas: number out of range"},
		{"overflowing point", `{"tx":"a","current_gas":1,"recent":[{"timestamp":"t","gas_gwei":-1e400}]}`, "recent[0]"},
		{"trailing data", `{"tx":"a","current_gas":1,"recent":[]} x`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeInput([]byte(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
			if tt.want != "" {
				assert.Contains(t, err.Error(), tt.want)
			}
		})
	}
}

func TestDecodeInput_InvalidUTF8(t *testing.T) {
	_, err := DecodeInput([]byte{'{', 0xff, 0xfe, '}'})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "UTF-8")
}

func TestEncodeOutput_FieldNames(t *testing.T) {
	data, err := EncodeOutput(&model.OptimizeOutput{
		SuggestedGas: 10.8,
		Risk:         true,
		OptimalTime:  "2025-01-01T00:03:00Z",
		Reason:       "median=11",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"suggested_gas":10.8,"risk":true,"optimal_time_iso":"2025-01-01T00:03:00Z","reason":"median=11"}`, string(data))
}

func TestEncodeError(t *testing.T) {
	assert.JSONEq(t, `{"error":"invalid input: \"quoted\""}`, string(EncodeError(`invalid input: "quoted"`)))
}

func TestEncodeInput_RoundTrip(t *testing.T) {
	data, err := EncodeInput(&model.OptimizeInput{Tx: "transfer", CurrentGas: 9})
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"recent":[]`))

	in, err := DecodeInput(data)
	require.NoError(t, err)
	assert.Equal(t, "transfer", in.Tx)
	assert.Equal(t, 9.0, in.CurrentGas)
}

func TestDecodeResult(t *testing.T) {
	out, err := DecodeResult([]byte(`{"suggested_gas":10.8,"risk":false,"optimal_time_iso":"2025-01-01T00:00:00Z","reason":"median=11"}`))
	require.NoError(t, err)
	assert.Equal(t, 10.8, out.SuggestedGas)
	assert.Equal(t, "median=11", out.Reason)

	_, err = DecodeResult(EncodeError("invalid input: missing field tx"))
	require.ErrorIs(t, err, ErrGuest)
	assert.Contains(t, err.Error(), "missing field tx")

	_, err = DecodeResult([]byte("garbage"))
	assert.Error(t, err)
}
