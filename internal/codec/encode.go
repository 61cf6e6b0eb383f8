package codec

import (
	jsoniter "github.com/json-iterator/go"

	"GasWhisperer/internal/model"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// EncodeOutput serializes a successful result.
func EncodeOutput(out *model.OptimizeOutput) ([]byte, error) {
	return json.Marshal(out)
}

// EncodeError serializes an error payload. It cannot fail for a plain string, so a
// hand-built fallback is only reached if the encoder itself misbehaves.
func EncodeError(msg string) []byte {
	data, err := json.Marshal(&model.ErrorOutput{Error: msg})
	if err != nil {
		return []byte(`{"error":"internal error"}`)
	}
	return data
}

// EncodeInput serializes a request, used by tools that build requests for the guest.
func EncodeInput(in *model.OptimizeInput) ([]byte, error) {
	if in.Recent == nil {
		cp := *in
		cp.Recent = []model.RecentPoint{}
		in = &cp
	}
	return json.Marshal(in)
}
