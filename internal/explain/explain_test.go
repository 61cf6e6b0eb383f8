package explain

import (
	"strings"
	"testing"
)

func TestExplain(t *testing.T) {
	tests := []struct {
		tx   string
		want string
	}{
		{"swap 0.5 ETH to USDC on Uniswap", "swapping"},
		{"SushiSwap route", "swapping"},
		{"Approve USDC for router", "approves"},
		{"transfer 10 DAI to 0xabc", "transfers"},
		{"approve then transfer", "approves"},
		{"mint NFT", "Generic"},
		{"", "Generic"},
	}
	for _, tt := range tests {
		if got := Explain(tt.tx); !strings.Contains(got, tt.want) {
			t.Errorf("Explain(%q) = %q, want it to mention %q", tt.tx, got, tt.want)
		}
	}
}
