// Package explain gives a one-line, plain-language reading of a transaction description.
package explain

import "strings"

// Explain classifies tx by keyword. Matching is case-insensitive and the first rule wins.
func Explain(tx string) string {
	s := strings.ToLower(tx)
	switch {
	case containsAny(s, "swap", "uniswap", "sushi"):
		return "You're swapping tokens (e.g., ETH → USDC) on a DEX such as Uniswap."
	case strings.Contains(s, "approve"):
		return "This transaction approves a contract to spend your tokens."
	case strings.Contains(s, "transfer"):
		return "This transfers tokens from one address to another."
	default:
		return "Generic transaction, could be a contract call or token transfer."
	}
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
