package model

// RecentPoint is a single historical gas-price sample.
type RecentPoint struct {
	Timestamp string  `json:"timestamp"` // ISO-8601, display only
	GasPrice  float64 `json:"gas_gwei"`
}

// OptimizeInput is the request handed to the optimizer.
// Recent is expected oldest-first; the order is trusted, not checked.
type OptimizeInput struct {
	Tx         string        `json:"tx"`
	CurrentGas float64       `json:"current_gas"`
	Recent     []RecentPoint `json:"recent"`
}

// Prices returns the sample prices in their original order.
func (in *OptimizeInput) Prices() []float64 {
	prices := make([]float64, len(in.Recent))
	for i, p := range in.Recent {
		prices[i] = p.GasPrice
	}
	return prices
}

// OptimizeOutput is the optimizer's answer.
type OptimizeOutput struct {
	SuggestedGas float64 `json:"suggested_gas"`
	Risk         bool    `json:"risk"`
	OptimalTime  string  `json:"optimal_time_iso"` // RFC 3339
	Reason       string  `json:"reason"`
}

// ErrorOutput is returned across the boundary instead of OptimizeOutput when the request is unusable.
type ErrorOutput struct {
	Error string `json:"error"`
}
