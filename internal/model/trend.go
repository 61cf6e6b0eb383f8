package model

// Trend describes the direction of recent gas prices.
type Trend string

const (
	// TrendFalling means the newer half of the window averages below the older half.
	TrendFalling Trend = "falling"
	// TrendRising means the newer half averages above the older half.
	TrendRising Trend = "rising"
	// TrendStable means both halves average the same.
	TrendStable Trend = "stable"
)

// GasStats holds the order statistics computed over a history window.
type GasStats struct {
	Median    float64
	P90       float64
	FirstAvg  float64 // mean of the older half
	LastAvg   float64 // mean of the newer half
	Trend     Trend
	NumPoints int
}
