package calculator

import (
	"errors"
	"math"
	"sort"
)

// ErrNoData is returned by the order statistics when there is nothing to rank.
var ErrNoData = errors.New("no price data provided")

// SortedCopy returns an ascending copy of prices, leaving the input untouched.
func SortedCopy(prices []float64) []float64 {
	sorted := make([]float64, len(prices))
	copy(sorted, prices)
	sort.Float64s(sorted)
	return sorted
}

// CalculateMedian returns the median of an ascending slice: the middle element for odd
// lengths, the mean of the two central elements for even lengths.
func CalculateMedian(sorted []float64) (float64, error) {
	n := len(sorted)
	if n == 0 {
		return 0, ErrNoData
	}
	if n%2 == 1 {
		return sorted[n/2], nil
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2, nil
}

// CalculateNearestRank returns the nearest-rank percentile of an ascending slice.
// The rank is ceil(n*q)-1 clamped to [0, n-1]; no interpolation is done.
func CalculateNearestRank(sorted []float64, q float64) (float64, error) {
	n := len(sorted)
	if n == 0 {
		return 0, ErrNoData
	}
	if q < 0 || q > 1 || math.IsNaN(q) {
		return 0, errors.New("quantile must be within [0, 1]")
	}
	idx := int(math.Ceil(float64(n)*q)) - 1
	if idx < 0 {
		idx = 0
	}
	if idx > n-1 {
		idx = n - 1
	}
	return sorted[idx], nil
}

// CalculateP90 is the 90th nearest-rank percentile.
func CalculateP90(sorted []float64) (float64, error) {
	return CalculateNearestRank(sorted, 0.9)
}
