package calculator

// CalculateMean returns the arithmetic mean of prices. The divisor is floored at 1,
// so an empty slice yields 0.
func CalculateMean(prices []float64) float64 {
	sum := 0.0
	for _, p := range prices {
		sum += p
	}
	n := len(prices)
	if n < 1 {
		n = 1
	}
	return sum / float64(n)
}

// CalculateHalfAverages splits the chronological prices at len/2 and returns the mean of
// the older half and the mean of the newer half.
func CalculateHalfAverages(prices []float64) (firstAvg, lastAvg float64) {
	mid := len(prices) / 2
	return CalculateMean(prices[:mid]), CalculateMean(prices[mid:])
}
