package calculator

import "GasWhisperer/internal/model"

// ClassifyTrend compares the mean of the newer half against the older half.
func ClassifyTrend(firstAvg, lastAvg float64) model.Trend {
	switch {
	case lastAvg < firstAvg:
		return model.TrendFalling
	case lastAvg > firstAvg:
		return model.TrendRising
	default:
		return model.TrendStable
	}
}

// CalculateStats computes median, p90 and the chronological trend over prices,
// which must be in chronological order. Returns ErrNoData for an empty slice.
func CalculateStats(prices []float64) (*model.GasStats, error) {
	sorted := SortedCopy(prices)
	median, err := CalculateMedian(sorted)
	if err != nil {
		return nil, err
	}
	p90, err := CalculateP90(sorted)
	if err != nil {
		return nil, err
	}
	firstAvg, lastAvg := CalculateHalfAverages(prices)
	return &model.GasStats{
		Median:    median,
		P90:       p90,
		FirstAvg:  firstAvg,
		LastAvg:   lastAvg,
		Trend:     ClassifyTrend(firstAvg, lastAvg),
		NumPoints: len(prices),
	}, nil
}
