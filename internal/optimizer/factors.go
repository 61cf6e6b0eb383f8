package optimizer

import (
	"math"
	"strconv"
	"strings"
	"time"

	"GasWhisperer/internal/model"
)

// suggestPrice discounts whichever of current and median is higher by 10%,
// never dropping below the lower one.
func suggestPrice(current, median float64) float64 {
	if current > median {
		return math.Max(median, current*0.9)
	}
	return math.Max(current, median*0.9)
}

// isRisky flags a price above the 90th percentile of recent history.
func isRisky(current, p90 float64) bool {
	return current > p90
}

// optimalTime defers submission while prices are falling.
func optimalTime(trend model.Trend, now time.Time) time.Time {
	if trend == model.TrendFalling {
		return now.Add(DeferBy)
	}
	return now
}

// explainDecision always contains "median=<value>", with the value in its
// shortest exact decimal form.
func explainDecision(current float64, stats *model.GasStats) string {
	var b strings.Builder
	if current > stats.Median {
		b.WriteString("current gas above median=")
		b.WriteString(formatGwei(stats.Median))
		b.WriteString(" gwei, lowering toward median")
	} else {
		b.WriteString("current gas at or below median=")
		b.WriteString(formatGwei(stats.Median))
		b.WriteString(" gwei")
	}
	if stats.Trend == model.TrendFalling {
		b.WriteString("; gas expected to drop in ~3 minutes")
	}
	return b.String()
}

func formatGwei(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// roundCents rounds half away from zero to 2 decimal places.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
