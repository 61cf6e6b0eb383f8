package optimizer

import (
	"time"

	"GasWhisperer/internal/calculator"
	"GasWhisperer/internal/model"
)

// DeferBy is how far the submission is pushed out when gas is trending down.
const DeferBy = 3 * time.Minute

// NoRecentDataReason is reported when the history is empty.
const NoRecentDataReason = "No recent data"

// Optimize computes the suggested gas price, the risk flag and the recommended
// submission time for in. now is the reference point for the recommended time;
// the result is otherwise a pure function of in.
func Optimize(in *model.OptimizeInput, now time.Time) *model.OptimizeOutput {
	out, _ := Evaluate(in, now)
	return out
}

// Evaluate is Optimize that also returns the statistics the decision was based on.
// Stats is nil when the history is empty.
func Evaluate(in *model.OptimizeInput, now time.Time) (*model.OptimizeOutput, *model.GasStats) {
	now = now.UTC()

	stats, err := calculator.CalculateStats(in.Prices())
	if err != nil {
		return &model.OptimizeOutput{
			SuggestedGas: in.CurrentGas,
			Risk:         false,
			OptimalTime:  now.Format(time.RFC3339),
			Reason:       NoRecentDataReason,
		}, nil
	}

	return &model.OptimizeOutput{
		SuggestedGas: roundCents(suggestPrice(in.CurrentGas, stats.Median)),
		Risk:         isRisky(in.CurrentGas, stats.P90),
		OptimalTime:  optimalTime(stats.Trend, now).Format(time.RFC3339),
		Reason:       explainDecision(in.CurrentGas, stats),
	}, stats
}
