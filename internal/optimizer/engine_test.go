package optimizer

import (
	"strings"
	"testing"
	"time"

	"pgregory.net/rapid"

	"GasWhisperer/internal/model"
)

var now = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

func input(current float64, prices ...float64) *model.OptimizeInput {
	in := &model.OptimizeInput{Tx: "swap 0.5 ETH to USDC on Uniswap", CurrentGas: current}
	for i, p := range prices {
		in.Recent = append(in.Recent, model.RecentPoint{
			Timestamp: now.Add(time.Duration(i-len(prices)) * time.Minute).Format(time.RFC3339),
			GasPrice:  p,
		})
	}
	return in
}

func parseTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("optimal time %q is not RFC 3339: %v", s, err)
	}
	return ts
}

func TestOptimize_NoRecentData(t *testing.T) {
	for _, current := range []float64{0, 12, 12.345, 1e6} {
		out := Optimize(input(current), now)
		if out.SuggestedGas != current {
			t.Errorf("current %v: expected suggested %v, got %v", current, current, out.SuggestedGas)
		}
		if out.Risk {
			t.Errorf("current %v: expected no risk", current)
		}
		if out.Reason != "No recent data" {
			t.Errorf("current %v: unexpected reason %q", current, out.Reason)
		}
		if !parseTime(t, out.OptimalTime).Equal(now) {
			t.Errorf("current %v: expected optimal time now, got %s", current, out.OptimalTime)
		}
	}
}

func TestOptimize_MedianInReason(t *testing.T) {
	out := Optimize(input(15, 10, 20, 30), now)
	if !strings.Contains(out.Reason, "median=20") {
		t.Errorf("expected reason to contain median=20, got %q", out.Reason)
	}
	out = Optimize(input(15, 10, 20, 30, 40), now)
	if !strings.Contains(out.Reason, "median=25") {
		t.Errorf("expected reason to contain median=25, got %q", out.Reason)
	}
	out = Optimize(input(1, 10, 13), now)
	if !strings.Contains(out.Reason, "median=11.5") {
		t.Errorf("expected reason to contain median=11.5, got %q", out.Reason)
	}
}

func TestOptimize_RiskAboveP90(t *testing.T) {
	history := []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	if out := Optimize(input(95, history...), now); !out.Risk {
		t.Error("expected risk for current gas 95 above p90 90")
	}
	if out := Optimize(input(85, history...), now); out.Risk {
		t.Error("expected no risk for current gas 85 below p90 90")
	}
	if out := Optimize(input(90, history...), now); out.Risk {
		t.Error("expected no risk for current gas equal to p90")
	}
}

func TestOptimize_SuggestedPrice(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		history []float64
		want    float64
	}{
		{"above median, discount current", 100, []float64{50, 60, 70}, 90},
		{"above median, floored at median", 62, []float64{50, 60, 70}, 60},
		{"below median, discounted median", 40, []float64{50, 60, 70}, 54},
		{"below median, floored at current", 58, []float64{50, 60, 70}, 58},
		{"equal to median", 60, []float64{50, 60, 70}, 60},
		{"rounded to cents", 13.333, []float64{10, 11, 12}, 12},
		{"rounded discount", 12.345, []float64{1, 2, 3}, 11.11},
	}
	for _, tt := range tests {
		out := Optimize(input(tt.current, tt.history...), now)
		if out.SuggestedGas != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, out.SuggestedGas)
		}
	}
}

func TestOptimize_TrendTiming(t *testing.T) {
	falling := Optimize(input(50, 100, 90, 80, 10, 5), now)
	if got := parseTime(t, falling.OptimalTime); !got.Equal(now.Add(3 * time.Minute)) {
		t.Errorf("falling prices: expected now+3m, got %s", falling.OptimalTime)
	}
	if !strings.Contains(falling.Reason, "drop") {
		t.Errorf("falling prices: expected drop hint in reason, got %q", falling.Reason)
	}

	rising := Optimize(input(50, 10, 20, 30, 90, 100), now)
	if got := parseTime(t, rising.OptimalTime); !got.Equal(now) {
		t.Errorf("rising prices: expected now, got %s", rising.OptimalTime)
	}

	// One sample: the older half is empty, so prices can never look like they are falling.
	single := Optimize(input(50, 40), now)
	if got := parseTime(t, single.OptimalTime); !got.Equal(now) {
		t.Errorf("single sample: expected now, got %s", single.OptimalTime)
	}
}

func TestOptimize_DoesNotReorderInput(t *testing.T) {
	in := input(10, 30, 10, 20)
	Optimize(in, now)
	if in.Recent[0].GasPrice != 30 || in.Recent[1].GasPrice != 10 || in.Recent[2].GasPrice != 20 {
		t.Errorf("input history reordered: %+v", in.Recent)
	}
}

func TestEvaluate_ReturnsStats(t *testing.T) {
	_, stats := Evaluate(input(10), now)
	if stats != nil {
		t.Errorf("expected nil stats for empty history, got %+v", stats)
	}
	_, stats = Evaluate(input(10, 100, 90, 80, 10, 5), now)
	if stats == nil || stats.Trend != model.TrendFalling || stats.Median != 80 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func historyGen() *rapid.Generator[[]float64] {
	return rapid.SliceOfN(rapid.Float64Range(0, 1000), 1, 50)
}

func TestOptimize_SuggestionFloors(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		history := historyGen().Draw(t, "history")
		current := rapid.Float64Range(0, 1500).Draw(t, "current")

		out, stats := Evaluate(input(current, history...), now)
		// Rounding to cents may shave up to half a cent off the floor.
		const slack = 0.005 + 1e-9
		if current > stats.Median {
			if out.SuggestedGas < stats.Median-slack {
				t.Fatalf("suggested %v below median %v", out.SuggestedGas, stats.Median)
			}
		} else if out.SuggestedGas < current-slack {
			t.Fatalf("suggested %v below current %v", out.SuggestedGas, current)
		}
		if out.Risk != (current > stats.P90) {
			t.Fatalf("risk %v inconsistent with current %v and p90 %v", out.Risk, current, stats.P90)
		}
	})
}

func TestOptimize_Idempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		history := rapid.SliceOfN(rapid.Float64Range(0, 1000), 0, 30).Draw(t, "history")
		current := rapid.Float64Range(0, 1500).Draw(t, "current")

		a := Optimize(input(current, history...), now)
		b := Optimize(input(current, history...), now)
		if *a != *b {
			t.Fatalf("outputs differ: %+v vs %+v", a, b)
		}
	})
}
