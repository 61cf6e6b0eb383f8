package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"GasWhisperer/internal/calculator"
	"GasWhisperer/internal/explain"
	"GasWhisperer/internal/model"
)

// minTrendPoints is the shortest history a trend message is given for.
const minTrendPoints = 4

// TrendMessage summarizes the direction of recent gas prices in one sentence.
func TrendMessage(points []model.RecentPoint) string {
	if len(points) < minTrendPoints {
		return "Not enough data"
	}
	in := &model.OptimizeInput{Recent: points}
	first, last := calculator.CalculateHalfAverages(in.Prices())
	switch calculator.ClassifyTrend(first, last) {
	case model.TrendFalling:
		return "Gas is expected to drop in ~3 minutes"
	case model.TrendRising:
		return "Gas may rise in the next few minutes"
	default:
		return "Gas likely stable for the next few minutes"
	}
}

// WaitSeconds is how long to hold the transaction before submitting, never negative.
func WaitSeconds(out *model.OptimizeOutput, now time.Time) int {
	at, err := time.Parse(time.RFC3339, out.OptimalTime)
	if err != nil {
		return 0
	}
	wait := int(at.Sub(now) / time.Second)
	if wait < 0 {
		return 0
	}
	return wait
}

// FormatReport formats an optimizer result as plain text.
func FormatReport(in *model.OptimizeInput, out *model.OptimizeOutput, now time.Time) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Gas suggestion | %s\n\n", now.UTC().Format("2006-01-02 15:04:05")))
	if in.Tx != "" {
		b.WriteString(fmt.Sprintf("Transaction: %s\n", in.Tx))
		b.WriteString(fmt.Sprintf("  %s\n", explain.Explain(in.Tx)))
	}
	b.WriteString(fmt.Sprintf("Current gas: %s gwei (%d samples)\n", formatGwei(in.CurrentGas), len(in.Recent)))
	b.WriteString(fmt.Sprintf("Suggested gas: %.2f gwei\n", out.SuggestedGas))
	if out.Risk {
		b.WriteString("Risk: current gas is above the 90th percentile of recent blocks\n")
	} else {
		b.WriteString("Risk: none\n")
	}

	if wait := WaitSeconds(out, now); wait > 0 {
		b.WriteString(fmt.Sprintf("Send at: %s (wait %ds)\n", out.OptimalTime, wait))
	} else {
		b.WriteString("Send at: now\n")
	}
	b.WriteString(fmt.Sprintf("Reason: %s\n", out.Reason))
	return b.String()
}

// RenderTable writes the result as a table.
func RenderTable(w io.Writer, in *model.OptimizeInput, out *model.OptimizeOutput, now time.Time) error {
	data := pterm.TableData{
		{"Field", "Value"},
		{"current_gas", formatGwei(in.CurrentGas)},
		{"samples", strconv.Itoa(len(in.Recent))},
		{"suggested_gas", strconv.FormatFloat(out.SuggestedGas, 'f', 2, 64)},
		{"risk", strconv.FormatBool(out.Risk)},
		{"optimal_time_iso", out.OptimalTime},
		{"wait_seconds", strconv.Itoa(WaitSeconds(out, now))},
		{"reason", out.Reason},
	}
	s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

func formatGwei(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
