package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"GasWhisperer/internal/explain"
	"GasWhisperer/internal/report"
)

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Describe where gas prices are heading",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		points, err := newCollector().Source.Recent(cfg.History.Limit)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), report.TrendMessage(points))
		return nil
	},
}

var explainCmd = &cobra.Command{
	Use:   "explain <tx>",
	Short: "Explain a transaction description in plain words",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), explain.Explain(args[0]))
		return nil
	},
}
