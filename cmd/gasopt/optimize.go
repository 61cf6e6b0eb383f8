package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"GasWhisperer/internal/codec"
	"GasWhisperer/internal/model"
	"GasWhisperer/internal/report"
)

var (
	optimizeTx         string
	optimizeCurrentGas float64
	optimizeFormat     string
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize [request.json|-]",
	Short: "Run one optimization request",
	Long: "Run one optimization request. With a file (or - for stdin) the request is sent as is;\n" +
		"without one it is built from the configured history file, --tx and --current-gas.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		req, err := buildRequest(args)
		if err != nil {
			return err
		}

		opt, release, err := newOptimizer(ctx)
		if err != nil {
			return err
		}
		defer release()

		resp, err := opt.Optimize(ctx, req)
		if err != nil {
			return err
		}

		out, err := codec.DecodeResult(resp)
		if optimizeFormat == "json" || err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), string(resp))
			return err
		}

		// Malformed requests were answered with an error payload above.
		in, err := codec.DecodeInput(req)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), in, out)
	},
}

func init() {
	optimizeCmd.Flags().StringVar(&optimizeTx, "tx", "", "transaction description when building the request from history")
	optimizeCmd.Flags().Float64Var(&optimizeCurrentGas, "current-gas", 0, "gas price you are about to pay, in gwei")
	optimizeCmd.Flags().StringVar(&optimizeFormat, "format", "json", "output format: json, text or table")
}

func buildRequest(args []string) ([]byte, error) {
	if len(args) == 1 {
		if args[0] == "-" {
			return io.ReadAll(os.Stdin)
		}
		return os.ReadFile(args[0])
	}

	in, err := newCollector().Collect(optimizeTx, optimizeCurrentGas)
	if err != nil {
		return nil, err
	}
	logger.Debugf("[DEBUG] built request from %d history points", len(in.Recent))
	return codec.EncodeInput(in)
}

func render(w io.Writer, in *model.OptimizeInput, out *model.OptimizeOutput) error {
	now := time.Now().UTC()
	switch optimizeFormat {
	case "table":
		return report.RenderTable(w, in, out, now)
	case "text":
		_, err := fmt.Fprint(w, report.FormatReport(in, out, now))
		return err
	default:
		return fmt.Errorf("unknown format %q", optimizeFormat)
	}
}
