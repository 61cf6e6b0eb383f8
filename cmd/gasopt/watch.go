package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"GasWhisperer/internal/scheduler"
)

var watchRunNow bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-evaluate the history file on the configured cron schedule",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		opt, release, err := newOptimizer(ctx)
		if err != nil {
			return err
		}
		defer release()

		sched := scheduler.NewScheduler(ctx, newCollector(), opt, logger, cfg.Watch.Tx, cfg.Watch.CurrentGas)
		if err := sched.Register(cfg.Watch.Cron); err != nil {
			return err
		}
		sched.Start()
		defer sched.Stop()

		if watchRunNow {
			logger.Infof("[INFO] --now set, evaluating immediately")
			if _, out, err := sched.RunNow(); err != nil {
				logger.Errorf("[ERROR] initial evaluation: %v", err)
			} else {
				logger.Infof("[INFO] suggested %.2f gwei, risk=%v, send at %s", out.SuggestedGas, out.Risk, out.OptimalTime)
			}
		}

		logger.Infof("[INFO] watching %s on %q. Press Ctrl+C to stop.", cfg.History.File, cfg.Watch.Cron)
		<-ctx.Done()
		logger.Infof("[INFO] shutdown signal received, stopping...")
		return nil
	},
}

func init() {
	watchCmd.Flags().BoolVar(&watchRunNow, "now", false, "evaluate once immediately before waiting for the schedule")
}
