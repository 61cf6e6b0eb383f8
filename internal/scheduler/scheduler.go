package scheduler

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"GasWhisperer/internal/codec"
	"GasWhisperer/internal/collector"
	"GasWhisperer/internal/model"
	"GasWhisperer/internal/report"
)

// Optimizer runs one serialized request and returns the serialized response.
// Both abi.Handler and host.Runner satisfy it.
type Optimizer interface {
	Optimize(ctx context.Context, request []byte) ([]byte, error)
}

// Scheduler re-evaluates the gas history on a cron schedule. Ticks share no state.
type Scheduler struct {
	Cron       *cron.Cron
	Collector  *collector.Collector
	Optimizer  Optimizer
	Logger     *zap.SugaredLogger
	Tx         string
	CurrentGas float64
	Ctx        context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, opt Optimizer, logger *zap.SugaredLogger, tx string, currentGas float64) *Scheduler {
	return &Scheduler{
		Cron:       cron.New(cron.WithSeconds()),
		Collector:  col,
		Optimizer:  opt,
		Logger:     logger,
		Tx:         tx,
		CurrentGas: currentGas,
		Ctx:        ctx,
	}
}

// Register adds the evaluation task on spec (six-field cron with seconds, or a descriptor).
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.tick); err != nil {
		return fmt.Errorf("register watch task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.Logger.Infof("[INFO] scheduler started")
}

// Stop stops the cron scheduler and waits for a running tick to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.Logger.Infof("[INFO] scheduler stopped")
}

// RunNow evaluates the current history once.
func (s *Scheduler) RunNow() (*model.OptimizeInput, *model.OptimizeOutput, error) {
	in, err := s.Collector.Collect(s.Tx, s.CurrentGas)
	if err != nil {
		return nil, nil, err
	}
	req, err := codec.EncodeInput(in)
	if err != nil {
		return nil, nil, fmt.Errorf("encode request: %w", err)
	}
	resp, err := s.Optimizer.Optimize(s.Ctx, req)
	if err != nil {
		return nil, nil, fmt.Errorf("optimize: %w", err)
	}
	out, err := codec.DecodeResult(resp)
	if err != nil {
		return nil, nil, err
	}
	return in, out, nil
}

func (s *Scheduler) tick() {
	id := uuid.NewString()
	in, out, err := s.RunNow()
	if err != nil {
		s.Logger.Errorf("[ERROR] tick %s: %v", id, err)
		return
	}
	s.Logger.Infof("[INFO] tick %s: samples=%d current=%.2f suggested=%.2f risk=%v send_at=%s reason=%q",
		id, len(in.Recent), in.CurrentGas, out.SuggestedGas, out.Risk, out.OptimalTime, out.Reason)
	s.Logger.Infof("[INFO] tick %s: %s", id, report.TrendMessage(in.Recent))
	if out.Risk {
		s.Logger.Warnf("[WARN] tick %s: current gas %.2f is above the 90th percentile", id, in.CurrentGas)
	}
}
