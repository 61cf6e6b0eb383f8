// Command gasopt is the developer front end for the gas optimizer: it runs requests
// natively or through the compiled wasm guest, and can re-evaluate a history file
// on a schedule.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"GasWhisperer/internal/abi"
	"GasWhisperer/internal/collector"
	"GasWhisperer/internal/config"
	"GasWhisperer/internal/host"
	"GasWhisperer/internal/logging"
	"GasWhisperer/internal/scheduler"
)

var (
	cfgPath  string
	wasmPath string

	cfg    *config.Config
	logger *zap.SugaredLogger
	logOut io.Closer
)

var rootCmd = &cobra.Command{
	Use:           "gasopt",
	Short:         "Suggest a gas price from recent history",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if wasmPath != "" {
			cfg.Optimizer.WasmPath = wasmPath
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("config validation: %w", err)
		}
		logger, logOut, err = logging.New(logging.Options{
			Level:      cfg.Log.Level,
			File:       cfg.Log.File,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAgeDays: cfg.Log.MaxAgeDays,
		})
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		return nil
	},
}

func init() {
	defaultCfg := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		defaultCfg = v
	}
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", defaultCfg, "path to the YAML config")
	rootCmd.PersistentFlags().StringVar(&wasmPath, "wasm", "", "run through this compiled guest module instead of natively")

	rootCmd.AddCommand(optimizeCmd, trendCmd, explainCmd, watchCmd)
}

// newOptimizer returns the native handler, or a wasm runner when a guest module is configured.
// The returned func releases the runner.
func newOptimizer(ctx context.Context) (scheduler.Optimizer, func(), error) {
	if cfg.Optimizer.WasmPath == "" {
		logger.Debugf("[DEBUG] using native optimizer")
		return abi.NewHandler(), func() {}, nil
	}

	wasm, err := os.ReadFile(cfg.Optimizer.WasmPath)
	if err != nil {
		return nil, nil, fmt.Errorf("read guest module: %w", err)
	}
	r, err := host.NewRunner(ctx, wasm,
		host.WithLogger(logger),
		host.WithMemoryLimitPages(cfg.Optimizer.MemoryLimitPages))
	if err != nil {
		return nil, nil, err
	}
	logger.Infof("[INFO] using guest module %s", cfg.Optimizer.WasmPath)
	return r, func() {
		if err := r.Close(context.Background()); err != nil {
			logger.Warnf("[WARN] close guest module: %v", err)
		}
	}, nil
}

func newCollector() *collector.Collector {
	return collector.NewCollector(collector.NewFileSource(cfg.History.File), cfg.History.Limit)
}

// run executes the command tree and releases the log file even when the command fails,
// since cobra skips post-run hooks after an error.
func run() error {
	defer closeLogger()
	return rootCmd.Execute()
}

func closeLogger() {
	if logger != nil {
		_ = logger.Sync()
	}
	if logOut != nil {
		_ = logOut.Close()
		logOut = nil
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "gasopt: %v\n", err)
		os.Exit(1)
	}
}
