package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Optimizer struct {
		// WasmPath, when set, runs requests through the compiled guest instead of natively.
		WasmPath         string `yaml:"wasm_path"`
		MemoryLimitPages uint32 `yaml:"memory_limit_pages"`
	} `yaml:"optimizer"`
	History struct {
		File  string `yaml:"file"`
		Limit int    `yaml:"limit"`
	} `yaml:"history"`
	Watch struct {
		Cron       string  `yaml:"cron"`
		Tx         string  `yaml:"tx"`
		CurrentGas float64 `yaml:"current_gas"`
	} `yaml:"watch"`
	Log struct {
		Level      string `yaml:"level"`
		File       string `yaml:"file"`
		MaxSizeMB  int    `yaml:"max_size_mb"`
		MaxBackups int    `yaml:"max_backups"`
		MaxAgeDays int    `yaml:"max_age_days"`
	} `yaml:"log"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("GASOPT_WASM_PATH"); v != "" {
		cfg.Optimizer.WasmPath = v
	}
	if v := os.Getenv("GASOPT_HISTORY_FILE"); v != "" {
		cfg.History.File = v
	}
	if v := os.Getenv("GASOPT_HISTORY_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.History.Limit = n
		}
	}
	if v := os.Getenv("GASOPT_WATCH_CRON"); v != "" {
		cfg.Watch.Cron = v
	}
	if v := os.Getenv("GASOPT_CURRENT_GAS"); v != "" {
		if gas, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Watch.CurrentGas = gas
		}
	}
	if v := os.Getenv("GASOPT_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("GASOPT_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}

	// Defaults
	if cfg.Optimizer.MemoryLimitPages == 0 {
		cfg.Optimizer.MemoryLimitPages = 1024
	}
	if cfg.History.File == "" {
		cfg.History.File = "data/gas.json"
	}
	if cfg.History.Limit == 0 {
		cfg.History.Limit = 20
	}
	if cfg.Watch.Cron == "" {
		cfg.Watch.Cron = "*/15 * * * * *"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.MaxSizeMB == 0 {
		cfg.Log.MaxSizeMB = 50
	}
	if cfg.Log.MaxBackups == 0 {
		cfg.Log.MaxBackups = 3
	}
	if cfg.Log.MaxAgeDays == 0 {
		cfg.Log.MaxAgeDays = 14
	}

	return cfg, nil
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if c.History.Limit < 0 {
		return fmt.Errorf("history.limit must not be negative")
	}
	if c.Watch.CurrentGas < 0 {
		return fmt.Errorf("watch.current_gas must not be negative")
	}
	if _, err := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor).Parse(c.Watch.Cron); err != nil {
		return fmt.Errorf("watch.cron: %w", err)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	return nil
}
