// Package config handles global configuration loading using viper.
package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"

	"firestige.xyz/erratic/internal/core"
)

// GlobalConfig is the top-level configuration. It maps to the `erratic:`
// root key in YAML.
type GlobalConfig struct {
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Replay  ReplayConfig  `mapstructure:"replay"`
	Model   ModelConfig   `mapstructure:"model"`
}

// ─── Log ───

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string           `mapstructure:"level"`  // debug / info / warn / error
	Format string           `mapstructure:"format"` // json / text
	File   FileOutputConfig `mapstructure:"file"`
}

// FileOutputConfig configures optional rotating file log output.
type FileOutputConfig struct {
	Enabled  bool           `mapstructure:"enabled"`
	Path     string         `mapstructure:"path"`
	Rotation RotationConfig `mapstructure:"rotation"`
}

// RotationConfig configures log file rotation.
type RotationConfig struct {
	MaxSizeMB  int  `mapstructure:"max_size_mb"`
	MaxAgeDays int  `mapstructure:"max_age_days"`
	MaxBackups int  `mapstructure:"max_backups"`
	Compress   bool `mapstructure:"compress"`
}

// ─── Metrics ───

// MetricsConfig contains Prometheus metrics settings.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Listen  string `mapstructure:"listen"`
	Path    string `mapstructure:"path"`
}

// ─── Replay ───

// ReplayConfig selects and configures the packet source driven through the
// error model.
type ReplayConfig struct {
	Source    string          `mapstructure:"source"` // pcap / synthetic
	Pcap      PcapConfig      `mapstructure:"pcap"`
	Synthetic SyntheticConfig `mapstructure:"synthetic"`
}

// PcapConfig configures offline pcap replay.
type PcapConfig struct {
	Path string `mapstructure:"path"`
}

// SyntheticConfig configures the synthetic packet generator.
type SyntheticConfig struct {
	Count   int   `mapstructure:"count"`
	MinSize int   `mapstructure:"min_size"` // bytes
	MaxSize int   `mapstructure:"max_size"` // bytes
	Seed    int64 `mapstructure:"seed"`
}

// ─── Model ───

// ModelConfig names the error model and carries its free-form options; the
// model factory decodes them per type.
type ModelConfig struct {
	Type    string         `mapstructure:"type"`
	Options map[string]any `mapstructure:"options"`
}

// ─── Loading ───

// configRoot is the top-level wrapper matching the YAML structure `erratic: ...`.
type configRoot struct {
	Erratic GlobalConfig `mapstructure:"erratic"`
}

// Load loads configuration from file. The YAML file uses `erratic:` as root
// key; env vars override via the key replacer (e.g. key "erratic.log.level"
// → env "ERRATIC_LOG_LEVEL").
func Load(path string) (*GlobalConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	var root configRoot
	if err := v.Unmarshal(&root); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg := root.Erratic

	if err := cfg.ValidateAndApplyDefaults(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default values. All keys carry the "erratic." prefix to
// match the YAML root wrapper.
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("erratic.log.level", "info")
	v.SetDefault("erratic.log.format", "text")
	v.SetDefault("erratic.log.file.enabled", false)
	v.SetDefault("erratic.log.file.path", "/var/log/erratic/erratic.log")
	v.SetDefault("erratic.log.file.rotation.max_size_mb", 100)
	v.SetDefault("erratic.log.file.rotation.max_age_days", 30)
	v.SetDefault("erratic.log.file.rotation.max_backups", 5)
	v.SetDefault("erratic.log.file.rotation.compress", true)

	// Metrics defaults
	v.SetDefault("erratic.metrics.enabled", false)
	v.SetDefault("erratic.metrics.listen", ":9091")
	v.SetDefault("erratic.metrics.path", "/metrics")

	// Replay defaults
	v.SetDefault("erratic.replay.source", "synthetic")
	v.SetDefault("erratic.replay.synthetic.count", 1000)
	v.SetDefault("erratic.replay.synthetic.min_size", 64)
	v.SetDefault("erratic.replay.synthetic.max_size", 1500)
	v.SetDefault("erratic.replay.synthetic.seed", 1)

	// Model defaults
	v.SetDefault("erratic.model.type", "rate")
}

// ValidateAndApplyDefaults validates configuration and applies runtime
// defaults.
func (cfg *GlobalConfig) ValidateAndApplyDefaults() error {
	// ── Log validation ──
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Log.Level] {
		return fmt.Errorf("%w: log level %q (must be debug/info/warn/error)", core.ErrConfigInvalid, cfg.Log.Level)
	}
	if cfg.Log.Format != "json" && cfg.Log.Format != "text" {
		return fmt.Errorf("%w: log format %q (must be json/text)", core.ErrConfigInvalid, cfg.Log.Format)
	}
	if cfg.Log.File.Enabled && cfg.Log.File.Path == "" {
		return fmt.Errorf("%w: log.file.path is required when file output is enabled", core.ErrConfigInvalid)
	}

	// ── Replay validation ──
	switch cfg.Replay.Source {
	case "pcap":
		if cfg.Replay.Pcap.Path == "" {
			return fmt.Errorf("%w: replay.pcap.path is required when source is pcap", core.ErrConfigInvalid)
		}
	case "synthetic":
		syn := &cfg.Replay.Synthetic
		if syn.Count < 0 {
			return fmt.Errorf("%w: replay.synthetic.count must not be negative", core.ErrConfigInvalid)
		}
		if syn.MinSize <= 0 {
			syn.MinSize = 64
		}
		if syn.MaxSize < syn.MinSize {
			syn.MaxSize = syn.MinSize
		}
	default:
		return fmt.Errorf("%w: replay.source %q (must be pcap/synthetic)", core.ErrConfigInvalid, cfg.Replay.Source)
	}

	// ── Model validation ──
	// Out-of-range rates are absorbed by the model itself; only values that
	// have no defined behavior at all are rejected here.
	if cfg.Model.Type == "" {
		return fmt.Errorf("%w: model.type is required", core.ErrConfigInvalid)
	}
	if rate, ok := cfg.Model.Options["rate"]; ok {
		if f, isFloat := rate.(float64); isFloat && math.IsNaN(f) {
			return fmt.Errorf("%w: model rate must not be NaN", core.ErrConfigInvalid)
		}
	}

	return nil
}
