// Package config loads the automation settings from YAML and WINAUTO_*
// environment variables.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. WINAUTO_INPUT_MOVE_STEP_MS.
const EnvPrefix = "WINAUTO"

// Backend names accepted in the backend setting.
const (
	BackendSendInput = "sendinput"
	BackendRobotgo   = "robotgo"
)

// Config represents the automation configuration
type Config struct {
	Backend string        `yaml:"backend" mapstructure:"backend"`
	Input   InputConfig   `yaml:"input" mapstructure:"input"`
	Locate  LocateConfig  `yaml:"locate" mapstructure:"locate"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// InputConfig contains the default timings of the input sequencer, in
// milliseconds.
type InputConfig struct {
	MoveDurationMS  int    `yaml:"move_duration_ms" mapstructure:"move_duration_ms"`
	MoveStepMS      int    `yaml:"move_step_ms" mapstructure:"move_step_ms"`
	ClickIntervalMS int    `yaml:"click_interval_ms" mapstructure:"click_interval_ms"`
	PressIntervalMS int    `yaml:"press_interval_ms" mapstructure:"press_interval_ms"`
	WaitMS          int    `yaml:"wait_ms" mapstructure:"wait_ms"`
	Curve           string `yaml:"curve" mapstructure:"curve"`
	PerMonitorDPI   bool   `yaml:"per_monitor_dpi" mapstructure:"per_monitor_dpi"`
}

// LocateConfig contains screen locator settings
type LocateConfig struct {
	Confidence      float64 `yaml:"confidence" mapstructure:"confidence"`
	All             bool    `yaml:"all" mapstructure:"all"`
	PollIntervalMS  int     `yaml:"poll_interval_ms" mapstructure:"poll_interval_ms"`
	MaxHashDistance int     `yaml:"max_hash_distance" mapstructure:"max_hash_distance"`
}

// LoggingConfig contains logger settings
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Backend: BackendSendInput,
		Input: InputConfig{
			MoveDurationMS:  100,
			MoveStepMS:      5,
			ClickIntervalMS: 20,
			PressIntervalMS: 20,
			WaitMS:          1000,
			Curve:           "linear",
			PerMonitorDPI:   true,
		},
		Locate: LocateConfig{
			Confidence:      0.9,
			All:             true,
			PollIntervalMS:  250,
			MaxHashDistance: 2,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Backend) {
	case "", BackendSendInput, BackendRobotgo:
	default:
		return fmt.Errorf("backend must be %s or %s, got %q", BackendSendInput, BackendRobotgo, c.Backend)
	}

	switch {
	case c.Input.MoveDurationMS < 0:
		return fmt.Errorf("input.move_duration_ms must be >= 0, got %d", c.Input.MoveDurationMS)
	case c.Input.MoveStepMS <= 0:
		return fmt.Errorf("input.move_step_ms must be > 0, got %d", c.Input.MoveStepMS)
	case c.Input.ClickIntervalMS < 0:
		return fmt.Errorf("input.click_interval_ms must be >= 0, got %d", c.Input.ClickIntervalMS)
	case c.Input.PressIntervalMS < 0:
		return fmt.Errorf("input.press_interval_ms must be >= 0, got %d", c.Input.PressIntervalMS)
	case c.Input.WaitMS < 0:
		return fmt.Errorf("input.wait_ms must be >= 0, got %d", c.Input.WaitMS)
	case c.Input.Curve != "linear" && c.Input.Curve != "smooth":
		return fmt.Errorf("input.curve must be linear or smooth, got %q", c.Input.Curve)
	case c.Locate.Confidence < 0 || c.Locate.Confidence > 1:
		return fmt.Errorf("locate.confidence must be within [0, 1], got %g", c.Locate.Confidence)
	case c.Locate.PollIntervalMS <= 0:
		return fmt.Errorf("locate.poll_interval_ms must be > 0, got %d", c.Locate.PollIntervalMS)
	}
	return nil
}

// Millis converts a millisecond setting.
func Millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// NewViper returns a viper instance seeded with the defaults and bound to
// the WINAUTO_* environment. path may be empty.
func NewViper(path string) *viper.Viper {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	}
	return v
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("backend", cfg.Backend)
	v.SetDefault("input.move_duration_ms", cfg.Input.MoveDurationMS)
	v.SetDefault("input.move_step_ms", cfg.Input.MoveStepMS)
	v.SetDefault("input.click_interval_ms", cfg.Input.ClickIntervalMS)
	v.SetDefault("input.press_interval_ms", cfg.Input.PressIntervalMS)
	v.SetDefault("input.wait_ms", cfg.Input.WaitMS)
	v.SetDefault("input.curve", cfg.Input.Curve)
	v.SetDefault("input.per_monitor_dpi", cfg.Input.PerMonitorDPI)
	v.SetDefault("locate.confidence", cfg.Locate.Confidence)
	v.SetDefault("locate.all", cfg.Locate.All)
	v.SetDefault("locate.poll_interval_ms", cfg.Locate.PollIntervalMS)
	v.SetDefault("locate.max_hash_distance", cfg.Locate.MaxHashDistance)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
}

// Load reads the config file at path (optional) and applies environment
// overrides on top of the defaults.
func Load(path string) (*Config, error) {
	v := NewViper(path)
	if path != "" {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Write saves cfg as YAML with two space indentation.
func Write(cfg *Config, path string) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to close YAML encoder: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
