package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAsset    = "beep.wav"
	DefaultStepMs   = 10
	DefaultBubbleMs = 1
	DefaultRedrawMs = 10
	DefaultDebugMs  = 1
	DefaultTheme    = "minimal"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Asset  string       `yaml:"asset"`
	Audio  bool         `yaml:"audio"`
	Seed   int64        `yaml:"seed"`
	Theme  string       `yaml:"theme"`
	Pacing PacingConfig `yaml:"pacing"`
}

// PacingConfig holds the animation delays in milliseconds.
type PacingConfig struct {
	StepMs   int `yaml:"step_ms"`
	BubbleMs int `yaml:"bubble_ms"`
	RedrawMs int `yaml:"redraw_ms"`
	DebugMs  int `yaml:"debug_ms"`
}

func DefaultConfig() *Config {
	return &Config{
		Asset: DefaultAsset,
		Audio: true,
		Theme: DefaultTheme,
		Pacing: PacingConfig{
			StepMs:   DefaultStepMs,
			BubbleMs: DefaultBubbleMs,
			RedrawMs: DefaultRedrawMs,
			DebugMs:  DefaultDebugMs,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Init writes a validated cfg to path, refusing to replace an existing file.
func Init(path string, cfg *Config) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config: %s: %w", path, os.ErrExist)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	return Save(path, cfg)
}

func (c *Config) Validate() error {
	if c.Asset == "" {
		return fmt.Errorf("%w: asset path is empty", ErrInvalidConfig)
	}
	p := c.Pacing
	for name, ms := range map[string]int{
		"step_ms":   p.StepMs,
		"bubble_ms": p.BubbleMs,
		"redraw_ms": p.RedrawMs,
		"debug_ms":  p.DebugMs,
	} {
		if ms < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidConfig, name, ms)
		}
	}
	return nil
}

// ApplyPreset copies a preset's pacing over the current values.
func (c *Config) ApplyPreset(name string) error {
	p := GetPreset(name)
	if p == nil {
		return fmt.Errorf("%w: unknown preset %q (available: %v)", ErrInvalidConfig, name, ListPresets())
	}
	c.Pacing = *p
	return nil
}

func (c *Config) StepDelay() time.Duration   { return ms(c.Pacing.StepMs) }
func (c *Config) BubbleDelay() time.Duration { return ms(c.Pacing.BubbleMs) }
func (c *Config) RedrawDelay() time.Duration { return ms(c.Pacing.RedrawMs) }
func (c *Config) DebugDelay() time.Duration  { return ms(c.Pacing.DebugMs) }

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }
