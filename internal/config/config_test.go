package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Asset != "beep.wav" {
		t.Errorf("expected asset beep.wav, got %s", cfg.Asset)
	}
	if cfg.StepDelay() != 10*time.Millisecond {
		t.Errorf("expected 10ms step delay, got %v", cfg.StepDelay())
	}
	if cfg.BubbleDelay() != time.Millisecond {
		t.Errorf("expected 1ms bubble delay, got %v", cfg.BubbleDelay())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortviz.yaml")
	data := []byte("asset: sounds/tone.wav\nseed: 42\npacing:\n  step_ms: 3\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Asset != "sounds/tone.wav" {
		t.Errorf("asset = %s", cfg.Asset)
	}
	if cfg.Seed != 42 {
		t.Errorf("seed = %d", cfg.Seed)
	}
	if cfg.Pacing.StepMs != 3 {
		t.Errorf("step_ms = %d", cfg.Pacing.StepMs)
	}
	// unspecified values keep their defaults
	if cfg.Pacing.BubbleMs != DefaultBubbleMs {
		t.Errorf("bubble_ms = %d, want default", cfg.Pacing.BubbleMs)
	}
	if !cfg.Audio {
		t.Error("audio should default to enabled")
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("pacing:\n  step_ms: -1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.Theme = "phosphor"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.Theme != "phosphor" {
		t.Errorf("theme = %s", got.Theme)
	}
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortviz.yaml")
	cfg := DefaultConfig()
	if err := cfg.ApplyPreset("slow"); err != nil {
		t.Fatal(err)
	}

	if err := Init(path, cfg); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.Pacing != *GetPreset("slow") {
		t.Errorf("pacing = %+v, want slow preset", got.Pacing)
	}

	if err := Init(path, DefaultConfig()); !errors.Is(err, os.ErrExist) {
		t.Errorf("expected os.ErrExist on second init, got %v", err)
	}

	bad := DefaultConfig()
	bad.Pacing.StepMs = -1
	if err := Init(filepath.Join(t.TempDir(), "bad.yaml"), bad); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.ApplyPreset("instant"); err != nil {
		t.Fatal(err)
	}
	if cfg.StepDelay() != 0 || cfg.BubbleDelay() != 0 {
		t.Errorf("instant preset should zero the delays: %+v", cfg.Pacing)
	}

	if err := cfg.ApplyPreset("nonexistent"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(presets))
	}
	if GetPreset("classic") == nil {
		t.Error("expected classic preset")
	}
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}
