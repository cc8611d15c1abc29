package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/mini-arcade/internal/core"
)

func TestLoadEngineDefaults(t *testing.T) {
	cfg, err := LoadEngine("")
	if err != nil {
		t.Fatalf("LoadEngine() failed: %v", err)
	}

	if cfg.Window.Width != 80 || cfg.Window.Height != 24 {
		t.Errorf("default window = %dx%d, expected 80x24", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.FPS != 60 {
		t.Errorf("default fps = %d, expected 60", cfg.FPS)
	}
}

func TestLoadEngineCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.yaml")
	custom := `window:
  width: 120
  height: 40
  title: "Custom"
  background: "#223344"
fps: 30
`
	if err := os.WriteFile(path, []byte(custom), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadEngine(path)
	if err != nil {
		t.Fatalf("LoadEngine(%s) failed: %v", path, err)
	}
	if cfg.Window.Width != 120 || cfg.FPS != 30 {
		t.Errorf("custom config not applied: %+v", cfg)
	}

	rt, err := cfg.Runtime()
	if err != nil {
		t.Fatalf("Runtime() failed: %v", err)
	}
	if rt.Background != (core.Color{R: 0x22, G: 0x33, B: 0x44}) {
		t.Errorf("background = %v, expected parsed hex", rt.Background)
	}
}

func TestLoadEngineMissingCustomPath(t *testing.T) {
	if _, err := LoadEngine(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("explicit missing path must fail, not fall back")
	}
}

func TestRuntimeRejectsMalformedConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  EngineConfig
	}{
		{
			name: "zero window",
			cfg:  EngineConfig{Window: WindowConfig{Width: 0, Height: 24}},
		},
		{
			name: "bad background color",
			cfg:  EngineConfig{Window: WindowConfig{Width: 80, Height: 24, Background: "red"}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.cfg.Runtime(); err == nil {
				t.Error("expected construction error")
			}
		})
	}
}

func TestLoadPongDefaults(t *testing.T) {
	cfg, err := LoadPong("")
	if err != nil {
		t.Fatalf("LoadPong() failed: %v", err)
	}
	if cfg.Paddle.Height <= 0 || cfg.Ball.Speed <= 0 || cfg.WinScore <= 0 {
		t.Errorf("defaults incomplete: %+v", cfg)
	}
}

func TestLoadBounceDefaults(t *testing.T) {
	cfg, err := LoadBounce("")
	if err != nil {
		t.Fatalf("LoadBounce() failed: %v", err)
	}
	if cfg.Balls <= 0 || cfg.MaxSpeed < cfg.MinSpeed {
		t.Errorf("defaults incomplete: %+v", cfg)
	}
}
