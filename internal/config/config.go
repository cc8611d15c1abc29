// Package config loads engine and game configuration from YAML, with
// embedded defaults as the final fallback.
package config

import (
	"fmt"

	"github.com/vovakirdan/mini-arcade/internal/core"
)

// WindowConfig describes the display surface.
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Background string `yaml:"background"` // "#rrggbb"
}

// EngineConfig is the top-level engine configuration.
type EngineConfig struct {
	Window        WindowConfig `yaml:"window"`
	FPS           int          `yaml:"fps"`
	Seed          int64        `yaml:"seed"`
	ScreenshotDir string       `yaml:"screenshot_dir"`
	DBPath        string       `yaml:"db_path"`
}

// Runtime converts the engine config into the runtime config handed
// to scene factories. A malformed background color is a construction
// error, reported rather than silently replaced.
func (c EngineConfig) Runtime() (core.RuntimeConfig, error) {
	rt := core.RuntimeConfig{
		Width:  float64(c.Window.Width),
		Height: float64(c.Window.Height),
		FPS:    c.FPS,
		Seed:   c.Seed,
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return rt, fmt.Errorf("config: window size %dx%d must be positive",
			c.Window.Width, c.Window.Height)
	}

	bg := core.ColorBlack
	if c.Window.Background != "" {
		var err error
		if bg, err = core.ParseColor(c.Window.Background); err != nil {
			return rt, fmt.Errorf("config: background: %w", err)
		}
	}
	rt.Background = bg
	return rt, nil
}

// PongPaddle configures paddle geometry and movement.
type PongPaddle struct {
	Height float64 `yaml:"height"`
	Width  float64 `yaml:"width"`
	Offset float64 `yaml:"offset"` // distance from the scene edge
	Speed  float64 `yaml:"speed"`
}

// PongBall configures ball geometry and movement.
type PongBall struct {
	Size  float64 `yaml:"size"`
	Speed float64 `yaml:"speed"`
}

// PongConfig configures the Pong demo scene.
type PongConfig struct {
	Paddle   PongPaddle `yaml:"paddle"`
	Ball     PongBall   `yaml:"ball"`
	WinScore int        `yaml:"win_score"`
	CPUSkill float64    `yaml:"cpu_skill"` // 0..1, tracking accuracy
}

// BounceConfig configures the bouncing-balls demo scene.
type BounceConfig struct {
	Balls    int     `yaml:"balls"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
	BallSize float64 `yaml:"ball_size"`
}
