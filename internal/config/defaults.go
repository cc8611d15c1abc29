package config

import (
	_ "embed"
)

//go:embed defaults/engine.yaml
var defaultEngineYAML []byte

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

//go:embed defaults/bounce.yaml
var defaultBounceYAML []byte

// DefaultEngineConfig returns the default engine configuration.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Window: WindowConfig{
			Width:      80,
			Height:     24,
			Title:      "Mini Arcade",
			Background: "#101010",
		},
		FPS:           60,
		ScreenshotDir: "screenshots",
		DBPath:        "~/.miniarcade/scores.db",
	}
}

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Paddle: PongPaddle{
			Height: 5,
			Width:  1,
			Offset: 2,
			Speed:  30,
		},
		Ball: PongBall{
			Size:  1,
			Speed: 20,
		},
		WinScore: 5,
		CPUSkill: 0.75,
	}
}

// DefaultBounceConfig returns the default bouncing-balls configuration.
func DefaultBounceConfig() BounceConfig {
	return BounceConfig{
		Balls:    8,
		MinSpeed: 8,
		MaxSpeed: 25,
		BallSize: 1,
	}
}
