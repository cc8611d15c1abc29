package core

// RuntimeConfig is the configuration handed to scene factories at
// creation time. Scenes use it to adapt to the logical play area and
// for deterministic simulation.
type RuntimeConfig struct {
	Width      float64 // Logical scene width in world units
	Height     float64 // Logical scene height in world units
	FPS        int     // Target frames per second
	Seed       int64   // RNG seed; 0 means seed from the clock
	Background Color   // Frame clear color
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		Width:      80,
		Height:     24,
		FPS:        60,
		Background: ColorBlack,
	}
}

// Bounds returns the logical play area as a boundary rectangle with
// its origin at (0, 0).
func (c RuntimeConfig) Bounds() Bounds {
	return Rect(0, 0, c.Width, c.Height)
}
