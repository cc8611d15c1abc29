// Package capture turns raw frames from a backend into image files.
// The engine delegates pixel production to the backend and encoding
// to this package; capture failures are boundary errors the game loop
// logs and survives.
package capture

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// PathBuilder builds timestamped file paths for captured frames.
type PathBuilder struct {
	// Dir is the directory screenshots are written to.
	Dir string
	// Prefix is prepended to every filename.
	Prefix string
}

// DefaultPathBuilder writes into ./screenshots.
func DefaultPathBuilder() PathBuilder {
	return PathBuilder{Dir: "screenshots"}
}

// Build returns a path of the form dir/prefix20060102_150405_label.png.
// Characters outside [A-Za-z0-9-_] in the label are replaced.
func (p PathBuilder) Build(label string) string {
	if label == "" {
		label = "shot"
	}
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, label)

	stamp := time.Now().Format("20060102_150405")
	return filepath.Join(p.Dir, fmt.Sprintf("%s%s_%s.png", p.Prefix, stamp, safe))
}

// SavePNG encodes the image as PNG at the given path, creating parent
// directories as needed.
func SavePNG(path string, img image.Image) error {
	if img == nil {
		return fmt.Errorf("capture: nil frame")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("capture: cannot create directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("capture: cannot create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("capture: cannot encode %s: %w", path, err)
	}
	return nil
}
