package capture

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPathBuilder(t *testing.T) {
	pb := PathBuilder{Dir: "shots", Prefix: "arcade_"}

	tests := []struct {
		name  string
		label string
		want  string // expected suffix after the timestamp
	}{
		{name: "plain label", label: "pong", want: "_pong.png"},
		{name: "empty label defaults", label: "", want: "_shot.png"},
		{name: "unsafe characters replaced", label: "a b/c", want: "_a_b_c.png"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := pb.Build(tc.label)
			if filepath.Dir(got) != "shots" {
				t.Errorf("Build(%q) dir = %q, expected shots", tc.label, filepath.Dir(got))
			}
			base := filepath.Base(got)
			if !strings.HasPrefix(base, "arcade_") {
				t.Errorf("Build(%q) = %q, missing prefix", tc.label, base)
			}
			if !strings.HasSuffix(base, tc.want) {
				t.Errorf("Build(%q) = %q, expected suffix %q", tc.label, base, tc.want)
			}
		})
	}
}

func TestSavePNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 60), G: uint8(y * 60), A: 255})
		}
	}

	path := filepath.Join(t.TempDir(), "nested", "frame.png")
	if err := SavePNG(path, img); err != nil {
		t.Fatalf("SavePNG() failed: %v", err)
	}

	// The written file must decode back as a valid PNG
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("cannot open written file: %v", err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("written file is not valid PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 4 || decoded.Bounds().Dy() != 4 {
		t.Errorf("decoded size = %v, expected 4x4", decoded.Bounds())
	}
}

func TestSavePNGNilFrame(t *testing.T) {
	if err := SavePNG(filepath.Join(t.TempDir(), "x.png"), nil); err == nil {
		t.Error("SavePNG(nil) must fail")
	}
}
