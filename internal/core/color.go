package core

import "fmt"

// Color is a 24-bit RGB color. Backends translate it to whatever
// their display supports (truecolor ANSI for the terminal backend).
type Color struct {
	R, G, B uint8
}

// Predefined colors for game elements.
var (
	ColorBlack   = Color{0x00, 0x00, 0x00}
	ColorWhite   = Color{0xff, 0xff, 0xff}
	ColorRed     = Color{0xcc, 0x24, 0x1d}
	ColorGreen   = Color{0x98, 0x97, 0x1a}
	ColorYellow  = Color{0xd7, 0x99, 0x21}
	ColorBlue    = Color{0x45, 0x85, 0x88}
	ColorMagenta = Color{0xb1, 0x62, 0x86}
	ColorCyan    = Color{0x68, 0x9d, 0x6a}
	ColorOrange  = Color{0xd6, 0x5d, 0x0e}
	ColorGray    = Color{0x92, 0x83, 0x74}
)

// Hex returns the color as a "#rrggbb" string, the form lipgloss and
// most terminal libraries accept directly.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColor parses a "#rrggbb" string.
func ParseColor(s string) (Color, error) {
	var c Color
	if len(s) != 7 || s[0] != '#' {
		return c, fmt.Errorf("core: malformed color %q", s)
	}
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("core: malformed color %q: %w", s, err)
	}
	return c, nil
}

// Style describes how a backend should draw a primitive.
type Style struct {
	Color Color
	// Fill is the rune cell-based backends use when filling rects.
	// Zero means the backend's default block character.
	Fill rune
}

// DefaultStyle returns a white, default-fill style.
func DefaultStyle() Style {
	return Style{Color: ColorWhite}
}
