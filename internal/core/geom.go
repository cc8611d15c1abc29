// Package core provides the fundamental types of the arcade engine:
// 2D geometry, kinematics, collision, resolution policies and the
// backend contract. It contains no external dependencies (especially
// no Bubble Tea) to keep engine logic pure and testable.
package core

import (
	"errors"
	"fmt"
)

// ErrNegativeSize is returned when geometry is constructed with a
// negative width or height.
var ErrNegativeSize = errors.New("core: negative size")

// Size represents non-negative 2D dimensions in world units.
type Size struct {
	W, H float64
}

// NewSize creates a Size, rejecting negative dimensions.
// Malformed geometry is an error at construction time, never clamped.
func NewSize(w, h float64) (Size, error) {
	if w < 0 || h < 0 {
		return Size{}, fmt.Errorf("%w: %gx%g", ErrNegativeSize, w, h)
	}
	return Size{W: w, H: h}, nil
}

// Position is a point in world coordinates. Y grows downward.
type Position struct {
	X, Y float64
}

// Bounds is an axis-aligned bounding box defined by its top-left
// origin and a Size.
type Bounds struct {
	Min  Position
	Size Size
}

// NewBounds creates a Bounds from origin and dimensions, rejecting
// negative dimensions.
func NewBounds(x, y, w, h float64) (Bounds, error) {
	size, err := NewSize(w, h)
	if err != nil {
		return Bounds{}, err
	}
	return Bounds{Min: Position{X: x, Y: y}, Size: size}, nil
}

// Rect creates a Bounds from origin and dimensions without validation.
// Use for literals known to be well-formed.
func Rect(x, y, w, h float64) Bounds {
	return Bounds{Min: Position{X: x, Y: y}, Size: Size{W: w, H: h}}
}

// Left returns the x-coordinate of the left edge.
func (b Bounds) Left() float64 { return b.Min.X }

// Right returns the x-coordinate of the right edge.
func (b Bounds) Right() float64 { return b.Min.X + b.Size.W }

// Top returns the y-coordinate of the top edge.
func (b Bounds) Top() float64 { return b.Min.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (b Bounds) Bottom() float64 { return b.Min.Y + b.Size.H }

// Contains returns true if the point lies inside the bounds.
// Points on the left/top edge are inside, right/bottom edge outside,
// so adjacent bounds never both claim a point.
func (b Bounds) Contains(p Position) bool {
	return p.X >= b.Left() && p.X < b.Right() &&
		p.Y >= b.Top() && p.Y < b.Bottom()
}

// Overlaps returns true if this bounds overlaps another.
// Strict inequalities throughout: rectangles that merely touch along
// an edge do not overlap, so bodies at rest against each other never
// report a collision.
func (b Bounds) Overlaps(other Bounds) bool {
	return b.Left() < other.Right() && b.Right() > other.Left() &&
		b.Top() < other.Bottom() && b.Bottom() > other.Top()
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Clamp restricts an integer value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
