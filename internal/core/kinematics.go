package core

import "math"

// Velocity is a 2D velocity vector in world units per second.
type Velocity struct {
	DX, DY float64
}

// Advance integrates the velocity over dt seconds, returning the new
// position. The velocity itself is unchanged; clamping against
// boundaries is the job of resolution policies, not integration.
func (v Velocity) Advance(p Position, dt float64) Position {
	return Position{
		X: p.X + v.DX*dt,
		Y: p.Y + v.DY*dt,
	}
}

// ReverseX flips the sign of the horizontal component.
func (v *Velocity) ReverseX() {
	v.DX = -v.DX
}

// ReverseY flips the sign of the vertical component.
func (v *Velocity) ReverseY() {
	v.DY = -v.DY
}

// Scale multiplies both components by f. Useful for friction-like
// effects (f < 1) or speed-ups (f > 1).
func (v *Velocity) Scale(f float64) {
	v.DX *= f
	v.DY *= f
}

// Stop zeroes both components.
func (v *Velocity) Stop() {
	v.DX = 0
	v.DY = 0
}

// StopX zeroes horizontal movement.
func (v *Velocity) StopX() {
	v.DX = 0
}

// StopY zeroes vertical movement.
func (v *Velocity) StopY() {
	v.DY = 0
}

// MoveUp sets vertical velocity upward (negative Y) at the given speed.
func (v *Velocity) MoveUp(speed float64) {
	v.DY = -math.Abs(speed)
}

// MoveDown sets vertical velocity downward (positive Y) at the given speed.
func (v *Velocity) MoveDown(speed float64) {
	v.DY = math.Abs(speed)
}

// MoveLeft sets horizontal velocity to the left at the given speed.
func (v *Velocity) MoveLeft(speed float64) {
	v.DX = -math.Abs(speed)
}

// MoveRight sets horizontal velocity to the right at the given speed.
func (v *Velocity) MoveRight(speed float64) {
	v.DX = math.Abs(speed)
}
