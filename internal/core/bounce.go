package core

// Policy converts a detected boundary penetration into a corrected
// position and velocity. Policies are stateless; the scene update pass
// invokes them with the entity's current state and the containing
// boundary after kinematics integration.
//
// Resolution is single-pass: a body that would re-cross the boundary
// within the same frame is not iterated again.
type Policy interface {
	Resolve(pos *Position, vel *Velocity, size Size, boundary Bounds)
}

// VerticalBounce reflects vertical velocity off the top and bottom
// edges of the boundary, clamping the body back inside. The horizontal
// axis is untouched; compose with HorizontalBounce for both axes.
type VerticalBounce struct{}

// Resolve clamps the body onto the violated edge and flips the sign of
// the vertical velocity. At most one edge can be violated per frame
// for bodies smaller than the boundary, so the sign flips at most once.
func (VerticalBounce) Resolve(pos *Position, vel *Velocity, size Size, boundary Bounds) {
	if pos.Y < boundary.Top() {
		pos.Y = boundary.Top()
		vel.ReverseY()
	} else if pos.Y+size.H > boundary.Bottom() {
		pos.Y = boundary.Bottom() - size.H
		vel.ReverseY()
	}
}

// HorizontalBounce is the horizontal twin of VerticalBounce.
type HorizontalBounce struct{}

// Resolve clamps the body onto the violated edge and flips the sign of
// the horizontal velocity.
func (HorizontalBounce) Resolve(pos *Position, vel *Velocity, size Size, boundary Bounds) {
	if pos.X < boundary.Left() {
		pos.X = boundary.Left()
		vel.ReverseX()
	} else if pos.X+size.W > boundary.Right() {
		pos.X = boundary.Right() - size.W
		vel.ReverseX()
	}
}

// Bounce reflects off all four boundary edges.
type Bounce struct{}

// Resolve applies vertical then horizontal bounce resolution.
func (Bounce) Resolve(pos *Position, vel *Velocity, size Size, boundary Bounds) {
	VerticalBounce{}.Resolve(pos, vel, size, boundary)
	HorizontalBounce{}.Resolve(pos, vel, size, boundary)
}

// VerticalWrap teleports a body that has fully left through the top
// edge to the bottom and vice versa. Velocity is unchanged.
type VerticalWrap struct{}

// Resolve wraps the body to the opposite vertical edge once it is
// completely outside the boundary.
func (VerticalWrap) Resolve(pos *Position, _ *Velocity, size Size, boundary Bounds) {
	if pos.Y+size.H < boundary.Top() {
		pos.Y = boundary.Bottom()
	} else if pos.Y > boundary.Bottom() {
		pos.Y = boundary.Top() - size.H
	}
}

// HorizontalWrap is the horizontal twin of VerticalWrap.
type HorizontalWrap struct{}

// Resolve wraps the body to the opposite horizontal edge once it is
// completely outside the boundary.
func (HorizontalWrap) Resolve(pos *Position, _ *Velocity, size Size, boundary Bounds) {
	if pos.X+size.W < boundary.Left() {
		pos.X = boundary.Right()
	} else if pos.X > boundary.Right() {
		pos.X = boundary.Left() - size.W
	}
}
