package core

// Body is the minimal contract a collider needs from its owner:
// a live position, declared dimensions and a liveness flag.
type Body interface {
	Position() Position
	Size() Size
	Alive() bool
}

// Collider is an axis-aligned bounding box bound to an owning body.
// It does not copy the body's state; bounds are derived from the
// owner's current position on every call, so a moving body never
// leaves its collider behind.
type Collider struct {
	body Body
}

// NewCollider attaches a collider to the given body.
func NewCollider(body Body) *Collider {
	return &Collider{body: body}
}

// Bounds returns the collider's current bounds, derived from the
// owner's live position and declared size.
func (c *Collider) Bounds() Bounds {
	return Bounds{Min: c.body.Position(), Size: c.body.Size()}
}

// Intersects reports whether this collider overlaps another.
// Checks involving a destroyed owner on either side report false;
// dead bodies are excluded from collision entirely.
func (c *Collider) Intersects(other *Collider) bool {
	if other == nil || !c.body.Alive() || !other.body.Alive() {
		return false
	}
	return c.Bounds().Overlaps(other.Bounds())
}

// Overlaps reports whether this collider overlaps a boundary rectangle.
// Returns false if the owner is destroyed.
func (c *Collider) Overlaps(boundary Bounds) bool {
	if !c.body.Alive() {
		return false
	}
	return c.Bounds().Overlaps(boundary)
}

// Inside reports whether this collider is fully contained within the
// boundary rectangle. Returns false if the owner is destroyed.
func (c *Collider) Inside(boundary Bounds) bool {
	if !c.body.Alive() {
		return false
	}
	b := c.Bounds()
	return b.Left() >= boundary.Left() && b.Right() <= boundary.Right() &&
		b.Top() >= boundary.Top() && b.Bottom() <= boundary.Bottom()
}
