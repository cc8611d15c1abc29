package entity

import (
	"github.com/vovakirdan/mini-arcade/internal/core"
)

// Kinematic is an entity with velocity-based movement, a collider and
// a set of boundary resolution policies. The scene's update pass
// integrates its kinematics and then resolves it against a boundary;
// it is never mutated concurrently.
type Kinematic struct {
	Base
	vel      core.Velocity
	collider *core.Collider
	policies []core.Policy
	boundary *core.Bounds // custom boundary; nil means use the scene's
	style    core.Style
}

// NewKinematic creates a kinematic entity with the given initial
// velocity and resolution policies.
func NewKinematic(pos core.Position, w, h float64, vel core.Velocity, policies ...core.Policy) (*Kinematic, error) {
	base, err := NewBase(pos, w, h)
	if err != nil {
		return nil, err
	}
	k := &Kinematic{
		Base:     base,
		vel:      vel,
		policies: policies,
		style:    core.DefaultStyle(),
	}
	k.collider = core.NewCollider(k)
	return k, nil
}

// Velocity returns a pointer to the entity's velocity for steering.
func (k *Kinematic) Velocity() *core.Velocity { return &k.vel }

// Collider returns the entity's collider. Its bounds always track the
// entity's live position.
func (k *Kinematic) Collider() *core.Collider { return k.collider }

// SetBoundary declares a custom collision boundary. A nil boundary
// reverts to the owning scene's bounds.
func (k *Kinematic) SetBoundary(b *core.Bounds) { k.boundary = b }

// Boundary returns the custom boundary, or nil if the entity uses the
// scene default.
func (k *Kinematic) Boundary() *core.Bounds { return k.boundary }

// SetStyle sets the draw style.
func (k *Kinematic) SetStyle(style core.Style) { k.style = style }

// Update integrates position from velocity. Boundary clamping is done
// separately in Resolve so detection always sees the raw integrated
// position.
func (k *Kinematic) Update(dt float64) {
	k.SetPosition(k.vel.Advance(k.Position(), dt))
}

// Resolve applies the entity's resolution policies against the given
// boundary. The entity's custom boundary, when declared, wins over
// the one passed in.
func (k *Kinematic) Resolve(boundary core.Bounds) {
	if k.boundary != nil {
		boundary = *k.boundary
	}
	pos := k.Position()
	for _, p := range k.policies {
		p.Resolve(&pos, &k.vel, k.Size(), boundary)
	}
	k.SetPosition(pos)
}

// Draw renders the entity as a filled rectangle in its style.
func (k *Kinematic) Draw(r core.Renderer) {
	r.DrawRect(k.Bounds(), k.style)
}
