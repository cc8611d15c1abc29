// Package entity defines the game object model: a base entity with
// position, size and liveness, plus variants layering drawing and
// physics capabilities on top. Variants are built through factory
// functions, not inheritance chains; each variant carries exactly the
// capabilities it declares.
package entity

import (
	"github.com/vovakirdan/mini-arcade/internal/core"
)

// ID is an opaque entity identifier, unique within its owning scene.
// The zero ID means "not yet owned by a scene".
type ID uint64

// Entity is the contract every game object satisfies. Entities are
// owned exclusively by the scene that registered them; all mutation
// happens inside the scene's single-threaded update pass.
type Entity interface {
	// ID returns the scene-assigned identifier.
	ID() ID
	// SetID is called once by the owning scene on registration.
	SetID(id ID)

	// Position returns the entity's current top-left position.
	Position() core.Position
	// Size returns the entity's declared dimensions.
	Size() core.Size

	// Alive reports liveness. Destroyed entities are pruned from the
	// scene at the start of the next update pass and receive no
	// further Update or Draw calls after removal.
	Alive() bool
	// Destroy marks the entity destroyed. Irreversible, idempotent.
	Destroy()

	// Update advances the entity state by dt seconds.
	Update(dt float64)
	// Draw renders the entity through the backend's draw capability.
	Draw(r core.Renderer)
}

// Base implements the position/size/liveness core shared by all
// variants. Update and Draw are no-ops; variants override what they
// need.
type Base struct {
	id        ID
	pos       core.Position
	size      core.Size
	destroyed bool
}

// NewBase creates a Base at the given position, rejecting negative
// dimensions.
func NewBase(pos core.Position, w, h float64) (Base, error) {
	size, err := core.NewSize(w, h)
	if err != nil {
		return Base{}, err
	}
	return Base{pos: pos, size: size}, nil
}

// ID returns the scene-assigned identifier.
func (b *Base) ID() ID { return b.id }

// SetID records the scene-assigned identifier.
func (b *Base) SetID(id ID) { b.id = id }

// Position returns the current top-left position.
func (b *Base) Position() core.Position { return b.pos }

// SetPosition moves the entity.
func (b *Base) SetPosition(p core.Position) { b.pos = p }

// Size returns the declared dimensions.
func (b *Base) Size() core.Size { return b.size }

// Bounds returns the entity's current bounding box.
func (b *Base) Bounds() core.Bounds {
	return core.Bounds{Min: b.pos, Size: b.size}
}

// Alive reports whether the entity has not been destroyed.
func (b *Base) Alive() bool { return !b.destroyed }

// Destroy transitions the entity to destroyed. The transition happens
// exactly once; repeated calls are no-ops.
func (b *Base) Destroy() { b.destroyed = true }

// Update is a no-op on the base entity.
func (b *Base) Update(dt float64) {}

// Draw is a no-op on the base entity.
func (b *Base) Draw(r core.Renderer) {}
