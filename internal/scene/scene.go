// Package scene owns the per-frame entity lifecycle: an insertion-
// ordered entity collection, an overlay stack drawn above it, and the
// update/draw passes that drive both. Scenes contain pure engine
// state; they never talk to a concrete rendering technology.
package scene

import (
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/entity"
)

// TickFunc is scene-level logic run once per frame before the entity
// update pass.
type TickFunc func(s *Scene, dt float64)

// InputFunc receives the frame's input actions.
type InputFunc func(s *Scene, in core.InputFrame)

// HookFunc runs when a scene becomes active or is replaced.
type HookFunc func(s *Scene)

// resolver is the capability a kinematic entity exposes to the update
// pass for boundary resolution.
type resolver interface {
	Resolve(boundary core.Bounds)
}

// Scene is a state machine over an entity collection. Entities are
// appended on creation and never reordered; insertion order is the
// update order and the draw order. Overlays form a LIFO stack drawn
// after the base layer, most recently pushed on top.
type Scene struct {
	id   string
	size core.Size

	entities []entity.Entity
	overlays []entity.Entity
	nextID   entity.ID

	score    int
	finished bool

	// Tick, Input, Enter and Exit are optional scene behavior hooks.
	Tick  TickFunc
	Input InputFunc
	Enter HookFunc
	Exit  HookFunc
}

// New creates an empty scene with the given logical size.
func New(id string, size core.Size) *Scene {
	return &Scene{id: id, size: size}
}

// ID returns the scene's registry identifier.
func (s *Scene) ID() string { return s.id }

// Size returns the scene's fixed logical size.
func (s *Scene) Size() core.Size { return s.size }

// Bounds returns the scene's logical area, the default collision
// boundary for every contained kinematic entity.
func (s *Scene) Bounds() core.Bounds {
	return core.Bounds{Size: s.size}
}

// Add registers an entity, assigning it an ID if it has none.
// Entities keep their insertion position for the scene's lifetime.
func (s *Scene) Add(e entity.Entity) entity.ID {
	if e.ID() == 0 {
		s.nextID++
		e.SetID(s.nextID)
	}
	s.entities = append(s.entities, e)
	return e.ID()
}

// Remove marks the entity with the given ID destroyed. The entity
// stays in the collection until the start of the next update pass, so
// removal never invalidates an in-progress iteration.
func (s *Scene) Remove(id entity.ID) {
	if e := s.Find(id); e != nil {
		e.Destroy()
	}
}

// Find returns the live entity with the given ID, or nil.
func (s *Scene) Find(id entity.ID) entity.Entity {
	for _, e := range s.entities {
		if e.ID() == id && e.Alive() {
			return e
		}
	}
	return nil
}

// Entities returns a copy of the entity collection in insertion
// order. The copy is read-only for callers; mutating scene membership
// goes through Add and Remove.
func (s *Scene) Entities() []entity.Entity {
	out := make([]entity.Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

// PushOverlay pushes a drawable onto the overlay stack. It will be
// drawn above everything pushed before it.
func (s *Scene) PushOverlay(e entity.Entity) {
	s.overlays = append(s.overlays, e)
}

// PopOverlay removes and returns the top overlay. No-op on an empty
// stack.
func (s *Scene) PopOverlay() entity.Entity {
	if len(s.overlays) == 0 {
		return nil
	}
	top := s.overlays[len(s.overlays)-1]
	s.overlays = s.overlays[:len(s.overlays)-1]
	return top
}

// ClearOverlays drops the whole overlay stack.
func (s *Scene) ClearOverlays() {
	s.overlays = nil
}

// Overlays returns a copy of the overlay stack, bottom first.
func (s *Scene) Overlays() []entity.Entity {
	out := make([]entity.Entity, len(s.overlays))
	copy(out, s.overlays)
	return out
}

// HandleInput forwards the frame's input actions to the scene's input
// hook, if any.
func (s *Scene) HandleInput(in core.InputFrame) {
	if s.Input != nil {
		s.Input(s, in)
	}
}

// Update advances the scene by dt seconds: destroyed entities are
// pruned first (mark-then-compact), then every remaining entity is
// visited in insertion order, integrating kinematics and resolving
// boundary collisions for each kinematic entity.
//
// Entities destroyed during the pass still receive their update this
// frame and disappear at the start of the next one. Entities added
// during the pass are first updated next frame.
func (s *Scene) Update(dt float64) {
	s.prune()

	if s.Tick != nil {
		s.Tick(s, dt)
	}

	boundary := s.Bounds()
	n := len(s.entities)
	for i := 0; i < n; i++ {
		// Entities destroyed mid-pass still get this frame's update;
		// they disappear at the start of the next one.
		e := s.entities[i]
		e.Update(dt)
		if r, ok := e.(resolver); ok {
			r.Resolve(boundary)
		}
	}
}

// prune compacts the entity collection, dropping destroyed entities
// while preserving insertion order of the survivors.
func (s *Scene) prune() {
	kept := s.entities[:0]
	for _, e := range s.entities {
		if e.Alive() {
			kept = append(kept, e)
		}
	}
	// Clear the tail so dropped entities can be collected.
	for i := len(kept); i < len(s.entities); i++ {
		s.entities[i] = nil
	}
	s.entities = kept
}

// Draw renders the base layer in insertion order, then the overlay
// stack bottom-to-top so the most recently pushed overlay lands on
// top.
func (s *Scene) Draw(r core.Renderer) {
	for _, e := range s.entities {
		e.Draw(r)
	}
	for _, o := range s.overlays {
		o.Draw(r)
	}
}

// Score returns the scene's current score.
func (s *Scene) Score() int { return s.score }

// SetScore sets the scene's score.
func (s *Scene) SetScore(v int) { s.score = v }

// AddScore adds to the scene's score.
func (s *Scene) AddScore(delta int) { s.score += delta }

// Finish marks the scene's game as over.
func (s *Scene) Finish() { s.finished = true }

// Finished reports whether the scene's game is over.
func (s *Scene) Finished() bool { return s.finished }

// Restart clears the finished flag so a concluded scene can run again.
// Scene logic owns resetting its own entities and score.
func (s *Scene) Restart() { s.finished = false }
