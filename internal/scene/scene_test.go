package scene

import (
	"testing"

	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/entity"
)

// probe records the order of its update and draw calls in shared logs.
type probe struct {
	entity.Base
	name     string
	updates  *[]string
	draws    *[]string
	onUpdate func()
}

func newProbe(name string, updates, draws *[]string) *probe {
	base, _ := entity.NewBase(core.Position{}, 1, 1)
	return &probe{Base: base, name: name, updates: updates, draws: draws}
}

func (p *probe) Update(dt float64) {
	*p.updates = append(*p.updates, p.name)
	if p.onUpdate != nil {
		p.onUpdate()
	}
}

func (p *probe) Draw(r core.Renderer) {
	*p.draws = append(*p.draws, p.name)
}

// nullRenderer discards all draw calls.
type nullRenderer struct{}

func (nullRenderer) DrawRect(core.Bounds, core.Style)            {}
func (nullRenderer) DrawText(core.Position, string, core.Style)  {}
func (nullRenderer) DrawSprite(core.SpriteHandle, core.Position) {}

func TestUpdateAndDrawFollowInsertionOrder(t *testing.T) {
	var updates, draws []string
	s := New("test", core.Size{W: 100, H: 100})

	for _, name := range []string{"first", "second", "third", "fourth"} {
		s.Add(newProbe(name, &updates, &draws))
	}

	s.Update(1)
	s.Draw(nullRenderer{})

	want := []string{"first", "second", "third", "fourth"}
	if !equal(updates, want) {
		t.Errorf("update order = %v, expected %v", updates, want)
	}
	if !equal(draws, want) {
		t.Errorf("draw order = %v, expected %v", draws, want)
	}
}

func TestOverlaysDrawLIFO(t *testing.T) {
	var updates, draws []string
	s := New("test", core.Size{W: 100, H: 100})

	s.Add(newProbe("base", &updates, &draws))
	s.PushOverlay(newProbe("overlay1", &updates, &draws))
	s.PushOverlay(newProbe("overlay2", &updates, &draws))

	s.Draw(nullRenderer{})

	// Base layer first, then overlays bottom-to-top: the most
	// recently pushed overlay is drawn last, i.e. on top.
	want := []string{"base", "overlay1", "overlay2"}
	if !equal(draws, want) {
		t.Errorf("draw order = %v, expected %v", draws, want)
	}
}

func TestPopOverlay(t *testing.T) {
	var updates, draws []string
	s := New("test", core.Size{W: 100, H: 100})

	a := newProbe("a", &updates, &draws)
	b := newProbe("b", &updates, &draws)
	s.PushOverlay(a)
	s.PushOverlay(b)

	if got := s.PopOverlay(); got != entity.Entity(b) {
		t.Errorf("PopOverlay() returned %v, expected top overlay", got)
	}
	if got := s.PopOverlay(); got != entity.Entity(a) {
		t.Errorf("PopOverlay() returned %v, expected remaining overlay", got)
	}
	if got := s.PopOverlay(); got != nil {
		t.Errorf("PopOverlay() on empty stack = %v, expected nil", got)
	}
}

func TestDeferredRemoval(t *testing.T) {
	var updates, draws []string
	s := New("test", core.Size{W: 100, H: 100})

	first := newProbe("first", &updates, &draws)
	second := newProbe("second", &updates, &draws)
	third := newProbe("third", &updates, &draws)

	s.Add(first)
	s.Add(second)
	s.Add(third)

	// First entity destroys the second mid-pass.
	first.onUpdate = func() { second.Destroy() }

	s.Update(1)

	// The destroyed entity still received its update this frame.
	if !equal(updates, []string{"first", "second", "third"}) {
		t.Errorf("frame 1 updates = %v, destruction must not affect the in-progress pass", updates)
	}

	// It is still drawn this frame too.
	s.Draw(nullRenderer{})
	if !equal(draws, []string{"first", "second", "third"}) {
		t.Errorf("frame 1 draws = %v, destruction must not affect this frame's draw pass", draws)
	}

	updates = nil
	first.onUpdate = nil
	s.Update(1)

	// Gone from the next frame on, order of survivors preserved.
	if !equal(updates, []string{"first", "third"}) {
		t.Errorf("frame 2 updates = %v, expected pruned collection", updates)
	}
	if len(s.Entities()) != 2 {
		t.Errorf("Entities() length = %d, expected 2 after prune", len(s.Entities()))
	}
}

func TestRemoveByID(t *testing.T) {
	var updates, draws []string
	s := New("test", core.Size{W: 100, H: 100})

	p := newProbe("p", &updates, &draws)
	id := s.Add(p)

	if s.Find(id) == nil {
		t.Fatal("Find() could not locate added entity")
	}

	s.Remove(id)
	if p.Alive() {
		t.Error("Remove() must destroy the entity")
	}
	if s.Find(id) != nil {
		t.Error("Find() must not return destroyed entities")
	}

	// Unknown IDs are a no-op
	s.Remove(9999)
}

func TestKinematicEndToEnd(t *testing.T) {
	s := New("test", core.Size{W: 100, H: 100})

	k, err := s.SpawnKinematic(core.Position{X: 0, Y: 95}, 10, 10,
		core.Velocity{DY: 20}, core.VerticalBounce{})
	if err != nil {
		t.Fatalf("SpawnKinematic: %v", err)
	}

	// One frame at dt=1: integration moves to (0,115), overlapping the
	// bottom boundary; resolution clamps to (0,90) and reflects.
	s.Update(1)

	if got := k.Position(); got != (core.Position{X: 0, Y: 90}) {
		t.Errorf("position = %v, expected (0,90)", got)
	}
	if got := *k.Velocity(); got != (core.Velocity{DY: -20}) {
		t.Errorf("velocity = %v, expected (0,-20)", got)
	}
}

func TestSpawnAssignsUniqueIDs(t *testing.T) {
	s := New("test", core.Size{W: 100, H: 100})

	seen := make(map[entity.ID]bool)
	for i := 0; i < 5; i++ {
		sp, err := s.SpawnSprite(core.Position{}, 1, 1, nil)
		if err != nil {
			t.Fatalf("SpawnSprite: %v", err)
		}
		if sp.ID() == 0 {
			t.Fatal("spawned entity has zero ID")
		}
		if seen[sp.ID()] {
			t.Fatalf("duplicate entity ID %d", sp.ID())
		}
		seen[sp.ID()] = true
	}
}

func TestSpawnRejectsBadGeometry(t *testing.T) {
	s := New("test", core.Size{W: 100, H: 100})

	if _, err := s.SpawnKinematic(core.Position{}, -5, 5, core.Velocity{}); err == nil {
		t.Error("expected error for negative width")
	}
	if len(s.Entities()) != 0 {
		t.Error("failed spawn must not register an entity")
	}
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
