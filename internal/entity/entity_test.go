package entity

import (
	"errors"
	"testing"

	"github.com/vovakirdan/mini-arcade/internal/core"
)

func TestNewBaseRejectsNegativeSize(t *testing.T) {
	tests := []struct {
		name    string
		w, h    float64
		wantErr bool
	}{
		{name: "valid", w: 10, h: 10, wantErr: false},
		{name: "zero size", w: 0, h: 0, wantErr: false},
		{name: "negative width", w: -1, h: 10, wantErr: true},
		{name: "negative height", w: 10, h: -1, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBase(core.Position{}, tc.w, tc.h)
			if (err != nil) != tc.wantErr {
				t.Errorf("NewBase error = %v, wantErr %v", err, tc.wantErr)
			}
			if tc.wantErr && !errors.Is(err, core.ErrNegativeSize) {
				t.Errorf("error = %v, expected ErrNegativeSize", err)
			}
		})
	}
}

func TestDestroyIsIrreversible(t *testing.T) {
	base, err := NewBase(core.Position{X: 1, Y: 2}, 5, 5)
	if err != nil {
		t.Fatalf("NewBase: %v", err)
	}

	if !base.Alive() {
		t.Fatal("new entity must be alive")
	}

	base.Destroy()
	if base.Alive() {
		t.Error("destroyed entity reports alive")
	}

	// Repeated destroy is a no-op, never a resurrection
	base.Destroy()
	if base.Alive() {
		t.Error("entity came back after second Destroy")
	}
}

func TestKinematicUpdateIntegrates(t *testing.T) {
	k, err := NewKinematic(core.Position{X: 0, Y: 0}, 10, 10, core.Velocity{DX: 30, DY: -10})
	if err != nil {
		t.Fatalf("NewKinematic: %v", err)
	}

	k.Update(0.5)
	if got := k.Position(); got != (core.Position{X: 15, Y: -5}) {
		t.Errorf("Position() = %v, expected (15,-5)", got)
	}
}

func TestKinematicResolveUsesSceneBoundary(t *testing.T) {
	k, err := NewKinematic(core.Position{X: 0, Y: 95}, 10, 10, core.Velocity{DY: 20}, core.VerticalBounce{})
	if err != nil {
		t.Fatalf("NewKinematic: %v", err)
	}

	k.Update(1)
	k.Resolve(core.Rect(0, 0, 100, 100))

	if got := k.Position(); got != (core.Position{X: 0, Y: 90}) {
		t.Errorf("Position() = %v, expected (0,90)", got)
	}
	if got := *k.Velocity(); got != (core.Velocity{DY: -20}) {
		t.Errorf("Velocity() = %v, expected (0,-20)", got)
	}
}

func TestKinematicCustomBoundaryWins(t *testing.T) {
	k, err := NewKinematic(core.Position{X: 0, Y: 45}, 10, 10, core.Velocity{DY: 10}, core.VerticalBounce{})
	if err != nil {
		t.Fatalf("NewKinematic: %v", err)
	}

	narrow := core.Rect(0, 0, 100, 50)
	k.SetBoundary(&narrow)

	k.Update(1)
	// Scene boundary is wide, but the declared boundary is narrower
	k.Resolve(core.Rect(0, 0, 100, 100))

	if got := k.Position(); got != (core.Position{X: 0, Y: 40}) {
		t.Errorf("Position() = %v, expected clamp against custom boundary", got)
	}
	if k.Velocity().DY != -10 {
		t.Errorf("Velocity().DY = %g, expected -10", k.Velocity().DY)
	}
}

func TestKinematicColliderTracksEntity(t *testing.T) {
	k, err := NewKinematic(core.Position{X: 5, Y: 5}, 10, 10, core.Velocity{DX: 10})
	if err != nil {
		t.Fatalf("NewKinematic: %v", err)
	}

	k.Update(1)
	want := core.Rect(15, 5, 10, 10)
	if got := k.Collider().Bounds(); got != want {
		t.Errorf("collider bounds = %v, expected %v", got, want)
	}
}

func TestSpriteFallsBackToRect(t *testing.T) {
	s, err := NewSprite(core.Position{X: 1, Y: 2}, 3, 4, nil)
	if err != nil {
		t.Fatalf("NewSprite: %v", err)
	}

	rec := &recordingRenderer{}
	s.Draw(rec)
	if len(rec.rects) != 1 {
		t.Fatalf("expected 1 rect draw, got %d", len(rec.rects))
	}
	if rec.rects[0] != core.Rect(1, 2, 3, 4) {
		t.Errorf("drawn rect = %v", rec.rects[0])
	}
}

func TestSpriteDrawsHandle(t *testing.T) {
	handle := "art"
	s, err := NewSprite(core.Position{}, 3, 4, handle)
	if err != nil {
		t.Fatalf("NewSprite: %v", err)
	}

	rec := &recordingRenderer{}
	s.Draw(rec)
	if len(rec.sprites) != 1 || rec.sprites[0] != handle {
		t.Errorf("expected sprite handle draw, got %v", rec.sprites)
	}
}

// recordingRenderer captures draw calls for assertions.
type recordingRenderer struct {
	rects   []core.Bounds
	texts   []string
	sprites []core.SpriteHandle
}

func (r *recordingRenderer) DrawRect(b core.Bounds, _ core.Style) {
	r.rects = append(r.rects, b)
}

func (r *recordingRenderer) DrawText(_ core.Position, text string, _ core.Style) {
	r.texts = append(r.texts, text)
}

func (r *recordingRenderer) DrawSprite(h core.SpriteHandle, _ core.Position) {
	r.sprites = append(r.sprites, h)
}
