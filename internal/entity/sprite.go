package entity

import (
	"github.com/vovakirdan/mini-arcade/internal/core"
)

// Sprite is an entity with a drawable capability and no physics.
// The visual handle is backend-opaque; with no handle set the sprite
// draws as a filled rectangle in its style.
type Sprite struct {
	Base
	handle core.SpriteHandle
	style  core.Style
}

// NewSprite creates a sprite entity at the given position.
func NewSprite(pos core.Position, w, h float64, handle core.SpriteHandle) (*Sprite, error) {
	base, err := NewBase(pos, w, h)
	if err != nil {
		return nil, err
	}
	return &Sprite{
		Base:   base,
		handle: handle,
		style:  core.DefaultStyle(),
	}, nil
}

// SetStyle sets the fallback rectangle style.
func (s *Sprite) SetStyle(style core.Style) { s.style = style }

// Handle returns the backend-opaque visual handle.
func (s *Sprite) Handle() core.SpriteHandle { return s.handle }

// Draw renders the sprite through the backend.
func (s *Sprite) Draw(r core.Renderer) {
	if s.handle != nil {
		r.DrawSprite(s.handle, s.Position())
		return
	}
	r.DrawRect(s.Bounds(), s.style)
}

// Text is a drawable string entity, used for HUD and overlay content.
type Text struct {
	Base
	content string
	style   core.Style
}

// NewText creates a text entity anchored at pos. Text has no extent
// for collision purposes.
func NewText(pos core.Position, content string, style core.Style) *Text {
	base, _ := NewBase(pos, 0, 0)
	return &Text{Base: base, content: content, style: style}
}

// SetContent replaces the displayed string.
func (t *Text) SetContent(content string) { t.content = content }

// Content returns the displayed string.
func (t *Text) Content() string { return t.content }

// Draw renders the text through the backend.
func (t *Text) Draw(r core.Renderer) {
	r.DrawText(t.Position(), t.content, t.style)
}
