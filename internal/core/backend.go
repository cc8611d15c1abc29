package core

import "image"

// SpriteHandle is a backend-opaque reference to a loadable visual.
// The engine never inspects it; entities hand it back to the backend
// that produced it.
type SpriteHandle any

// Renderer is the draw-only capability set entities and scenes consume.
type Renderer interface {
	// DrawRect fills an axis-aligned rectangle.
	DrawRect(b Bounds, style Style)
	// DrawText draws a string with its top-left corner at pos.
	DrawText(pos Position, text string, style Style)
	// DrawSprite draws a backend-specific visual at pos.
	DrawSprite(handle SpriteHandle, pos Position)
}

// Backend is the full rendering/input/capture contract the game loop
// drives. The engine never assumes a concrete rendering technology;
// any implementation of this interface works, including test fakes.
//
// A nil or partially initialized backend is a configuration failure
// surfaced at Game startup, never mid-frame.
type Backend interface {
	Renderer

	// Init prepares the display surface. Called once before the first
	// frame; an error here is fatal to setup.
	Init(width, height int, title string) error
	// Close releases the surface. Called exactly once when the loop
	// terminates, regardless of how it exits.
	Close() error

	// PollEvents returns the input events accumulated since the last
	// poll. Never blocks.
	PollEvents() []Event

	// SetClearColor sets the background color used by Clear.
	SetClearColor(c Color)
	// Clear erases the frame to the given color. Called once per frame
	// before any entity draws.
	Clear(c Color)
	// EndFrame presents the completed frame.
	EndFrame()

	// CaptureFrame returns the current frame as a raw pixel image.
	// Encoding and persistence are the caller's concern.
	CaptureFrame() (image.Image, error)
}
