// Package tui is the terminal implementation of the rendering backend,
// plus the Bubble Tea host that drives the game loop, the scene picker
// menu, the scoreboard and the SSH server.
package tui

import (
	"errors"
	"image"
	"image/color"

	"github.com/vovakirdan/mini-arcade/internal/core"
)

var errNoSurface = errors.New("tui: no surface allocated")

// Pixel block size used when rasterizing a cell for screenshots. The
// 1:2 ratio approximates typical terminal glyph proportions.
const (
	captureCellW = 4
	captureCellH = 8
)

// Sprite is the terminal sprite format: rune rows drawn top to bottom
// in a single color. Pass a *Sprite as the core.SpriteHandle.
type Sprite struct {
	Rows  []string
	Color core.Color
}

// ScreenBackend renders into an in-memory cell grid. The Bubble Tea
// host reads the grid back out each frame via RenderScreen, and key
// messages are fed in through PushEvent.
type ScreenBackend struct {
	screen     *core.Screen
	events     []core.Event
	clearColor core.Color
	frames     uint64
}

// NewScreenBackend returns a backend with no surface yet; Init
// allocates the grid.
func NewScreenBackend() *ScreenBackend {
	return &ScreenBackend{}
}

// Screen exposes the cell grid for the view layer.
func (b *ScreenBackend) Screen() *core.Screen { return b.screen }

// Init allocates the cell grid. The title is ignored: the hosting
// terminal owns its own chrome.
func (b *ScreenBackend) Init(width, height int, _ string) error {
	b.screen = core.NewScreen(width, height)
	return nil
}

// Close releases nothing; the grid is plain memory.
func (b *ScreenBackend) Close() error {
	return nil
}

// PushEvent queues an input event for the next poll. Called by the
// Bubble Tea host from its Update method.
func (b *ScreenBackend) PushEvent(ev core.Event) {
	if ev.Type == core.EventResize && b.screen != nil {
		b.screen.Resize(ev.Width, ev.Height)
	}
	b.events = append(b.events, ev)
}

// PollEvents drains the queued events.
func (b *ScreenBackend) PollEvents() []core.Event {
	evs := b.events
	b.events = nil
	return evs
}

// SetClearColor sets the color Clear paints with.
func (b *ScreenBackend) SetClearColor(c core.Color) {
	b.clearColor = c
}

// Clear resets every cell to a blank in the given color.
func (b *ScreenBackend) Clear(c core.Color) {
	b.clearColor = c
	if b.screen != nil {
		b.screen.Fill(' ', c)
	}
}

// DrawRect fills the cells covered by the rectangle. World units map
// to cells one to one, truncated.
func (b *ScreenBackend) DrawRect(bounds core.Bounds, style core.Style) {
	if b.screen == nil {
		return
	}
	fill := style.Fill
	if fill == 0 {
		fill = '█'
	}
	x := int(bounds.Min.X)
	y := int(bounds.Min.Y)
	w := int(bounds.Size.W)
	h := int(bounds.Size.H)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	b.screen.FillRect(x, y, w, h, fill, style.Color)
}

// DrawText writes a string starting at pos.
func (b *ScreenBackend) DrawText(pos core.Position, text string, style core.Style) {
	if b.screen == nil {
		return
	}
	b.screen.DrawText(int(pos.X), int(pos.Y), text, style.Color)
}

// DrawSprite draws a *Sprite row by row. Unknown handle types are
// ignored rather than failing the frame.
func (b *ScreenBackend) DrawSprite(handle core.SpriteHandle, pos core.Position) {
	spr, ok := handle.(*Sprite)
	if !ok || b.screen == nil {
		return
	}
	x, y := int(pos.X), int(pos.Y)
	for dy, row := range spr.Rows {
		dx := 0
		for _, r := range row {
			if r != ' ' {
				b.screen.Set(x+dx, y+dy, r, spr.Color)
			}
			dx++
		}
	}
}

// EndFrame completes the frame. Presentation happens in the Bubble Tea
// view, so this just counts.
func (b *ScreenBackend) EndFrame() {
	b.frames++
}

// Frames returns the number of completed frames.
func (b *ScreenBackend) Frames() uint64 { return b.frames }

// CaptureFrame rasterizes the cell grid into an RGBA image: occupied
// cells become blocks of the cell color, blanks take the clear color.
func (b *ScreenBackend) CaptureFrame() (image.Image, error) {
	if b.screen == nil {
		return nil, errNoSurface
	}
	w := b.screen.Width() * captureCellW
	h := b.screen.Height() * captureCellH
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	bg := color.RGBA{b.clearColor.R, b.clearColor.G, b.clearColor.B, 0xff}
	for cy := 0; cy < b.screen.Height(); cy++ {
		for cx := 0; cx < b.screen.Width(); cx++ {
			cell := b.screen.GetCell(cx, cy)
			px := bg
			if cell.Rune != ' ' && cell.Rune != 0 {
				px = color.RGBA{cell.Color.R, cell.Color.G, cell.Color.B, 0xff}
			}
			for dy := 0; dy < captureCellH; dy++ {
				for dx := 0; dx < captureCellW; dx++ {
					img.SetRGBA(cx*captureCellW+dx, cy*captureCellH+dy, px)
				}
			}
		}
	}
	return img, nil
}
