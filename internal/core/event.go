package core

// EventType classifies backend events.
type EventType int

const (
	// EventQuit is emitted when the host asks the game to close
	// (window close button, terminal hangup).
	EventQuit EventType = iota
	// EventKeyDown is emitted when a key is pressed.
	EventKeyDown
	// EventResize is emitted when the display surface changes size.
	EventResize
)

// Key identifies a pressed key in a backend-neutral way.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEnter
	KeyEscape
	KeyCtrlS
	KeyRune // printable key; see Event.Rune
)

// Event is a single input event polled from the backend.
type Event struct {
	Type EventType
	Key  Key
	Rune rune
	// Width/Height carry the new surface size for EventResize.
	Width, Height int
}
