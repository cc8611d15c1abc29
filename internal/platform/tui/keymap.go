package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mini-arcade/internal/core"
)

// MapKey translates a Bubble Tea key message into a backend event.
// The second return is false for keys with no game meaning.
func MapKey(msg tea.KeyMsg) (core.Event, bool) {
	switch msg.String() {
	case "ctrl+c":
		return core.Event{Type: core.EventQuit}, true
	case "up":
		return core.Event{Type: core.EventKeyDown, Key: core.KeyUp}, true
	case "down":
		return core.Event{Type: core.EventKeyDown, Key: core.KeyDown}, true
	case "left":
		return core.Event{Type: core.EventKeyDown, Key: core.KeyLeft}, true
	case "right":
		return core.Event{Type: core.EventKeyDown, Key: core.KeyRight}, true
	case " ":
		return core.Event{Type: core.EventKeyDown, Key: core.KeySpace}, true
	case "enter":
		return core.Event{Type: core.EventKeyDown, Key: core.KeyEnter}, true
	case "esc":
		return core.Event{Type: core.EventKeyDown, Key: core.KeyEscape}, true
	case "ctrl+s":
		return core.Event{Type: core.EventKeyDown, Key: core.KeyCtrlS}, true
	}

	runes := []rune(msg.String())
	if len(runes) == 1 {
		return core.Event{Type: core.EventKeyDown, Key: core.KeyRune, Rune: runes[0]}, true
	}
	return core.Event{}, false
}

// MenuAction is a navigation action for the menu and scoreboard views.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapMenuKey translates a key message to a menu action.
func MapMenuKey(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
