package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mini-arcade/internal/core"
)

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runeMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		wantType core.EventType
		wantKey  core.Key
		wantRune rune
	}{
		{"up arrow", keyMsg(tea.KeyUp), core.EventKeyDown, core.KeyUp, 0},
		{"down arrow", keyMsg(tea.KeyDown), core.EventKeyDown, core.KeyDown, 0},
		{"left arrow", keyMsg(tea.KeyLeft), core.EventKeyDown, core.KeyLeft, 0},
		{"right arrow", keyMsg(tea.KeyRight), core.EventKeyDown, core.KeyRight, 0},
		{"space", keyMsg(tea.KeySpace), core.EventKeyDown, core.KeySpace, 0},
		{"enter", keyMsg(tea.KeyEnter), core.EventKeyDown, core.KeyEnter, 0},
		{"escape", keyMsg(tea.KeyEscape), core.EventKeyDown, core.KeyEscape, 0},
		{"ctrl+c", keyMsg(tea.KeyCtrlC), core.EventQuit, core.KeyNone, 0},
		{"ctrl+s", keyMsg(tea.KeyCtrlS), core.EventKeyDown, core.KeyCtrlS, 0},
		{"letter w", runeMsg('w'), core.EventKeyDown, core.KeyRune, 'w'},
		{"letter q", runeMsg('q'), core.EventKeyDown, core.KeyRune, 'q'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := MapKey(tt.msg)
			if !ok {
				t.Fatalf("MapKey(%q) not mapped", tt.msg.String())
			}
			if ev.Type != tt.wantType {
				t.Errorf("Type = %v, expected %v", ev.Type, tt.wantType)
			}
			if ev.Key != tt.wantKey {
				t.Errorf("Key = %v, expected %v", ev.Key, tt.wantKey)
			}
			if ev.Rune != tt.wantRune {
				t.Errorf("Rune = %q, expected %q", ev.Rune, tt.wantRune)
			}
		})
	}
}

func TestMapMenuKey(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want MenuAction
	}{
		{"up arrow", keyMsg(tea.KeyUp), MenuActionUp},
		{"vim k", runeMsg('k'), MenuActionUp},
		{"down arrow", keyMsg(tea.KeyDown), MenuActionDown},
		{"vim j", runeMsg('j'), MenuActionDown},
		{"enter", keyMsg(tea.KeyEnter), MenuActionSelect},
		{"escape", keyMsg(tea.KeyEscape), MenuActionBack},
		{"quit q", runeMsg('q'), MenuActionQuit},
		{"tab", keyMsg(tea.KeyTab), MenuActionScoreboard},
		{"unmapped", runeMsg('x'), MenuActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapMenuKey(tt.msg); got != tt.want {
				t.Errorf("MapMenuKey() = %v, expected %v", got, tt.want)
			}
		})
	}
}
