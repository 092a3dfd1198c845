package keybind

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+p":
		return tea.KeyMsg{Type: tea.KeyCtrlP}
	case "ctrl+n":
		return tea.KeyMsg{Type: tea.KeyCtrlN}
	case "ctrl+k":
		return tea.KeyMsg{Type: tea.KeyCtrlK}
	case "ctrl+j":
		return tea.KeyMsg{Type: tea.KeyCtrlJ}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestDigitBindings(t *testing.T) {
	for i := 1; i <= 9; i++ {
		action, ok := keyTable["ctrl+"+string(rune('0'+i))]
		if !ok || action.Kind != Activate || action.Index != i-1 {
			t.Fatalf("ctrl+%d: got %#v (bound=%v)", i, action, ok)
		}
	}
	action, ok := keyTable["ctrl+0"]
	if !ok || action.Kind != Activate || action.Index != 9 {
		t.Fatalf("ctrl+0 should map to index 9, got %#v", action)
	}
}

func TestNavigationBindings(t *testing.T) {
	prev := []string{"up", "ctrl+p", "ctrl+k"}
	for _, s := range prev {
		action, ok := Lookup(key(s))
		if !ok || action.Kind != FocusPrevious {
			t.Fatalf("%s: expected FocusPrevious, got %#v", s, action)
		}
	}
	next := []string{"down", "ctrl+n", "ctrl+j"}
	for _, s := range next {
		action, ok := Lookup(key(s))
		if !ok || action.Kind != FocusNext {
			t.Fatalf("%s: expected FocusNext, got %#v", s, action)
		}
	}
}

func TestEscapeAndSubmit(t *testing.T) {
	if action, ok := Lookup(key("esc")); !ok || action.Kind != Hide {
		t.Fatalf("esc: got %#v", action)
	}
	if action, ok := Lookup(key("enter")); !ok || action.Kind != Submit {
		t.Fatalf("enter: got %#v", action)
	}
	if action, ok := Lookup(key("ctrl+u")); !ok || action.Kind != ClearInput {
		t.Fatalf("ctrl+u: got %#v", action)
	}
}

func TestUnboundKeysPassThrough(t *testing.T) {
	for _, s := range []string{"a", "?", " "} {
		if _, ok := Lookup(key(s)); ok {
			t.Fatalf("%q should be unbound", s)
		}
	}
}

func TestPointerPosition(t *testing.T) {
	msg := tea.MouseMsg{X: 12, Y: 7, Action: tea.MouseActionMotion}
	x, y := Pointer(msg)
	if x != 12 || y != 7 {
		t.Fatalf("unexpected pointer (%d,%d)", x, y)
	}
}
