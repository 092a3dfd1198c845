// Package keybind maps raw terminal input events to the high-level session
// actions the controller understands. Unrecognized events pass through so the
// search input can consume them.
package keybind

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Kind enumerates the high-level actions a key press can produce.
type Kind int

const (
	None Kind = iota
	Activate
	FocusNext
	FocusPrevious
	Hide
	Submit
	ClearInput
)

// Action is a dispatched input action. Index is meaningful only for
// Activate and may exceed the current result list; the controller validates
// it.
type Action struct {
	Kind  Kind
	Index int
}

var keyTable = map[string]Action{
	"ctrl+1": {Kind: Activate, Index: 0},
	"ctrl+2": {Kind: Activate, Index: 1},
	"ctrl+3": {Kind: Activate, Index: 2},
	"ctrl+4": {Kind: Activate, Index: 3},
	"ctrl+5": {Kind: Activate, Index: 4},
	"ctrl+6": {Kind: Activate, Index: 5},
	"ctrl+7": {Kind: Activate, Index: 6},
	"ctrl+8": {Kind: Activate, Index: 7},
	"ctrl+9": {Kind: Activate, Index: 8},
	"ctrl+0": {Kind: Activate, Index: 9},
	"up":     {Kind: FocusPrevious},
	"ctrl+p": {Kind: FocusPrevious},
	"ctrl+k": {Kind: FocusPrevious},
	"down":   {Kind: FocusNext},
	"ctrl+n": {Kind: FocusNext},
	"ctrl+j": {Kind: FocusNext},
	"esc":    {Kind: Hide},
	"enter":  {Kind: Submit},
	"ctrl+u": {Kind: ClearInput},
}

// Lookup resolves a key press to an action. The second return is false when
// the key is not bound.
func Lookup(msg tea.KeyMsg) (Action, bool) {
	action, ok := keyTable[msg.String()]
	return action, ok
}

// Pointer reports the position carried by a mouse event. Motion is tracked
// unconditionally so a later context menu can anchor at the pointer.
func Pointer(msg tea.MouseMsg) (x, y int) {
	return msg.X, msg.Y
}
