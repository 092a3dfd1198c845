package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nimbus-shell/launcher/internal/keybind"
	"github.com/nimbus-shell/launcher/internal/logging/events"
	"github.com/nimbus-shell/launcher/internal/session"
)

// Layout offsets used to map pointer rows back to result rows: panel border,
// panel padding, the input line and the blank line after it.
const (
	firstRowOffset = 4
	rowStride      = 3 // primary + secondary + divider
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.String() == "ctrl+c" {
		m.controller.Shutdown()
		return tea.Quit
	}

	if action, bound := keybind.Lookup(key); bound {
		return m.applyAction(key.String(), action)
	}

	if m.controller.State().Phase() == session.PhaseHidden {
		return nil
	}
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != before {
		events.Input.Changed(value)
		m.cursor = -1
		m.controller.InputChanged(value)
	}
	return cmd
}

func (m *Model) applyAction(key string, action keybind.Action) tea.Cmd {
	events.Input.Key(key, actionName(action))
	if menu := m.controller.State().Menu; menu != nil {
		m.applyMenuAction(menu, action)
		return nil
	}
	switch action.Kind {
	case keybind.Activate:
		m.controller.Activate(action.Index)
	case keybind.FocusNext:
		m.moveCursor(1)
	case keybind.FocusPrevious:
		m.moveCursor(-1)
	case keybind.Submit:
		index := m.cursor
		if index < 0 {
			index = 0
		}
		m.controller.Activate(index)
	case keybind.Hide:
		m.controller.Escape()
		m.syncInput()
	case keybind.ClearInput:
		m.cursor = -1
		m.controller.ClearInput()
		m.syncInput()
	}
	return nil
}

// applyMenuAction redirects navigation into the open context menu. Any
// action with no meaning inside a menu dismisses it.
func (m *Model) applyMenuAction(menu *session.Menu, action keybind.Action) {
	switch action.Kind {
	case keybind.FocusNext:
		if m.menuCursor < len(menu.Options)-1 {
			m.menuCursor++
		}
	case keybind.FocusPrevious:
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case keybind.Submit:
		option := menu.Options[m.menuCursor]
		m.menuCursor = 0
		m.controller.MenuOption(menu.ResultID, option.ID)
	case keybind.Hide:
		m.menuCursor = 0
		m.controller.Escape()
	default:
		m.menuCursor = 0
		m.controller.CloseMenu()
	}
}

func (m *Model) moveCursor(delta int) {
	count := len(m.controller.State().Results)
	if count == 0 {
		m.cursor = -1
		return
	}
	next := m.cursor + delta
	if next < -1 {
		next = count - 1
	}
	if next >= count {
		next = -1
	}
	m.cursor = next
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	x, y := keybind.Pointer(mouse)
	m.controller.PointerMoved(x, y)

	if mouse.Action != tea.MouseActionRelease {
		return nil
	}
	switch mouse.Button {
	case tea.MouseButtonLeft:
		if m.controller.State().Menu != nil {
			m.menuCursor = 0
			m.controller.CloseMenu()
			return nil
		}
		if row, ok := m.rowAt(y); ok {
			m.controller.Activate(row)
		}
	case tea.MouseButtonRight:
		if row, ok := m.rowAt(y); ok {
			m.controller.Context(row)
		} else if m.controller.State().Menu != nil {
			m.menuCursor = 0
			m.controller.CloseMenu()
		}
	}
	return nil
}

// rowAt maps a terminal row to a result index under the fixed panel layout.
func (m *Model) rowAt(y int) (int, bool) {
	if y < firstRowOffset {
		return 0, false
	}
	row := (y - firstRowOffset) / rowStride
	if row >= len(m.controller.State().Results) {
		return 0, false
	}
	return row, true
}

func actionName(action keybind.Action) string {
	switch action.Kind {
	case keybind.Activate:
		return "activate"
	case keybind.FocusNext:
		return "focus-next"
	case keybind.FocusPrevious:
		return "focus-previous"
	case keybind.Hide:
		return "hide"
	case keybind.Submit:
		return "submit"
	case keybind.ClearInput:
		return "clear-input"
	default:
		return "none"
	}
}
