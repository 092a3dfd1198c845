package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nimbus-shell/launcher/internal/bridge"
)

func waitForBridgeEvent(b *bridge.Bridge) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-b.Events()
		if !ok {
			return bridgeDoneMsg{}
		}
		return bridgeEventMsg{event: evt}
	}
}

type bridgeEventMsg struct {
	event bridge.Event
}

type bridgeDoneMsg struct{}

func (m *Model) handleBridgeEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(bridgeEventMsg)
	if !ok {
		return nil
	}
	before := m.controller.State().Menu
	effect := m.controller.HandleEvent(eventMsg.event)
	m.syncInput()
	m.clampCursor()
	if m.controller.State().Menu != before {
		m.menuCursor = 0
	}

	cmds := make([]tea.Cmd, 0, 2)
	if effect.RefocusInput {
		m.cursor = -1
		if cmd := m.input.Focus(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if m.bridge != nil {
		cmds = append(cmds, waitForBridgeEvent(m.bridge))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleBridgeDoneMsg(tea.Msg) tea.Cmd {
	m.bridge = nil
	return nil
}
