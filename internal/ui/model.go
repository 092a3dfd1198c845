package ui

import (
	"reflect"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nimbus-shell/launcher/internal/bridge"
	"github.com/nimbus-shell/launcher/internal/desktop"
	"github.com/nimbus-shell/launcher/internal/session"
	"github.com/nimbus-shell/launcher/internal/surface"
	"github.com/nimbus-shell/launcher/internal/theme"
)

const inputPlaceholder = "Type to search apps or type “?” for more options..."

// ActivateMsg is the external activation signal: it toggles launcher
// visibility. The host delivers it out-of-band (a signal, in the terminal
// adapter).
type ActivateMsg struct{}

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model hosting the launcher session.
type Model struct {
	controller *session.Controller
	bridge     *bridge.Bridge
	comp       *termCompositor
	styles     *theme.Styles

	input      textinput.Model
	cursor     int // focused result row; -1 keeps focus on the input
	menuCursor int // focused option while the context menu is open
	width      int
	height     int

	handlers map[reflect.Type]msgHandler
}

// NewModel wires the session controller to its production collaborators.
func NewModel(b *bridge.Bridge, styles *theme.Styles) *Model {
	resolver := desktop.NewResolver()
	return newModel(b, styles, resolver, desktop.Spawn)
}

func newModel(b *bridge.Bridge, styles *theme.Styles, resolver session.Resolver, spawn session.Spawner) *Model {
	comp := newTermCompositor()
	controller := session.NewController(surface.NewManager(comp), resolver, spawn)

	input := textinput.New()
	input.Placeholder = inputPlaceholder
	input.Prompt = "> "
	if styles.Input != nil {
		input.TextStyle = *styles.Input
	}
	if styles.Placeholder != nil {
		input.PlaceholderStyle = *styles.Placeholder
	}
	input.Focus()

	m := &Model{
		controller: controller,
		bridge:     b,
		comp:       comp,
		styles:     styles,
		input:      input,
		cursor:     -1,
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface. Startup counts as the first
// activation: running the binary means the user wants the launcher open.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, func() tea.Msg { return ActivateMsg{} }}
	if m.bridge != nil {
		cmds = append(cmds, waitForBridgeEvent(m.bridge))
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages through the handler registry.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tea.FocusMsg{}):      m.handleFocusMsg,
		reflect.TypeOf(tea.BlurMsg{}):       m.handleBlurMsg,
		reflect.TypeOf(ActivateMsg{}):       m.handleActivateMsg,
		reflect.TypeOf(bridgeEventMsg{}):    m.handleBridgeEventMsg,
		reflect.TypeOf(bridgeDoneMsg{}):     m.handleBridgeDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.width = size.Width
	m.height = size.Height
	return nil
}

func (m *Model) handleActivateMsg(tea.Msg) tea.Cmd {
	m.controller.Toggle()
	m.syncInput()
	if m.controller.State().Phase() != session.PhaseHidden {
		m.cursor = -1
		return m.input.Focus()
	}
	return nil
}

func (m *Model) handleFocusMsg(tea.Msg) tea.Cmd {
	return m.input.Focus()
}

func (m *Model) handleBlurMsg(tea.Msg) tea.Cmd {
	m.controller.FocusLost()
	m.syncInput()
	return nil
}

// syncInput mirrors controller-owned input text back into the widget after
// transitions that rewrite it (hide, fill, clear).
func (m *Model) syncInput() {
	if value := m.controller.State().Input; value != m.input.Value() {
		m.input.SetValue(value)
		m.input.CursorEnd()
	}
}

// clampCursor keeps the focused row inside the current result list.
func (m *Model) clampCursor() {
	if n := len(m.controller.State().Results); m.cursor >= n {
		m.cursor = n - 1
	}
}
