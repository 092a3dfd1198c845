package surface

import (
	"fmt"

	"github.com/nimbus-shell/launcher/internal/logging/events"
)

// Geometry shared by every launcher session.
const (
	mainNamespace = "launcher"
	mainMarginTop = 16
	mainMaxWidth  = 600

	menuMinWidth  = 1
	menuMaxWidth  = 300
	menuMinHeight = 1
	menuMaxHeight = 800
)

// Manager serializes surface lifecycle calls for the two fixed surface
// identities. All calls happen on the controller's event loop; the manager is
// not safe for concurrent use and does not need to be.
type Manager struct {
	comp Compositor

	main ID
	menu ID

	mainOpen bool
	menuOpen bool
}

// NewManager allocates the two surface identities against the given
// compositor.
func NewManager(comp Compositor) *Manager {
	return &Manager{comp: comp, main: 1, menu: 2}
}

// MainID exposes the panel surface identity, used as popup parent and token
// anchor.
func (m *Manager) MainID() ID { return m.main }

// MainOpen reports whether the panel surface currently exists.
func (m *Manager) MainOpen() bool { return m.mainOpen }

// MenuOpen reports whether the menu surface currently exists.
func (m *Manager) MenuOpen() bool { return m.menuOpen }

// ShowMain creates the panel surface: anchored to the top edge, exclusive
// keyboard input, fixed top margin, width capped, height content-driven.
func (m *Manager) ShowMain() error {
	if m.mainOpen {
		return nil
	}
	err := m.comp.CreateLayer(LayerSettings{
		ID:        m.main,
		Namespace: mainNamespace,
		Anchor:    AnchorTop,
		Keyboard:  KeyboardExclusive,
		MarginTop: mainMarginTop,
		Limits:    Limits{MinWidth: 1, MinHeight: 1, MaxWidth: mainMaxWidth},
	})
	if err != nil {
		return fmt.Errorf("create main surface: %w", err)
	}
	m.mainOpen = true
	events.Surface.Created("main", uint32(m.main))
	return nil
}

// HideMain destroys the panel surface if present.
func (m *Manager) HideMain() {
	if !m.mainOpen {
		return
	}
	m.comp.DestroyLayer(m.main)
	m.mainOpen = false
	events.Surface.Destroyed("main", uint32(m.main))
}

// ShowMenu creates the context-menu popup anchored at a degenerate 1×1
// rectangle at the pointer position. The menu may only exist while the panel
// does.
func (m *Manager) ShowMenu(pointerX, pointerY int) error {
	if !m.mainOpen {
		events.Surface.Rejected("menu", "main surface absent")
		return fmt.Errorf("create menu surface: main surface absent")
	}
	if m.menuOpen {
		return nil
	}
	err := m.comp.CreatePopup(PopupSettings{
		ID:         m.menu,
		Parent:     m.main,
		AnchorRect: Rect{X: pointerX, Y: pointerY, Width: 1, Height: 1},
		Anchor:     AnchorRight,
		Gravity:    AnchorRight,
		Reactive:   true,
		Grab:       true,
		Limits: Limits{
			MinWidth:  menuMinWidth,
			MaxWidth:  menuMaxWidth,
			MinHeight: menuMinHeight,
			MaxHeight: menuMaxHeight,
		},
	})
	if err != nil {
		return fmt.Errorf("create menu surface: %w", err)
	}
	m.menuOpen = true
	events.Surface.Created("menu", uint32(m.menu))
	return nil
}

// HideMenu always issues a destroy for the menu identity, even when the
// manager believes none is open. The compositor treats the extra destroy as a
// no-op, and the controller relies on this when tearing both surfaces down in
// one step.
func (m *Manager) HideMenu() {
	m.comp.DestroyPopup(m.menu)
	if m.menuOpen {
		events.Surface.Destroyed("menu", uint32(m.menu))
	}
	m.menuOpen = false
}

// ActivationToken forwards a token request to the host environment.
func (m *Manager) ActivationToken(appID string) (string, bool) {
	return m.comp.ActivationToken(appID)
}
