// Package surface owns the creation and destruction of the launcher's two
// overlay surfaces. The compositor protocol itself lives behind the
// Compositor interface; this package decides when each surface should exist
// and with what geometry.
package surface

// ID identifies one overlay surface for the lifetime of the process. IDs are
// allocated per manager instance rather than held in package globals.
type ID uint32

// Anchor names an edge of the output or anchor rectangle.
type Anchor int

const (
	AnchorTop Anchor = iota
	AnchorRight
)

// KeyboardMode controls how a layer surface takes keyboard input.
type KeyboardMode int

const (
	KeyboardNone KeyboardMode = iota
	KeyboardExclusive
)

// Rect is an anchor rectangle in surface-local coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Limits bounds a surface's negotiated size. Zero means unconstrained.
type Limits struct {
	MinWidth  int
	MinHeight int
	MaxWidth  int
	MaxHeight int
}

// LayerSettings configures the main panel surface.
type LayerSettings struct {
	ID        ID
	Namespace string
	Anchor    Anchor
	Keyboard  KeyboardMode
	MarginTop int
	Limits    Limits
}

// PopupSettings configures the context-menu popup surface.
type PopupSettings struct {
	ID         ID
	Parent     ID
	AnchorRect Rect
	Anchor     Anchor
	Gravity    Anchor
	Reactive   bool
	Grab       bool
	Limits     Limits
}

// Compositor is the external overlay-surface API. Destroy calls must be
// idempotent: destroying an absent surface is a no-op.
type Compositor interface {
	CreateLayer(LayerSettings) error
	DestroyLayer(ID)
	CreatePopup(PopupSettings) error
	DestroyPopup(ID)
	// ActivationToken asks the host environment for an opaque credential
	// authorizing a spawned process to raise a window. The boolean is false
	// when the host provides none.
	ActivationToken(appID string) (string, bool)
}
