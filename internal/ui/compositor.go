package ui

import (
	"github.com/google/uuid"

	"github.com/nimbus-shell/launcher/internal/surface"
)

// termCompositor adapts the overlay-surface contract to a terminal: creating
// a surface toggles a rendered region, destroying it hides the region.
// Destroys are idempotent as the Compositor contract requires. Activation
// tokens have no compositor to come from here, so the host adapter mints
// opaque ones; spawned processes treat them as any other token.
type termCompositor struct {
	panel      bool
	menu       bool
	menuAnchor surface.Rect
}

func newTermCompositor() *termCompositor {
	return &termCompositor{}
}

func (c *termCompositor) CreateLayer(settings surface.LayerSettings) error {
	c.panel = true
	return nil
}

func (c *termCompositor) DestroyLayer(surface.ID) {
	c.panel = false
	// A panel teardown takes any nested popup with it.
	c.menu = false
}

func (c *termCompositor) CreatePopup(settings surface.PopupSettings) error {
	c.menu = true
	c.menuAnchor = settings.AnchorRect
	return nil
}

func (c *termCompositor) DestroyPopup(surface.ID) {
	c.menu = false
}

func (c *termCompositor) ActivationToken(appID string) (string, bool) {
	return appID + "-" + uuid.NewString(), true
}
