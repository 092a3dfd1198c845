// Package session implements the launcher's session controller: the state
// machine that owns visibility state, decides which backend requests to
// issue, and drives the overlay surfaces. All methods run on the UI's
// cooperative event loop; one action is fully processed before the next.
package session

import (
	"github.com/nimbus-shell/launcher/internal/bridge"
	"github.com/nimbus-shell/launcher/internal/launcher"
	"github.com/nimbus-shell/launcher/internal/logging/events"
	"github.com/nimbus-shell/launcher/internal/result"
	"github.com/nimbus-shell/launcher/internal/surface"
)

// AppID identifies the launcher towards the host activation mechanism.
const AppID = "org.nimbus-shell.Launcher"

// Sender is the outbound half of the backend bridge. Absent until the bridge
// signals readiness.
type Sender interface {
	Send(launcher.Request)
}

// Resolver turns a desktop-entry path into an executable command line.
type Resolver interface {
	Resolve(path string) (argv []string, ok bool)
}

// Spawner starts a resolved command line with an activation token injected.
type Spawner func(argv []string, token string) error

// Effect reports follow-up work the UI layer must perform after a
// transition. The controller never touches widgets directly.
type Effect struct {
	RefocusInput bool
}

// Controller is the session state machine. It is the sole owner and sole
// mutator of the session State.
type Controller struct {
	state    State
	handle   Sender
	surfaces *surface.Manager
	resolver Resolver
	spawn    Spawner
}

// NewController wires the state machine to its collaborators. The backend
// handle arrives later, through the bridge's started event.
func NewController(surfaces *surface.Manager, resolver Resolver, spawn Spawner) *Controller {
	return &Controller{
		surfaces: surfaces,
		resolver: resolver,
		spawn:    spawn,
	}
}

// State exposes the session state for rendering. Callers must not mutate it.
func (c *Controller) State() *State {
	return &c.state
}

// Surfaces exposes the surface manager, mainly for the view layer.
func (c *Controller) Surfaces() *surface.Manager {
	return c.surfaces
}

// Attach binds the backend handle delivered by the bridge's started event
// and warms the backend so the first open has results to show.
func (c *Controller) Attach(handle Sender) {
	c.handle = handle
	c.send(launcher.Search(""))
}

// send forwards a request when a handle exists. Requests before the bridge's
// started event are silently skipped; the backend is not ready for them
// anyway.
func (c *Controller) send(req launcher.Request) {
	if c.handle == nil {
		events.Bridge.Dropped("no backend handle yet")
		return
	}
	c.handle.Send(req)
}

// Toggle handles the external activation signal: open when hidden, hide
// otherwise.
func (c *Controller) Toggle() {
	if c.state.Phase() != PhaseHidden {
		c.Hide()
		return
	}
	from := c.state.Phase()
	c.state.Input = ""
	c.state.WaitForResult = true
	c.send(launcher.Search(""))
	events.Session.Phase(string(from), string(c.state.Phase()))
}

// InputChanged stores the text verbatim and issues one Search per keystroke.
// No debouncing: the backend treats the newest query as authoritative.
func (c *Controller) InputChanged(text string) {
	c.state.Input = text
	events.Session.Search(text)
	c.send(launcher.Search(text))
}

// Activate launches the result at a list position. Out-of-range indices are
// ignored; they come from stale keybindings.
func (c *Controller) Activate(index int) {
	item, ok := c.state.ResultAt(index)
	if !ok {
		events.Session.IndexOutOfRange(index, len(c.state.Results))
		return
	}
	events.Session.Activate(index, item.ID)
	c.send(launcher.Activate(item.ID))
}

// Context requests the context menu for the result at a list position. A
// second Context while a menu is open toggles it off regardless of index.
func (c *Controller) Context(index int) {
	if c.closeMenu() {
		return
	}
	item, ok := c.state.ResultAt(index)
	if !ok {
		events.Session.IndexOutOfRange(index, len(c.state.Results))
		return
	}
	if c.state.Pointer == nil {
		// Without a pointer position the menu could never be anchored, so
		// the request would only produce a response we would drop.
		events.Session.MenuDropped("pointer position unknown")
		return
	}
	c.send(launcher.Context(item.ID))
}

// MenuOption invokes one context option. An open menu is closed first,
// regardless of the request's outcome.
func (c *Controller) MenuOption(resultID, optionID uint32) {
	c.closeMenu()
	c.send(launcher.ActivateContext{ID: resultID, Option: optionID})
}

// CloseMenu dismisses the context menu if one is open.
func (c *Controller) CloseMenu() {
	c.closeMenu()
}

// PointerMoved records the pointer position unconditionally; it anchors a
// later context menu.
func (c *Controller) PointerMoved(x, y int) {
	c.state.Pointer = &Point{X: x, Y: y}
}

// Escape closes only the menu when one is open; otherwise it hides the
// whole session.
func (c *Controller) Escape() {
	if c.closeMenu() {
		return
	}
	c.Hide()
}

// FocusLost hides the session, mirroring a click outside the surface.
func (c *Controller) FocusLost() {
	c.Hide()
}

// Shutdown asks the backend process to exit ahead of the front-end's own
// termination.
func (c *Controller) Shutdown() {
	c.send(launcher.Exit{})
}

// ClearInput empties the search box and resets the backend query.
func (c *Controller) ClearInput() {
	c.state.Input = ""
	c.send(launcher.Search(""))
}

// HandleEvent feeds one bridge event through the state machine.
func (c *Controller) HandleEvent(evt bridge.Event) Effect {
	switch evt.Kind {
	case bridge.KindStarted:
		if evt.Handle != nil {
			c.Attach(evt.Handle)
		}
	case bridge.KindResponse:
		return c.handleResponse(evt.Response)
	case bridge.KindClosed:
		// No restart policy: a dead backend leaves the launcher idle and
		// later sends are dropped by the dead handle.
		events.Bridge.Closed(evt.Err)
	}
	return Effect{}
}

func (c *Controller) handleResponse(resp launcher.Response) Effect {
	switch r := resp.(type) {
	case launcher.Closed:
		c.Hide()
	case launcher.Update:
		c.applyUpdate(r)
	case launcher.Fill:
		c.state.Input = string(r)
		events.Session.Fill(string(r))
		return Effect{RefocusInput: true}
	case launcher.ContextMenu:
		c.applyContextMenu(r)
	case launcher.DesktopEntry:
		c.launchDesktopEntry(r)
	}
	return Effect{}
}

func (c *Controller) applyUpdate(update launcher.Update) {
	c.state.Results = result.Rank(update)
	if !c.state.WaitForResult {
		return
	}
	from := c.state.Phase()
	c.state.WaitForResult = false
	if err := c.surfaces.ShowMain(); err != nil {
		events.Surface.Rejected("main", err.Error())
		return
	}
	c.state.SurfaceActive = true
	events.Session.Phase(string(from), string(c.state.Phase()))
}

func (c *Controller) applyContextMenu(menu launcher.ContextMenu) {
	if len(menu.Options) == 0 {
		return
	}
	pos := c.state.Pointer
	if pos == nil {
		// Documented limitation: without an anchor the response is dropped.
		events.Session.MenuDropped("pointer position unknown")
		return
	}
	if err := c.surfaces.ShowMenu(pos.X, pos.Y); err != nil {
		events.Surface.Rejected("menu", err.Error())
		return
	}
	c.state.Menu = &Menu{ResultID: menu.ID, Options: menu.Options}
	events.Session.MenuOpened(menu.ID, len(menu.Options))
}

func (c *Controller) launchDesktopEntry(entry launcher.DesktopEntry) {
	argv, ok := c.resolver.Resolve(entry.Path)
	if !ok {
		return
	}
	token, _ := c.surfaces.ActivationToken(AppID)
	if err := c.spawn(argv, token); err != nil {
		events.Exec.Error(err)
	}
	c.Hide()
}

// Hide is the composite teardown: clear input, reset backend state for the
// next open, destroy the surfaces, return to hidden. Safe to call from any
// phase.
func (c *Controller) Hide() {
	from := c.state.Phase()
	c.state.Input = ""
	c.state.WaitForResult = false

	// Close resets the backend; the follow-up empty search restarts it so
	// results are ready the next time the launcher opens.
	if c.handle != nil {
		c.handle.Send(launcher.Close{})
		c.handle.Send(launcher.Search(""))
	}

	c.closeMenu()
	if c.state.SurfaceActive {
		c.state.SurfaceActive = false
		c.surfaces.HideMain()
	}
	if from != PhaseHidden {
		events.Session.Hide()
		events.Session.Phase(string(from), string(c.state.Phase()))
	}
}

// closeMenu clears menu state and issues the surface destroy whenever state
// is actually cleared; it reports whether a menu had been open. The destroy
// rides along even when the main surface goes down in the same step.
func (c *Controller) closeMenu() bool {
	if c.state.Menu == nil {
		return false
	}
	events.Session.MenuClosed(c.state.Menu.ResultID)
	c.state.Menu = nil
	c.surfaces.HideMenu()
	return true
}
