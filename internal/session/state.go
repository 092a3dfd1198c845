package session

import "github.com/nimbus-shell/launcher/internal/launcher"

// Phase names the controller's current position in the session state
// machine. Phases are derived from the underlying flags rather than stored,
// so they can never drift from the state they describe.
type Phase string

const (
	PhaseHidden          Phase = "hidden"
	PhaseAwaitingResult  Phase = "awaiting-first-result"
	PhaseVisible         Phase = "visible"
	PhaseVisibleWithMenu Phase = "visible-with-menu"
)

// Point is the last known pointer position, used to anchor the context menu.
type Point struct {
	X int
	Y int
}

// Menu is the active context menu: the result it belongs to and its options.
type Menu struct {
	ResultID uint32
	Options  []launcher.ContextOption
}

// State is the single session state owned by the controller. It is reset, not
// destroyed, on every hide.
type State struct {
	Input         string
	SurfaceActive bool
	Results       []launcher.SearchResult
	WaitForResult bool
	Menu          *Menu
	Pointer       *Point
}

// Phase derives the named state from the flags.
func (s *State) Phase() Phase {
	switch {
	case s.Menu != nil:
		return PhaseVisibleWithMenu
	case s.SurfaceActive:
		return PhaseVisible
	case s.WaitForResult:
		return PhaseAwaitingResult
	default:
		return PhaseHidden
	}
}

// ResultAt returns the result at a list position. Indices may come from
// stale keybindings and exceed the list; those are rejected.
func (s *State) ResultAt(index int) (launcher.SearchResult, bool) {
	if index < 0 || index >= len(s.Results) {
		return launcher.SearchResult{}, false
	}
	return s.Results[index], true
}
