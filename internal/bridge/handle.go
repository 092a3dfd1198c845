package bridge

import (
	"fmt"

	"github.com/nimbus-shell/launcher/internal/launcher"
	"github.com/nimbus-shell/launcher/internal/logging/events"
)

// Outbound buffer size. Requests come from the UI's event-handling path, so a
// full buffer blocks one update step rather than a hot loop.
const requestBuffer = 8

// Handle is the outbound endpoint bound to one backend connection. It is
// created when the bridge signals readiness and reused across open/close
// cycles; the session resets backend state with Close+Search("") instead of
// reconnecting.
type Handle struct {
	requests chan launcher.Request
	done     chan struct{}
}

func newHandle() *Handle {
	return &Handle{
		requests: make(chan launcher.Request, requestBuffer),
		done:     make(chan struct{}),
	}
}

// Send enqueues a request. The call blocks while the outbound buffer is full
// and silently drops the request once the backend has gone away; there is no
// retry.
func (h *Handle) Send(req launcher.Request) {
	select {
	case <-h.done:
		events.Bridge.Dropped(fmt.Sprintf("backend gone, dropping %T", req))
		return
	default:
	}
	select {
	case h.requests <- req:
	case <-h.done:
		events.Bridge.Dropped(fmt.Sprintf("backend gone, dropping %T", req))
	}
}

// close marks the backend as gone. Buffered requests are abandoned.
func (h *Handle) close() {
	close(h.done)
}
