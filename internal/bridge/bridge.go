// Package bridge owns the connection to the external search backend. It
// spawns the backend process, feeds typed requests into its line protocol,
// and surfaces backend output as typed events on a bounded channel consumed
// by the session controller's event loop.
package bridge

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"

	"github.com/nimbus-shell/launcher/internal/launcher"
	"github.com/nimbus-shell/launcher/internal/logging"
	"github.com/nimbus-shell/launcher/internal/logging/events"
)

// Kind discriminates bridge events.
type Kind int

const (
	// KindStarted is always the first event; it carries the request handle.
	// The controller must not issue requests before receiving it.
	KindStarted Kind = iota
	// KindResponse carries one backend response, in backend-delivery order.
	KindResponse
	// KindClosed reports that the backend process has exited. No
	// reconnection is attempted.
	KindClosed
)

// Event is one item of the bridge's event stream.
type Event struct {
	Kind     Kind
	Handle   *Handle
	Response launcher.Response
	Err      error
}

// Bridge launches and talks to one backend process.
type Bridge struct {
	command []string

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// New prepares a bridge for the given backend command line. Start must be
// called before events flow.
func New(command []string) *Bridge {
	ctx, cancel := context.WithCancel(context.Background())
	return &Bridge{
		command: command,
		ctx:     ctx,
		cancel:  cancel,
		events:  make(chan Event, 16),
	}
}

// Events returns the bridge's event stream. The channel closes after the
// backend exits and the final KindClosed event has been delivered.
func (b *Bridge) Events() <-chan Event {
	return b.events
}

// Start spawns the backend process and the reader/writer goroutines. The
// first event on the stream is KindStarted with the outbound handle.
func (b *Bridge) Start() error {
	if len(b.command) == 0 {
		return fmt.Errorf("start backend: empty command")
	}
	cmd := exec.CommandContext(b.ctx, b.command[0], b.command[1:]...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("start backend: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("start backend: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start backend %q: %w", b.command[0], err)
	}
	events.Bridge.Started(strings.Join(b.command, " "))

	handle := newHandle()
	// Enqueued before the pumps start so no response can precede it.
	b.events <- Event{Kind: KindStarted, Handle: handle}

	b.wg.Add(1)
	go b.writeRequests(handle, stdin)

	b.wg.Add(1)
	go b.readResponses(handle, stdout, cmd)

	return nil
}

// Stop tears the backend down. Pending events are discarded.
func (b *Bridge) Stop() {
	b.cancel()
}

// Wait blocks until both pump goroutines have exited and the event channel
// is closed. Used by tests that need a clean drain.
func (b *Bridge) Wait() {
	b.wg.Wait()
}

func (b *Bridge) writeRequests(h *Handle, stdin io.WriteCloser) {
	defer b.wg.Done()
	defer stdin.Close()
	for {
		select {
		case <-b.ctx.Done():
			return
		case <-h.done:
			return
		case req := <-h.requests:
			line, err := launcher.EncodeRequest(req)
			if err != nil {
				logging.Error(err)
				continue
			}
			events.Bridge.Request(string(line))
			if _, err := stdin.Write(append(line, '\n')); err != nil {
				logging.Error(fmt.Errorf("write request: %w", err))
				return
			}
		}
	}
}

func (b *Bridge) readResponses(h *Handle, stdout io.Reader, cmd *exec.Cmd) {
	defer b.wg.Done()
	defer func() {
		h.close()
		err := cmd.Wait()
		events.Bridge.Closed(err)
		b.emit(Event{Kind: KindClosed, Err: err})
		close(b.events)
	}()

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		resp, err := launcher.DecodeResponse(line)
		if err != nil {
			// Malformed payloads are a transport concern; log and skip so
			// the session only ever sees well-formed typed events.
			events.Bridge.Malformed(string(line), err)
			logging.Error(err)
			continue
		}
		events.Bridge.Response(fmt.Sprintf("%T", resp))
		if !b.emit(Event{Kind: KindResponse, Response: resp}) {
			return
		}
	}
	if err := scanner.Err(); err != nil {
		logging.Error(fmt.Errorf("read backend output: %w", err))
	}
}

func (b *Bridge) emit(evt Event) bool {
	select {
	case <-b.ctx.Done():
		return false
	case b.events <- evt:
		return true
	}
}
